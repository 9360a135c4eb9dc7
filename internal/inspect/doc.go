// Package inspect checks a running binary's registries against the loaded
// manifest and renders registry reports.
//
// Validation is a strict parity check between manifests and Go code: every
// manifest-declared registry must be linked in and meet its entry
// expectations, and the declared fields must match the registered value
// type's fields in both presence and type. Catching a drifted manifest at
// startup prevents a wide class of runtime surprises in binaries assembled
// from independently maintained modules.
package inspect
