// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package manifest loads the HCL descriptions of the registries a binary is
// expected to carry.
//
// A registration-based architecture trades a central list for implicit
// wiring: whether a given registry exists, and what ends up in it, is decided
// by which packages were linked. Manifests make that contract explicit and
// reviewable. A manifest names each expected registry, the fields its value
// type must expose, and the minimum number of entries a correctly linked
// binary carries; the inspect package then checks the live process against
// this model.
package manifest
