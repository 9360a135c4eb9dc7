// Package app contains the core application logic for the stockpile CLI. It
// defines the App struct, its configuration, and command dispatch, decoupled
// from any specific entrypoint.
package app
