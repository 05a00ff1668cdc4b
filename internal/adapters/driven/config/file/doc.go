// Package file provides the TOML-backed configuration store. It holds
// the user's saved defaults for the convert switches and the interface
// language.
package file
