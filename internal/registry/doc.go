// Package registry holds the catalogue of installed engine versions.
//
// The registry is an ordered list of Version records plus two global
// settings: whether the launch session wrapper is engaged and the default
// scan root. Order is display order and is the basis for the 1-based
// indices users pick from.
//
// Key concepts:
//   - Version: one engine installation; Path is its identity
//   - Store: the in-memory list, unique by Path
//   - Document: the TOML form written to config.toml
//   - FileRepo: loads and atomically saves a Store through fsops.FS
package registry
