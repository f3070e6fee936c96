// Package snapshot holds the last accepted process list and the pure
// functions computed over it.
//
// Store exposes only whole-value operations:
//   - Read() returns a private copy, never torn
//   - Replace(s) installs a new snapshot atomically
//
// Diff reports entries of a new snapshot with no structurally equal entry in
// the old one. Search filters a snapshot by optional pid and owner name.
package snapshot
