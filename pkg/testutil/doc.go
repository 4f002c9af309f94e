// Package testutil provides utilities for testing modsync components.
//
// Key components:
//   - FaultyFs: afero filesystem wrapper with per-path error injection
//   - Install: in-memory game installation with the standard locations
//   - TreeBuilder: terse construction of synchronized state views
//
// All test data should be defined inline, not in external files.
package testutil
