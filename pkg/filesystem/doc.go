// Package filesystem provides the afero-backed file access modsync uses
// for game configuration files and its own state: a line reader that
// never panics and classifies failures, and atomic writes.
package filesystem
