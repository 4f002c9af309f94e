// Package datastore persists reconciled load orders and writes the game's
// plugins.txt. Orders are stored one TOML document per loadout under the
// configured store directory, on any afero filesystem.
package datastore
