// Package loadout reads the loadout manifest, a YAML description of the
// mods a user has installed and enabled, and turns it into the inputs the
// diagnostics engine and the load-order reconciler consume.
//
//	id: main
//	mods:
//	  - id: 1
//	    name: YUP
//	    priority: 10
//	    nvse_version: "6.3.0"
//	    files:
//	      - Data/YUP - Base.esm
//	      - path: Fallout.ini
//	        location: Preferences
//	        tweak_of: Fallout.ini
//
// Mods are listed from lowest to highest precedence: when two enabled
// mods provide the same path, the later one wins.
package loadout
