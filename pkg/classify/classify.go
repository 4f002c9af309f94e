// Package classify tags the files a mod contributes: xNVSE plugin
// libraries and INI tweak files that target one of the game's INI files.
package classify

import (
	"strings"

	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

// NvsePluginPattern matches xNVSE plugin libraries at any depth.
const NvsePluginPattern = "Data/NVSE/Plugins/**/*.dll"

// KnownIniFiles are the INI file names a tweak may target, keyed
// case-folded to their canonical spelling.
var KnownIniFiles = map[string]string{
	"fallout.ini":       "Fallout.ini",
	"falloutprefs.ini":  "FalloutPrefs.ini",
	"falloutcustom.ini": "FalloutCustom.ini",
	"geckcustom.ini":    "GECKCustom.ini",
}

// Tweak is a file that changes settings of Target.
type Tweak struct {
	Path   gamepath.GamePath
	Target string
}

// Result is the classification of one mod's files.
type Result struct {
	NvsePlugins []gamepath.GamePath
	IniTweaks   []Tweak
}

// IsNvseMod reports whether the mod ships any xNVSE plugin.
func (r Result) IsNvseMod() bool { return len(r.NvsePlugins) > 0 }

// Empty reports whether nothing was recognised.
func (r Result) Empty() bool { return len(r.NvsePlugins) == 0 && len(r.IniTweaks) == 0 }

// IsNvsePlugin reports whether p is a .dll under Data/NVSE/Plugins.
func IsNvsePlugin(p gamepath.GamePath) bool {
	return p.Location == gamepath.Game && p.Match(NvsePluginPattern)
}

// TweakTarget returns the canonical INI name p targets, if any.
func TweakTarget(p gamepath.GamePath) (string, bool) {
	if p.Extension() != gamepath.ExtINI {
		return "", false
	}
	target, ok := KnownIniFiles[strings.ToLower(p.FileName())]
	return target, ok
}

// Classify sorts paths into xNVSE plugins and INI tweaks, keeping input
// order. Other files are ignored.
func Classify(paths []gamepath.GamePath) Result {
	var res Result
	for _, p := range paths {
		if IsNvsePlugin(p) {
			res.NvsePlugins = append(res.NvsePlugins, p)
		}
		if target, ok := TweakTarget(p); ok {
			res.IniTweaks = append(res.IniTweaks, Tweak{Path: p, Target: target})
		}
	}
	return res
}
