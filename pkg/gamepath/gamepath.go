// Package gamepath defines the virtual path used throughout modsync: a
// logical install location plus a relative, forward-slash path. Paths
// compare case-insensitively, matching the filesystems the engine runs on.
package gamepath

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LocationID names a logical install root.
type LocationID string

const (
	Game        LocationID = "Game"
	Preferences LocationID = "Preferences"
	AppData     LocationID = "AppData"
	Saves       LocationID = "Saves"
)

// Locations lists every known location in display order.
var Locations = []LocationID{Game, Preferences, AppData, Saves}

// GamePath is an immutable location-relative path.
type GamePath struct {
	Location LocationID
	Path     string
}

// Key is the case-folded comparable form of a GamePath.
type Key struct {
	Location LocationID
	Path     string
}

// New builds a normalised GamePath.
func New(loc LocationID, rel string) GamePath {
	return GamePath{Location: loc, Path: normalize(rel)}
}

func normalize(rel string) string {
	p := strings.ReplaceAll(rel, "\\", "/")
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}

// Join appends elements to the path.
func (g GamePath) Join(elem ...string) GamePath {
	return New(g.Location, path.Join(append([]string{g.Path}, elem...)...))
}

func (g GamePath) Key() Key {
	return Key{Location: g.Location, Path: strings.ToLower(g.Path)}
}

// FileName is the last path element.
func (g GamePath) FileName() string {
	if g.Path == "" {
		return ""
	}
	return path.Base(g.Path)
}

// Extension is the lower-cased extension including the dot.
func (g GamePath) Extension() string {
	return strings.ToLower(path.Ext(g.Path))
}

// Stem is the file name without its extension.
func (g GamePath) Stem() string {
	name := g.FileName()
	return strings.TrimSuffix(name, path.Ext(name))
}

// Parent returns the containing directory; the root's parent is itself.
func (g GamePath) Parent() GamePath {
	dir := path.Dir(g.Path)
	if dir == "." {
		dir = ""
	}
	return GamePath{Location: g.Location, Path: dir}
}

// InFolder reports whether g is a strict descendant of dir.
func (g GamePath) InFolder(dir GamePath) bool {
	if g.Location != dir.Location {
		return false
	}
	child, parent := strings.ToLower(g.Path), strings.ToLower(dir.Path)
	if parent == "" {
		return child != ""
	}
	return strings.HasPrefix(child, parent+"/")
}

// IsDirectChildOf reports whether g's parent is exactly dir.
func (g GamePath) IsDirectChildOf(dir GamePath) bool {
	return g.Parent().Equal(dir) && g.Path != dir.Path
}

func (g GamePath) Equal(o GamePath) bool {
	return g.Key() == o.Key()
}

// Compare orders by location, then case-insensitive path, then raw path.
func Compare(a, b GamePath) int {
	if c := strings.Compare(string(a.Location), string(b.Location)); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.Path), strings.ToLower(b.Path)); c != 0 {
		return c
	}
	return strings.Compare(a.Path, b.Path)
}

// Match reports whether the relative path matches a doublestar pattern,
// case-insensitively.
func (g GamePath) Match(pattern string) bool {
	ok, err := doublestar.Match(strings.ToLower(normalize(pattern)), strings.ToLower(g.Path))
	return err == nil && ok
}

func (g GamePath) String() string {
	return "{" + string(g.Location) + "}/" + g.Path
}
