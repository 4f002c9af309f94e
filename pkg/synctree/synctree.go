// Package synctree holds the synchronized state view: a read-only map from
// virtual path to a node recording whether the path belongs to the active
// loadout and whether it exists on disk.
package synctree

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

// Node is the state of one virtual path.
type Node struct {
	HaveLoadout bool
	HaveDisk    bool
}

type entry struct {
	path gamepath.GamePath
	node Node
}

// Tree is an immutable snapshot. The zero value is an empty tree.
type Tree struct {
	index   map[gamepath.Key]int
	entries []entry
}

// Builder accumulates nodes for a Tree. Adding the same path twice merges
// the flags.
type Builder struct {
	index   map[gamepath.Key]int
	entries []entry
}

func NewBuilder() *Builder {
	return &Builder{index: make(map[gamepath.Key]int)}
}

func (b *Builder) Add(p gamepath.GamePath, n Node) *Builder {
	if i, ok := b.index[p.Key()]; ok {
		old := b.entries[i].node
		b.entries[i].node = Node{
			HaveLoadout: old.HaveLoadout || n.HaveLoadout,
			HaveDisk:    old.HaveDisk || n.HaveDisk,
		}
		return b
	}
	b.index[p.Key()] = len(b.entries)
	b.entries = append(b.entries, entry{path: p, node: n})
	return b
}

// Build sorts the entries and returns the snapshot. The builder must not
// be reused afterwards.
func (b *Builder) Build() *Tree {
	entries := b.entries
	slices.SortFunc(entries, func(x, y entry) int { return gamepath.Compare(x.path, y.path) })
	index := make(map[gamepath.Key]int, len(entries))
	for i, e := range entries {
		index[e.path.Key()] = i
	}
	b.entries, b.index = nil, nil
	return &Tree{index: index, entries: entries}
}

func (t *Tree) Lookup(p gamepath.GamePath) (Node, bool) {
	if t == nil {
		return Node{}, false
	}
	i, ok := t.index[p.Key()]
	if !ok {
		return Node{}, false
	}
	return t.entries[i].node, true
}

// InLoadout reports whether p is part of the active loadout.
func (t *Tree) InLoadout(p gamepath.GamePath) bool {
	n, ok := t.Lookup(p)
	return ok && n.HaveLoadout
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Range visits every entry in gamepath.Compare order until fn returns false.
func (t *Tree) Range(fn func(gamepath.GamePath, Node) bool) {
	if t == nil {
		return
	}
	for _, e := range t.entries {
		if !fn(e.path, e.node) {
			return
		}
	}
}

// Filter returns the paths matching pred, in Range order.
func (t *Tree) Filter(pred Predicate) []gamepath.GamePath {
	var out []gamepath.GamePath
	t.Range(func(p gamepath.GamePath, n Node) bool {
		if pred(p, n) {
			out = append(out, p)
		}
		return true
	})
	return out
}

func (t *Tree) Count(pred Predicate) int {
	count := 0
	t.Range(func(p gamepath.GamePath, n Node) bool {
		if pred(p, n) {
			count++
		}
		return true
	})
	return count
}

// Glob returns paths in loc whose relative path matches pattern.
func (t *Tree) Glob(loc gamepath.LocationID, pattern string) []gamepath.GamePath {
	if !doublestar.ValidatePattern(pattern) {
		return nil
	}
	return t.Filter(func(p gamepath.GamePath, _ Node) bool {
		return p.Location == loc && p.Match(pattern)
	})
}
