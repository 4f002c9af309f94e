package testutil

import (
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/synctree"
)

// TreeBuilder builds synchronized state views with short calls.
type TreeBuilder struct {
	b *synctree.Builder
}

func NewTree() *TreeBuilder {
	return &TreeBuilder{b: synctree.NewBuilder()}
}

// Loadout adds Game paths that belong to the loadout.
func (t *TreeBuilder) Loadout(paths ...string) *TreeBuilder {
	for _, p := range paths {
		t.b.Add(gamepath.New(gamepath.Game, p), synctree.Node{HaveLoadout: true})
	}
	return t
}

// Disk adds Game paths that exist on disk only.
func (t *TreeBuilder) Disk(paths ...string) *TreeBuilder {
	for _, p := range paths {
		t.b.Add(gamepath.New(gamepath.Game, p), synctree.Node{HaveDisk: true})
	}
	return t
}

// Add adds an arbitrary node.
func (t *TreeBuilder) Add(p gamepath.GamePath, n synctree.Node) *TreeBuilder {
	t.b.Add(p, n)
	return t
}

func (t *TreeBuilder) Build() *synctree.Tree {
	return t.b.Build()
}
