package synctree

import (
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

// Predicate selects tree entries.
type Predicate func(gamepath.GamePath, Node) bool

// LoadoutOnly keeps entries that belong to the loadout.
func LoadoutOnly(_ gamepath.GamePath, n Node) bool { return n.HaveLoadout }

func InFolder(dir gamepath.GamePath) Predicate {
	return func(p gamepath.GamePath, _ Node) bool { return p.InFolder(dir) }
}

func DirectChildOf(dir gamepath.GamePath) Predicate {
	return func(p gamepath.GamePath, _ Node) bool { return p.IsDirectChildOf(dir) }
}

// HasExtension matches lower-cased extensions such as ".esp".
func HasExtension(exts ...string) Predicate {
	return func(p gamepath.GamePath, _ Node) bool {
		ext := p.Extension()
		for _, e := range exts {
			if ext == e {
				return true
			}
		}
		return false
	}
}

// All combines predicates with logical and.
func All(preds ...Predicate) Predicate {
	return func(p gamepath.GamePath, n Node) bool {
		for _, pred := range preds {
			if !pred(p, n) {
				return false
			}
		}
		return true
	}
}
