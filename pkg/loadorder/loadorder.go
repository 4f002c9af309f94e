package loadorder

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

// GroupID identifies the mod that owns an item. Zero means no group.
type GroupID uint64

// NoGroup marks an item without an owning group.
const NoGroup GroupID = 0

// Item is one orderable plugin. Callers pass only enabled, winning items;
// keys must be unique.
type Item struct {
	Key     string
	Enabled bool
	Owner   string
	Group   GroupID
}

// HasGroup reports whether the item has a known owning group.
func (i Item) HasGroup() bool { return i.Group != NoGroup }

// IsMaster reports whether the key carries the master-file extension.
func (i Item) IsMaster() bool {
	return strings.HasSuffix(strings.ToLower(i.Key), gamepath.ExtMaster)
}

// Entry is a persisted (key, index) pair.
type Entry struct {
	Key   string `toml:"key"`
	Index int    `toml:"index"`
}

// Priorities ranks groups; lower values load earlier.
type Priorities map[GroupID]uint64

func (p Priorities) of(i Item) uint64 {
	if i.HasGroup() {
		if v, ok := p[i.Group]; ok {
			return v
		}
	}
	return math.MaxUint64
}

// Resolved is a live item with its reconciled index.
type Resolved struct {
	Item  Item
	Index int
}

// Reconcile merges persisted with live. Persisted entries whose key is
// still live keep their relative order; the remaining live items are
// sorted with CompareNew and appended. Indices are dense from zero.
func Reconcile(persisted []Entry, live []Item, prio Priorities) []Resolved {
	byKey := make(map[string]Item, len(live))
	for _, it := range live {
		byKey[it.Key] = it
	}

	out := make([]Resolved, 0, len(live))
	processed := make(map[string]bool, len(live))
	for _, e := range persisted {
		it, ok := byKey[e.Key]
		if !ok || processed[e.Key] {
			continue
		}
		processed[e.Key] = true
		out = append(out, Resolved{Item: it})
	}

	var fresh []Item
	for _, it := range live {
		if !processed[it.Key] {
			fresh = append(fresh, it)
		}
	}
	slices.SortFunc(fresh, func(a, b Item) int { return CompareNew(a, b, prio) })
	for _, it := range fresh {
		out = append(out, Resolved{Item: it})
	}

	for i := range out {
		out[i].Index = i
	}
	return out
}

// CompareNew orders items that have no persisted position: group priority
// (only when prio is non-empty, missing counts as last), masters before
// plugins, grouped before ungrouped, group id, then key case-insensitively
// and finally byte-wise.
func CompareNew(a, b Item, prio Priorities) int {
	if len(prio) > 0 {
		if c := cmp.Compare(prio.of(a), prio.of(b)); c != 0 {
			return c
		}
	}
	if am, bm := a.IsMaster(), b.IsMaster(); am != bm {
		if am {
			return -1
		}
		return 1
	}
	if ag, bg := a.HasGroup(), b.HasGroup(); ag != bg {
		if ag {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Group, b.Group); c != 0 {
		return c
	}
	if c := cmp.Compare(strings.ToLower(a.Key), strings.ToLower(b.Key)); c != 0 {
		return c
	}
	return cmp.Compare(a.Key, b.Key)
}

// Order projects resolved items onto persisted entries.
func Order(resolved []Resolved) []Entry {
	out := make([]Entry, len(resolved))
	for i, r := range resolved {
		out[i] = Entry{Key: r.Item.Key, Index: r.Index}
	}
	return out
}

// EnabledKeys returns the keys of enabled items in load order.
func EnabledKeys(resolved []Resolved) []string {
	var keys []string
	for _, r := range resolved {
		if r.Item.Enabled {
			keys = append(keys, r.Item.Key)
		}
	}
	return keys
}

// SortEntries orders entries by index, then key, in place.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.Index, b.Index); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
}
