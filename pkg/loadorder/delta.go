package loadorder

// Delta is the change set that turns the previous persisted order into a
// new one.
type Delta struct {
	Removed []string
	Updated []Entry
	Added   []Entry
}

// Empty reports whether applying d changes nothing.
func (d Delta) Empty() bool {
	return len(d.Removed) == 0 && len(d.Updated) == 0 && len(d.Added) == 0
}

// Diff compares previous with next. Removed follows previous order;
// Updated and Added follow next order.
func Diff(previous []Entry, next []Resolved) Delta {
	var d Delta
	prevIndex := make(map[string]int, len(previous))
	for _, e := range previous {
		prevIndex[e.Key] = e.Index
	}
	nextKeys := make(map[string]bool, len(next))
	for _, r := range next {
		nextKeys[r.Item.Key] = true
	}

	for _, e := range previous {
		if !nextKeys[e.Key] {
			d.Removed = append(d.Removed, e.Key)
		}
	}
	for _, r := range next {
		idx, ok := prevIndex[r.Item.Key]
		switch {
		case !ok:
			d.Added = append(d.Added, Entry{Key: r.Item.Key, Index: r.Index})
		case idx != r.Index:
			d.Updated = append(d.Updated, Entry{Key: r.Item.Key, Index: r.Index})
		}
	}
	return d
}

// Apply returns previous with d applied, sorted by index.
func Apply(previous []Entry, d Delta) []Entry {
	removed := make(map[string]bool, len(d.Removed))
	for _, k := range d.Removed {
		removed[k] = true
	}
	updated := make(map[string]int, len(d.Updated))
	for _, e := range d.Updated {
		updated[e.Key] = e.Index
	}

	out := make([]Entry, 0, len(previous)+len(d.Added))
	for _, e := range previous {
		if removed[e.Key] {
			continue
		}
		if idx, ok := updated[e.Key]; ok {
			e.Index = idx
		}
		out = append(out, e)
	}
	out = append(out, d.Added...)
	SortEntries(out)
	return out
}
