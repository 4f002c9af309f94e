package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/Punkwe1ght/modsync/pkg/loadorder"
)

// RenderOrder prints the reconciled order as a table. Plugins the delta
// adds or moves are marked.
func RenderOrder(w io.Writer, resolved []loadorder.Resolved, delta loadorder.Delta) error {
	added := make(map[string]bool, len(delta.Added))
	for _, e := range delta.Added {
		added[e.Key] = true
	}
	moved := make(map[string]bool, len(delta.Updated))
	for _, e := range delta.Updated {
		moved[e.Key] = true
	}

	data := pterm.TableData{{"#", "Plugin", "Owner", "Change"}}
	for _, r := range resolved {
		change := ""
		switch {
		case added[r.Item.Key]:
			change = "new"
		case moved[r.Item.Key]:
			change = "moved"
		}
		data = append(data, []string{strconv.Itoa(r.Index), r.Item.Key, r.Item.Owner, change})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	for _, k := range delta.Removed {
		if _, err := fmt.Fprintf(w, "removed: %s\n", k); err != nil {
			return err
		}
	}
	return nil
}
