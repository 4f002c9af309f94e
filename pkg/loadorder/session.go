package loadorder

import (
	"github.com/rs/zerolog"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/logging"
)

// Store persists one load order per loadout.
type Store interface {
	Load(loadoutID string) ([]Entry, error)
	Apply(loadoutID string, d Delta) error
}

// Result is the outcome of one reconciliation.
type Result struct {
	Previous []Entry
	Resolved []Resolved
	Delta    Delta
	Written  bool
}

// Session reconciles the order of a single loadout against a Store.
type Session struct {
	store     Store
	loadoutID string
	logger    zerolog.Logger
}

func NewSession(store Store, loadoutID string) *Session {
	return &Session{
		store:     store,
		loadoutID: loadoutID,
		logger:    logging.WithFields(map[string]interface{}{"component": "loadorder", "loadout": loadoutID}),
	}
}

// Plan loads the persisted order and reconciles it without writing.
func (s *Session) Plan(live []Item, prio Priorities) (Result, error) {
	done := logging.LogOperationStart(s.logger, "reconcile")
	defer done()

	previous, err := s.store.Load(s.loadoutID)
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			err = errors.Wrapf(err, errors.ErrStoreRead, "cannot load order of %s", s.loadoutID)
		}
		return Result{}, err
	}
	SortEntries(previous)

	resolved := Reconcile(previous, live, prio)
	delta := Diff(previous, resolved)
	s.logger.Debug().
		Int("persisted", len(previous)).
		Int("live", len(live)).
		Int("removed", len(delta.Removed)).
		Int("updated", len(delta.Updated)).
		Int("added", len(delta.Added)).
		Msg("Reconciled load order")

	return Result{Previous: previous, Resolved: resolved, Delta: delta}, nil
}

// Run plans and then applies a non-empty delta to the store.
func (s *Session) Run(live []Item, prio Priorities) (Result, error) {
	res, err := s.Plan(live, prio)
	if err != nil {
		return res, err
	}
	if res.Delta.Empty() {
		return res, nil
	}
	if err := s.store.Apply(s.loadoutID, res.Delta); err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			err = errors.Wrapf(err, errors.ErrStoreWrite, "cannot save order of %s", s.loadoutID)
		}
		return res, err
	}
	res.Written = true
	s.logger.Info().Int("plugins", len(res.Resolved)).Msg("Load order saved")
	return res, nil
}
