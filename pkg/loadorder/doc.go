// Package loadorder reconciles a persisted plugin load order with the
// plugins currently contributed by the loadout.
//
// Reconciliation keeps every persisted plugin that is still live in its
// persisted position, appends new plugins after them in a deterministic
// order, and renumbers the result densely from zero. The package performs
// no storage I/O itself: Diff computes the change set a Store applies.
//
// Reconcile is a pure function. Calling it again with its own output as
// the persisted order and the same live items yields the same order.
package loadorder
