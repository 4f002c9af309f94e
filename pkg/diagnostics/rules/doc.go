// Package rules is the Fallout: New Vegas rule set. Each rule lives in its
// own file and implements diagnostics.Emitter. Rules never fail a scan: an
// unreadable file or an unanswerable question resolves to the rule's
// conservative default, which is usually to warn.
package rules
