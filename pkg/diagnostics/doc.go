// Package diagnostics defines the diagnostic record, its templates, the
// Emitter contract rules implement, and the Engine that runs a registry of
// emitters over one snapshot of an installation.
//
// Emitters produce lazy sequences: a consumer may stop early, and the
// emitter observes context cancellation between items. Emitters hold no
// state across calls, so one instance may serve concurrent scans.
package diagnostics
