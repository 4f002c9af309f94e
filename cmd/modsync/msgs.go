package modsync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Diagnose a Fallout: New Vegas loadout and manage its load order"
	MsgDiagnoseShort   = "Run the diagnostic rules against the loadout"
	MsgExplainShort    = "Show the full description of a diagnostic"
	MsgRulesShort      = "List the diagnostic rules"
	MsgOrderShort      = "Reconcile and print the plugin load order"
	MsgHeaderShort     = "Print the masters and flags of plugin files"
	MsgLocationsShort  = "Show where each game location resolves"
	MsgDebugIniShort   = "Show how the INI settings modsync checks resolve"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgOrderUnchanged     = "Load order is up to date."
	MsgOrderWritten       = "Saved load order for loadout '%s' (%d plugins)\n"
	MsgOrderPreview       = "\nRun with --write to save this order."
	MsgPluginsFileWritten = "Wrote %s\n"
	MsgNoManifest         = "No loadout manifest configured; scanning the installation only."
	MsgRuleDisabled       = "disabled"
	MsgRuleEnabled        = "enabled"
	MsgHeaderMaster       = "%s (master)\n"
	MsgHeaderPlugin       = "%s\n"
	MsgHeaderMasterRef    = "  requires %s\n"
	MsgHeaderNoMasters    = "  no masters\n"
	MsgHeaderError        = "%s: %v\n"
	MsgNotConfigured      = "(not configured)"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrLoadManifest  = "failed to load loadout manifest: %w"
	MsgErrLoadSnapshot  = "failed to load sync snapshot: %w"
	MsgErrNeedsManifest = "this command needs a loadout manifest (--manifest or loadout.manifest)"
	MsgErrUnknownID     = "no diagnostic with id %s"
	MsgErrHeaders       = "%d of %d files could not be read"
	MsgErrHealthCheck   = "health check failed: found a %s diagnostic"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Configuration file (default $XDG_CONFIG_HOME/modsync/config.toml)"
	MsgFlagGame        = "Game installation directory"
	MsgFlagPrefs       = "Directory holding Fallout.ini and FalloutPrefs.ini"
	MsgFlagManifest    = "Loadout manifest (YAML)"
	MsgFlagFormat      = "Output format: auto, table, text or json"
	MsgFlagRule        = "Only run the named rule (repeatable)"
	MsgFlagSnapshot    = "Read the sync state from a YAML snapshot instead of the manifest"
	MsgFlagFailOn      = "Exit non-zero when a diagnostic of this severity or worse is found"
	MsgFlagWrite       = "Save the reconciled order and write plugins.txt"
	MsgFlagPluginsFile = "Where to write plugins.txt (default: AppData location)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/diagnose-long.txt
	msgDiagnoseLongRaw string
	MsgDiagnoseLong    = strings.TrimSpace(msgDiagnoseLongRaw)

	//go:embed msgs/diagnose-example.txt
	msgDiagnoseExampleRaw string
	MsgDiagnoseExample    = strings.TrimRight(msgDiagnoseExampleRaw, "\n")

	//go:embed msgs/order-long.txt
	msgOrderLongRaw string
	MsgOrderLong    = strings.TrimSpace(msgOrderLongRaw)

	//go:embed msgs/order-example.txt
	msgOrderExampleRaw string
	MsgOrderExample    = strings.TrimRight(msgOrderExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
