package persistmake

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Recreate paths from one tree onto another, ownership and modes included"
	MsgMakeShort       = "Materialize paths from SOURCE_ROOT onto TARGET_ROOT"
	MsgApplyShort      = "Materialize the paths listed in the configuration"
	MsgConfigShort     = "Print the merged configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into DIR"

	// Group titles
	MsgGroupCore = "Commands:"
	MsgGroupMisc = "Misc:"

	// Output
	MsgVersionFormat   = "persist-make %s (commit %s, built %s)\n"
	MsgSummaryFormat   = "%d entries across %d paths, %d created\n"
	MsgStepCreated     = "created"
	MsgStepKept        = "kept"
	MsgManWritten      = "Man pages written to %s\n"
	MsgHintOwnership   = "Hint: changing ownership to another user usually needs root; re-run with sudo."
	MsgHintMismatch    = "Hint: move the conflicting target entry out of the way and re-run."
	MsgHintNotFound    = "Hint: every component of the path must exist under the source root."
	MsgHintUnsupported = "Hint: only directories and regular files can be materialized."

	// Error messages
	MsgErrGenMan = "failed to generate man pages: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Read configuration from FILE (TOML, or YAML for .yaml/.yml)"
	MsgFlagList     = "Print each materialized entry"
	MsgFlagSource   = "Override roots.source"
	MsgFlagTarget   = "Override roots.target"
	MsgFlagDefaults = "Print the built-in defaults instead of the merged configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/make-long.txt
	msgMakeLongRaw string
	MsgMakeLong    = strings.TrimSpace(msgMakeLongRaw)

	//go:embed msgs/make-example.txt
	msgMakeExampleRaw string
	MsgMakeExample    = strings.TrimRight(msgMakeExampleRaw, "\n")

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimRight(msgUsageTemplateRaw, "\n") + "\n"
)
