package arbitrator

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rewrite text with ordered regular-expression rules"
	MsgRulesShort      = "List the compiled rules in match order"
	MsgGenConfigShort  = "Print the default configuration"
	MsgGenConfigLong   = "Print the built-in configuration with comments. With --write, save it as .arbitrator.toml in the current directory unless that file already exists."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgRulesValid    = "%d rules OK\n"
	MsgVersionLine   = "arbitrator version %s\n"
	MsgCommitLine    = "  commit: %s\n"
	MsgBuiltLine     = "  built:  %s\n"
	MsgRewriteStats  = "Rewrote %d units: %d matched, %d emitted"
	MsgConfigWritten = "Wrote %s\n"
	MsgConfigExists  = "Project config already exists, nothing written\n"

	// Error messages
	MsgErrCompletion = "failed to generate %s completion: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRules     = "Rule file (JSON, YAML or TOML); repeat to merge several"
	MsgFlagPair      = "Rule given as \"[pattern,template]\"; repeat for more, applied after files"
	MsgFlagNoLogFile = "Do not write the log file"
	MsgFlagInput     = "Input file (default: standard input)"
	MsgFlagOutput    = "Output file (default: standard output)"
	MsgFlagMode      = "Unit of matching: line or token"
	MsgFlagCheck     = "Only validate the rules"
	MsgFlagWrite     = "Write .arbitrator.toml instead of printing"
	MsgFlagJSON      = "Print the merged rules as one JSON rule file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/rules-example.txt
	msgRulesExampleRaw string
	MsgRulesExample    = strings.TrimRight(msgRulesExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
