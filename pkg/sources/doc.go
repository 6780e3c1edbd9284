// Package sources loads rule mappings from files and command-line pairs and
// merges them into one ordered ruleset.Mapping.
//
// # File Formats
//
// JSON and YAML files hold a single object of pattern -> template strings.
// Files without a .yaml, .yml or .toml extension are read as JSON:
//
//	{
//	  "^# (.*)": ".SH",
//	  "^$": ""
//	}
//
// TOML files hold top-level key/value pairs; regular expressions need quoted
// keys:
//
//	"^# " = ".SH"
//	'^\s*$' = ""
//
// Key order in the file is rule order.
//
// # Pairs
//
// A pair given on the command line has the form [pattern,template]. It is
// split on the first comma, so templates may contain commas but patterns may
// not.
//
// # Precedence
//
// Sources are merged in the order given, files first and pairs last. A
// pattern defined more than once keeps the position of its first definition
// and the template of its last.
package sources
