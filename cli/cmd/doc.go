// Package cmd implements the stencil subcommands.
//
// Commands read their input with a shared resolution rule: an explicit path
// is used as is, a bare name is looked up in the --path directories and then
// in $STENCIL_PATH (with the .stn extension tried when the name has none),
// "-" reads stdin, and no name at all reads the global --source files.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the TOML configuration file.
	ConfigIdentifier = "config"
)
