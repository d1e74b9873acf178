// Package cli contains the command line interface for stencil.
//
// # Usage
//
//	stencil [flags] [parse] [source]
//	stencil components [-b] [-f source] [name ...]
//	stencil query [-c] [-f source] expr
//	stencil lex [source]
//	stencil repl [source]
//	stencil init [-f]
//	stencil version
//
// Parse is the default command, so "stencil page.stn" prints the syntax tree
// of page.stn. A source name that is not a file is looked up in the --path
// directories and then in $STENCIL_PATH.
//
// # Configuration
//
// Flag defaults are read from config.toml in the user configuration
// directory, which "stencil init" writes from the current flag values:
//
//	shared = true
//	path = ["/usr/share/stencil"]
//
//	[log]
//	level = "debug"
//	format = "json"
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//   - --log-file: Also append JSON records to a file
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o stencil .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/stencil/pprof)
package cli
