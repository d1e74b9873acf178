package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stencil/cli/cmd"
	"github.com/ardnew/stencil/lang"
	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/pkg"
)

// CLI is the top-level command-line interface for stencil.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source []string `help:"Input source file(s) or '-' for stdin"                         short:"s" type:"existingfile"`
	Path   []string `help:"Directories searched for source names before $STENCIL_PATH" short:"I" type:"path"`
	Shared bool     `help:"Register components defined in nested bodies document-wide"`

	Parse      cmd.Parse      `cmd:"" default:"withargs" help:"Parse a source and print its syntax tree"`
	Components cmd.Components `cmd:""                    help:"List component definitions"`
	Query      cmd.Query      `cmd:""                    help:"Print nodes matching an expression"`
	Lex        cmd.Lex        `cmd:""                    help:"Print the lexemes of a source"`
	Repl       cmd.Repl       `cmd:""                    help:"Parse markup interactively"`
	Init       cmd.Init       `cmd:""                    help:"Initialize configuration file"`
	Version    cmd.Version    `cmd:""                    help:"Print version"`
}

// Run executes the stencil CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before Kong reports anything, wherever they appear.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath("config.json")),
		kong.Configuration(loadTOML, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)
	ctx = cmd.WithSearchPath(ctx, cli.Path)
	ctx = cmd.WithParseOptions(ctx,
		lang.WithLogger(log.Default()),
		lang.WithSharedRegistry(cli.Shared),
	)

	return ktx.Run(ctx, &cli)
}
