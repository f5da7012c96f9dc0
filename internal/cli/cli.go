// Package cli implements the cargodeps command-line interface.
//
// The root command loads the direct dependencies of a Cargo project and
// opens an interactive browser. The list subcommand prints the same records
// without a terminal UI.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cargodeps/pkg/browse"
	"github.com/matzehuels/cargodeps/pkg/buildinfo"
	"github.com/matzehuels/cargodeps/pkg/cargo"
	"github.com/matzehuels/cargodeps/pkg/deps"
	"github.com/matzehuels/cargodeps/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "cargodeps"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	stderr io.Writer // spinner and status output
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), stderr: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &loadOpts{cargo: cargo.DefaultCargo}

	root := &cobra.Command{
		Use:   appName,
		Short: "Browse the dependencies of a Cargo project",
		Long: `cargodeps shows the direct dependencies of a Cargo project in an interactive
terminal view: locked and latest versions, dependency kind, and which
features each dependency enables.

Keys:
` + browse.LegendString(),
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := logHooks{logger: c.Logger}
			observability.SetLoadHooks(hooks)
			observability.SetCommandHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.register(root)

	root.AddCommand(c.listCommand(opts))
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Loading
// =============================================================================

// loadOpts selects and configures the dependency graph provider.
type loadOpts struct {
	manifestPath string // --manifest-path
	metadataFile string // --metadata-file ("-" for stdin)
	offline      bool   // read Cargo.toml/Cargo.lock instead of running cargo
	locked       bool   // pass --locked to cargo
	cargo        string // cargo executable
}

func (o *loadOpts) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.manifestPath, "manifest-path", "", "path to Cargo.toml")
	flags.StringVar(&o.metadataFile, "metadata-file", "", "read saved `cargo metadata --format-version 1` output (- for stdin)")
	flags.BoolVar(&o.offline, "offline", false, "read Cargo.toml and Cargo.lock directly without running cargo (no feature data)")
	flags.BoolVar(&o.locked, "locked", false, "require Cargo.lock to be up to date")
	flags.StringVar(&o.cargo, "cargo", o.cargo, "cargo executable")
	cmd.MarkFlagsMutuallyExclusive("metadata-file", "offline")
}

// provider returns the graph provider selected by the flags.
func (o *loadOpts) provider() deps.Provider {
	switch {
	case o.metadataFile != "":
		return cargo.NewMetadataFile(o.metadataFile)
	case o.offline:
		return cargo.NewLockfile(o.manifestPath)
	default:
		return cargo.NewMetadataCommand(cargo.CommandOptions{
			Cargo:        o.cargo,
			ManifestPath: o.manifestPath,
			Locked:       o.locked,
		})
	}
}

// load runs the provider once. With spin set, a spinner runs on stderr
// until loading finishes and is replaced by a success line; a load
// interrupted by ctx reports ctx's error instead of the provider's.
func (c *CLI) load(ctx context.Context, opts *loadOpts, spin bool) ([]deps.Dependency, error) {
	p := opts.provider()
	prog := newProgress(c.Logger)

	var s *Spinner
	if spin {
		s = newSpinner(ctx, c.stderr, fmt.Sprintf("Reading dependencies from %s...", p.Source()))
		s.Start()
	}
	list, err := deps.Load(ctx, p)
	if err != nil {
		if s != nil {
			s.Stop()
			if s.Cancelled() {
				return nil, ctx.Err()
			}
		}
		return nil, err
	}

	msg := fmt.Sprintf("Loaded %d dependencies from %s", len(list), p.Source())
	if s != nil {
		s.StopWithSuccess(prog.summary(msg))
		return list, nil
	}
	prog.done(msg)
	return list, nil
}
