package cargo

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"
	"time"

	"github.com/matzehuels/cargodeps/pkg/deps"
	"github.com/matzehuels/cargodeps/pkg/errors"
	"github.com/matzehuels/cargodeps/pkg/observability"
)

// DefaultCargo is the cargo executable looked up in PATH.
const DefaultCargo = "cargo"

// CommandOptions configures [MetadataCommand].
type CommandOptions struct {
	Cargo        string // cargo executable (default: "cargo")
	ManifestPath string // --manifest-path (default: cargo's own lookup)
	Dir          string // working directory (default: current)
	Offline      bool   // --offline
	Locked       bool   // --locked
}

// MetadataCommand loads the graph by running `cargo metadata`.
type MetadataCommand struct {
	opts CommandOptions
}

// NewMetadataCommand creates a provider that shells out to cargo.
func NewMetadataCommand(opts CommandOptions) *MetadataCommand {
	if opts.Cargo == "" {
		opts.Cargo = DefaultCargo
	}
	return &MetadataCommand{opts: opts}
}

func (c *MetadataCommand) Source() string { return "cargo metadata" }

// Args returns the arguments passed to cargo.
func (c *MetadataCommand) Args() []string {
	args := []string{"metadata", "--format-version", "1"}
	if c.opts.ManifestPath != "" {
		args = append(args, "--manifest-path", c.opts.ManifestPath)
	}
	if c.opts.Offline {
		args = append(args, "--offline")
	}
	if c.opts.Locked {
		args = append(args, "--locked")
	}
	return args
}

// Graph runs cargo and decodes its output. It blocks until cargo exits.
func (c *MetadataCommand) Graph(ctx context.Context) (*deps.Graph, error) {
	args := c.Args()
	hooks := observability.Command()
	hooks.OnExec(ctx, c.opts.Cargo, args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.opts.Cargo, args...)
	cmd.Dir = c.opts.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	hooks.OnExit(ctx, c.opts.Cargo, time.Since(start), err)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(errors.ErrCodeCargoFailed, ctxErr, "cargo metadata interrupted")
		}
		if stderrors.Is(err, exec.ErrNotFound) {
			return nil, errors.Wrap(errors.ErrCodeCargoFailed, err, "%s not found; is the Rust toolchain installed?", c.opts.Cargo)
		}
		if msg := lastLine(stderr.String()); msg != "" {
			return nil, errors.Wrap(errors.ErrCodeCargoFailed, err, "cargo metadata failed: %s", msg)
		}
		return nil, errors.Wrap(errors.ErrCodeCargoFailed, err, "cargo metadata failed")
	}

	return ParseMetadata(stdout.Bytes())
}

// lastLine returns the last non-empty line of cargo's stderr, which holds
// the error summary.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
