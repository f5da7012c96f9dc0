package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// runBrowse loads the dependencies and runs the interactive browser until
// the user quits or ctx is cancelled.
func (c *CLI) runBrowse(ctx context.Context, opts *loadOpts) error {
	list, err := c.load(ctx, opts, true)
	if err != nil {
		return err
	}

	loggerFromContext(ctx).Debug("starting browser", "dependencies", len(list))
	p := tea.NewProgram(NewBrowseModel(list), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
