package builder

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"

	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
)

// Run starts the builder program and blocks until the user quits.
func Run(ctx context.Context, opts Options, altScreen bool) error {
	model := NewModel(opts)
	model.Session().OnResolve(func(res resolve.Resolution) {
		opts.Logger.WithFields(map[string]any{
			"variant": res.Source.Variant.String(),
			"classes": len(res.Classes),
		}).Debug("button changed")
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return zerr.Wrap(err, "run builder")
	}
	return nil
}
