package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/buttonsmith/internal/clipboard"
	"github.com/alexisbeaulieu97/buttonsmith/internal/components"
	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
	"github.com/alexisbeaulieu97/buttonsmith/internal/tui/builder"
)

// clipboardWriter is swapped out in tests.
var clipboardWriter clipboard.Writer = clipboard.System{}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	opts := &optionFlags{}

	cmd := &cobra.Command{
		Use:           "buttonsmith",
		Short:         "Buttonsmith designs a button in the terminal and exports it as a React component",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Launch the builder on a terminal; pipes get the snippet.
			if isTerminal(cmd.OutOrStdout()) {
				return runBuilder(cmd, flags, opts)
			}
			return runExport(cmd, flags, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	opts.register(cmd)

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newClassesCmd(flags))
	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runBuilder(cmd *cobra.Command, flags *rootFlags, opts *optionFlags) error {
	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	initial, err := opts.resolveOptions(cmd, app)
	if err != nil {
		return err
	}

	theme, ok := components.ThemeByName(app.Config.ThemeName())
	if !ok {
		theme = components.DefaultTheme()
	}
	components.SetTheme(theme)

	app.Logger.WithFields(map[string]any{
		"theme":     app.Config.ThemeName(),
		"highlight": app.Config.HighlightStyle(),
	}).Info("starting builder")

	err = builder.Run(cmd.Context(), builder.Options{
		Initial:        initial,
		Clipboard:      clipboardWriter,
		Logger:         app.Logger,
		HighlightStyle: app.Config.HighlightStyle(),
	}, app.Config.AltScreen())
	if err != nil {
		app.Logger.Error(err, "builder exited")
		return newCommandError("run builder", "interactive session", err, "Run 'buttonsmith export' to print the snippet without the interactive builder.")
	}
	return nil
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *optionFlags) error {
	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	cfg, err := opts.resolveOptions(cmd, app)
	if err != nil {
		return err
	}

	res := resolve.Resolve(cfg)
	app.Logger.With("variant", cfg.Variant.String()).Debug("export resolved")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Export)
	return nil
}
