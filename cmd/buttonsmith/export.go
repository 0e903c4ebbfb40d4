package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
)

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &optionFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the React component for the configured button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootFlags, opts)
		},
	}

	opts.register(cmd)
	return cmd
}

func newClassesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &optionFlags{}

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Print the utility class list for the configured button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			cfg, err := opts.resolveOptions(cmd, app)
			if err != nil {
				return err
			}

			res := resolve.Resolve(cfg)
			app.Logger.With("classes", len(res.Classes)).Debug("classes resolved")
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.ClassList())
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
