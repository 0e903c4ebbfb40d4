package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonsmith/internal/config"
	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
	"github.com/alexisbeaulieu97/buttonsmith/pkg/diff"
)

type diffOptions struct {
	from    string
	to      string
	context int
	word    bool
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the components exported by two config files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, false)
			if err != nil {
				return err
			}
			defer app.Close()
			return runDiff(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Config file for the original button")
	cmd.Flags().StringVar(&opts.to, "to", "", "Config file for the changed button")
	cmd.Flags().IntVar(&opts.context, "context", diff.DefaultContext, "Lines of context around each change")
	cmd.Flags().BoolVar(&opts.word, "word", false, "Mark changes inline instead of as a unified diff")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runDiff(cmd *cobra.Command, app *AppContext, opts *diffOptions) error {
	before, err := exportFor(opts.from)
	if err != nil {
		return err
	}
	after, err := exportFor(opts.to)
	if err != nil {
		return err
	}

	var out string
	if opts.word {
		out = diff.GenerateWordDiff(before, after)
	} else {
		out, err = diff.GenerateUnifiedDiff(before, after, opts.from, opts.to, opts.context)
		if err != nil {
			return newCommandError("diff", "comparing exports", err, "Retry with --verbose for more detail.")
		}
	}

	app.Logger.WithFields(map[string]any{
		"from":    opts.from,
		"to":      opts.to,
		"word":    opts.word,
		"changed": out != "",
	}).Debug("exports compared")

	if out == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No differences.")
		return nil
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func exportFor(path string) (string, error) {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return "", newCommandError("diff", fmt.Sprintf("loading %q", path), err, "Check that the file exists and fix the errors shown above.")
	}
	applied, err := cfg.Apply(options.Defaults())
	if err != nil {
		return "", newCommandError("diff", fmt.Sprintf("applying %q", path), err, "Use one of the listed values.")
	}
	return resolve.Resolve(applied).Export, nil
}
