package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonsmith/internal/clipboard"
	"github.com/alexisbeaulieu97/buttonsmith/internal/gallery"
)

type galleryOptions struct {
	index int
	copy  bool
}

func newGalleryCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List the example buttons or print one example's snippet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			if !cmd.Flags().Changed("index") {
				if opts.copy {
					return newCommandError("gallery", "copying a snippet", fmt.Errorf("--copy requires --index"), "Pick an example with --index N.")
				}
				return renderGalleryList(cmd)
			}
			return runGalleryExample(cmd, app, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "Print the snippet of the example at this index")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the snippet to the clipboard")

	return cmd
}

func renderGalleryList(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "INDEX\tTITLE\tLABEL")
	for i, ex := range gallery.Examples() {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", i, ex.Title, ex.Label)
	}
	if err := w.Flush(); err != nil {
		return newCommandError("gallery", "writing example list", err, "Check that the output stream is writable.")
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'buttonsmith gallery --index N' to print a snippet.")
	return nil
}

func runGalleryExample(cmd *cobra.Command, app *AppContext, opts *galleryOptions) error {
	snippet, ok := gallery.Snippet(opts.index)
	if !ok {
		err := fmt.Errorf("no example at index %d", opts.index)
		return newCommandError("gallery", "selecting example "+strconv.Itoa(opts.index), err,
			fmt.Sprintf("Choose an index between 0 and %d.", gallery.Len()-1))
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), snippet)

	if opts.copy {
		// Best effort: the snippet is already on stdout if the clipboard is unavailable.
		if clipboard.Copy(clipboardWriter, app.Logger, snippet) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "✓ Copied %q to the clipboard\n", gallery.Examples()[opts.index].Title)
		}
	}
	return nil
}
