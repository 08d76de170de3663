package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/mediaview"
	"github.com/grindlemire/mediaview/internal/debug"
	"github.com/grindlemire/mediaview/internal/preview"
	"github.com/grindlemire/mediaview/internal/scenario"
)

func newPreviewCmd() *cobra.Command {
	var scale int

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Draw a laid-out scenario in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.OutOrStdout(), args[0], preview.Options{
				Scale:   scale,
				Columns: terminalColumns(),
			})
		},
	}
	cmd.Flags().IntVarP(&scale, "scale", "s", 0, "pixels per cell column (0 fits the terminal width)")
	return cmd
}

func runPreview(w io.Writer, path string, opts preview.Options) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	engine, err := mediaview.NewEngine(mediaview.WithLogger(debug.Logger()))
	if err != nil {
		return err
	}

	c := s.ContainerValue()
	p, err := engine.Layout(c, mediaview.Children(s.Boxes()...))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintln(w, preview.Render(c, p, opts))
	return nil
}

// terminalColumns returns the usable grid width inside the preview frame,
// or zero when stdout is not a terminal.
func terminalColumns() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 2 {
		return 0
	}
	return width - 2
}
