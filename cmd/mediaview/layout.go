package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/mediaview"
	"github.com/grindlemire/mediaview/internal/debug"
	"github.com/grindlemire/mediaview/internal/scenario"
)

func newLayoutCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "layout FILE...",
		Short: "Lay out scenario files and print the placements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.OutOrStdout(), args, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

// rectReport is a placement in left/top/right/bottom form.
type rectReport struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

// report is the outcome of laying out one scenario.
type report struct {
	Name       string                `json:"name" yaml:"name"`
	Path       string                `json:"path" yaml:"path"`
	Placements map[string]rectReport `json:"placements,omitempty" yaml:"placements,omitempty"`
	Overflow   []string              `json:"overflow,omitempty" yaml:"overflow,omitempty"`
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`

	container  mediaview.Container
	placements mediaview.Placements
}

// runLayout lays out every file concurrently and prints the reports in
// argument order. Unreadable files abort the run; precondition failures are
// reported per file and counted.
func runLayout(w io.Writer, paths []string, format string) error {
	switch format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}

	engine, err := mediaview.NewEngine(mediaview.WithLogger(debug.Logger()))
	if err != nil {
		return err
	}

	reports := make([]report, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			reports[i] = layoutScenario(engine, path, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeReports(w, reports, format); err != nil {
		return err
	}

	var failed int
	for _, r := range reports {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed layout", failed)
	}
	return nil
}

func layoutScenario(engine *mediaview.Engine, path string, s *scenario.Scenario) report {
	r := report{Name: s.Name, Path: path, container: s.ContainerValue()}

	p, err := engine.Layout(r.container, mediaview.Children(s.Boxes()...))
	if err != nil {
		r.Error = err.Error()
		return r
	}

	r.placements = p
	r.Placements = make(map[string]rectReport, mediaview.ChildCount)
	for _, role := range mediaview.Roles {
		rect := p.Get(role)
		r.Placements[role.String()] = rectReport{
			Left:   rect.X,
			Top:    rect.Y,
			Right:  rect.Right(),
			Bottom: rect.Bottom(),
		}
	}
	for _, role := range p.Overflow(r.container) {
		r.Overflow = append(r.Overflow, role.String())
	}
	return r
}

func writeReports(w io.Writer, reports []report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeText(w, r)
	}
	return nil
}

func writeText(w io.Writer, r report) {
	c := r.container
	fmt.Fprintf(w, "%s (%dx%d, padding %d %d %d %d)\n", r.Name, c.Width, c.Height,
		c.Padding.Top, c.Padding.Right, c.Padding.Bottom, c.Padding.Left)
	if r.Error != "" {
		fmt.Fprintf(w, "  error: %s\n", r.Error)
		return
	}
	for _, role := range mediaview.Roles {
		rect := r.placements.Get(role)
		fmt.Fprintf(w, "  %-11s (%d,%d)-(%d,%d) %dx%d\n", role,
			rect.X, rect.Y, rect.Right(), rect.Bottom(), rect.Width, rect.Height)
	}
	if len(r.Overflow) > 0 {
		fmt.Fprintf(w, "  overflow: %s\n", strings.Join(r.Overflow, ", "))
	}
}
