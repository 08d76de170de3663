package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/mediaview/internal/preview"
)

const testdata = "../../internal/scenario/testdata"

func TestRunLayout_Text(t *testing.T) {
	var buf bytes.Buffer
	paths := []string{
		filepath.Join(testdata, "scenario_a.yaml"),
		filepath.Join(testdata, "scenario_b.toml"),
	}
	if err := runLayout(&buf, paths, "text"); err != nil {
		t.Fatalf("runLayout() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"scenario-a (400x600, padding 0 0 0 0)",
		"  attachment  (0,0)-(400,300) 400x300",
		"  description (0,340)-(400,400) 400x60",
		"  icon        (350,325)-(400,375) 50x50",
		"scenario-b (400x600, padding 0 0 0 0)",
		"  icon        (280,290)-(400,410) 120x120",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "overflow") {
		t.Errorf("unexpected overflow report:\n%s", got)
	}
	if strings.Index(got, "scenario-a") > strings.Index(got, "scenario-b") {
		t.Errorf("reports out of argument order:\n%s", got)
	}
}

func TestRunLayout_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runLayout(&buf, []string{filepath.Join(testdata, "scenario_a.yaml")}, "json"); err != nil {
		t.Fatalf("runLayout() error = %v", err)
	}

	var reports []report
	if err := json.Unmarshal(buf.Bytes(), &reports); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, buf.String())
	}
	if len(reports) != 1 {
		t.Fatalf("len(reports) = %d, want 1", len(reports))
	}
	want := rectReport{Left: 350, Top: 325, Right: 400, Bottom: 375}
	if got := reports[0].Placements["icon"]; got != want {
		t.Errorf("icon = %+v, want %+v", got, want)
	}
	if len(reports[0].Overflow) != 0 {
		t.Errorf("overflow = %v, want none", reports[0].Overflow)
	}
}

func TestRunLayout_PreconditionFailure(t *testing.T) {
	var buf bytes.Buffer
	paths := []string{
		filepath.Join(testdata, "three_children.yml"),
		filepath.Join(testdata, "scenario_a.yaml"),
	}
	err := runLayout(&buf, paths, "text")
	if err == nil || err.Error() != "1 scenario(s) failed layout" {
		t.Fatalf("runLayout() error = %v, want one failed scenario", err)
	}
	if !strings.Contains(buf.String(), "error: mediaview: container holds 3 children, want 4") {
		t.Errorf("output missing precondition error:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "scenario-a") {
		t.Errorf("output missing the valid scenario:\n%s", buf.String())
	}
}

func TestRunLayout_Errors(t *testing.T) {
	type tc struct {
		paths  []string
		format string
	}

	tests := map[string]tc{
		"unknown format": {
			paths:  []string{filepath.Join(testdata, "scenario_a.yaml")},
			format: "xml",
		},
		"missing file": {
			paths:  []string{filepath.Join(testdata, "missing.yaml")},
			format: "text",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if err := runLayout(io.Discard, tt.paths, tt.format); err == nil {
				t.Error("runLayout() error = nil, want error")
			}
		})
	}
}

func TestRunPreview(t *testing.T) {
	var buf bytes.Buffer
	opts := preview.Options{Scale: 10, Renderer: lipgloss.NewRenderer(io.Discard)}
	if err := runPreview(&buf, filepath.Join(testdata, "scenario_a.yaml"), opts); err != nil {
		t.Fatalf("runPreview() error = %v", err)
	}
	if !strings.Contains(buf.String(), strings.Repeat("T", 35)+"IIIII") {
		t.Errorf("preview missing icon over title:\n%s", buf.String())
	}

	err := runPreview(io.Discard, filepath.Join(testdata, "three_children.yml"), opts)
	if err == nil {
		t.Error("runPreview() error = nil for three children, want error")
	}
}

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.toml")

	if err := runInit(io.Discard, path, false); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "[[children]]") {
		t.Errorf("written scenario is not TOML:\n%s", data)
	}

	if err := runInit(io.Discard, path, false); err == nil {
		t.Error("runInit() over existing file error = nil, want error")
	}
	if err := runInit(io.Discard, path, true); err != nil {
		t.Errorf("runInit(force) error = %v", err)
	}

	var buf bytes.Buffer
	if err := runLayout(&buf, []string{path}, "text"); err != nil {
		t.Fatalf("runLayout() on init output error = %v", err)
	}
	if !strings.Contains(buf.String(), "(350,325)-(400,375)") {
		t.Errorf("layout of example scenario:\n%s", buf.String())
	}
}

func TestRootCmd_Version(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := buf.String(); got != "mediaview version "+version+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRootCmd_DebugLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"--debug-log", logPath, "layout", filepath.Join(testdata, "scenario_a.yaml")})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `msg="icon placed"`) {
		t.Errorf("debug log missing icon record:\n%s", data)
	}
}

func TestRunLayout_ReportsOverflow(t *testing.T) {
	var buf bytes.Buffer
	if err := runLayout(&buf, []string{filepath.Join(testdata, "overflow.yaml")}, "text"); err != nil {
		t.Fatalf("runLayout() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"  attachment  (0,0)-(400,180) 400x180",
		"  title       (0,180)-(400,220) 400x40",
		"  description (0,220)-(400,280) 400x60",
		"  icon        (350,205)-(400,255) 50x50",
		"  overflow: title, description, icon",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
