// Package scenario loads media card fixtures: a container and the intrinsic
// sizes of its children, written as YAML or TOML.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/mediaview"
)

// Format is a scenario file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Padding mirrors mediaview.Edges with file tags.
type Padding struct {
	Top    int `yaml:"top" toml:"top"`
	Right  int `yaml:"right" toml:"right"`
	Bottom int `yaml:"bottom" toml:"bottom"`
	Left   int `yaml:"left" toml:"left"`
}

// ContainerSpec describes the container box.
type ContainerSpec struct {
	Width   int     `yaml:"width" toml:"width"`
	Height  int     `yaml:"height" toml:"height"`
	Padding Padding `yaml:"padding" toml:"padding"`
}

// ChildSpec describes one child. Role is optional; when set it must name
// the role implied by the child's position.
type ChildSpec struct {
	Role   string `yaml:"role,omitempty" toml:"role,omitempty"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// Scenario is a single media card fixture.
type Scenario struct {
	Name      string        `yaml:"name,omitempty" toml:"name,omitempty"`
	Container ContainerSpec `yaml:"container" toml:"container"`
	Children  []ChildSpec   `yaml:"children" toml:"children"`
}

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported scenario extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Load reads and parses the scenario at path.
// A scenario without a name is named after its file.
func Load(path string) (*Scenario, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a scenario in the given format and validates child roles.
// Unknown fields are rejected. The child count is deliberately not checked
// here; the layout engine owns that rule.
func Parse(data []byte, format Format) (*Scenario, error) {
	var s Scenario

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to parse scenario: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to parse scenario: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown scenario format %q", format)
	}

	if err := s.validateRoles(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validateRoles() error {
	for i, c := range s.Children {
		if c.Role == "" {
			continue
		}
		role, ok := mediaview.ParseRole(c.Role)
		if !ok {
			return fmt.Errorf("child %d: unknown role %q", i, c.Role)
		}
		if int(role) != i {
			return fmt.Errorf("child %d: role %q belongs at index %d", i, c.Role, int(role))
		}
	}
	return nil
}

// ContainerValue converts the container spec for the engine.
func (s *Scenario) ContainerValue() mediaview.Container {
	p := s.Container.Padding
	return mediaview.Container{
		Width:   s.Container.Width,
		Height:  s.Container.Height,
		Padding: mediaview.EdgeTRBL(p.Top, p.Right, p.Bottom, p.Left),
	}
}

// Boxes builds one mediaview.Box per child, in file order.
func (s *Scenario) Boxes() []*mediaview.Box {
	boxes := make([]*mediaview.Box, len(s.Children))
	for i, c := range s.Children {
		name := c.Role
		if name == "" {
			name = mediaview.Role(i).String()
		}
		boxes[i] = mediaview.NewBox(name, c.Width, c.Height)
	}
	return boxes
}

// Encode writes s in the given format.
func Encode(s *Scenario, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatTOML:
		return toml.Marshal(s)
	default:
		return nil, fmt.Errorf("unknown scenario format %q", format)
	}
}

// Example returns a card with a 400x300 attachment in a 400x600 container.
func Example() *Scenario {
	return &Scenario{
		Name:      "example",
		Container: ContainerSpec{Width: 400, Height: 600},
		Children: []ChildSpec{
			{Role: "attachment", Width: 400, Height: 300},
			{Role: "title", Width: 400, Height: 40},
			{Role: "description", Width: 400, Height: 60},
			{Role: "icon", Width: 50, Height: 50},
		},
	}
}
