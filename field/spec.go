package field

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/pathplanner/plan"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSpec []byte

// Spec describes a field image and how it is placed on screen.
type Spec struct {
	Name        string    `yaml:"name"`
	Image       string    `yaml:"image"`
	ImageRect   RectSpec  `yaml:"image_rect"`
	FrameRect   RectSpec  `yaml:"frame_rect"`
	FrameStroke float32   `yaml:"frame_stroke"`
	Scale       ScaleSpec `yaml:"scale"`

	// dir is where the spec was read from; relative image paths resolve
	// against it. Empty for the embedded spec.
	dir string
}

type RectSpec struct {
	MinX float32 `yaml:"min_x"`
	MinY float32 `yaml:"min_y"`
	MaxX float32 `yaml:"max_x"`
	MaxY float32 `yaml:"max_y"`
}

func (r RectSpec) Width() float32  { return r.MaxX - r.MinX }
func (r RectSpec) Height() float32 { return r.MaxY - r.MinY }

func (r RectSpec) Rect() plan.Rect {
	return plan.Rect{X: r.MinX, Y: r.MinY, Width: r.Width(), Height: r.Height()}
}

// ScaleSpec is a known real distance and the number of image pixels it
// spans at the rendered size.
type ScaleSpec struct {
	Feet   float64 `yaml:"feet"`
	Inches float64 `yaml:"inches"`
	Pixels float64 `yaml:"pixels"`
}

func (s ScaleSpec) FeetPerPixel() float32 {
	return plan.ScaleFeetPerPixel(float32(s.Feet), float32(s.Inches), float32(s.Pixels))
}

// LoadSpec reads a field spec from disk. An empty filename selects the
// embedded 2023 field.
func LoadSpec(filename string) (Spec, error) {
	if filename == "" {
		return parseSpec(defaultSpec, "", "default.yaml")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Spec{}, fmt.Errorf("field: load %s: %w", filename, err)
	}
	return parseSpec(data, filepath.Dir(filename), filename)
}

// DefaultSpec returns the embedded spec.
func DefaultSpec() Spec {
	spec, err := LoadSpec("")
	if err != nil {
		panic(err)
	}
	return spec
}

func parseSpec(data []byte, dir, name string) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("field: unmarshal %s: %w", name, err)
	}
	spec.dir = dir
	if err := spec.Validate(); err != nil {
		return Spec{}, fmt.Errorf("field: %s: %w", name, err)
	}
	return spec, nil
}

func (s Spec) Validate() error {
	if s.Image == "" {
		return fmt.Errorf("image is required")
	}
	if s.ImageRect.Width() <= 0 || s.ImageRect.Height() <= 0 {
		return fmt.Errorf("image_rect is empty: %+v", s.ImageRect)
	}
	if s.FrameRect.Width() < 0 || s.FrameRect.Height() < 0 {
		return fmt.Errorf("frame_rect is inverted: %+v", s.FrameRect)
	}
	if s.Scale.Pixels <= 0 {
		return fmt.Errorf("scale.pixels must be positive, got %v", s.Scale.Pixels)
	}
	if s.Scale.Feet+s.Scale.Inches/12 <= 0 {
		return fmt.Errorf("scale distance must be positive")
	}
	return nil
}

// Field returns the click bounds and scale the planner works in.
func (s Spec) Field() plan.Field {
	return plan.Field{
		Bounds:       s.ImageRect.Rect(),
		FeetPerPixel: s.Scale.FeetPerPixel(),
	}
}

// ImagePath resolves the image filename. A non-empty override is used as
// given; the spec's own image is relative to the spec file.
func (s Spec) ImagePath(override string) string {
	if override != "" {
		return override
	}
	if filepath.IsAbs(s.Image) || s.dir == "" {
		return s.Image
	}
	return filepath.Join(s.dir, s.Image)
}
