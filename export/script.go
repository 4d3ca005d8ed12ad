package export

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pathplanner/plan"
)

// scriptEntry is appended to every export script. The script must define
// export_path(waypoints, alliance) returning a string. format is a Tengo
// builtin and cannot be redeclared.
const scriptEntry = `
__output := export_path(__waypoints, __alliance)
`

// Script is a user-supplied Tengo formatter for the exported path. It lets a
// team emit robot code directly instead of the built-in action list.
//
// Each waypoint is passed as a map with keys kind, action, x, y, dx, dy and
// angle. A Script is not safe for concurrent use.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// LoadScript reads and compiles the formatter at path.
func LoadScript(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("export: load script %s: %w", path, err)
	}
	return CompileScript(path, src)
}

func CompileScript(name string, src []byte) (*Script, error) {
	full := make([]byte, 0, len(src)+len(scriptEntry)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, scriptEntry...)

	script := tengo.NewScript(full)
	_ = script.Add("__waypoints", []any{})
	_ = script.Add("__alliance", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("export: compile script %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

// Format runs the script against p and returns its output.
func (s *Script) Format(p *plan.Path, alliance plan.Alliance) (string, error) {
	wps := p.Waypoints()
	values := make([]any, 0, len(wps))
	for _, wp := range wps {
		values = append(values, map[string]any{
			"kind":   wp.Action.Kind.String(),
			"action": wp.Action.String(),
			"x":      float64(wp.Pos.X),
			"y":      float64(wp.Pos.Y),
			"dx":     float64(wp.Action.DX),
			"dy":     float64(wp.Action.DY),
			"angle":  wp.Action.Angle,
		})
	}

	if err := s.compiled.Set("__waypoints", values); err != nil {
		return "", fmt.Errorf("export: script %s: %w", s.name, err)
	}
	if err := s.compiled.Set("__alliance", alliance.String()); err != nil {
		return "", fmt.Errorf("export: script %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return "", fmt.Errorf("export: run script %s: %w", s.name, err)
	}

	out := s.compiled.Get("__output")
	if out.ValueType() != "string" {
		return "", fmt.Errorf("export: script %s: export_path returned %s, want string", s.name, out.ValueType())
	}
	return out.String(), nil
}
