package camera

import (
	"fmt"
	"sort"

	"archery3d/vmath"
)

// Preset is a named fixed camera placement.
type Preset struct {
	Name            string
	Eye, Center, Up vmath.Vec3
}

var (
	// TopView looks down on the room from above; up points towards the target wall.
	TopView = Preset{
		Name:   "top",
		Eye:    vmath.Vec3{X: 0, Y: 30, Z: 0},
		Center: vmath.Vec3{X: 0, Y: 0, Z: 10},
		Up:     vmath.Vec3{X: 0, Y: 0, Z: -1},
	}
	SideView = Preset{
		Name:   "side",
		Eye:    vmath.Vec3{X: 30, Y: 0, Z: 0},
		Center: vmath.Vec3{X: 0, Y: 0, Z: 10},
		Up:     vmath.Vec3{X: 0, Y: 1, Z: 0},
	}
	FrontView = Preset{
		Name:   "front",
		Eye:    vmath.Vec3{X: 0, Y: 0, Z: 25},
		Center: vmath.Vec3{X: 0, Y: 0, Z: 0},
		Up:     vmath.Vec3{X: 0, Y: 1, Z: 0},
	}
)

var presets = map[string]Preset{
	TopView.Name:   TopView,
	SideView.Name:  SideView,
	FrontView.Name: FrontView,
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown camera preset %q (have %v)", name, PresetNames())
	}
	return p, nil
}

// PresetNames lists the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
