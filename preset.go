package ansibanner

import (
	"slices"
	"strings"
)

// Preset is a named, ready-made banner style.
type Preset struct {
	Name        string
	Description string
	Config      Config
}

// verticalPreset builds a preset that paints stops top to bottom over the
// font's own characters.
func verticalPreset(name, description string, stops ...string) Preset {
	return Preset{
		Name:        name,
		Description: description,
		Config: Config{
			Gradient: &GradientConfig{Stops: stops, Axis: "vertical"},
			Fill:     &FillConfig{Kind: "keep"},
		},
	}
}

var presets = []Preset{
	verticalPreset("neon-cyber", "cyan to purple to pink", "#00E5FF", "#7B5CFF", "#FF5AD9"),
	verticalPreset("arctic-tech", "cyan to blue to white", "#00E5FF", "#3A7BFF", "#E6F6FF"),
	verticalPreset("sunset-neon", "orange to pink to purple", "#FF8C42", "#FF3D7F", "#8A2BFF"),
	verticalPreset("forest-sky", "green to teal to blue", "#22C55E", "#14B8A6", "#3B82F6"),
	verticalPreset("chrome", "silver metallic", "#F5F5F5", "#BDBDBD", "#6B7280", "#E5E7EB"),
	verticalPreset("crt-amber", "retro amber phosphor", "#FFB000", "#FF8C00", "#7A3E00"),
	verticalPreset("ocean-flow", "blue to teal to aqua", "#0EA5E9", "#14B8A6", "#5EEAD4"),
	verticalPreset("deep-space", "blue to purple to indigo", "#1E3A8A", "#5B21B6", "#312E81"),
	verticalPreset("fire-warning", "yellow to orange to red", "#FACC15", "#FB923C", "#EF4444"),
	verticalPreset("warm-luxury", "pink to coral to gold", "#FF5AD9", "#FF8FAB", "#FFD166"),
	verticalPreset("earth-tone", "sand to earth to olive", "#E6CCB2", "#B08968", "#6B705C"),
	verticalPreset("royal-purple", "lavender to deep purple", "#E9D5FF", "#A855F7", "#581C87"),
	verticalPreset("matrix", "neon green to deep green", "#00FF9C", "#00C46A", "#003B24"),
	verticalPreset("aurora-flux", "teal to sky blue to violet", "#14F1D9", "#38BDF8", "#8B5CF6", "#C026D3"),
}

// Presets returns the built-in presets in display order. The slice and
// its configs are copies; changing them does not affect later lookups.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.clone()
	}
	return out
}

// PresetNames lists the built-in preset names in display order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// PresetByName finds a built-in preset. Names are matched case
// insensitively and underscores may stand in for dashes.
func PresetByName(name string) (Preset, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	i := slices.IndexFunc(presets, func(p Preset) bool { return p.Name == key })
	if i < 0 {
		return Preset{}, configErrorf("preset", "unknown preset %q", name)
	}
	return presets[i].clone(), nil
}

// Palette returns the preset's gradient stops.
func (p Preset) Palette() (Palette, error) {
	if p.Config.Gradient == nil {
		return nil, configErrorf("preset", "preset %q has no gradient", p.Name)
	}
	return ParsePalette(p.Config.Gradient.Stops...)
}

func (p Preset) clone() Preset {
	c := p
	if p.Config.Gradient != nil {
		g := *p.Config.Gradient
		g.Stops = slices.Clone(g.Stops)
		c.Config.Gradient = &g
	}
	if p.Config.Fill != nil {
		f := *p.Config.Fill
		c.Config.Fill = &f
	}
	return c
}
