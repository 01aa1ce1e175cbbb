package ansibanner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the serialisable description of a banner style. Every field
// is optional; zero values mean "use the default". A Config is turned
// into ready-to-run primitives once, by Resolve, and never consulted at
// render time.
type Config struct {
	// Preset names a built-in or user preset whose settings this Config
	// extends.
	Preset    string           `yaml:"preset,omitempty"`
	Gradient  *GradientConfig  `yaml:"gradient,omitempty"`
	Fill      *FillConfig      `yaml:"fill,omitempty"`
	DotDither *DotDitherConfig `yaml:"dot_dither,omitempty"`
	Shadow    *ShadowConfig    `yaml:"shadow,omitempty"`
	EdgeShade *EdgeShadeConfig `yaml:"edge_shade,omitempty"`
	Outline   *OutlineConfig   `yaml:"outline,omitempty"`
	Sweep     *SweepConfig     `yaml:"sweep,omitempty"`
	Frame     *FrameConfig     `yaml:"frame,omitempty"`
	Animation *AnimationConfig `yaml:"animation,omitempty"`

	Kerning      int    `yaml:"kerning,omitempty"`
	LineGap      int    `yaml:"line_gap,omitempty"`
	Align        string `yaml:"align,omitempty"`
	Padding      string `yaml:"padding,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MaxWidth     int    `yaml:"max_width,omitempty"`
	TrimVertical *bool  `yaml:"trim_vertical,omitempty"`
	ColorMode    string `yaml:"color_mode,omitempty"`
}

// GradientConfig colors the banner. Stops take precedence over Palette,
// which names a preset whose stops are borrowed.
type GradientConfig struct {
	Stops   []string `yaml:"stops,omitempty"`
	Palette string   `yaml:"palette,omitempty"`
	Axis    string   `yaml:"axis,omitempty"`
}

type FillConfig struct {
	Kind    string        `yaml:"kind,omitempty"`
	Char    string        `yaml:"char,omitempty"`
	Density float64       `yaml:"density,omitempty"`
	Dither  *DitherConfig `yaml:"dither,omitempty"`
}

type DitherConfig struct {
	Mode      string `yaml:"mode"`
	Ramp      string `yaml:"ramp,omitempty"`
	Period    int    `yaml:"period,omitempty"`
	Seed      uint32 `yaml:"seed,omitempty"`
	Threshold int    `yaml:"threshold,omitempty"`
}

type DotDitherConfig struct {
	Mode      string `yaml:"mode"`
	Period    int    `yaml:"period,omitempty"`
	Seed      uint32 `yaml:"seed,omitempty"`
	Threshold int    `yaml:"threshold,omitempty"`
	Dots      string `yaml:"dots,omitempty"`
	Targets   string `yaml:"targets,omitempty"`
}

type ShadowConfig struct {
	DX    int     `yaml:"dx"`
	DY    int     `yaml:"dy"`
	Alpha float64 `yaml:"alpha"`
}

type EdgeShadeConfig struct {
	Darken float64 `yaml:"darken"`
	Char   string  `yaml:"char"`
}

type OutlineConfig struct {
	Neighborhood int     `yaml:"neighborhood,omitempty"`
	Char         string  `yaml:"char,omitempty"`
	Color        string  `yaml:"color,omitempty"`
	Darken       float64 `yaml:"darken,omitempty"`
}

// SweepConfig is a static highlight band. Nil numeric fields take the
// DefaultSweep values.
type SweepConfig struct {
	Direction string   `yaml:"direction,omitempty"`
	Center    *float64 `yaml:"center,omitempty"`
	Width     *float64 `yaml:"width,omitempty"`
	Intensity *float64 `yaml:"intensity,omitempty"`
	Softness  *float64 `yaml:"softness,omitempty"`
	Tint      string   `yaml:"tint,omitempty"`
}

type FrameConfig struct {
	Style    string          `yaml:"style,omitempty"`
	Chars    string          `yaml:"chars,omitempty"`
	Color    string          `yaml:"color,omitempty"`
	Gradient *GradientConfig `yaml:"gradient,omitempty"`
}

// AnimationConfig selects one of the stock animations.
type AnimationConfig struct {
	Kind   string `yaml:"kind"`
	Frames int    `yaml:"frames,omitempty"`
	// DelayMS is the time each frame stays on screen.
	DelayMS int `yaml:"delay_ms,omitempty"`
	// Highlight tints the animated sweep band.
	Highlight string `yaml:"highlight,omitempty"`
	// WaveDim and WaveBright override the DefaultWave strengths.
	WaveDim    *float64 `yaml:"wave_dim,omitempty"`
	WaveBright *float64 `yaml:"wave_bright,omitempty"`
	// Step is the roll shift per frame.
	Step int `yaml:"step,omitempty"`
}

// Default animation timing.
const (
	DefaultFrames  = 180
	DefaultDelayMS = 60
)

// DefaultPalette is used when a gradient is requested without stops.
var DefaultPalette = []string{"#00E5FF", "#3A7BFF", "#E6F6FF"}

// DefaultConfig is the plain banner: the default palette on a diagonal
// gradient, centered with one cell of padding.
func DefaultConfig() Config {
	trim := true
	return Config{
		Gradient:     &GradientConfig{Stops: DefaultPalette, Axis: "diagonal"},
		Align:        "center",
		Padding:      "1",
		TrimVertical: &trim,
	}
}

// Merge returns c with every field that over sets replaced by over's
// value. Nested sections are replaced whole, not merged.
func (c Config) Merge(over Config) Config {
	out := c
	if over.Preset != "" {
		out.Preset = over.Preset
	}
	if over.Gradient != nil {
		out.Gradient = over.Gradient
	}
	if over.Fill != nil {
		out.Fill = over.Fill
	}
	if over.DotDither != nil {
		out.DotDither = over.DotDither
	}
	if over.Shadow != nil {
		out.Shadow = over.Shadow
	}
	if over.EdgeShade != nil {
		out.EdgeShade = over.EdgeShade
	}
	if over.Outline != nil {
		out.Outline = over.Outline
	}
	if over.Sweep != nil {
		out.Sweep = over.Sweep
	}
	if over.Frame != nil {
		out.Frame = over.Frame
	}
	if over.Animation != nil {
		out.Animation = over.Animation
	}
	if over.Kerning != 0 {
		out.Kerning = over.Kerning
	}
	if over.LineGap != 0 {
		out.LineGap = over.LineGap
	}
	if over.Align != "" {
		out.Align = over.Align
	}
	if over.Padding != "" {
		out.Padding = over.Padding
	}
	if over.Width != 0 {
		out.Width = over.Width
	}
	if over.MaxWidth != 0 {
		out.MaxWidth = over.MaxWidth
	}
	if over.TrimVertical != nil {
		out.TrimVertical = over.TrimVertical
	}
	if over.ColorMode != "" {
		out.ColorMode = over.ColorMode
	}
	return out
}

// ConfigFile is the layout of a .ansibanner.yaml file: a Config at the top
// level plus named user presets.
type ConfigFile struct {
	Config  `yaml:",inline"`
	Presets map[string]Config `yaml:"presets,omitempty"`
}

// LoadConfigYAML decodes a config file. Unknown keys are rejected so that
// typos surface instead of being silently ignored.
func LoadConfigYAML(data []byte) (*ConfigFile, error) {
	var f ConfigFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, &ConfigError{Field: "yaml", Reason: "cannot decode config", Err: err}
	}
	for name := range f.Presets {
		if strings.TrimSpace(name) == "" {
			return nil, configErrorf("presets", "preset names must not be blank")
		}
	}
	return &f, nil
}

// YAML encodes c in the config file format.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Expand replaces c.Preset with the settings it names, looking in user
// first and then the built-in presets. Preset settings act as the base;
// c's own fields win. A user preset may extend the built-in preset of the
// same name; any other cycle ends in an unknown-preset error.
func (c Config) Expand(user map[string]Config) (Config, error) {
	out := c
	seen := make(map[string]bool)
	for out.Preset != "" {
		name := out.Preset
		base, ok := user[name]
		if !ok || seen[name] {
			p, err := PresetByName(name)
			if err != nil {
				return Config{}, err
			}
			base = p.Config
		}
		seen[name] = true
		out.Preset = ""
		out = base.Merge(out)
	}
	return out, nil
}

// Pipeline is a resolved Config: validated primitives for every stage,
// in the order the renderer runs them. Nil stages are skipped.
type Pipeline struct {
	Compose      ComposeOptions
	TrimVertical bool
	Gradient     *Gradient
	Fill         *FillStage
	Sweep        *Sweep
	DotDither    *DotDither
	Shadow       *Shadow
	EdgeShade    *EdgeShade
	Outline      *Outline
	Layout       Layout
	Frame        *Frame
	ColorMode    ColorMode

	Animation Animation
	Frames    int
	DelayMS   int
}

// Resolve validates c and builds its Pipeline. Preset references must
// already have been expanded; built-in presets are expanded here.
func (c Config) Resolve() (*Pipeline, error) {
	c, err := c.Expand(nil)
	if err != nil {
		return nil, err
	}
	p := &Pipeline{
		Compose:      ComposeOptions{Kerning: c.Kerning, LineGap: c.LineGap},
		TrimVertical: c.TrimVertical == nil || *c.TrimVertical,
	}
	if p.Compose.Align, err = ParseAlign(c.Align); err != nil {
		return nil, err
	}
	if err := p.Compose.validate(); err != nil {
		return nil, err
	}
	if c.Gradient != nil {
		if p.Gradient, err = c.Gradient.resolve("gradient"); err != nil {
			return nil, err
		}
	}
	if p.Fill, err = c.Fill.resolve(); err != nil {
		return nil, err
	}
	if c.Sweep != nil {
		if p.Sweep, err = c.Sweep.resolve(); err != nil {
			return nil, err
		}
	}
	if c.DotDither != nil {
		if p.DotDither, err = c.DotDither.resolve(); err != nil {
			return nil, err
		}
	}
	if c.Shadow != nil {
		s := Shadow{DX: c.Shadow.DX, DY: c.Shadow.DY, Alpha: c.Shadow.Alpha}
		if err := s.validate(); err != nil {
			return nil, err
		}
		p.Shadow = &s
	}
	if c.EdgeShade != nil {
		e := EdgeShade{Darken: c.EdgeShade.Darken}
		if e.Rune, err = parseRune("edge_shade.char", c.EdgeShade.Char); err != nil {
			return nil, err
		}
		if err := e.validate(); err != nil {
			return nil, err
		}
		p.EdgeShade = &e
	}
	if c.Outline != nil {
		if p.Outline, err = c.Outline.resolve(); err != nil {
			return nil, err
		}
	}

	p.Layout = Layout{Width: c.Width, MaxWidth: c.MaxWidth, Align: p.Compose.Align}
	if c.Padding != "" {
		if p.Layout.Padding, err = ParsePadding(c.Padding); err != nil {
			return nil, err
		}
	}
	if err := p.Layout.validate(); err != nil {
		return nil, err
	}
	if c.Frame != nil {
		if p.Frame, err = c.Frame.resolve(); err != nil {
			return nil, err
		}
	}
	if p.ColorMode, err = ParseColorMode(c.ColorMode); err != nil {
		return nil, err
	}
	if c.Animation != nil {
		if err := c.Animation.resolve(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (gc *GradientConfig) resolve(field string) (*Gradient, error) {
	stops := gc.Stops
	if len(stops) == 0 && gc.Palette != "" {
		preset, err := PresetByName(gc.Palette)
		if err != nil {
			return nil, err
		}
		if preset.Config.Gradient == nil {
			return nil, configErrorf(field+".palette", "preset %q has no gradient", gc.Palette)
		}
		stops = preset.Config.Gradient.Stops
	}
	if len(stops) == 0 {
		stops = DefaultPalette
	}
	pal := make(Palette, len(stops))
	for i, s := range stops {
		c, err := ParseColor(s)
		if err != nil {
			return nil, &ConfigError{Field: field + ".stops", Reason: fmt.Sprintf("stop %d", i), Err: err}
		}
		pal[i] = c
	}
	axis := Diagonal
	if gc.Axis != "" {
		var err error
		if axis, err = ParseAxis(gc.Axis); err != nil {
			return nil, err
		}
	}
	return NewGradient(pal, axis)
}

func (fc *FillConfig) resolve() (*FillStage, error) {
	if fc == nil {
		return NewFillStage(Fill{}, nil)
	}
	kind, err := ParseFillKind(fc.Kind)
	if err != nil {
		return nil, err
	}
	f := Fill{Kind: kind, Density: fc.Density}
	if fc.Char != "" {
		if f.Char, err = parseRune("fill.char", fc.Char); err != nil {
			return nil, err
		}
	}
	var d *Dither
	if fc.Dither != nil {
		if d, err = fc.Dither.resolve(); err != nil {
			return nil, err
		}
	}
	return NewFillStage(f, d)
}

func (dc *DitherConfig) resolve() (*Dither, error) {
	mode, err := ParseDitherMode(dc.Mode)
	if err != nil {
		return nil, err
	}
	threshold, err := parseThreshold("dither.threshold", dc.Threshold)
	if err != nil {
		return nil, err
	}
	ramp := []rune(dc.Ramp)
	if len(ramp) == 0 {
		ramp = DefaultRamp
	}
	d := &Dither{Mode: mode, Ramp: ramp, Period: dc.Period, Seed: dc.Seed, Threshold: threshold}
	if mode == DitherChecker && d.Period == 0 {
		d.Period = 2
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (dc *DotDitherConfig) resolve() (*DotDither, error) {
	mode, err := ParseDitherMode(dc.Mode)
	if err != nil {
		return nil, err
	}
	threshold, err := parseThreshold("dot_dither.threshold", dc.Threshold)
	if err != nil {
		return nil, err
	}
	d := &DotDither{Mode: mode, Period: dc.Period, Seed: dc.Seed, Threshold: threshold}
	if mode == DitherChecker && d.Period == 0 {
		d.Period = 2
	}
	dots := dc.Dots
	if dots == "" {
		dots = "░"
	}
	if d.Dots, err = ParseDots(dots); err != nil {
		return nil, err
	}
	if dc.Targets != "" {
		d.Targets = []rune(dc.Targets)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (oc *OutlineConfig) resolve() (*Outline, error) {
	o := &Outline{Neighborhood: oc.Neighborhood, Darken: oc.Darken}
	if o.Neighborhood == 0 {
		o.Neighborhood = 4
	}
	var err error
	if oc.Char != "" {
		if o.Rune, err = parseRune("outline.char", oc.Char); err != nil {
			return nil, err
		}
	}
	if oc.Color != "" {
		c, err := ParseColor(oc.Color)
		if err != nil {
			return nil, &ConfigError{Field: "outline.color", Reason: "bad color", Err: err}
		}
		o.Color = &c
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (sc *SweepConfig) resolve() (*Sweep, error) {
	dir := SweepDiagonalDown
	if sc.Direction != "" {
		var err error
		if dir, err = ParseSweepDirection(sc.Direction); err != nil {
			return nil, err
		}
	}
	s := DefaultSweep(dir)
	if sc.Center != nil {
		s.Center = *sc.Center
	}
	if sc.Width != nil {
		s.Width = *sc.Width
	}
	if sc.Intensity != nil {
		s.Intensity = *sc.Intensity
	}
	if sc.Softness != nil {
		s.Softness = *sc.Softness
	}
	if sc.Tint != "" {
		c, err := ParseColor(sc.Tint)
		if err != nil {
			return nil, &ConfigError{Field: "sweep.tint", Reason: "bad color", Err: err}
		}
		s.Tint = &c
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (fc *FrameConfig) resolve() (*Frame, error) {
	f := &Frame{}
	var err error
	switch {
	case fc.Chars != "":
		f.Chars, err = ParseFrameChars(fc.Chars)
	case fc.Style != "":
		f.Chars, err = FrameStyle(fc.Style)
	default:
		f.Chars, err = FrameStyle("single")
	}
	if err != nil {
		return nil, err
	}
	if fc.Color != "" {
		c, err := ParseColor(fc.Color)
		if err != nil {
			return nil, &ConfigError{Field: "frame.color", Reason: "bad color", Err: err}
		}
		f.Color = &c
	}
	if fc.Gradient != nil {
		if f.Gradient, err = fc.Gradient.resolve("frame.gradient"); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (ac *AnimationConfig) resolve(p *Pipeline) error {
	anim, err := ParseAnimation(ac.Kind)
	if err != nil {
		return err
	}
	if _, ok := anim.(SweepAnimation); !ok && ac.Highlight != "" {
		return configErrorf("animation.highlight", "only applies to the sweep animation")
	}
	switch a := anim.(type) {
	case SweepAnimation:
		if p.Sweep != nil {
			a.Sweep = *p.Sweep
			a.Sweep.Tint = nil
		}
		if ac.Highlight != "" {
			c, err := ParseColor(ac.Highlight)
			if err != nil {
				return &ConfigError{Field: "animation.highlight", Reason: "bad color", Err: err}
			}
			a.Sweep.Tint = &c
		}
		anim = a
	case Wave:
		if ac.WaveDim != nil {
			a.Dim = *ac.WaveDim
		}
		if ac.WaveBright != nil {
			a.Bright = *ac.WaveBright
		}
		if a.Dim < 0 || a.Dim > 1 || a.Bright < 0 || a.Bright > 1 {
			return configErrorf("animation.wave", "strengths must be in [0, 1], got dim %g bright %g", a.Dim, a.Bright)
		}
		anim = a
	case Roll:
		a.Step = ac.Step
		anim = a
	}
	p.Animation = anim
	p.Frames = ac.Frames
	if p.Frames == 0 {
		p.Frames = DefaultFrames
	}
	if p.Frames < 0 {
		return configErrorf("animation.frames", "must not be negative, got %d", ac.Frames)
	}
	p.DelayMS = ac.DelayMS
	if p.DelayMS == 0 {
		p.DelayMS = DefaultDelayMS
	}
	if p.DelayMS < 0 {
		return configErrorf("animation.delay_ms", "must not be negative, got %d", ac.DelayMS)
	}
	return nil
}

// ParseColor reads "#RRGGBB" or a comma-separated "r,g,b" triple.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ",") {
		return ParseHex(s)
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, &ColorParseError{Input: s, Reason: "want three components"}
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, &ColorParseError{Input: s, Reason: "component out of range", Err: err}
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

// parseRune requires s to hold exactly one character.
func parseRune(field, s string) (rune, error) {
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, configErrorf(field, "want a single character, got %q", s)
	}
	return rs[0], nil
}

func parseThreshold(field string, v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, configErrorf(field, "must be in [0, 255], got %d", v)
	}
	return uint8(v), nil
}
