package ansibanner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
preset: neon-cyber
padding: "0,2"
kerning: 1
color_mode: ansi256
shadow:
  dx: 1
  dy: 1
  alpha: 0.6
sweep:
  direction: horizontal
  center: 0.3
animation:
  kind: wave
  frames: 24
  wave_dim: 0.5
presets:
  loud:
    preset: fire-warning
    fill:
      kind: blocks
    frame:
      style: heavy
`

func TestLoadConfigYAML(t *testing.T) {
	t.Parallel()

	f, err := LoadConfigYAML([]byte(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "neon-cyber", f.Preset)
	assert.Equal(t, "0,2", f.Padding)
	assert.Equal(t, 1, f.Kerning)
	assert.Equal(t, &ShadowConfig{DX: 1, DY: 1, Alpha: 0.6}, f.Shadow)
	require.NotNil(t, f.Sweep.Center)
	assert.Equal(t, 0.3, *f.Sweep.Center)
	assert.Nil(t, f.Sweep.Width)
	require.Contains(t, f.Presets, "loud")
	assert.Equal(t, "heavy", f.Presets["loud"].Frame.Style)

	p, err := f.Config.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Color256, p.ColorMode)
	assert.Equal(t, Padding{Right: 2, Left: 2}, p.Layout.Padding)
	assert.Equal(t, Vertical, p.Gradient.Axis(), "preset gradient")
	assert.Equal(t, SweepHorizontal, p.Sweep.Direction)
	assert.Equal(t, 0.3, p.Sweep.Center)
	assert.Equal(t, DefaultSweep(SweepHorizontal).Width, p.Sweep.Width)
	assert.Equal(t, Wave{Dim: 0.5, Bright: DefaultWave().Bright}, p.Animation)
	assert.Equal(t, 24, p.Frames)
	assert.Equal(t, DefaultDelayMS, p.DelayMS)
}

func TestLoadConfigYAMLErrors(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"unknown key":       "gradiant:\n  axis: vertical\n",
		"unknown nested":    "shadow:\n  depth: 3\n",
		"wrong type":        "kerning: wide\n",
		"blank preset name": "presets:\n  \" \":\n    kerning: 1\n",
	} {
		_, err := LoadConfigYAML([]byte(doc))
		var ce *ConfigError
		assert.True(t, errors.As(err, &ce), "%s: got %v", name, err)
	}

	f, err := LoadConfigYAML(nil)
	require.NoError(t, err, "an empty file is an empty config")
	assert.Equal(t, Config{}, f.Config)
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	c.Outline = &OutlineConfig{Neighborhood: 8, Char: "*"}
	data, err := c.YAML()
	require.NoError(t, err)
	f, err := LoadConfigYAML(data)
	require.NoError(t, err)
	assert.Equal(t, c, f.Config)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := DefaultConfig()
	base.Shadow = &ShadowConfig{DX: 1, DY: 1, Alpha: 0.5}
	over := Config{Align: "right", Gradient: &GradientConfig{Axis: "horizontal"}, Kerning: 2}

	got := base.Merge(over)
	assert.Equal(t, "right", got.Align)
	assert.Equal(t, 2, got.Kerning)
	assert.Equal(t, base.Shadow, got.Shadow, "unset sections are kept")
	assert.Equal(t, over.Gradient, got.Gradient, "sections are replaced whole")
	assert.Empty(t, got.Gradient.Stops)
	assert.Equal(t, "1", got.Padding)
	assert.Equal(t, base, base.Merge(Config{}))
}

func TestExpand(t *testing.T) {
	t.Parallel()

	c, err := Config{Preset: "chrome", Align: "right"}.Expand(nil)
	require.NoError(t, err)
	assert.Empty(t, c.Preset)
	assert.Equal(t, "right", c.Align)
	assert.Equal(t, []string{"#F5F5F5", "#BDBDBD", "#6B7280", "#E5E7EB"}, c.Gradient.Stops)

	user := map[string]Config{
		"chrome": {Preset: "chrome", Kerning: 3},
		"a":      {Preset: "b"},
		"b":      {Preset: "a"},
		"mine":   {Preset: "Royal_Purple", LineGap: 1},
	}
	c, err = Config{Preset: "chrome"}.Expand(user)
	require.NoError(t, err, "a user preset may extend the builtin of the same name")
	assert.Equal(t, 3, c.Kerning)
	require.NotNil(t, c.Gradient)

	c, err = Config{Preset: "mine", LineGap: 2}.Expand(user)
	require.NoError(t, err)
	assert.Equal(t, 2, c.LineGap, "the referring config wins")
	assert.Equal(t, "#E9D5FF", c.Gradient.Stops[0])

	_, err = Config{Preset: "a"}.Expand(user)
	assert.Error(t, err, "cycles end in an unknown preset")
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	p, err := DefaultConfig().Resolve()
	require.NoError(t, err)
	assert.Equal(t, Diagonal, p.Gradient.Axis())
	assert.Equal(t, len(DefaultPalette), len(p.Gradient.Stops()))
	assert.Equal(t, AlignCenter, p.Compose.Align)
	assert.Equal(t, AlignCenter, p.Layout.Align)
	assert.Equal(t, UniformPadding(1), p.Layout.Padding)
	assert.True(t, p.TrimVertical)
	assert.Equal(t, FillKeep, p.Fill.Fill.Kind)
	assert.Nil(t, p.Animation)
	assert.Equal(t, ColorAuto, p.ColorMode)

	p, err = Config{
		Fill:      &FillConfig{Kind: "solid", Dither: &DitherConfig{Mode: "checker"}},
		DotDither: &DotDitherConfig{Mode: "checker"},
		Outline:   &OutlineConfig{},
		Frame:     &FrameConfig{},
		Animation: &AnimationConfig{Kind: "sweep", Highlight: "#FF0000"},
	}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2, p.Fill.Dither.Period)
	assert.Equal(t, DefaultRamp, p.Fill.Dither.Ramp)
	assert.Equal(t, 2, p.DotDither.Period)
	assert.Equal(t, [2]rune{'░', '░'}, p.DotDither.Dots)
	assert.Equal(t, 4, p.Outline.Neighborhood)
	assert.Equal(t, FrameChars{'┌', '┐', '└', '┘', '─', '│'}, p.Frame.Chars)
	assert.Equal(t, DefaultFrames, p.Frames)
	anim, ok := p.Animation.(SweepAnimation)
	require.True(t, ok)
	assert.Equal(t, &RGB{255, 0, 0}, anim.Sweep.Tint)
	assert.Equal(t, DefaultSweepAnimation().Sweep.Softness, anim.Sweep.Softness)
}

func TestResolveSweepAnimationFollowsStaticSweep(t *testing.T) {
	t.Parallel()

	p, err := Config{
		Sweep:     &SweepConfig{Direction: "vertical", Width: ptr(0.4), Tint: "#00FF00"},
		Animation: &AnimationConfig{Kind: "sweep"},
	}.Resolve()
	require.NoError(t, err)
	anim := p.Animation.(SweepAnimation)
	assert.Equal(t, SweepVertical, anim.Sweep.Direction)
	assert.Equal(t, 0.4, anim.Sweep.Width)
	assert.Nil(t, anim.Sweep.Tint, "the static tint does not carry over")
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad align", Config{Align: "justify"}},
		{"negative kerning", Config{Kerning: -1}},
		{"bad stop", Config{Gradient: &GradientConfig{Stops: []string{"#00FF00", "green"}}}},
		{"bad axis", Config{Gradient: &GradientConfig{Axis: "radial"}}},
		{"bad palette", Config{Gradient: &GradientConfig{Palette: "nope"}}},
		{"bad fill", Config{Fill: &FillConfig{Kind: "plaid"}}},
		{"multi-char fill", Config{Fill: &FillConfig{Kind: "solid", Char: "##"}}},
		{"bad density", Config{Fill: &FillConfig{Kind: "pixel", Density: 2}}},
		{"bad dither mode", Config{Fill: &FillConfig{Kind: "solid", Dither: &DitherConfig{Mode: "blue"}}}},
		{"bad threshold", Config{DotDither: &DotDitherConfig{Mode: "noise", Threshold: 300}}},
		{"bad dots", Config{DotDither: &DotDitherConfig{Mode: "checker", Dots: "abc"}}},
		{"bad shadow", Config{Shadow: &ShadowConfig{Alpha: 1.5}}},
		{"edge shade without char", Config{EdgeShade: &EdgeShadeConfig{Darken: 0.3}}},
		{"bad outline", Config{Outline: &OutlineConfig{Neighborhood: 5}}},
		{"bad outline color", Config{Outline: &OutlineConfig{Color: "#0"}}},
		{"bad sweep", Config{Sweep: &SweepConfig{Softness: ptr(0.2)}}},
		{"bad frame", Config{Frame: &FrameConfig{Style: "zigzag"}}},
		{"bad frame chars", Config{Frame: &FrameConfig{Chars: "+-"}}},
		{"bad width", Config{Width: -3}},
		{"bad color mode", Config{ColorMode: "16"}},
		{"bad animation", Config{Animation: &AnimationConfig{Kind: "spin"}}},
		{"highlight on wave", Config{Animation: &AnimationConfig{Kind: "wave", Highlight: "#FFFFFF"}}},
		{"wave strength", Config{Animation: &AnimationConfig{Kind: "wave", WaveBright: ptr(1.5)}}},
		{"negative frames", Config{Animation: &AnimationConfig{Kind: "roll", Frames: -1}}},
		{"negative delay", Config{Animation: &AnimationConfig{Kind: "roll", DelayMS: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.cfg.Resolve()
			require.Error(t, err)
			var ce *ConfigError
			assert.True(t, errors.As(err, &ce), "want *ConfigError, got %T: %v", err, err)
		})
	}
}
