package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wbrown/ansibanner"
)

// options holds every styling flag. Flags only override the configuration
// when they were given on the command line.
type options struct {
	text       string
	fontPath   string
	configPath string
	debug      bool

	style    string
	gradient string
	palette  []string
	preset   string

	frame         string
	frameChars    string
	frameColor    string
	frameGradient string
	framePalette  []string
	framePreset   string

	fill               string
	fillChar           string
	density            float64
	fillRamp           string
	pixelDitherChecker int
	pixelDitherNoise   string

	ditherChecker int
	ditherNoise   string
	ditherTargets string
	ditherDots    string

	shadow       string
	edgeShade    string
	outline      int
	outlineChar  string
	outlineColor string

	align        string
	padding      string
	width        int
	maxWidth     int
	fit          bool
	kerning      int
	lineGap      int
	trimVertical bool
	noTrim       bool
	colorMode    string

	lightSweep     bool
	sweepDirection string
	sweepCenter    float64
	sweepWidth     float64
	sweepIntensity float64
	sweepSoftness  float64

	animateSweep   int
	animateWave    int
	animateRoll    int
	frames         int
	once           bool
	waveDim        float64
	waveBright     float64
	sweepHighlight string

	png   string
	gif   string
	scale int
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.text, "text", "t", "", "banner text (default: the arguments, or stdin)")
	fs.StringVarP(&o.fontPath, "font", "f", "", "FIGlet .flf font file (default: builtin block font)")
	fs.StringVar(&o.configPath, "config", "", "config file (default: ./.ansibanner.yaml, then $XDG_CONFIG_HOME/ansibanner/config.yaml)")
	fs.BoolVar(&o.debug, "debug", false, "log debug information to stderr")

	fs.StringVarP(&o.style, "style", "s", "", "named style: "+strings.Join(ansibanner.PresetNames(), ", "))
	fs.StringVar(&o.gradient, "gradient", "", "gradient axis: vertical, horizontal or diagonal")
	fs.StringSliceVar(&o.palette, "palette", nil, "comma-separated gradient colors (#RRGGBB or r,g,b)")
	fs.StringVar(&o.preset, "preset", "", "take the gradient colors from a named style")

	fs.StringVar(&o.frame, "frame", "", "frame style: single, double, rounded, heavy or ascii")
	fs.StringVar(&o.frameChars, "frame-chars", "", "6 frame characters: top-left, top-right, bottom-left, bottom-right, horizontal, vertical")
	fs.StringVar(&o.frameColor, "frame-color", "", "frame color")
	fs.StringVar(&o.frameGradient, "frame-gradient", "", "frame gradient axis")
	fs.StringSliceVar(&o.framePalette, "frame-palette", nil, "frame gradient colors")
	fs.StringVar(&o.framePreset, "frame-preset", "", "take the frame gradient colors from a named style")

	fs.StringVar(&o.fill, "fill", "", "fill: keep, blocks, solid or pixel")
	fs.StringVar(&o.fillChar, "fill-char", "", "character for solid and pixel fills")
	fs.Float64Var(&o.density, "density", 1, "fraction of cells a pixel fill keeps")
	fs.StringVar(&o.fillRamp, "fill-ramp", "", "sparse-to-dense characters for fill dithering (default: "+string(ansibanner.DefaultRamp)+")")
	fs.IntVar(&o.pixelDitherChecker, "pixel-dither-checker", 0, "dither the fill with a checker pattern of this period")
	fs.StringVar(&o.pixelDitherNoise, "pixel-dither-noise", "", "dither the fill with seeded noise: SEED,THRESHOLD")

	fs.IntVar(&o.ditherChecker, "dither-checker", 0, "dot dither with a checker pattern of this period")
	fs.StringVar(&o.ditherNoise, "dither-noise", "", "dot dither with seeded noise: SEED,THRESHOLD")
	fs.StringVar(&o.ditherTargets, "dither-targets", "░▒▓", "characters the dot dither replaces")
	fs.StringVar(&o.ditherDots, "dither-dots", "", "one or two dot characters")

	fs.StringVar(&o.shadow, "shadow", "", "drop shadow: DX,DY,ALPHA")
	fs.StringVar(&o.edgeShade, "edge-shade", "", "edge shade: DARKEN,CHAR")
	fs.IntVar(&o.outline, "outline", 0, "outline the banner using a 4 or 8 neighborhood")
	fs.StringVar(&o.outlineChar, "outline-char", "", "character for outline cells")
	fs.StringVar(&o.outlineColor, "outline-color", "", "color for outline cells")

	fs.StringVar(&o.align, "align", "", "alignment: left, center or right")
	fs.StringVar(&o.padding, "padding", "", "padding: N, V,H or T,R,B,L")
	fs.IntVar(&o.width, "width", 0, "exact output width")
	fs.IntVar(&o.maxWidth, "max-width", 0, "maximum output width")
	fs.BoolVar(&o.fit, "fit", false, "clip the banner to the terminal width")
	fs.IntVar(&o.kerning, "kerning", 0, "blank columns between glyphs")
	fs.IntVar(&o.lineGap, "line-gap", 0, "blank rows between lines")
	fs.BoolVar(&o.trimVertical, "trim-vertical", true, "trim blank rows from the top and bottom")
	fs.BoolVar(&o.noTrim, "no-trim-vertical", false, "keep blank rows at the top and bottom")
	fs.StringVar(&o.colorMode, "color-mode", "", "auto, truecolor, ansi256 or none (default: auto)")

	fs.BoolVar(&o.lightSweep, "light-sweep", false, "add a static highlight band")
	fs.StringVar(&o.sweepDirection, "sweep-direction", "", "horizontal, vertical, diagonal-down or diagonal-up")
	fs.Float64Var(&o.sweepCenter, "sweep-center", 0.5, "band center along the axis")
	fs.Float64Var(&o.sweepWidth, "sweep-width", 0.25, "band width as a fraction of the axis")
	fs.Float64Var(&o.sweepIntensity, "sweep-intensity", 0.8, "band brightness in [0, 1]")
	fs.Float64Var(&o.sweepSoftness, "sweep-softness", 2, "band falloff exponent, at least 1")

	fs.IntVar(&o.animateSweep, "animate-sweep", 0, "animate a moving highlight, frame delay in ms")
	fs.IntVar(&o.animateWave, "animate-wave", 0, "animate a breathing wave, frame delay in ms")
	fs.IntVar(&o.animateRoll, "animate-roll", 0, "animate a horizontal roll, frame delay in ms")
	fs.IntVar(&o.frames, "frames", ansibanner.DefaultFrames, "frames per animation cycle")
	fs.BoolVar(&o.once, "once", false, "play the animation once instead of looping")
	fs.Float64Var(&o.waveDim, "wave-dim", 0.35, "wave dimming strength")
	fs.Float64Var(&o.waveBright, "wave-bright", 0.2, "wave brightening strength")
	fs.StringVar(&o.sweepHighlight, "sweep-highlight", "", "animated sweep color (default: white)")

	fs.StringVar(&o.png, "png", "", "write a PNG snapshot to this file instead of printing")
	fs.StringVar(&o.gif, "gif", "", "write an animated GIF to this file instead of playing")
	fs.IntVar(&o.scale, "scale", 2, "pixel scale for PNG and GIF export")

	fs.SortFlags = false
}

// overlay applies the flags that were set onto cfg. Styles and presets
// are expanded against user before they are layered in.
func (o *options) overlay(fs *pflag.FlagSet, cfg ansibanner.Config, user map[string]ansibanner.Config) (ansibanner.Config, error) {
	set := fs.Changed
	if set("style") {
		style, err := ansibanner.Config{Preset: o.style}.Expand(user)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.Merge(style)
	}

	if set("gradient") || set("palette") || set("preset") {
		g := ansibanner.GradientConfig{}
		if cfg.Gradient != nil {
			g = *cfg.Gradient
		}
		if set("gradient") {
			g.Axis = o.gradient
		}
		if set("preset") {
			g.Stops, g.Palette = nil, o.preset
		}
		if set("palette") {
			if len(o.palette) == 0 {
				return cfg, errors.New("--palette expects at least one color")
			}
			g.Stops, g.Palette = o.palette, ""
		}
		cfg.Gradient = &g
	}

	if err := o.overlayFill(set, &cfg); err != nil {
		return cfg, err
	}
	if err := o.overlayEffects(set, &cfg); err != nil {
		return cfg, err
	}
	o.overlayFrame(set, &cfg)
	o.overlayLayout(set, &cfg)
	if err := o.overlayAnimation(set, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (o *options) overlayFill(set func(string) bool, cfg *ansibanner.Config) error {
	fillSet := set("fill-char") || set("density") || set("fill-ramp") ||
		set("pixel-dither-checker") || set("pixel-dither-noise")
	if !set("fill") && !fillSet {
		return nil
	}
	fc := ansibanner.FillConfig{}
	if cfg.Fill != nil {
		fc = *cfg.Fill
	}
	if set("fill") {
		fc.Kind = o.fill
	} else if fc.Kind == "" {
		return errors.New("--fill is required when setting fill options")
	}
	if set("fill-char") {
		fc.Char = o.fillChar
	}
	if set("density") {
		fc.Density = o.density
	}
	if set("pixel-dither-checker") && set("pixel-dither-noise") {
		return errors.New("only one pixel dither mode can be set")
	}
	switch {
	case set("pixel-dither-checker"):
		fc.Dither = &ansibanner.DitherConfig{Mode: "checker", Period: o.pixelDitherChecker}
	case set("pixel-dither-noise"):
		seed, threshold, err := parseSeedThreshold("--pixel-dither-noise", o.pixelDitherNoise)
		if err != nil {
			return err
		}
		fc.Dither = &ansibanner.DitherConfig{Mode: "noise", Seed: seed, Threshold: threshold}
	}
	if set("fill-ramp") {
		if fc.Dither == nil {
			return errors.New("--fill-ramp requires --pixel-dither-checker or --pixel-dither-noise")
		}
		fc.Dither.Ramp = o.fillRamp
	}
	cfg.Fill = &fc
	return nil
}

func (o *options) overlayEffects(set func(string) bool, cfg *ansibanner.Config) error {
	if set("dither-checker") && set("dither-noise") {
		return errors.New("only one dither mode can be set")
	}
	switch {
	case set("dither-checker"):
		cfg.DotDither = &ansibanner.DotDitherConfig{Mode: "checker", Period: o.ditherChecker}
	case set("dither-noise"):
		seed, threshold, err := parseSeedThreshold("--dither-noise", o.ditherNoise)
		if err != nil {
			return err
		}
		cfg.DotDither = &ansibanner.DotDitherConfig{Mode: "noise", Seed: seed, Threshold: threshold}
	case set("dither-targets") || set("dither-dots"):
		if cfg.DotDither == nil {
			return errors.New("--dither-checker or --dither-noise is required when setting dither options")
		}
	}
	if cfg.DotDither != nil && (set("dither-checker") || set("dither-noise") || set("dither-targets")) {
		cfg.DotDither.Targets = o.ditherTargets
	}
	if cfg.DotDither != nil && set("dither-dots") {
		cfg.DotDither.Dots = o.ditherDots
	}

	if set("shadow") {
		parts := splitList(o.shadow)
		if len(parts) != 3 {
			return errors.New("--shadow expects DX,DY,ALPHA")
		}
		dx, errX := strconv.Atoi(parts[0])
		dy, errY := strconv.Atoi(parts[1])
		alpha, errA := strconv.ParseFloat(parts[2], 64)
		if err := errors.Join(errX, errY, errA); err != nil {
			return fmt.Errorf("--shadow: %w", err)
		}
		cfg.Shadow = &ansibanner.ShadowConfig{DX: dx, DY: dy, Alpha: alpha}
	}
	if set("edge-shade") {
		parts := splitList(o.edgeShade)
		if len(parts) != 2 {
			return errors.New("--edge-shade expects DARKEN,CHAR")
		}
		darken, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return fmt.Errorf("--edge-shade: %w", err)
		}
		cfg.EdgeShade = &ansibanner.EdgeShadeConfig{Darken: darken, Char: parts[1]}
	}
	if set("outline") || set("outline-char") || set("outline-color") {
		cfg.Outline = &ansibanner.OutlineConfig{Neighborhood: o.outline, Char: o.outlineChar, Color: o.outlineColor, Darken: 0.35}
	}

	sweepSet := set("light-sweep") || set("sweep-direction") || set("sweep-center") ||
		set("sweep-width") || set("sweep-intensity") || set("sweep-softness")
	if sweepSet {
		sc := &ansibanner.SweepConfig{Direction: o.sweepDirection}
		if set("sweep-center") {
			sc.Center = &o.sweepCenter
		}
		if set("sweep-width") {
			sc.Width = &o.sweepWidth
		}
		if set("sweep-intensity") {
			sc.Intensity = &o.sweepIntensity
		}
		if set("sweep-softness") {
			sc.Softness = &o.sweepSoftness
		}
		cfg.Sweep = sc
	}
	return nil
}

func (o *options) overlayFrame(set func(string) bool, cfg *ansibanner.Config) {
	if !(set("frame") || set("frame-chars") || set("frame-color") ||
		set("frame-gradient") || set("frame-palette") || set("frame-preset")) {
		return
	}
	fc := &ansibanner.FrameConfig{Style: o.frame, Chars: o.frameChars, Color: o.frameColor}
	if set("frame-gradient") || set("frame-palette") || set("frame-preset") {
		fc.Gradient = &ansibanner.GradientConfig{Axis: o.frameGradient, Stops: o.framePalette, Palette: o.framePreset}
	}
	cfg.Frame = fc
}

func (o *options) overlayLayout(set func(string) bool, cfg *ansibanner.Config) {
	if set("align") {
		cfg.Align = o.align
	}
	if set("padding") {
		cfg.Padding = o.padding
	}
	if set("width") {
		cfg.Width = o.width
	}
	if set("max-width") {
		cfg.MaxWidth = o.maxWidth
	}
	if set("kerning") {
		cfg.Kerning = o.kerning
	}
	if set("line-gap") {
		cfg.LineGap = o.lineGap
	}
	if set("trim-vertical") || set("no-trim-vertical") {
		trim := o.trimVertical && !o.noTrim
		cfg.TrimVertical = &trim
	}
	if set("color-mode") {
		cfg.ColorMode = o.colorMode
	}
}

func (o *options) overlayAnimation(set func(string) bool, cfg *ansibanner.Config) error {
	var kinds []string
	var delay int
	for _, a := range []struct {
		flag, kind string
		ms         int
	}{
		{"animate-sweep", "sweep", o.animateSweep},
		{"animate-wave", "wave", o.animateWave},
		{"animate-roll", "roll", o.animateRoll},
	} {
		if set(a.flag) {
			kinds = append(kinds, a.kind)
			delay = a.ms
		}
	}
	if len(kinds) > 1 {
		return errors.New("--animate-sweep, --animate-wave and --animate-roll cannot be used together")
	}
	if set("sweep-highlight") && (len(kinds) == 0 || kinds[0] != "sweep") {
		return errors.New("--sweep-highlight requires --animate-sweep")
	}
	if len(kinds) == 0 {
		if cfg.Animation != nil && set("frames") {
			cfg.Animation.Frames = o.frames
		}
		return nil
	}
	if delay <= 0 {
		return fmt.Errorf("--animate-%s expects a positive delay in ms", kinds[0])
	}
	ac := &ansibanner.AnimationConfig{Kind: kinds[0], DelayMS: delay, Frames: o.frames, Highlight: o.sweepHighlight}
	if set("wave-dim") {
		ac.WaveDim = &o.waveDim
	}
	if set("wave-bright") {
		ac.WaveBright = &o.waveBright
	}
	cfg.Animation = ac
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseSeedThreshold(flag, s string) (uint32, int, error) {
	parts := splitList(s)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%s expects SEED,THRESHOLD", flag)
	}
	seed, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%s seed: %w", flag, err)
	}
	threshold, err := strconv.Atoi(parts[1])
	if err != nil || threshold < 0 || threshold > 255 {
		return 0, 0, fmt.Errorf("%s threshold must be 0..255, got %q", flag, parts[1])
	}
	return uint32(seed), threshold, nil
}
