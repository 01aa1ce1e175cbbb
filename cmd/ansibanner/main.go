// Command ansibanner renders styled, optionally animated text banners for
// the terminal.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wbrown/ansibanner"
	"github.com/wbrown/ansibanner/figlet"
)

// env is everything the command reads from or writes to the process.
type env struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
	dir       string
}

func main() {
	wd, _ := os.Getwd()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], env{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
		dir:       wd,
	})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, e env) int {
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetIn(e.stdin)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(e.stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	label := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("#FF5F87")).
		Bold(true).
		Render("error:")
	fmt.Fprintln(w, label, err)
}

// terminalFD returns the descriptor behind v when it is a terminal.
func terminalFD(v any) (int, bool) {
	f, ok := v.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func newRootCmd(e env) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "ansibanner [text]",
		Short:         "Render styled ANSI text banners",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.render(cmd, args, e)
		},
	}
	o.register(cmd.Flags())
	cmd.AddCommand(newPresetsCmd(e))
	return cmd
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "ansibanner", Level: log.WarnLevel})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// resolveText picks the banner text from --text, the arguments, or stdin
// when it is not a terminal.
func resolveText(o *options, args []string, stdin io.Reader) (string, error) {
	switch {
	case o.text != "" && len(args) > 0:
		return "", errors.New("give the text either with --text or as arguments, not both")
	case o.text != "":
		return o.text, nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	if _, isTTY := terminalFD(stdin); stdin == nil || isTTY {
		return "", errors.New("no text given: use --text, arguments or stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", errors.New("no text given on stdin")
	}
	return text, nil
}

func loadFont(path string) (*figlet.Font, error) {
	if path == "" {
		return figlet.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := figlet.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (o *options) render(cmd *cobra.Command, args []string, e env) error {
	ctx := cmd.Context()
	logger := newLogger(e.stderr, o.debug)

	text, err := resolveText(o, args, e.stdin)
	if err != nil {
		return err
	}
	font, err := loadFont(o.fontPath)
	if err != nil {
		return err
	}
	logger.Debug("font loaded", "name", font.Name, "height", font.Height)

	file, path, err := loadConfigFile(o.configPath, configCandidates(e.dir, e.lookupEnv))
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("config loaded", "path", path, "presets", len(file.Presets))
	}
	fileCfg, err := file.Config.Expand(file.Presets)
	if err != nil {
		return err
	}
	cfg, err := o.overlay(cmd.Flags(), ansibanner.DefaultConfig().Merge(fileCfg), file.Presets)
	if err != nil {
		return err
	}

	fd, stdoutTTY := terminalFD(e.stdout)
	termWidth := 0
	if stdoutTTY {
		if w, _, err := term.GetSize(fd); err == nil {
			termWidth = w
		}
	}
	if o.fit && termWidth > 0 {
		cfg.MaxWidth = termWidth
	}

	r, err := ansibanner.NewRenderer(
		ansibanner.WithFont(font),
		ansibanner.WithConfig(cfg),
		ansibanner.WithUserPresets(file.Presets),
	)
	if err != nil {
		return err
	}
	hints := ansibanner.HintsFromLookup(e.lookupEnv)
	logger.Debug("color mode", "configured", r.Pipeline().ColorMode, "resolved", r.Pipeline().ColorMode.Resolve(hints))

	if o.png != "" || o.gif != "" {
		return o.export(ctx, r, text, logger)
	}

	if r.Animated() {
		frames, err := r.RenderFrames(ctx, text, hints)
		if err != nil {
			return err
		}
		logger.Debug("frames rendered", "count", len(frames), "delay", r.FrameDelay())
		if !stdoutTTY {
			return writeFrames(e.stdout, frames)
		}
		return play(ctx, frames, r.FrameDelay(), !o.once, e.stdin, e.stdout)
	}

	out, err := r.Render(text, hints)
	if err != nil {
		return err
	}
	if termWidth > 0 {
		if w := bannerWidth(out); w > termWidth {
			logger.Warn("banner is wider than the terminal", "width", w, "terminal", termWidth)
		}
	}
	_, err = fmt.Fprintln(e.stdout, out)
	return err
}

// bannerWidth is the widest printed line of an emitted banner.
func bannerWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

func (o *options) export(ctx context.Context, r *ansibanner.Renderer, text string, logger *log.Logger) error {
	fb, err := ansibanner.DefaultFontBitmaps()
	if err != nil {
		return err
	}
	opts := ansibanner.ImageOptions{Scale: o.scale}

	if o.png != "" {
		g, err := r.Grid(text)
		if err != nil {
			return err
		}
		if err := writeFile(o.png, func(w io.Writer) error { return fb.WritePNG(w, g, opts) }); err != nil {
			return err
		}
		logger.Info("wrote png", "path", o.png)
	}
	if o.gif != "" {
		var frames []*ansibanner.Grid
		if r.Animated() {
			if frames, err = r.FrameGrids(ctx, text); err != nil {
				return err
			}
		} else {
			g, err := r.Grid(text)
			if err != nil {
				return err
			}
			frames = []*ansibanner.Grid{g}
		}
		if err := writeFile(o.gif, func(w io.Writer) error { return fb.WriteGIF(w, frames, r.FrameDelay(), opts) }); err != nil {
			return err
		}
		logger.Info("wrote gif", "path", o.gif, "frames", len(frames))
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func newPresetsCmd(e env) *cobra.Command {
	var sample string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listPresets(e, sample)
		},
	}
	cmd.Flags().StringVar(&sample, "sample", "", "render this text in every style")
	return cmd
}

func listPresets(e env, sample string) error {
	lr := lipgloss.NewRenderer(e.stdout)
	title := cases.Title(language.English)
	nameStyle := lr.NewStyle().Bold(true).Width(16)
	hints := ansibanner.HintsFromLookup(e.lookupEnv)

	for _, p := range ansibanner.Presets() {
		var swatch strings.Builder
		for _, hex := range p.Config.Gradient.Stops {
			swatch.WriteString(lr.NewStyle().Background(lipgloss.Color(hex)).Render("   "))
		}
		display := title.String(strings.ReplaceAll(p.Name, "-", " "))
		fmt.Fprintf(e.stdout, "%s %-14s %s  %s\n", nameStyle.Render(display), p.Name, swatch.String(), p.Description)

		if sample == "" {
			continue
		}
		r, err := ansibanner.NewRenderer(ansibanner.WithConfig(ansibanner.Config{Preset: p.Name, Padding: "0"}))
		if err != nil {
			return err
		}
		out, err := r.Render(sample, hints)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, out)
	}
	return nil
}
