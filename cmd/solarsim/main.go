package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/solarsim/internal/anim"
	"github.com/san-kum/solarsim/internal/asset"
	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/export"
	"github.com/san-kum/solarsim/internal/gui"
	"github.com/san-kum/solarsim/internal/orbit"
	"github.com/san-kum/solarsim/internal/scene"
	"github.com/san-kum/solarsim/internal/viz"
)

var (
	// Global
	configFile string
	preset     string
	verbose    bool

	// Playback
	frames     int
	intervalMS int
	loop       bool
	background string
	theme      string
	noGuides   bool

	// Output
	start        int
	plotFrames   int
	exportFrames int
	output       string
	renderOutput string
	width        int
	height       int
	winWidth     int
	winHeight    int
	noLabels     bool
	braille      bool
	force        bool
)

var logger = slog.Default()

// main runs the terminal animation when no subcommand is given. It exits
// with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers the solarsim commands. Every command that owns a
// flag with its own default binds its own variable.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "solarsim",
		Short:         "animated toy solar system",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(os.Stderr, verbose)
			slog.SetDefault(logger)
		},
		RunE: runLive,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addPlaybackFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play the animation in the terminal",
		RunE:  runLive,
	}
	addPlaybackFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "play the animation in a window",
		RunE:  runGUI,
	}
	addPlaybackFlags(guiCmd)
	guiCmd.Flags().IntVar(&winWidth, "width", 1000, "window width")
	guiCmd.Flags().IntVar(&winHeight, "height", 1000, "window height")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the animation to a GIF",
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	renderCmd.Flags().IntVar(&intervalMS, "interval", config.DefaultIntervalMS, "frame delay in ms")
	renderCmd.Flags().IntVar(&start, "start", 0, "first frame")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "solarsim.gif", "output file")
	renderCmd.Flags().IntVar(&width, "width", 640, "image width")
	renderCmd.Flags().IntVar(&height, "height", 640, "image height")
	renderCmd.Flags().StringVar(&background, "background", "", "background image (png/jpeg)")
	renderCmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit body labels")

	frameCmd := &cobra.Command{
		Use:   "frame [n]",
		Short: "print body positions for one frame",
		Args:  cobra.ExactArgs(1),
		RunE:  printFrame,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [body]",
		Short: "plot a body's coordinates over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotBody,
	}
	plotCmd.Flags().IntVar(&plotFrames, "frames", 200, "number of frames")
	plotCmd.Flags().IntVar(&start, "start", 0, "first frame")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "write the ephemeris table as CSV",
		RunE:  exportCSV,
	}
	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "write the ephemeris table as JSON",
		RunE:  exportJSON,
	}
	for _, c := range []*cobra.Command{exportCSVCmd, exportJSONCmd} {
		c.Flags().IntVar(&exportFrames, "frames", 100, "number of frames")
		c.Flags().IntVar(&start, "start", 0, "first frame")
		c.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	}

	streamCmd := &cobra.Command{
		Use:   "stream",
		Short: "print CSV rows at the animation rate until done or interrupted",
		RunE:  streamFrames,
	}
	streamCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames (0 runs forever)")
	streamCmd.Flags().IntVar(&intervalMS, "interval", config.DefaultIntervalMS, "frame interval in ms")
	streamCmd.Flags().IntVar(&start, "start", 0, "first frame")

	svgCmd := &cobra.Command{
		Use:   "svg [n]",
		Short: "snapshot one frame as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	svgCmd.Flags().IntVar(&width, "width", 640, "image width")
	svgCmd.Flags().IntVar(&height, "height", 640, "image height")
	svgCmd.Flags().BoolVar(&braille, "braille", false, "export the terminal canvas instead")
	svgCmd.Flags().StringVar(&theme, "theme", "", "terminal theme for --braille")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list configured bodies",
		RunE:  listBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(liveCmd, guiCmd, renderCmd, frameCmd, plotCmd, exportCSVCmd, exportJSONCmd,
		streamCmd, svgCmd, bodiesCmd, presetsCmd, initCmd)
	return rootCmd
}

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames (0 runs forever)")
	cmd.Flags().IntVar(&intervalMS, "interval", config.DefaultIntervalMS, "frame interval in ms")
	cmd.Flags().BoolVar(&loop, "loop", false, "restart after the last frame")
	cmd.Flags().StringVar(&background, "background", "", "background image (png/jpeg)")
	cmd.Flags().StringVar(&theme, "theme", "", "terminal theme")
	cmd.Flags().BoolVar(&noGuides, "no-guides", false, "hide orbit guides")
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves the configuration: preset or file first, then any
// flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if configFile != "" && preset != "" {
		return nil, errors.New("use either --config or --preset")
	}

	cfg := config.DefaultConfig()
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (try: solarsim presets)", preset)
		}
		logger.Debug("using preset", "name", preset)
	case configFile != "":
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded config", "path", configFile, "bodies", len(cfg.Bodies))
	}

	flags := cmd.Flags()
	if flags.Changed("frames") {
		cfg.Animation.Frames = frames
	}
	if flags.Changed("interval") {
		cfg.Animation.IntervalMS = intervalMS
	}
	if flags.Changed("loop") {
		cfg.Animation.Loop = loop
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("no-guides") && noGuides {
		cfg.Guides.Samples = 0
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*config.Config, *orbit.Updater, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	u, err := cfg.Updater()
	if err != nil {
		return nil, nil, err
	}
	return cfg, u, nil
}

func parseFrame(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("frame %q: %w", arg, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("frame must be >= 0, got %d", n)
	}
	return n, nil
}

// checkRange rejects a negative first frame or frame count.
func checkRange(first, n int) error {
	if first < 0 {
		return fmt.Errorf("start must be >= 0, got %d", first)
	}
	if n < 0 {
		return fmt.Errorf("frames must be >= 0, got %d", n)
	}
	return nil
}

// openOutput returns stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func runLive(cmd *cobra.Command, args []string) error {
	cfg, u, err := setup(cmd)
	if err != nil {
		return err
	}
	bg, err := asset.LoadBackground(cfg.Background)
	if err != nil {
		return err
	}

	// Logging to stderr would tear the alt screen.
	liveLog := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		f, err := tea.LogToFile("solarsim.log", "")
		if err != nil {
			return err
		}
		defer f.Close()
		liveLog = newLogger(f, true)
	}

	m := viz.NewModel(u, cfg.SceneContext(), viz.Options{
		Frames:     cfg.Animation.Frames,
		Interval:   cfg.Interval(),
		Loop:       cfg.Animation.Loop,
		Guides:     cfg.Guides.Samples,
		Background: bg,
		Theme:      cfg.Theme,
		Logger:     liveLog,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, u, err := setup(cmd)
	if err != nil {
		return err
	}
	bg, err := asset.LoadBackground(cfg.Background)
	if err != nil {
		return err
	}

	logger.Info("opening window", "bodies", len(cfg.Bodies), "frames", cfg.Animation.Frames)
	gui.Run(u, cfg.SceneContext(), gui.Options{
		Width:      winWidth,
		Height:     winHeight,
		Frames:     cfg.Animation.Frames,
		Interval:   cfg.Interval(),
		Loop:       cfg.Animation.Loop,
		Guides:     cfg.Guides.Samples > 0,
		GuideAlpha: cfg.Guides.Alpha,
		Background: bg,
		Logger:     logger,
	})
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, u, err := setup(cmd)
	if err != nil {
		return err
	}
	if cfg.Animation.Frames <= 0 {
		return errors.New("render needs a bounded run; pass --frames")
	}
	bg, err := asset.LoadBackground(cfg.Background)
	if err != nil {
		return err
	}

	if err := checkRange(start, cfg.Animation.Frames); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f, err := os.Create(renderOutput)
	if err != nil {
		return err
	}
	defer f.Close()

	logger.Info("rendering", "frames", cfg.Animation.Frames, "start", start, "output", renderOutput)
	err = export.GIF(ctx, f, u, cfg.SceneContext(), export.GIFOptions{
		Frames:     cfg.Animation.Frames,
		Start:      start,
		Interval:   cfg.Interval(),
		Background: bg,
		Style: export.Style{
			Width:        width,
			Height:       height,
			GuideSamples: cfg.Guides.Samples,
			GuideAlpha:   cfg.Guides.Alpha,
			Labels:       !noLabels,
			LabelColor:   "white",
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", renderOutput)
	return nil
}

func printFrame(cmd *cobra.Command, args []string) error {
	n, err := parseFrame(args[0])
	if err != nil {
		return err
	}
	_, u, err := setup(cmd)
	if err != nil {
		return err
	}

	fr := u.Frame(n)
	fmt.Printf("frame %d  t=%.3f  azimuth=%.2f°  elevation=%.1f°\n\n", fr.Index, fr.Time, fr.Azimuth, fr.Elevation)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tX\tY\tZ\tLABEL X\tLABEL Y\tLABEL Z")
	for _, st := range fr.Bodies {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n", st.Name,
			st.Position.X, st.Position.Y, st.Position.Z, st.Label.X, st.Label.Y, st.Label.Z)
	}
	return w.Flush()
}

func plotBody(cmd *cobra.Command, args []string) error {
	_, u, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := checkRange(start, plotFrames); err != nil {
		return err
	}
	if plotFrames < 2 {
		return fmt.Errorf("plot needs at least 2 frames, got %d", plotFrames)
	}

	var body orbit.Body
	found := false
	for _, b := range u.Bodies() {
		if b.Name == args[0] {
			body, found = b, true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown body %q (try: solarsim bodies)", args[0])
	}

	xs := make([]float64, plotFrames)
	ys := make([]float64, plotFrames)
	zs := make([]float64, plotFrames)
	for i := range xs {
		p := u.Position(body, start+i)
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}

	graph := asciigraph.PlotMany([][]float64{xs, ys, zs},
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("%s x (red) y (green) z (blue), frames %d-%d, %d frames/rev",
			body.Name, start, start+plotFrames-1, u.PeriodFrames(body))),
	)
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, u, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := checkRange(start, exportFrames); err != nil {
		return err
	}
	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()
	return export.WriteCSV(w, export.Table(u, start, exportFrames))
}

func exportJSON(cmd *cobra.Command, args []string) error {
	_, u, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := checkRange(start, exportFrames); err != nil {
		return err
	}
	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()
	return export.WriteJSON(w, u, start, exportFrames)
}

func streamFrames(cmd *cobra.Command, args []string) error {
	cfg, u, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := checkRange(start, cfg.Animation.Frames); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := export.NewCSVStream(os.Stdout)
	drv := anim.Driver{Frames: cfg.Animation.Frames, Interval: cfg.Interval(), Start: start}
	err = drv.Run(ctx, func(f int) error {
		return out.Write(export.FrameRows(u.Frame(f)))
	})
	if errors.Is(err, context.Canceled) {
		logger.Debug("stream interrupted")
		return nil
	}
	return err
}

func exportSVG(cmd *cobra.Command, args []string) error {
	n, err := parseFrame(args[0])
	if err != nil {
		return err
	}
	cfg, u, err := setup(cmd)
	if err != nil {
		return err
	}

	s := scene.New(u, cfg.SceneContext())
	s.Apply(u.Frame(n))

	var svg string
	if braille {
		t := viz.GetTheme(cfg.Theme)
		c := viz.NewCanvas(80, 30)
		layers := viz.Layers{Guides: s.Guides(cfg.Guides.Samples), Labels: true}
		viz.DrawScene(c, s, viz.NewCamera(max(cfg.Bounds.XY, cfg.Bounds.Z)), layers, t)
		svg = export.CanvasToSVG(c, 4, string(t.Text))
	} else {
		style := export.DefaultStyle()
		style.Width, style.Height = width, height
		style.GuideSamples, style.GuideAlpha = cfg.Guides.Samples, cfg.Guides.Alpha
		svg = export.SceneToSVG(s, style)
	}

	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = fmt.Fprintln(w, svg)
	return err
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, u, err := setup(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIUS\tPERIOD\tFRAMES/REV\tCOLOR\tSIZE")
	fmt.Fprintf(w, "Sun\t0\t-\t-\t%s\t%g\n", cfg.Sun.Color, cfg.Sun.Size)
	for _, b := range u.Bodies() {
		fmt.Fprintf(w, "%s\t%g\t%g\t%d\t%s\t%g\n", b.Name, b.Radius, b.Period, u.PeriodFrames(b), b.Color, b.Size)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "solarsim.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists; pass --force to overwrite", path)
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return fmt.Errorf("unknown preset %q", preset)
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
