package viz

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/solarsim/internal/anim"
	"github.com/san-kum/solarsim/internal/asset"
	"github.com/san-kum/solarsim/internal/orbit"
	"github.com/san-kum/solarsim/internal/scene"
)

const (
	width         = 80
	height        = 30
	traceCapacity = 120
	starThreshold = 0.6
	recordingPath = "solarsim.gif"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Options configure a live session.
type Options struct {
	Frames     int // 0 plays forever
	Interval   time.Duration
	Loop       bool
	Guides     int // orbit guide samples
	Background image.Image
	Theme      string
	Logger     *slog.Logger
}

// Model is the bubbletea program that plays the animation in the terminal.
type Model struct {
	updater  *orbit.Updater
	scene    *scene.Scene
	camera   *Camera
	canvas   *Canvas
	layers   Layers
	theme    Theme
	opts     Options
	frame    int
	running  bool
	finished bool
	showHelp bool
	selected int
	zTrace   []float64
	recorder *recording
	status   string
	log      *slog.Logger
}

type recording struct {
	frames []*image.Paletted
}

// NewModel builds the terminal renderer around a validated updater.
func NewModel(u *orbit.Updater, ctx scene.Context, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = time.Second / 30
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	s := scene.New(u, ctx)
	c := NewCanvas(width, height)
	return Model{
		updater: u,
		scene:   s,
		camera:  NewCamera(math.Max(ctx.BoundsXY, ctx.BoundsZ)),
		canvas:  c,
		layers: Layers{
			Guides: s.Guides(opts.Guides),
			Stars:  asset.StarField(opts.Background, c.SubWidth(), c.SubHeight(), starThreshold),
			Labels: true,
		},
		theme:   GetTheme(opts.Theme),
		opts:    opts,
		running: true,
		zTrace:  make([]float64, 0, traceCapacity),
		log:     opts.Logger,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles playback keys and advances the frame counter.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.recorder != nil {
				m.stopRecording()
			}
			return m, tea.Quit
		case " ", "space":
			if !m.finished {
				m.running = !m.running
			}
		case "tab":
			m.selected = (m.selected + 1) % m.scene.Len()
			m.zTrace = m.zTrace[:0]
		case "t":
			m.theme = GetTheme(NextTheme(m.theme.Name))
		case "g":
			if m.recorder != nil {
				m.stopRecording()
			} else {
				m.recorder = &recording{}
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		m.draw()
		if m.recorder != nil {
			m.recorder.frames = append(m.recorder.frames, CaptureFrame(m.canvas, m.theme.Text))
		}
		return m, m.tick()
	}
	return m, nil
}

// advance steps to the next frame, honouring the frame budget.
func (m *Model) advance() {
	next, done := anim.Playback{Frames: m.opts.Frames, Loop: m.opts.Loop}.Next(m.frame)
	if done {
		m.running = false
		m.finished = true
		return
	}
	m.frame = next
	m.scene.Apply(m.updater.Frame(m.frame))

	if e, ok := m.selectedEntry(); ok {
		m.zTrace = append(m.zTrace, e.State.Position.Z)
		if len(m.zTrace) > traceCapacity {
			m.zTrace = m.zTrace[1:]
		}
	}
}

func (m *Model) selectedEntry() (scene.Entry, bool) {
	entries := m.scene.Entries()
	if m.selected < 0 || m.selected >= len(entries) {
		return scene.Entry{}, false
	}
	return entries[m.selected], true
}

func (m *Model) stopRecording() {
	rec := m.recorder
	m.recorder = nil
	if len(rec.frames) == 0 {
		m.status = ""
		return
	}
	f, err := os.Create(recordingPath)
	if err != nil {
		m.log.Error("create recording", "path", recordingPath, "err", err)
		m.status = "recording failed"
		return
	}
	defer f.Close()

	delay := int(m.opts.Interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}
	if err := EncodeGIF(f, rec.frames, delay); err != nil {
		m.log.Error("encode recording", "path", recordingPath, "err", err)
		m.status = "recording failed"
		return
	}
	m.log.Info("recording saved", "path", recordingPath, "frames", len(rec.frames))
	m.status = "saved " + recordingPath
}

func (m *Model) draw() {
	DrawScene(m.canvas, m.scene, m.camera, m.layers, m.theme)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	theme := m.theme
	ctx := m.scene.Context()

	canvasView := canvasStyle.Render(m.canvas.Render(theme.Text))

	var s strings.Builder
	s.WriteString(GradientText("SOLAR SYSTEM", theme.Primary, theme.Accent) + "\n\n")

	switch {
	case m.recorder != nil:
		s.WriteString(StatusRecording.Render("● REC") + "\n")
	case m.finished:
		s.WriteString(StatusPaused.Render("FINISHED") + "\n")
	case !m.running:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n")
	default:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n")
	}
	if m.status != "" && m.recorder == nil {
		s.WriteString(Subtle.Render(m.status) + "\n")
	}
	s.WriteString("\n")

	frameText := fmt.Sprintf("%d", ctx.Frame)
	if m.opts.Frames > 0 {
		frameText = fmt.Sprintf("%d/%d", ctx.Frame+1, m.opts.Frames)
	}
	s.WriteString(MetricLabel.Render("Frame") + MetricValue.Render(frameText) + "\n")
	if m.opts.Frames > 0 {
		s.WriteString(MetricLabel.Render("") + ProgressBar(float64(ctx.Frame+1)/float64(m.opts.Frames), 20) + "\n")
	}
	s.WriteString(MetricLabel.Render("Time") + MetricValue.Render(fmt.Sprintf("%.2f", ctx.Time)) + "\n")
	s.WriteString(MetricLabel.Render("Azimuth") + MetricValue.Render(fmt.Sprintf("%.1f°", math.Mod(ctx.Azimuth, 360))) + "\n")
	s.WriteString(MetricLabel.Render("Elevation") + MetricValue.Render(fmt.Sprintf("%.1f°", ctx.Elevation)) + "\n\n")

	s.WriteString(Separator(38) + "\n")
	for i, e := range m.scene.Entries() {
		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		name := lipgloss.NewStyle().Foreground(bodyInk(e.Body.Color, theme)).Width(9).Render(e.Body.Name)
		angle := math.Mod(math.Atan2(e.State.Position.Y, e.State.Position.X)*180/math.Pi+360, 360)
		s.WriteString(fmt.Sprintf("%s%s %6.1f° z=%7.1f\n", marker, name, angle, e.State.Position.Z))
	}

	if len(m.zTrace) > 1 {
		e, _ := m.selectedEntry()
		chart := asciigraph.Plot(m.zTrace, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption(e.Body.Name+" z"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause Q:Quit T:Theme\nTab:Body G:Record ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  Q        - Quit                     ║
║  Tab      - Select body for z trace  ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Frame reports the current frame index.
func (m Model) Frame() int { return m.frame }

// Finished reports whether a bounded, non-looping run reached its last frame.
func (m Model) Finished() bool { return m.finished }
