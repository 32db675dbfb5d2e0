// Package gui shows the animation in a raylib window.
package gui

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/solarsim/internal/anim"
	"github.com/san-kum/solarsim/internal/colors"
	"github.com/san-kum/solarsim/internal/orbit"
	"github.com/san-kum/solarsim/internal/scene"
	"github.com/san-kum/solarsim/internal/viz"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(90, 90, 90, 255)
	ColLabel   = rl.NewColor(255, 255, 255, 255)
)

const (
	eyeDistance = 5000
	labelSize   = 14
)

// Options configure the window.
type Options struct {
	Width, Height int
	Frames        int
	Interval      time.Duration
	Loop          bool
	Guides        bool
	GuideAlpha    float64
	Background    image.Image
	Logger        *slog.Logger
}

type App struct {
	updater  *orbit.Updater
	scene    *scene.Scene
	opts     Options
	playback anim.Playback
	clock    anim.Accumulator
	view     *viz.Camera
	camera   rl.Camera3D
	frame    int
	running  bool
	finished bool
	quit     bool
	bg       rl.Texture2D
	hasBg    bool
	log      *slog.Logger
}

// Run opens the window and blocks until it is closed.
func Run(u *orbit.Updater, ctx scene.Context, opts Options) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1000, 1000
	}
	rl.InitWindow(int32(opts.Width), int32(opts.Height), "solarsim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(u, ctx, opts)
	defer app.Unload()
	app.RunLoop()
}

// NewApp needs an open window when opts.Background is set.
func NewApp(u *orbit.Updater, ctx scene.Context, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := scene.New(u, ctx)
	a := &App{
		updater:  u,
		scene:    s,
		opts:     opts,
		playback: anim.Playback{Frames: opts.Frames, Loop: opts.Loop},
		clock:    anim.Accumulator{Interval: opts.Interval},
		view:     viz.NewCamera(math.Max(ctx.BoundsXY, ctx.BoundsZ)),
		running:  true,
		log:      opts.Logger,
	}
	if opts.Background != nil {
		img := rl.NewImageFromImage(opts.Background)
		a.bg = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		a.hasBg = true
	}
	a.syncCamera()
	return a
}

func (a *App) Unload() {
	if a.hasBg {
		rl.UnloadTexture(a.bg)
	}
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
	a.log.Info("window closed", "frame", a.frame)
}

// toRL maps the z-up world onto raylib's y-up space.
func toRL(v orbit.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Z), float32(-v.Y))
}

// syncCamera places an orthographic camera on the scene's view direction.
func (a *App) syncCamera() {
	ctx := a.scene.Context()
	a.view.Azimuth, a.view.Elevation = ctx.Azimuth, ctx.Elevation
	_, up, toward := a.view.Basis()
	a.camera = rl.NewCamera3D(
		toRL(toward.Scale(eyeDistance)),
		rl.NewVector3(0, 0, 0),
		toRL(up),
		float32(2*a.view.Extent/a.view.Zoom),
		rl.CameraOrthographic,
	)
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) && !a.finished {
		a.running = !a.running
		a.clock.Reset()
	}

	if a.running {
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		for n := a.clock.Add(dt); n > 0; n-- {
			next, done := a.playback.Next(a.frame)
			if done {
				a.running, a.finished = false, true
				a.log.Info("animation finished", "frames", a.opts.Frames)
				break
			}
			a.frame = next
		}
		a.scene.Apply(a.updater.Frame(a.frame))
	}
	a.syncCamera()
}

// worldRadius converts a marker size in pixels to world units.
func (a *App) worldRadius(px float64) float32 {
	return float32(px * float64(a.camera.Fovy) / float64(rl.GetScreenHeight()))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	if a.hasBg {
		src := rl.NewRectangle(0, 0, float32(a.bg.Width), float32(a.bg.Height))
		rl.DrawTexturePro(a.bg, src, rl.NewRectangle(0, 0, w, h), rl.NewVector2(0, 0), 0, rl.White)
	}

	ctx := a.scene.Context()
	entries := a.scene.Entries()
	pxScale := float64(w) / 1000 * 2

	rl.BeginMode3D(a.camera)
	if a.opts.Guides {
		guide := rl.ColorAlpha(rl.White, float32(a.opts.GuideAlpha))
		for _, e := range entries {
			rl.DrawCircle3D(rl.NewVector3(0, 0, 0), float32(e.Body.Radius), rl.NewVector3(1, 0, 0), 90, guide)
		}
	}
	rl.DrawSphere(rl.NewVector3(0, 0, 0), a.worldRadius(math.Sqrt(ctx.Sun.Size)/2*pxScale), rlColor(ctx.Sun.Color))
	for _, e := range entries {
		rl.DrawSphere(toRL(e.State.Position), a.worldRadius(e.Body.Size/20*pxScale), rlColor(e.Body.Color))
	}
	rl.EndMode3D()

	for _, e := range entries {
		p := rl.GetWorldToScreen(toRL(e.State.Label), a.camera)
		rl.DrawText(e.Body.Name, int32(p.X), int32(p.Y), labelSize, ColLabel)
	}
	a.drawHUD(ctx)

	rl.EndDrawing()
}

func (a *App) drawHUD(ctx scene.Context) {
	status := "RUNNING"
	switch {
	case a.finished:
		status = "FINISHED"
	case !a.running:
		status = "PAUSED"
	}
	frame := fmt.Sprintf("frame %d", ctx.Frame)
	if a.opts.Frames > 0 {
		frame = fmt.Sprintf("frame %d/%d", ctx.Frame+1, a.opts.Frames)
	}
	rl.DrawText(status, 20, 20, 18, ColText)
	rl.DrawText(frame, 20, 44, 14, ColText)
	rl.DrawText(fmt.Sprintf("t %.2f  az %.1f", ctx.Time, math.Mod(ctx.Azimuth, 360)), 20, 62, 14, ColText)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 20, int32(rl.GetScreenHeight())-30, 14, ColTextDim)
	rl.DrawText("SPACE pause  Q quit", 20, int32(rl.GetScreenHeight())-50, 14, ColTextDim)
}

func rlColor(token string) rl.Color {
	c := colors.RGBA(token)
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
