package main

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App wires the decoded tape, audio analysis, the superscope and the
// post-effect chain into the GLFW render loop.
type App struct {
	tape        *Tape
	trackName   string
	bufWidth    int
	bufHeight   int
	presets     []Preset
	presetIndex int

	analyzer *Analyzer
	scope    *Superscope
	pre      *EffectChain
	post     *EffectChain
	fb       *Framebuffer
	screen   *PixelScreen
	player   *TapePlayer
	keyMap   KeyMap

	startTime  float64
	frameCount int
	fpsTime    float64
	fps        float64
	showHud    bool
	shouldExit bool
	statusText string
}

func CreateApp(tape *Tape, trackPath string, presets []Preset, bufWidth, bufHeight int) *App {
	return &App{
		tape:      tape,
		trackName: filepath.Base(trackPath),
		presets:   presets,
		bufWidth:  bufWidth,
		bufHeight: bufHeight,
		showHud:   true,
	}
}

func (app *App) Init() error {
	app.fb = CreateFramebuffer(app.bufWidth, app.bufHeight)
	screen, err := CreatePixelScreen()
	if err != nil {
		return err
	}
	app.screen = screen
	app.analyzer = CreateAnalyzer(app.tape.Mono(), EngineSampleRate)
	app.selectPreset(0)

	app.pre = CreateEffectChain(
		&Fadeout{Amount: 12},
	)
	app.post = CreateEffectChain(
		CreateParticles(0x9e3779b9),
		CreateWater(),
		&BoxBlur{Radius: 1},
		&Convolution{Kernel: KernelSharpen},
		&ColorReduce{Bits: 4},
		&BrightnessContrast{Brightness: 20, Contrast: 1.2},
		&Feedback{Mode: BlendAverage},
	)
	// post effects start disabled; keys toggle them in
	for _, name := range []string{"particles", "water", "blur", "convolution", "colorreduce", "brightness", "feedback"} {
		app.post.Toggle(name)
	}

	keyMap := CreateKeyMap()
	keyMap.Bind("Escape", app.Quit)
	keyMap.Bind("q", app.Quit)
	keyMap.Bind("Space", app.NextPreset)
	keyMap.Bind("Backspace", app.PrevPreset)
	keyMap.Bind("h", func() { app.showHud = !app.showHud })
	keyMap.Bind("r", func() { app.scope.Reset() })
	keyMap.Bind("c", app.CopyScript)
	keyMap.Bind("i", app.ToggleInitEveryFrame)
	keyMap.Bind("1", app.effectToggler("particles"))
	keyMap.Bind("2", app.effectToggler("water"))
	keyMap.Bind("3", app.effectToggler("blur"))
	keyMap.Bind("4", app.effectToggler("convolution"))
	keyMap.Bind("5", app.effectToggler("colorreduce"))
	keyMap.Bind("6", app.effectToggler("brightness"))
	keyMap.Bind("7", app.effectToggler("feedback"))
	app.keyMap = keyMap

	if err := InitOtoContext(EngineSampleRate); err != nil {
		return err
	}
	app.player = PlayTape(app.tape)
	app.startTime = GetTime()
	app.fpsTime = app.startTime
	return nil
}

func (app *App) selectPreset(index int) {
	n := len(app.presets)
	app.presetIndex = ((index % n) + n) % n
	app.scope = app.presets[app.presetIndex].Scope()
	app.statusText = ""
}

func (app *App) NextPreset() {
	app.selectPreset(app.presetIndex + 1)
}

func (app *App) PrevPreset() {
	app.selectPreset(app.presetIndex - 1)
}

func (app *App) CopyScript() {
	if err := clipboard.WriteAll(app.scope.Script()); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return
	}
	app.statusText = "script copied"
}

func (app *App) ToggleInitEveryFrame() {
	app.scope.InitEveryFrame = !app.scope.InitEveryFrame
	app.statusText = fmt.Sprintf("init every frame: %v", app.scope.InitEveryFrame)
}

func (app *App) effectToggler(name string) func() {
	return func() {
		enabled := app.post.Toggle(name)
		app.statusText = fmt.Sprintf("%s: %v", name, enabled)
	}
}

func (app *App) IsRunning() bool {
	return !app.shouldExit
}

func (app *App) Quit() {
	app.shouldExit = true
}

func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, modes glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	var keyName string
	switch key {
	case glfw.KeySpace:
		keyName = "Space"
	case glfw.KeyEscape:
		keyName = "Escape"
	case glfw.KeyEnter:
		keyName = "Enter"
	case glfw.KeyBackspace:
		keyName = "Backspace"
	default:
		keyName = glfw.GetKeyName(key, scancode)
	}
	app.keyMap.HandleKey(keyName)
}

func (app *App) OnChar(char rune) {
}

func (app *App) OnFramebufferSize(width, height int) {
	logger.Debug("OnFramebufferSize", "width", width, "height", height)
}

func (app *App) Render() error {
	now := GetTime()
	t := now - app.startTime
	af := app.analyzer.FrameAt(t)

	app.pre.Render(app.fb, &af)
	app.scope.Render(app.fb, &af)
	app.post.Render(app.fb, &af)

	app.frameCount++
	if now-app.fpsTime >= 1.0 {
		app.fps = float64(app.frameCount) / (now - app.fpsTime)
		app.frameCount = 0
		app.fpsTime = now
	}
	if app.showHud {
		app.drawHud(t)
	}
	return app.screen.Render(app.fb)
}

func (app *App) drawHud(t float64) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	line1 := fmt.Sprintf("%s  %5.1fs  %4.1f fps", app.trackName, t, app.fps)
	line2 := fmt.Sprintf("scope: %s", app.scope.Name())
	DrawHudText(app.fb, 4, 12, line1, white)
	DrawHudText(app.fb, 4, 26, line2, white)
	y := 40
	if errCount := app.scope.Runner().ErrorCount(); errCount > 0 {
		red := color.RGBA{R: 255, G: 80, B: 80, A: 255}
		DrawHudText(app.fb, 4, y, fmt.Sprintf("script errors: %d", errCount), red)
		y += 14
	}
	if app.statusText != "" {
		DrawHudText(app.fb, 4, y, app.statusText, white)
	}
}

func (app *App) Update() error {
	if app.player != nil && !app.player.IsPlaying() {
		logger.Info("playback finished")
		app.shouldExit = true
	}
	return nil
}

func (app *App) Close() error {
	logger.Debug("Close")
	if app.player != nil {
		app.player.Stop()
	}
	if app.screen != nil {
		app.screen.Close()
	}
	return nil
}
