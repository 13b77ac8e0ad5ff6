package main

import (
	"fmt"
	"os"

	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/commands"
	"anatomy-viewer/internal/config"
	"anatomy-viewer/internal/env"
	"anatomy-viewer/internal/fonts"
	"anatomy-viewer/internal/graphics"
	"anatomy-viewer/internal/infopanel"
	"anatomy-viewer/internal/input"
	"anatomy-viewer/internal/locale"
	"anatomy-viewer/internal/logger"
	"anatomy-viewer/internal/scene"
	"anatomy-viewer/internal/terminal"
	"anatomy-viewer/internal/viewer"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"
)

const fontSize = 32

func main() {
	configPath := pflag.String("config", config.DefaultPath, "viewer settings file")
	dbPath := pflag.String("db", "", "parts database (overrides paths.database)")
	touch := pflag.Bool("touch", false, "read touch points (mobile and touch screens)")
	fullscreen := pflag.Bool("fullscreen", false, "open at monitor size")
	pflag.Parse()

	// Load .env so ANATOMY_* overrides work without exporting them.
	_ = env.Load(".env")

	cfg, err := loadConfig(*configPath, *dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	prefs := config.LoadPrefs(cfg.Paths.Prefs)
	prefs.Apply(&cfg)

	db, err := loadDatabase(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	parts := db.Instantiate()

	log := logger.New(cfg.Paths.Log)
	loc := locale.New(cfg.Display.Language)
	scn := scene.New()
	scn.Highlight = cfg.Display.Highlight()
	scn.GridY = scene.FloorUnder(parts.Enumerate())

	mgr := viewer.New(parts, cfg, viewer.WithProjector(scn), viewer.WithJournal(log))
	if v, ok := prefs.Visibility(); ok {
		mgr.Layers.SetAll(v)
	}

	panel := infopanel.New(loc)
	panel.Visible = cfg.Display.ShowInfoPanel
	mgr.Selection.PartSelected.Subscribe(panel.SetPart)
	mgr.Selection.SelectionCleared.Subscribe(func(struct{}) { panel.Clear() })

	reg := commands.NewRegistry()
	commands.RegisterViewer(reg, mgr, loc, log)
	term := terminal.New(log, reg)
	term.OnQuery = mgr.Search.Search

	watcher, err := config.Watch(*configPath, cfg.Paths.Database)
	if err != nil {
		log.Logf("live reload off: %v", err)
	} else {
		defer watcher.Close()
	}
	reload := func() {
		changed, err := watcher.Poll()
		if err != nil {
			log.Logf("watch: %v", err)
		}
		for _, path := range changed {
			switch path {
			case *configPath:
				next, err := loadConfig(*configPath, *dbPath)
				if err != nil {
					log.Logf("reload config: %v", err)
					continue
				}
				mgr.ApplyConfig(next)
				scn.Highlight = next.Display.Highlight()
				loc.SetLanguage(next.Display.Language)
				log.Logf("Reloaded %s", path)
			case cfg.Paths.Database:
				next, err := loadDatabase(path)
				if err != nil {
					log.Logf("reload database: %v", err)
					continue
				}
				parts.Replace(next.Instantiate().Enumerate()...)
				mgr.Reload()
				scn.GridY = scene.FloorUnder(parts.Enumerate())
				log.Logf("Reloaded %s: %d parts", path, parts.Len())
			}
		}
	}

	poller := input.NewPoller(*touch)
	fontLoaded := false

	update := func(dt float32) {
		if !fontLoaded {
			fontLoaded = true
			if f, err := fonts.Load(fontSize, locale.Texts()...); err == nil {
				term.SetFont(f)
				panel.SetFont(f)
			} else {
				log.Logf("font: %v", err)
			}
		}
		if watcher != nil {
			reload()
		}
		term.Update()
		snap := poller.Poll()
		if !term.IsOpen() {
			handleKeys(mgr, panel, scn)
			mgr.Tick(snap, dt)
		}
		scn.ApplyPose(mgr.Camera.Pose())
	}
	draw := func() {
		scn.Draw(parts.Enumerate())
		panel.Draw()
		term.Draw()
	}

	opts := graphics.DefaultOptions()
	opts.Fullscreen = *fullscreen
	opts.Unload = scn.Unload
	graphics.Run(opts, update, draw)

	prefs.SetVisibility(mgr.Layers.Visibility())
	prefs.Language = loc.Language().String()
	showPanel := panel.Visible
	prefs.ShowInfoPanel = &showPanel
	if err := config.SavePrefs(cfg.Paths.Prefs, prefs); err != nil {
		log.Logf("save prefs: %v", err)
	}
}

// loadConfig reads the settings file, then the ANATOMY_* environment. A non-empty db overrides paths.database.
func loadConfig(path, db string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if db != "" {
		cfg.Paths.Database = db
	}
	return cfg, cfg.Validate()
}

// loadDatabase reads the parts file, or returns the built-in sample set when path is empty.
func loadDatabase(path string) (*anatomy.Database, error) {
	if path == "" {
		return anatomy.SampleDatabase(), nil
	}
	return anatomy.LoadDatabase(path)
}

// handleKeys runs the single-key shortcuts. Only called while the terminal is closed.
func handleKeys(mgr *viewer.Manager, panel *infopanel.Panel, scn *scene.Scene) {
	switch {
	case rl.IsKeyPressed(rl.KeyR):
		mgr.Reset()
	case rl.IsKeyPressed(rl.KeyF):
		mgr.Focus()
	case rl.IsKeyPressed(rl.KeyB):
		mgr.ShowBonesOnly()
	case rl.IsKeyPressed(rl.KeyM):
		mgr.ShowMusclesOnly()
	case rl.IsKeyPressed(rl.KeyT):
		mgr.ToggleBonesAndMuscles()
	case rl.IsKeyPressed(rl.KeyI):
		panel.Visible = !panel.Visible
	case rl.IsKeyPressed(rl.KeyP):
		panel.ShowFPS = !panel.ShowFPS
	case rl.IsKeyPressed(rl.KeyG):
		scn.SetGridVisible(!scn.GridVisible)
	}
	for i := 0; i < anatomy.LayerCount; i++ {
		if rl.IsKeyPressed(int32(rl.KeyZero) + int32(i)) {
			mgr.Layers.Toggle(anatomy.Layer(i))
		}
	}
}
