package main

import (
	"flag"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/editor"
	"github.com/olefasting/fishfight/editor/gui"
	"github.com/olefasting/fishfight/gamedata"
	"github.com/olefasting/fishfight/scene"
	"github.com/olefasting/fishfight/tilemap"
)

const tickDt = float32(1.0 / 60.0)

func main() {
	mapsDir := flag.String("maps", "maps", "directory holding map files")
	dataDir := flag.String("data", "data", "directory holding item/decoration/environment definitions")
	texturesDir := flag.String("textures", "textures", "directory holding texture images")
	mapName := flag.String("map", "", "map filename to open on start")
	lintScript := flag.String("lint", "", "tengo lint script run before every save")
	watch := flag.Bool("watch", false, "reload the map list when files change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	textures := core.NewTextureStore()
	if err := loadTextures(textures, *texturesDir); err != nil {
		log.Printf("editor: load textures: %v", err)
	}

	defs, err := gamedata.Load(*dataDir)
	if err != nil {
		log.Fatalf("editor: load game data: %v", err)
	}

	store := tilemap.NewStore(*mapsDir)
	if err := store.LoadDir(); err != nil {
		log.Printf("editor: load maps: %v", err)
	}

	var linter *tilemap.Linter
	if *lintScript != "" {
		linter, err = tilemap.NewLinter(*lintScript)
		if err != nil {
			log.Fatalf("editor: lint script: %v", err)
		}
	}

	ui, err := gui.New(gui.Params{Store: store, Defs: defs, Textures: textures})
	if err != nil {
		log.Fatalf("editor: gui: %v", err)
	}

	app := &App{scene: scene.New()}
	ed := editor.New(editor.Params{
		Resource:    initialResource(store, *mapName),
		Gui:         ui,
		Store:       store,
		Textures:    textures,
		Linter:      linter,
		OnLifecycle: app.onLifecycle,
	})
	ed.SetFace(ui.Face())
	app.editor = ed
	app.scene.Add(ed)

	if *watch {
		watcher, err := tilemap.NewWatcher(*mapsDir)
		if err != nil {
			log.Printf("editor: watch %s: %v", *mapsDir, err)
		} else {
			defer watcher.Close()
			go reloadOnChange(watcher, store)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("fishfight editor")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// App hosts the editor scene inside the ebiten loop.
type App struct {
	scene  *scene.Scene
	editor *editor.Editor
	quit   bool
}

func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}
	return a.scene.Update(tickDt)
}

func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (a *App) onLifecycle(event editor.LifecycleEvent) {
	switch event {
	case editor.LifecycleQuitToDesktop:
		a.quit = true
	case editor.LifecycleExitToMainMenu:
		// The standalone editor has no surrounding menu to return to.
		a.editor.ShowInfo("run the game binary to play maps")
	}
}

// initialResource opens the requested map, falls back to the first stored
// one, and starts a fresh scratch map when the store is empty.
func initialResource(store *tilemap.Store, mapName string) *tilemap.Resource {
	if mapName != "" {
		res, err := store.Get(mapName)
		if err == nil {
			return res
		}
		log.Printf("editor: open %q: %v", mapName, err)
	}
	if filenames := store.Filenames(); len(filenames) > 0 {
		res, err := store.Get(filenames[0])
		if err == nil {
			return res
		}
		log.Printf("editor: open %q: %v", filenames[0], err)
	}
	return &tilemap.Resource{
		Meta: tilemap.Meta{Name: "unnamed", IsUserMap: true},
		Map:  tilemap.NewMap(core.NewSize(16, 16), core.USize{Width: 64, Height: 36}),
	}
}

// loadTextures registers every png under dir, keyed by its path relative to
// dir without the extension.
func loadTextures(textures *core.TextureStore, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if strings.ToLower(filepath.Ext(path)) != ".png" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		id := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
		if err := textures.LoadFile(id, path, core.Size{}); err != nil {
			log.Printf("editor: texture %s: %v", path, err)
		}
		return nil
	})
}

func reloadOnChange(watcher *tilemap.Watcher, store *tilemap.Store) {
	for {
		select {
		case path, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.Printf("editor: map file changed: %s", path)
			if err := store.LoadDir(); err != nil {
				log.Printf("editor: reload maps: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("editor: watch: %v", err)
		}
	}
}
