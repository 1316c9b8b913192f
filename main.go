package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

func main() {
	mapsDir := flag.String("maps", "maps", "directory holding map files")
	texturesDir := flag.String("textures", "textures", "directory holding texture images")
	mapName := flag.String("map", "", "map filename in the maps directory (first one when empty)")
	noParallax := flag.Bool("no-parallax", false, "disable background parallax")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	textures := core.NewTextureStore()
	if err := loadTextures(textures, *texturesDir); err != nil {
		log.Printf("game: load textures: %v", err)
	}

	store := tilemap.NewStore(*mapsDir)
	if err := store.LoadDir(); err != nil {
		log.Fatalf("game: load maps: %v", err)
	}
	res, err := pickMap(store, *mapName)
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	game := NewGame(res, textures, *noParallax)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("fishfight")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func pickMap(store *tilemap.Store, mapName string) (*tilemap.Resource, error) {
	if mapName != "" {
		return store.Get(mapName)
	}
	filenames := store.Filenames()
	if len(filenames) == 0 {
		return nil, core.Errorf(core.ErrFile, "no maps in store; create one with the editor")
	}
	return store.Get(filenames[0])
}
