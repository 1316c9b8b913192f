package main

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/olefasting/fishfight/core"
)

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
			log.Printf("game: texture %s: %v", path, err)
		}
		return nil
	})
}
