package core

import (
	"bytes"
	"image"
	_ "image/png"
	"os"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a loaded image plus the frame size used when the image is a
// sprite sheet. For plain images FrameSize equals the image size.
type Texture struct {
	ID        string
	Image     *ebiten.Image
	FrameSize Size
}

// TextureStore maps texture ids to loaded textures. It is owned by the
// top-level application and handed down by reference; there is no global
// registry.
type TextureStore struct {
	textures map[string]*Texture
}

func NewTextureStore() *TextureStore {
	return &TextureStore{textures: make(map[string]*Texture)}
}

// Add registers an already-decoded image. A zero frame size defaults to the
// full image size.
func (s *TextureStore) Add(id string, img *ebiten.Image, frameSize Size) {
	if frameSize.Width <= 0 || frameSize.Height <= 0 {
		b := img.Bounds()
		frameSize = NewSize(float32(b.Dx()), float32(b.Dy()))
	}
	s.textures[id] = &Texture{ID: id, Image: img, FrameSize: frameSize}
}

// LoadFile decodes the image at path and registers it under id.
func (s *TextureStore) LoadFile(id, path string, frameSize Size) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewError(ErrFile, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return NewError(ErrImage, err)
	}
	s.Add(id, ebiten.NewImageFromImage(img), frameSize)
	return nil
}

// TryGet returns the texture for id, or nil if it was never registered.
func (s *TextureStore) TryGet(id string) *Texture {
	return s.textures[id]
}

func (s *TextureStore) Get(id string) (*Texture, error) {
	if t := s.textures[id]; t != nil {
		return t, nil
	}
	return nil, Errorf(ErrImage, "unknown texture id %q", id)
}

func (s *TextureStore) Contains(id string) bool {
	_, ok := s.textures[id]
	return ok
}

// IDs returns all registered texture ids, sorted for stable UI lists.
func (s *TextureStore) IDs() []string {
	ids := make([]string, 0, len(s.textures))
	for id := range s.textures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
