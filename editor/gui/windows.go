package gui

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/editor"
	"github.com/olefasting/fishfight/tilemap"
)

func parseFloat(s string, fallback float32) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return fallback
	}
	return float32(v)
}

func parseUint(s string, fallback uint32) uint32 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(v)
}

// newCycleButton is a button that steps through options on each click. The
// current index is read back through the returned getter.
func (g *Gui) newCycleButton(prefix string, options []string, initial int) (*widget.Button, func() int) {
	index := initial
	var btn *widget.Button
	btn = g.newButton(prefix+": "+options[index], func() {
		index = (index + 1) % len(options)
		btn.Text().Label = prefix + ": " + options[index]
	})
	return btn, func() int { return index }
}

func (g *Gui) ShowCreateMapWindow() {
	dialog := g.newDialog("New map")

	name := g.newTextInput("")
	description := g.newTextInput("")
	gridWidth := g.newTextInput("64")
	gridHeight := g.newTextInput("36")
	tileWidth := g.newTextInput("16")
	tileHeight := g.newTextInput("16")

	dialog.AddChild(g.newLabel("Name"))
	dialog.AddChild(name)
	dialog.AddChild(g.newLabel("Description"))
	dialog.AddChild(description)
	dialog.AddChild(g.newLabel("Grid size (tiles)"))
	dialog.AddChild(gridWidth)
	dialog.AddChild(gridHeight)
	dialog.AddChild(g.newLabel("Tile size (pixels)"))
	dialog.AddChild(tileWidth)
	dialog.AddChild(tileHeight)

	dialog.AddChild(g.newConfirmRow(func() {
		g.queueCommand(editor.CreateMapCmd{
			Name:        name.GetText(),
			Description: description.GetText(),
			TileSize: core.NewSize(
				parseFloat(tileWidth.GetText(), 16),
				parseFloat(tileHeight.GetText(), 16),
			),
			GridSize: core.USize{
				Width:  parseUint(gridWidth.GetText(), 64),
				Height: parseUint(gridHeight.GetText(), 36),
			},
		})
	}))
	g.showWindow(dialog)
}

func (g *Gui) ShowSaveMapWindow(name string) {
	dialog := g.newDialog("Save map")
	input := g.newTextInput(name)
	dialog.AddChild(g.newLabel("Name"))
	dialog.AddChild(input)
	dialog.AddChild(g.newConfirmRow(func() {
		g.queueCommand(editor.SaveMapCmd{Name: input.GetText()})
	}))
	g.showWindow(dialog)
}

func (g *Gui) ShowLoadMapWindow() {
	dialog := g.newDialog("Load map")
	entries := make([]any, 0, g.store.Len())
	for _, filename := range g.store.Filenames() {
		entries = append(entries, filename)
	}

	var selected string
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			s, _ := e.(string)
			return s
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if s, ok := args.Entry.(string); ok {
				selected = s
			}
		}),
	)
	dialog.AddChild(list)

	dialog.AddChild(g.newButtonRow(
		g.newButton("Open", func() {
			if selected == "" {
				return
			}
			g.queueCommand(editor.OpenMapCmd{Filename: selected})
			g.closeWindow()
		}),
		g.newButton("Delete", func() {
			if selected == "" {
				return
			}
			g.queueCommand(editor.DeleteMapCmd{Filename: selected})
			g.closeWindow()
		}),
		g.newButton("Cancel", g.closeWindow),
	))
	g.showWindow(dialog)
}

func (g *Gui) ShowImportWindow() {
	dialog := g.newDialog("Import tilesets")
	entries := make([]any, 0, g.store.Len())
	for _, filename := range g.store.Filenames() {
		entries = append(entries, filename)
	}

	var selected string
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			s, _ := e.(string)
			return s
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if s, ok := args.Entry.(string); ok {
				selected = s
			}
		}),
	)
	dialog.AddChild(g.newLabel("Source map"))
	dialog.AddChild(list)

	background, includeBackground := g.newCycleButton("Background", []string{"keep", "import"}, 0)
	dialog.AddChild(background)

	dialog.AddChild(g.newConfirmRow(func() {
		if selected == "" {
			return
		}
		filename := selected
		withBackground := includeBackground() == 1
		g.queue(func(*tilemap.Map, *editor.Context) editor.Command {
			res, err := g.store.Get(filename)
			if err != nil {
				log.Printf("gui: import source %q: %v", filename, err)
				return nil
			}
			tilesets := make([]*tilemap.Tileset, 0, len(res.Map.Tilesets))
			for _, ts := range res.Map.Tilesets {
				tilesets = append(tilesets, ts)
			}
			sort.Slice(tilesets, func(i, j int) bool {
				return tilesets[i].FirstTileID < tilesets[j].FirstTileID
			})
			cmd := editor.ImportCmd{Tilesets: tilesets}
			if withBackground {
				bg := res.Map.BackgroundColor
				cmd.BackgroundColor = &bg
				cmd.BackgroundLayers = append([]tilemap.BackgroundLayer(nil), res.Map.BackgroundLayers...)
			}
			return cmd
		})
	}))
	g.showWindow(dialog)
}

func (g *Gui) ShowCreateLayerWindow() {
	dialog := g.newDialog("New layer")
	name := g.newTextInput("")
	kind, kindIndex := g.newCycleButton("Kind", []string{"tiles", "objects"}, 0)
	collision, collisionIndex := g.newCycleButton("Collision", []string{"off", "on"}, 0)

	dialog.AddChild(g.newLabel("Name"))
	dialog.AddChild(name)
	dialog.AddChild(kind)
	dialog.AddChild(collision)

	dialog.AddChild(g.newConfirmRow(func() {
		id := strings.TrimSpace(name.GetText())
		if id == "" {
			return
		}
		layerKind := tilemap.TileLayer
		if kindIndex() == 1 {
			layerKind = tilemap.ObjectLayer
		}
		hasCollision := collisionIndex() == 1
		// New layers go on top; the index is resolved against the map at
		// drain time.
		g.queue(func(m *tilemap.Map, _ *editor.Context) editor.Command {
			return editor.CreateLayerCmd{
				ID:           id,
				Kind:         layerKind,
				HasCollision: hasCollision,
				Index:        len(m.DrawOrder),
			}
		})
	}))
	g.showWindow(dialog)
}

func (g *Gui) ShowCreateTilesetWindow() {
	dialog := g.newDialog("New tileset")
	name := g.newTextInput("")
	dialog.AddChild(g.newLabel("Name"))
	dialog.AddChild(name)

	entries := make([]any, 0)
	for _, id := range g.textures.IDs() {
		entries = append(entries, id)
	}
	var selected string
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			s, _ := e.(string)
			return s
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if s, ok := args.Entry.(string); ok {
				selected = s
			}
		}),
	)
	dialog.AddChild(g.newLabel("Texture"))
	dialog.AddChild(list)

	dialog.AddChild(g.newConfirmRow(func() {
		id := strings.TrimSpace(name.GetText())
		if id == "" || selected == "" {
			return
		}
		tex := g.textures.TryGet(selected)
		if tex == nil {
			return
		}
		bounds := tex.Image.Bounds()
		g.queueCommand(editor.CreateTilesetCmd{
			ID:          id,
			TextureID:   selected,
			TextureSize: core.NewSize(float32(bounds.Dx()), float32(bounds.Dy())),
		})
	}))
	g.showWindow(dialog)
}

func (g *Gui) ShowTilesetPropertiesWindow(tilesetID string) {
	g.queueWindow(func(m *tilemap.Map, _ *editor.Context) {
		tileset, err := m.Tileset(tilesetID)
		if err != nil {
			log.Printf("gui: tileset properties: %v", err)
			return
		}

		dialog := g.newDialog("Tileset: " + tilesetID)
		texture := g.newTextInput(tileset.TextureID)
		dialog.AddChild(g.newLabel("Texture"))
		dialog.AddChild(texture)

		mask := append([]bool(nil), tileset.AutotileMask...)
		dialog.AddChild(g.newLabel("Autotile tiles"))
		grid := widget.NewContainer(
			widget.ContainerOpts.Layout(
				widget.NewGridLayout(
					widget.GridLayoutOpts.Columns(8),
					widget.GridLayoutOpts.Spacing(2, 2),
				),
			),
		)
		for i := range mask {
			i := i
			label := func() string {
				if mask[i] {
					return fmt.Sprintf("[%d]", i)
				}
				return strconv.Itoa(i)
			}
			var btn *widget.Button
			btn = g.newButton(label(), func() {
				mask[i] = !mask[i]
				btn.Text().Label = label()
			})
			grid.AddChild(btn)
		}
		dialog.AddChild(grid)

		dialog.AddChild(g.newConfirmRow(func() {
			g.queueCommand(editor.UpdateTilesetCmd{
				ID:           tilesetID,
				TextureID:    strings.TrimSpace(texture.GetText()),
				AutotileMask: mask,
			})
		}))
		g.showWindow(dialog)
	})
}

func (g *Gui) ShowCreateObjectWindow(position core.Vec2, layerID string) {
	dialog := g.newDialog("New object")

	type objectEntry struct {
		kind tilemap.ObjectKind
		id   string
	}
	entries := make([]any, 0)
	for _, kind := range tilemap.ObjectKinds() {
		for _, id := range g.defs.IDs(kind) {
			entries = append(entries, objectEntry{kind: kind, id: id})
		}
	}

	var selected *objectEntry
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			entry, ok := e.(objectEntry)
			if !ok {
				return ""
			}
			return entry.kind.String() + "/" + entry.id
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if entry, ok := args.Entry.(objectEntry); ok {
				selected = &entry
			}
		}),
	)
	dialog.AddChild(list)

	dialog.AddChild(g.newConfirmRow(func() {
		if selected == nil {
			return
		}
		g.queueCommand(editor.CreateObjectCmd{
			ID:       selected.id,
			Kind:     selected.kind,
			Position: position,
			LayerID:  layerID,
		})
	}))
	g.showWindow(dialog)
}

func (g *Gui) ShowObjectPropertiesWindow(layerID string, index int) {
	g.queueWindow(func(m *tilemap.Map, _ *editor.Context) {
		layer, err := m.Layer(layerID)
		if err != nil || index < 0 || index >= len(layer.Objects) {
			log.Printf("gui: object properties: no object %d on layer %q", index, layerID)
			return
		}
		object := layer.Objects[index]

		dialog := g.newDialog("Object properties")
		id := g.newTextInput(object.ID)
		kindNames := []string{"item", "decoration", "environment"}
		kind, kindIndex := g.newCycleButton("Kind", kindNames, int(object.Kind))
		posX := g.newTextInput(strconv.FormatFloat(float64(object.Position.X), 'f', -1, 32))
		posY := g.newTextInput(strconv.FormatFloat(float64(object.Position.Y), 'f', -1, 32))

		dialog.AddChild(g.newLabel("ID"))
		dialog.AddChild(id)
		dialog.AddChild(kind)
		dialog.AddChild(g.newLabel("Position"))
		dialog.AddChild(posX)
		dialog.AddChild(posY)

		dialog.AddChild(g.newButtonRow(
			g.newButton("OK", func() {
				g.queueCommand(editor.UpdateObjectCmd{
					LayerID: layerID,
					Index:   index,
					ID:      strings.TrimSpace(id.GetText()),
					Kind:    tilemap.ObjectKind(kindIndex()),
					Position: core.Vec2{
						X: parseFloat(posX.GetText(), object.Position.X),
						Y: parseFloat(posY.GetText(), object.Position.Y),
					},
				})
				g.closeWindow()
			}),
			g.newButton("Delete", func() {
				g.queueCommand(editor.DeleteObjectCmd{LayerID: layerID, Index: index})
				g.closeWindow()
			}),
			g.newButton("Cancel", g.closeWindow),
		))
		g.showWindow(dialog)
	})
}

func (g *Gui) ShowTilePropertiesWindow(layerID string, coords core.Coords) {
	g.queueWindow(func(m *tilemap.Map, _ *editor.Context) {
		tile, err := m.TileAt(layerID, coords)
		if err != nil || tile == nil {
			log.Printf("gui: tile properties: no tile at (%d, %d) on layer %q", coords.X, coords.Y, layerID)
			return
		}

		dialog := g.newDialog(fmt.Sprintf("Tile (%d, %d)", coords.X, coords.Y))
		attributes := g.newTextInput(strings.Join(tile.Attributes, ", "))
		dialog.AddChild(g.newLabel("Attributes (comma separated)"))
		dialog.AddChild(attributes)

		dialog.AddChild(g.newConfirmRow(func() {
			var parsed []string
			for _, attr := range strings.Split(attributes.GetText(), ",") {
				if attr = strings.TrimSpace(attr); attr != "" {
					parsed = append(parsed, attr)
				}
			}
			g.queueCommand(editor.UpdateTileAttributesCmd{
				LayerID:    layerID,
				Coords:     coords,
				Attributes: parsed,
			})
		}))
		g.showWindow(dialog)
	})
}

func (g *Gui) ShowBackgroundPropertiesWindow() {
	g.queueWindow(func(m *tilemap.Map, _ *editor.Context) {
		dialog := g.newDialog("Background")

		c := m.BackgroundColor
		red := g.newTextInput(strconv.Itoa(int(c.R)))
		green := g.newTextInput(strconv.Itoa(int(c.G)))
		blue := g.newTextInput(strconv.Itoa(int(c.B)))
		dialog.AddChild(g.newLabel("Color (R, G, B)"))
		dialog.AddChild(red)
		dialog.AddChild(green)
		dialog.AddChild(blue)

		var specs []string
		for _, layer := range m.BackgroundLayers {
			specs = append(specs, fmt.Sprintf("%s:%g", layer.TextureID, layer.Depth))
		}
		layers := g.newTextInput(strings.Join(specs, ", "))
		dialog.AddChild(g.newLabel("Layers (texture:depth, ...)"))
		dialog.AddChild(layers)

		dialog.AddChild(g.newConfirmRow(func() {
			var parsed []tilemap.BackgroundLayer
			for _, spec := range strings.Split(layers.GetText(), ",") {
				spec = strings.TrimSpace(spec)
				if spec == "" {
					continue
				}
				textureID, depth, _ := strings.Cut(spec, ":")
				parsed = append(parsed, tilemap.BackgroundLayer{
					TextureID: strings.TrimSpace(textureID),
					Depth:     parseFloat(depth, 1),
				})
			}
			g.queueCommand(editor.UpdateBackgroundCmd{
				Color: core.Color{
					R: uint8(parseUint(red.GetText(), uint32(c.R))),
					G: uint8(parseUint(green.GetText(), uint32(c.G))),
					B: uint8(parseUint(blue.GetText(), uint32(c.B))),
					A: 255,
				},
				Layers: parsed,
			})
		}))
		g.showWindow(dialog)
	})
}

func (g *Gui) ShowMenu() {
	dialog := g.newDialog("Menu")
	dialog.AddChild(g.newButton("Save", func() {
		g.closeWindow()
		g.queueCommand(editor.OpenSaveMapWindowCmd{})
	}))
	dialog.AddChild(g.newButton("Exit to main menu", func() {
		g.closeWindow()
		g.queueCommand(editor.ExitToMainMenuCmd{})
	}))
	dialog.AddChild(g.newButton("Quit to desktop", func() {
		g.closeWindow()
		g.queueCommand(editor.QuitToDesktopCmd{})
	}))
	dialog.AddChild(g.newButton("Close", g.closeWindow))
	g.showWindow(dialog)
}
