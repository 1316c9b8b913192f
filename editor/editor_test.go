package editor

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// fakeGui records window requests and feeds no commands back.
type fakeGui struct {
	shown []string
}

func (g *fakeGui) ShowCreateMapWindow()        { g.shown = append(g.shown, "create_map") }
func (g *fakeGui) ShowSaveMapWindow(string)    { g.shown = append(g.shown, "save_map") }
func (g *fakeGui) ShowLoadMapWindow()          { g.shown = append(g.shown, "load_map") }
func (g *fakeGui) ShowImportWindow()           { g.shown = append(g.shown, "import") }
func (g *fakeGui) ShowCreateLayerWindow()      { g.shown = append(g.shown, "create_layer") }
func (g *fakeGui) ShowCreateTilesetWindow()    { g.shown = append(g.shown, "create_tileset") }
func (g *fakeGui) ShowTilesetPropertiesWindow(string) {
	g.shown = append(g.shown, "tileset_properties")
}
func (g *fakeGui) ShowCreateObjectWindow(core.Vec2, string) {
	g.shown = append(g.shown, "create_object")
}
func (g *fakeGui) ShowObjectPropertiesWindow(string, int) {
	g.shown = append(g.shown, "object_properties")
}
func (g *fakeGui) ShowTilePropertiesWindow(string, core.Coords) {
	g.shown = append(g.shown, "tile_properties")
}
func (g *fakeGui) ShowBackgroundPropertiesWindow() {
	g.shown = append(g.shown, "background_properties")
}
func (g *fakeGui) ShowMenu()                          {}
func (g *fakeGui) CloseAll()                          {}
func (g *fakeGui) Contains(core.Vec2) bool            { return false }
func (g *fakeGui) ContextMenuContains(core.Vec2) bool { return false }
func (g *fakeGui) OpenContextMenu(core.Vec2)          {}
func (g *fakeGui) CloseContextMenu()                  {}
func (g *fakeGui) Update(*tilemap.Map, *Context) []Command {
	return nil
}
func (g *fakeGui) Draw(*ebiten.Image) {}

// fakeStore keeps resources in memory.
type fakeStore struct {
	resources map[string]*tilemap.Resource
}

func newFakeStore() *fakeStore {
	return &fakeStore{resources: make(map[string]*tilemap.Resource)}
}

func (s *fakeStore) Create(name, description string, m *tilemap.Map) (*tilemap.Resource, error) {
	filename := tilemap.MapNameToFilename(name)
	if _, ok := s.resources[filename]; ok {
		return nil, core.Errorf(core.ErrMap, "map %q already exists", name)
	}
	res := &tilemap.Resource{
		Meta: tilemap.Meta{Name: name, Path: filename, Description: description, IsUserMap: true},
		Map:  m,
	}
	s.resources[filename] = res
	return res, nil
}

func (s *fakeStore) Save(res *tilemap.Resource) error {
	if !res.Meta.IsUserMap {
		return core.Errorf(core.ErrMap, "not a user map")
	}
	s.resources[res.Meta.Path] = res
	return nil
}

func (s *fakeStore) Get(filename string) (*tilemap.Resource, error) {
	if res, ok := s.resources[filename]; ok {
		return res, nil
	}
	return nil, core.Errorf(core.ErrMap, "no map %q", filename)
}

func (s *fakeStore) Delete(filename string) error {
	if _, ok := s.resources[filename]; !ok {
		return core.Errorf(core.ErrMap, "no map %q", filename)
	}
	delete(s.resources, filename)
	return nil
}

func (s *fakeStore) Filenames() []string {
	names := make([]string, 0, len(s.resources))
	for name := range s.resources {
		names = append(names, name)
	}
	return names
}

func (s *fakeStore) Len() int { return len(s.resources) }

func newTestEditor(t *testing.T, m *tilemap.Map) (*Editor, *fakeGui, *fakeStore) {
	t.Helper()
	gui := &fakeGui{}
	store := newFakeStore()
	res := &tilemap.Resource{
		Meta: tilemap.Meta{Name: "test", Path: "test.json", IsUserMap: true},
		Map:  m,
	}
	e := New(Params{
		Resource: res,
		Gui:      gui,
		Store:    store,
		Textures: core.NewTextureStore(),
	})
	return e, gui, store
}

func TestCreateLayerOnEmptyMap(t *testing.T) {
	e, _, _ := newTestEditor(t, emptyMap())

	if err := e.Apply(CreateLayerCmd{ID: "bg", Kind: tilemap.TileLayer, HasCollision: false, Index: 0}); err != nil {
		t.Fatalf("create layer: %v", err)
	}
	m := e.Map()
	if len(m.DrawOrder) != 1 || m.DrawOrder[0] != "bg" {
		t.Fatalf("draw order: got %v, want [bg]", m.DrawOrder)
	}
	if m.Layers["bg"].Kind != tilemap.TileLayer {
		t.Fatalf("layer kind: got %v", m.Layers["bg"].Kind)
	}

	if err := e.Apply(UndoCmd{}); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(m.DrawOrder) != 0 {
		t.Fatalf("draw order after undo: got %v, want empty", m.DrawOrder)
	}
}

func TestPlaceThenRemoveTile(t *testing.T) {
	m := emptyMap()
	e, _, _ := newTestEditor(t, m)

	commands := []Command{
		CreateLayerCmd{ID: "bg", Kind: tilemap.TileLayer, Index: 0},
		CreateTilesetCmd{ID: "ts1", TextureID: "tex", TextureSize: core.NewSize(128, 128)},
	}
	for _, cmd := range commands {
		if err := e.Apply(cmd); err != nil {
			t.Fatalf("%T: %v", cmd, err)
		}
	}
	baseline := e.History().Len()

	coords := core.Coords{X: 2, Y: 3}
	if err := e.Apply(PlaceTileCmd{TileID: 5, LayerID: "bg", TilesetID: "ts1", Coords: coords}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(RemoveTileCmd{LayerID: "bg", Coords: coords}); err != nil {
		t.Fatal(err)
	}

	if tile, _ := m.TileAt("bg", coords); tile != nil {
		t.Fatalf("tile should be empty after remove: %v", tile)
	}
	if got := e.History().Len() - baseline; got != 2 {
		t.Fatalf("history entries: got %d, want 2", got)
	}

	if err := e.Apply(UndoCmd{}); err != nil {
		t.Fatal(err)
	}
	tile, _ := m.TileAt("bg", coords)
	if tile == nil || tile.TileID != 5 {
		t.Fatalf("one undo should restore the tile: %v", tile)
	}
}

func TestSelectObjectLayerClearsTileSelection(t *testing.T) {
	m := populatedMap(t)
	e, _, _ := newTestEditor(t, m)

	if err := e.Apply(SelectLayerCmd{ID: "bg"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(SelectTilesetCmd{ID: "ts1"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(SelectTileCmd{ID: 3}); err != nil {
		t.Fatal(err)
	}
	if e.Context().SelectedTile == nil {
		t.Fatal("tile should be selected")
	}

	if err := e.Apply(SelectLayerCmd{ID: "objects"}); err != nil {
		t.Fatal(err)
	}
	ctx := e.Context()
	if ctx.SelectedTileset != "" {
		t.Errorf("tileset selection should be cleared: %q", ctx.SelectedTileset)
	}
	if ctx.SelectedTile != nil {
		t.Errorf("tile selection should be cleared: %v", *ctx.SelectedTile)
	}
}

func TestDeleteSelectedLayerResolvesToFirst(t *testing.T) {
	m := populatedMap(t)
	e, _, _ := newTestEditor(t, m)

	if err := e.Apply(SelectLayerCmd{ID: "objects"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(DeleteLayerCmd{ID: "objects"}); err != nil {
		t.Fatal(err)
	}
	if got := e.Context().SelectedLayer; got != "bg" {
		t.Fatalf("selected layer: got %q, want the new first entry %q", got, "bg")
	}

	if err := e.Apply(DeleteLayerCmd{ID: "bg"}); err != nil {
		t.Fatal(err)
	}
	if got := e.Context().SelectedLayer; got != "" {
		t.Fatalf("selected layer on empty map: got %q, want none", got)
	}
}

func TestDragCommitsSingleHistoryEntry(t *testing.T) {
	m := populatedMap(t)
	layer := m.Layers["objects"]
	layer.Objects = append(layer.Objects,
		tilemap.MapObject{ID: "a", Position: core.Vec2{X: 60, Y: 20}},
		tilemap.MapObject{ID: "b", Position: core.Vec2{X: 100, Y: 20}},
	)
	e, _, _ := newTestEditor(t, m)
	baseline := e.History().Len()

	// Press on object index 2, drag, release. Camera is at origin with
	// zoom 1, so screen space equals world space.
	start := layer.Objects[2].Position.Add(core.Vec2{X: 5, Y: 5})
	frames := []InputFrame{
		{CursorScreen: start, PrimaryDown: true},
		{CursorScreen: start.Add(core.Vec2{X: 30, Y: 10}), PrimaryDown: true},
		{CursorScreen: start.Add(core.Vec2{X: 48, Y: 16}), PrimaryDown: true},
		{CursorScreen: start.Add(core.Vec2{X: 48, Y: 16}), PrimaryDown: false},
	}
	for _, frame := range frames {
		e.input.Advance(frame)
		if err := e.handleFrame(1.0 / 60.0); err != nil {
			t.Fatal(err)
		}
	}

	if got := e.History().Len() - baseline; got != 1 {
		t.Fatalf("history entries from drag: got %d, want exactly 1", got)
	}
	if _, ok := e.History().stack[len(e.History().stack)-1].(*UpdateObjectAction); !ok {
		t.Fatalf("last action: got %T, want *UpdateObjectAction", e.History().stack[len(e.History().stack)-1])
	}
	if layer.Objects[2].Position == (core.Vec2{X: 100, Y: 20}) {
		t.Fatal("object should have moved")
	}
}

func TestClickWithoutMovementCommitsNothing(t *testing.T) {
	m := populatedMap(t)
	e, _, _ := newTestEditor(t, m)
	baseline := e.History().Len()

	position := m.Layers["objects"].Objects[0].Position.Add(core.Vec2{X: 3, Y: 3})
	frames := []InputFrame{
		{CursorScreen: position, PrimaryDown: true},
		{CursorScreen: position, PrimaryDown: true},
		{CursorScreen: position, PrimaryDown: false},
	}
	for _, frame := range frames {
		e.input.Advance(frame)
		if err := e.handleFrame(1.0 / 60.0); err != nil {
			t.Fatal(err)
		}
	}

	if got := e.History().Len() - baseline; got != 0 {
		t.Fatalf("plain click produced %d history entries", got)
	}
	sel := e.Context().SelectedObject
	if sel == nil || sel.Index != 0 || sel.LayerID != "objects" {
		t.Fatalf("click should select the object: %+v", sel)
	}
}

func TestDoubleClickOpensProperties(t *testing.T) {
	m := populatedMap(t)
	e, gui, _ := newTestEditor(t, m)

	position := m.Layers["objects"].Objects[0].Position.Add(core.Vec2{X: 3, Y: 3})
	frames := []InputFrame{
		{CursorScreen: position, PrimaryDown: true},
		{CursorScreen: position, PrimaryDown: false},
		{CursorScreen: position, PrimaryDown: true},
		{CursorScreen: position, PrimaryDown: false},
	}
	for _, frame := range frames {
		e.input.Advance(frame)
		if err := e.handleFrame(0.01); err != nil {
			t.Fatal(err)
		}
	}

	found := false
	for _, name := range gui.shown {
		if name == "object_properties" {
			found = true
		}
	}
	if !found {
		t.Fatalf("double click should open the properties window: shown %v", gui.shown)
	}
}

func TestHistoryErrorIsRecoverable(t *testing.T) {
	e, _, _ := newTestEditor(t, populatedMap(t))
	baseline := e.History().Len()

	err := e.Apply(DeleteLayerCmd{ID: "missing"})
	if err == nil {
		t.Fatal("expected error")
	}
	if e.History().Len() != baseline {
		t.Error("failed command must not touch history")
	}
	if e.InfoMessage() == "" {
		t.Error("failed command should surface an info message")
	}
	if err := e.Map().Validate(); err != nil {
		t.Errorf("map invalid after rejected command: %v", err)
	}
	// The editor keeps working.
	if err := e.Apply(CreateSpawnPointCmd{Position: core.Vec2{X: 1, Y: 1}}); err != nil {
		t.Fatalf("editor wedged after rejected command: %v", err)
	}
}

func TestBatchAbortsOnFirstFailure(t *testing.T) {
	e, _, _ := newTestEditor(t, emptyMap())

	err := e.Apply(BatchCmd{Commands: []Command{
		CreateLayerCmd{ID: "a", Kind: tilemap.TileLayer, Index: 0},
		DeleteLayerCmd{ID: "missing"},
		CreateLayerCmd{ID: "b", Kind: tilemap.TileLayer, Index: 1},
	}})
	if err == nil {
		t.Fatal("expected error")
	}
	m := e.Map()
	if _, ok := m.Layers["a"]; !ok {
		t.Error("commands before the failure should have applied")
	}
	if _, ok := m.Layers["b"]; ok {
		t.Error("commands after the failure must not apply")
	}
}

func TestRepairIdempotence(t *testing.T) {
	e, _, _ := newTestEditor(t, populatedMap(t))

	if err := e.Apply(SelectLayerCmd{ID: "bg"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(SelectTilesetCmd{ID: "ts1"}); err != nil {
		t.Fatal(err)
	}

	// Invalidate the tileset behind the context's back, then repair twice.
	delete(e.Map().Tilesets, "ts1")
	e.updateContext()
	first := e.ctx
	e.updateContext()
	second := e.ctx
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repair is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.SelectedTileset != "" {
		t.Errorf("dangling tileset selection should be cleared: %q", first.SelectedTileset)
	}
}

func TestCreateMapReplacesHistoryAndResource(t *testing.T) {
	e, _, store := newTestEditor(t, populatedMap(t))
	if err := e.Apply(CreateSpawnPointCmd{Position: core.Vec2{X: 1, Y: 1}}); err != nil {
		t.Fatal(err)
	}

	err := e.Apply(CreateMapCmd{
		Name:     "Fresh",
		TileSize: core.NewSize(16, 16),
		GridSize: core.USize{Width: 4, Height: 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	if e.History().Len() != 0 {
		t.Error("history should be cleared on map replacement")
	}
	if len(e.Map().Layers) != 0 {
		t.Error("new map should be empty")
	}
	if store.Len() != 1 {
		t.Errorf("store should hold the created map: %d", store.Len())
	}

	// Undo after the swap must not resurrect old-map actions.
	if err := e.Apply(UndoCmd{}); err != nil {
		t.Fatal(err)
	}
	if len(e.Map().SpawnPoints) != 0 {
		t.Error("undo crossed a map replacement")
	}
}

func TestToolAvailability(t *testing.T) {
	e, _, _ := newTestEditor(t, populatedMap(t))

	// Tile placement needs a tileset and tile selected.
	if err := e.Apply(SelectLayerCmd{ID: "bg"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(SelectToolCmd{Kind: ToolTilePlacement}); err == nil {
		t.Fatal("tile placement should be unavailable without a tile selection")
	}

	if err := e.Apply(SelectTilesetCmd{ID: "ts1"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(SelectTileCmd{ID: 0}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(SelectToolCmd{Kind: ToolTilePlacement}); err != nil {
		t.Fatalf("tile placement should be available: %v", err)
	}

	// Selecting the object layer clears the tile selection, which makes
	// the tool unavailable; the repair pass must drop it.
	if err := e.Apply(SelectLayerCmd{ID: "objects"}); err != nil {
		t.Fatal(err)
	}
	if got := e.Context().SelectedTool; got != ToolNone {
		t.Fatalf("tool should be cleared when unavailable: %v", got)
	}
}
