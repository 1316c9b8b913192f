package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// CreateSpawnPointAction appends a spawn point.
type CreateSpawnPointAction struct {
	Position core.Vec2
}

func (a *CreateSpawnPointAction) Apply(m *tilemap.Map) error {
	m.SpawnPoints = append(m.SpawnPoints, a.Position)
	return nil
}

func (a *CreateSpawnPointAction) Undo(m *tilemap.Map) error {
	if len(m.SpawnPoints) == 0 {
		return core.Errorf(core.ErrEditorAction, "undo create spawn point: map has no spawn points")
	}
	m.SpawnPoints = m.SpawnPoints[:len(m.SpawnPoints)-1]
	return nil
}

// DeleteSpawnPointAction removes the spawn point at an index. Later entries
// shift down by one; undo reinserts at the same index.
type DeleteSpawnPointAction struct {
	Index int

	position core.Vec2
}

func (a *DeleteSpawnPointAction) Apply(m *tilemap.Map) error {
	if a.Index < 0 || a.Index >= len(m.SpawnPoints) {
		return core.Errorf(core.ErrEditorAction, "delete spawn point: index %d out of range", a.Index)
	}
	a.position = m.SpawnPoints[a.Index]
	m.SpawnPoints = append(m.SpawnPoints[:a.Index], m.SpawnPoints[a.Index+1:]...)
	return nil
}

func (a *DeleteSpawnPointAction) Undo(m *tilemap.Map) error {
	if a.Index < 0 || a.Index > len(m.SpawnPoints) {
		return core.Errorf(core.ErrEditorAction, "undo delete spawn point: index %d out of range", a.Index)
	}
	m.SpawnPoints = append(m.SpawnPoints, core.Vec2{})
	copy(m.SpawnPoints[a.Index+1:], m.SpawnPoints[a.Index:])
	m.SpawnPoints[a.Index] = a.position
	return nil
}

// MoveSpawnPointAction repositions the spawn point at an index.
type MoveSpawnPointAction struct {
	Index    int
	Position core.Vec2

	prev core.Vec2
}

func (a *MoveSpawnPointAction) Apply(m *tilemap.Map) error {
	if a.Index < 0 || a.Index >= len(m.SpawnPoints) {
		return core.Errorf(core.ErrEditorAction, "move spawn point: index %d out of range", a.Index)
	}
	a.prev = m.SpawnPoints[a.Index]
	m.SpawnPoints[a.Index] = a.Position
	return nil
}

func (a *MoveSpawnPointAction) Undo(m *tilemap.Map) error {
	if a.Index < 0 || a.Index >= len(m.SpawnPoints) {
		return core.Errorf(core.ErrEditorAction, "undo move spawn point: index %d out of range", a.Index)
	}
	m.SpawnPoints[a.Index] = a.prev
	return nil
}
