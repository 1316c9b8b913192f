// Package scene runs an explicit, ordered list of scene objects. Nodes are
// added once by the owning application and are invoked every frame in the
// order they were added: Update with the frame delta, FixedUpdate zero or
// more times at a fixed timestep, then Draw.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Node is a scene object driven by the frame loop. Draw must not mutate
// game state; all mutation belongs in Update or FixedUpdate.
type Node interface {
	Update(dt float32) error
	FixedUpdate(dt float32) error
	Draw(screen *ebiten.Image)
}

const defaultFixedStep = float32(1.0 / 60.0)

// Scene owns the node list and the fixed-timestep accumulator.
type Scene struct {
	nodes       []Node
	fixedStep   float32
	accumulator float32
}

func New() *Scene {
	return &Scene{fixedStep: defaultFixedStep}
}

// Add appends a node. Order of addition is order of invocation.
func (s *Scene) Add(n Node) {
	s.nodes = append(s.nodes, n)
}

// Update advances every node by dt, then runs as many fixed steps as the
// accumulated time covers.
func (s *Scene) Update(dt float32) error {
	for _, n := range s.nodes {
		if err := n.Update(dt); err != nil {
			return err
		}
	}

	s.accumulator += dt
	for s.accumulator >= s.fixedStep {
		s.accumulator -= s.fixedStep
		for _, n := range s.nodes {
			if err := n.FixedUpdate(s.fixedStep); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Scene) Draw(screen *ebiten.Image) {
	for _, n := range s.nodes {
		n.Draw(screen)
	}
}
