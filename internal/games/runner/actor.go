package runner

import "github.com/vovakirdan/squirrel-run/internal/core"

// Actor is the player's avatar. X never changes; Y is the top edge and grows downward.
type Actor struct {
	X, Y     float64
	VY       float64 // Vertical velocity, negative = up
	W, H     float64
	Grounded bool
}

// NewActor creates an actor resting on the ground line.
func NewActor(x, w, h, groundY float64) Actor {
	a := Actor{X: x, W: w, H: h}
	a.RestAt(groundY)
	return a
}

// RestAt puts the actor at its rest position on the ground line.
func (a *Actor) RestAt(groundY float64) {
	a.Y = groundY - a.H
	a.VY = 0
	a.Grounded = true
}

// ApplyGravity accelerates the actor downward by g.
func (a *Actor) ApplyGravity(g float64) {
	a.VY += g
}

// IntegratePosition moves the actor by its current velocity.
func (a *Actor) IntegratePosition() {
	a.Y += a.VY
}

// ClampToGround stops the actor on the ground line once it reaches it.
func (a *Actor) ClampToGround(groundY float64) {
	if rest := groundY - a.H; a.Y >= rest {
		a.Y = rest
		a.VY = 0
		a.Grounded = true
	}
}

// Jump applies the impulse if the actor is grounded and reports whether it did.
// Requests while airborne are dropped, never queued.
func (a *Actor) Jump(impulse float64) bool {
	if !a.Grounded {
		return false
	}
	a.VY = impulse
	a.Grounded = false
	return true
}

// Rect returns the actor's collision box.
func (a Actor) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}
