package sim

// WrappedPosition returns the entity position used for collision tests.
// A coordinate whose near edge (position minus radius) lies past the world
// is shifted back by one world size. Each axis corrects its own coordinate.
func WrappedPosition(e Entity, worldW, worldH float64) (x, y float64) {
	x, y = e.Position.X, e.Position.Y
	if x-e.CollisionRadius > worldW {
		x -= worldW
	}
	if y-e.CollisionRadius > worldH {
		y -= worldH
	}
	return x, y
}

// IsCollided tests two entities as circles.
//
// The predicate compares the squared distance with r1² + r2², not (r1+r2)².
// Distances are taken straight across the world, not around it.
func IsCollided(a, b Entity, worldW, worldH float64) bool {
	ax, ay := WrappedPosition(a, worldW, worldH)
	bx, by := WrappedPosition(b, worldW, worldH)

	dx := ax - bx
	dy := ay - by
	distSq := dx*dx + dy*dy

	return distSq < a.CollisionRadius*a.CollisionRadius+b.CollisionRadius*b.CollisionRadius
}
