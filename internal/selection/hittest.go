package selection

import (
	"anatomy-viewer/internal/anatomy"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PartHitTester ray-casts against the AABB of every visible part in a registry.
// Hidden parts are not pickable.
type PartHitTester struct {
	Registry anatomy.Registry
}

// Raycast returns the nearest visible part whose layer is in mask.
func (h PartHitTester) Raycast(ray rl.Ray, mask LayerMask) (Hit, bool) {
	if h.Registry == nil {
		return Hit{}, false
	}
	var best Hit
	found := false
	for _, p := range h.Registry.Enumerate() {
		if !p.Visible() || !mask.Includes(p.Layer()) {
			continue
		}
		c := rl.GetRayCollisionBox(ray, p.Bounds())
		if !c.Hit {
			continue
		}
		if !found || c.Distance < best.Distance {
			best = Hit{Object: p, Distance: c.Distance, Point: c.Point}
			found = true
		}
	}
	return best, found
}
