package material

import (
	"fmt"
	"time"
)

// debugStats holds per-frame metrics. Only populated when Scene.debug is
// true.
type debugStats struct {
	drawTime   time.Duration
	surfaces   int
	repaints   int
	animations int
}

// debugLog reports frame stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame",
		"draw", stats.drawTime,
		"surfaces", stats.surfaces,
		"repaints", stats.repaints,
		"animations", stats.animations,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// surface is used. Only called in debug mode.
func debugCheckDisposed(sf *Surface, op string) {
	if sf.disposed {
		panic(fmt.Sprintf("material debug: %s on disposed surface %q", op, sf.Name))
	}
}

// debugMaxSurfaces is the surface count above which debug mode warns. Every
// surface owns two textures.
const debugMaxSurfaces = 1000

func debugCheckSurfaceCount(n int) {
	if n > debugMaxSurfaces {
		Logger().Warn("scene surface count exceeds threshold", "count", n, "threshold", debugMaxSurfaces)
	}
}
