// Package material renders animated Material Design surfaces (cards,
// buttons) for [Ebitengine].
//
// A [Surface] is a rounded rectangle with an elevation, a fill color, a
// surface tint, a state-layer color and a shadow color. Every one of those
// properties tweens toward its target when changed, pointer input drives an
// [InteractionState] that lifts the surface, washes it with a state layer and
// spreads a ripple from the press point, and the result is painted into two
// cached layers that are only repainted when something they show changes.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := material.NewScene()
//	card := scene.NewSurface("card", material.SurfaceConfig{})
//	card.SetBounds(material.Rect{X: 40, Y: 40, Width: 280, Height: 160})
//	material.FilledCard.Apply(card, material.DefaultTheme())
//	material.Run(scene, material.RunConfig{
//		Title: "Cards", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Animated properties
//
// [Animated] is the tween primitive. A property is lazy: until its current
// value is read for the first time, assigning a target snaps instead of
// animating, so a freshly configured surface never animates out of its
// placeholder values. After that, every new target animates from the live
// value, redirecting any tween already in flight. Call [Surface.Reset]
// before reusing a surface for different content to make the next
// assignment snap again.
//
// All tweens are driven by an [Animator] that the host advances once per
// frame. At most one tween runs per property; starting another replaces it.
//
// # Elevation
//
// Elevation sets both the drop shadow (see [ComputeShadow]) and how much of
// the surface tint shows through the fill (see [OpacityForElevation] and
// [ApplySurfaceTint]).
//
// # Rendering
//
// [DrawBackground] and [DrawOverlay] decide what is painted from a
// [SurfaceFrame]. They draw through the [Canvas] interface, implemented on
// the CPU by [RasterCanvas] with [gg]. Each [Layer] keeps its pixels in an
// Ebitengine texture and repaints at most once per frame however many
// times it was invalidated.
//
// # Styles
//
// [Style] presets such as [FilledButton] and [OutlinedCard] map a [Theme]'s
// color roles and a state→elevation rule onto a surface.
//
// # Testing
//
// [Scene.InjectClick], [Scene.InjectTap] and related methods feed synthetic
// input through the same routing as real input. [LoadTestScript] plays a
// JSON script of such actions and screenshots.
//
// # Logging
//
// The package logs through [log/slog]. Nothing is logged until
// [SetLogger] installs a logger.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package material
