// Package ecs provides ECS adapters for material's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges surface state
// changes and clicks into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
