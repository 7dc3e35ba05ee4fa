package ecs

import (
	"github.com/phanxgames/material"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for surface interaction
// events. Subscribe to this in your ECS systems to receive state changes and
// clicks.
var InteractionEventType = events.NewEventType[material.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) material.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event material.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
