// Package kiban provides the runtime data-management core for game engines:
// generational entity/component storage and ordered, delegating event
// dispatch.
package kiban

// Entity represents a unique entity in the world.
type Entity struct {
	ID      uint32 // The slot index of the entity.
	Version uint32 // The version of the entity, used to check for validity.
}

// entityState tracks one slot of the world's entity table. A dead slot keeps
// its version; the version is bumped only when the slot is reused, so a
// handle to a dropped entity stays dead without ever aliasing the slot's
// next occupant.
type entityState struct {
	version uint32
	alive   bool
}
