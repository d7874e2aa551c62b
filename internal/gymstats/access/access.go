// Package access decides whether an actor may read or write a gymstats entity.
package access

import (
	"github.com/2beens/gymtracker/internal/gymstats/apperr"
)

// Owned is implemented by every entity subject to ownership rules.
// OwnerID returns false for global (shared, system owned) entities.
type Owned interface {
	OwnerID() (int, bool)
}

type Action int

const (
	Read Action = iota
	Write
)

func (a Action) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

// Check is a pure predicate over (actor, entity, action):
//   - global entity: read allowed, write is an ImmutableResourceViolation
//   - owned entity: the actor must be the owner, otherwise OwnershipViolation
//
// Callers turn a denied read into NotFound, so other users' entities stay invisible.
func Check(actorID int, entity Owned, action Action) error {
	ownerID, owned := entity.OwnerID()
	if !owned {
		if action == Read {
			return nil
		}
		return apperr.Immutable("global resources cannot be modified")
	}

	if ownerID != actorID {
		return apperr.Ownership("resource belongs to another user")
	}

	return nil
}

// CanRead reports whether the actor can see the entity.
func CanRead(actorID int, entity Owned) bool {
	return Check(actorID, entity, Read) == nil
}

// CheckUsable verifies that an exercise-like entity may be referenced from a
// container (routine, workout) owned by containerOwnerID. Global entities are always
// usable, custom ones only by their owner.
func CheckUsable(containerOwnerID int, entity Owned) error {
	ownerID, owned := entity.OwnerID()
	if owned && ownerID != containerOwnerID {
		return apperr.Ownership("custom exercise belongs to another user")
	}
	return nil
}
