package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the identity and creation time shared by all domain objects.
type Entity struct {
	id        string
	createdAt time.Time
}

// EntityOption overrides a generated entity default.
type EntityOption func(*Entity)

// WithID sets the entity ID instead of generating one.
func WithID(id string) EntityOption {
	return func(e *Entity) {
		e.id = id
	}
}

// WithCreatedAt sets the creation time instead of using the current time.
func WithCreatedAt(t time.Time) EntityOption {
	return func(e *Entity) {
		e.createdAt = t
	}
}

func newEntity(opts ...EntityOption) Entity {
	e := Entity{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// ID returns the entity identifier.
func (e Entity) ID() string { return e.id }

// CreatedAt returns when the entity was constructed.
func (e Entity) CreatedAt() time.Time { return e.createdAt }
