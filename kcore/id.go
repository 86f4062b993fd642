package kcore

import (
	"github.com/gofrs/uuid"
)

// ID is an opaque unique token, used to key registrations such as
// engine subscriptions.
type ID struct {
	uuid.UUID
}

func NewID() ID {
	id, err := uuid.NewV4()
	Expect(err, "error generating uuid")

	return ID{id}
}
