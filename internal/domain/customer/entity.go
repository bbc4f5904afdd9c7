package customer

import (
	"time"

	"github.com/google/uuid"
)

// Status is the customer lifecycle state. A deleted customer stays in
// storage and can be reactivated by a create request with the same email.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

type (
	UUID     = uuid.UUID
	Customer struct {
		UUID     UUID
		FullName string
		Email    string
		Phone    string
		Status   Status

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Customers []*Customer
)

func (c *Customer) IsActive() bool { return c.Status == StatusActive }
