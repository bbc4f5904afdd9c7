package customer

import (
	"time"

	"github.com/google/uuid"
)

type (
	Customer struct {
		ID       uint64
		UUID     uuid.UUID
		FullName string
		Email    string
		Phone    string
		Status   string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Customers []*Customer
)
