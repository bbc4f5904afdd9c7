package customer

import (
	"github.com/google/uuid"
)

type (
	Customer struct {
		ID       uuid.UUID `json:"id"`
		FullName string    `json:"fullName"`
		Email    string    `json:"email"`
		Phone    string    `json:"phone"`
	}
	Customers    []Customer
	ResponseData struct {
		Data  Customers `json:"data"`
		Page  int       `json:"page"`
		Size  int       `json:"size"`
		Total int64     `json:"total"`
	}
)
