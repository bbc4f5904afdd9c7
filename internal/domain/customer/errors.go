package customer

import "errors"

var (
	// ErrCustomerExists indicates a create request with the email of an active customer.
	ErrCustomerExists = errors.New("customer already exists")
	// ErrCustomerNotFound indicates no active customer matched the given id.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrEmailImmutable indicates an update attempted to change the email.
	ErrEmailImmutable = errors.New("email cannot be updated")
)
