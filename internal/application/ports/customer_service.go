package ports

import (
	"context"

	"customer-api/internal/domain/customer"
)

type CustomerService interface {
	FindCustomerByID(ctx context.Context, uuid customer.UUID) (*customer.Customer, error)
	FindCustomers(ctx context.Context, page, size int) (customer.Customers, int64, error)
	CreateCustomer(ctx context.Context, c customer.Customer) (*customer.Customer, error)
	UpdateCustomer(ctx context.Context, uuid customer.UUID, c customer.Customer) (*customer.Customer, error)
	DeleteCustomer(ctx context.Context, uuid customer.UUID) error
}
