package customer

import (
	"context"
)

// Repository is the persistence gateway for customer records. Fetch methods
// return (nil, nil) when no row matches; the service layer decides what
// "missing" means.
type Repository interface {
	FetchCustomerByID(ctx context.Context, uuid UUID) (*Customer, error)
	FetchActiveCustomerByID(ctx context.Context, uuid UUID) (*Customer, error)
	FetchCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	FetchCustomers(ctx context.Context, page, size int) (Customers, error)
	CountCustomers(ctx context.Context) (int64, error)
	CreateCustomer(ctx context.Context, req Customer) (*Customer, error)
	UpdateCustomer(ctx context.Context, req Customer) (*Customer, error)
	ReactivateCustomer(ctx context.Context, req Customer) (*Customer, error)
	SoftDeleteCustomer(ctx context.Context, uuid UUID) (*Customer, error)
}
