package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"customer-api/internal/application/ports"
	domain "customer-api/internal/domain/customer"
)

type CustomerService struct {
	customerRepository domain.Repository
	mCounter           *prometheus.CounterVec
}

func NewCustomerService(
	customerRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.CustomerService {
	return &CustomerService{
		customerRepository: customerRepository,
		mCounter:           mCounter,
	}
}

// CreateCustomer inserts a new customer, unless a record with the same email
// already exists: an active one is a conflict, a soft-deleted one is
// reactivated under its original id with the request's name and phone.
func (cs *CustomerService) CreateCustomer(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	existing, err := cs.customerRepository.FetchCustomerByEmail(ctx, c.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive() {
			return nil, fmt.Errorf("customer with email %s already exists: %w", c.Email, domain.ErrCustomerExists)
		}

		c.UUID = existing.UUID
		cRet, err := cs.customerRepository.ReactivateCustomer(ctx, c)
		if err != nil {
			return nil, err
		}

		cs.mCounter.WithLabelValues("customer_created_total").Inc()

		return cRet, nil
	}

	cRet, err := cs.customerRepository.CreateCustomer(ctx, c)
	if err != nil {
		return nil, err
	}

	cs.mCounter.WithLabelValues("customer_created_total").Inc()

	return cRet, nil
}

func (cs *CustomerService) FindCustomerByID(ctx context.Context, uuid domain.UUID) (*domain.Customer, error) {
	c, err := cs.customerRepository.FetchActiveCustomerByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("customer not found with id %s: %w", uuid, domain.ErrCustomerNotFound)
	}

	return c, nil
}

func (cs *CustomerService) FindCustomers(ctx context.Context, page, size int) (domain.Customers, int64, error) {
	customers, err := cs.customerRepository.FetchCustomers(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}
	total, err := cs.customerRepository.CountCustomers(ctx)
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// UpdateCustomer overwrites full name and phone of an active customer.
// Email is immutable after creation.
func (cs *CustomerService) UpdateCustomer(ctx context.Context, uuid domain.UUID, c domain.Customer) (*domain.Customer, error) {
	existing, err := cs.customerRepository.FetchActiveCustomerByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("customer not found with id %s: %w", uuid, domain.ErrCustomerNotFound)
	}

	if existing.Email != c.Email {
		return nil, domain.ErrEmailImmutable
	}

	c.UUID = uuid
	cRet, err := cs.customerRepository.UpdateCustomer(ctx, c)
	if err != nil {
		return nil, err
	}
	if cRet == nil {
		return nil, fmt.Errorf("customer not found with id %s: %w", uuid, domain.ErrCustomerNotFound)
	}

	cs.mCounter.WithLabelValues("customer_updated_total").Inc()

	return cRet, nil
}

func (cs *CustomerService) DeleteCustomer(ctx context.Context, uuid domain.UUID) error {
	c, err := cs.customerRepository.SoftDeleteCustomer(ctx, uuid)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("customer not found with id %s: %w", uuid, domain.ErrCustomerNotFound)
	}

	cs.mCounter.WithLabelValues("customer_deleted_total").Inc()

	return nil
}
