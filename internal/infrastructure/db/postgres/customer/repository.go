package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "customer-api/internal/domain/customer"
	"customer-api/internal/infrastructure/db/postgres"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock's pool
// satisfies it too.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchCustomers(ctx context.Context, page, size int) (domain.Customers, error) {
	rows, err := r.db.Query(ctx, SelectCustomers, page, size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs Customers
	for rows.Next() {
		c := new(Customer)

		if err = rows.Scan(
			&c.ID,
			&c.UUID,
			&c.FullName,
			&c.Email,
			&c.Phone,
			&c.Status,

			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&cs), nil
}

func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, CountActiveCustomers).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *Repository) FetchCustomerByID(ctx context.Context, uuid domain.UUID) (*domain.Customer, error) {
	return r.fetchOne(ctx, SelectCustomerByID, uuid.String())
}

func (r *Repository) FetchActiveCustomerByID(ctx context.Context, uuid domain.UUID) (*domain.Customer, error) {
	return r.fetchOne(ctx, SelectActiveCustomerByID, uuid.String())
}

func (r *Repository) FetchCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.fetchOne(ctx, SelectCustomerByEmail, email)
}

func (r *Repository) CreateCustomer(ctx context.Context, req domain.Customer) (*domain.Customer, error) {
	c, err := r.scanOne(r.db.QueryRow(ctx, InsertCustomer, req.FullName, req.Email, req.Phone))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrCustomerExists
		}
		return nil, err
	}

	return c, nil
}

func (r *Repository) UpdateCustomer(ctx context.Context, req domain.Customer) (*domain.Customer, error) {
	return r.mutateOne(ctx, UpdateCustomerByUUID, req.FullName, req.Phone, req.UUID)
}

func (r *Repository) ReactivateCustomer(ctx context.Context, req domain.Customer) (*domain.Customer, error) {
	return r.mutateOne(ctx, ReactivateCustomerByUUID, req.FullName, req.Phone, req.UUID)
}

func (r *Repository) SoftDeleteCustomer(ctx context.Context, uuid domain.UUID) (*domain.Customer, error) {
	return r.mutateOne(ctx, SoftDeleteCustomerByUUID, uuid)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	c, err := r.scanOne(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return c, nil
}

func (r *Repository) mutateOne(ctx context.Context, query string, args ...any) (*domain.Customer, error) {
	c, err := r.scanOne(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return c, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Customer, error) {
	c := new(Customer)
	if err := row.Scan(
		&c.ID,
		&c.UUID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.Status,

		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return fromDBModel(c), nil
}
