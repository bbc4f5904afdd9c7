package customer

// The customers table keeps a storage-level UNIQUE(email) constraint as a
// backstop for the read-check-then-write race in the service; see the
// repository's 23505 mapping.
const (
	SelectCustomers = `
		SELECT id, uuid, full_name, email, phone, status, created_at, updated_at
		FROM customers
		WHERE status = 'active'
		ORDER BY id
		LIMIT $2 OFFSET ( $1 * $2 )
	`
	CountActiveCustomers = `
		SELECT count(*) FROM customers WHERE status = 'active'
	`
	SelectCustomerByID = `
		SELECT id, uuid, full_name, email, phone, status, created_at, updated_at
		FROM customers
		WHERE uuid = $1
	`
	SelectActiveCustomerByID = `
		SELECT id, uuid, full_name, email, phone, status, created_at, updated_at
		FROM customers
		WHERE uuid = $1 AND status = 'active'
	`
	SelectCustomerByEmail = `
		SELECT id, uuid, full_name, email, phone, status, created_at, updated_at
		FROM customers
		WHERE email = $1
	`
	InsertCustomer = `
		INSERT INTO customers (full_name, email, phone, status)
		VALUES ($1, $2, $3, 'active')
		RETURNING
		  id, uuid, full_name, email, phone, status, created_at, updated_at
	`
	UpdateCustomerByUUID = `
		UPDATE customers
		SET full_name = $1,
		    phone = $2,
		    updated_at = now()
		WHERE uuid = $3 AND status = 'active'
		RETURNING
		  id, uuid, full_name, email, phone, status, created_at, updated_at
	`
	ReactivateCustomerByUUID = `
		UPDATE customers
		SET status = 'active',
		    full_name = $1,
		    phone = $2,
		    updated_at = now()
		WHERE uuid = $3
		RETURNING
		  id, uuid, full_name, email, phone, status, created_at, updated_at
	`
	SoftDeleteCustomerByUUID = `
		UPDATE customers
		SET status = 'deleted',
		    updated_at = now()
		WHERE uuid = $1 AND status = 'active'
		RETURNING
		  id, uuid, full_name, email, phone, status, created_at, updated_at
	`
)
