package customer

import (
	domain "customer-api/internal/domain/customer"
)

func ToResponseCustomer(cDomain domain.Customer) Customer {
	var c = Customer{
		ID:       cDomain.UUID,
		FullName: cDomain.FullName,
		Email:    cDomain.Email,
		Phone:    cDomain.Phone,
	}

	return c
}

func ToResponseCustomers(csDomain domain.Customers) Customers {
	cs := make(Customers, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseCustomer(*c)
	}

	return cs
}

func ToDomainCustomer(cRequest Request) domain.Customer {
	var c = domain.Customer{
		FullName: cRequest.FullName,
		Email:    cRequest.Email,
		Phone:    cRequest.Phone,
	}

	return c
}
