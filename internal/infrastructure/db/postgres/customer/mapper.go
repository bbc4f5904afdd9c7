package customer

import (
	domain "customer-api/internal/domain/customer"
)

func fromDBModel(model *Customer) *domain.Customer {
	var c = &domain.Customer{
		UUID:     model.UUID,
		FullName: model.FullName,
		Email:    model.Email,
		Phone:    model.Phone,
		Status:   domain.Status(model.Status),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return c
}

func fromDBModels(models *Customers) domain.Customers {
	cs := make(domain.Customers, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
