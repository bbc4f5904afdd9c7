package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"customer-api/internal/application/ports"
	"customer-api/internal/interface/api/rest/dto/customer"
	"customer-api/internal/interface/api/rest/validator"
)

type CustomerController struct {
	customerService ports.CustomerService
	logger          *zap.Logger
}

func NewCustomerController(
	r *gin.Engine,
	customerService ports.CustomerService,
	logger *zap.Logger,
) *CustomerController {
	cc := &CustomerController{
		customerService: customerService,
		logger:          logger,
	}

	r.GET(RouteCustomers, cc.GetCustomersHandler)
	r.GET(RouteCustomer, cc.GetCustomerHandler)
	r.POST(RouteCustomers, cc.CreateCustomerHandler)
	r.PUT(RouteCustomer, cc.UpdateCustomerHandler)
	r.DELETE(RouteCustomer, cc.DeleteCustomerHandler)

	return cc
}

func (cc *CustomerController) GetCustomersHandler(c *gin.Context) {
	page, ok := validator.ValidatePage(c.Query("page"))
	if !ok {
		respondValidationFailed(c, []string{"page must be a non-negative integer"})
		return
	}
	size, ok := validator.ValidateSize(c.Query("size"))
	if !ok {
		respondValidationFailed(c, []string{"size must be a positive integer"})
		return
	}

	customers, total, err := cc.customerService.FindCustomers(c.Request.Context(), page, size)
	if err != nil {
		translateError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, customer.ResponseData{
		Data:  customer.ToResponseCustomers(customers),
		Page:  page,
		Size:  size,
		Total: total,
	})
}

func (cc *CustomerController) GetCustomerHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("customer_id"))
	if !ok {
		respondValidationFailed(c, []string{"customer_id must be a valid UUID"})
		return
	}

	cRet, err := cc.customerService.FindCustomerByID(c.Request.Context(), uuid)
	if err != nil {
		translateError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, customer.ToResponseCustomer(*cRet))
}

func (cc *CustomerController) CreateCustomerHandler(c *gin.Context) {
	var req customer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationFailed(c, []string{"invalid request body"})
		return
	}
	if errs := validator.ValidateCustomer(req); errs != nil {
		respondValidationFailed(c, errs)
		return
	}

	cRet, err := cc.customerService.CreateCustomer(c.Request.Context(), customer.ToDomainCustomer(req))
	if err != nil {
		translateError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, customer.ToResponseCustomer(*cRet))
}

func (cc *CustomerController) UpdateCustomerHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("customer_id"))
	if !ok {
		respondValidationFailed(c, []string{"customer_id must be a valid UUID"})
		return
	}

	var req customer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationFailed(c, []string{"invalid request body"})
		return
	}
	if errs := validator.ValidateCustomer(req); errs != nil {
		respondValidationFailed(c, errs)
		return
	}

	cRet, err := cc.customerService.UpdateCustomer(c.Request.Context(), uuid, customer.ToDomainCustomer(req))
	if err != nil {
		translateError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, customer.ToResponseCustomer(*cRet))
}

func (cc *CustomerController) DeleteCustomerHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("customer_id"))
	if !ok {
		respondValidationFailed(c, []string{"customer_id must be a valid UUID"})
		return
	}

	if err := cc.customerService.DeleteCustomer(c.Request.Context(), uuid); err != nil {
		translateError(c, cc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
