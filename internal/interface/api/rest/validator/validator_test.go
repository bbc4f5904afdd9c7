package validator

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-api/internal/interface/api/rest/dto/customer"
)

func TestValidatePage(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"", 0, true},
		{"0", 0, true},
		{"3", 3, true},
		{"-1", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := ValidatePage(tt.in)
		assert.Equal(t, tt.wantOK, ok, "page %q", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "page %q", tt.in)
		}
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"", 10, true},
		{"1", 1, true},
		{"50", 50, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"ten", 0, false},
	}

	for _, tt := range tests {
		got, ok := ValidateSize(tt.in)
		assert.Equal(t, tt.wantOK, ok, "size %q", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "size %q", tt.in)
		}
	}
}

func TestIsUUID(t *testing.T) {
	id := uuid.New()

	ok, got := IsUUID(id.String())
	assert.True(t, ok)
	assert.Equal(t, id, got)

	ok, _ = IsUUID("42")
	assert.False(t, ok)
}

func TestValidateCustomer(t *testing.T) {
	valid := customer.Request{
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "+1234567890",
	}

	t.Run("valid request", func(t *testing.T) {
		assert.Nil(t, ValidateCustomer(valid))
	})

	t.Run("phone is optional", func(t *testing.T) {
		r := valid
		r.Phone = ""
		assert.Nil(t, ValidateCustomer(r))
	})

	tests := []struct {
		name    string
		mutate  func(r *customer.Request)
		wantMsg string
	}{
		{
			name:    "blank full name",
			mutate:  func(r *customer.Request) { r.FullName = "  " },
			wantMsg: "Full name cannot be blank",
		},
		{
			name:    "full name too short",
			mutate:  func(r *customer.Request) { r.FullName = "J" },
			wantMsg: "Full name must be between 2 and 50 characters",
		},
		{
			name:    "full name too long",
			mutate:  func(r *customer.Request) { r.FullName = strings.Repeat("a", 51) },
			wantMsg: "Full name must be between 2 and 50 characters",
		},
		{
			name:    "blank email",
			mutate:  func(r *customer.Request) { r.Email = "" },
			wantMsg: "Email cannot be blank",
		},
		{
			name:    "email too long",
			mutate:  func(r *customer.Request) { r.Email = strings.Repeat("a", 95) + "@ex.com" },
			wantMsg: "Email length must be between 2 and 100 characters",
		},
		{
			name:    "bad email syntax",
			mutate:  func(r *customer.Request) { r.Email = "john.doe" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "phone without plus",
			mutate:  func(r *customer.Request) { r.Phone = "1234567890" },
			wantMsg: "Phone must start with '+' and contain only digits",
		},
		{
			name:    "phone too short",
			mutate:  func(r *customer.Request) { r.Phone = "+12345" },
			wantMsg: "Phone must start with '+' and contain only digits",
		},
		{
			name:    "phone with letters",
			mutate:  func(r *customer.Request) { r.Phone = "+12345abcd" },
			wantMsg: "Phone must start with '+' and contain only digits",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			errs := ValidateCustomer(r)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs[0])
		})
	}

	t.Run("messages aggregate across fields", func(t *testing.T) {
		errs := ValidateCustomer(customer.Request{FullName: "", Email: "bad", Phone: "bad"})
		assert.Len(t, errs, 3)
	})
}
