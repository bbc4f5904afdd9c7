package validator

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"customer-api/internal/interface/api/rest/dto/customer"
)

const (
	DefaultPage = 0
	DefaultSize = 10
)

var (
	phoneRe = regexp.MustCompile(`^\+[0-9]{6,14}$`)
)

// ValidatePage parses a zero-based page number query param.
func ValidatePage(page string) (int, bool) {
	if page == "" {
		return DefaultPage, true
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 0 {
		return 0, false
	}

	return p, true
}

// ValidateSize parses a positive page size query param.
func ValidateSize(size string) (int, bool) {
	if size == "" {
		return DefaultSize, true
	}
	s, err := strconv.Atoi(size)
	if err != nil || s <= 0 {
		return 0, false
	}

	return s, true
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateCustomer checks the request shape and returns the aggregated
// violation messages, or nil when the request is valid.
func ValidateCustomer(r customer.Request) []string {
	var errs []string

	// Normalize
	fullName := strings.TrimSpace(r.FullName)
	email := strings.TrimSpace(r.Email)
	phone := strings.TrimSpace(r.Phone)

	// fullName (required + length)
	if fullName == "" {
		errs = append(errs, "Full name cannot be blank")
	} else if l := utf8.RuneCountInString(fullName); l < 2 || l > 50 {
		errs = append(errs, "Full name must be between 2 and 50 characters")
	}

	// email (required + length + format)
	if email == "" {
		errs = append(errs, "Email cannot be blank")
	} else if l := utf8.RuneCountInString(email); l < 2 || l > 100 {
		errs = append(errs, "Email length must be between 2 and 100 characters")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, "Invalid email format")
	}

	// phone (optional, '+' followed by 6-14 digits)
	if phone != "" && !phoneRe.MatchString(phone) {
		errs = append(errs, "Phone must start with '+' and contain only digits")
	}

	return errs
}
