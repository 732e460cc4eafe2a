// Package validation defines the order validation rules and the
// machine-readable reasons handed back to API callers.
package validation

import "errors"

// Reason strings surfaced in API responses and bulk failure reports.
const (
	ReasonCustomerNotFound = "CustomerNotFound"
	ReasonItemNotFound     = "ItemNotFound"
	ReasonInvalidQuantity  = "InvalidQuantity"
)

// Error is a rejected order payload. It is a caller error, never a
// storage failure.
type Error struct {
	Reason  string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrCustomerNotFound = &Error{Reason: ReasonCustomerNotFound, Message: "customer not found"}
	ErrItemNotFound     = &Error{Reason: ReasonItemNotFound, Message: "item not found"}
	ErrInvalidQuantity  = &Error{Reason: ReasonInvalidQuantity, Message: "quantity must be at least 1"}
)

// CheckQuantity enforces the quantity >= 1 rule shared by the single
// and bulk order paths.
func CheckQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// AsError unwraps a validation error, if err is one.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
