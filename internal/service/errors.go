package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an existing email.
	ErrEmailTaken = errors.New("email already registered")

	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrForbidden is returned when a user touches a resource owned
	// by someone else.
	ErrForbidden = errors.New("forbidden")

	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidPayment    = errors.New("unsupported payment method")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrMissingReason     = errors.New("cancelling an order requires a decline reason")
	ErrInvalidStockOp    = errors.New("unknown stock operation")

	// ErrInsufficientStock is the match target for stock failures;
	// the concrete error names the product.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports which product ran short during
// checkout.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductName)
}

// Is makes the error match ErrInsufficientStock with errors.Is.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
