package catalog

import (
	"context"
	"errors"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicatePhone   = errors.New("phone number already registered")
)

// Repository is the storefront's view of the hosted catalog store.
// Read-only except for customer upsert, review insert and order insert.
type Repository interface {
	ListProducts(ctx context.Context, limit int) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	ListReviews(ctx context.Context, limit int) ([]domain.Review, error)
	InsertReview(ctx context.Context, review *domain.Review) error

	GetCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	InsertCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, id string, params UpdateCustomerParams) error

	InsertOrder(ctx context.Context, order *domain.Order) error
}

// UpdateCustomerParams carries the optional fields of a customer
// update; nil means "leave as is".
type UpdateCustomerParams struct {
	FirstName        *string
	LastName         *string
	PreferredZone    *string
	PreferredAddress *string
}
