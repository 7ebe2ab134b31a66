package cart

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

var (
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("not enough stock for requested quantity")
)

// Service is the cart ledger. Invariants: at most one line per product
// id, every line quantity >= 1. Each mutation loads the session's
// lines, applies the change and writes the full list back through the
// store before returning.
type Service struct {
	store Store
	log   *logrus.Logger
}

func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &domain.Cart{Lines: lines}, nil
}

// AddItem merges the product into the cart: an existing line grows by
// one, a new line starts at one. Quantity never exceeds the product's
// available stock.
func (s *Service) AddItem(ctx context.Context, sessionID string, product domain.Product) (*domain.Cart, error) {
	if product.Stock <= 0 {
		return nil, ErrOutOfStock
	}

	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].Product.ID == product.ID {
			if lines[i].Quantity+1 > product.Stock {
				return nil, ErrInsufficientStock
			}
			lines[i].Quantity++
			lines[i].Product = product // refresh the snapshot
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{Product: product, Quantity: 1})
	}

	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		s.log.WithError(err).Error("cart save failed")
		return nil, err
	}
	return &domain.Cart{Lines: lines}, nil
}

// SetQuantity sets a line to an absolute quantity. Zero or negative
// removes the line. A quantity above the product's known stock is
// clamped to the stock.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int64) (*domain.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, productID)
	}

	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].Product.ID == productID {
			if stock := lines[i].Product.Stock; stock > 0 && quantity > stock {
				quantity = stock
			}
			lines[i].Quantity = quantity
			break
		}
	}

	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		s.log.WithError(err).Error("cart save failed")
		return nil, err
	}
	return &domain.Cart{Lines: lines}, nil
}

// RemoveItem deletes the line if present. Removing an absent product is
// not an error.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.Product.ID != productID {
			kept = append(kept, l)
		}
	}

	if err := s.store.Save(ctx, sessionID, kept); err != nil {
		s.log.WithError(err).Error("cart save failed")
		return nil, err
	}
	return &domain.Cart{Lines: kept}, nil
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.WithError(err).Error("cart clear failed")
		return err
	}
	return nil
}
