package checkout

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/razoraze123/gnamgnam/internal/cart"
	"github.com/razoraze123/gnamgnam/internal/catalog"
	"github.com/razoraze123/gnamgnam/internal/domain"
	"github.com/razoraze123/gnamgnam/internal/identity"
	"github.com/razoraze123/gnamgnam/internal/pricing"
	"github.com/razoraze123/gnamgnam/internal/whatsapp"
)

var ErrEmptyCart = errors.New("cart is empty")

// Result is the priced, validated outcome of a checkout: the amounts
// and the messaging handoff link. The link is the order's source of
// truth; the database row is best-effort.
type Result struct {
	Subtotal    int64  `json:"sous_total"`
	DeliveryFee int64  `json:"frais_livraison"`
	GrandTotal  int64  `json:"total"`
	WhatsAppURL string `json:"whatsapp_url"`
}

type Service struct {
	carts      *cart.Service
	identities *identity.Service
	repo       catalog.Repository
	formatter  *whatsapp.Formatter
	defaultFee int64
	log        *logrus.Logger
}

func NewService(
	carts *cart.Service,
	identities *identity.Service,
	repo catalog.Repository,
	formatter *whatsapp.Formatter,
	defaultFee int64,
	log *logrus.Logger,
) *Service {
	return &Service{
		carts:      carts,
		identities: identities,
		repo:       repo,
		formatter:  formatter,
		defaultFee: defaultFee,
		log:        log,
	}
}

// Submit runs the full pipeline: validate the form, price the cart,
// persist the order and the customer's delivery preferences when the
// session is identified (best-effort, failures logged and swallowed),
// build the WhatsApp handoff URL, then clear the cart.
func (s *Service) Submit(ctx context.Context, sessionID string, form Form) (*Result, FieldErrors, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if len(c.Lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	if errs := form.Validate(); !errs.Valid() {
		return nil, errs, nil
	}

	firstName := Sanitize(form.FirstName)
	lastName := Sanitize(form.LastName)
	addressDetail := Sanitize(form.AddressDetail)

	subtotal := pricing.Subtotal(c.Lines)
	fee := pricing.DeliveryFee(form.DeliveryMode, form.Zone, pricing.Zones(), s.defaultFee)

	s.persistOrder(ctx, sessionID, c.Lines, subtotal, fee, form, addressDetail)

	url := s.formatter.OrderURL(c.Lines, subtotal, whatsapp.CustomerInfo{
		FirstName:     firstName,
		LastName:      lastName,
		Phone:         form.Phone,
		DeliveryMode:  form.DeliveryMode,
		Zone:          form.Zone,
		AddressDetail: addressDetail,
		PaymentMethod: form.PaymentMethod,
		DeliveryFee:   fee,
	})

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.log.WithError(err).Warn("cart clear after checkout failed")
	}

	return &Result{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		GrandTotal:  subtotal + fee,
		WhatsAppURL: url,
	}, nil, nil
}

// CartShareURL builds the pre-checkout share link for the current cart.
func (s *Service) CartShareURL(ctx context.Context, sessionID string) (string, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if len(c.Lines) == 0 {
		return "", ErrEmptyCart
	}
	return s.formatter.CartURL(c.Lines, pricing.Subtotal(c.Lines)), nil
}

// persistOrder writes the order row and refreshes the customer's
// preferred zone and address. Only runs when the session is
// identified; any failure is logged, never surfaced — the WhatsApp
// message carries the order regardless.
func (s *Service) persistOrder(ctx context.Context, sessionID string, lines []domain.CartLine, subtotal, fee int64, form Form, addressDetail string) {
	customer, err := s.identities.Current(ctx, sessionID)
	if err != nil {
		s.log.WithError(err).Warn("identity lookup during checkout failed")
		return
	}
	if customer == nil {
		return
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		})
	}

	order := &domain.Order{
		CustomerID:    customer.ID,
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		DeliveryMode:  form.DeliveryMode,
		Zone:          form.Zone,
		AddressDetail: addressDetail,
		PaymentMethod: form.PaymentMethod,
	}
	if err := s.repo.InsertOrder(ctx, order); err != nil {
		s.log.WithError(err).Warn("order persistence failed")
	}

	updateErr := s.identities.Update(ctx, sessionID, catalog.UpdateCustomerParams{
		PreferredZone:    &form.Zone,
		PreferredAddress: &addressDetail,
	})
	if updateErr != nil {
		s.log.WithError(updateErr).Warn("customer preference update failed")
	}
}
