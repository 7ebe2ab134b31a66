package identity

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/razoraze123/gnamgnam/internal/catalog"
	"github.com/razoraze123/gnamgnam/internal/domain"
)

var ErrPhoneTaken = errors.New("phone number already registered")

// Service is the two-state identity machine per session: anonymous or
// identified. The phone number is a lookup key, not a credential.
type Service struct {
	repo     catalog.Repository
	sessions SessionStore
	log      *logrus.Logger
}

func NewService(repo catalog.Repository, sessions SessionStore, log *logrus.Logger) *Service {
	return &Service{repo: repo, sessions: sessions, log: log}
}

// Current returns the identified customer for the session, or nil when
// anonymous.
func (s *Service) Current(ctx context.Context, sessionID string) (*domain.Customer, error) {
	return s.sessions.Load(ctx, sessionID)
}

// Login looks up a customer by exact phone match. Not found is a
// defined negative result, not an error: the caller offers
// registration.
func (s *Service) Login(ctx context.Context, sessionID, phone string) (*domain.Customer, error) {
	customer, err := s.repo.GetCustomerByPhone(ctx, phone)
	if errors.Is(err, catalog.ErrCustomerNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.WithError(err).Error("customer lookup failed")
		return nil, err
	}

	if err := s.sessions.Save(ctx, sessionID, customer); err != nil {
		s.log.WithError(err).Error("session save failed")
		return nil, err
	}
	return customer, nil
}

// Register creates the customer record and identifies the session. On
// failure the session stays anonymous.
func (s *Service) Register(ctx context.Context, sessionID, phone, firstName, lastName string) (*domain.Customer, error) {
	customer := &domain.Customer{
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
	}

	err := s.repo.InsertCustomer(ctx, customer)
	if errors.Is(err, catalog.ErrDuplicatePhone) {
		return nil, ErrPhoneTaken
	}
	if err != nil {
		s.log.WithError(err).Error("customer insert failed")
		return nil, err
	}

	if err := s.sessions.Save(ctx, sessionID, customer); err != nil {
		s.log.WithError(err).Error("session save failed")
		return nil, err
	}
	return customer, nil
}

// Update patches the identified customer and merges the change into
// the session record. A no-op when the session is anonymous.
func (s *Service) Update(ctx context.Context, sessionID string, params catalog.UpdateCustomerParams) error {
	customer, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if customer == nil {
		return nil
	}

	if err := s.repo.UpdateCustomer(ctx, customer.ID, params); err != nil {
		s.log.WithError(err).Error("customer update failed")
		return err
	}

	if params.FirstName != nil {
		customer.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		customer.LastName = *params.LastName
	}
	if params.PreferredZone != nil {
		customer.PreferredZone = *params.PreferredZone
	}
	if params.PreferredAddress != nil {
		customer.PreferredAddress = *params.PreferredAddress
	}

	if err := s.sessions.Save(ctx, sessionID, customer); err != nil {
		s.log.WithError(err).Error("session save failed")
		return err
	}
	return nil
}

// Logout returns the session to anonymous and discards the persisted
// identity.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
