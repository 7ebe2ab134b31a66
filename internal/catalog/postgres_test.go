package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

func setupTestDB(t *testing.T) (*PostgresRepository, func()) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	creds := &Credentials{
		Host:              host,
		Port:              port.Int(),
		User:              "testuser",
		Password:          "testpass",
		DBName:            "testdb",
		MigrationsDirPath: "../../migrations",
	}

	repo, err := NewPostgresRepository(creds)
	require.NoError(t, err)

	err = repo.RunMigrations(creds)
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func TestCustomerLifecycle(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	customer := &domain.Customer{
		Phone:     "90123456",
		FirstName: "Awa",
		LastName:  "Diallo",
	}
	require.NoError(t, repo.InsertCustomer(ctx, customer))
	assert.NotEmpty(t, customer.ID)

	found, err := repo.GetCustomerByPhone(ctx, "90123456")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, found.ID)
	assert.Equal(t, "Awa", found.FirstName)

	_, err = repo.GetCustomerByPhone(ctx, "99999999")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	dup := &domain.Customer{Phone: "90123456", FirstName: "X", LastName: "Y"}
	assert.ErrorIs(t, repo.InsertCustomer(ctx, dup), ErrDuplicatePhone)

	zone := "Plateau"
	addr := "Rue du marché, porte bleue"
	require.NoError(t, repo.UpdateCustomer(ctx, customer.ID, UpdateCustomerParams{
		PreferredZone:    &zone,
		PreferredAddress: &addr,
	}))

	updated, err := repo.GetCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plateau", updated.PreferredZone)
	assert.Equal(t, "Awa", updated.FirstName) // untouched fields survive
}

func TestInsertOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	customer := &domain.Customer{Phone: "90000001", FirstName: "Awa", LastName: "Diallo"}
	require.NoError(t, repo.InsertCustomer(ctx, customer))

	order := &domain.Order{
		CustomerID: customer.ID,
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Bouillie mil", Price: 500, Quantity: 2},
		},
		Subtotal:      1000,
		DeliveryFee:   1000,
		DeliveryMode:  domain.DeliveryModeHome,
		Zone:          "Plateau",
		PaymentMethod: domain.PaymentCash,
	}
	require.NoError(t, repo.InsertOrder(ctx, order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestReviews(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	first := &domain.Review{Name: "Mariam", Rating: 5, Comment: "Excellent"}
	require.NoError(t, repo.InsertReview(ctx, first))
	time.Sleep(10 * time.Millisecond)
	second := &domain.Review{Name: "Fatou", Rating: 4, Comment: "Très bien"}
	require.NoError(t, repo.InsertReview(ctx, second))

	reviews, err := repo.ListReviews(ctx, 0)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	// newest first
	assert.Equal(t, "Fatou", reviews[0].Name)

	limited, err := repo.ListReviews(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
