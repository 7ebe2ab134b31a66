package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/lib/pq"
	_ "github.com/lib/pq"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(cred *Credentials) (*PostgresRepository, error) {
	psqlconn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cred.Host,
		cred.Port,
		cred.User,
		cred.Password,
		cred.DBName)

	db, err := sql.Open("postgres", psqlconn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if e2 := db.Ping(); e2 != nil {
		return nil, fmt.Errorf("failed to ping database: %w", e2)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) RunMigrations(cred *Credentials) error {
	driver, err := postgres.WithInstance(r.db, &postgres.Config{
		MigrationsTable: "catalog_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cred.MigrationsDirPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if e2 := m.Up(); e2 != nil && !errors.Is(e2, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", e2)
	}

	return nil
}

func (r *PostgresRepository) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `SELECT id, name, price, description, age_category, image_url, stock, created_at
	          FROM products ORDER BY name`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Description,
			&p.AgeCategory,
			&p.ImageURL,
			&p.Stock,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, name, price, description, age_category, image_url, stock, created_at
	          FROM products WHERE id = $1`

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Description,
		&p.AgeCategory,
		&p.ImageURL,
		&p.Stock,
		&p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product by id: %w", err)
	}

	return &p, nil
}

func (r *PostgresRepository) ListReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	query := `SELECT id, name, rating, comment, created_at
	          FROM reviews ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.Name, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return reviews, nil
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	review.CreatedAt = time.Now()

	query := `INSERT INTO reviews (id, name, rating, comment, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.Name,
		review.Rating,
		review.Comment,
		review.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return r.getCustomer(ctx, `WHERE phone = $1`, phone)
}

func (r *PostgresRepository) GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.getCustomer(ctx, `WHERE id = $1`, id)
}

func (r *PostgresRepository) getCustomer(ctx context.Context, where string, arg interface{}) (*domain.Customer, error) {
	query := `SELECT id, phone, first_name, last_name,
	                 COALESCE(preferred_zone, ''), COALESCE(preferred_address, ''),
	                 created_at, updated_at
	          FROM customers ` + where

	var c domain.Customer
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&c.ID,
		&c.Phone,
		&c.FirstName,
		&c.LastName,
		&c.PreferredZone,
		&c.PreferredAddress,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query customer: %w", err)
	}

	return &c, nil
}

func (r *PostgresRepository) InsertCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `INSERT INTO customers (id, phone, first_name, last_name, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, insertErr := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Phone,
		customer.FirstName,
		customer.LastName,
		customer.CreatedAt,
		customer.UpdatedAt)

	if insertErr != nil {
		var pqErr *pq.Error
		if errors.As(insertErr, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("insert customer: %w", insertErr)
	}
	return nil
}

func (r *PostgresRepository) UpdateCustomer(ctx context.Context, id string, params UpdateCustomerParams) error {
	query := `UPDATE customers SET
	            first_name = COALESCE($2, first_name),
	            last_name = COALESCE($3, last_name),
	            preferred_zone = COALESCE($4, preferred_zone),
	            preferred_address = COALESCE($5, preferred_address),
	            updated_at = NOW()
	          WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		id,
		params.FirstName,
		params.LastName,
		params.PreferredZone,
		params.PreferredAddress)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	order.CreatedAt = time.Now()

	query := `INSERT INTO orders (id, customer_id, items, subtotal, delivery_fee, delivery_mode, zone, address_detail, payment_method, status, created_at)
	          VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, insertErr := r.db.ExecContext(ctx, query,
		order.ID,
		order.CustomerID,
		itemsJSON,
		order.Subtotal,
		order.DeliveryFee,
		string(order.DeliveryMode),
		order.Zone,
		order.AddressDetail,
		string(order.PaymentMethod),
		string(order.Status),
		order.CreatedAt)
	if insertErr != nil {
		return fmt.Errorf("insert order: %w", insertErr)
	}
	return nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
