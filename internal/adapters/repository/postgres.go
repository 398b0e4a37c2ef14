// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"

	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/internal/ports"
)

const uniqueViolation = "23505"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_number VARCHAR(64) PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		request JSONB NOT NULL,
		delivery_method VARCHAR(32) NOT NULL,
		subtotal NUMERIC(12,2) NOT NULL,
		total NUMERIC(12,2) NOT NULL,
		status VARCHAR(32) NOT NULL,
		payment_status VARCHAR(32) NOT NULL DEFAULT 'unpaid',
		payment_provider VARCHAR(32) NOT NULL DEFAULT '',
		payment_reference VARCHAR(128) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_user_created_idx ON orders (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS orders_payment_reference_idx ON orders (payment_reference)`,
	`CREATE TABLE IF NOT EXISTS payment_attempts (
		reference VARCHAR(128) PRIMARY KEY,
		order_number VARCHAR(64) NOT NULL REFERENCES orders(order_number),
		provider VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS payment_attempts_order_idx ON payment_attempts (order_number)`,
}

const orderColumns = `order_number, user_id, request, subtotal, status, payment_status, payment_provider, payment_reference, created_at`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ ports.OrderRepositoryPort = (*PostgresRepository)(nil)

// Migrate creates the tables the repository needs if they do not exist yet.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	for _, q := range schema {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user := &domain.User{Email: email, Password: password}
	err := r.db.QueryRowContext(ctx, "INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id", email, password).Scan(&user.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, errors.New("email already exists")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, "SELECT id, email, password FROM users WHERE email = $1", email).Scan(&user.ID, &user.Email, &user.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SaveOrder records an order accepted upstream. Saving the same order number
// twice keeps the first record.
func (r *PostgresRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	request, err := json.Marshal(order.Request)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (
			order_number, user_id, request, delivery_method, subtotal, total, status,
			payment_status, payment_provider, payment_reference, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (order_number) DO NOTHING
	`
	_, err = r.db.ExecContext(ctx, query,
		order.OrderNumber, order.UserID, request, string(order.Request.DeliveryDetails.Method),
		order.Subtotal, order.Request.Total, order.Status,
		order.PaymentStatus, order.PaymentProvider, order.PaymentReference, order.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderNumber string, userID int64) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE order_number = $1 AND user_id = $2", orderNumber, userID)
	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return order, err
}

func (r *PostgresRepository) ListOrders(ctx context.Context, userID int64, limit, page int64) ([]*domain.Order, int64, error) {
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var total int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders WHERE user_id = $1", userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *PostgresRepository) CancelOrder(ctx context.Context, orderNumber string, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $3 WHERE order_number = $1 AND user_id = $2 AND status = $4 AND payment_status <> $5",
		orderNumber, userID, domain.OrderStatusCancelled, domain.OrderStatusPending, domain.PaymentStatusPaid)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("order not found, unauthorized, or cannot cancel")
	}
	return nil
}

// AttachPayment makes reference the order's current payment. Earlier
// references stay on record so late callbacks for them still find the order.
func (r *PostgresRepository) AttachPayment(ctx context.Context, orderNumber string, provider domain.PaymentProvider, reference string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE orders SET payment_provider = $2, payment_reference = $3, payment_status = $4 WHERE order_number = $1 AND status = $5 AND payment_status <> $6",
		orderNumber, string(provider), reference, domain.PaymentStatusPending, domain.OrderStatusPending, domain.PaymentStatusPaid)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("order is not awaiting payment")
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO payment_attempts (reference, order_number, provider) VALUES ($1, $2, $3) ON CONFLICT (reference) DO NOTHING",
		reference, orderNumber, string(provider))
	if err != nil {
		return err
	}
	return tx.Commit()
}

// A paid verdict from any attempt settles the order and makes that attempt
// current. A failure only counts for the current attempt. Paid is final.
const updatePaymentStatusQuery = `
	WITH target AS (
		SELECT o.order_number, o.payment_status, a.provider
		FROM orders o
		JOIN payment_attempts a ON a.order_number = o.order_number
		WHERE a.reference = $1
		FOR UPDATE OF o
	)
	UPDATE orders o
	SET payment_status = CASE
			WHEN o.payment_status = $3 THEN o.payment_status
			WHEN $2 = $3 OR o.payment_reference = $1 THEN $2
			ELSE o.payment_status
		END,
		payment_reference = CASE WHEN $2 = $3 AND o.payment_status <> $3 THEN $1 ELSE o.payment_reference END,
		payment_provider = CASE WHEN $2 = $3 AND o.payment_status <> $3 THEN target.provider ELSE o.payment_provider END
	FROM target
	WHERE o.order_number = target.order_number
	RETURNING o.order_number, o.user_id, o.request, o.subtotal, o.status, o.payment_status,
		o.payment_provider, o.payment_reference, o.created_at, target.payment_status`

// UpdatePaymentStatus applies a gateway verdict to the order the reference
// was issued for, and reports the payment status the order had before. It
// returns a nil order when the reference is unknown.
func (r *PostgresRepository) UpdatePaymentStatus(ctx context.Context, reference, status string) (*domain.Order, string, error) {
	var previous string
	row := r.db.QueryRowContext(ctx, updatePaymentStatusQuery, reference, status, domain.PaymentStatusPaid)
	order, err := scanOrder(row, &previous)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return order, previous, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanOrder reads orderColumns, followed by any extra columns into extra.
func scanOrder(row scanner, extra ...interface{}) (*domain.Order, error) {
	o := &domain.Order{}
	var request []byte
	dest := []interface{}{&o.OrderNumber, &o.UserID, &request, &o.Subtotal, &o.Status,
		&o.PaymentStatus, &o.PaymentProvider, &o.PaymentReference, &o.CreatedAt}
	err := row.Scan(append(dest, extra...)...)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(request, &o.Request); err != nil {
		return nil, err
	}
	return o, nil
}
