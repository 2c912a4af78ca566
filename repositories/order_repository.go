package repositories

import (
	"context"
	"errors"
	"fmt"

	"furniture-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository keeps orders as one row each; customer details and the
// frozen line items live in JSONB columns.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id, user_id, customer_details, items, total_pence, currency, payment_method, status, created_at`

func scanOrder(row pgx.Row) (models.Order, error) {
	var (
		o     models.Order
		pence int64
	)
	err := row.Scan(&o.ID, &o.UserID, &o.CustomerDetails, &o.Items, &pence, &o.Currency, &o.PaymentMethod, &o.Status, &o.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}
	o.TotalAmount = models.PenceToDecimal(pence)
	if o.Items == nil {
		o.Items = []models.OrderItem{}
	}
	return o, nil
}

func collectOrders(rows pgx.Rows) ([]models.Order, error) {
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}
	return orders, nil
}

// Create writes the order and returns it with its id and timestamp filled in.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (models.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (id, user_id, customer_details, items, total_pence, currency, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		order.ID, order.UserID, order.CustomerDetails, order.Items, models.DecimalToPence(order.TotalAmount),
		order.Currency, order.PaymentMethod, order.Status,
	).Scan(&order.CreatedAt)
	if err != nil {
		return models.Order{}, fmt.Errorf("pool.QueryRow: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("scanOrder: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	return collectOrders(rows)
}

// List returns every order, newest first, optionally narrowed to one status.
func (r *OrderRepository) List(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC, id`, string(status))
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	return collectOrders(rows)
}

// UpdateStatus moves an order from one status to another only if it is
// still in from. ErrConflict means someone else changed it first.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) (models.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `
		UPDATE orders SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING `+orderColumns,
		id, from, to,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, ErrConflict
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("scanOrder: %w", err)
	}
	return o, nil
}
