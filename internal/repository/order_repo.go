package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"JerseyStoreAPI/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder inserts the order row and all of its items in one
// transaction and returns the generated order id. Either everything
// lands or nothing does.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) (string, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	orderID := uuid.NewString()
	now := time.Now()

	if err := r.insertOrderTx(ctx, tx, orderID, order, now); err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	if err := r.insertOrderItemsTx(ctx, tx, orderID, items, now); err != nil {
		return "", fmt.Errorf("insert order items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	return orderID, nil
}

func (r *OrderRepository) insertOrderTx(ctx context.Context, tx pgx.Tx, orderID string, order *model.Order, now time.Time) error {
	query := `
		INSERT INTO orders (id, customer_name, customer_email, customer_phone, shipping_address, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := tx.Exec(ctx, query,
		orderID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.ShippingAddress, order.TotalAmount, model.OrderStatusPending, now,
	)
	return err
}

func (r *OrderRepository) insertOrderItemsTx(ctx context.Context, tx pgx.Tx, orderID string, items []model.OrderItem, now time.Time) error {
	query := `
		INSERT INTO order_items (id, order_id, jersey_id, quantity, size, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, it := range items {
		if _, err := tx.Exec(ctx, query,
			uuid.NewString(), orderID, it.JerseyID, it.Quantity, it.Size, it.Price, now,
		); err != nil {
			return err
		}
	}
	return nil
}

// GetOrderByID returns the order row plus its items.
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID string) (*model.OrderResponse, error) {
	var o model.Order
	query := `
		SELECT id, customer_name, customer_email, customer_phone, shipping_address, total_amount, status, created_at
		FROM orders WHERE id=$1
	`
	if err := r.DB.QueryRow(ctx, query, orderID).Scan(
		&o.OrderID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.ShippingAddress, &o.TotalAmount, &o.Status, &o.CreatedAt,
	); err != nil {
		return nil, errors.New("order not found")
	}

	itemsQuery := `
		SELECT id, order_id, jersey_id, quantity, size, price, created_at
		FROM order_items WHERE order_id=$1 ORDER BY created_at
	`
	rows, err := r.DB.Query(ctx, itemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.OrderItemID, &it.OrderID, &it.JerseyID, &it.Quantity, &it.Size, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return &model.OrderResponse{Order: o, Items: items}, rows.Err()
}
