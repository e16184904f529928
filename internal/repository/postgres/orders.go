package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/swiftmart/checkout-api/internal/domain"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

type orderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOrderRepository creates a Postgres-backed order repository
func NewOrderRepository(db *sql.DB, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (
			id, tracking_number, status, order_date,
			customer_name, customer_email,
			ship_address, ship_city, ship_state, ship_zip_code, ship_country,
			subtotal, shipping, tax, total,
			payment_method, transaction_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err = tx.ExecContext(ctx, query,
		order.ID,
		order.TrackingNumber,
		string(order.Status),
		order.OrderDate,
		order.Customer.Name,
		order.Customer.Email,
		order.Shipping.Address,
		order.Shipping.City,
		order.Shipping.State,
		order.Shipping.ZipCode,
		order.Shipping.Country,
		order.Totals.Subtotal,
		order.Totals.Shipping,
		order.Totals.Tax,
		order.Totals.Total,
		string(order.PaymentMethod),
		order.TransactionID,
		order.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert order", zap.Error(err))
		return err
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, name, price, quantity, total)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			order.ID,
			item.ProductID,
			item.Name,
			item.Price,
			item.Quantity,
			item.Total,
		); err != nil {
			r.logger.Error("Failed to insert order item", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, tracking_number, status, order_date,
			customer_name, customer_email,
			ship_address, ship_city, ship_state, ship_zip_code, ship_country,
			subtotal, shipping, tax, total,
			payment_method, transaction_id, created_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	var status, method string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.TrackingNumber,
		&status,
		&order.OrderDate,
		&order.Customer.Name,
		&order.Customer.Email,
		&order.Shipping.Address,
		&order.Shipping.City,
		&order.Shipping.State,
		&order.Shipping.ZipCode,
		&order.Shipping.Country,
		&order.Totals.Subtotal,
		&order.Totals.Shipping,
		&order.Totals.Tax,
		&order.Totals.Total,
		&method,
		&order.TransactionID,
		&order.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get order", zap.Error(err))
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentMethod = domain.PaymentMethod(method)

	itemQuery := `
		SELECT product_id, name, price, quantity, total
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		r.logger.Error("Failed to get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.Total); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &order, nil
}
