package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"quickbite/internal/order-svc/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) RestaurantOnline(restaurantID int) (bool, error) {
	var online bool
	err := r.DB.QueryRow(
		"SELECT is_online FROM restaurants WHERE id = $1", restaurantID,
	).Scan(&online)
	return online, err
}

// MenuSnapshot reads current name, price and availability for the given
// menu items. Prices are copied onto the order, not re-read later. Ids
// with no matching row are simply absent from the map, same as disabled
// items, so callers treat both as unavailable.
func (r *PostgresRepository) MenuSnapshot(restaurantID int, menuItemIDs []int) (map[int]domain.OrderItem, error) {
	snapshot := make(map[int]domain.OrderItem, len(menuItemIDs))
	for _, id := range menuItemIDs {
		var item domain.OrderItem
		var available bool
		err := r.DB.QueryRow(`
			SELECT id, name, price, is_available
			FROM menu_items
			WHERE id = $1 AND restaurant_id = $2
		`, id, restaurantID).Scan(&item.MenuItemID, &item.ItemName, &item.UnitPrice, &available)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !available {
			continue
		}
		snapshot[id] = item
	}
	return snapshot, nil
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (order_number, user_id, restaurant_id, total_amount, delivery_address, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, order.OrderNumber, order.UserID, order.RestaurantID, order.TotalAmount,
		order.DeliveryAddress, order.Status).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, item_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, order.ID, item.MenuItemID, item.ItemName, item.Quantity, item.UnitPrice).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, order_number, user_id, restaurant_id, agent_id, total_amount,
		       delivery_address, status, created_at,
		       confirmed_at, prepared_at, picked_up_at, delivered_at, cancelled_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.RestaurantID,
		&order.AgentID, &order.TotalAmount, &order.DeliveryAddress, &order.Status,
		&order.CreatedAt, &order.ConfirmedAt, &order.PreparedAt, &order.PickedUpAt,
		&order.DeliveredAt, &order.CancelledAt); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, menu_item_id, item_name, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return &order, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.MenuItemID, &item.ItemName, &item.Quantity, &item.UnitPrice); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}
	return &order, nil
}

func (r *PostgresRepository) listOrders(where string, arg interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_number, user_id, restaurant_id, agent_id, total_amount,
		       delivery_address, status, created_at
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.RestaurantID,
			&order.AgentID, &order.TotalAmount, &order.DeliveryAddress, &order.Status,
			&order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) ListOrdersByUser(userID int) ([]domain.Order, error) {
	return r.listOrders("user_id = $1", userID)
}

func (r *PostgresRepository) ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error) {
	return r.listOrders("restaurant_id = $1", restaurantID)
}

func (r *PostgresRepository) ListPendingOrders(restaurantID int) ([]domain.Order, error) {
	return r.listOrders("restaurant_id = $1 AND status = 'pending'", restaurantID)
}

// UpdateStatus performs the transition as a conditional update: the row
// changes only if it still holds the status the caller read. Zero rows
// affected means a concurrent transition won.
func (r *PostgresRepository) UpdateStatus(orderID int, from, to domain.Status) (int64, error) {
	set := "status = $1"
	if col := domain.TimestampColumn(to); col != "" {
		set += ", " + col + " = CURRENT_TIMESTAMP"
	}

	if to == domain.StatusDelivered {
		return r.markDelivered(orderID, from, set)
	}

	result, err := r.DB.Exec(
		fmt.Sprintf("UPDATE orders SET %s WHERE id = $2 AND status = $3", set),
		to, orderID, from)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// markDelivered covers the order-status write and the agent-flag clear
// with a single transaction, and credits the agent's lifetime counters.
func (r *PostgresRepository) markDelivered(orderID int, from domain.Status, set string) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		fmt.Sprintf("UPDATE orders SET %s, delivery_status = 'delivered' WHERE id = $2 AND status = $3", set),
		domain.StatusDelivered, orderID, from)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil || affected == 0 {
		return affected, err
	}

	if _, err := tx.Exec(`
		UPDATE delivery_agents SET
			is_on_delivery = FALSE,
			total_deliveries = total_deliveries + 1,
			total_earnings = total_earnings + (SELECT total_amount FROM orders WHERE id = $1),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = (SELECT agent_id FROM orders WHERE id = $1)
	`, orderID); err != nil {
		return 0, err
	}

	return affected, tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL,
			user_id INT NOT NULL,
			restaurant_id INT NOT NULL,
			agent_id INT,
			total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			delivery_address TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			delivery_status TEXT,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			confirmed_at TIMESTAMPTZ,
			prepared_at TIMESTAMPTZ,
			picked_up_at TIMESTAMPTZ,
			delivered_at TIMESTAMPTZ,
			cancelled_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id),
			menu_item_id INT NOT NULL,
			item_name TEXT NOT NULL,
			quantity INT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
