package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/ports"
)

// PostgresUserStore is the durable user backing, substitutable for the
// volatile store without touching handler logic.
type PostgresUserStore struct {
	db *sqlx.DB
}

// NewPostgresUserStore creates a new postgres-backed user store
func NewPostgresUserStore(db *sqlx.DB) ports.UserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) List(ctx context.Context) ([]entities.User, error) {
	query := `
		SELECT id, name, email, role, status, orders, total_spent, created_at
		FROM users
		ORDER BY created_at`

	users := []entities.User{}
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (s *PostgresUserStore) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `
		SELECT id, name, email, role, status, orders, total_spent, created_at
		FROM users
		WHERE id = $1`

	var user entities.User
	err := s.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

func (s *PostgresUserStore) Update(ctx context.Context, id string, update ports.UserUpdate) (*entities.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(user)

	query := `
		UPDATE users
		SET name = $2, email = $3, role = $4, status = $5, orders = $6, total_spent = $7
		WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Role, user.Status, user.Orders, user.TotalSpent); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (s *PostgresUserStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return entities.ErrUserNotFound
	}

	return nil
}

// PostgresSettingsStore keeps the single settings record in a one-row table.
type PostgresSettingsStore struct {
	db *sqlx.DB
}

// NewPostgresSettingsStore creates a new postgres-backed settings store
func NewPostgresSettingsStore(db *sqlx.DB) ports.SettingsStore {
	return &PostgresSettingsStore{db: db}
}

type settingsRow struct {
	StoreName             string  `db:"store_name"`
	StoreEmail            string  `db:"store_email"`
	StorePhone            string  `db:"store_phone"`
	StoreAddress          string  `db:"store_address"`
	Currency              string  `db:"currency"`
	TaxRate               float64 `db:"tax_rate"`
	ShippingFee           float64 `db:"shipping_fee"`
	FreeShippingThreshold float64 `db:"free_shipping_threshold"`
	MaintenanceMode       bool    `db:"maintenance_mode"`
	AllowGuestCheckout    bool    `db:"allow_guest_checkout"`
	MaxOrderItems         int     `db:"max_order_items"`
}

func (s *PostgresSettingsStore) Get(ctx context.Context) (entities.Settings, error) {
	query := `
		SELECT store_name, store_email, store_phone, store_address, currency,
			tax_rate, shipping_fee, free_shipping_threshold, maintenance_mode,
			allow_guest_checkout, max_order_items
		FROM settings
		WHERE id = 1`

	var row settingsRow
	err := s.db.GetContext(ctx, &row, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return entities.DefaultSettings(), nil
		}
		return entities.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	return entities.Settings(row), nil
}

func (s *PostgresSettingsStore) Update(ctx context.Context, update ports.SettingsUpdate) (entities.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}

	update.Apply(&settings)

	query := `
		INSERT INTO settings (id, store_name, store_email, store_phone, store_address,
			currency, tax_rate, shipping_fee, free_shipping_threshold, maintenance_mode,
			allow_guest_checkout, max_order_items)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			store_email = EXCLUDED.store_email,
			store_phone = EXCLUDED.store_phone,
			store_address = EXCLUDED.store_address,
			currency = EXCLUDED.currency,
			tax_rate = EXCLUDED.tax_rate,
			shipping_fee = EXCLUDED.shipping_fee,
			free_shipping_threshold = EXCLUDED.free_shipping_threshold,
			maintenance_mode = EXCLUDED.maintenance_mode,
			allow_guest_checkout = EXCLUDED.allow_guest_checkout,
			max_order_items = EXCLUDED.max_order_items`

	_, err = s.db.ExecContext(ctx, query,
		settings.StoreName, settings.StoreEmail, settings.StorePhone, settings.StoreAddress,
		settings.Currency, settings.TaxRate, settings.ShippingFee, settings.FreeShippingThreshold,
		settings.MaintenanceMode, settings.AllowGuestCheckout, settings.MaxOrderItems,
	)
	if err != nil {
		return entities.Settings{}, fmt.Errorf("update settings: %w", err)
	}

	return settings, nil
}
