package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"benbao-ev/models"
)

// AccessoryRepository handles database operations for accessories
// Implements AccessoryRepositoryInterface
type AccessoryRepository struct {
	db *sql.DB
}

// NewAccessoryRepository creates a new AccessoryRepository
func NewAccessoryRepository(db *sql.DB) *AccessoryRepository {
	return &AccessoryRepository{db: db}
}

// Ensure AccessoryRepository implements AccessoryRepositoryInterface
var _ AccessoryRepositoryInterface = (*AccessoryRepository)(nil)

// List returns accessories, optionally filtered by category ("" for all)
func (r *AccessoryRepository) List(ctx context.Context, category string) ([]models.Accessory, error) {
	query := `
		SELECT id, category, voltage, capacity, price
		FROM accessories
	`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, voltage, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Error listing accessories: %v", err)
		return nil, fmt.Errorf("failed to list accessories: %w", err)
	}
	defer rows.Close()

	var accessories []models.Accessory
	for rows.Next() {
		var acc models.Accessory
		if err := rows.Scan(&acc.ID, &acc.Category, &acc.Voltage, &acc.Capacity, &acc.Price); err != nil {
			return nil, fmt.Errorf("failed to scan accessory: %w", err)
		}
		accessories = append(accessories, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accessories: %w", err)
	}

	return accessories, nil
}

// GetByID returns a single accessory, or nil if it does not exist
func (r *AccessoryRepository) GetByID(ctx context.Context, id string) (*models.Accessory, error) {
	var acc models.Accessory
	query := `
		SELECT id, category, voltage, capacity, price
		FROM accessories
		WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&acc.ID, &acc.Category, &acc.Voltage, &acc.Capacity, &acc.Price)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Error fetching accessory %s: %v", id, err)
		return nil, fmt.Errorf("failed to get accessory: %w", err)
	}
	return &acc, nil
}

// Upsert inserts or fully replaces an accessory record
func (r *AccessoryRepository) Upsert(ctx context.Context, accessory *models.Accessory) error {
	log.Printf("💾 Upsert accessory: id=%s category=%s", accessory.ID, accessory.Category)

	query := `
		INSERT INTO accessories (id, category, voltage, capacity, price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			category = EXCLUDED.category,
			voltage = EXCLUDED.voltage,
			capacity = EXCLUDED.capacity,
			price = EXCLUDED.price
	`
	_, err := r.db.ExecContext(ctx, query,
		accessory.ID, accessory.Category, accessory.Voltage, accessory.Capacity, accessory.Price)
	if err != nil {
		log.Printf("❌ Error upserting accessory %s: %v", accessory.ID, err)
		return fmt.Errorf("failed to upsert accessory: %w", err)
	}

	log.Printf("✓ Accessory saved: %s", accessory.ID)
	return nil
}

// Delete removes an accessory record. Deleting an unknown id is not an error.
func (r *AccessoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accessories WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting accessory %s: %v", id, err)
		return fmt.Errorf("failed to delete accessory: %w", err)
	}
	affected, _ := result.RowsAffected()
	log.Printf("🗑️  Accessory delete: id=%s affected=%d", id, affected)
	return nil
}
