package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"benbao-ev/models"
)

// VehicleRepository handles database operations for vehicles
// Implements VehicleRepositoryInterface
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new VehicleRepository
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Ensure VehicleRepository implements VehicleRepositoryInterface
var _ VehicleRepositoryInterface = (*VehicleRepository)(nil)

// List returns all vehicles ordered by model code
func (r *VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	query := `
		SELECT id, model, name, battery, motor, brake_tire, seat_dash, control_func, additional, colors, price
		FROM vehicles
		ORDER BY model, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error listing vehicles: %v", err)
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vehicles: %w", err)
	}

	return vehicles, nil
}

// GetByID returns a single vehicle, or nil if it does not exist
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	query := `
		SELECT id, model, name, battery, motor, brake_tire, seat_dash, control_func, additional, colors, price
		FROM vehicles
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)
	vehicle, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Error fetching vehicle %s: %v", id, err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// Upsert inserts or fully replaces a vehicle record
func (r *VehicleRepository) Upsert(ctx context.Context, vehicle *models.Vehicle) error {
	log.Printf("💾 Upsert vehicle: id=%s model=%s", vehicle.ID, vehicle.Model)

	batteryJSON, err := json.Marshal(vehicle.Battery)
	if err != nil {
		return fmt.Errorf("failed to encode battery list: %w", err)
	}
	colorsJSON, err := json.Marshal(vehicle.Colors)
	if err != nil {
		return fmt.Errorf("failed to encode color list: %w", err)
	}

	query := `
		INSERT INTO vehicles (id, model, name, battery, motor, brake_tire, seat_dash, control_func, additional, colors, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			model = EXCLUDED.model,
			name = EXCLUDED.name,
			battery = EXCLUDED.battery,
			motor = EXCLUDED.motor,
			brake_tire = EXCLUDED.brake_tire,
			seat_dash = EXCLUDED.seat_dash,
			control_func = EXCLUDED.control_func,
			additional = EXCLUDED.additional,
			colors = EXCLUDED.colors,
			price = EXCLUDED.price
	`
	_, err = r.db.ExecContext(ctx, query,
		vehicle.ID, vehicle.Model, vehicle.Name, batteryJSON,
		vehicle.Motor, vehicle.BrakeTire, vehicle.SeatDash, vehicle.ControlFunc, vehicle.Additional,
		colorsJSON, vehicle.Price)
	if err != nil {
		log.Printf("❌ Error upserting vehicle %s: %v", vehicle.ID, err)
		return fmt.Errorf("failed to upsert vehicle: %w", err)
	}

	log.Printf("✓ Vehicle saved: %s", vehicle.ID)
	return nil
}

// Delete removes a vehicle record. Deleting an unknown id is not an error.
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting vehicle %s: %v", id, err)
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	affected, _ := result.RowsAffected()
	log.Printf("🗑️  Vehicle delete: id=%s affected=%d", id, affected)
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	var batteryJSON, colorsJSON []byte

	err := row.Scan(&vehicle.ID, &vehicle.Model, &vehicle.Name, &batteryJSON,
		&vehicle.Motor, &vehicle.BrakeTire, &vehicle.SeatDash, &vehicle.ControlFunc, &vehicle.Additional,
		&colorsJSON, &vehicle.Price)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan vehicle: %w", err)
	}

	if err := json.Unmarshal(batteryJSON, &vehicle.Battery); err != nil {
		return nil, fmt.Errorf("failed to decode battery list: %w", err)
	}
	if err := json.Unmarshal(colorsJSON, &vehicle.Colors); err != nil {
		return nil, fmt.Errorf("failed to decode color list: %w", err)
	}

	return &vehicle, nil
}
