package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// logoKey is the single branding_assets row the quote header logo lives in
const logoKey = "logo"

// AssetRepository stores branding assets (currently just the company logo,
// kept as a data URI alongside the catalog data).
// Implements AssetRepositoryInterface
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Ensure AssetRepository implements AssetRepositoryInterface
var _ AssetRepositoryInterface = (*AssetRepository)(nil)

// GetLogo returns the stored logo data URI, or "" when no logo is set
func (r *AssetRepository) GetLogo(ctx context.Context) (string, error) {
	var dataURI string
	query := `SELECT data_uri FROM branding_assets WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, logoKey).Scan(&dataURI)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		log.Printf("❌ Error fetching logo: %v", err)
		return "", fmt.Errorf("failed to get logo: %w", err)
	}
	return dataURI, nil
}

// SaveLogo stores (or replaces) the logo data URI
func (r *AssetRepository) SaveLogo(ctx context.Context, dataURI string) error {
	query := `
		INSERT INTO branding_assets (name, data_uri)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data_uri = EXCLUDED.data_uri
	`
	if _, err := r.db.ExecContext(ctx, query, logoKey, dataURI); err != nil {
		log.Printf("❌ Error saving logo: %v", err)
		return fmt.Errorf("failed to save logo: %w", err)
	}
	log.Printf("✓ Logo saved (%d bytes)", len(dataURI))
	return nil
}

// DeleteLogo removes the stored logo. Deleting a missing logo is not an error.
func (r *AssetRepository) DeleteLogo(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM branding_assets WHERE name = $1`, logoKey); err != nil {
		log.Printf("❌ Error deleting logo: %v", err)
		return fmt.Errorf("failed to delete logo: %w", err)
	}
	log.Printf("🗑️  Logo deleted")
	return nil
}
