package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EnsureSchema creates the hierarchy tables on first run. Every child table
// cascades on parent delete, which is what makes the per-country
// delete-and-rebuild import a single DELETE away.
func EnsureSchema(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS country (
			id BINARY(16) PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS district (
			id BINARY(16) PRIMARY KEY,
			country_id BINARY(16) NOT NULL,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_district (country_id, name),
			CONSTRAINT fk_district_country FOREIGN KEY (country_id) REFERENCES country(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS county (
			id BINARY(16) PRIMARY KEY,
			district_id BINARY(16) NOT NULL,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_county (district_id, name),
			CONSTRAINT fk_county_district FOREIGN KEY (district_id) REFERENCES district(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS locality (
			id BINARY(16) PRIMARY KEY,
			county_id BINARY(16) NOT NULL,
			name VARCHAR(255) NOT NULL,
			polygon JSON NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_locality (county_id, name),
			CONSTRAINT fk_locality_county FOREIGN KEY (county_id) REFERENCES county(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS postal_code (
			id BINARY(16) PRIMARY KEY,
			locality_id BINARY(16) NOT NULL,
			artery_type VARCHAR(255) NULL,
			prep1 VARCHAR(255) NULL,
			artery_title VARCHAR(255) NULL,
			prep2 VARCHAR(255) NULL,
			artery_name VARCHAR(255) NULL,
			artery_local VARCHAR(255) NULL,
			postal_code INT NOT NULL,
			postal_code_extension INT NOT NULL,
			postal_designation VARCHAR(255) NULL,
			full_address TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_postal_code (postal_code),
			KEY idx_postal_code_extension (postal_code_extension),
			CONSTRAINT fk_postal_code_locality FOREIGN KEY (locality_id) REFERENCES locality(id) ON DELETE CASCADE
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
