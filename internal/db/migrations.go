package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS estimates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id VARCHAR(64) NOT NULL,
		user_id UUID NOT NULL,
		project_type VARCHAR(32) NOT NULL,
		location VARCHAR(128) NOT NULL,
		quality_level VARCHAR(16) NOT NULL,
		project JSONB NOT NULL,
		materials JSONB NOT NULL,
		subtotal NUMERIC(18,2) NOT NULL,
		waste_buffer_percentage NUMERIC(5,2) NOT NULL,
		waste_buffer NUMERIC(18,2) NOT NULL,
		total NUMERIC(18,2) NOT NULL,
		region_multiplier NUMERIC(6,3),
		adjustment_source VARCHAR(16),
		generated_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_estimates_project_id ON estimates (project_id);`,
	`CREATE INDEX IF NOT EXISTS idx_estimates_user_id ON estimates (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_estimates_project_type ON estimates (project_type);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'estimates' AND column_name = 'adjustment_source') THEN
			ALTER TABLE estimates ADD COLUMN adjustment_source VARCHAR(16);
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'estimates' AND column_name = 'region_multiplier') THEN
			ALTER TABLE estimates ADD COLUMN region_multiplier NUMERIC(6,3);
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
