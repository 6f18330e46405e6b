package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/logger"
)

// Generator creates new goose migration files.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration writes a timestamped goose migration file with empty
// Up and Down sections.
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	timestamp := time.Now().Format("20060102150405")
	fileName := fmt.Sprintf("%s_%s.sql", timestamp, name)
	filePath := filepath.Join(g.scriptsPath, fileName)

	content := fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- +goose Up
-- Add your SQL statements here

-- +goose Down
-- Add your rollback SQL statements here
`, name, time.Now().Format("2006-01-02 15:04:05"))

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create migration file: %w", err)
	}

	g.logger.Infow("migration file created successfully", "file", filePath)
	return nil
}
