// Package storage persists profiles, engagement state and learned knowledge,
// either in postgres through gorm or in process memory.
package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store holds the DB pool and repositories.
type Store struct {
	db          *gorm.DB
	Profiles    *ProfileRepo
	Engagements *EngagementRepo
	Knowledge   *KnowledgeRepo
}

// NewStore opens the PostgreSQL pool and builds the repositories.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return newStore(db), nil
}

func newStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Profiles:    NewProfileRepo(db),
		Engagements: NewEngagementRepo(db),
		Knowledge:   NewKnowledgeRepo(db),
	}
}

// Models lists every table model, in creation order.
func Models() []any {
	return []any{
		&profileModel{},
		&memoryModel{},
		&engagementModel{},
		&techniqueModel{},
		&conceptModel{},
		&empathyModel{},
	}
}

// Migrate installs the pgvector extension and creates missing tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
