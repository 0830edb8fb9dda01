package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/easeaico/oriona/internal/config"
	"github.com/easeaico/oriona/internal/storage"
)

const migrateTimeout = time.Minute

func runMigrate(ctx context.Context, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(out)
	dryRun := fs.Bool("dry-run", false, "list the tables without touching the database")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	tables, err := tableNames()
	if err != nil {
		return err
	}
	if *dryRun {
		fmt.Fprintln(out, "extension: vector")
		for _, t := range tables {
			fmt.Fprintf(out, "table:     %s\n", t)
		}
		return nil
	}

	db, closeDB, err := openDB(config.Load())
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()
	if err := storage.Migrate(ctx, db); err != nil {
		return err
	}
	fmt.Fprintf(out, "migrated %d tables: %s\n", len(tables), strings.Join(tables, ", "))
	return nil
}

// tableNames resolves the table of every storage model without a connection.
func tableNames() ([]string, error) {
	var cache sync.Map
	var names []string
	for _, model := range storage.Models() {
		s, err := schema.Parse(model, &cache, schema.NamingStrategy{})
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		names = append(names, s.Table)
	}
	return names, nil
}

func runSchema(ctx context.Context, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(out)
	file := fs.String("file", "", "apply only this file")
	dir := fs.String("dir", "migrations", "directory holding the .sql files")
	dryRun := fs.Bool("dry-run", false, "list the files without applying them")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	files, err := findMigrationFiles(*dir, *file)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "no .sql files in %s\n", *dir)
		return nil
	}
	if *dryRun {
		for _, f := range files {
			fmt.Fprintf(out, "pending: %s\n", filepath.Base(f))
		}
		return nil
	}

	db, closeDB, err := openDB(config.Load())
	if err != nil {
		return err
	}
	defer closeDB()

	for _, f := range files {
		if err := executeSQLFile(ctx, db, f); err != nil {
			return fmt.Errorf("failed to apply %s: %w", filepath.Base(f), err)
		}
		fmt.Fprintf(out, "applied: %s\n", filepath.Base(f))
	}
	return nil
}

func openDB(cfg config.Config) (*gorm.DB, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is required for this command")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql DB handle: %w", err)
	}
	return db, func() { _ = sqlDB.Close() }, nil
}

func findMigrationFiles(dir, only string) ([]string, error) {
	if only != "" {
		path := filepath.Join(dir, only)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("migration file not found: %s", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func executeSQLFile(ctx context.Context, db *gorm.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := db.WithContext(ctx).Exec(string(content)).Error; err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}
