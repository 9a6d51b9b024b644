package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"nightreign-bingo/internal/repository"
	"nightreign-bingo/internal/service"
)

type importOptions struct {
	db     string
	dryRun bool
}

func newImportCmd(a *app) *cobra.Command {
	opts := &importOptions{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the JSON pools into a SQLite catalog",
		Long: `Validates the four JSON pools in the data directory and replaces the
contents of the catalog database with them. Use the catalog with
"bingo generate --catalog".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.db, "db", "", "catalog database path (env BINGO_CATALOG_DB, default <data-dir>/catalog.db)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "validate without writing to the database")
	return cmd
}

func (a *app) runImport(cmd *cobra.Command, opts *importOptions) error {
	path := opts.db
	if path == "" {
		path = a.cfg.CatalogDB
	}
	if path == "" {
		path = filepath.Join(a.cfg.DataDir, repository.DefaultCatalogDB)
	}

	var store service.CatalogStore
	if !opts.dryRun {
		db, err := repository.NewDB(path, a.log)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		store = repository.NewCatalogRepository(db)
	}

	summary, err := service.NewImportService(repository.NewPoolFiles(a.cfg.DataDir), store, a.log).Import(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	counts := fmt.Sprintf("%d bosses, %d nightfarers, %d maps, %d generic tasks",
		summary.Bosses, summary.Nightfarers, summary.Maps, summary.Generic)
	if summary.DryRun {
		_, err = fmt.Fprintf(out, "validated %s\n", counts)
		return err
	}
	_, err = fmt.Fprintf(out, "imported %s into %s\n", counts, path)
	return err
}
