package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nightreign-bingo/internal/config"
	"nightreign-bingo/internal/model"
	"nightreign-bingo/internal/prompt"
	"nightreign-bingo/internal/repository"
	"nightreign-bingo/internal/service"
)

type generateOptions struct {
	preset     string
	savePreset string
	catalog    string
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a board, interactively or from a preset",
		Long: `Generates a 25-cell board and overwrites the output file.

Without --preset the boss, nightfarer, map and category minimums are asked
for on the terminal. Invalid answers are asked again.

Example:
  bingo generate --preset weekly.yaml --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.preset, "preset", "", "YAML preset with boss, nightfarer, map and quota")
	cmd.Flags().StringVar(&opts.savePreset, "save-preset", "", "write the selection to this YAML file for later runs")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "read pools from an imported SQLite catalog (env BINGO_CATALOG_DB)")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	catalogDB := a.cfg.CatalogDB
	if opts.catalog != "" {
		catalogDB = opts.catalog
	}
	catalog, err := a.loadCatalog(ctx, catalogDB)
	if err != nil {
		return err
	}

	var sel model.Selection
	if opts.preset != "" {
		sel, err = a.selectionFromPreset(catalog, opts.preset)
	} else {
		selector := prompt.NewSelector(cmd.InOrStdin(), out, a.log)
		sel, err = selector.Select(ctx, catalog, func(sel model.Selection) []string {
			return service.BuildPool(sel, catalog.Generic).Categories
		})
	}
	if err != nil {
		return err
	}

	pool := service.BuildPool(sel, catalog.Generic)
	board := service.NewBoardService(repository.NewBoardFile(a.cfg.Output()), a.log)
	res, err := board.Generate(ctx, pool, sel.Quota, a.cfg.Seed)
	if err != nil {
		return err
	}

	if opts.savePreset != "" {
		if err := config.PresetFromSelection(sel).Save(opts.savePreset); err != nil {
			return err
		}
		a.log.Info("preset saved", zap.String("path", opts.savePreset))
	}

	fmt.Fprintf(out, "\nYour 5x5 Bingo Board has been saved to %s (seed %d)\n", res.Path, res.Seed)
	return nil
}

func (a *app) selectionFromPreset(catalog model.Catalog, path string) (model.Selection, error) {
	p, err := config.LoadPreset(path)
	if err != nil {
		return model.Selection{}, err
	}
	return service.ResolvePreset(catalog, p)
}

// loadCatalog reads the pools from the catalog database when one is given,
// from the JSON files in the data directory otherwise.
func (a *app) loadCatalog(ctx context.Context, catalogDB string) (model.Catalog, error) {
	if catalogDB == "" {
		return repository.NewPoolFiles(a.cfg.DataDir).Load(ctx)
	}

	db, err := repository.NewDB(catalogDB, a.log)
	if err != nil {
		return model.Catalog{}, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	catalog, err := repository.NewCatalogRepository(db).Load(ctx)
	if err != nil {
		return model.Catalog{}, err
	}
	if err := service.ValidateCatalog(catalog); err != nil {
		return model.Catalog{}, fmt.Errorf("catalog %s: %w", catalogDB, err)
	}
	a.log.Debug("pools loaded from catalog", zap.String("db", catalogDB))
	return catalog, nil
}
