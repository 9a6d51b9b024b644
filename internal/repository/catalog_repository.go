package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nightreign-bingo/internal/model"
)

// CatalogRepository stores imported pools in SQLite.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ReplaceAll swaps every pool for the given catalog in one transaction.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, catalog model.Catalog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CatalogEntry{}).Error; err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}

		var entries []model.CatalogEntry
		entries = appendTasks(entries, model.PoolBosses, catalog.Bosses)
		entries = appendOwners(entries, model.PoolNightfarers, catalog.Nightfarers)
		entries = appendOwners(entries, model.PoolMaps, catalog.Maps)
		entries = appendTasks(entries, model.PoolGeneric, catalog.Generic)
		if len(entries) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(entries, 100).Error; err != nil {
			return fmt.Errorf("insert catalog: %w", err)
		}
		return nil
	})
}

// ListPool returns the entries of one pool in their original order.
func (r *CatalogRepository) ListPool(ctx context.Context, pool string) ([]model.CatalogEntry, error) {
	var entries []model.CatalogEntry
	if err := r.db.WithContext(ctx).Where("pool = ?", pool).Order("position ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", pool, err)
	}
	return entries, nil
}

// Load rebuilds the whole catalog.
func (r *CatalogRepository) Load(ctx context.Context) (model.Catalog, error) {
	var catalog model.Catalog

	bosses, err := r.ListPool(ctx, model.PoolBosses)
	if err != nil {
		return catalog, err
	}
	nightfarers, err := r.ListPool(ctx, model.PoolNightfarers)
	if err != nil {
		return catalog, err
	}
	maps, err := r.ListPool(ctx, model.PoolMaps)
	if err != nil {
		return catalog, err
	}
	generic, err := r.ListPool(ctx, model.PoolGeneric)
	if err != nil {
		return catalog, err
	}

	for _, e := range bosses {
		catalog.Bosses = append(catalog.Bosses, e.Task())
	}
	for _, e := range nightfarers {
		catalog.Nightfarers = append(catalog.Nightfarers, e.Owner())
	}
	for _, e := range maps {
		catalog.Maps = append(catalog.Maps, e.Owner())
	}
	for _, e := range generic {
		catalog.Generic = append(catalog.Generic, e.Task())
	}
	return catalog, nil
}

func appendTasks(entries []model.CatalogEntry, pool string, tasks []model.Task) []model.CatalogEntry {
	for i, t := range tasks {
		entries = append(entries, model.CatalogEntry{
			Pool:       pool,
			Position:   i,
			Name:       t.Name,
			Category:   t.Category,
			Categories: t.Categories,
			Center:     t.Center,
		})
	}
	return entries
}

func appendOwners(entries []model.CatalogEntry, pool string, owners []model.Owner) []model.CatalogEntry {
	for i, o := range owners {
		entries = append(entries, model.CatalogEntry{
			Pool:     pool,
			Position: i,
			Name:     o.Name,
			Tasks:    o.Tasks,
		})
	}
	return entries
}
