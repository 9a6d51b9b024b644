package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"nightreign-bingo/internal/model"
)

// CatalogSource loads every pool.
type CatalogSource interface {
	Load(ctx context.Context) (model.Catalog, error)
}

// CatalogStore replaces the stored pools.
type CatalogStore interface {
	ReplaceAll(ctx context.Context, catalog model.Catalog) error
}

// ImportSummary counts the imported entries per pool.
type ImportSummary struct {
	Bosses      int
	Nightfarers int
	Maps        int
	Generic     int
	DryRun      bool
}

// ImportService copies pools from JSON files into the catalog database.
type ImportService struct {
	source CatalogSource
	store  CatalogStore
	log    *zap.Logger
}

// NewImportService creates the importer. A nil store validates only.
func NewImportService(source CatalogSource, store CatalogStore, log *zap.Logger) *ImportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportService{source: source, store: store, log: log}
}

// Import loads, validates and stores the catalog.
func (s *ImportService) Import(ctx context.Context) (ImportSummary, error) {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("load pools: %w", err)
	}
	if err := ValidateCatalog(catalog); err != nil {
		return ImportSummary{}, fmt.Errorf("validate pools: %w", err)
	}

	summary := ImportSummary{
		Bosses:      len(catalog.Bosses),
		Nightfarers: len(catalog.Nightfarers),
		Maps:        len(catalog.Maps),
		Generic:     len(catalog.Generic),
		DryRun:      s.store == nil,
	}
	if s.store == nil {
		s.log.Info("dry run, catalog not written")
		return summary, nil
	}

	if err := s.store.ReplaceAll(ctx, catalog); err != nil {
		return ImportSummary{}, fmt.Errorf("store catalog: %w", err)
	}
	s.log.Info("catalog imported",
		zap.Int("bosses", summary.Bosses),
		zap.Int("nightfarers", summary.Nightfarers),
		zap.Int("maps", summary.Maps),
		zap.Int("generic", summary.Generic))
	return summary, nil
}

// ValidateCatalog reports every structural problem in the pools.
func ValidateCatalog(c model.Catalog) error {
	var errs []error
	if len(c.Bosses) == 0 {
		errs = append(errs, errors.New("no bosses"))
	}
	for i, b := range c.Bosses {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("boss %d has no name", i+1))
		}
		if !b.IsCenter() {
			errs = append(errs, fmt.Errorf("boss %q is not marked \"center\": 1", b.Name))
		}
	}
	errs = append(errs, validateOwners("nightfarer", c.Nightfarers)...)
	errs = append(errs, validateOwners("map", c.Maps)...)
	for i, t := range c.Generic {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("generic task %d has no name", i+1))
		}
		if t.IsCenter() {
			errs = append(errs, fmt.Errorf("generic task %q is marked as center", t.Name))
		}
	}
	return errors.Join(errs...)
}

func validateOwners(kind string, owners []model.Owner) []error {
	var errs []error
	if len(owners) == 0 {
		errs = append(errs, fmt.Errorf("no %ss", kind))
	}
	for i, o := range owners {
		if o.Name == "" {
			errs = append(errs, fmt.Errorf("%s %d has no name", kind, i+1))
		}
		if len(o.Tasks) == 0 {
			errs = append(errs, fmt.Errorf("%s %q has no tasks", kind, o.Name))
		}
	}
	return errs
}
