package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nightreign-bingo/internal/model"
)

// Data file names inside the data directory.
const (
	BossesFile      = "Bosses.json"
	NightfarersFile = "Nightfarers.json"
	MapsFile        = "Maps.json"
	GenericFile     = "Generic.json"
)

// ErrNoData is returned when a required data file does not exist.
var ErrNoData = errors.New("data file not found")

// PoolFiles reads the task pools from JSON files in a directory.
type PoolFiles struct {
	dir string
}

func NewPoolFiles(dir string) *PoolFiles {
	return &PoolFiles{dir: dir}
}

// Load reads all four pools.
func (f *PoolFiles) Load(ctx context.Context) (model.Catalog, error) {
	var catalog model.Catalog
	if err := ctx.Err(); err != nil {
		return catalog, err
	}
	if err := f.decode(BossesFile, &catalog.Bosses); err != nil {
		return catalog, err
	}
	nightfarers, err := f.Nightfarers()
	if err != nil {
		return catalog, err
	}
	catalog.Nightfarers = nightfarers
	if err := f.decode(MapsFile, &catalog.Maps); err != nil {
		return catalog, err
	}
	if err := f.decode(GenericFile, &catalog.Generic); err != nil {
		return catalog, err
	}
	return catalog, nil
}

// Nightfarers reads only the nightfarer pool. The checker uses it as
// reference data.
func (f *PoolFiles) Nightfarers() ([]model.Owner, error) {
	var owners []model.Owner
	if err := f.decode(NightfarersFile, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

func (f *PoolFiles) decode(name string, dst any) error {
	path := filepath.Join(f.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoData, path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
