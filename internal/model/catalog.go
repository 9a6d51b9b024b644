package model

import "time"

// Pool names used by data files and the catalog database.
const (
	PoolBosses      = "bosses"
	PoolNightfarers = "nightfarers"
	PoolMaps        = "maps"
	PoolGeneric     = "generic"
)

// Catalog holds every pool a board can be sampled from.
type Catalog struct {
	Bosses      []Task
	Nightfarers []Owner
	Maps        []Owner
	Generic     []Task
}

// CatalogEntry stores one pool record in the catalog database.
type CatalogEntry struct {
	ID         uint   `gorm:"primaryKey"`
	Pool       string `gorm:"index:idx_pool_position,unique"`
	Position   int    `gorm:"index:idx_pool_position,unique"`
	Name       string `gorm:"not null"`
	Category   string
	Categories []string `gorm:"serializer:json"`
	Center     int      `gorm:"default:0"`
	Tasks      []string `gorm:"serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Task converts a boss or generic entry back to a task.
func (e CatalogEntry) Task() Task {
	return Task{
		Name:       e.Name,
		Category:   e.Category,
		Categories: e.Categories,
		Center:     e.Center,
	}
}

// Owner converts a nightfarer or map entry back to an owner.
func (e CatalogEntry) Owner() Owner {
	return Owner{Name: e.Name, Tasks: e.Tasks}
}
