package service

import (
	"errors"
	"fmt"
	"strings"

	"nightreign-bingo/internal/config"
	"nightreign-bingo/internal/model"
)

// ErrUnknownChoice is returned when a preset names something not in the catalog.
var ErrUnknownChoice = errors.New("unknown choice")

// ResolvePreset looks up the preset's choices in the catalog. Names match
// case-insensitively; a boss also matches on a substring so "Gladius" finds
// "Defeat Gladius, Beast of Night".
func ResolvePreset(catalog model.Catalog, p config.Preset) (model.Selection, error) {
	var sel model.Selection

	boss, ok := findBoss(catalog.Bosses, p.Boss)
	if !ok {
		return sel, fmt.Errorf("%w: boss %q", ErrUnknownChoice, p.Boss)
	}
	nightfarer, ok := findOwner(catalog.Nightfarers, p.Nightfarer)
	if !ok {
		return sel, fmt.Errorf("%w: nightfarer %q", ErrUnknownChoice, p.Nightfarer)
	}
	m, ok := findOwner(catalog.Maps, p.Map)
	if !ok {
		return sel, fmt.Errorf("%w: map %q", ErrUnknownChoice, p.Map)
	}
	quota, err := p.Quota.ModelQuota()
	if err != nil {
		return sel, fmt.Errorf("%w: %v", ErrInvalidQuota, err)
	}

	sel = model.Selection{Boss: boss, Nightfarer: nightfarer, Map: m, Quota: quota}
	pool := BuildPool(sel, catalog.Generic)
	if err := quota.Validate(pool.Categories); err != nil {
		return model.Selection{}, fmt.Errorf("%w: %v", ErrInvalidQuota, err)
	}
	return sel, nil
}

func findBoss(bosses []model.Task, name string) (model.Task, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return model.Task{}, false
	}
	for _, b := range bosses {
		if strings.ToLower(b.Name) == name {
			return b, true
		}
	}
	for _, b := range bosses {
		if strings.Contains(strings.ToLower(b.Name), name) {
			return b, true
		}
	}
	return model.Task{}, false
}

func findOwner(owners []model.Owner, name string) (model.Owner, bool) {
	name = strings.TrimSpace(name)
	for _, o := range owners {
		if strings.EqualFold(o.Name, name) {
			return o, true
		}
	}
	return model.Owner{}, false
}
