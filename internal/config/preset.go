package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nightreign-bingo/internal/model"
)

// Preset is a saved selection used instead of the interactive prompts.
type Preset struct {
	Boss       string      `yaml:"boss"`
	Nightfarer string      `yaml:"nightfarer"`
	Map        string      `yaml:"map"`
	Quota      PresetQuota `yaml:"quota"`
}

// PresetQuota mirrors model.Quota in YAML form.
type PresetQuota struct {
	Mode     string         `yaml:"mode"`
	Minimum  int            `yaml:"minimum,omitempty"`
	Minimums map[string]int `yaml:"minimums,omitempty"`
}

// LoadPreset reads a preset from a YAML file.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("decode preset %s: %w", path, err)
	}
	if strings.TrimSpace(p.Boss) == "" || strings.TrimSpace(p.Nightfarer) == "" || strings.TrimSpace(p.Map) == "" {
		return Preset{}, fmt.Errorf("preset %s: boss, nightfarer and map are required", path)
	}
	return p, nil
}

// Save writes the preset as YAML.
func (p Preset) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}

// ModelQuota converts the YAML quota. An empty mode means uniform.
func (q PresetQuota) ModelQuota() (model.Quota, error) {
	switch model.QuotaMode(strings.TrimSpace(q.Mode)) {
	case "", model.QuotaUniform:
		return model.UniformQuota(q.Minimum), nil
	case model.QuotaPerCategory:
		mins := make(map[string]int, len(q.Minimums))
		for k, v := range q.Minimums {
			mins[k] = v
		}
		return model.PerCategoryQuota(mins), nil
	default:
		return model.Quota{}, fmt.Errorf("unknown quota mode %q", q.Mode)
	}
}

// PresetFromSelection captures a selection so it can be replayed.
func PresetFromSelection(sel model.Selection) Preset {
	p := Preset{
		Boss:       sel.Boss.Name,
		Nightfarer: sel.Nightfarer.Name,
		Map:        sel.Map.Name,
		Quota:      PresetQuota{Mode: string(sel.Quota.Mode)},
	}
	if sel.Quota.Mode == model.QuotaUniform {
		p.Quota.Minimum = sel.Quota.Minimum
	} else {
		p.Quota.Minimums = sel.Quota.Minimums
	}
	return p
}
