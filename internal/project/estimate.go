package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/BathQuote/internal/model"
)

// DefaultEstimatesDir returns the default directory for saved estimates.
func DefaultEstimatesDir() string {
	return filepath.Join(DefaultConfigDir(), "estimates")
}

// SaveEstimate writes the estimate to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveEstimate(path string, est *model.Estimate) error {
	if est == nil {
		return errors.New("nil estimate")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(est, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal estimate: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEstimate reads an estimate from the specified JSON file and
// normalizes it so every category has a usable section.
func LoadEstimate(path string) (*model.Estimate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read estimate file: %w", err)
	}
	var est model.Estimate
	if err := json.Unmarshal(data, &est); err != nil {
		return nil, fmt.Errorf("failed to parse estimate file: %w", err)
	}
	normalize(&est)
	return &est, nil
}

// normalize fills in sections and collections an older file may lack.
func normalize(est *model.Estimate) {
	for _, c := range model.AllCategories {
		sec := est.Section(c)
		if sec.Mode == "" {
			sec.Mode = model.ModeMetered
		}
		if sec.Labor == nil {
			sec.Labor = []model.LaborItem{}
		}
		if sec.Materials == nil {
			sec.Materials = []model.MaterialItem{}
		}
	}
}
