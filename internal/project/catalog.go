// Package project handles the on-disk files surrounding the planning
// engine: the staff-maintained reference catalog, application config,
// and weekly production plan files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harvestbowl/cookplan/internal/model"
)

// DefaultConfigDir returns the default directory for application files.
// On all platforms this is ~/.cookplan/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cookplan")
}

// DefaultCatalogPath returns the default file path for the catalog file.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat *model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the built-in default catalog
// and saves it so staff have a file to edit.
func LoadCatalog(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return nil, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if cat.Recipes == nil {
		cat.Recipes = map[string]model.RecipeBaseBatch{}
	}
	return &cat, nil
}

// LoadOrCreateCatalog loads the catalog from the default path, creating
// it with the built-in data when missing.
func LoadOrCreateCatalog() (*model.Catalog, string, error) {
	path := DefaultCatalogPath()
	cat, err := LoadCatalog(path)
	return cat, path, err
}
