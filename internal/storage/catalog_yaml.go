package storage

import (
	"errors"
	"fmt"
	"os"

	"tempodash/internal/catalog"

	"gopkg.in/yaml.v3"
)

const catalogFileName = "catalog.yaml"

type yamlCatalog struct {
	DefaultVariable string `yaml:"default_variable"`
	Variables       []struct {
		Label     string `yaml:"label"`
		Unit      string `yaml:"unit"`
		Dimension string `yaml:"dimension"`
	} `yaml:"variables"`
	Layers []struct {
		ID            string  `yaml:"id"`
		Title         string  `yaml:"title"`
		URL           string  `yaml:"url"`
		Type          string  `yaml:"type"`
		VariableName  string  `yaml:"variable_name"`
		VariableLabel string  `yaml:"variable_label"`
		Opacity       float64 `yaml:"opacity"`
	} `yaml:"layers"`
}

// LoadCatalog reads a layer catalog override from the user config dir.
// If no override file exists, the built-in TEMPO catalog is returned.
func LoadCatalog(appName string) (*catalog.Catalog, error) {
	configPath, err := resolveConfigPath(appName, catalogFileName)
	if err != nil {
		return catalog.Default(), err
	}
	return loadCatalogFile(configPath)
}

func loadCatalogFile(configPath string) (*catalog.Catalog, error) {
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return catalog.Default(), nil
		}
		return catalog.Default(), fmt.Errorf("read catalog file: %w", err)
	}

	var fileData yamlCatalog
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return catalog.Default(), fmt.Errorf("parse catalog yaml: %w", err)
	}

	variables := make([]catalog.Variable, 0, len(fileData.Variables))
	for _, variable := range fileData.Variables {
		variables = append(variables, catalog.Variable{
			Label:     variable.Label,
			Unit:      variable.Unit,
			Dimension: variable.Dimension,
		})
	}

	layers := make([]catalog.Layer, 0, len(fileData.Layers))
	for _, layer := range fileData.Layers {
		opacity := layer.Opacity
		if opacity <= 0 || opacity > 1 {
			opacity = 1
		}
		layers = append(layers, catalog.Layer{
			ID:            layer.ID,
			Title:         layer.Title,
			URL:           layer.URL,
			Type:          layer.Type,
			VariableName:  layer.VariableName,
			VariableLabel: layer.VariableLabel,
			Opacity:       opacity,
		})
	}

	loaded, err := catalog.New(layers, variables, fileData.DefaultVariable)
	if err != nil {
		return catalog.Default(), fmt.Errorf("build catalog: %w", err)
	}
	return loaded, nil
}
