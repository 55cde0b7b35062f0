package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tempodash/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

const dateLayout = "2006-01-02"

type yamlSettings struct {
	OverallStart     string `yaml:"overall_start"`
	OverallEnd       string `yaml:"overall_end"`
	Variable         string `yaml:"variable"`
	Granularity      string `yaml:"granularity"`
	FrameDelayMillis int    `yaml:"frame_delay_millis"`
}

// LoadSettings reads dashboard settings from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (Settings, error) {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return DefaultSettings(), err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings writes dashboard settings to YAML.
func SaveSettings(appName string, settings Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		OverallStart:     settings.OverallStart.UTC().Format(dateLayout),
		OverallEnd:       settings.OverallEnd.UTC().Format(dateLayout),
		Variable:         settings.Variable,
		Granularity:      string(settings.Granularity),
		FrameDelayMillis: int(settings.FrameDelay / time.Millisecond),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func loadSettingsFile(configPath string) (Settings, error) {
	settings := DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if start, err := time.ParseInLocation(dateLayout, fileData.OverallStart, time.UTC); err == nil {
		settings.OverallStart = start
	}
	if end, err := time.ParseInLocation(dateLayout, fileData.OverallEnd, time.UTC); err == nil {
		settings.OverallEnd = end
	}
	if settings.OverallEnd.Before(settings.OverallStart) {
		defaults := DefaultSettings()
		settings.OverallStart = defaults.OverallStart
		settings.OverallEnd = defaults.OverallEnd
	}

	if fileData.Variable != "" {
		settings.Variable = fileData.Variable
	}
	if granularity := model.Granularity(fileData.Granularity); granularity.Valid() {
		settings.Granularity = granularity
	}
	if fileData.FrameDelayMillis > 0 {
		settings.FrameDelay = time.Duration(fileData.FrameDelayMillis) * time.Millisecond
	}
}
