package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/core/timekeeper"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// ErrUnsupportedFormat indicates a settings path with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported settings format")

type fileSettings struct {
	DefaultDurationMinutes int               `yaml:"default_duration_minutes" toml:"default_duration_minutes"`
	Language               string            `yaml:"language" toml:"language"`
	WindowWidth            float32           `yaml:"window_width" toml:"window_width"`
	WindowHeight           float32           `yaml:"window_height" toml:"window_height"`
	ShowTray               *bool             `yaml:"show_tray" toml:"show_tray"`
	Messages               map[string]string `yaml:"messages,omitempty" toml:"messages,omitempty"`
}

type format int

const (
	formatYAML format = iota
	formatTOML
)

// DefaultPath returns the settings file location under the user config directory.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads preferences from a YAML or TOML file.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()
	fileFormat, err := formatOf(path)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData fileSettings
	switch fileFormat {
	case formatTOML:
		if _, err := toml.Decode(string(rawData), &fileData); err != nil {
			return settings, fmt.Errorf("parse settings toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			return settings, fmt.Errorf("parse settings yaml: %w", err)
		}
	}

	applyFileSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes preferences to a YAML or TOML file, creating its directory.
func SaveSettings(path string, settings model.Settings) error {
	fileFormat, err := formatOf(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	showTray := settings.ShowTray
	fileData := fileSettings{
		DefaultDurationMinutes: settings.DefaultDurationMinutes,
		Language:               settings.Language,
		WindowWidth:            settings.WindowWidth,
		WindowHeight:           settings.WindowHeight,
		ShowTray:               &showTray,
		Messages:               settings.MessageOverrides,
	}

	var serialized []byte
	switch fileFormat {
	case formatTOML:
		var buffer bytes.Buffer
		if err := toml.NewEncoder(&buffer).Encode(fileData); err != nil {
			return fmt.Errorf("marshal settings toml: %w", err)
		}
		serialized = buffer.Bytes()
	default:
		serialized, err = yaml.Marshal(fileData)
		if err != nil {
			return fmt.Errorf("marshal settings yaml: %w", err)
		}
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func applyFileSettings(settings *model.Settings, fileData fileSettings) {
	if fileData.DefaultDurationMinutes > 0 {
		settings.DefaultDurationMinutes = fileData.DefaultDurationMinutes
	}
	if fileData.Language != "" {
		settings.Language = fileData.Language
	}
	if fileData.WindowWidth >= 320 && fileData.WindowHeight >= 320 {
		settings.WindowWidth = fileData.WindowWidth
		settings.WindowHeight = fileData.WindowHeight
	}
	if fileData.ShowTray != nil {
		settings.ShowTray = *fileData.ShowTray
	}

	overrides := make(map[string]string)
	for key, message := range fileData.Messages {
		if _, ok := timekeeper.ParsePhase(key); !ok || strings.TrimSpace(message) == "" {
			continue
		}
		overrides[key] = message
	}
	if len(overrides) > 0 {
		settings.MessageOverrides = overrides
	}
}
