package climatefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/weathergen/internal/calendar"
	"github.com/appengine-ltd/weathergen/internal/weather"
)

// PresetFile is the on-disk shape of a custom preset list. A bare JSON array
// of presets is accepted as well.
type PresetFile struct {
	Presets []weather.Preset `json:"presets"`
}

// LoadPresets reads and validates custom presets.
func LoadPresets(path string) ([]weather.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var presets []weather.Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		var file PresetFile
		if err2 := json.Unmarshal(data, &file); err2 != nil {
			return nil, fmt.Errorf("parse presets %s: %w", path, err2)
		}
		presets = file.Presets
	}
	if err := weather.ValidatePresets(presets); err != nil {
		return nil, fmt.Errorf("presets %s: %w", path, err)
	}
	return presets, nil
}

// LoadZone reads a zone and validates its preset references against catalog.
func LoadZone(path string, catalog *weather.Catalog) (weather.ZoneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return weather.ZoneConfig{}, err
	}
	var zone weather.ZoneConfig
	if err := json.Unmarshal(data, &zone); err != nil {
		return weather.ZoneConfig{}, fmt.Errorf("parse zone %s: %w", path, err)
	}
	if err := zone.Validate(catalog); err != nil {
		return weather.ZoneConfig{}, fmt.Errorf("zone %s: %w", path, err)
	}
	return zone, nil
}

func LoadCalendar(path string) (*calendar.Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cal calendar.Calendar
	if err := json.Unmarshal(data, &cal); err != nil {
		return nil, fmt.Errorf("parse calendar %s: %w", path, err)
	}
	if err := cal.Validate(); err != nil {
		return nil, fmt.Errorf("calendar %s: %w", path, err)
	}
	return &cal, nil
}

// WriteZone saves a zone as indented JSON, replacing path atomically.
func WriteZone(path string, zone weather.ZoneConfig) error {
	data, err := json.MarshalIndent(zone, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, append(data, '\n'))
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
