package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=settings.go -destination=mock_settings.go -package=settings

type Settings struct {
	MinimizeToTray bool `json:"minimize_to_tray"`
	MinimalUI      bool `json:"minimal_ui"`
}

func Defaults() Settings {
	return Settings{
		MinimizeToTray: true,
		MinimalUI:      false,
	}
}

type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

type fileStore struct {
	path string
}

func NewFileStore(path string) Store {
	return fileStore{path: path}
}

// DefaultPath is %APPDATA%\DecimalConverter\settings.json on windows,
// falling back to the home directory everywhere else
func DefaultPath() string {
	base := os.Getenv("APPDATA")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = home
	}
	return filepath.Join(base, "DecimalConverter", "settings.json")
}

// Load starts from the defaults, so a file that only has one of
// the keys keeps the default for the other
func (f fileStore) Load() (Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(f.path)
	if err != nil {
		return s, fmt.Errorf("could not open %s: %w", f.path, err)
	}
	err = json.Unmarshal(data, &s)
	if err != nil {
		return Defaults(), fmt.Errorf("could not parse %s: %w", f.path, err)
	}
	return s, nil
}

func (f fileStore) Save(s Settings) error {
	err := os.MkdirAll(filepath.Dir(f.path), 0o755)
	if err != nil {
		return fmt.Errorf("could not create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	err = os.WriteFile(f.path, data, 0o644)
	if err != nil {
		return fmt.Errorf("could not write %s: %w", f.path, err)
	}
	return nil
}
