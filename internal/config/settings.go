package config

import (
	"encoding/json"
	"fmt"
)

// Settings holds the uploader configuration persisted as plugin data
type Settings struct {
	Token string `json:"token"`
}

// DefaultSettings returns settings with an empty token
func DefaultSettings() Settings {
	return Settings{Token: ""}
}

// DataStore is the host key-value persistence for plugin data
type DataStore interface {
	LoadData() ([]byte, error)
	SaveData(data []byte) error
}

// Store loads and saves Settings through a DataStore
type Store struct {
	data DataStore
}

// NewStore creates a settings store backed by the given data store
func NewStore(data DataStore) *Store {
	return &Store{data: data}
}

// Load merges persisted data over the defaults.
// Missing or empty data yields the defaults.
func (s *Store) Load() (Settings, error) {
	settings := DefaultSettings()

	raw, err := s.data.LoadData()
	if err != nil {
		return settings, fmt.Errorf("load plugin data: %w", err)
	}
	if len(raw) == 0 {
		return settings, nil
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("decode plugin data: %w", err)
	}
	return settings, nil
}

// Save persists settings immediately
func (s *Store) Save(settings Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode plugin data: %w", err)
	}
	if err := s.data.SaveData(raw); err != nil {
		return fmt.Errorf("save plugin data: %w", err)
	}
	return nil
}
