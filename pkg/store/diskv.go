package store

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// slotKey is the fixed key the whole collection is stored under.
const slotKey = "entries"

// Load creates the durable Slot backed by diskv using the provided config.
func Load(cfg Config) (Slot, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &diskvSlot{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

type diskvSlot struct {
	d        *diskv.Diskv
	basePath string
}

func (s *diskvSlot) Read() ([]byte, error) {
	data, err := s.d.Read(slotKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (s *diskvSlot) Write(data []byte) error {
	return s.d.Write(slotKey, data)
}

// SlotPath returns the file path backing the slot, for change watching.
func (s *diskvSlot) SlotPath() string {
	return filepath.Join(s.basePath, slotKey)
}
