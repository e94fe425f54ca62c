package store

import (
	"encoding/json"
	"log/slog"

	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
	"github.com/HoneyDaddy04/Voice-OS/pkg/entry"
)

// Slot is one durable key-value cell holding the serialized collection.
type Slot interface {
	// Read returns the stored blob, or nil when nothing has been written yet.
	Read() ([]byte, error)
	Write(data []byte) error
}

// Store owns the in-memory collection of entries, most recent first. It is
// constructed once at startup and shared; all mutation happens on the single
// event loop, so no locking. Every mutation rewrites the whole slot.
type Store struct {
	slot    Slot
	log     *slog.Logger
	entries []*entry.Entry
}

// New loads the collection from the slot. An absent or unparsable blob is
// treated as an empty collection, never as a failure.
func New(slot Slot, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{slot: slot, log: log}
	s.entries = load(slot, log)
	return s
}

func load(slot Slot, log *slog.Logger) []*entry.Entry {
	if slot == nil {
		return []*entry.Entry{}
	}
	data, err := slot.Read()
	if err != nil || len(data) == 0 {
		if err != nil {
			log.Warn("store: read slot", "err", err)
		}
		return []*entry.Entry{}
	}
	var entries []*entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn("store: malformed slot data, starting empty", "err", err)
		return []*entry.Entry{}
	}
	out := entries[:0]
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Create allocates a fresh entry for the content, prepends it and persists.
func (s *Store) Create(c category.Category, content entry.Content) *entry.Entry {
	e := entry.New(c, content)
	s.entries = append([]*entry.Entry{e}, s.entries...)
	s.persist()
	return e
}

// Update replaces the entry with the matching id, preserving order. No-op
// when the id is unknown.
func (s *Store) Update(e *entry.Entry) bool {
	for i, existing := range s.entries {
		if existing.ID == e.ID {
			s.entries[i] = e
			s.persist()
			return true
		}
	}
	return false
}

// Delete removes the entry with the given id. No-op when absent.
func (s *Store) Delete(id string) bool {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Get returns the entry with the given id, or nil.
func (s *Store) Get(id string) *entry.Entry {
	for _, e := range s.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// List returns all entries, most recent first.
func (s *Store) List() []*entry.Entry {
	out := make([]*entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ListByCategory returns the entries with the given category in store order.
func (s *Store) ListByCategory(c category.Category) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Reload re-reads the slot, replacing the in-memory collection. Used when a
// watcher reports that another process rewrote the slot.
func (s *Store) Reload() {
	s.entries = load(s.slot, s.log)
}

// persist serializes the whole collection into the slot. Write failures are
// logged and swallowed; the in-memory state stays authoritative.
func (s *Store) persist() {
	if s.slot == nil {
		return
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		s.log.Error("store: marshal entries", "err", err)
		return
	}
	if err := s.slot.Write(data); err != nil {
		s.log.Error("store: write slot", "err", err)
	}
}
