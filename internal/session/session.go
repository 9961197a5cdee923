// Package session is host-side state: tasks the user has saved between
// invocations and the counter used to hand out ids to new ones. The engine
// never sees this package; it only receives the records. The counter resets
// through Clear and nothing else.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
)

const (
	defaultDir  = ".task-analyzer"
	sessionFile = "session.json"
)

// Record is a saved task in the session store, using the same field names as
// the JSON batch format.
type Record struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	DueDate      string `json:"due_date,omitempty"`
	Importance   int    `json:"importance"`
	Hours        int    `json:"estimated_hours"`
	Dependencies []int  `json:"dependencies"`
}

// Raw converts the record into the engine's input form.
func (r Record) Raw() task.Raw {
	raw := task.Raw{
		ID:            r.ID,
		HasID:         true,
		Title:         r.Title,
		DueDate:       r.DueDate,
		Importance:    r.Importance,
		HasImportance: true,
		Hours:         r.Hours,
		HasHours:      true,
	}
	for _, dep := range r.Dependencies {
		raw.Deps = append(raw.Deps, task.DepEntry{Text: strconv.Itoa(dep), ID: dep, OK: true})
	}
	return raw
}

// Session is the persistent store backing the add/list/clear commands.
type Session struct {
	NextID int      `json:"next_id"`
	Tasks  []Record `json:"tasks"`

	mu   sync.Mutex
	path string
}

// Open loads the session from dir, creating an empty one if none exists.
// An empty dir uses the default location.
func Open(dir string) (*Session, error) {
	if dir == "" {
		dir = defaultDir
	}
	path := filepath.Join(dir, sessionFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Session{NextID: 1, path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	s := &Session{path: path}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if s.NextID < 1 {
		s.NextID = 1
	}
	return s, nil
}

// Add stores a record, assigning the next id when the record has none,
// and persists the session.
func (s *Session) Add(rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == 0 {
		rec.ID = s.NextID
		s.NextID++
	} else if rec.ID >= s.NextID {
		s.NextID = rec.ID + 1
	}

	s.Tasks = append(s.Tasks, rec)
	if err := s.save(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns the saved records in insertion order.
func (s *Session) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.Tasks))
	copy(out, s.Tasks)
	return out
}

// Batch returns the saved records converted for the engine.
func (s *Session) Batch() []task.Raw {
	s.mu.Lock()
	defer s.mu.Unlock()
	var batch []task.Raw
	for _, rec := range s.Tasks {
		batch = append(batch, rec.Raw())
	}
	return batch
}

// Clear drops all saved tasks and resets the id counter. This is the only
// way the counter goes backwards.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Tasks = nil
	s.NextID = 1
	return s.save()
}

func (s *Session) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return os.Rename(tmp, s.path)
}
