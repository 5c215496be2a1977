package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Mirror persists the ticket and user collections so the workspace can
// operate without a reachable server. Implementations must preserve
// record order.
type Mirror interface {
	LoadTickets() ([]Ticket, error)
	SaveTickets(tickets []Ticket) error
	LoadUsers() ([]User, error)
	SaveUsers(users []User) error
}

// FileMirror keeps the collections as JSON files in the state
// directory.
type FileMirror struct {
	dir string
}

// NewFileMirror creates a mirror writing tickets.json and users.json
// under dir.
func NewFileMirror(dir string) *FileMirror {
	return &FileMirror{dir: dir}
}

func (m *FileMirror) LoadTickets() ([]Ticket, error) {
	var tickets []Ticket
	if err := m.load("tickets.json", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (m *FileMirror) SaveTickets(tickets []Ticket) error {
	if tickets == nil {
		tickets = []Ticket{}
	}
	return m.save("tickets.json", tickets)
}

func (m *FileMirror) LoadUsers() ([]User, error) {
	var users []User
	if err := m.load("users.json", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *FileMirror) SaveUsers(users []User) error {
	if users == nil {
		users = []User{}
	}
	return m.save("users.json", users)
}

func (m *FileMirror) load(name string, target any) error {
	data, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			// A missing file is an empty collection.
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (m *FileMirror) save(name string, value any) error {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(m.dir, name), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// MemoryMirror keeps the collections in memory. Intended for tests.
type MemoryMirror struct {
	mu      sync.Mutex
	tickets []Ticket
	users   []User
}

func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{}
}

func (m *MemoryMirror) LoadTickets() ([]Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Ticket(nil), m.tickets...), nil
}

func (m *MemoryMirror) SaveTickets(tickets []Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets = append([]Ticket(nil), tickets...)
	return nil
}

func (m *MemoryMirror) LoadUsers() ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]User(nil), m.users...), nil
}

func (m *MemoryMirror) SaveUsers(users []User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append([]User(nil), users...)
	return nil
}
