package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fixdesk/internal/shared/config"
	"fixdesk/internal/shared/id"
	"fixdesk/internal/shared/logger"
)

// ErrNotLoggedIn is returned by operations that require a session.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrTicketNotFound is returned when a ticket id is unknown to the
// workspace.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrEntryNotFound is returned when a history entry id is unknown.
var ErrEntryNotFound = errors.New("history entry not found")

// Workspace is the hybrid data layer: it keeps the ticket and user
// collections in memory, mirrors them to disk, and routes mutations to
// the server when online. When the server cannot be reached, mutations
// are applied to the local mirror instead and no error is surfaced; a
// 4xx response is the caller's problem and is returned as-is.
type Workspace struct {
	api          *APIClient
	mirror       Mirror
	sessions     SessionStore
	logger       logger.Interface
	loginTimeout time.Duration

	mu      sync.RWMutex
	session *Session
	tickets []Ticket
	users   []User
}

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*Workspace)

// WithMirror replaces the file-backed mirror.
func WithMirror(m Mirror) WorkspaceOption {
	return func(w *Workspace) { w.mirror = m }
}

// WithSessionStore replaces the file-backed session store.
func WithSessionStore(s SessionStore) WorkspaceOption {
	return func(w *Workspace) { w.sessions = s }
}

// WithAPIClient replaces the API client.
func WithAPIClient(c *APIClient) WorkspaceOption {
	return func(w *Workspace) { w.api = c }
}

// WithLogger replaces the default logger.
func WithLogger(l logger.Interface) WorkspaceOption {
	return func(w *Workspace) { w.logger = l }
}

// NewWorkspace creates a workspace from the client configuration.
func NewWorkspace(cfg *config.ClientConfig, opts ...WorkspaceOption) *Workspace {
	w := &Workspace{
		api:          NewAPIClient(cfg.APIBaseURL),
		mirror:       NewFileMirror(cfg.StateDir),
		sessions:     NewFileSessionStore(cfg.StateDir),
		logger:       logger.NewLogger(),
		loginTimeout: cfg.LoginTimeout(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Session returns a copy of the current session, or nil when logged
// out.
func (w *Workspace) Session() *Session {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.session == nil {
		return nil
	}
	copied := *w.session
	return &copied
}

// Tickets returns a copy of the in-memory ticket collection, newest
// first.
func (w *Workspace) Tickets() []Ticket {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Ticket(nil), w.tickets...)
}

// Users returns a copy of the in-memory user collection.
func (w *Workspace) Users() []User {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]User(nil), w.users...)
}

// Init loads the collections for the current session. Without a live
// session it restores the persisted one. Offline sessions load the
// mirror only and seed the demo users into an empty user mirror; online
// sessions fetch both collections from the server, adopting the mirror
// once if the server cannot be reached.
func (w *Workspace) Init(ctx context.Context) error {
	w.mu.Lock()
	if w.session == nil {
		session, err := w.sessions.Load()
		if err != nil {
			w.mu.Unlock()
			if errors.Is(err, ErrNoSession) {
				return ErrNotLoggedIn
			}
			return err
		}
		w.session = session
		if session.Token != "" {
			w.api.SetToken(session.Token)
		}
	}
	offline := w.session.IsOffline
	w.mu.Unlock()

	if offline {
		return w.loadFromMirror(true)
	}
	return w.Refresh(ctx)
}

// Refresh fetches the ticket and user collections from the server in
// parallel. A transport failure or server error adopts the mirror
// instead, once, without retrying; a 4xx response is returned to the
// caller.
func (w *Workspace) Refresh(ctx context.Context) error {
	if w.isOffline() {
		return w.loadFromMirror(true)
	}

	var (
		wg         sync.WaitGroup
		tickets    []Ticket
		users      []User
		ticketsErr error
		usersErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tickets, ticketsErr = w.api.ListTickets(ctx)
	}()
	go func() {
		defer wg.Done()
		users, usersErr = w.api.ListUsers(ctx)
	}()
	wg.Wait()

	if err := firstError(ticketsErr, usersErr); err != nil {
		if IsClientError(err) {
			return err
		}
		w.logger.Warnw("refresh failed, adopting local mirror", "error", err)
		return w.loadFromMirror(false)
	}

	w.mu.Lock()
	w.tickets = tickets
	w.users = users
	w.mu.Unlock()

	w.persistTickets()
	w.persistUsers()
	return nil
}

// CreateTicket creates a ticket. Online, the server's record (with its
// permanent public id) is adopted; offline or on server failure a
// record with a device-local id is prepended instead.
func (w *Workspace) CreateTicket(ctx context.Context, input CreateTicketInput) error {
	local := func() {
		now := time.Now().UTC()
		ticket := Ticket{
			ID:          localID(),
			Title:       input.Title,
			Description: input.Description,
			Type:        input.Type,
			Priority:    input.Priority,
			Status:      StatusActive,
			ReportedAt:  now,
			Creator:     w.sessionActor(),
			ImageData:   input.ImageData,
			History:     []HistoryEntry{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		w.mu.Lock()
		w.tickets = append([]Ticket{ticket}, w.tickets...)
		w.mu.Unlock()
	}

	remote := func() error {
		ticket, err := w.api.CreateTicket(ctx, input)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.tickets = append([]Ticket{*ticket}, w.tickets...)
		w.mu.Unlock()
		return nil
	}

	return w.runTicketMutation("create ticket", remote, local)
}

// UpdateTicket applies a partial update to a ticket.
func (w *Workspace) UpdateTicket(ctx context.Context, ticketID string, input UpdateTicketInput) error {
	local := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.tickets {
			if w.tickets[i].ID != ticketID {
				continue
			}
			applyTicketUpdate(&w.tickets[i], input)
			return
		}
	}

	remote := func() error {
		ticket, err := w.api.UpdateTicket(ctx, ticketID, input)
		if err != nil {
			return err
		}
		w.adoptTicket(*ticket)
		return nil
	}

	return w.runTicketMutation("update ticket", remote, local)
}

// ToggleTicketStatus flips a ticket between active and closed.
func (w *Workspace) ToggleTicketStatus(ctx context.Context, ticketID string) error {
	local := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.tickets {
			if w.tickets[i].ID != ticketID {
				continue
			}
			if w.tickets[i].Status == StatusActive {
				w.tickets[i].Status = StatusClosed
			} else {
				w.tickets[i].Status = StatusActive
			}
			w.tickets[i].UpdatedAt = time.Now().UTC()
			return
		}
	}

	remote := func() error {
		ticket, err := w.api.ToggleTicketStatus(ctx, ticketID)
		if err != nil {
			return err
		}
		w.adoptTicket(*ticket)
		return nil
	}

	return w.runTicketMutation("toggle ticket status", remote, local)
}

// DeleteTicket removes a ticket.
func (w *Workspace) DeleteTicket(ctx context.Context, ticketID string) error {
	local := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.tickets {
			if w.tickets[i].ID == ticketID {
				w.tickets = append(w.tickets[:i], w.tickets[i+1:]...)
				return
			}
		}
	}

	remote := func() error {
		if err := w.api.DeleteTicket(ctx, ticketID); err != nil {
			return err
		}
		local()
		return nil
	}

	return w.runTicketMutation("delete ticket", remote, local)
}

// AddHistoryEntry appends a note to a ticket.
func (w *Workspace) AddHistoryEntry(ctx context.Context, ticketID, description string) error {
	local := func() {
		now := time.Now().UTC()
		entry := HistoryEntry{
			ID:          localID(),
			TicketID:    ticketID,
			OccurredAt:  now,
			Description: description,
			Author:      w.sessionActor(),
			UpdatedAt:   now,
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.tickets {
			if w.tickets[i].ID == ticketID {
				w.tickets[i].History = append(w.tickets[i].History, entry)
				return
			}
		}
	}

	remote := func() error {
		entry, err := w.api.AddHistoryEntry(ctx, ticketID, description)
		if err != nil {
			return err
		}
		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.tickets {
			if w.tickets[i].ID == ticketID {
				w.tickets[i].History = append(w.tickets[i].History, *entry)
				return nil
			}
		}
		return nil
	}

	return w.runTicketMutation("add history entry", remote, local)
}

// UpdateHistoryEntry edits the description of a note. The note's id,
// timestamp, and author are never touched.
func (w *Workspace) UpdateHistoryEntry(ctx context.Context, ticketID, entryID, description string) error {
	local := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.tickets {
			if w.tickets[i].ID != ticketID {
				continue
			}
			for j := range w.tickets[i].History {
				if w.tickets[i].History[j].ID == entryID {
					w.tickets[i].History[j].Description = description
					w.tickets[i].History[j].UpdatedAt = time.Now().UTC()
					return
				}
			}
		}
	}

	remote := func() error {
		entry, err := w.api.UpdateHistoryEntry(ctx, ticketID, entryID, description)
		if err != nil {
			return err
		}
		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.tickets {
			if w.tickets[i].ID != ticketID {
				continue
			}
			for j := range w.tickets[i].History {
				if w.tickets[i].History[j].ID == entryID {
					w.tickets[i].History[j] = *entry
					return nil
				}
			}
		}
		return nil
	}

	return w.runTicketMutation("update history entry", remote, local)
}

// DeleteHistoryEntry removes a note from a ticket.
func (w *Workspace) DeleteHistoryEntry(ctx context.Context, ticketID, entryID string) error {
	local := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.tickets {
			if w.tickets[i].ID != ticketID {
				continue
			}
			history := w.tickets[i].History
			for j := range history {
				if history[j].ID == entryID {
					w.tickets[i].History = append(history[:j], history[j+1:]...)
					return
				}
			}
		}
	}

	remote := func() error {
		if err := w.api.DeleteHistoryEntry(ctx, ticketID, entryID); err != nil {
			return err
		}
		local()
		return nil
	}

	return w.runTicketMutation("delete history entry", remote, local)
}

// RegisterUser creates an account. Offline, the account only exists in
// the local mirror until a fresh registration against the server.
func (w *Workspace) RegisterUser(ctx context.Context, input RegisterUserInput) error {
	local := func() {
		user := User{
			ID:        localID(),
			Username:  input.Username,
			Role:      input.Role,
			CreatedAt: time.Now().UTC(),
		}

		w.mu.Lock()
		w.users = append(w.users, user)
		w.mu.Unlock()
	}

	remote := func() error {
		user, err := w.api.Register(ctx, input)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.users = append(w.users, *user)
		w.mu.Unlock()
		return nil
	}

	return w.runUserMutation("register user", remote, local)
}

// DeleteUser removes an account.
func (w *Workspace) DeleteUser(ctx context.Context, userID string) error {
	local := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i := range w.users {
			if w.users[i].ID == userID {
				w.users = append(w.users[:i], w.users[i+1:]...)
				return
			}
		}
	}

	remote := func() error {
		if err := w.api.DeleteUser(ctx, userID); err != nil {
			return err
		}
		local()
		return nil
	}

	return w.runUserMutation("delete user", remote, local)
}

// FindTicket returns a copy of the ticket with the given id.
func (w *Workspace) FindTicket(ticketID string) (*Ticket, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for i := range w.tickets {
		if w.tickets[i].ID == ticketID {
			copied := w.tickets[i]
			copied.History = append([]HistoryEntry(nil), w.tickets[i].History...)
			return &copied, nil
		}
	}
	return nil, ErrTicketNotFound
}

// runTicketMutation applies the hybrid mutation contract to the ticket
// collection.
func (w *Workspace) runTicketMutation(op string, remote func() error, local func()) error {
	if err := w.runMutation(op, remote, local); err != nil {
		return err
	}
	w.persistTickets()
	return nil
}

// runUserMutation applies the hybrid mutation contract to the user
// collection.
func (w *Workspace) runUserMutation(op string, remote func() error, local func()) error {
	if err := w.runMutation(op, remote, local); err != nil {
		return err
	}
	w.persistUsers()
	return nil
}

func (w *Workspace) runMutation(op string, remote func() error, local func()) error {
	if w.Session() == nil {
		return ErrNotLoggedIn
	}

	if w.isOffline() {
		local()
		return nil
	}

	err := remote()
	if err == nil {
		return nil
	}
	if IsClientError(err) {
		return err
	}

	w.logger.Warnw("remote call failed, applying local fallback", "op", op, "error", err)
	local()
	return nil
}

func (w *Workspace) isOffline() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.session != nil && w.session.IsOffline
}

func (w *Workspace) sessionActor() Actor {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.session == nil {
		return Actor{}
	}
	return Actor{
		ID:       w.session.User.ID,
		Username: w.session.User.Username,
		Role:     w.session.User.Role,
	}
}

// loadFromMirror replaces the in-memory collections with the mirrored
// ones. seedDemo seeds the demo users into an empty user mirror, which
// only makes sense for offline sessions.
func (w *Workspace) loadFromMirror(seedDemo bool) error {
	tickets, err := w.mirror.LoadTickets()
	if err != nil {
		return fmt.Errorf("load ticket mirror: %w", err)
	}
	users, err := w.mirror.LoadUsers()
	if err != nil {
		return fmt.Errorf("load user mirror: %w", err)
	}

	if seedDemo && len(users) == 0 {
		users = DemoUsers()
		if err := w.mirror.SaveUsers(users); err != nil {
			return fmt.Errorf("seed user mirror: %w", err)
		}
	}

	w.mu.Lock()
	w.tickets = tickets
	w.users = users
	w.mu.Unlock()
	return nil
}

func (w *Workspace) persistTickets() {
	if err := w.mirror.SaveTickets(w.Tickets()); err != nil {
		w.logger.Errorw("failed to persist ticket mirror", "error", err)
	}
}

func (w *Workspace) persistUsers() {
	if err := w.mirror.SaveUsers(w.Users()); err != nil {
		w.logger.Errorw("failed to persist user mirror", "error", err)
	}
}

func (w *Workspace) adoptTicket(ticket Ticket) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.tickets {
		if w.tickets[i].ID == ticket.ID {
			w.tickets[i] = ticket
			return
		}
	}
}

func applyTicketUpdate(t *Ticket, input UpdateTicketInput) {
	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Type != nil {
		t.Type = *input.Type
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.Status != nil {
		t.Status = *input.Status
	}
	if input.ImageData != nil {
		t.ImageData = *input.ImageData
	}
	t.UpdatedAt = time.Now().UTC()
}

// localID synthesizes a device-local identifier for records created
// without a reachable server. These are timestamp-derived and not
// guaranteed unique across devices.
func localID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s_%d_%s", id.LocalPrefix, time.Now().UnixMilli(), suffix)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
