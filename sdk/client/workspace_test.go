package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/shared/config"
	"fixdesk/internal/shared/id"
)

// unreachableURL points at a port nothing listens on, so every request
// fails at the transport layer.
const unreachableURL = "http://127.0.0.1:1/api/v1"

func newTestWorkspace(t *testing.T, baseURL string) (*Workspace, *MemoryMirror, *MemorySessionStore) {
	t.Helper()

	mirror := NewMemoryMirror()
	sessions := NewMemorySessionStore()

	cfg := &config.ClientConfig{
		APIBaseURL:     baseURL,
		LoginTimeoutMS: 500,
		StateDir:       t.TempDir(),
	}

	w := NewWorkspace(cfg, WithMirror(mirror), WithSessionStore(sessions))
	return w, mirror, sessions
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"type": errType, "message": message},
	})
}

func loginOffline(t *testing.T, w *Workspace) {
	t.Helper()
	ok, err := w.Login(context.Background(), "admin", "1234")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, w.Init(context.Background()))
}

// =====================================================================
// Login
// =====================================================================

func TestWorkspace_Login_OfflineDemoAccount(t *testing.T) {
	w, _, sessions := newTestWorkspace(t, unreachableURL)

	ok, err := w.Login(context.Background(), "admin", "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	session := w.Session()
	require.NotNil(t, session)
	assert.True(t, session.IsOffline)
	assert.Equal(t, "admin", session.User.Username)
	assert.Equal(t, "admin", session.User.Role)
	assert.Empty(t, session.Token)

	saved, err := sessions.Load()
	require.NoError(t, err)
	assert.True(t, saved.IsOffline)
}

func TestWorkspace_Login_OfflineUnknownCredentials(t *testing.T) {
	w, _, _ := newTestWorkspace(t, unreachableURL)

	ok, err := w.Login(context.Background(), "admin", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, w.Session())
}

func TestWorkspace_Login_RejectedByServerSkipsDemoFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(rw http.ResponseWriter, r *http.Request) {
		writeError(rw, http.StatusUnauthorized, "UNAUTHORIZED", "invalid username or password")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w, _, _ := newTestWorkspace(t, srv.URL)

	// admin/1234 is a demo triple, but the server explicitly rejected it
	ok, err := w.Login(context.Background(), "admin", "1234")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, w.Session())
}

func TestWorkspace_Login_OnlineFetchesCollections(t *testing.T) {
	tickets := sampleTickets()
	users := []User{{ID: "usr_abc123", Username: "prod_lead", Role: "production"}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, LoginResult{
			Token: "signed.jwt.token",
			User:  &users[0],
		})
	})
	mux.HandleFunc("GET /tickets", func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer signed.jwt.token", r.Header.Get("Authorization"))
		writeEnvelope(rw, http.StatusOK, tickets)
	})
	mux.HandleFunc("GET /users", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, users)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w, mirror, _ := newTestWorkspace(t, srv.URL)

	ok, err := w.Login(context.Background(), "prod_lead", "password")
	require.NoError(t, err)
	assert.True(t, ok)

	session := w.Session()
	require.NotNil(t, session)
	assert.False(t, session.IsOffline)
	assert.Equal(t, "signed.jwt.token", session.Token)

	assert.Len(t, w.Tickets(), 2)
	assert.Len(t, w.Users(), 1)

	// collections were mirrored
	mirrored, err := mirror.LoadTickets()
	require.NoError(t, err)
	assert.Len(t, mirrored, 2)
}

// =====================================================================
// Init / Refresh
// =====================================================================

func TestWorkspace_Init_WithoutSession(t *testing.T) {
	w, _, _ := newTestWorkspace(t, unreachableURL)

	err := w.Init(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestWorkspace_Init_OfflineSeedsDemoUsers(t *testing.T) {
	w, mirror, _ := newTestWorkspace(t, unreachableURL)
	loginOffline(t, w)

	users := w.Users()
	require.Len(t, users, 3)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "prod_lead", users[1].Username)
	assert.Equal(t, "eng_chief", users[2].Username)

	mirrored, err := mirror.LoadUsers()
	require.NoError(t, err)
	assert.Len(t, mirrored, 3)
}

func TestWorkspace_Init_OfflineKeepsExistingMirror(t *testing.T) {
	w, mirror, _ := newTestWorkspace(t, unreachableURL)
	require.NoError(t, mirror.SaveUsers([]User{{ID: "usr_kept", Username: "kept", Role: "production"}}))
	require.NoError(t, mirror.SaveTickets(sampleTickets()))

	loginOffline(t, w)

	users := w.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "kept", users[0].Username)
	assert.Len(t, w.Tickets(), 2)
}

func TestWorkspace_Refresh_AdoptsMirrorOnTransportFailure(t *testing.T) {
	w, mirror, sessions := newTestWorkspace(t, unreachableURL)
	require.NoError(t, mirror.SaveTickets(sampleTickets()))
	require.NoError(t, sessions.Save(&Session{
		User:  User{ID: "usr_abc123", Username: "prod_lead", Role: "production"},
		Token: "stale.jwt.token",
	}))

	require.NoError(t, w.Init(context.Background()))

	tickets := w.Tickets()
	require.Len(t, tickets, 2)
	assert.Equal(t, "tk_newest000001", tickets[0].ID)
}

func TestWorkspace_Refresh_ClientErrorIsReturned(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tickets", func(rw http.ResponseWriter, r *http.Request) {
		writeError(rw, http.StatusUnauthorized, "UNAUTHORIZED", "token expired")
	})
	mux.HandleFunc("GET /users", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, []User{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w, _, sessions := newTestWorkspace(t, srv.URL)
	require.NoError(t, sessions.Save(&Session{
		User:  User{ID: "usr_abc123", Username: "prod_lead", Role: "production"},
		Token: "expired.jwt.token",
	}))

	err := w.Init(context.Background())
	require.Error(t, err)
	assert.True(t, IsClientError(err))
}

// =====================================================================
// Offline mutations
// =====================================================================

func TestWorkspace_CreateTicket_OfflineNewestFirst(t *testing.T) {
	w, mirror, _ := newTestWorkspace(t, unreachableURL)
	loginOffline(t, w)

	require.NoError(t, w.CreateTicket(context.Background(), CreateTicketInput{
		Title: "First", Description: "first ticket", Type: TypeRepair, Priority: "low",
	}))
	require.NoError(t, w.CreateTicket(context.Background(), CreateTicketInput{
		Title: "Second", Description: "second ticket", Type: TypeRepair, Priority: "high",
	}))

	tickets := w.Tickets()
	require.Len(t, tickets, 2)
	assert.Equal(t, "Second", tickets[0].Title)
	assert.Equal(t, "First", tickets[1].Title)

	for _, ticket := range tickets {
		assert.True(t, id.IsLocal(ticket.ID))
		assert.Equal(t, StatusActive, ticket.Status)
		assert.Equal(t, "admin", ticket.Creator.Username)
	}

	mirrored, err := mirror.LoadTickets()
	require.NoError(t, err)
	assert.Equal(t, tickets, mirrored)
}

func TestWorkspace_ToggleTicketStatus_TwiceRestoresOriginal(t *testing.T) {
	w, _, _ := newTestWorkspace(t, unreachableURL)
	loginOffline(t, w)

	require.NoError(t, w.CreateTicket(context.Background(), CreateTicketInput{
		Title: "Toggle me", Description: "d", Type: TypeRepair, Priority: "medium",
	}))
	ticketID := w.Tickets()[0].ID

	require.NoError(t, w.ToggleTicketStatus(context.Background(), ticketID))
	assert.Equal(t, StatusClosed, w.Tickets()[0].Status)

	require.NoError(t, w.ToggleTicketStatus(context.Background(), ticketID))
	assert.Equal(t, StatusActive, w.Tickets()[0].Status)
}

func TestWorkspace_History_OfflineOrderAndEdit(t *testing.T) {
	w, _, _ := newTestWorkspace(t, unreachableURL)
	loginOffline(t, w)

	require.NoError(t, w.CreateTicket(context.Background(), CreateTicketInput{
		Title: "Noisy bearing", Description: "d", Type: TypeRepair, Priority: "medium",
	}))
	ticketID := w.Tickets()[0].ID

	require.NoError(t, w.AddHistoryEntry(context.Background(), ticketID, "first note"))
	require.NoError(t, w.AddHistoryEntry(context.Background(), ticketID, "second note"))

	ticket, err := w.FindTicket(ticketID)
	require.NoError(t, err)
	require.Len(t, ticket.History, 2)
	assert.Equal(t, "first note", ticket.History[0].Description)
	assert.Equal(t, "second note", ticket.History[1].Description)

	original := ticket.History[0]
	require.NoError(t, w.UpdateHistoryEntry(context.Background(), ticketID, original.ID, "amended note"))

	ticket, err = w.FindTicket(ticketID)
	require.NoError(t, err)
	edited := ticket.History[0]
	assert.Equal(t, "amended note", edited.Description)
	assert.Equal(t, original.ID, edited.ID)
	assert.Equal(t, original.OccurredAt, edited.OccurredAt)
	assert.Equal(t, original.Author, edited.Author)

	require.NoError(t, w.DeleteHistoryEntry(context.Background(), ticketID, original.ID))
	ticket, err = w.FindTicket(ticketID)
	require.NoError(t, err)
	require.Len(t, ticket.History, 1)
	assert.Equal(t, "second note", ticket.History[0].Description)
}

func TestWorkspace_DeleteTicket_Offline(t *testing.T) {
	w, mirror, _ := newTestWorkspace(t, unreachableURL)
	loginOffline(t, w)

	require.NoError(t, w.CreateTicket(context.Background(), CreateTicketInput{
		Title: "Doomed", Description: "d", Type: TypeRepair, Priority: "low",
	}))
	ticketID := w.Tickets()[0].ID

	require.NoError(t, w.DeleteTicket(context.Background(), ticketID))
	assert.Empty(t, w.Tickets())

	mirrored, err := mirror.LoadTickets()
	require.NoError(t, err)
	assert.Empty(t, mirrored)
}

func TestWorkspace_RegisterAndDeleteUser_Offline(t *testing.T) {
	w, _, _ := newTestWorkspace(t, unreachableURL)
	loginOffline(t, w)

	require.NoError(t, w.RegisterUser(context.Background(), RegisterUserInput{
		Username: "new_tech", Password: "password", Role: "engineering",
	}))

	users := w.Users()
	require.Len(t, users, 4)
	added := users[3]
	assert.Equal(t, "new_tech", added.Username)
	assert.True(t, id.IsLocal(added.ID))

	require.NoError(t, w.DeleteUser(context.Background(), added.ID))
	assert.Len(t, w.Users(), 3)
}

// =====================================================================
// Online mutations
// =====================================================================

func onlineSession() *Session {
	return &Session{
		User:  User{ID: "usr_abc123", Username: "prod_lead", Role: "production"},
		Token: "signed.jwt.token",
	}
}

func TestWorkspace_CreateTicket_OnlineAdoptsServerRecord(t *testing.T) {
	serverTicket := sampleTickets()[0]

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tickets", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, []Ticket{})
	})
	mux.HandleFunc("GET /users", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, []User{})
	})
	mux.HandleFunc("POST /tickets", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusCreated, serverTicket)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w, _, sessions := newTestWorkspace(t, srv.URL)
	require.NoError(t, sessions.Save(onlineSession()))
	require.NoError(t, w.Init(context.Background()))

	require.NoError(t, w.CreateTicket(context.Background(), CreateTicketInput{
		Title: serverTicket.Title, Description: serverTicket.Description,
		Type: serverTicket.Type, Priority: serverTicket.Priority,
	}))

	tickets := w.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "tk_newest000001", tickets[0].ID)
	assert.False(t, id.IsLocal(tickets[0].ID))
}

func TestWorkspace_CreateTicket_ServerErrorFallsBackLocally(t *testing.T) {
	var sawDown bool

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tickets", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, []Ticket{})
	})
	mux.HandleFunc("GET /users", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, []User{})
	})
	mux.HandleFunc("POST /tickets", func(rw http.ResponseWriter, r *http.Request) {
		sawDown = true
		writeError(rw, http.StatusInternalServerError, "INTERNAL_ERROR", "database gone")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w, mirror, sessions := newTestWorkspace(t, srv.URL)
	require.NoError(t, sessions.Save(onlineSession()))
	require.NoError(t, w.Init(context.Background()))

	err := w.CreateTicket(context.Background(), CreateTicketInput{
		Title: "Fallback", Description: "d", Type: TypeRepair, Priority: "high",
	})
	require.NoError(t, err)
	assert.True(t, sawDown)

	tickets := w.Tickets()
	require.Len(t, tickets, 1)
	assert.True(t, id.IsLocal(tickets[0].ID))
	assert.Equal(t, StatusActive, tickets[0].Status)
	assert.Equal(t, "prod_lead", tickets[0].Creator.Username)

	mirrored, err := mirror.LoadTickets()
	require.NoError(t, err)
	assert.Equal(t, tickets, mirrored)
}

func TestWorkspace_DeleteTicket_ClientErrorNoFallback(t *testing.T) {
	tickets := sampleTickets()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tickets", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, tickets)
	})
	mux.HandleFunc("GET /users", func(rw http.ResponseWriter, r *http.Request) {
		writeEnvelope(rw, http.StatusOK, []User{})
	})
	mux.HandleFunc("DELETE /tickets/{id}", func(rw http.ResponseWriter, r *http.Request) {
		writeError(rw, http.StatusForbidden, "FORBIDDEN", "only the ticket creator or an administrator may delete a ticket")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w, _, sessions := newTestWorkspace(t, srv.URL)
	require.NoError(t, sessions.Save(onlineSession()))
	require.NoError(t, w.Init(context.Background()))

	err := w.DeleteTicket(context.Background(), "tk_newest000001")
	require.Error(t, err)
	assert.True(t, IsClientError(err))

	// the rejected delete must not fall back to a local delete
	assert.Len(t, w.Tickets(), 2)
}

func TestWorkspace_MutationWithoutSession(t *testing.T) {
	w, _, _ := newTestWorkspace(t, unreachableURL)

	err := w.CreateTicket(context.Background(), CreateTicketInput{Title: "x"})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// =====================================================================
// Fallback equivalence: an unreachable server and an offline session
// produce the same local mutation.
// =====================================================================

func TestWorkspace_FallbackEquivalence(t *testing.T) {
	input := CreateTicketInput{
		Title: "Same either way", Description: "d", Type: TypeRepair, Priority: "medium",
	}

	offline, _, _ := newTestWorkspace(t, unreachableURL)
	loginOffline(t, offline)
	require.NoError(t, offline.CreateTicket(context.Background(), input))

	fallback, _, sessions := newTestWorkspace(t, unreachableURL)
	require.NoError(t, sessions.Save(&Session{
		User:  User{ID: demoUserID("admin"), Username: "admin", Role: "admin"},
		Token: "stale.jwt.token",
	}))
	require.NoError(t, fallback.Init(context.Background()))
	require.NoError(t, fallback.CreateTicket(context.Background(), input))

	offlineTicket := offline.Tickets()[0]
	fallbackTicket := fallback.Tickets()[0]

	assert.True(t, id.IsLocal(offlineTicket.ID))
	assert.True(t, id.IsLocal(fallbackTicket.ID))
	assert.Equal(t, offlineTicket.Title, fallbackTicket.Title)
	assert.Equal(t, offlineTicket.Status, fallbackTicket.Status)
	assert.Equal(t, offlineTicket.Creator, fallbackTicket.Creator)
}

// =====================================================================
// Logout
// =====================================================================

func TestWorkspace_Logout_KeepsMirror(t *testing.T) {
	w, mirror, sessions := newTestWorkspace(t, unreachableURL)
	loginOffline(t, w)

	require.NoError(t, w.CreateTicket(context.Background(), CreateTicketInput{
		Title: "Survives logout", Description: "d", Type: TypeRepair, Priority: "low",
	}))

	require.NoError(t, w.Logout())
	assert.Nil(t, w.Session())
	assert.Empty(t, w.Tickets())

	_, err := sessions.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	mirrored, err := mirror.LoadTickets()
	require.NoError(t, err)
	require.Len(t, mirrored, 1)
	assert.Equal(t, "Survives logout", mirrored[0].Title)
}
