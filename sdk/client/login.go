package client

import (
	"context"
	"fmt"
	"time"

	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/id"
)

// demoAccount is a credential triple recognized without a server.
type demoAccount struct {
	Username string
	Password string
	Role     string
}

// The demo accounts mirror the fixtures a fresh server seeds, so a
// device that has never reached the server can still sign in.
var demoAccounts = []demoAccount{
	{Username: "admin", Password: "1234", Role: string(authorization.RoleAdmin)},
	{Username: "prod_lead", Password: "password", Role: string(authorization.RoleProduction)},
	{Username: "eng_chief", Password: "password", Role: string(authorization.RoleEngineering)},
}

// demoUserID builds a stable local identifier for a demo account, so
// offline sessions and the seeded user mirror agree on author ids.
func demoUserID(username string) string {
	return fmt.Sprintf("%s_demo_%s", id.LocalPrefix, username)
}

// DemoUsers returns the offline demo accounts as user records.
func DemoUsers() []User {
	now := time.Now().UTC()
	users := make([]User, 0, len(demoAccounts))
	for _, acc := range demoAccounts {
		users = append(users, User{
			ID:        demoUserID(acc.Username),
			Username:  acc.Username,
			Role:      acc.Role,
			CreatedAt: now,
		})
	}
	return users
}

func matchDemoAccount(username, password string) (User, bool) {
	for _, acc := range demoAccounts {
		if acc.Username == username && acc.Password == password {
			return User{
				ID:        demoUserID(acc.Username),
				Username:  acc.Username,
				Role:      acc.Role,
				CreatedAt: time.Now().UTC(),
			}, true
		}
	}
	return User{}, false
}

// Login authenticates the workspace. The remote call runs under the
// configured timeout; if the server cannot be reached in time the
// credentials are matched against the demo accounts and, on a match, an
// offline session is established. Returns false when neither path
// accepts the credentials.
//
// A 4xx response means the server was reached and rejected the
// credentials; the demo fallback does not apply.
func (w *Workspace) Login(ctx context.Context, username, password string) (bool, error) {
	loginCtx, cancel := context.WithTimeout(ctx, w.loginTimeout)
	defer cancel()

	result, err := w.api.Login(loginCtx, username, password)
	if err == nil {
		w.api.SetToken(result.Token)

		session := &Session{User: *result.User, Token: result.Token}
		if err := w.sessions.Save(session); err != nil {
			return false, fmt.Errorf("save session: %w", err)
		}

		w.mu.Lock()
		w.session = session
		w.mu.Unlock()

		if err := w.Refresh(ctx); err != nil {
			return false, fmt.Errorf("refresh after login: %w", err)
		}
		return true, nil
	}

	if IsClientError(err) {
		return false, nil
	}

	w.logger.Warnw("remote login failed, trying demo accounts", "error", err)

	demoUser, ok := matchDemoAccount(username, password)
	if !ok {
		return false, nil
	}

	session := &Session{User: demoUser, IsOffline: true}
	if err := w.sessions.Save(session); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}

	w.mu.Lock()
	w.session = session
	w.mu.Unlock()

	return true, nil
}

// Logout clears the session and the in-memory collections. The mirror
// is kept so the next offline login still sees local data.
func (w *Workspace) Logout() error {
	if err := w.sessions.Clear(); err != nil {
		return err
	}

	w.mu.Lock()
	w.session = nil
	w.tickets = nil
	w.users = nil
	w.mu.Unlock()

	w.api.SetToken("")
	return nil
}
