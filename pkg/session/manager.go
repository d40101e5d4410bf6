package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
	"github.com/maheenur13/laundry-lab-frontend/pkg/routeguard"
)

// ProfileFetcher re-fetches the caller's profile when the stored user
// disagrees with the token. *client.Client satisfies it.
type ProfileFetcher interface {
	GetProfile(ctx context.Context) (*laundry.User, error)
}

type tokenClaims struct {
	Phone string       `json:"phone"`
	Role  laundry.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager owns the persisted session. It restores state on startup,
// reconciles the stored user against the token's role claim and produces the
// snapshot the route guard consumes.
//
// Manager also implements client.TokenSource via Token.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	api     ProfileFetcher

	initializing bool
	token        string
	user         *laundry.User
	role         laundry.Role
	newUser      bool
	phoneNumber  string
}

func NewManager(storage Storage, api ProfileFetcher) *Manager {
	return &Manager{storage: storage, api: api, initializing: true}
}

// decodeRoleHint reads the token claims WITHOUT verifying the signature. The
// result is a routing hint only; the backend verifies for real on every
// request. Expired tokens are rejected here so a stale session clears itself.
func decodeRoleHint(tokenStr string) (*tokenClaims, bool) {
	claims := &tokenClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims)
	if err != nil {
		return nil, false
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, false
	}
	if !laundry.ValidRole(claims.Role) {
		return nil, false
	}
	return claims, true
}

// Initialize restores the session from storage. An unreadable or expired
// token clears everything; a stored user whose role disagrees with the token
// is corrected, the token being authoritative: the profile is re-fetched when
// a fetcher is available, otherwise the stored role is overwritten in place.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.initializing = false }()

	tokenStr, err := m.storage.Get(KeyAuthToken)
	if err != nil {
		return nil // no session
	}

	claims, ok := decodeRoleHint(tokenStr)
	if !ok {
		return m.storage.ClearAll()
	}

	m.token = tokenStr
	m.role = claims.Role
	m.phoneNumber = claims.Phone

	if raw, err := m.storage.Get(KeyUserData); err == nil {
		var u laundry.User
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			m.user = &u
		}
	}

	if m.user != nil && m.user.Role != claims.Role {
		if m.api != nil {
			if fresh, err := m.api.GetProfile(ctx); err == nil {
				m.user = fresh
			} else {
				m.user.Role = claims.Role
			}
		} else {
			m.user.Role = claims.Role
		}
		m.persistUserLocked()
	}

	if m.user != nil {
		m.newUser = !m.user.IsVerified
	}
	return nil
}

func (m *Manager) persistUserLocked() {
	if m.user == nil {
		return
	}
	if raw, err := json.Marshal(m.user); err == nil {
		_ = m.storage.Set(KeyUserData, string(raw))
	}
}

// SetAuth stores a fresh token and user after login or signup completion.
func (m *Manager) SetAuth(token string, u *laundry.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.Set(KeyAuthToken, token); err != nil {
		return err
	}

	m.token = token
	m.user = u
	if u != nil {
		m.role = u.Role
		m.newUser = !u.IsVerified
		m.persistUserLocked()
	}
	return nil
}

// SetUser replaces the stored user, e.g. after a profile update.
func (m *Manager) SetUser(u *laundry.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = u
	if u != nil {
		m.role = u.Role
		m.newUser = !u.IsVerified
	}
	m.persistUserLocked()
}

// SetNewUser flags the session as mid-signup.
func (m *Manager) SetNewUser(isNew bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.newUser = isNew
}

// SetPhoneNumber remembers the phone being verified; it is not persisted.
func (m *Manager) SetPhoneNumber(phone string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phoneNumber = phone
}

// Logout wipes storage and resets the in-memory session.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.user = nil
	m.role = ""
	m.newUser = false
	m.phoneNumber = ""
	return m.storage.ClearAll()
}

// Token returns the current access token; it satisfies client.TokenSource.
func (m *Manager) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

// User returns the current user, nil when unauthenticated or not yet loaded.
func (m *Manager) User() *laundry.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// PhoneNumber returns the phone captured during the OTP flow.
func (m *Manager) PhoneNumber() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phoneNumber
}

// State produces the snapshot the route guard consumes.
func (m *Manager) State() routeguard.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return routeguard.State{
		Initializing:  m.initializing,
		Authenticated: m.token != "",
		NewUser:       m.newUser,
		Role:          m.role,
	}
}
