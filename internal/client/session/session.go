// Package session holds the durable local session: the access token,
// optional refresh token, and the user identifier decoded from the token.
// The pair is written atomically; a file where only one half is present
// reads as "not authenticated". The login/logout flow is the sole writer,
// every service only reads.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vibelook/vibelook/internal/common"
	"github.com/vibelook/vibelook/internal/filex"
)

type state struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	UserID       string `json:"userId"`
}

// Session is the durable token/identity pair backed by a JSON file.
type Session struct {
	path string

	mu   sync.RWMutex
	data state
}

// Open loads the session stored at path. A missing or unreadable file is not
// an error; it simply yields an unauthenticated session.
func Open(path string) *Session {
	s := &Session{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var st state
	if err := json.Unmarshal(raw, &st); err != nil {
		// A corrupt session file degrades to "not authenticated" rather
		// than blocking startup.
		return s
	}
	s.data = st
	return s
}

// AccessToken returns the stored access token, or "".
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.AccessToken
}

// RefreshToken returns the stored refresh token, or "".
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.RefreshToken
}

// UserID returns the stored user identifier, or "".
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.UserID
}

// IsAuthenticated reports whether both the token and the user id are
// present. Partial state never counts as authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.AccessToken != "" && s.data.UserID != ""
}

// Save decodes the user id from accessToken and persists the pair as one
// atomic write. Nothing is stored, in memory or on disk, when the token
// carries no usable subject.
func (s *Session) Save(accessToken, refreshToken string) error {
	userID, err := UserIDFromToken(accessToken)
	if err != nil {
		return err
	}

	st := state{AccessToken: accessToken, RefreshToken: refreshToken, UserID: userID}
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := filex.WriteFileAtomic(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.data = st
	s.mu.Unlock()
	return nil
}

// Clear wipes the session from memory and disk.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.data = state{}
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// UserIDFromToken extracts the subject claim from a JWT access token without
// verifying the signature. The backend is the issuer and verifier; the
// client only needs the identity the token was minted for.
func UserIDFromToken(token string) (string, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrInvalidToken, err)
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", common.ErrInvalidToken
	}
	return sub, nil
}
