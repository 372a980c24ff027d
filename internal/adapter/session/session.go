// Package session keeps the current signed-in identity and caches it
// in local storage under a fixed key so it survives a restart.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/port"
)

// UserKey is the local storage key of the cached identity record.
const UserKey = "hovixy-user"

var _ port.SessionStore = (*Store)(nil)

type userRecord struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Admin  bool   `json:"isAdmin"`
}

type Store struct {
	mu   sync.Mutex
	kv   port.KVStore
	user domain.User
	ok   bool
}

func New(kv port.KVStore) *Store {
	return &Store{kv: kv}
}

// SignIn derives a mock identity from the email (the password is not
// validated) and persists it before mutating memory: a storage write
// failure reports an error and leaves the session untouched.
func (s *Store) SignIn(email, password string) (domain.User, error) {
	const op = "session.Store.SignIn"

	u := domain.NewMockUser(email)

	data, err := json.Marshal(toRecord(u))
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.kv.Write(UserKey, data); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.user, s.ok = u, true
	s.mu.Unlock()

	slog.Info("signed in", "op", op, "email", email, "name", u.Name)
	return u, nil
}

// SignOut clears the identity and removes the cached record.
func (s *Store) SignOut() error {
	const op = "session.Store.SignOut"

	s.mu.Lock()
	s.user, s.ok = domain.User{}, false
	s.mu.Unlock()

	if err := s.kv.Delete(UserKey); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slog.Info("signed out", "op", op)
	return nil
}

// Restore loads the cached identity at startup. Absent or corrupt
// data is logged and ignored, leaving the session empty.
func (s *Store) Restore() {
	const op = "session.Store.Restore"
	log := slog.With("op", op)

	data, err := s.kv.Read(UserKey)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("failed to read cached user", "err", err)
		}
		return
	}

	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Warn("corrupt cached user, ignoring", "err", err)
		return
	}

	s.mu.Lock()
	s.user, s.ok = fromRecord(rec), true
	s.mu.Unlock()

	log.Info("session restored", "email", rec.Email)
}

func (s *Store) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.ok
}

func toRecord(u domain.User) userRecord {
	return userRecord{
		ID:     u.UserID,
		Email:  u.Email,
		Name:   u.Name,
		Avatar: u.Avatar,
		Admin:  u.Admin,
	}
}

func fromRecord(rec userRecord) domain.User {
	return domain.User{
		UserID: rec.ID,
		Email:  rec.Email,
		Name:   rec.Name,
		Avatar: rec.Avatar,
		Admin:  rec.Admin,
	}
}
