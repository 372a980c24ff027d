// Package prefs keeps the persisted presentation preferences,
// currently just the light/dark theme flag.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/port"
)

// ThemeKey is the local storage key of the theme flag.
const ThemeKey = "hovixy-theme"

var _ port.ThemeStore = (*ThemeStore)(nil)

type ThemeStore struct {
	mu    sync.Mutex
	kv    port.KVStore
	theme domain.Theme
}

// NewThemeStore loads the persisted theme, defaulting to dark when
// the entry is absent or unreadable.
func NewThemeStore(kv port.KVStore) *ThemeStore {
	const op = "prefs.NewThemeStore"

	theme := domain.ThemeDark
	data, err := kv.Read(ThemeKey)
	switch {
	case err == nil:
		theme = domain.ParseTheme(string(data))
	case !errors.Is(err, fs.ErrNotExist):
		slog.Warn("failed to read theme, using default", "op", op, "err", err)
	}

	return &ThemeStore{kv: kv, theme: theme}
}

func (s *ThemeStore) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Toggle flips the theme and persists the new value. On a write
// failure the in-memory flag is left unchanged.
func (s *ThemeStore) Toggle() (domain.Theme, error) {
	const op = "prefs.ThemeStore.Toggle"

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.theme.Flip()
	if err := s.kv.Write(ThemeKey, []byte(next)); err != nil {
		return s.theme, fmt.Errorf("%s: %w", op, err)
	}
	s.theme = next
	return next, nil
}
