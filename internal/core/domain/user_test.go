package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hovixy/storefront/internal/core/domain"
)

func TestNewMockUser(t *testing.T) {
	t.Run("NameFromLocalPart", func(t *testing.T) {
		u := domain.NewMockUser("alex@example.com")

		assert.Equal(t, "alex", u.Name)
		assert.Equal(t, "alex@example.com", u.Email)
		assert.NotEmpty(t, u.UserID)
		assert.NotEmpty(t, u.Avatar)
		assert.False(t, u.Admin)
	})

	t.Run("EmptyLocalPartFallsBack", func(t *testing.T) {
		u := domain.NewMockUser("@example.com")
		assert.Equal(t, "User", u.Name)
	})

	t.Run("NoAtSignUsesWholeEmail", func(t *testing.T) {
		u := domain.NewMockUser("alex")
		assert.Equal(t, "alex", u.Name)
	})
}

func TestTheme(t *testing.T) {
	t.Run("ParseFallsBackToDark", func(t *testing.T) {
		assert.Equal(t, domain.ThemeLight, domain.ParseTheme("light"))
		assert.Equal(t, domain.ThemeDark, domain.ParseTheme("dark"))
		assert.Equal(t, domain.ThemeDark, domain.ParseTheme("solarized"))
		assert.Equal(t, domain.ThemeDark, domain.ParseTheme(""))
	})

	t.Run("Flip", func(t *testing.T) {
		assert.Equal(t, domain.ThemeDark, domain.ThemeLight.Flip())
		assert.Equal(t, domain.ThemeLight, domain.ThemeDark.Flip())
	})
}
