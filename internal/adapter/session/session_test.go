package session_test

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hovixy/storefront/internal/adapter/localstore"
	"github.com/hovixy/storefront/internal/adapter/session"
)

func newStore(t *testing.T) (*session.Store, localstore.FileStore) {
	t.Helper()
	kv := localstore.New(afero.NewMemMapFs(), "/data")
	return session.New(kv), kv
}

func TestSignIn(t *testing.T) {
	t.Run("DerivesNameAndPersists", func(t *testing.T) {
		s, kv := newStore(t)

		u, err := s.SignIn("alex@example.com", "whatever")
		require.NoError(t, err)
		assert.Equal(t, "alex", u.Name)

		cur, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, u, cur)

		data, err := kv.Read(session.UserKey)
		require.NoError(t, err)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(data, &rec))
		assert.Equal(t, "alex@example.com", rec["email"])
		assert.Equal(t, "alex", rec["name"])
	})

	t.Run("EmptyLocalPartGetsFallbackName", func(t *testing.T) {
		s, _ := newStore(t)

		u, err := s.SignIn("@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "User", u.Name)
	})

	t.Run("OverwritesPreviousEntry", func(t *testing.T) {
		s, _ := newStore(t)

		_, err := s.SignIn("first@example.com", "")
		require.NoError(t, err)
		_, err = s.SignIn("second@example.com", "")
		require.NoError(t, err)

		cur, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "second", cur.Name)
	})

	t.Run("WriteFailureLeavesStateUntouched", func(t *testing.T) {
		kv := localstore.New(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data")
		s := session.New(kv)

		_, err := s.SignIn("alex@example.com", "")
		require.Error(t, err)

		_, ok := s.Current()
		assert.False(t, ok)
	})
}

func TestSignOut(t *testing.T) {
	t.Run("ClearsIdentityAndStorage", func(t *testing.T) {
		s, kv := newStore(t)
		_, err := s.SignIn("alex@example.com", "")
		require.NoError(t, err)

		require.NoError(t, s.SignOut())

		_, ok := s.Current()
		assert.False(t, ok)

		_, err = kv.Read(session.UserKey)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("WithoutSessionIsNoOp", func(t *testing.T) {
		s, _ := newStore(t)
		require.NoError(t, s.SignOut())
	})
}

func TestRestore(t *testing.T) {
	t.Run("LoadsPersistedIdentity", func(t *testing.T) {
		kv := localstore.New(afero.NewMemMapFs(), "/data")

		first := session.New(kv)
		_, err := first.SignIn("alex@example.com", "")
		require.NoError(t, err)

		second := session.New(kv)
		second.Restore()

		cur, ok := second.Current()
		require.True(t, ok)
		assert.Equal(t, "alex", cur.Name)
		assert.Equal(t, "alex@example.com", cur.Email)
	})

	t.Run("AbsentEntryLeavesSessionEmpty", func(t *testing.T) {
		s, _ := newStore(t)
		s.Restore()

		_, ok := s.Current()
		assert.False(t, ok)
	})

	t.Run("CorruptEntryIsIgnored", func(t *testing.T) {
		kv := localstore.New(afero.NewMemMapFs(), "/data")
		require.NoError(t, kv.Write(session.UserKey, []byte("{not json")))

		s := session.New(kv)
		require.NotPanics(t, s.Restore)

		_, ok := s.Current()
		assert.False(t, ok)
	})
}
