package port

import "github.com/hovixy/storefront/internal/core/domain"

// CatalogStore owns the purchasable products. List preserves
// insertion order. The loading/error pair is administrative
// last-write-wins state for a loading view.
type CatalogStore interface {
	List() []domain.Product
	Get(id string) (domain.Product, error)
	Replace(ps []domain.Product)
	SetLoading(v bool)
	SetError(msg string)
	Loading() bool
	Err() string
}

// CartLedger keeps the quantities-by-product for the active session.
// Quantities never drop below 1: a below-1 update is rejected inside
// the ledger, not by the caller.
type CartLedger interface {
	Add(p domain.Product, quantity int) domain.CartLine
	Remove(productID string)
	UpdateQuantity(productID string, quantity int) (domain.CartLine, bool)
	Clear()
	ToggleVisibility() bool
	Snapshot() domain.Cart
}

// SessionStore keeps the signed-in identity and caches it in
// local storage so it survives a restart.
type SessionStore interface {
	SignIn(email, password string) (domain.User, error)
	SignOut() error
	Restore()
	Current() (domain.User, bool)
}

// ThemeStore keeps the persisted light/dark preference.
type ThemeStore interface {
	Theme() domain.Theme
	Toggle() (domain.Theme, error)
}

// KVStore is the local persisted state: independent entries under
// fixed keys. Read reports an absent key with an error satisfying
// errors.Is(err, fs.ErrNotExist).
type KVStore interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

// CatalogSource supplies the seed products at startup.
type CatalogSource interface {
	Load() ([]domain.Product, error)
}
