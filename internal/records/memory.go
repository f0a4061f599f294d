package records

import "github.com/Hyken1/OdontoClinic/internal/sheets"

// NewMemoryStore returns an in-memory store with every clinic sheet and its
// expected header, all empty.
func NewMemoryStore() *sheets.MemoryStore {
	store := sheets.NewMemoryStore()
	for _, name := range SheetNames {
		store.AddSheet(name, Headers[name]...)
	}
	return store
}
