package sheets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps sheets in process memory. It backs STORE_DRIVER=memory
// and the tests.
type MemoryStore struct {
	mu     sync.RWMutex
	sheets map[string]*MemorySheet
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string]*MemorySheet)}
}

// AddSheet creates (or replaces) a sheet with the given header.
func (s *MemoryStore) AddSheet(title string, header ...string) *MemorySheet {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh := &MemorySheet{
		title:  title,
		header: append([]string(nil), header...),
	}
	s.sheets[title] = sh
	return sh
}

// Sheet returns the sheet with exactly this title, or nil.
func (s *MemoryStore) Sheet(title string) *MemorySheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sheets[title]
}

func (s *MemoryStore) LoadSheetsByTitle(ctx context.Context) (map[string]Sheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Sheet, len(s.sheets))
	for title, sh := range s.sheets {
		out[title] = sh
	}
	return out, nil
}

type MemorySheet struct {
	mu     sync.RWMutex
	title  string
	header []string
	rows   []map[string]string
}

func (m *MemorySheet) Title() string {
	return m.title
}

func (m *MemorySheet) Header() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.header...)
}

// Len is the number of data rows.
func (m *MemorySheet) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}

// Snapshot copies every data row, for comparisons.
func (m *MemorySheet) Snapshot() []map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]map[string]string, len(m.rows))
	for i, r := range m.rows {
		cp := make(map[string]string, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

// Cell reads the stored value directly, bypassing Row.
func (m *MemorySheet) Cell(index int, column string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if index < 0 || index >= len(m.rows) {
		return ""
	}
	return m.rows[index][column]
}

func (m *MemorySheet) Rows(ctx context.Context) ([]*Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	header := append([]string(nil), m.header...)
	out := make([]*Row, len(m.rows))
	for i, values := range m.rows {
		out[i] = NewRow(i, header, values)
	}
	return out, nil
}

func (m *MemorySheet) AddRow(ctx context.Context, fields map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = append(m.rows, m.project(fields))
	return nil
}

func (m *MemorySheet) SaveRow(ctx context.Context, row *Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if row.Index < 0 || row.Index >= len(m.rows) {
		return fmt.Errorf("sheet %s: row %d out of range", m.title, row.Index)
	}

	values := make(map[string]string, len(m.header))
	for _, c := range row.Columns() {
		values[c] = row.Get(c)
	}
	m.rows[row.Index] = m.project(values)
	return nil
}

func (m *MemorySheet) DeleteRow(ctx context.Context, row *Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if row.Index < 0 || row.Index >= len(m.rows) {
		return fmt.Errorf("sheet %s: row %d out of range", m.title, row.Index)
	}
	m.rows = append(m.rows[:row.Index], m.rows[row.Index+1:]...)
	return nil
}

// project drops columns the header does not declare; blank cells are not
// stored so they read back exactly like a missing column.
func (m *MemorySheet) project(fields map[string]string) map[string]string {
	out := make(map[string]string, len(m.header))
	for _, c := range m.header {
		if v, ok := fields[c]; ok && v != "" {
			out[c] = v
		}
	}
	return out
}
