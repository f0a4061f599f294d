package sheets

// Row is one data row of a sheet, addressed by column name. Index is the
// zero-based position among the data rows at read time; it is a snapshot
// and shifts when rows above it are inserted or deleted.
type Row struct {
	Index   int
	columns []string
	values  map[string]string
}

// NewRow builds a row over the sheet header. Values for columns outside
// the header are kept in memory but never persisted.
func NewRow(index int, columns []string, values map[string]string) *Row {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &Row{
		Index:   index,
		columns: columns,
		values:  cp,
	}
}

// Get returns the cell under column, or "" when the sheet has no such
// column or the cell is blank.
func (r *Row) Get(column string) string {
	return r.values[column]
}

// Has reports whether the sheet header declares column.
func (r *Row) Has(column string) bool {
	for _, c := range r.columns {
		if c == column {
			return true
		}
	}
	return false
}

func (r *Row) Set(column, value string) {
	r.values[column] = value
}

func (r *Row) Columns() []string {
	return r.columns
}

// Cells returns the row in header order, ready to be written back.
func (r *Row) Cells() []string {
	out := make([]string, len(r.columns))
	for i, c := range r.columns {
		out[i] = r.values[c]
	}
	return out
}
