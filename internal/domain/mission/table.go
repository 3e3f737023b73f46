package mission

// Source column names.
const (
	ColumnCompany       = "Company"
	ColumnMission       = "Mission"
	ColumnDate          = "Date"
	ColumnTime          = "Time"
	ColumnRocket        = "Rocket"
	ColumnMissionStatus = "MissionStatus"
	ColumnPrice         = "Price"
)

// RequiredColumns must all appear in the dataset header.
var RequiredColumns = []string{
	ColumnCompany,
	ColumnMission,
	ColumnDate,
	ColumnTime,
	ColumnRocket,
	ColumnMissionStatus,
}

// Table is the immutable in-memory mission dataset.
// It is built once by the loader and only read afterwards, so it needs no locking.
type Table struct {
	name     string
	columns  []string
	records  []Record
	hasPrice bool
}

// NewTable builds a table from already normalized records.
// The records slice is copied; later changes by the caller are not visible.
func NewTable(name string, columns []string, records []Record) *Table {
	t := &Table{
		name:    name,
		columns: append([]string(nil), columns...),
		records: make([]Record, len(records)),
	}
	for i, r := range records {
		t.records[i] = r.Copy()
	}
	for _, c := range columns {
		if c == ColumnPrice {
			t.hasPrice = true
			break
		}
	}
	return t
}

// Name returns the dataset name (usually the source file path).
func (t *Table) Name() string {
	return t.name
}

// Columns returns the header columns in source order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasPrice reports whether the source carried a Price column.
func (t *Table) HasPrice() bool {
	return t.hasPrice
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the record at position i in source order.
func (t *Table) At(i int) Record {
	return t.records[i]
}

// Each calls fn for every record in source order.
// fn must not retain or modify the record's Extra map.
func (t *Table) Each(fn func(i int, r Record)) {
	if t == nil {
		return
	}
	for i, r := range t.records {
		fn(i, r)
	}
}

// Records returns a copy of all records in source order.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	out := make([]Record, len(t.records))
	for i, r := range t.records {
		out[i] = r.Copy()
	}
	return out
}
