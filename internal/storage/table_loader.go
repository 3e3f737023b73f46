package storage

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	domainerrors "github.com/leengari/space-missions/internal/domain/errors"
	"github.com/leengari/space-missions/internal/domain/mission"
	"github.com/leengari/space-missions/internal/validation"
)

// LoadTable reads the mission CSV at path into an immutable table.
// Any failure is a *errors.LoadError; callers treat it as fatal.
func LoadTable(path string, logger *slog.Logger) (*mission.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domainerrors.NewMissingFile(path, err)
	}
	defer f.Close()

	table, err := ReadTable(path, f)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("table loaded",
			slog.String("path", path),
			slog.Int("rows", table.Len()),
			slog.Int("columns", len(table.Columns())),
			slog.Bool("price", table.HasPrice()),
		)
	}

	return table, nil
}

// ReadTable parses CSV content from r. name is used in errors and as the table name.
func ReadTable(name string, r io.Reader) (*mission.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &domainerrors.LoadError{Path: name, Reason: "empty dataset, header row missing"}
		}
		return nil, &domainerrors.LoadError{Path: name, Reason: "unreadable header", Err: err}
	}

	layout, err := newColumnLayout(name, header)
	if err != nil {
		return nil, err
	}

	records := []mission.Record{}
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewCorruptRow(name, "", row, "malformed CSV row", err)
		}

		rec, err := layout.record(fields)
		if err != nil {
			return nil, domainerrors.NewCorruptRow(name, mission.ColumnDate, row, "unparseable date", err)
		}
		records = append(records, rec)
	}

	return mission.NewTable(name, layout.columns, records), nil
}

// columnLayout maps header names to field positions
type columnLayout struct {
	columns []string
	index   map[string]int
	extra   []int
}

func newColumnLayout(name string, header []string) (*columnLayout, error) {
	l := &columnLayout{
		columns: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
	}

	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		l.columns[i] = h
		if _, dup := l.index[h]; !dup {
			l.index[h] = i
		}
	}

	for _, required := range mission.RequiredColumns {
		if _, ok := l.index[required]; !ok {
			return nil, domainerrors.NewMissingColumn(name, required)
		}
	}

	known := map[string]bool{mission.ColumnPrice: true}
	for _, c := range mission.RequiredColumns {
		known[c] = true
	}
	for i, c := range l.columns {
		if !known[c] && c != "" {
			l.extra = append(l.extra, i)
		}
	}

	return l, nil
}

func (l *columnLayout) field(fields []string, column string) string {
	i, ok := l.index[column]
	if !ok || i >= len(fields) {
		return ""
	}
	return fields[i]
}

func (l *columnLayout) record(fields []string) (mission.Record, error) {
	date, year, err := validation.NormalizeDate(l.field(fields, mission.ColumnDate))
	if err != nil {
		return mission.Record{}, err
	}

	rec := mission.Record{
		Company:       l.field(fields, mission.ColumnCompany),
		Mission:       l.field(fields, mission.ColumnMission),
		Date:          date,
		Year:          year,
		Time:          l.field(fields, mission.ColumnTime),
		Rocket:        normalizeRocket(l.field(fields, mission.ColumnRocket)),
		MissionStatus: l.field(fields, mission.ColumnMissionStatus),
		Price:         normalizePrice(l.field(fields, mission.ColumnPrice)),
	}

	if len(l.extra) > 0 {
		rec.Extra = make(map[string]string, len(l.extra))
		for _, i := range l.extra {
			if i < len(fields) {
				rec.Extra[l.columns[i]] = fields[i]
			}
		}
	}

	return rec, nil
}
