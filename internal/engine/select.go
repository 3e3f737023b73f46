package engine

import (
	"context"

	"github.com/leengari/space-missions/internal/domain/mission"
)

// Row is one dataset row keyed by source column name.
// Blank values are nil so they encode as JSON null.
type Row map[string]any

// RawData returns every record in source order.
func (e *Engine) RawData(ctx context.Context) ([]Row, error) {
	return run(ctx, e, "raw_data", nil, func() ([]Row, error) {
		return SelectAll(e.table), nil
	})
}

// SelectAll returns all rows of the table
func SelectAll(t *mission.Table) []Row {
	columns := t.Columns()
	rows := make([]Row, 0, t.Len())
	t.Each(func(_ int, r mission.Record) {
		row := make(Row, len(columns))
		for _, c := range columns {
			if c == "" {
				continue
			}
			row[c] = cell(r, c)
		}
		rows = append(rows, row)
	})
	return rows
}

func cell(r mission.Record, column string) any {
	switch column {
	case mission.ColumnCompany:
		return nullable(r.Company)
	case mission.ColumnMission:
		return nullable(r.Mission)
	case mission.ColumnDate:
		return nullable(r.Date)
	case mission.ColumnTime:
		return nullable(r.Time)
	case mission.ColumnRocket:
		return nullable(r.Rocket)
	case mission.ColumnMissionStatus:
		return nullable(r.MissionStatus)
	case mission.ColumnPrice:
		return r.Price
	default:
		return nullable(r.Extra[column])
	}
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
