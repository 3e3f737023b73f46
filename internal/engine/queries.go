package engine

import (
	"context"

	domainerrors "github.com/leengari/space-missions/internal/domain/errors"
	"github.com/leengari/space-missions/internal/query"
	"github.com/leengari/space-missions/internal/validation"
)

// MissionCount counts missions flown by company (exact match).
func (e *Engine) MissionCount(ctx context.Context, company string) (int, error) {
	return run(ctx, e, "mission_count", map[string]any{"company": company}, func() (int, error) {
		return query.MissionCountByCompany(e.table, company), nil
	})
}

// SuccessRate returns the company's success percentage, 0 for unknown companies.
func (e *Engine) SuccessRate(ctx context.Context, company string) (float64, error) {
	return run(ctx, e, "success_rate", map[string]any{"company": company}, func() (float64, error) {
		return query.SuccessRate(e.table, company), nil
	})
}

// MissionsByDateRange lists mission names dated within [start, end].
// Both bounds must be YYYY-MM-DD dates.
func (e *Engine) MissionsByDateRange(ctx context.Context, start, end string) ([]string, error) {
	args := map[string]any{"start": start, "end": end}
	return run(ctx, e, "missions_by_date_range", args, func() ([]string, error) {
		if err := validation.ValidateDate(start); err != nil {
			return nil, domainerrors.NewInputError("start", start, err.Error())
		}
		if err := validation.ValidateDate(end); err != nil {
			return nil, domainerrors.NewInputError("end", end, err.Error())
		}
		return query.MissionsByDateRange(e.table, start, end), nil
	})
}

// TopCompanies ranks the n companies with the most missions.
func (e *Engine) TopCompanies(ctx context.Context, n int) ([]query.CompanyCount, error) {
	return run(ctx, e, "top_companies", map[string]any{"n": n}, func() ([]query.CompanyCount, error) {
		if n < 0 {
			return nil, domainerrors.NewInputError("n", "", "limit cannot be negative")
		}
		return query.TopCompaniesByMissionCount(e.table, n), nil
	})
}

// StatusCount counts missions per status vocabulary entry.
func (e *Engine) StatusCount(ctx context.Context) (query.StatusCounts, error) {
	return run(ctx, e, "status_count", nil, func() (query.StatusCounts, error) {
		return query.MissionStatusCount(e.table), nil
	})
}

// MissionsByYear counts missions launched in year.
func (e *Engine) MissionsByYear(ctx context.Context, year int) (int, error) {
	return run(ctx, e, "missions_by_year", map[string]any{"year": year}, func() (int, error) {
		return query.MissionsByYear(e.table, year), nil
	})
}

// MostUsedRocket returns the most flown rocket or "" when none is named.
func (e *Engine) MostUsedRocket(ctx context.Context) (string, error) {
	return run(ctx, e, "most_used_rocket", nil, func() (string, error) {
		return query.MostUsedRocket(e.table), nil
	})
}

// AverageMissionsPerYear averages launches over the inclusive year range.
func (e *Engine) AverageMissionsPerYear(ctx context.Context, startYear, endYear int) (float64, error) {
	args := map[string]any{"start_year": startYear, "end_year": endYear}
	return run(ctx, e, "average_missions_per_year", args, func() (float64, error) {
		return query.AverageMissionsPerYear(e.table, startYear, endYear), nil
	})
}

// Companies lists the distinct company names.
func (e *Engine) Companies(ctx context.Context) ([]string, error) {
	return run(ctx, e, "companies", nil, func() ([]string, error) {
		return query.Companies(e.table), nil
	})
}

// Timeline returns launches per year, oldest first.
func (e *Engine) Timeline(ctx context.Context) ([]query.YearCount, error) {
	return run(ctx, e, "timeline", nil, func() ([]query.YearCount, error) {
		return query.MissionsPerYear(e.table), nil
	})
}
