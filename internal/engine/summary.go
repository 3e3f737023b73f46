package engine

import (
	"context"

	"github.com/leengari/space-missions/internal/domain/mission"
	"github.com/leengari/space-missions/internal/query"
)

// NotAvailable is reported as the top company of an empty table
const NotAvailable = "N/A"

// Summary is the headline statistics block.
type Summary struct {
	Total        int     `json:"total" yaml:"total"`
	SuccessRate  float64 `json:"successRate" yaml:"successRate"`
	SuccessCount int     `json:"successCount" yaml:"successCount"`
	TopCompany   string  `json:"topCompany" yaml:"topCompany"`
}

// Summary derives totals from the status counts and the company ranking.
// Total only includes statuses in the vocabulary.
func (e *Engine) Summary(ctx context.Context) (Summary, error) {
	return run(ctx, e, "summary", nil, func() (Summary, error) {
		return summarize(e.table), nil
	})
}

func summarize(t *mission.Table) Summary {
	counts := query.MissionStatusCount(t)
	total := counts.Total()
	successes := counts[mission.StatusSuccess]

	s := Summary{
		Total:        total,
		SuccessCount: successes,
		TopCompany:   NotAvailable,
	}
	if total > 0 {
		s.SuccessRate = query.Round2(float64(successes) / float64(total) * 100)
	}
	if top := query.TopCompaniesByMissionCount(t, 1); len(top) > 0 {
		s.TopCompany = top[0].Name
	}
	return s
}
