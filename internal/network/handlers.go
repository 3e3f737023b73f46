package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	domainerrors "github.com/leengari/space-missions/internal/domain/errors"
	"github.com/leengari/space-missions/internal/validation"
)

const defaultTopN = 10

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.engine.Summary(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.engine.Companies(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"companies": companies})
}

func (s *Server) handleTopCompanies(w http.ResponseWriter, r *http.Request) {
	n := defaultTopN
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := validation.ParseLimit(raw)
		if err != nil {
			s.writeError(w, r, domainerrors.NewInputError("n", raw, err.Error()))
			return
		}
		n = parsed
	}

	top, err := s.engine.TopCompanies(r.Context(), n)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, top)
}

func (s *Server) handleCompanyMissions(w http.ResponseWriter, r *http.Request) {
	company := r.PathValue("company")
	count, err := s.engine.MissionCount(r.Context(), company)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"company": company, "count": count})
}

func (s *Server) handleCompanySuccessRate(w http.ResponseWriter, r *http.Request) {
	company := r.PathValue("company")
	rate, err := s.engine.SuccessRate(r.Context(), company)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"company": company, "successRate": rate})
}

func (s *Server) handleSearchMissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end := q.Get("start"), q.Get("end")
	if start == "" || end == "" {
		s.writeError(w, r, domainerrors.NewInputError("start/end", "", "both start and end are required"))
		return
	}

	missions, err := s.engine.MissionsByDateRange(r.Context(), start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"missions": missions})
}

func (s *Server) handleMissionsByYear(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("year")
	year, err := validation.ParseYear(raw)
	if err != nil {
		s.writeError(w, r, domainerrors.NewInputError("year", raw, err.Error()))
		return
	}

	count, err := s.engine.MissionsByYear(r.Context(), year)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"year": year, "count": count})
}

func (s *Server) handleAveragePerYear(w http.ResponseWriter, r *http.Request) {
	startYear, err := yearParam(r, "startYear", "start_year")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	endYear, err := yearParam(r, "endYear", "end_year")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	avg, err := s.engine.AverageMissionsPerYear(r.Context(), startYear, endYear)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"average":   avg,
		"startYear": startYear,
		"endYear":   endYear,
	})
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := s.engine.Timeline(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, timeline)
}

func (s *Server) handleStatusDistribution(w http.ResponseWriter, r *http.Request) {
	counts, err := s.engine.StatusCount(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, counts)
}

func (s *Server) handleRawData(w http.ResponseWriter, r *http.Request) {
	rows, err := s.engine.RawData(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleMostUsedRocket(w http.ResponseWriter, r *http.Request) {
	rocket, err := s.engine.MostUsedRocket(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"rocket": rocket})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"rows":   s.engine.Table().Len(),
	})
}

// yearParam reads the first present query parameter among names
func yearParam(r *http.Request, names ...string) (int, error) {
	q := r.URL.Query()
	for _, name := range names {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		year, err := validation.ParseYear(raw)
		if err != nil {
			return 0, domainerrors.NewInputError(name, raw, err.Error())
		}
		return year, nil
	}
	return 0, domainerrors.NewInputError(strings.Join(names, "/"), "", "parameter is required")
}

// writeJSON writes a JSON response with the provided status code
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode error", "error", err)
	}
}

// writeError maps query errors to HTTP status codes
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var inputErr *domainerrors.InputError
	if errors.As(err, &inputErr) {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: inputErr.Error()})
		return
	}

	s.logger.Error("query failed",
		slog.String("path", r.URL.Path),
		slog.String("request_id", r.Header.Get(requestIDHeader)),
		slog.Any("error", err),
	)
	s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("internal error: %v", err)})
}
