package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/config"
	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// TaxRequest asks for the taxes on one gross income. Omitted jurisdiction
// fields default to single, ny, nyc.
type TaxRequest struct {
	Gross        decimal.Decimal     `json:"gross"`
	FilingStatus domain.FilingStatus `json:"filing_status"`
	State        domain.StateCode    `json:"state"`
	City         domain.CityCode     `json:"city"`
}

// GridResponse carries the scored grid and its analysis.
type GridResponse struct {
	Grid     *domain.Grid        `json:"grid"`
	Analysis domain.GridAnalysis `json:"analysis"`
}

// GridCellRequest selects one cell of a grid for a full projection.
type GridCellRequest struct {
	Scenario       domain.ScenarioConfig `json:"scenario"`
	RetirementYear int                   `json:"retirement_year"`
	ChildBirthYear int                   `json:"child_birth_year"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTaxes(w http.ResponseWriter, r *http.Request) {
	defaults := domain.DefaultScenarioConfig()
	req := TaxRequest{FilingStatus: defaults.FilingStatus, State: defaults.State, City: defaults.City}
	if !s.decode(w, r, &req) {
		return
	}

	probe := defaults
	probe.FilingStatus, probe.State, probe.City = req.FilingStatus, req.State, req.City
	if err := probe.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, domain.TaxQuote{
		Gross:        req.Gross,
		FilingStatus: req.FilingStatus,
		State:        req.State,
		City:         req.City,
		Taxes:        s.engine.TaxCalc.ComputeTaxes(req.Gross, req.FilingStatus, req.State, req.City),
	})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	cfg := domain.DefaultScenarioConfig()
	if !s.decode(w, r, &cfg) {
		return
	}
	summary, err := s.engine.RunScenario(r.Context(), cfg)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	cfg := config.DefaultConfiguration()
	if !s.decode(w, r, cfg) {
		return
	}
	if err := s.parser.ValidateConfiguration(cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	grid, err := s.engine.ExploreGrid(r.Context(), cfg.Scenario.Normalize(), cfg.Grid.RetirementYears(), cfg.Grid.ChildBirthYears())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, GridResponse{Grid: grid, Analysis: calculation.AnalyzeGrid(grid)})
}

func (s *Server) handleGridCell(w http.ResponseWriter, r *http.Request) {
	req := GridCellRequest{Scenario: domain.DefaultScenarioConfig(), ChildBirthYear: domain.NoDependent}
	if !s.decode(w, r, &req) {
		return
	}
	cfg := calculation.DeriveScenario(req.Scenario, req.RetirementYear, req.ChildBirthYear)
	summary, err := s.engine.RunScenario(r.Context(), cfg)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleBreakEven(w http.ResponseWriter, r *http.Request) {
	cfg := domain.DefaultScenarioConfig()
	if !s.decode(w, r, &cfg) {
		return
	}
	res, err := s.engine.BreakEvenSpending(r.Context(), cfg)
	if errors.Is(err, calculation.ErrNeverSustainable) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// decode reads a JSON body into dst, which carries the defaults for any
// omitted field. It writes a 400 and returns false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.logger.Warnf("request abandoned: %v", err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: status, Message: message})
}
