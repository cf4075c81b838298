package server

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/techridge/demand/internal/calculation"
	"github.com/techridge/demand/internal/domain"
)

// Server exposes the demand engine over HTTP for frontends. The roster and
// supply schedule are loaded once at startup and treated as immutable;
// every request computes demand fresh from its own query parameters.
type Server struct {
	Engine        *calculation.Engine
	Employers     []domain.Employer
	Supply        *domain.SupplyConfig
	RateScenarios []domain.RateScenario
}

// NewServer creates a server around an engine and a loaded roster.
func NewServer(engine *calculation.Engine, employers []domain.Employer, supply *domain.SupplyConfig) *Server {
	return &Server{
		Engine:        engine,
		Employers:     employers,
		Supply:        supply,
		RateScenarios: domain.DefaultRateScenarios(),
	}
}

// ListenAndServe starts the HTTP listener on the given address.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("demand server listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handle)
}

// Handle routes a request. Only GET endpoints exist; the engine has no
// mutable state to POST to.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch string(ctx.Path()) {
	case "/healthz":
		s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/api/employers":
		s.handleEmployers(ctx)
	case "/api/demand":
		s.handleDemand(ctx)
	case "/api/overview":
		s.handleOverview(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleEmployers(ctx *fasthttp.RequestCtx) {
	names := make([]string, 0, len(s.Employers))
	for i := range s.Employers {
		names = append(names, s.Employers[i].Name)
	}
	s.writeJSON(ctx, fasthttp.StatusOK, map[string]any{"employers": names})
}

// handleDemand serves one demand summary. Query parameters: year (required),
// basis (base|ote, default base), rate (decimal, default FHA), employer
// (default: aggregate across all).
func (s *Server) handleDemand(ctx *fasthttp.RequestCtx) {
	scenario, err := s.scenarioFromQuery(ctx)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	// The lookup table is scoped to this request's rate set.
	table, err := s.Engine.Mortgage.BuildLookup([]decimal.Decimal{scenario.Rate})
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	employerName := string(ctx.QueryArgs().Peek("employer"))
	var summary *domain.DemandSummary
	if employerName == "" || employerName == calculation.AggregateName {
		summary, err = s.Engine.AggregateDemand(s.Employers, scenario, table)
	} else {
		employer := s.findEmployer(employerName)
		if employer == nil {
			s.writeError(ctx, fasthttp.StatusNotFound, fmt.Sprintf("unknown employer %q", employerName))
			return
		}
		summary, err = s.Engine.EmployerDemand(employer, scenario, table)
	}
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, summary)
}

// handleOverview serves the demand-versus-supply report. Query parameters:
// years (comma-separated, default base year through base year + 4) and
// basis (comma-separated, default both).
func (s *Server) handleOverview(ctx *fasthttp.RequestCtx) {
	years, err := s.yearsFromQuery(ctx)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	bases := []domain.IncomeBasis{domain.IncomeBasisBase, domain.IncomeBasisOTE}
	if raw := string(ctx.QueryArgs().Peek("basis")); raw != "" {
		bases = bases[:0]
		for _, part := range strings.Split(raw, ",") {
			basis, err := domain.ParseIncomeBasis(strings.TrimSpace(part))
			if err != nil {
				s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
				return
			}
			bases = append(bases, basis)
		}
	}

	report, err := s.Engine.Overview(s.Employers, years, bases, s.RateScenarios, s.Supply)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, report)
}

func (s *Server) scenarioFromQuery(ctx *fasthttp.RequestCtx) (domain.Scenario, error) {
	var scenario domain.Scenario

	year, err := strconv.Atoi(string(ctx.QueryArgs().Peek("year")))
	if err != nil {
		return scenario, fmt.Errorf("year query parameter is required")
	}
	scenario.TargetYear = year

	scenario.IncomeBasis = domain.IncomeBasisBase
	if raw := string(ctx.QueryArgs().Peek("basis")); raw != "" {
		basis, err := domain.ParseIncomeBasis(raw)
		if err != nil {
			return scenario, err
		}
		scenario.IncomeBasis = basis
	}

	scenario.Rate = s.Engine.Mortgage.Assumptions.FHARate
	if raw := string(ctx.QueryArgs().Peek("rate")); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return scenario, fmt.Errorf("invalid rate %q", raw)
		}
		if rate.Sign() < 0 {
			return scenario, fmt.Errorf("rate cannot be negative")
		}
		scenario.Rate = rate
	}
	return scenario, nil
}

func (s *Server) yearsFromQuery(ctx *fasthttp.RequestCtx) ([]int, error) {
	raw := string(ctx.QueryArgs().Peek("years"))
	if raw == "" {
		base := 2025
		if len(s.Employers) > 0 {
			base = s.Employers[0].BaseYear
		}
		years := make([]int, 0, 5)
		for y := base; y < base+5; y++ {
			years = append(years, y)
		}
		return years, nil
	}

	var years []int
	for _, part := range strings.Split(raw, ",") {
		year, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", part)
		}
		years = append(years, year)
	}
	return years, nil
}

func (s *Server) findEmployer(name string) *domain.Employer {
	for i := range s.Employers {
		if s.Employers[i].Name == name {
			return &s.Employers[i]
		}
	}
	return nil
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.writeJSON(ctx, status, map[string]any{"status": status, "message": message})
}
