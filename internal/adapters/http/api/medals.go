package api

import (
	"net/http"
	"strings"
)

// handleSelectors handles GET /api/selectors.
func (s *Server) handleSelectors(w http.ResponseWriter, r *http.Request) {
	sel, err := s.deps.Selectors(r.Context())
	s.respond(w, r, sel, err)
}

// handleMedalTally handles GET /api/medal-tally?year=&region=.
func (s *Server) handleMedalTally(w http.ResponseWriter, r *http.Request) {
	rows, err := s.deps.MedalTally(r.Context(), selector(r, "year"), selector(r, "region"))
	s.respond(w, r, rows, err)
}

// handleYearTally handles GET /api/countries/{region}/medals.
func (s *Server) handleYearTally(w http.ResponseWriter, r *http.Request) {
	region, ok := s.region(w, r)
	if !ok {
		return
	}
	rows, err := s.deps.YearTally(r.Context(), region)
	s.respond(w, r, rows, err)
}

// handleHeatmap handles GET /api/countries/{region}/heatmap.
func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	region, ok := s.region(w, r)
	if !ok {
		return
	}
	hm, err := s.deps.CountryHeatmap(r.Context(), region)
	s.respond(w, r, hm, err)
}

// handleCountryAthletes handles GET /api/countries/{region}/athletes?limit=.
func (s *Server) handleCountryAthletes(w http.ResponseWriter, r *http.Request) {
	region, ok := s.region(w, r)
	if !ok {
		return
	}
	n, err := limitParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	rows, err := s.deps.TopCountryAthletes(r.Context(), region, n)
	s.respond(w, r, rows, err)
}

func (s *Server) region(w http.ResponseWriter, r *http.Request) (string, bool) {
	region := strings.TrimSpace(r.PathValue("region"))
	if region == "" {
		s.fail(w, r, badRequest("missing region"))
		return "", false
	}
	return region, true
}
