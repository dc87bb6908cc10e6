package api

import (
	"net/http"

	"github.com/okian/podium/internal/adapters/render"
	"github.com/okian/podium/internal/domain/types"
)

// agesResponse groups the overall age curves with the gold medalist ages
// per sport.
type agesResponse struct {
	Overall []types.Distribution `json:"overall"`
	BySport []types.Distribution `json:"by_sport"`
}

// handleTopAthletes handles GET /api/athletes/top?sport=&limit=.
func (s *Server) handleTopAthletes(w http.ResponseWriter, r *http.Request) {
	n, err := limitParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	rows, err := s.deps.TopAthletes(r.Context(), selector(r, "sport"), n)
	s.respond(w, r, rows, err)
}

// handlePhysique handles GET /api/athletes/physique?sport=.
func (s *Server) handlePhysique(w http.ResponseWriter, r *http.Request) {
	rows, err := s.deps.Physique(r.Context(), selector(r, "sport"))
	s.respond(w, r, rows, err)
}

// handleAges handles GET /api/athletes/ages. CSV output lists the
// overall curves followed by the per sport ones.
func (s *Server) handleAges(w http.ResponseWriter, r *http.Request) {
	overall, err := s.deps.AgeDistributions(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	bySport, err := s.deps.GoldMedalistAges(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if f, _ := format(r); f == render.FormatCSV {
		s.respond(w, r, append(overall, bySport...), nil)
		return
	}
	s.respond(w, r, agesResponse{Overall: overall, BySport: bySport}, nil)
}
