package api

import (
	"net/http"

	"github.com/okian/podium/internal/domain/analytics"
)

// handleOverTime handles GET /api/over-time?column=. The column defaults
// to participating nations.
func (s *Server) handleOverTime(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("column")
	col := analytics.ColumnRegion
	if name != "" {
		var err error
		if col, err = analytics.ParseColumn(name); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	rows, err := s.deps.OverTime(r.Context(), col)
	s.respond(w, r, rows, err)
}

// handleOverview handles GET /api/overview.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.deps.Overview(r.Context())
	s.respond(w, r, ov, err)
}

// handleEventsPerSport handles GET /api/events-per-sport.
func (s *Server) handleEventsPerSport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.deps.EventsPerSport(r.Context())
	s.respond(w, r, rows, err)
}

// handleGender handles GET /api/participation/gender.
func (s *Server) handleGender(w http.ResponseWriter, r *http.Request) {
	rows, err := s.deps.GenderParticipation(r.Context())
	s.respond(w, r, rows, err)
}

// handleSuggest handles GET /api/suggest?kind=&q=&limit=.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	n, err := limitParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	got, err := s.deps.Suggest(r.Context(), q.Get("kind"), q.Get("q"), n)
	s.respond(w, r, got, err)
}
