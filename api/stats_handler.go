package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type statsHandler struct {
	responder Responder
	logger    zerolog.Logger
	statsRepo *database.StatsRepo
}

func newStatsHandler(statsRepo *database.StatsRepo) statsHandler {
	logger := log.With().Str("handlerName", "statsHandler").Logger()

	return statsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		statsRepo: statsRepo,
	}
}

// getStats reports per-entity totals alongside bucketed growth series
// for the dashboard charts
func (h statsHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.statsRepo.CountAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count entities", "stats", err))
			return
		}

		growth, err := h.statsRepo.GrowthAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("compute growth", "stats", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"counts":     counts,
			"growthData": growth,
		})
	}
}
