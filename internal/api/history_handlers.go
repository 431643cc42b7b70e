package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Klingon-tech/multisend/internal/history"
)

// HistoryResult is returned by transaction-history.
type HistoryResult struct {
	Transactions []history.Record `json:"transactions"`
}

func (s *Server) handleSaveTransaction(w http.ResponseWriter, r *http.Request) {
	var rec history.Record
	if err := decodeBody(r, &rec); err != nil {
		writeRequestError(w, err)
		return
	}
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := s.history.Save(r.Context(), rec)
	if err != nil {
		s.logger.Error().Err(err).Str("sender", rec.SenderWallet).Msg("Failed to save transaction")
		writeDetail(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	s.logger.Info().
		Str("id", saved.ID).
		Str("sender", saved.SenderWallet).
		Int("recipients", saved.RecipientCount).
		Str("status", string(saved.Status)).
		Msg("Transaction saved")
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleTransactionHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := s.historyLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeRequestError(w, err)
		return
	}

	recs, err := s.history.List(r.Context(), r.PathValue("wallet"), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list transactions")
		writeDetail(w, http.StatusInternalServerError, "failed to load transaction history")
		return
	}
	writeJSON(w, http.StatusOK, HistoryResult{Transactions: recs})
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	rec, err := s.history.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, history.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "transaction not found")
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load transaction")
		writeDetail(w, http.StatusInternalServerError, "failed to load transaction")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// historyLimit parses the limit query value and clamps it to [1, maxLimit].
func (s *Server) historyLimit(raw string) (int, error) {
	limit := history.DefaultLimit
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, unprocessable("limit must be an integer, got %q", raw)
		}
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return limit, nil
}
