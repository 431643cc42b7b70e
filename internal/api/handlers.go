package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Klingon-tech/multisend/internal/recipients"
	"github.com/Klingon-tech/multisend/internal/tokens"
)

// Service identity reported by GET /api/.
const (
	ServiceName    = "Solana Multi-Send API"
	ServiceVersion = "1.0.0"
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail writes an error response in the {"detail": ...} shape.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResult{Detail: detail})
}

// writeRequestError renders err, mapping a body over the limit to 413.
func writeRequestError(w http.ResponseWriter, err error) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		writeDetail(w, reqErr.Status, reqErr.Detail)
		return
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeDetail(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
		return
	}
	writeDetail(w, http.StatusBadRequest, err.Error())
}

// decodeBody unmarshals a JSON request body into target.
func decodeBody(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return &RequestError{Status: http.StatusBadRequest, Detail: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResult{Message: ServiceName, Version: ServiceVersion})
}

func (s *Server) handleValidateRecipients(w http.ResponseWriter, r *http.Request) {
	var req MultiSendRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	rs, err := req.Validate()
	if err != nil {
		writeRequestError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.validator.Validate(rs))
}

func (s *Server) handleEstimateFees(w http.ResponseWriter, r *http.Request) {
	var req MultiSendRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	rs, err := req.Validate()
	if err != nil {
		writeRequestError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.fees.Estimate(req.TokenMint, rs))
}

func (s *Server) handleParseCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxBody); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeRequestError(w, err)
			return
		}
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "file is required")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse CSV: %v", err))
		return
	}
	res, err := recipients.Parse(raw)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse CSV: %v", err))
		return
	}

	s.logger.Debug().
		Int("recipients", len(res.Recipients)).
		Int("errors", len(res.Errors)).
		Msg("CSV parsed")
	writeJSON(w, http.StatusOK, newParseCSVResult(res))
}

func (s *Server) handleTokenList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TokenListResult{Tokens: tokens.List()})
}
