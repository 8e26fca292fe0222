package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"htmldigest/internal/database"
	"htmldigest/internal/htmltext"
	"htmldigest/internal/token"

	"github.com/go-chi/chi/v5"
)

type uploadRequest struct {
	HTML string `json:"html"`
}

type uploadResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type askRequest struct {
	Token    string `json:"token"`
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleUploadHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.HTML) == "" {
		s.writeError(w, r, http.StatusUnprocessableEntity, "html is required")
		return
	}

	text, err := htmltext.Extract(req.HTML)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to parse uploaded HTML",
			"error", err)
		s.writeError(w, r, http.StatusUnprocessableEntity, "invalid HTML")
		return
	}

	if text == "" {
		s.writeError(w, r, http.StatusUnprocessableEntity, "no visible text found in HTML")
		return
	}

	pageToken := token.New()

	if err = s.db.SavePage(ctx, pageToken, text); err != nil {
		s.log.ErrorContext(ctx, "Failed to save page",
			"error", err,
			"token", pageToken)
		s.writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	s.log.InfoContext(ctx, "HTML is stored",
		"token", pageToken,
		"textLength", len(text))

	s.writeJSON(w, r, http.StatusOK, uploadResponse{
		Message: "HTML stored",
		Token:   pageToken,
	})
}

func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pageToken := chi.URLParam(r, "token")

	text, ok := s.lookupPage(w, r, pageToken)
	if !ok {
		return
	}

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to summarize page",
			"error", err,
			"token", pageToken)
		s.writeError(w, r, http.StatusBadGateway, "failed to generate summary")
		return
	}

	s.writeJSON(w, r, http.StatusOK, summaryResponse{Summary: summary})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Token) == "" {
		s.writeError(w, r, http.StatusUnprocessableEntity, "token is required")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		s.writeError(w, r, http.StatusUnprocessableEntity, "question is required")
		return
	}

	text, ok := s.lookupPage(w, r, req.Token)
	if !ok {
		return
	}

	answer, err := s.summarizer.Answer(ctx, text, req.Question)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to answer question",
			"error", err,
			"token", req.Token)
		s.writeError(w, r, http.StatusBadGateway, "failed to answer question")
		return
	}

	s.writeJSON(w, r, http.StatusOK, askResponse{Answer: answer})
}

func (s *Server) handleDummyData(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{
		"message": "This is dummy data for testing purposes.",
	})
}

// lookupPage fetches the page text for token and writes the error response
// itself when the lookup fails. Expired rows report the same 404 as unknown
// tokens.
func (s *Server) lookupPage(
	w http.ResponseWriter,
	r *http.Request,
	pageToken string,
) (string, bool) {
	ctx := r.Context()

	text, err := s.db.GetPage(ctx, pageToken, s.retention)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			s.log.WarnContext(ctx, "Token is not found",
				"token", pageToken)
			s.writeError(w, r, http.StatusNotFound, "token not found")
			return "", false
		}

		s.log.ErrorContext(ctx, "Failed to get page",
			"error", err,
			"token", pageToken)
		s.writeError(w, r, http.StatusInternalServerError, "internal error")
		return "", false
	}

	return text, true
}

func (s *Server) writeJSON(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	body any,
) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.ErrorContext(r.Context(), "Failed to encode response",
			"error", err,
			"path", r.URL.Path)
	}
}

func (s *Server) writeError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
) {
	s.writeJSON(w, r, status, errorResponse{Error: message})
}
