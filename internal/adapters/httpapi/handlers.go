package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"go.uber.org/zap"
)

type analyzeEmailRequest struct {
	EmailContent string `json:"emailContent"`
}

type checkHomographRequest struct {
	URLs []string `json:"urls"`
}

type checkHomographResponse struct {
	Homographs []core.HomographFinding `json:"homographs"`
}

type checkAuthRequest struct {
	Domain string `json:"domain"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyzeEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req analyzeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email content is required")
		return
	}

	result, err := s.service.AnalyzeEmail(r.Context(), req.EmailContent)
	if err != nil {
		if core.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, "Email content is required")
			return
		}
		// Internal detail stays in the log; callers get a generic failure.
		s.logger.Error("Email analysis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCheckHomograph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req checkHomographRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "URLs array is required")
		return
	}

	findings, err := s.service.CheckHomographs(req.URLs)
	if err != nil {
		if core.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, "URLs array is required")
			return
		}
		s.logger.Error("Homograph detection failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Homograph detection failed")
		return
	}

	writeJSON(w, http.StatusOK, checkHomographResponse{Homographs: findings})
}

func (s *Server) handleCheckSPFDKIM(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req checkAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Domain is required")
		return
	}

	result, err := s.service.CheckDomainAuthentication(r.Context(), req.Domain)
	if err != nil {
		if core.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, "Domain is required")
			return
		}
		s.logger.Error("Authentication check failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Authentication check failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
