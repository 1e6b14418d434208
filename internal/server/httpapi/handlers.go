package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/server/models"
	"github.com/reflecta-app/reflecta/internal/server/services"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAuthRequest(w, r)
	if !ok {
		return
	}

	token, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyTaken) {
			writeError(w, http.StatusConflict, "Email already registered")
			return
		}
		s.logger.Error(r.Context(), "register failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAuthRequest(w, r)
	if !ok {
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token})
}

func (s *Server) decodeAuthRequest(w http.ResponseWriter, r *http.Request) (*authRequest, bool) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := r.Header.Get(common.IdempotencyKeyHeaderName)

	entry, created, err := s.entries.Create(r.Context(), userID(r), key, req.toModel())
	if err != nil {
		s.logger.Error(r.Context(), "create entry failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	// Replaying an idempotency key returns the original entry, not a new one.
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	writeJSON(w, status, entry)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(r, "page_size", services.DefaultPageSize)
	if pageSize < 1 {
		pageSize = services.DefaultPageSize
	}
	if pageSize > services.MaxPageSize {
		pageSize = services.MaxPageSize
	}

	entries, err := s.entries.List(r.Context(), userID(r), page, pageSize)
	if err != nil {
		s.logger.Error(r.Context(), "list entries failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list entries")
		return
	}
	if entries == nil {
		entries = []*models.Entry{}
	}

	writeJSON(w, http.StatusOK, listResponse{Entries: entries, Page: page, PageSize: pageSize})
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
