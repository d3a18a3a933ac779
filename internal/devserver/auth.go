package devserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/utils"
	"github.com/medvision-ai/medvision-client/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleDoctor
	}
	if !role.Valid() {
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := models.User{
		ID:        utils.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      role,
		CreatedAt: time.Now(),
	}

	key := strings.ToLower(req.Email)

	h.mu.Lock()
	if _, exists := h.accounts[key]; exists {
		h.mu.Unlock()
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	h.accounts[key] = account{user: user, passwordHash: hash}
	h.mu.Unlock()

	h.respondWithToken(w, log, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.mu.Lock()
	acc, exists := h.accounts[strings.ToLower(req.Email)]
	h.mu.Unlock()

	if !exists || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	h.respondWithToken(w, log, acc.user)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, log *logger.Logger, user models.User) {
	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, user.ID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{User: user, Token: token})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Message: message})
}
