package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/garnizeh/skillswap/internal/auth"
	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/repository"
)

type AuthHandler struct {
	userRepo      repository.UserRepo
	verifier      auth.Verifier
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
// Stored credentials are bcrypt hashes.
func NewAuthHandler(ur repository.UserRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{userRepo: ur, verifier: auth.BcryptVerifier{}, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the user record inlined plus the issued token, so
// clients can keep treating the reply as a user object.
type loginResponse struct {
	models.User
	Token string `json:"token,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}

	user, err := h.userRepo.GetByEmail(r.Context(), req.Email)
	if err != nil || user == nil {
		writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if !h.verifier.Verify(user.Password, req.Password) {
		writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	tokenStr, err := h.issueToken(user)
	if err != nil {
		writeError(w, "error signing token", http.StatusInternalServerError)
		return
	}

	out := *user
	out.Password = ""
	writeJSON(w, loginResponse{User: out, Token: tokenStr}, http.StatusOK)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.User
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if existing, err := h.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		writeError(w, "email already registered", http.StatusConflict)
		return
	}

	hash, err := auth.BcryptHash(req.Password)
	if err != nil {
		writeError(w, "error hashing password", http.StatusInternalServerError)
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if req.Rating == 0 && req.ReviewCount == 0 {
		req.Rating = 5.0
	}
	if req.SkillsOffered == nil {
		req.SkillsOffered = []models.Skill{}
	}
	if req.SkillsRequested == nil {
		req.SkillsRequested = []models.Skill{}
	}
	req.Password = hash

	if err := h.userRepo.CreateUser(ctx, &req); err != nil {
		writeError(w, "error creating user", http.StatusInternalServerError)
		return
	}

	req.Password = ""
	writeJSON(w, req, http.StatusCreated)
}

func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(h.tokenDuration).Unix(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}
