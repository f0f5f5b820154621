package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/dto"
	"github.com/pokernight/server/internal/service/authservice"
	pkgauth "github.com/pokernight/server/pkg/auth"
	"github.com/pokernight/server/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
	sessions    *pkgauth.SessionManager
}

func New(authService Service, sessions *pkgauth.SessionManager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with username and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing username or password"
//	@Failure		409		{object}	utils.Response	"Username already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrUsernameTaken) {
			utils.RespondWithError(w, http.StatusConflict, "Username already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a user account and establish a session cookie
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing username or password"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := h.sessions.Grant(w, user.ID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Login successful",
		UserID:  user.ID,
	})
}

// Logout godoc
//
//	@Summary	Clear the session
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	dto.LogoutResponseDTO
//	@Router		/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Revoke(w)
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{
		Message: "Logout successful",
	})
}
