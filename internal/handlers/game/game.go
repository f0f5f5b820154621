package game

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/dto"
	"github.com/pokernight/server/internal/service/gameservice"
	"github.com/pokernight/server/pkg/utils"
)

type Service interface {
	CreateGame(ctx context.Context, name string, ratio float64, casinoManType string, selectedID int) (*domain.Game, error)
	AddPlayer(ctx context.Context, gameID, userID int) (*domain.Player, error)
}

type GameHandler struct {
	gameService Service
}

func New(gameService Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// CreateGame godoc
//
//	@Summary		Create a new game
//	@Description	Create a game with a chip-to-money ratio and a casino man picked randomly or explicitly
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGameRequestDTO	true	"Create game request body"
//	@Success		201		{object}	dto.CreateGameResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields or invalid casino man selection"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Selected casino man not found"
//	@Failure		409		{object}	utils.Response	"Game name already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/create_game [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GameName == "" || req.ChipToMoneyRatio <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Game name and chip to money ratio are required")
		return
	}
	game, err := h.gameService.CreateGame(r.Context(), req.GameName, req.ChipToMoneyRatio, req.CasinoManType, req.SelectedCasinoManID)
	if err != nil {
		switch {
		case errors.Is(err, gameservice.ErrInvalidCasinoMan):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid casino man selection")
		case errors.Is(err, gameservice.ErrCasinoManNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Casino man not found")
		case errors.Is(err, gameservice.ErrGameNameTaken):
			utils.RespondWithError(w, http.StatusConflict, "Game name already exists")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create game")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateGameResponseDTO{
		Message:     "Game created successfully",
		GameID:      game.ID,
		CasinoManID: game.CasinoManID,
	})
}

// AddPlayer godoc
//
//	@Summary		Add a player to a game
//	@Description	Put an existing user on the game's roster with zero buy-ins and final chips
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddPlayerRequestDTO	true	"Add player request body"
//	@Success		201		{object}	dto.AddPlayerResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing game or user id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Game or user not found"
//	@Failure		409		{object}	utils.Response	"Player already added to game"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/add_player [post]
func (h *GameHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req dto.AddPlayerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GameID == 0 || req.UserID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Game ID and User ID are required")
		return
	}
	if _, err := h.gameService.AddPlayer(r.Context(), req.GameID, req.UserID); err != nil {
		switch {
		case errors.Is(err, gameservice.ErrGameNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Game not found")
		case errors.Is(err, gameservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, gameservice.ErrPlayerInGame):
			utils.RespondWithError(w, http.StatusConflict, "Player already added to game")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add player")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AddPlayerResponseDTO{
		Message: "Player added successfully",
	})
}
