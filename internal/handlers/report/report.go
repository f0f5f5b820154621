package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/dto"
	"github.com/pokernight/server/internal/service/settlementservice"
	"github.com/pokernight/server/pkg/utils"
)

type Service interface {
	SuggestPlayers(ctx context.Context) ([]domain.User, error)
	GameStats(ctx context.Context, gameID int) (*domain.GameStats, error)
	UserStats(ctx context.Context, userID int) (*domain.UserStats, error)
	GamePlayers(ctx context.Context, gameID int) ([]domain.RosterEntry, error)
	GameTransactions(ctx context.Context, gameID int) ([]domain.Transaction, error)
}

type SettlementService interface {
	CalculateResults(ctx context.Context, gameID int) (*domain.Settlement, error)
	RecordResults(ctx context.Context, gameID int) (*domain.Settlement, error)
}

type ReportHandler struct {
	reportService     Service
	settlementService SettlementService
}

func New(reportService Service, settlementService SettlementService) *ReportHandler {
	return &ReportHandler{
		reportService:     reportService,
		settlementService: settlementService,
	}
}

// SuggestPlayers godoc
//
//	@Summary		List all users
//	@Description	Autocomplete source for roster building; every registered user is a candidate
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{array}		dto.UserSuggestionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/suggest_players [get]
func (h *ReportHandler) SuggestPlayers(w http.ResponseWriter, r *http.Request) {
	users, err := h.reportService.SuggestPlayers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user suggestions")
		return
	}
	response := make([]dto.UserSuggestionDTO, 0, len(users))
	for _, user := range users {
		response = append(response, dto.UserSuggestionDTO{
			ID:       user.ID,
			Username: user.Username,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CalculateResults godoc
//
//	@Summary		Calculate game results
//	@Description	Compute each player's monetary outcome from buy-ins, final chips and the game's ratio. Read-only.
//	@Tags			Reports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CalculateResultsRequestDTO	true	"Calculate results request body"
//	@Success		200		{object}	dto.CalculateResultsResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/calculate_results [post]
func (h *ReportHandler) CalculateResults(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateResultsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	settlement, err := h.settlementService.CalculateResults(r.Context(), req.GameID)
	if err != nil {
		if errors.Is(err, settlementservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Game not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to calculate results")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CalculateResultsResponseDTO{
		Results:  toResultDTOs(settlement.Results),
		GameName: settlement.GameName,
	})
}

// RecordResults godoc
//
//	@Summary		Record game results
//	@Description	Compute the settlement and persist one transaction per player for audit
//	@Tags			Reports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CalculateResultsRequestDTO	true	"Record results request body"
//	@Success		200		{object}	dto.RecordResultsResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/record_results [post]
func (h *ReportHandler) RecordResults(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateResultsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	settlement, err := h.settlementService.RecordResults(r.Context(), req.GameID)
	if err != nil {
		if errors.Is(err, settlementservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Game not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record results")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RecordResultsResponseDTO{
		Message:  "Results recorded successfully",
		GameName: settlement.GameName,
		Results:  toResultDTOs(settlement.Results),
	})
}

// GameStats godoc
//
//	@Summary		Game statistics
//	@Description	Total players and total buy-ins for one game; both are zero for an empty roster
//	@Tags			Reports
//	@Produce		json
//	@Param			gameID	path		int	true	"Game ID"
//	@Success		200		{object}	dto.GameStatsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid game id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/game_stats/{gameID} [get]
func (h *ReportHandler) GameStats(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}
	stats, err := h.reportService.GameStats(r.Context(), gameID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch game stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GameStatsResponseDTO{
		TotalPlayers: stats.TotalPlayers,
		TotalBuyIns:  stats.TotalBuyIns,
	})
}

// UserStats godoc
//
//	@Summary		User statistics
//	@Description	Distinct games joined and total buy-ins across all games for one user
//	@Tags			Reports
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.UserStatsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/user_stats/{userID} [get]
func (h *ReportHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	stats, err := h.reportService.UserStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserStatsResponseDTO{
		TotalGames:  stats.TotalGames,
		TotalBuyIns: stats.TotalBuyIns,
	})
}

// GamePlayers godoc
//
//	@Summary		Game roster
//	@Description	Roster entries for a game as (player id, username) pairs
//	@Tags			Reports
//	@Produce		json
//	@Param			gameID	path		int	true	"Game ID"
//	@Success		200		{array}		dto.GamePlayerDTO
//	@Failure		400		{object}	utils.Response	"Invalid game id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/game_players/{gameID} [get]
func (h *ReportHandler) GamePlayers(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}
	entries, err := h.reportService.GamePlayers(r.Context(), gameID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch players for game")
		return
	}
	response := make([]dto.GamePlayerDTO, 0, len(entries))
	for _, entry := range entries {
		response = append(response, dto.GamePlayerDTO{
			ID:       entry.PlayerID,
			Username: entry.Username,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GameTransactions godoc
//
//	@Summary		Recorded settlements for a game
//	@Tags			Reports
//	@Produce		json
//	@Param			gameID	path		int	true	"Game ID"
//	@Success		200		{array}		dto.GameTransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid game id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/game_transactions/{gameID} [get]
func (h *ReportHandler) GameTransactions(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}
	transactions, err := h.reportService.GameTransactions(r.Context(), gameID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch game transactions")
		return
	}
	response := make([]dto.GameTransactionDTO, 0, len(transactions))
	for _, txn := range transactions {
		response = append(response, dto.GameTransactionDTO{
			ID:        txn.ID,
			PlayerID:  txn.PlayerID,
			Amount:    txn.Amount,
			CreatedAt: txn.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResultDTOs(results []domain.PlayerResult) []dto.PlayerResultDTO {
	out := make([]dto.PlayerResultDTO, 0, len(results))
	for _, result := range results {
		out = append(out, dto.PlayerResultDTO{
			PlayerID:   result.PlayerID,
			Username:   result.Username,
			BuyIns:     result.BuyIns,
			FinalChips: result.FinalChips,
			Amount:     result.Amount,
		})
	}
	return out
}
