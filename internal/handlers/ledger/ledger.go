package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pokernight/server/internal/dto"
	"github.com/pokernight/server/internal/service/ledgerservice"
	"github.com/pokernight/server/pkg/auth"
	"github.com/pokernight/server/pkg/utils"
)

type Service interface {
	UpdateBuyIns(ctx context.Context, userID, gameID, playerID, buyIns int) error
	UpdateFinalChips(ctx context.Context, gameID, playerID, finalChips int) error
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// UpdateBuyIns godoc
//
//	@Summary		Update a player's buy-ins
//	@Description	Overwrite a roster entry's buy-in count. Requires the caller to be the game's casino man and the owner of the entry.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateBuyInsRequestDTO	true	"Update buy-ins request body"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the casino man, or not the entry's owner"
//	@Failure		404		{object}	utils.Response	"Player not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/update_buy_ins [post]
func (h *LedgerHandler) UpdateBuyIns(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UpdateBuyInsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.ledgerService.UpdateBuyIns(r.Context(), userID, req.GameID, req.PlayerID, req.BuyIns); err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrNotCasinoMan):
			utils.RespondWithError(w, http.StatusForbidden, "Only the Casino Man can update buy-ins")
		case errors.Is(err, ledgerservice.ErrPlayerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Player not found")
		case errors.Is(err, ledgerservice.ErrNotSelf):
			utils.RespondWithError(w, http.StatusForbidden, "Player must verify themselves")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update buy-ins")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Buy-ins updated successfully"})
}

// UpdateFinalChips godoc
//
//	@Summary		Update a player's final chip count
//	@Description	Overwrite a roster entry's final chip count. Any authenticated user may update any player.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateFinalChipsRequestDTO	true	"Update final chips request body"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/update_final_chips [post]
func (h *LedgerHandler) UpdateFinalChips(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFinalChipsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.ledgerService.UpdateFinalChips(r.Context(), req.GameID, req.PlayerID, req.FinalChips); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update final chips")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Final chips updated successfully"})
}
