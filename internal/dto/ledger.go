package dto

type UpdateBuyInsRequestDTO struct {
	GameID   int `json:"game_id"`
	PlayerID int `json:"player_id"`
	BuyIns   int `json:"buy_ins"`
}

type UpdateFinalChipsRequestDTO struct {
	GameID     int `json:"game_id"`
	PlayerID   int `json:"player_id"`
	FinalChips int `json:"final_chips"`
}
