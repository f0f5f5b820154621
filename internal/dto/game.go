package dto

type CreateGameRequestDTO struct {
	GameName            string  `json:"game_name"`
	ChipToMoneyRatio    float64 `json:"chip_to_money_ratio"`
	CasinoManType       string  `json:"casino_man_type"`
	SelectedCasinoManID int     `json:"selected_casino_man_id,omitempty"`
}

type CreateGameResponseDTO struct {
	Message     string `json:"message"`
	GameID      int    `json:"game_id"`
	CasinoManID int    `json:"casino_man_id"`
}

type AddPlayerRequestDTO struct {
	GameID int `json:"game_id"`
	UserID int `json:"user_id"`
}

type AddPlayerResponseDTO struct {
	Message string `json:"message"`
}
