package dto

type UserSuggestionDTO struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type GamePlayerDTO struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type GameStatsResponseDTO struct {
	TotalPlayers int `json:"total_players"`
	TotalBuyIns  int `json:"total_buy_ins"`
}

type UserStatsResponseDTO struct {
	TotalGames  int `json:"total_games"`
	TotalBuyIns int `json:"total_buy_ins"`
}

type CalculateResultsRequestDTO struct {
	GameID int `json:"game_id"`
}

type PlayerResultDTO struct {
	PlayerID   int     `json:"player_id"`
	Username   string  `json:"username"`
	BuyIns     int     `json:"buy_ins"`
	FinalChips int     `json:"final_chips"`
	Amount     float64 `json:"amount"`
}

type CalculateResultsResponseDTO struct {
	Results  []PlayerResultDTO `json:"results"`
	GameName string            `json:"game_name"`
}

type RecordResultsResponseDTO struct {
	Message  string            `json:"message"`
	GameName string            `json:"game_name"`
	Results  []PlayerResultDTO `json:"results"`
}

type GameTransactionDTO struct {
	ID        int     `json:"id"`
	PlayerID  int     `json:"player_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}
