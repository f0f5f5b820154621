package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Game struct {
	ID               int       `db:"id"`
	GameName         string    `db:"game_name"`
	ChipToMoneyRatio float64   `db:"chip_to_money_ratio"`
	CasinoManID      int       `db:"casino_man_id"`
	CreatedAt        time.Time `db:"created_at"`
}

// Player is a user's roster entry in a single game.
type Player struct {
	ID         int `db:"id"`
	GameID     int `db:"game_id"`
	UserID     int `db:"user_id"`
	BuyIns     int `db:"buy_ins"`
	FinalChips int `db:"final_chips"`
}

// RosterEntry is a player row joined with the owning user's name.
type RosterEntry struct {
	PlayerID   int
	Username   string
	BuyIns     int
	FinalChips int
}

// PlayerResult is one player's settled monetary outcome. A negative amount
// means the player owes money, a positive one means the pot owes the player.
type PlayerResult struct {
	PlayerID   int
	Username   string
	BuyIns     int
	FinalChips int
	Amount     float64
}

// Settlement is the full outcome of a game.
type Settlement struct {
	GameID   int
	GameName string
	Results  []PlayerResult
}

type Transaction struct {
	ID        int       `db:"id"`
	GameID    int       `db:"game_id"`
	PlayerID  int       `db:"player_id"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

type GameStats struct {
	TotalPlayers int
	TotalBuyIns  int
}

type UserStats struct {
	TotalGames  int
	TotalBuyIns int
}
