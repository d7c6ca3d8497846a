package game

import "time"

type PlaceBetResponse struct {
	Game GameResult  `json:"game"`
	User UserBalance `json:"user"`
}

type GameResult struct {
	ID        string `json:"id"`
	DiceRoll  [2]int `json:"dice_roll"`
	Sum       int    `json:"sum"`
	Result    string `json:"result"`
	BetAmount int64  `json:"bet_amount"`
	// Multiplier/Winnings report the total-return figure; NetGain is
	// the amount actually applied to the balance. Both are kept.
	Multiplier int64 `json:"multiplier"`
	Winnings   int64 `json:"winnings"`
	NetGain    int64 `json:"net_gain"`
}

type UserBalance struct {
	NewBalance      int64 `json:"new_balance"`
	PreviousBalance int64 `json:"previous_balance"`
}

type HistoryResponse struct {
	Games      []GameItem `json:"games"`
	Pagination Pagination `json:"pagination"`
}

type GameItem struct {
	ID        string    `json:"id"`
	DiceRoll  [2]int    `json:"dice_roll"`
	Result    string    `json:"result"`
	BetAmount int64     `json:"bet_amount"`
	Winnings  int64     `json:"winnings"`
	NetGain   int64     `json:"net_gain"`
	CreatedAt time.Time `json:"created_at"`
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalGames  int64 `json:"total_games"`
	HasNext     bool  `json:"has_next"`
}

type StatsResponse struct {
	CurrentBalance int64       `json:"current_balance"`
	Stats          []StatsItem `json:"stats"`
}

type StatsItem struct {
	Outcome       string `json:"outcome"`
	Count         int64  `json:"count"`
	TotalBet      int64  `json:"total_bet"`
	TotalWinnings int64  `json:"total_winnings"`
}
