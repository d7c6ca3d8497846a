package store

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Balance      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GameRecord is the immutable audit row for one settled round.
type GameRecord struct {
	ID         string
	UserID     string
	Stake      int64
	Dice1      int
	Dice2      int
	Outcome    string
	Multiplier int64
	Winnings   int64
	NetGain    int64
	CreatedAt  time.Time
}

// HistoryEntry is the denormalized per-user round summary. GameID is a
// non-owning reference to the GameRecord.
type HistoryEntry struct {
	ID        string
	UserID    string
	GameID    string
	Stake     int64
	Dice1     int
	Dice2     int
	Outcome   string
	Winnings  int64
	NetGain   int64
	CreatedAt time.Time
}

type OutcomeStats struct {
	Outcome       string
	Count         int64
	TotalStake    int64
	TotalWinnings int64
}

type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	Balance      int64
}

// SettleParams carries everything a settle transaction writes.
type SettleParams struct {
	UserID     string
	Stake      int64
	Dice1      int
	Dice2      int
	Outcome    string
	Multiplier int64
	Winnings   int64
	NetGain    int64
}

type SettleResult struct {
	GameID        string
	BalanceBefore int64
	BalanceAfter  int64
	CreatedAt     time.Time
}
