package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// historyCap bounds the per-user history to the most recent rounds.
const historyCap = 50

// SettleRound commits one round as a single transaction: the balance
// row is locked, funds are re-checked, and the balance update, game
// record insert and history append either all commit or none do. The
// row lock serializes concurrent rounds for the same user; rounds for
// different users do not contend.
func (s *Store) SettleRound(ctx context.Context, p SettleParams) (SettleResult, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return SettleResult{}, err
	}
	defer tx.Rollback(ctx)

	var bal int64
	row := tx.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, p.UserID)
	if err := row.Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SettleResult{}, ErrNotFound
		}
		return SettleResult{}, err
	}
	if p.Stake > bal {
		return SettleResult{}, ErrInsufficientFunds
	}

	newBal := bal + p.NetGain
	if _, err := tx.Exec(ctx, `UPDATE users SET balance = $1, updated_at = now() WHERE id = $2`, newBal, p.UserID); err != nil {
		return SettleResult{}, err
	}

	gameID := NewID()
	var createdAt time.Time
	r := tx.QueryRow(ctx, `
		INSERT INTO games (id, user_id, stake, dice1, dice2, outcome, multiplier, winnings, net_gain)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`, gameID, p.UserID, p.Stake, p.Dice1, p.Dice2, p.Outcome, p.Multiplier, p.Winnings, p.NetGain)
	if err := r.Scan(&createdAt); err != nil {
		return SettleResult{}, err
	}

	if err := appendHistoryTx(ctx, tx, gameID, p); err != nil {
		return SettleResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return SettleResult{}, err
	}
	return SettleResult{
		GameID:        gameID,
		BalanceBefore: bal,
		BalanceAfter:  newBal,
		CreatedAt:     createdAt,
	}, nil
}

func (s *Store) ListGamesByUser(ctx context.Context, userID string, limit, offset int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.Pool.Query(ctx, `
		SELECT id, user_id, stake, dice1, dice2, outcome, multiplier, winnings, net_gain, created_at
		FROM games
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []GameRecord{}
	for rows.Next() {
		var g GameRecord
		if err := rows.Scan(&g.ID, &g.UserID, &g.Stake, &g.Dice1, &g.Dice2, &g.Outcome, &g.Multiplier, &g.Winnings, &g.NetGain, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) CountGamesByUser(ctx context.Context, userID string) (int64, error) {
	row := s.Pool.QueryRow(ctx, `SELECT COUNT(1) FROM games WHERE user_id = $1`, userID)
	var c int64
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (s *Store) StatsByOutcome(ctx context.Context, userID string) ([]OutcomeStats, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT outcome, COUNT(1), COALESCE(SUM(stake), 0), COALESCE(SUM(winnings), 0)
		FROM games
		WHERE user_id = $1
		GROUP BY outcome
		ORDER BY outcome ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []OutcomeStats{}
	for rows.Next() {
		var st OutcomeStats
		if err := rows.Scan(&st.Outcome, &st.Count, &st.TotalStake, &st.TotalWinnings); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
