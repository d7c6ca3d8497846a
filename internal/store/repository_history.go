package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// appendHistoryTx appends the round summary and evicts the oldest rows
// beyond the cap. Runs only inside a settle transaction so history can
// never diverge from the ledger state. ULIDs sort by creation time, so
// ordering by id is chronological.
func appendHistoryTx(ctx context.Context, tx pgx.Tx, gameID string, p SettleParams) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO game_history (id, user_id, game_id, stake, dice1, dice2, outcome, winnings, net_gain)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, NewID(), p.UserID, gameID, p.Stake, p.Dice1, p.Dice2, p.Outcome, p.Winnings, p.NetGain)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM game_history
		WHERE user_id = $1
		  AND id NOT IN (
			SELECT id FROM game_history WHERE user_id = $1 ORDER BY id DESC LIMIT $2
		  )
	`, p.UserID, historyCap)
	return err
}

// ListHistoryByUser returns the retained round summaries in
// chronological order, oldest first.
func (s *Store) ListHistoryByUser(ctx context.Context, userID string) ([]HistoryEntry, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, user_id, game_id, stake, dice1, dice2, outcome, winnings, net_gain, created_at
		FROM game_history
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []HistoryEntry{}
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.GameID, &e.Stake, &e.Dice1, &e.Dice2, &e.Outcome, &e.Winnings, &e.NetGain, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
