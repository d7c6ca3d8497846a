package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/apoorvrathore077/high-stake-dice-backend/internal/dice"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/store"

	"github.com/rs/zerolog/log"
)

var (
	ErrInsufficientFunds = errors.New("insufficient_funds")
	ErrUserNotFound      = errors.New("user_not_found")
	ErrStoreUnavailable  = errors.New("store_unavailable")
)

const defaultTimeout = 5 * time.Second

// Store is the persistence surface the ledger needs: one atomic
// compound write per round.
type Store interface {
	SettleRound(ctx context.Context, p store.SettleParams) (store.SettleResult, error)
}

// Ledger owns the settle boundary. Each call commits the balance
// delta, the game record and the history append as one unit, or
// nothing at all. Callers must invoke Settle at most once per logically
// distinct round; retries are new rounds.
type Ledger struct {
	store   Store
	timeout time.Duration
}

func New(s Store) *Ledger {
	return &Ledger{store: s, timeout: defaultTimeout}
}

func NewWithTimeout(s Store, timeout time.Duration) *Ledger {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Ledger{store: s, timeout: timeout}
}

// Settle applies one resolved round to a user's balance. Funds are
// re-checked inside the store transaction, so a concurrent round that
// drained the balance since validation aborts here with
// ErrInsufficientFunds and zero side effects.
func (l *Ledger) Settle(ctx context.Context, userID string, stake int64, res dice.Result) (store.SettleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	out, err := l.store.SettleRound(ctx, store.SettleParams{
		UserID:     userID,
		Stake:      stake,
		Dice1:      res.Dice1,
		Dice2:      res.Dice2,
		Outcome:    string(res.Outcome),
		Multiplier: res.Multiplier,
		Winnings:   res.Winnings,
		NetGain:    res.NetGain,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInsufficientFunds):
			return store.SettleResult{}, ErrInsufficientFunds
		case errors.Is(err, store.ErrNotFound):
			return store.SettleResult{}, ErrUserNotFound
		default:
			log.Error().Err(err).Str("user_id", userID).Msg("settle round failed")
			return store.SettleResult{}, ErrStoreUnavailable
		}
	}
	return out, nil
}
