package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/apoorvrathore077/high-stake-dice-backend/internal/dice"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/ledger"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/store"

	"github.com/rs/zerolog/log"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Store is the read surface the service needs.
type Store interface {
	GetUserByID(ctx context.Context, id string) (store.User, error)
	ListGamesByUser(ctx context.Context, userID string, limit, offset int) ([]store.GameRecord, error)
	CountGamesByUser(ctx context.Context, userID string) (int64, error)
	StatsByOutcome(ctx context.Context, userID string) ([]store.OutcomeStats, error)
	GetUserBalance(ctx context.Context, userID string) (int64, error)
}

// Ledger is the settle boundary.
type Ledger interface {
	Settle(ctx context.Context, userID string, stake int64, res dice.Result) (store.SettleResult, error)
}

type Service struct {
	store  Store
	ledger Ledger
	roller dice.Roller
}

func NewService(st Store, led Ledger, roller dice.Roller) *Service {
	return &Service{store: st, ledger: led, roller: roller}
}

// PlaceBet settles one round for the authenticated user: validate the
// stake, roll, resolve, commit. userID must come from the verified
// token; a client-supplied id is never accepted here.
func (s *Service) PlaceBet(ctx context.Context, userID, rawStake string) (*PlaceBetResponse, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	stake, err := wagerStake(rawStake)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	// Advisory check against the snapshot; the ledger re-checks under
	// the same lock that commits the mutation.
	if stake > user.Balance {
		return nil, ErrInsufficientFunds
	}

	d1, d2 := s.roller.Roll()
	res := dice.Resolve(stake, d1, d2)

	settled, err := s.ledger.Settle(ctx, userID, stake, res)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		case errors.Is(err, ledger.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, ledger.ErrStoreUnavailable):
			return nil, ErrStoreUnavailable
		default:
			return nil, fmt.Errorf("settle: %w", err)
		}
	}

	log.Info().
		Str("user_id", userID).
		Str("game_id", settled.GameID).
		Int64("stake", stake).
		Str("outcome", string(res.Outcome)).
		Int64("net_gain", res.NetGain).
		Msg("bet settled")

	return &PlaceBetResponse{
		Game: GameResult{
			ID:         settled.GameID,
			DiceRoll:   [2]int{d1, d2},
			Sum:        res.Sum,
			Result:     string(res.Outcome),
			BetAmount:  stake,
			Multiplier: res.Multiplier,
			Winnings:   res.Winnings,
			NetGain:    res.NetGain,
		},
		User: UserBalance{
			NewBalance:      settled.BalanceAfter,
			PreviousBalance: settled.BalanceBefore,
		},
	}, nil
}

// History returns the user's settled rounds, newest first.
func (s *Service) History(ctx context.Context, userID string, page, limit int) (*HistoryResponse, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	games, err := s.store.ListGamesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	total, err := s.store.CountGamesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count games: %w", err)
	}

	items := make([]GameItem, 0, len(games))
	for _, g := range games {
		items = append(items, GameItem{
			ID:        g.ID,
			DiceRoll:  [2]int{g.Dice1, g.Dice2},
			Result:    g.Outcome,
			BetAmount: g.Stake,
			Winnings:  g.Winnings,
			NetGain:   g.NetGain,
			CreatedAt: g.CreatedAt,
		})
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &HistoryResponse{
		Games: items,
		Pagination: Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalGames:  total,
			HasNext:     int64(offset+len(items)) < total,
		},
	}, nil
}

// Stats aggregates the user's rounds by outcome. Balance and totals are
// two independent reads; under concurrent settlement they may reflect
// slightly different instants, which is fine for a display statistic.
func (s *Service) Stats(ctx context.Context, userID string) (*StatsResponse, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	stats, err := s.store.StatsByOutcome(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats by outcome: %w", err)
	}
	balance, err := s.store.GetUserBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load balance: %w", err)
	}

	items := make([]StatsItem, 0, len(stats))
	for _, st := range stats {
		items = append(items, StatsItem{
			Outcome:       st.Outcome,
			Count:         st.Count,
			TotalBet:      st.TotalStake,
			TotalWinnings: st.TotalWinnings,
		})
	}
	return &StatsResponse{CurrentBalance: balance, Stats: items}, nil
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
