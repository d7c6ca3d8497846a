package httptransport

import (
	"context"
	"sync"
	"time"

	"github.com/apoorvrathore077/high-stake-dice-backend/internal/store"
)

type fixedRoller struct{ d1, d2 int }

func (r fixedRoller) Roll() (int, int) { return r.d1, r.d2 }

// memBackend implements the store surfaces the account and game
// services need, with the same semantics as the Postgres store.
type memBackend struct {
	mu      sync.Mutex
	users   map[string]store.User
	byEmail map[string]string
	byName  map[string]string
	games   []store.GameRecord
}

func newMemBackend() *memBackend {
	return &memBackend{
		users:   map[string]store.User{},
		byEmail: map[string]string{},
		byName:  map[string]string{},
	}
}

func (m *memBackend) CreateUser(_ context.Context, p store.CreateUserParams) (store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[p.Email]; ok {
		return store.User{}, store.ErrEmailTaken
	}
	if _, ok := m.byName[p.Username]; ok {
		return store.User{}, store.ErrUsernameTaken
	}
	u := store.User{
		ID:           store.NewID(),
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Balance:      p.Balance,
		CreatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	m.byEmail[u.Email] = u.ID
	m.byName[u.Username] = u.ID
	return u, nil
}

func (m *memBackend) GetUserByID(_ context.Context, id string) (store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return store.User{}, store.ErrNotFound
	}
	return u, nil
}

func (m *memBackend) GetUserByEmail(_ context.Context, email string) (store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byEmail[email]
	if !ok {
		return store.User{}, store.ErrNotFound
	}
	return m.users[id], nil
}

func (m *memBackend) GetUserBalance(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return 0, store.ErrNotFound
	}
	return u.Balance, nil
}

func (m *memBackend) ListGamesByUser(_ context.Context, userID string, limit, offset int) ([]store.GameRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []store.GameRecord
	for i := len(m.games) - 1; i >= 0; i-- {
		if m.games[i].UserID == userID {
			all = append(all, m.games[i])
		}
	}
	if offset >= len(all) {
		return []store.GameRecord{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memBackend) CountGamesByUser(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, g := range m.games {
		if g.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *memBackend) StatsByOutcome(_ context.Context, userID string) ([]store.OutcomeStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	groups := map[string]*store.OutcomeStats{}
	for _, g := range m.games {
		if g.UserID != userID {
			continue
		}
		st, ok := groups[g.Outcome]
		if !ok {
			st = &store.OutcomeStats{Outcome: g.Outcome}
			groups[g.Outcome] = st
		}
		st.Count++
		st.TotalStake += g.Stake
		st.TotalWinnings += g.Winnings
	}
	out := []store.OutcomeStats{}
	for _, outcome := range []string{"loss", "win"} {
		if st, ok := groups[outcome]; ok {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (m *memBackend) SettleRound(_ context.Context, p store.SettleParams) (store.SettleResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[p.UserID]
	if !ok {
		return store.SettleResult{}, store.ErrNotFound
	}
	if p.Stake > u.Balance {
		return store.SettleResult{}, store.ErrInsufficientFunds
	}
	before := u.Balance
	u.Balance += p.NetGain
	m.users[p.UserID] = u
	now := time.Now()
	g := store.GameRecord{
		ID: store.NewID(), UserID: p.UserID, Stake: p.Stake,
		Dice1: p.Dice1, Dice2: p.Dice2, Outcome: p.Outcome,
		Multiplier: p.Multiplier, Winnings: p.Winnings, NetGain: p.NetGain,
		CreatedAt: now,
	}
	m.games = append(m.games, g)
	return store.SettleResult{GameID: g.ID, BalanceBefore: before, BalanceAfter: u.Balance, CreatedAt: now}, nil
}
