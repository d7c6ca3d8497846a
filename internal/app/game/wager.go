package game

import (
	"errors"

	"github.com/apoorvrathore077/high-stake-dice-backend/internal/wager"
)

func wagerStake(raw string) (int64, error) {
	stake, err := wager.ParseStake(raw)
	if err != nil {
		if errors.Is(err, wager.ErrInvalidAmount) {
			return 0, ErrInvalidAmount
		}
		return 0, err
	}
	return stake, nil
}
