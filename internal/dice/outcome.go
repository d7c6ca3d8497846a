package dice

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// WinMultiplier is the fixed payout multiplier for a winning round.
const WinMultiplier = 2

// Result is the fully computed outcome of one round.
//
// Winnings is the total payout figure (stake * multiplier); NetGain is
// the signed profit applied to the balance. Both are reported, neither
// is derived from the other at read time.
type Result struct {
	Dice1      int
	Dice2      int
	Sum        int
	Outcome    Outcome
	Multiplier int64
	Winnings   int64
	NetGain    int64
}

// Resolve classifies a roll: a sum of 7 or 11 wins at the fixed
// multiplier, everything else loses the stake.
func Resolve(stake int64, dice1, dice2 int) Result {
	r := Result{
		Dice1: dice1,
		Dice2: dice2,
		Sum:   dice1 + dice2,
	}
	if r.Sum == 7 || r.Sum == 11 {
		r.Outcome = OutcomeWin
		r.Multiplier = WinMultiplier
		r.Winnings = stake * WinMultiplier
		r.NetGain = stake
	} else {
		r.Outcome = OutcomeLoss
		r.NetGain = -stake
	}
	return r
}
