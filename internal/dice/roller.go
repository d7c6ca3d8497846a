package dice

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// Roller draws one pair of dice, each in [1,6].
type Roller interface {
	Roll() (int, int)
}

// RandRoller draws from math/rand's shared source. Fine for play-money
// odds; use CryptoRoller if stakes ever represent real value.
type RandRoller struct{}

func (RandRoller) Roll() (int, int) {
	return mathrand.Intn(6) + 1, mathrand.Intn(6) + 1
}

// CryptoRoller draws from crypto/rand.
type CryptoRoller struct{}

func (CryptoRoller) Roll() (int, int) {
	return cryptoDie(), cryptoDie()
}

func cryptoDie() int {
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand failing is not a recoverable condition
			panic(err)
		}
		v := binary.BigEndian.Uint64(buf[:])
		// reject the tail that would bias the modulo
		if v < (^uint64(0)/6)*6 {
			return int(v%6) + 1
		}
	}
}
