// Package keccak implements the Keccak-p[1600, n] family of permutations from FIPS 202.
package keccak

import "fmt"

// Round applies round ir of Keccak-f[1600] to a and returns the result. It panics if ir is outside [0, Rounds).
func Round(a State, ir int) State {
	if ir < 0 || ir >= Rounds {
		panic(fmt.Sprintf("shake128: invalid round index %d", ir))
	}
	return iotaStep(chi(pi(rho(theta(a)))), ir)
}

// P1600 applies the Keccak-p[1600, rounds] permutation to the state: the last rounds rounds of Keccak-f[1600], with
// round indexes Rounds-rounds through Rounds-1. It panics if rounds is outside [0, Rounds].
func P1600(s *State, rounds int) {
	if rounds < 0 || rounds > Rounds {
		panic(fmt.Sprintf("shake128: invalid round count %d", rounds))
	}

	a := *s
	for ir := Rounds - rounds; ir < Rounds; ir++ {
		a = Round(a, ir)
	}
	*s = a
}

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(s *State) {
	P1600(s, Rounds)
}

