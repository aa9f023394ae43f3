package keccak //nolint:testpackage // testing internals

import "testing"

// Keccak-f[1600] intermediate values for the first two rounds applied to the all-zero state, one state per step.
//
//nolint:gochecknoglobals // test vectors
var trace = []struct {
	round                             int
	in, theta, rho, pi, chi, iotaStep State
}{
	{
		round:    0,
		in:       State{},
		theta:    State{},
		rho:      State{},
		pi:       State{},
		chi:      State{},
		iotaStep: State{
			0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		},
	},
	{
		round: 1,
		in: State{
			0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		},
		theta: State{
			0x0000000000000001, 0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000002,
			0x0000000000000000, 0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000002,
			0x0000000000000000, 0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000002,
			0x0000000000000000, 0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000002,
			0x0000000000000000, 0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000002,
		},
		rho: State{
			0x0000000000000001, 0x0000000000000002, 0x0000000000000000, 0x0000000000000000, 0x0000000010000000,
			0x0000000000000000, 0x0000100000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000200000,
			0x0000000000000000, 0x0000000000000400, 0x0000000000000000, 0x0000000000000000, 0x0000010000000000,
			0x0000000000000000, 0x0000200000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000200,
			0x0000000000000000, 0x0000000000000004, 0x0000000000000000, 0x0000000000000000, 0x0000000000008000,
		},
		pi: State{
			0x0000000000000001, 0x0000100000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000008000,
			0x0000000000000000, 0x0000000000200000, 0x0000000000000000, 0x0000200000000000, 0x0000000000000000,
			0x0000000000000002, 0x0000000000000000, 0x0000000000000000, 0x0000000000000200, 0x0000000000000000,
			0x0000000010000000, 0x0000000000000000, 0x0000000000000400, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000010000000000, 0x0000000000000000, 0x0000000000000004,
		},
		chi: State{
			0x0000000000000001, 0x0000100000000000, 0x0000000000008000, 0x0000000000000001, 0x0000100000008000,
			0x0000000000000000, 0x0000200000200000, 0x0000000000000000, 0x0000200000000000, 0x0000000000200000,
			0x0000000000000002, 0x0000000000000200, 0x0000000000000000, 0x0000000000000202, 0x0000000000000000,
			0x0000000010000400, 0x0000000000000000, 0x0000000000000400, 0x0000000010000000, 0x0000000000000000,
			0x0000010000000000, 0x0000000000000000, 0x0000010000000004, 0x0000000000000000, 0x0000000000000004,
		},
		iotaStep: State{
			0x0000000000008083, 0x0000100000000000, 0x0000000000008000, 0x0000000000000001, 0x0000100000008000,
			0x0000000000000000, 0x0000200000200000, 0x0000000000000000, 0x0000200000000000, 0x0000000000200000,
			0x0000000000000002, 0x0000000000000200, 0x0000000000000000, 0x0000000000000202, 0x0000000000000000,
			0x0000000010000400, 0x0000000000000000, 0x0000000000000400, 0x0000000010000000, 0x0000000000000000,
			0x0000010000000000, 0x0000000000000000, 0x0000010000000004, 0x0000000000000000, 0x0000000000000004,
		},
	},
}

func TestStepMappings(t *testing.T) {
	for _, step := range trace {
		if got, want := theta(step.in), step.theta; got != want {
			t.Errorf("round %d: theta = %016x, want = %016x", step.round, got, want)
		}

		if got, want := rho(step.theta), step.rho; got != want {
			t.Errorf("round %d: rho = %016x, want = %016x", step.round, got, want)
		}

		if got, want := pi(step.rho), step.pi; got != want {
			t.Errorf("round %d: pi = %016x, want = %016x", step.round, got, want)
		}

		if got, want := chi(step.pi), step.chi; got != want {
			t.Errorf("round %d: chi = %016x, want = %016x", step.round, got, want)
		}

		if got, want := iotaStep(step.chi, step.round), step.iotaStep; got != want {
			t.Errorf("round %d: iota = %016x, want = %016x", step.round, got, want)
		}

		if got, want := Round(step.in, step.round), step.iotaStep; got != want {
			t.Errorf("round %d: Round = %016x, want = %016x", step.round, got, want)
		}
	}
}

func TestStepMappings_Chained(t *testing.T) {
	for i := 1; i < len(trace); i++ {
		if got, want := trace[i].in, trace[i-1].iotaStep; got != want {
			t.Errorf("round %d input = %016x, want = %016x", trace[i].round, got, want)
		}
	}
}
