package keccak

// theta XORs each lane with the parity of the column to its left and the parity of the column to its right rotated
// by one bit.
func theta(a State) State {
	var c [5]uint64
	for x := range 5 {
		c[x] = a[index(x, 0)] ^ a[index(x, 1)] ^ a[index(x, 2)] ^ a[index(x, 3)] ^ a[index(x, 4)]
	}

	var b State
	for x := range 5 {
		d := c[(x+4)%5] ^ rotl(c[(x+1)%5], 1)
		for y := range 5 {
			b[index(x, y)] = a[index(x, y)] ^ d
		}
	}
	return b
}

// rho rotates each lane by its fixed offset.
func rho(a State) State {
	var b State
	for i, l := range a {
		b[i] = rotl(l, rotations[i])
	}
	return b
}

// pi moves the lane at (x+3y, x) to (x, y).
func pi(a State) State {
	var b State
	for y := range 5 {
		for x := range 5 {
			b[index(x, y)] = a[index(x+3*y, x)]
		}
	}
	return b
}

// chi is the only non-linear step: each lane is XORed with the AND of the complement of its right neighbour and the
// lane two to its right.
func chi(a State) State {
	var b State
	for y := range 5 {
		for x := range 5 {
			b[index(x, y)] = a[index(x, y)] ^ (^a[index(x+1, y)] & a[index(x+2, y)])
		}
	}
	return b
}

// iotaStep XORs the constant for round ir into lane (0, 0).
func iotaStep(a State, ir int) State {
	a[0] ^= roundConstants[ir]
	return a
}
