// Package sampling selects which decoded frames are retained at a target
// output rate using an open-loop leaky accumulator.
package sampling
