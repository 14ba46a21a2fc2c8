// Package move contains the Move aggregate and its status state machine.
//
// The Move aggregate owns the lifecycle of a booked move from acceptance
// through delivery to completion. Every status write flows through the
// aggregate's guarded transition methods, which enforce both the fixed
// forward-only transition table and the assignment of the acting mover.
package move
