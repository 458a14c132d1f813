// Package session implements the interactive command loop.
//
// A [Controller] owns the state of one session: the matrix display
// flag, the last games/sets given to run, and the running total of
// wins and losses. Lines are dispatched through a fixed command table:
//
//	run [<games> <sets>]  simulate and add the result to the total
//	matrix                toggle grid printing
//	total                 print the running total
//	help                  print the command list
//
// The loop ends on end of input. Interrupts are absorbed and the loop
// keeps reading.
package session
