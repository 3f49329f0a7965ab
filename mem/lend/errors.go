package lend

import "errors"

var (
	// ErrLendMismatch indicates a returned region does not match the
	// ticket's recorded loan. The return is rejected and the loan stays
	// outstanding.
	ErrLendMismatch = errors.New("lend: returned region does not match loan")

	// ErrTicketConsumed indicates a return against a ticket that was
	// already settled.
	ErrTicketConsumed = errors.New("lend: ticket already returned")

	// ErrTicketAbandoned indicates a return against a ticket that was
	// abandoned and written off.
	ErrTicketAbandoned = errors.New("lend: ticket was abandoned")

	// ErrOutstandingLoans indicates a ledger audit found loans that were
	// never returned, or were abandoned.
	ErrOutstandingLoans = errors.New("lend: outstanding or leaked loans")
)
