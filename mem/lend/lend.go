// Package lend implements a borrow/return protocol for memory regions.
//
// Lending hands a region to a borrower while the lender retains
// accountability for its return: each loan is recorded in a Ticket that
// must be consumed by returning the identical region. A Ledger aggregates
// tickets so the lender can audit what is still outstanding and what was
// abandoned without a return.
package lend

import (
	"github.com/joshuapare/memkit/mem"
)

// Ticket records one outstanding loan: the exact region handed to the
// borrower. It exists from loan to return; a Ticket that is abandoned
// without a matching return is a leak in the lender's accounting and is
// flagged, not silently dropped.
type Ticket struct {
	ledger *Ledger
	region mem.Region
	state  ticketState
}

type ticketState uint8

const (
	ticketOutstanding ticketState = iota
	ticketReturned
	ticketAbandoned
)

// Lend records a loan of r and returns the ticket for it. The caller
// hands r itself to the borrower.
func Lend(r mem.Region) *Ticket {
	return &Ticket{region: r}
}

// Region returns the span recorded at loan time.
func (t *Ticket) Region() mem.Region { return t.region }

// Outstanding reports whether the loan has been neither returned nor
// abandoned.
func (t *Ticket) Outstanding() bool { return t.state == ticketOutstanding }

// Return settles the loan with r.
//
// It succeeds only if r is bit-identical to the region lent (same base,
// same length) and the ticket is still outstanding. On success the ticket
// is consumed; no further return is possible. On ErrLendMismatch the
// ticket is untouched and the original loan remains outstanding.
func (t *Ticket) Return(r mem.Region) error {
	switch t.state {
	case ticketReturned:
		return ErrTicketConsumed
	case ticketAbandoned:
		return ErrTicketAbandoned
	}
	if !r.Equal(t.region) {
		return ErrLendMismatch
	}
	t.state = ticketReturned
	if t.ledger != nil {
		t.ledger.outstanding--
	}
	return nil
}

// Abandon gives up on the loan without a return. The borrowed region is
// written off: it counts as leaked in the ledger's accounting from here
// on. Abandoning an already settled ticket is a no-op.
func (t *Ticket) Abandon() {
	if t.state != ticketOutstanding {
		return
	}
	t.state = ticketAbandoned
	if t.ledger != nil {
		t.ledger.outstanding--
		t.ledger.leaked++
	}
}

// Ledger tracks a lender's open loans. The zero Ledger is ready to use.
//
// Not thread-safe; one ledger belongs to one lender.
type Ledger struct {
	outstanding int
	leaked      int
}

// Lend records a loan of r against the ledger and returns its ticket.
func (l *Ledger) Lend(r mem.Region) *Ticket {
	l.outstanding++
	return &Ticket{ledger: l, region: r}
}

// Outstanding returns the number of loans not yet returned or abandoned.
func (l *Ledger) Outstanding() int { return l.outstanding }

// Leaked returns the number of loans abandoned without a return.
func (l *Ledger) Leaked() int { return l.leaked }

// Audit returns nil when every loan has been returned and none leaked,
// ErrOutstandingLoans otherwise. Intended for shutdown paths and tests.
func (l *Ledger) Audit() error {
	if l.outstanding != 0 || l.leaked != 0 {
		return ErrOutstandingLoans
	}
	return nil
}
