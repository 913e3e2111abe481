package settlement

import "context"

type Repository interface {
	// Settle flips the schedule's status from pending to done and writes one
	// payment row per share in a single transaction.
	Settle(ctx context.Context, scheduleID int, shares []Share) error
}
