package fund

import "time"

// Fund is a single contribution into the club fund. Contributions are
// append-only; a member's balance is derived, never stored.
type Fund struct {
	ID        int       `db:"id" json:"id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	Amount    float64   `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateFundRequest struct {
	MemberID int     `json:"member_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

// MemberFinancialInfo is the derived financial position of one member.
type MemberFinancialInfo struct {
	MemberID      int     `json:"member_id"`
	TotalFunds    float64 `json:"total_funds"`
	TotalPayments float64 `json:"total_payments"`
	Balance       float64 `json:"balance"`
}
