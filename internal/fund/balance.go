package fund

import "github.com/duonglna/hoibongcuoinhandao/internal/payment"

// ComputeBalance reduces a member's contributions and settled shares into
// their financial position: balance = total funds - total payments. Both
// inputs may be empty; a member with no rows has a zero balance. The result
// does not depend on row order.
func ComputeBalance(memberID int, funds []Fund, payments []payment.Payment) MemberFinancialInfo {
	info := MemberFinancialInfo{MemberID: memberID}

	for _, f := range funds {
		info.TotalFunds += f.Amount
	}
	for _, p := range payments {
		info.TotalPayments += p.Total()
	}

	info.Balance = info.TotalFunds - info.TotalPayments
	return info
}
