package response

import (
	"partner-portal/internal/domain/earnings"
)

// Monetary values are serialized as fixed two-decimal strings so JSON
// clients never see floating point artifacts.

type EventBalanceResponse struct {
	EventID          string `json:"event_id"`
	Title            string `json:"title"`
	Status           string `json:"status"`
	GrossRevenue     string `json:"gross_revenue"`
	Commission       string `json:"commission"`
	NetRevenue       string `json:"net_revenue"`
	PendingClearance string `json:"pending_clearance"`
	Locked           string `json:"locked"`
	Withdrawn        string `json:"withdrawn"`
	Available        string `json:"available"`
}

type EarningsTotalsResponse struct {
	GrossRevenue     string `json:"gross_revenue"`
	Commission       string `json:"commission"`
	NetRevenue       string `json:"net_revenue"`
	PendingClearance string `json:"pending_clearance"`
	Locked           string `json:"locked"`
	Withdrawn        string `json:"withdrawn"`
	Available        string `json:"available"`
}

type EarningsStatementResponse struct {
	Events []EventBalanceResponse `json:"events"`
	Totals EarningsTotalsResponse `json:"totals"`
}

func FromEventBalance(b *earnings.EventBalance) EventBalanceResponse {
	return EventBalanceResponse{
		EventID:          b.EventID.String(),
		Title:            b.Title,
		Status:           b.Status.String(),
		GrossRevenue:     b.GrossRevenue.StringFixed(2),
		Commission:       b.Commission.StringFixed(2),
		NetRevenue:       b.NetRevenue.StringFixed(2),
		PendingClearance: b.PendingClearance.StringFixed(2),
		Locked:           b.Locked.StringFixed(2),
		Withdrawn:        b.Withdrawn.StringFixed(2),
		Available:        b.Available.StringFixed(2),
	}
}

func FromStatement(s *earnings.Statement) EarningsStatementResponse {
	events := make([]EventBalanceResponse, 0, len(s.Events))
	for i := range s.Events {
		events = append(events, FromEventBalance(&s.Events[i]))
	}
	return EarningsStatementResponse{
		Events: events,
		Totals: EarningsTotalsResponse{
			GrossRevenue:     s.Totals.GrossRevenue.StringFixed(2),
			Commission:       s.Totals.Commission.StringFixed(2),
			NetRevenue:       s.Totals.NetRevenue.StringFixed(2),
			PendingClearance: s.Totals.PendingClearance.StringFixed(2),
			Locked:           s.Totals.Locked.StringFixed(2),
			Withdrawn:        s.Totals.Withdrawn.StringFixed(2),
			Available:        s.Totals.Available.StringFixed(2),
		},
	}
}
