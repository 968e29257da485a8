package response

import (
	"time"

	"partner-portal/internal/usecase/commands"
	"partner-portal/internal/usecase/queries"
)

type InitiateWithdrawalResponse struct {
	Message   string    `json:"message"`
	SentTo    string    `json:"sent_to"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromInitiateResult(r *commands.InitiateWithdrawalResult) InitiateWithdrawalResponse {
	return InitiateWithdrawalResponse{
		Message:   "Verification code sent",
		SentTo:    r.MaskedEmail,
		ExpiresAt: r.ExpiresAt,
	}
}

type ConfirmWithdrawalResponse struct {
	PayoutID    string    `json:"payout_id"`
	EventID     string    `json:"event_id"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

func FromConfirmResult(r *commands.ConfirmWithdrawalResult) ConfirmWithdrawalResponse {
	return ConfirmWithdrawalResponse{
		PayoutID:    r.PayoutID.String(),
		EventID:     r.EventID.String(),
		Amount:      r.Amount.StringFixed(2),
		Status:      r.Status.String(),
		RequestedAt: r.RequestedAt,
	}
}

type PayoutHistoryItemResponse struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	EventTitle  string     `json:"event_title"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func FromPayoutHistory(items []*queries.PayoutHistoryItem) []PayoutHistoryItemResponse {
	out := make([]PayoutHistoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, PayoutHistoryItemResponse{
			ID:          item.ID.String(),
			EventID:     item.EventID.String(),
			EventTitle:  item.EventTitle,
			Amount:      item.Amount.StringFixed(2),
			Status:      item.Status,
			RequestedAt: item.RequestedAt,
			ProcessedAt: item.ProcessedAt,
		})
	}
	return out
}
