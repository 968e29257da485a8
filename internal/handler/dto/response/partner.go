package response

import (
	"strings"

	"partner-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type PartnerProfileResponse struct {
	ID                uuid.UUID `json:"id"`
	CompanyName       string    `json:"company_name"`
	BankName          *string   `json:"bank_name,omitempty"`
	BankAccountName   *string   `json:"bank_account_name,omitempty"`
	BankAccountNumber *string   `json:"bank_account_number,omitempty"`
	HasBankDetails    bool      `json:"has_bank_details"`
}

func FromPartnerProfile(v *queries.PartnerView) PartnerProfileResponse {
	res := PartnerProfileResponse{
		ID:              v.ID,
		CompanyName:     v.CompanyName,
		BankName:        v.BankName,
		BankAccountName: v.BankAccountName,
		HasBankDetails:  v.HasBankDetails(),
	}
	if v.BankAccountNumber != nil {
		masked := maskAccountNumber(*v.BankAccountNumber)
		res.BankAccountNumber = &masked
	}
	return res
}

// maskAccountNumber keeps the last four digits visible.
func maskAccountNumber(number string) string {
	if len(number) <= 4 {
		return strings.Repeat("*", len(number))
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
