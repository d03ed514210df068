package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// CreateAccountRequest adds an account to the chart of accounts.
type CreateAccountRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	AccountType string `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE OTHER"`
	ParentCode  string `json:"parentCode"`
	Description string `json:"description"`
}

// UpdateAccountRequest edits an account. Nil fields are unchanged.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty"`
	AccountType *string `json:"accountType,omitempty" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE OTHER"`
	Description *string `json:"description,omitempty"`
}

// ListAccountsParams filters the chart-of-accounts listing.
type ListAccountsParams struct {
	ActiveOnly  bool   `form:"activeOnly"`
	ClassPrefix string `form:"class"`
}

// AccountResponse describes one account with its derived level.
type AccountResponse struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	Level       int             `json:"level"`
	ParentCode  string          `json:"parentCode,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		Balance:     a.Balance,
		IsActive:    a.IsActive,
		Level:       a.Level(),
		ParentCode:  a.ParentCode,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

// ToListAccountResponse converts domain accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
