package domain

import (
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

var (
	// ErrSelfTransfer indicates that both transfer sides resolve to the same account.
	ErrSelfTransfer = errorspkg.With(errorspkg.ErrValidation, "transfer within the same account")
	// ErrCurrencyMismatch indicates that the transfer currency differs from an account currency.
	ErrCurrencyMismatch = errorspkg.With(errorspkg.ErrValidation, "transfer must be in the account currency")
	// ErrInsufficientFunds indicates that the source balance cannot cover the transfer.
	ErrInsufficientFunds = errorspkg.With(errorspkg.ErrInsufficientFunds, "insufficient funds for the transfer")
	// ErrBalanceOverflow indicates that crediting the destination would overflow its balance.
	ErrBalanceOverflow = errorspkg.With(errorspkg.ErrValidation, "destination balance overflow")
)

// Amount is a money value in minor units of its currency.
type Amount struct {
	Value    uint64               `json:"value"`
	Currency currencypkg.Currency `json:"currency"`
}

// TransferParams is the input data for a transfer between two owners.
type TransferParams struct {
	FromOwner string `json:"from_account"`
	ToOwner   string `json:"to_account"`
	Amount    Amount `json:"amount"`
}
