// Package domain provides definitions of all entities.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

var (
	// ErrAccountNotFound indicates that no account is owned by the given name.
	ErrAccountNotFound = errorspkg.With(errorspkg.ErrNotFound, "account not found")
	// ErrOwnerAlreadyExists indicates that the owner already has an account.
	//
	// It is both an AlreadyExists and a Validation error.
	ErrOwnerAlreadyExists = errorspkg.New(
		[]errorspkg.Kind{errorspkg.ErrAlreadyExists, errorspkg.ErrValidation},
		"owner already has an account",
	)
	// ErrInvalidOwner indicates an empty owner name.
	ErrInvalidOwner = errorspkg.With(errorspkg.ErrValidation, "owner name must not be empty")
	// ErrUnsupportedCurrency indicates a currency outside of the supported set.
	ErrUnsupportedCurrency = errorspkg.With(errorspkg.ErrValidation, "currency is not supported")
)

// Account holds owner balance data in a single currency.
//
// Balance is expressed in minor units of the currency.
type Account struct {
	ID        uuid.UUID            `json:"id"`
	Owner     string               `json:"owner_name"`
	Balance   uint64               `json:"balance"`
	Currency  currencypkg.Currency `json:"currency"`
	CreatedAt time.Time            `json:"created_at"`
}

// accountJSON is the wire form of Account, with the creation time in unix seconds.
type accountJSON struct {
	ID        uuid.UUID            `json:"id"`
	Balance   uint64               `json:"balance"`
	Currency  currencypkg.Currency `json:"currency"`
	Owner     string               `json:"owner_name"`
	CreatedAt int64                `json:"created_at"`
}

// MarshalJSON implements json.Marshaler.
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(accountJSON{
		ID:        a.ID,
		Balance:   a.Balance,
		Currency:  a.Currency,
		Owner:     a.Owner,
		CreatedAt: a.CreatedAt.Unix(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Account) UnmarshalJSON(b []byte) error {
	var v accountJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*a = Account{
		ID:        v.ID,
		Owner:     v.Owner,
		Balance:   v.Balance,
		Currency:  v.Currency,
		CreatedAt: time.Unix(v.CreatedAt, 0).UTC(),
	}

	return nil
}
