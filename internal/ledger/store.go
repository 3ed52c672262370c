// Package ledger manages the in-memory store of accounts and transfers between them.
package ledger

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
)

// Store holds all accounts.
//
// Reads share the lock, every mutation holds it exclusively for its whole
// read-validate-write sequence.
type Store struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.Account
	// owners maps the case-folded owner name to the account ID.
	owners map[string]uuid.UUID
	now    func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]domain.Account),
		owners:   make(map[string]uuid.UUID),
		now:      time.Now,
	}
}

// ownerKey returns the key under which owner names are compared.
// A Caser is stateful, so a fresh one is used per call.
func ownerKey(owner string) string {
	return cases.Fold().String(owner)
}

// OpenAccount creates and returns account for the given owner, initial balance and currency.
func (s *Store) OpenAccount(ctx context.Context, owner string, balance uint64, currency currencypkg.Currency) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if strings.TrimSpace(owner) == "" {
		return domain.Account{}, domain.ErrInvalidOwner
	}

	if !currency.IsSupported() {
		return domain.Account{}, domain.ErrUnsupportedCurrency
	}

	key := ownerKey(owner)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owners[key]; ok {
		l.Info().Str("owner", owner).Err(domain.ErrOwnerAlreadyExists).Send()
		return domain.Account{}, domain.ErrOwnerAlreadyExists
	}

	account := domain.Account{
		ID:        uuid.New(),
		Owner:     owner,
		Balance:   balance,
		Currency:  currency,
		CreatedAt: s.now().UTC(),
	}

	s.accounts[account.ID] = account
	s.owners[key] = account.ID

	l.Debug().Str("account_id", account.ID.String()).Str("owner", owner).Msg("account opened")

	return account, nil
}

// GetAccountByOwner returns the account owned by the given name, compared case-insensitively.
func (s *Store) GetAccountByOwner(ctx context.Context, owner string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.lookup(owner)
	if err != nil {
		zerolog.Ctx(ctx).Info().Str("owner", owner).Err(err).Send()
		return domain.Account{}, err
	}

	return account, nil
}

// ListAccounts returns a snapshot of all accounts in no particular order.
func (s *Store) ListAccounts(ctx context.Context) []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a)
	}

	return accounts
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts)
}

// Transfer moves the amount from one owner's account to another's.
//
// Both accounts must exist, differ, and share the transfer currency, and the
// source must hold at least the amount.
func (s *Store) Transfer(ctx context.Context, arg domain.TransferParams) error {
	l := zerolog.Ctx(ctx).With().
		Str("from_account", arg.FromOwner).
		Str("to_account", arg.ToOwner).
		Uint64("amount", arg.Amount.Value).
		Str("currency", string(arg.Amount.Currency)).
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.lookup(arg.FromOwner)
	if err != nil {
		l.Info().Err(err).Msg("transfer rejected")
		return err
	}

	to, err := s.lookup(arg.ToOwner)
	if err != nil {
		l.Info().Err(err).Msg("transfer rejected")
		return err
	}

	if err := validateTransfer(from, to, arg.Amount); err != nil {
		l.Info().Err(err).Msg("transfer rejected")
		return err
	}

	from.Balance -= arg.Amount.Value
	to.Balance += arg.Amount.Value

	s.accounts[from.ID] = from
	s.accounts[to.ID] = to

	l.Info().Msg("transfer completed")

	return nil
}

func validateTransfer(from, to domain.Account, amount domain.Amount) error {
	if from.ID == to.ID {
		return domain.ErrSelfTransfer
	}

	if from.Currency != amount.Currency || to.Currency != amount.Currency {
		return domain.ErrCurrencyMismatch
	}

	if from.Balance < amount.Value {
		return domain.ErrInsufficientFunds
	}

	if to.Balance > math.MaxUint64-amount.Value {
		return domain.ErrBalanceOverflow
	}

	return nil
}

// lookup must be called with s.mu held.
func (s *Store) lookup(owner string) (domain.Account, error) {
	id, ok := s.owners[ownerKey(owner)]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	account, ok := s.accounts[id]
	if !ok {
		panic("ledger: owner index references missing account " + id.String())
	}

	return account, nil
}
