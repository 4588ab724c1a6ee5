package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

type accountService struct {
	accountRepository store.AccountRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewAccountService constructs an AccountService backed by accountRepository.
func NewAccountService(accountRepository store.AccountRepository, validator validators.Validator, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *accountService) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	account, err := s.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("account search by ID failed")
		return models.Account{}, fmt.Errorf("account search by ID failed: %w", err)
	}

	return account, nil
}

// UpdateAccount applies the non-nil fields of update and returns the
// resulting account.
func (s *accountService) UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Int64("account_id", update.AccountID).Msg("invalid account update")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := s.accountRepository.UpdateAccount(ctx, update)
	if err != nil {
		log.Err(err).Int64("account_id", update.AccountID).Msg("account update failed")
		return models.Account{}, fmt.Errorf("account update failed: %w", err)
	}

	return account, nil
}
