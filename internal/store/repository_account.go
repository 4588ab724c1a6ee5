package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup and profile
// updates against the "accounts" table.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns it with server-assigned
// fields (AccountID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to build query")
		return models.Account{}, err
	}

	created, err := scanAccount(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error creating account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindAccountByEmail returns the account registered with email or
// [ErrAccountNotFound].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, "FindAccountByEmail", sq.Eq{"email": email})
}

// FindAccountByID returns the account with accountID or [ErrAccountNotFound].
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findAccount(ctx, "FindAccountByID", sq.Eq{"account_id": accountID})
}

func (r *accountRepository) findAccount(ctx context.Context, funcName string, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(where)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository."+funcName).Msg("failed to build query")
		return models.Account{}, err
	}

	var found models.Account
	err = r.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanAccount(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository."+funcName).Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateAccount applies the non-nil fields of update and returns the
// resulting account. [ErrNothingToUpdate] is returned for an empty update.
func (r *accountRepository) UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(update)
	if err != nil {
		return models.Account{}, err
	}

	updated, err := scanAccount(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Int64("account_id", update.AccountID).Msg("error updating account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func scanAccount(row *sql.Row) (models.Account, error) {
	var account models.Account
	var role string
	err := row.Scan(
		&account.AccountID,
		&account.Email,
		&account.PasswordHash,
		&account.Name,
		&role,
		&account.CreatedAt,
	)
	account.Role = models.Role(role)
	return account, err
}
