package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and API token
// lifecycle using an AccountRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// accountRepository is the data-access layer used to create and look up accounts.
	accountRepository store.AccountRepository

	// validator checks registration and login requests.
	validator validators.Validator

	// hashCost is the bcrypt cost used at registration.
	hashCost int

	// jwtOptions holds the signing secret and the verification rules
	// (issuer, audience, leeway, accepted algorithms).
	jwtOptions utils.JWTOptions

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		validator:         validator,
		hashCost:          cfg.PasswordHashCost,
		jwtOptions: utils.JWTOptions{
			SignKey:    cfg.TokenSignKey,
			Issuer:     cfg.TokenIssuer,
			Audience:   cfg.TokenAudience,
			Duration:   cfg.TokenDuration,
			Leeway:     cfg.TokenLeeway,
			Algorithms: cfg.TokenAlgorithms,
		},
		logger: logger,
	}
}

// Register creates a new account.
//
// The email is normalized to lower case, the password is hashed with bcrypt
// and the role defaults to customer. Registering as admin is rejected with
// ErrRoleNotAllowed.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided wrapping the validation error;
//   - a wrapped storage error (e.g. store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("email", request.Email).Msg("invalid registration request")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if request.Role == "" {
		request.Role = models.RoleCustomer
	}
	if request.Role == models.RoleAdmin {
		log.Warn().Str("email", request.Email).Msg("attempt to self-register as admin")
		return models.Account{}, ErrRoleNotAllowed
	}

	hash, err := utils.HashPassword(request.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Email:        request.Email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(request.Name),
		Role:         request.Role,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account, nil
}

// Login authenticates an existing account.
//
// An unknown email and a wrong password are both reported as
// ErrWrongCredentials so that callers cannot probe for registered emails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("email", request.Email).Msg("invalid login request")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Debug().Str("email", request.Email).Msg("login with unknown email")
		return models.Account{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if !utils.CheckPassword(account.PasswordHash, request.Password) {
		log.Debug().Int64("account_id", account.AccountID).Msg("wrong password")
		return models.Account{}, ErrWrongCredentials
	}

	return account, nil
}

// CreateToken issues a signed API token for account.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(models.NewAPITokenPayload(account), a.jwtOptions)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", account.AccountID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken starts verification of tokenString in the background.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is reported by Await as an error wrapping ErrTokenIsExpiredOrInvalid.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) *TokenVerification {
	return verifyAsync(ctx, tokenString, a.parseToken)
}

func (a *authService) parseToken(_ context.Context, tokenString string) (*models.APITokenPayload, error) {
	payload, err := utils.ValidateAndParseJWTToken(tokenString, a.jwtOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return payload, nil
}
