package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-shop-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultJWTAlgorithm is used for signing when JWTOptions.Algorithms is empty.
const DefaultJWTAlgorithm = "HS256"

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
	// option is missing.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrUnsupportedSigningMethod is returned when the configured or presented
	// algorithm is not an HMAC algorithm known to the jwt library.
	ErrUnsupportedSigningMethod = errors.New("unsupported JWT signing method")
)

// JWTOptions holds the secret and the verification options shared by token
// signing and token verification.
type JWTOptions struct {
	// SignKey is the HMAC secret.
	SignKey string

	// Issuer is written to and required in the "iss" claim.
	Issuer string

	// Audience, when non-empty, is written to and required in the "aud" claim.
	Audience string

	// Duration is the lifetime of newly signed tokens.
	Duration time.Duration

	// Leeway is the clock skew tolerated when checking exp/nbf/iat.
	Leeway time.Duration

	// Algorithms lists the accepted "alg" header values. The first entry is
	// used for signing. Defaults to HS256.
	Algorithms []string
}

func (o JWTOptions) algorithms() []string {
	if len(o.Algorithms) == 0 {
		return []string{DefaultJWTAlgorithm}
	}
	return o.Algorithms
}

func (o JWTOptions) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(o.algorithms()),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if o.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(o.Issuer))
	}
	if o.Audience != "" {
		opts = append(opts, jwt.WithAudience(o.Audience))
	}
	if o.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(o.Leeway))
	}
	return opts
}

// GenerateJWTToken signs payload as an HMAC JWT.
//
// The registered claims of payload are completed before signing:
//   - Issuer    (iss): opts.Issuer
//   - Audience  (aud): opts.Audience, if set
//   - Subject   (sub): the account ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus opts.Duration
//
// SignKey, Issuer and a non-zero Duration are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.NewAPITokenPayload(account), opts)
func GenerateJWTToken(payload models.APITokenPayload, opts JWTOptions) (models.Token, error) {
	if opts.Issuer == "" || opts.Duration == 0 || opts.SignKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	method, ok := jwt.GetSigningMethod(opts.algorithms()[0]).(*jwt.SigningMethodHMAC)
	if !ok {
		return models.Token{}, fmt.Errorf("%w: %s", ErrUnsupportedSigningMethod, opts.algorithms()[0])
	}

	now := time.Now()
	payload.Issuer = opts.Issuer
	payload.Subject = strconv.FormatInt(payload.AccountID, 10)
	payload.IssuedAt = jwt.NewNumericDate(now)
	payload.ExpiresAt = jwt.NewNumericDate(now.Add(opts.Duration))
	if opts.Audience != "" {
		payload.Audience = jwt.ClaimStrings{opts.Audience}
	}

	token := jwt.NewWithClaims(method, &payload)
	tokenString, err := token.SignedString([]byte(opts.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Payload: &payload}, nil
}

// ValidateAndParseJWTToken verifies tokenString and decodes its payload.
//
// Validation includes:
//   - "alg" header restricted to opts.Algorithms (HMAC only)
//   - signature verification using opts.SignKey
//   - issuer and audience checks when configured
//   - exp required and checked, with opts.Leeway tolerance
//   - subject presence and conversion to the int64 account ID
//
// Returns the decoded payload or an error wrapping the jwt library error, so
// that callers can match jwt.ErrTokenExpired and friends with errors.Is.
func ValidateAndParseJWTToken(tokenString string, opts JWTOptions) (*models.APITokenPayload, error) {
	payload := new(models.APITokenPayload)

	_, err := jwt.NewParser(opts.parserOptions()...).ParseWithClaims(tokenString, payload, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedSigningMethod, token.Header["alg"])
		}
		return []byte(opts.SignKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	accountID, err := payload.GetAccountID()
	if err != nil {
		return nil, err
	}
	payload.AccountID = accountID

	return payload, nil
}
