package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// APITokenPayload is the decoded claim set of an API token.
//
// It embeds [jwt.RegisteredClaims] so that it satisfies [jwt.Claims] and can
// be passed directly to jwt.ParseWithClaims. The "sub" claim always carries
// the account ID in base-10.
type APITokenPayload struct {
	AccountID int64  `json:"accountId"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`

	jwt.RegisteredClaims
}

// NewAPITokenPayload builds the payload for account. Registered claims
// (issuer, expiry, ...) are filled in when the token is signed.
func NewAPITokenPayload(account Account) APITokenPayload {
	return APITokenPayload{
		AccountID: account.AccountID,
		Email:     account.Email,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(account.AccountID, 10),
		},
	}
}

// HasRole reports whether the payload grants one of roles.
func (p *APITokenPayload) HasRole(roles ...Role) bool {
	if p == nil {
		return false
	}
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// GetAccountID parses the "sub" claim as the account ID.
func (p *APITokenPayload) GetAccountID() (int64, error) {
	sub, err := p.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting AccountID from token: %w", err)
	}

	accountID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting AccountID from token to int64: %w", err)
	}

	return accountID, nil
}

// Token is a signed API token together with the claims it was signed with.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Payload is the claim set carried by the token.
	Payload *APITokenPayload `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
