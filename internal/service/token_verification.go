// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/models"
)

// TokenVerification is the pending result of an API token verification.
// It is resolved exactly once; Await may be called any number of times.
// The zero value never completes.
type TokenVerification struct {
	payload *models.APITokenPayload
	err     error
	done    chan struct{}
}

// verifyAsync runs verify in its own goroutine.
func verifyAsync(ctx context.Context, tokenString string, verify func(context.Context, string) (*models.APITokenPayload, error)) *TokenVerification {
	v := &TokenVerification{done: make(chan struct{})}

	go func() {
		defer close(v.done)

		select {
		case <-ctx.Done():
			v.err = fmt.Errorf("%w: %w", ErrTokenVerificationAborted, ctx.Err())
			return
		default:
		}

		v.payload, v.err = verify(ctx, tokenString)
	}()

	return v
}

// ResolvedTokenVerification returns a verification that is already complete
// with the given outcome.
func ResolvedTokenVerification(payload *models.APITokenPayload, err error) *TokenVerification {
	v := &TokenVerification{payload: payload, err: err, done: make(chan struct{})}
	close(v.done)
	return v
}

// Await blocks until the verification completes or ctx is done. A canceled
// ctx is reported as an error wrapping [ErrTokenVerificationAborted].
func (v *TokenVerification) Await(ctx context.Context) (*models.APITokenPayload, error) {
	select {
	case <-v.done:
		return v.payload, v.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrTokenVerificationAborted, ctx.Err())
	}
}

// IsComplete reports whether the verification has finished, without blocking.
func (v *TokenVerification) IsComplete() bool {
	select {
	case <-v.done:
		return true
	default:
		return false
	}
}
