package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvedTokenVerification(t *testing.T) {
	ctx := context.Background()
	payload := &models.APITokenPayload{AccountID: 5}

	v := service.ResolvedTokenVerification(payload, nil)
	assert.True(t, v.IsComplete())

	got, err := v.Await(ctx)
	require.NoError(t, err)
	assert.Same(t, payload, got)

	// awaiting twice yields the same outcome
	got, err = v.Await(ctx)
	require.NoError(t, err)
	assert.Same(t, payload, got)

	boom := errors.New("boom")
	_, err = service.ResolvedTokenVerification(nil, boom).Await(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestTokenVerification_AwaitCanceled(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.VerifyToken(ctx, "whatever").Await(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || errors.Is(err, service.ErrTokenIsExpiredOrInvalid))
}
