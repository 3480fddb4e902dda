package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coprra/price-compare/internal/infrastructure/health"
	"github.com/stretchr/testify/require"
)

func TestNew_ReportsNameAndResult(t *testing.T) {
	ok := health.New("thing", func(ctx context.Context) error { return nil })
	require.Equal(t, "thing", ok.Name())
	require.NoError(t, ok.Check(context.Background()))
}

func TestNew_PropagatesProbeFailure(t *testing.T) {
	down := errors.New("connection refused")
	bad := health.New("thing", func(ctx context.Context) error { return down })
	require.ErrorIs(t, bad.Check(context.Background()), down)
}
