package util_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github/chapool/cngn-go/internal/util"
)

func TestLogFromContext(t *testing.T) {
	ctx := context.Background()

	l := util.LogFromContext(ctx)
	assert.Equal(t, &log.Logger, l)

	var buf bytes.Buffer
	scoped := zerolog.New(&buf).With().Str("id", "req-1").Logger()
	ctx = scoped.WithContext(ctx)

	util.LogFromContext(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"id":"req-1"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestLogFromContextDisabled(t *testing.T) {
	ctx := util.DisableLogger(context.Background(), true)
	assert.True(t, util.ShouldDisableLogger(ctx))
	assert.Equal(t, zerolog.Disabled, util.LogFromContext(ctx).GetLevel())

	ctx = util.DisableLogger(ctx, false)
	assert.False(t, util.ShouldDisableLogger(ctx))
	assert.NotEqual(t, zerolog.Disabled, util.LogFromContext(ctx).GetLevel())
}
