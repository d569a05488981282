package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bonsai/config"
	deliverycontext "bonsai/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func TestGormSlogLogger_ErrorOmitsSQLOutsideDebug(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM sessions WHERE token = 'secret-token'", 0
	}, errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.NotContains(t, buf.String(), "secret-token")
}

func TestGormSlogLogger_DebugIncludesSQL(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT pg_sleep(1)", 1
	}, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, baseBuf := newBufferedGormLogger(false)

	requestBuf := &bytes.Buffer{}
	requestLogger := slog.New(slog.NewTextHandler(requestBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) {
		return "UPDATE user_activation_tokens SET used_at = now()", 0
	}, errors.New("boom"))

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, requestBuf.String(), "request_id=req-42")
	assert.Contains(t, requestBuf.String(), "GORM query failed")
}
