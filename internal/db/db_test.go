package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, traceLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelError, traceLevel(zerolog.ErrorLevel))
	assert.Equal(t, tracelog.LogLevelNone, traceLevel(zerolog.Disabled))
}

func TestConnect_RejectsMalformedDSN(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://%zz", Options{})
	require.Error(t, err)
}
