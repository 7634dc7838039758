package logger_test

import (
	"context"
	"dorker/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup_Environments(t *testing.T) {
	ctx := context.Background()

	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(ctx), "development logs at debug level")

	logger.Setup(logger.ProductionEnvironment)
	require.Equal(t, zap.InfoLevel, logger.Get(ctx).Level(), "production logs at info level")

	// anything but production gets the development config
	logger.Setup("staging")
	require.True(t, logger.IsDebug(ctx))
}

func TestSetup_WithLevel(t *testing.T) {
	ctx := context.Background()

	logger.Setup(logger.ProductionEnvironment, logger.WithLevel("debug"))
	require.True(t, logger.IsDebug(ctx), "explicit debug level should override production default")

	logger.Setup(logger.DevelopmentEnvironment, logger.WithLevel("warn"))
	require.Equal(t, zap.WarnLevel, logger.Get(ctx).Level())

	// an unknown level keeps the environment default
	logger.Setup(logger.DevelopmentEnvironment, logger.WithLevel("loud"))
	require.True(t, logger.IsDebug(ctx))
}

func TestGet_FallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	require.NotNil(t, logger.Get(context.Background()))

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(context.Background(), custom)))
}

func TestWithFields(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)

	ctx = logger.WithFields(ctx, zap.String("RequestID", "abc"))
	ctx = logger.WithFields(ctx, zap.Int("attempt", 2))
	logger.Info(ctx, "dork saved", zap.Int64("id", 7))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "dork saved", entries[0].Message)
	require.Equal(t, map[string]any{
		"RequestID": "abc",
		"attempt":   int64(2),
		"id":        int64(7),
	}, entries[0].ContextMap())
}

func TestLevelFunctions(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")
	logger.Sync(ctx)

	require.Equal(t, 0, logs.FilterMessage("dropped").Len())
	require.Equal(t, 1, logs.FilterLevelExact(zap.InfoLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zap.ErrorLevel).Len())
	require.False(t, logger.IsDebug(ctx))
}
