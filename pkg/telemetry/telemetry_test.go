package telemetry

import (
	"context"
	"testing"

	"abc-cinemas/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWithoutEndpointIsNoop(t *testing.T) {
	config := utils.TelemetryConfig{ServiceName: "abc-cinemas-api"}

	shutdown, err := Init(context.Background(), config, "test", zap.NewNop())

	require.NoError(t, err)
	assert.False(t, Enabled(config))
	assert.NoError(t, shutdown(context.Background()))
}
