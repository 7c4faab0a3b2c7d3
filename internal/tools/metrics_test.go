package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadog-mcp/client/datadog"
)

func TestGetMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		tools, mockClient := newTestTool()
		res := &datadog.MetricSearchResponse{}
		res.Results.Metrics = []string{"system.cpu.user", "system.cpu.system"}
		mockClient.On("SearchMetrics", ctx, "system.cpu").Return(res, nil).Once()

		result, _, err := tools.GetMetrics(ctx, nil, GetMetricsParams{Query: "system.cpu"})
		require.NoError(t, err)

		payload := decodeResult(t, result)
		assert.Equal(t, float64(2), payload["count"])
		assert.Len(t, payload["metrics"], 2)
	})

	t.Run("403 names the metrics scope", func(t *testing.T) {
		tools, mockClient := newTestTool()
		mockClient.On("SearchMetrics", ctx, "").
			Return(nil, &datadog.APIError{StatusCode: http.StatusForbidden}).Once()

		_, _, err := tools.GetMetrics(ctx, nil, GetMetricsParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "metrics_read")
	})
}

func TestGetMetricMetadata(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		tools, mockClient := newTestTool()
		mockClient.On("GetMetricMetadata", ctx, "system.cpu.user").
			Return(&datadog.MetricMetadata{Type: "gauge", Unit: "percent"}, nil).Once()

		result, _, err := tools.GetMetricMetadata(ctx, nil, GetMetricMetadataParams{MetricName: "system.cpu.user"})
		require.NoError(t, err)

		payload := decodeResult(t, result)
		assert.Equal(t, "gauge", payload["type"])
		assert.Equal(t, "percent", payload["unit"])
	})

	t.Run("missing metricName", func(t *testing.T) {
		tools, mockClient := newTestTool()

		_, _, err := tools.GetMetricMetadata(ctx, nil, GetMetricMetadataParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "metricName")
		assert.Empty(t, mockClient.Calls)
	})
}
