package tools

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetMetricsParams struct {
	Query string `json:"q,omitempty" jsonschema:"Metric name fragment to search for (e.g. 'system.cpu')"`
}

type GetMetricMetadataParams struct {
	MetricName string `json:"metricName" jsonschema:"required,The name of the metric to get metadata for (e.g. 'system.cpu.user')"`
}

// GetMetrics searches actively reporting metrics
func (t tool) GetMetrics(ctx context.Context, request *mcp.CallToolRequest, params GetMetricsParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}

	res, err := t.client.SearchMetrics(ctx, params.Query)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeMetrics, "", "")
	}

	return jsonResult(struct {
		Count   int      `json:"count"`
		Metrics []string `json:"metrics"`
	}{len(res.Results.Metrics), res.Results.Metrics})
}

// GetMetricMetadata retrieves the metadata of a metric by its name
func (t tool) GetMetricMetadata(ctx context.Context, request *mcp.CallToolRequest, params GetMetricMetadataParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(params.MetricName) == "" {
		return nil, nil, errors.New("metricName is required")
	}

	metadata, err := t.client.GetMetricMetadata(ctx, params.MetricName)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeMetrics, "", "")
	}
	return jsonResult(metadata)
}
