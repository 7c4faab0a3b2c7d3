package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"datadog-mcp/client/datadog"
	"datadog-mcp/internal/config"
)

const (
	defaultLimit      = 100
	defaultTraceLimit = 1000

	// Default time window for log/span filters when the caller gives none.
	defaultFrom = "now-15m"
	defaultTo   = "now"
)

type DatadogClient interface {
	ListMonitors(ctx context.Context, req *datadog.MonitorsRequest) ([]datadog.Monitor, error)
	GetMonitor(ctx context.Context, monitorID int64) (*datadog.Monitor, error)
	ListDashboards(ctx context.Context, filterConfigured bool) (*datadog.DashboardList, error)
	GetDashboard(ctx context.Context, dashboardID string) (datadog.Dashboard, error)
	SearchMetrics(ctx context.Context, query string) (*datadog.MetricSearchResponse, error)
	GetMetricMetadata(ctx context.Context, metricName string) (*datadog.MetricMetadata, error)
	ListEvents(ctx context.Context, req *datadog.EventsRequest) (*datadog.EventsResponse, error)
	ListIncidents(ctx context.Context, req *datadog.IncidentsRequest) (*datadog.IncidentsResponse, error)
	SearchIncidents(ctx context.Context, query string, req *datadog.IncidentsRequest) (*datadog.IncidentsResponse, error)
	SearchLogs(ctx context.Context, req *datadog.LogsSearchRequest) (*datadog.EventsPayload, error)
	AggregateLogs(ctx context.Context, req *datadog.LogsAggregateRequest) (*datadog.AggregateResponse, error)
	SearchSpans(ctx context.Context, req *datadog.SpansSearchRequest) (*datadog.EventsPayload, error)
	AggregateSpans(ctx context.Context, req *datadog.SpansAggregateRequest) (*datadog.AggregateResponse, error)
}

type tool struct {
	conf   *config.Config
	client DatadogClient
}

// NewBaseTool returns a tool factory bound to the resolved configuration
// and a Datadog client built from it.
func NewBaseTool(conf *config.Config, c DatadogClient) (t *tool) {
	t = new(tool)
	t.conf = conf
	t.client = c
	return
}

// checkCredentials re-validates the credentials before any backend call.
// Startup already enforces this; the re-check keeps a handler from ever
// issuing an unauthenticated request.
func (t tool) checkCredentials() error {
	if t.conf.APIKey == "" || t.conf.AppKey == "" {
		return errors.New("datadog credentials are not configured: both an API key and an application key are required")
	}
	return nil
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	resultJSON, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: string(resultJSON),
			},
		},
	}, nil, nil
}

// truncate trims a backend list to the caller's limit, keeping the
// original order.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
