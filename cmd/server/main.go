package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"datadog-mcp/client/datadog"
	"datadog-mcp/internal/config"
	"datadog-mcp/internal/tools"
)

func main() {
	// Datadog flags
	apiKey := flag.String("api-key", "", "Datadog API key (overrides DD_API_KEY)")
	appKey := flag.String("app-key", "", "Datadog application key (overrides DD_APP_KEY)")
	site := flag.String("site", "", "Datadog site, e.g. datadoghq.com or datadoghq.eu (overrides DD_SITE)")
	logsSite := flag.String("logs-site", "", "Site override for log endpoints (overrides DD_LOGS_SITE)")
	metricsSite := flag.String("metrics-site", "", "Site override for metric endpoints (overrides DD_METRICS_SITE)")
	envFile := flag.String("env-file", "", "path to an env file with DD_* variables, defaults to ./.env")

	// MCP server flags
	listenAddr := flag.String("http", "", "address for http transport, defaults to stdio")
	flag.Parse()

	conf, err := config.Load(config.Flags{
		APIKey:      *apiKey,
		AppKey:      *appKey,
		Site:        *site,
		LogsSite:    *logsSite,
		MetricsSite: *metricsSite,
		EnvFile:     *envFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mcpTools := tools.NewBaseTool(conf, datadog.NewClient(conf))

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "Datadog MCP server", Version: "v0.0.1"}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-monitors",
		Description: `Fetches monitors from Datadog, optionally filtered by group state, name, or tags.
		Returns:
		A JSON payload with the monitor count, an overall-state summary, and the monitor definitions`},
		mcpTools.GetMonitors,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-monitor",
		Description: `Retrieves a specific Datadog monitor by its ID.
		Returns:
		The JSON representation of the monitor definition and its current state`},
		mcpTools.GetMonitor,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-dashboards",
		Description: `Lists dashboards from Datadog.
		Returns:
		A JSON payload with the dashboard count and the dashboard summaries (ID, title, URL)`},
		mcpTools.GetDashboards,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-dashboard",
		Description: `Retrieves the full definition of a Datadog dashboard by its ID.
		Returns:
		The JSON representation of the dashboard, including its widgets`},
		mcpTools.GetDashboard,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-metrics",
		Description: `Searches actively reporting metrics by name fragment.
		Returns:
		A JSON payload with the matching metric names`},
		mcpTools.GetMetrics,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-metric-metadata",
		Description: `Retrieves the metadata of a metric (type, unit, description) by its name.
		Returns:
		The JSON representation of the metric metadata`},
		mcpTools.GetMetricMetadata,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-events",
		Description: `Fetches events from the Datadog event stream within a time range.
		Returns:
		A JSON payload with the event count and the events`},
		mcpTools.GetEvents,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-incidents",
		Description: `Lists incidents from Datadog incident management, optionally filtered by a search query.
		Returns:
		A JSON payload with the incident count and the incidents`},
		mcpTools.GetIncidents,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "search-logs",
		Description: `Searches log events with a filter, sort order and pagination.
		The time range defaults to the last 15 minutes.
		Returns:
		A JSON payload with the log count and the log events`},
		mcpTools.SearchLogs,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "aggregate-logs",
		Description: `Computes aggregates and timeseries over log events (count, avg, percentiles) grouped by facets.
		Returns:
		The JSON representation of the aggregation buckets`},
		mcpTools.AggregateLogs,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "search-spans",
		Description: `Searches APM span events with a filter, sort order and pagination.
		The time range defaults to the last 15 minutes. Rate limited to 300 requests per hour upstream.
		Returns:
		A JSON payload with the span count and the span events`},
		mcpTools.SearchSpans,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "aggregate-spans",
		Description: `Computes aggregates and timeseries over APM span events grouped by facets.
		Rate limited to 300 requests per hour upstream.
		Returns:
		The JSON representation of the aggregation buckets`},
		mcpTools.AggregateSpans,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get-trace",
		Description: `Retrieves all spans of a trace by its trace ID, searching the last 15 minutes.
		Rate limited to 300 requests per hour upstream.
		Returns:
		A JSON payload with the trace ID, the span count, and the spans in timestamp order`},
		mcpTools.GetTrace,
	)

	if *listenAddr == "" {
		// Run the server on the stdio transport.
		if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			slog.Error("Server failed", "error", err)
		}
	} else {
		// Create a streamable HTTP handler.
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil)

		// Run the server on the HTTP transport.
		slog.Info("Server listening", "address", *listenAddr)
		if err := http.ListenAndServe(*listenAddr, handler); err != nil {
			slog.Error("Server failed", "error", err)
		}
	}
}
