package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"datadog-mcp/client/datadog"
)

type GetMonitorsParams struct {
	GroupStates []string `json:"groupStates,omitempty" jsonschema:"Filter monitors by group state (alert, warn, no data, ok)"`
	Name        string   `json:"name,omitempty" jsonschema:"Filter monitors by name fragment"`
	Tags        string   `json:"tags,omitempty" jsonschema:"Filter monitors by scope tags (comma-separated, e.g. 'host:web-1,env:prod')"`
	MonitorTags string   `json:"monitorTags,omitempty" jsonschema:"Filter monitors by tags set on the monitor itself (comma-separated)"`
	Limit       int      `json:"limit,omitempty" jsonschema:"Maximum number of monitors to return (default 100)"`
}

type GetMonitorParams struct {
	MonitorID int64 `json:"monitorId" jsonschema:"required,The ID of the monitor to retrieve"`
}

// GetMonitors lists monitors with an overall-state summary
func (t tool) GetMonitors(ctx context.Context, request *mcp.CallToolRequest, params GetMonitorsParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	monitors, err := t.client.ListMonitors(ctx, &datadog.MonitorsRequest{
		GroupStates: params.GroupStates,
		Name:        params.Name,
		Tags:        params.Tags,
		MonitorTags: params.MonitorTags,
		PageSize:    limit,
	})
	if err != nil {
		return nil, nil, translateAPIError(err, scopeMonitors, "", "")
	}
	monitors = truncate(monitors, limit)

	return jsonResult(struct {
		Count        int               `json:"count"`
		StateSummary string            `json:"stateSummary"`
		Monitors     []datadog.Monitor `json:"monitors"`
	}{len(monitors), summarizeStates(monitors), monitors})
}

// GetMonitor retrieves a specific monitor by its identifier
func (t tool) GetMonitor(ctx context.Context, request *mcp.CallToolRequest, params GetMonitorParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}
	if params.MonitorID <= 0 {
		return nil, nil, errors.New("monitorId is required")
	}

	monitor, err := t.client.GetMonitor(ctx, params.MonitorID)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeMonitors, "", "")
	}
	return jsonResult(monitor)
}

// summarizeStates builds a stable "Alert: 2, OK: 5" line so an agent can
// read the fleet health without walking the monitor list.
func summarizeStates(monitors []datadog.Monitor) string {
	counts := make(map[string]int)
	for _, m := range monitors {
		state := m.OverallState
		if state == "" {
			state = "Unknown"
		}
		counts[state]++
	}
	states := maps.Keys(counts)
	slices.Sort(states)

	parts := make([]string, 0, len(states))
	for _, s := range states {
		parts = append(parts, fmt.Sprintf("%s: %d", s, counts[s]))
	}
	return strings.Join(parts, ", ")
}
