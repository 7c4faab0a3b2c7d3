package tools

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetDashboardsParams struct {
	FilterConfigured bool `json:"filterConfigured,omitempty" jsonschema:"Only return dashboards created or cloned in the organization"`
	Limit            int  `json:"limit,omitempty" jsonschema:"Maximum number of dashboards to return (default 100)"`
}

type GetDashboardParams struct {
	DashboardID string `json:"dashboardId" jsonschema:"required,The ID of the dashboard to retrieve"`
}

// GetDashboards lists dashboard summaries
func (t tool) GetDashboards(ctx context.Context, request *mcp.CallToolRequest, params GetDashboardsParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	list, err := t.client.ListDashboards(ctx, params.FilterConfigured)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeDashboards, "", "")
	}
	dashboards := truncate(list.Dashboards, limit)

	return jsonResult(struct {
		Count      int `json:"count"`
		Dashboards any `json:"dashboards"`
	}{len(dashboards), dashboards})
}

// GetDashboard retrieves a full dashboard definition by its identifier
func (t tool) GetDashboard(ctx context.Context, request *mcp.CallToolRequest, params GetDashboardParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(params.DashboardID) == "" {
		return nil, nil, errors.New("dashboardId is required")
	}

	dashboard, err := t.client.GetDashboard(ctx, params.DashboardID)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeDashboards, "", "")
	}
	return jsonResult(dashboard)
}
