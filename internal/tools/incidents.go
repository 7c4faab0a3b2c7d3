package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"datadog-mcp/client/datadog"
)

type GetIncidentsParams struct {
	IncludeArchived bool   `json:"includeArchived,omitempty" jsonschema:"Include archived incidents"`
	PageSize        int    `json:"pageSize,omitempty" jsonschema:"Number of incidents per backend page"`
	PageOffset      int    `json:"pageOffset,omitempty" jsonschema:"Offset into the backend result set"`
	Query           string `json:"query,omitempty" jsonschema:"Incident search query (e.g. 'state:active severity:SEV-1')"`
	Limit           int    `json:"limit,omitempty" jsonschema:"Maximum number of incidents to return (default 100)"`
}

// GetIncidents lists incidents, optionally filtered by a search query
func (t tool) GetIncidents(ctx context.Context, request *mcp.CallToolRequest, params GetIncidentsParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	req := &datadog.IncidentsRequest{
		IncludeArchived: params.IncludeArchived,
		PageSize:        params.PageSize,
		PageOffset:      params.PageOffset,
	}

	var res *datadog.IncidentsResponse
	var err error
	if params.Query != "" {
		res, err = t.client.SearchIncidents(ctx, params.Query, req)
	} else {
		res, err = t.client.ListIncidents(ctx, req)
	}
	if err != nil {
		return nil, nil, translateAPIError(err, scopeIncidents, "", "")
	}
	incidents := truncate(res.Data, limit)

	return jsonResult(struct {
		Count     int                `json:"count"`
		Incidents []datadog.Resource `json:"incidents"`
		Meta      map[string]any     `json:"meta,omitempty"`
	}{len(incidents), incidents, res.Meta})
}
