package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"datadog-mcp/client/datadog"
)

type FilterParams struct {
	Query   string   `json:"query,omitempty" jsonschema:"Search query (e.g. 'service:web status:error')"`
	From    string   `json:"from,omitempty" jsonschema:"Start of the time range (ISO8601 or time math like 'now-15m', default 'now-15m')"`
	To      string   `json:"to,omitempty" jsonschema:"End of the time range (ISO8601 or 'now', default 'now')"`
	Indexes []string `json:"indexes,omitempty" jsonschema:"Log indexes to search (default all)"`
}

type PageParams struct {
	Limit  int    `json:"limit,omitempty" jsonschema:"Number of results per backend page"`
	Cursor string `json:"cursor,omitempty" jsonschema:"Pagination cursor from a previous response"`
}

type ComputeParams struct {
	Aggregation string `json:"aggregation" jsonschema:"required,Aggregation function (count, cardinality, avg, sum, min, max, pc75, pc90, pc95, pc99)"`
	Metric      string `json:"metric,omitempty" jsonschema:"Measure or facet to aggregate over (required for everything but count)"`
	Interval    string `json:"interval,omitempty" jsonschema:"Bucket interval for timeseries results (e.g. '5m')"`
	Type        string `json:"type,omitempty" jsonschema:"Result type: 'total' or 'timeseries'"`
}

type GroupByParams struct {
	Facet string `json:"facet" jsonschema:"required,Facet to group results by (e.g. 'service')"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of groups to return"`
}

type OptionsParams struct {
	Timezone string `json:"timezone,omitempty" jsonschema:"Timezone for bucketing (e.g. 'GMT', 'Europe/Paris')"`
}

type SearchLogsParams struct {
	Filter *FilterParams `json:"filter,omitempty" jsonschema:"Log filter; defaults to all logs from the last 15 minutes"`
	Sort   string        `json:"sort,omitempty" jsonschema:"Sort order: 'timestamp' or '-timestamp'"`
	Page   *PageParams   `json:"page,omitempty" jsonschema:"Backend pagination"`
	Limit  int           `json:"limit,omitempty" jsonschema:"Maximum number of logs to return (default 100)"`
}

type AggregateLogsParams struct {
	Filter  *FilterParams   `json:"filter,omitempty" jsonschema:"Log filter; defaults to all logs from the last 15 minutes"`
	Compute []ComputeParams `json:"compute" jsonschema:"required,Aggregations to compute"`
	GroupBy []GroupByParams `json:"groupBy,omitempty" jsonschema:"Facets to group results by"`
	Options *OptionsParams  `json:"options,omitempty" jsonschema:"Aggregation options"`
}

func (f *FilterParams) toQueryFilter() *datadog.QueryFilter {
	filter := &datadog.QueryFilter{From: defaultFrom, To: defaultTo}
	if f == nil {
		return filter
	}
	filter.Query = f.Query
	filter.Indexes = f.Indexes
	if f.From != "" {
		filter.From = f.From
	}
	if f.To != "" {
		filter.To = f.To
	}
	return filter
}

// SearchLogs searches log events
func (t tool) SearchLogs(ctx context.Context, request *mcp.CallToolRequest, params SearchLogsParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	req := &datadog.LogsSearchRequest{
		Filter: params.Filter.toQueryFilter(),
		Sort:   params.Sort,
	}
	if params.Page != nil {
		req.Page = &datadog.Page{Limit: params.Page.Limit, Cursor: params.Page.Cursor}
	}

	res, err := t.client.SearchLogs(ctx, req)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeLogs, "", "")
	}
	logs := truncate(res.Data, limit)

	return jsonResult(struct {
		Count int                `json:"count"`
		Logs  []datadog.Resource `json:"logs"`
		Meta  map[string]any     `json:"meta,omitempty"`
	}{len(logs), logs, res.Meta})
}

// AggregateLogs computes aggregates and timeseries over log events
func (t tool) AggregateLogs(ctx context.Context, request *mcp.CallToolRequest, params AggregateLogsParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}
	if len(params.Compute) == 0 {
		return nil, nil, errors.New("compute is required")
	}

	req := &datadog.LogsAggregateRequest{
		Compute: toCompute(params.Compute),
		Filter:  params.Filter.toQueryFilter(),
		GroupBy: toGroupBy(params.GroupBy),
	}
	if params.Options != nil {
		req.Options = &datadog.AggregateOptions{Timezone: params.Options.Timezone}
	}

	res, err := t.client.AggregateLogs(ctx, req)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeLogs, "", "")
	}
	return jsonResult(res)
}

func toCompute(params []ComputeParams) []datadog.Compute {
	compute := make([]datadog.Compute, 0, len(params))
	for _, p := range params {
		compute = append(compute, datadog.Compute{
			Aggregation: p.Aggregation,
			Metric:      p.Metric,
			Interval:    p.Interval,
			Type:        p.Type,
		})
	}
	return compute
}

func toGroupBy(params []GroupByParams) []datadog.GroupBy {
	if len(params) == 0 {
		return nil
	}
	groupBy := make([]datadog.GroupBy, 0, len(params))
	for _, p := range params {
		groupBy = append(groupBy, datadog.GroupBy{Facet: p.Facet, Limit: p.Limit})
	}
	return groupBy
}
