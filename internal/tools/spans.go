package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"datadog-mcp/client/datadog"
)

type SpanFilterParams struct {
	Query string `json:"query,omitempty" jsonschema:"Span search query (e.g. 'service:web resource_name:GET_/users')"`
	From  string `json:"from,omitempty" jsonschema:"Start of the time range (ISO8601 or time math like 'now-15m', default 'now-15m')"`
	To    string `json:"to,omitempty" jsonschema:"End of the time range (ISO8601 or 'now', default 'now')"`
}

type SearchSpansParams struct {
	Filter *SpanFilterParams `json:"filter,omitempty" jsonschema:"Span filter; defaults to all spans from the last 15 minutes"`
	Sort   string            `json:"sort,omitempty" jsonschema:"Sort order: 'timestamp' or '-timestamp'"`
	Page   *PageParams       `json:"page,omitempty" jsonschema:"Backend pagination"`
	Limit  int               `json:"limit,omitempty" jsonschema:"Maximum number of spans to return (default 100)"`
}

type AggregateSpansParams struct {
	Filter  *SpanFilterParams `json:"filter,omitempty" jsonschema:"Span filter; defaults to all spans from the last 15 minutes"`
	Compute []ComputeParams   `json:"compute" jsonschema:"required,Aggregations to compute"`
	GroupBy []GroupByParams   `json:"groupBy,omitempty" jsonschema:"Facets to group results by"`
	Options *OptionsParams    `json:"options,omitempty" jsonschema:"Aggregation options"`
}

type GetTraceParams struct {
	TraceID string `json:"traceId" jsonschema:"required,The ID of the trace to retrieve"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum number of spans to request (default 1000)"`
}

func (f *SpanFilterParams) toQueryFilter() *datadog.QueryFilter {
	filter := &datadog.QueryFilter{Query: "*", From: defaultFrom, To: defaultTo}
	if f == nil {
		return filter
	}
	if f.Query != "" {
		filter.Query = f.Query
	}
	if f.From != "" {
		filter.From = f.From
	}
	if f.To != "" {
		filter.To = f.To
	}
	return filter
}

// SearchSpans searches APM span events
func (t tool) SearchSpans(ctx context.Context, request *mcp.CallToolRequest, params SearchSpansParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	req := &datadog.SpansSearchRequest{
		Filter: params.Filter.toQueryFilter(),
		Sort:   params.Sort,
	}
	if params.Page != nil {
		req.Page = &datadog.Page{Limit: params.Page.Limit, Cursor: params.Page.Cursor}
	}

	res, err := t.client.SearchSpans(ctx, req)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeAPM, spanQuota, "")
	}
	spans := truncate(res.Data, limit)

	return jsonResult(struct {
		Count int                `json:"count"`
		Spans []datadog.Resource `json:"spans"`
		Meta  map[string]any     `json:"meta,omitempty"`
	}{len(spans), spans, res.Meta})
}

// AggregateSpans computes aggregates and timeseries over APM span events
func (t tool) AggregateSpans(ctx context.Context, request *mcp.CallToolRequest, params AggregateSpansParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}
	if len(params.Compute) == 0 {
		return nil, nil, errors.New("compute is required")
	}

	req := &datadog.SpansAggregateRequest{
		Compute: toCompute(params.Compute),
		Filter:  params.Filter.toQueryFilter(),
		GroupBy: toGroupBy(params.GroupBy),
	}
	if params.Options != nil {
		req.Options = &datadog.AggregateOptions{Timezone: params.Options.Timezone}
	}

	res, err := t.client.AggregateSpans(ctx, req)
	if err != nil {
		return nil, nil, translateAPIError(err, scopeAPM, spanQuota, "")
	}
	return jsonResult(res)
}

// GetTrace retrieves every span of a trace from the last 15 minutes
func (t tool) GetTrace(ctx context.Context, request *mcp.CallToolRequest, params GetTraceParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}
	traceID := strings.TrimSpace(params.TraceID)
	if traceID == "" {
		return nil, nil, errors.New("traceId is required")
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTraceLimit
	}

	res, err := t.client.SearchSpans(ctx, &datadog.SpansSearchRequest{
		Filter: &datadog.QueryFilter{
			Query: fmt.Sprintf("trace_id:%s", traceID),
			From:  defaultFrom,
			To:    defaultTo,
		},
		Sort: "timestamp",
		Page: &datadog.Page{Limit: limit},
	})
	if err != nil {
		notFound := fmt.Sprintf("trace %s not found in the last 15 minutes", traceID)
		return nil, nil, translateAPIError(err, scopeAPM, spanQuota, notFound)
	}

	return jsonResult(struct {
		TraceID   string             `json:"traceId"`
		SpanCount int                `json:"spanCount"`
		Spans     []datadog.Resource `json:"spans"`
	}{traceID, len(res.Data), res.Data})
}
