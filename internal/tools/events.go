package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"datadog-mcp/client/datadog"
)

type GetEventsParams struct {
	Start              int64  `json:"start" jsonschema:"required,Start of the time range as a POSIX timestamp in seconds"`
	End                int64  `json:"end" jsonschema:"required,End of the time range as a POSIX timestamp in seconds"`
	Priority           string `json:"priority,omitempty" jsonschema:"Event priority: 'normal' or 'low'"`
	Sources            string `json:"sources,omitempty" jsonschema:"Comma-separated list of event sources (e.g. 'nagios,chef')"`
	Tags               string `json:"tags,omitempty" jsonschema:"Comma-separated list of tags to filter by"`
	Unaggregated       bool   `json:"unaggregated,omitempty" jsonschema:"Return every event in the range, even members of aggregates"`
	ExcludeAggregation bool   `json:"excludeAggregation,omitempty" jsonschema:"Exclude aggregated child events"`
	Limit              int    `json:"limit,omitempty" jsonschema:"Maximum number of events to return (default 100)"`
}

// GetEvents lists events from the event stream within a time range
func (t tool) GetEvents(ctx context.Context, request *mcp.CallToolRequest, params GetEventsParams) (*mcp.CallToolResult, any, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, nil, err
	}
	if params.Start <= 0 {
		return nil, nil, errors.New("start is required")
	}
	if params.End <= 0 {
		return nil, nil, errors.New("end is required")
	}
	if params.Priority != "" && params.Priority != "normal" && params.Priority != "low" {
		return nil, nil, fmt.Errorf("invalid priority %q: must be 'normal' or 'low'", params.Priority)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	res, err := t.client.ListEvents(ctx, &datadog.EventsRequest{
		Start:              params.Start,
		End:                params.End,
		Priority:           params.Priority,
		Sources:            params.Sources,
		Tags:               params.Tags,
		Unaggregated:       params.Unaggregated,
		ExcludeAggregation: params.ExcludeAggregation,
	})
	if err != nil {
		return nil, nil, translateAPIError(err, scopeEvents, "", "")
	}
	events := truncate(res.Events, limit)

	return jsonResult(struct {
		Count  int             `json:"count"`
		Events []datadog.Event `json:"events"`
	}{len(events), events})
}
