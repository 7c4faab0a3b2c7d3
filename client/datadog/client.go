package datadog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	rq "github.com/carlmjohnson/requests"

	"datadog-mcp/internal/config"
)

// Client talks to the Datadog v1/v2 APIs. It is built once at startup
// from the resolved configuration and is read-only afterwards, so it is
// safe to share across tool handlers.
type Client struct {
	conf *config.Config

	// baseURL replaces https://api.<site> when set; tests point it at a
	// local httptest server.
	baseURL string
}

var transport = &http.Transport{}

func NewClient(conf *config.Config) *Client {
	return &Client{conf: conf}
}

func (c *Client) api(site, endpoint string) *rq.Builder {
	uri := fmt.Sprintf("https://api.%s/api/%s", site, endpoint)
	if c.baseURL != "" {
		uri = fmt.Sprintf("%s/api/%s", c.baseURL, endpoint)
	}
	return rq.URL(uri).
		ContentType("application/json").
		Transport(transport).
		Header("DD-API-KEY", c.conf.APIKey).
		Header("DD-APPLICATION-KEY", c.conf.AppKey)
}

// ListMonitors fetches monitors, optionally filtered by group state and tags
func (c *Client) ListMonitors(ctx context.Context, req *MonitorsRequest) ([]Monitor, error) {
	var res []Monitor
	var e APIError
	r := c.api(c.conf.Site, "v1/monitor").ErrorJSON(&e)
	if len(req.GroupStates) > 0 {
		r.Param("group_states", strings.Join(req.GroupStates, ","))
	}
	if req.Name != "" {
		r.Param("name", req.Name)
	}
	if req.Tags != "" {
		r.Param("tags", req.Tags)
	}
	if req.MonitorTags != "" {
		r.Param("monitor_tags", req.MonitorTags)
	}
	if req.PageSize > 0 {
		r.Param("page_size", strconv.Itoa(req.PageSize))
	}
	if err := r.ToJSON(&res).Fetch(ctx); err != nil {
		return nil, wrapErr(err, &e)
	}
	return res, nil
}

// GetMonitor retrieves a specific monitor by its identifier
func (c *Client) GetMonitor(ctx context.Context, monitorID int64) (*Monitor, error) {
	var res Monitor
	var e APIError
	err := c.api(c.conf.Site, fmt.Sprintf("v1/monitor/%d", monitorID)).
		ErrorJSON(&e).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// ListDashboards fetches all dashboard summaries
func (c *Client) ListDashboards(ctx context.Context, filterConfigured bool) (*DashboardList, error) {
	var res DashboardList
	var e APIError
	r := c.api(c.conf.Site, "v1/dashboard").ErrorJSON(&e)
	if filterConfigured {
		r.Param("filter[configured]", "true")
	}
	if err := r.ToJSON(&res).Fetch(ctx); err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// GetDashboard retrieves a full dashboard definition by its identifier
func (c *Client) GetDashboard(ctx context.Context, dashboardID string) (Dashboard, error) {
	var res Dashboard
	var e APIError
	err := c.api(c.conf.Site, fmt.Sprintf("v1/dashboard/%s", dashboardID)).
		ErrorJSON(&e).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, wrapErr(err, &e)
	}
	return res, nil
}

// SearchMetrics searches actively reporting metrics by name fragment
func (c *Client) SearchMetrics(ctx context.Context, query string) (*MetricSearchResponse, error) {
	var res MetricSearchResponse
	var e APIError
	err := c.api(c.conf.MetricsSite, "v1/search").
		Param("q", fmt.Sprintf("metrics:%s", query)).
		ErrorJSON(&e).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// GetMetricMetadata retrieves the metadata of a metric by its name
func (c *Client) GetMetricMetadata(ctx context.Context, metricName string) (*MetricMetadata, error) {
	var res MetricMetadata
	var e APIError
	err := c.api(c.conf.MetricsSite, fmt.Sprintf("v1/metrics/%s", metricName)).
		ErrorJSON(&e).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// ListEvents retrieves events from the event stream within a time range
func (c *Client) ListEvents(ctx context.Context, req *EventsRequest) (*EventsResponse, error) {
	var res EventsResponse
	var e APIError
	r := c.api(c.conf.Site, "v1/events").
		Param("start", strconv.FormatInt(req.Start, 10)).
		Param("end", strconv.FormatInt(req.End, 10)).
		ErrorJSON(&e)
	if req.Priority != "" {
		r.Param("priority", req.Priority)
	}
	if req.Sources != "" {
		r.Param("sources", req.Sources)
	}
	if req.Tags != "" {
		r.Param("tags", req.Tags)
	}
	if req.Unaggregated {
		r.Param("unaggregated", "true")
	}
	if req.ExcludeAggregation {
		r.Param("exclude_aggregate", "true")
	}
	if err := r.ToJSON(&res).Fetch(ctx); err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// ListIncidents fetches a page of incidents
func (c *Client) ListIncidents(ctx context.Context, req *IncidentsRequest) (*IncidentsResponse, error) {
	var res IncidentsResponse
	var e APIError
	r := c.api(c.conf.Site, "v2/incidents").ErrorJSON(&e)
	c.incidentParams(r, req)
	if err := r.ToJSON(&res).Fetch(ctx); err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// SearchIncidents fetches a page of incidents matching a search query
func (c *Client) SearchIncidents(ctx context.Context, query string, req *IncidentsRequest) (*IncidentsResponse, error) {
	var res IncidentsResponse
	var e APIError
	r := c.api(c.conf.Site, "v2/incidents/search").
		Param("query", query).
		ErrorJSON(&e)
	c.incidentParams(r, req)
	if err := r.ToJSON(&res).Fetch(ctx); err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

func (c *Client) incidentParams(r *rq.Builder, req *IncidentsRequest) {
	if req.IncludeArchived {
		r.Param("filter[archived]", "true")
	}
	if req.PageSize > 0 {
		r.Param("page[size]", strconv.Itoa(req.PageSize))
	}
	if req.PageOffset > 0 {
		r.Param("page[offset]", strconv.Itoa(req.PageOffset))
	}
}

// SearchLogs searches log events with filter, sort and pagination
func (c *Client) SearchLogs(ctx context.Context, req *LogsSearchRequest) (*EventsPayload, error) {
	var res EventsPayload
	var e APIError
	err := c.api(c.conf.LogsSite, "v2/logs/events/search").
		Post().
		BodyJSON(req).
		ErrorJSON(&e).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// AggregateLogs computes aggregates and timeseries over log events
func (c *Client) AggregateLogs(ctx context.Context, req *LogsAggregateRequest) (*AggregateResponse, error) {
	var res AggregateResponse
	var e APIError
	err := c.api(c.conf.LogsSite, "v2/logs/analytics/aggregate").
		Post().
		BodyJSON(req).
		ErrorJSON(&e).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// SearchSpans searches APM span events with filter, sort and pagination
func (c *Client) SearchSpans(ctx context.Context, req *SpansSearchRequest) (*EventsPayload, error) {
	var res EventsPayload
	var e APIError
	body := spansSearchEnvelope{Data: spansSearchData{Attributes: req, Type: "search_request"}}
	err := c.api(c.conf.Site, "v2/spans/events/search").
		Post().
		BodyJSON(&body).
		ErrorJSON(&e).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}

// AggregateSpans computes aggregates and timeseries over APM span events
func (c *Client) AggregateSpans(ctx context.Context, req *SpansAggregateRequest) (*AggregateResponse, error) {
	var res AggregateResponse
	var e APIError
	body := spansAggregateEnvelope{Data: spansAggregateData{Attributes: req, Type: "aggregate_request"}}
	err := c.api(c.conf.Site, "v2/spans/analytics/aggregate").
		Post().
		BodyJSON(&body).
		ErrorJSON(&e).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, wrapErr(err, &e)
	}
	return &res, nil
}
