package datadog

// Datadog API DTOs. List responses keep deep attribute payloads as plain
// maps so the tool layer can pass them through unmodified.

type Monitor struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Query        string         `json:"query"`
	Message      string         `json:"message,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	OverallState string         `json:"overall_state,omitempty"`
	Priority     *int64         `json:"priority,omitempty"`
	Created      string         `json:"created,omitempty"`
	Modified     string         `json:"modified,omitempty"`
	Creator      map[string]any `json:"creator,omitempty"`
	Options      map[string]any `json:"options,omitempty"`
}

// MonitorsRequest carries the query parameters of GET /api/v1/monitor.
type MonitorsRequest struct {
	GroupStates []string
	Name        string
	Tags        string
	MonitorTags string
	PageSize    int
}

type DashboardSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	LayoutType   string `json:"layout_type,omitempty"`
	URL          string `json:"url,omitempty"`
	AuthorHandle string `json:"author_handle,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	ModifiedAt   string `json:"modified_at,omitempty"`
	IsReadOnly   bool   `json:"is_read_only,omitempty"`
}

type DashboardList struct {
	Dashboards []DashboardSummary `json:"dashboards"`
}

// Dashboard is the full definition returned by GET /api/v1/dashboard/{id}.
// Widget trees are arbitrarily nested, so the whole document stays untyped.
type Dashboard map[string]any

type MetricSearchResponse struct {
	Results struct {
		Metrics []string `json:"metrics"`
	} `json:"results"`
}

type MetricMetadata struct {
	Description    string `json:"description,omitempty"`
	ShortName      string `json:"short_name,omitempty"`
	Integration    string `json:"integration,omitempty"`
	Type           string `json:"type,omitempty"`
	Unit           string `json:"unit,omitempty"`
	PerUnit        string `json:"per_unit,omitempty"`
	StatsdInterval int64  `json:"statsd_interval,omitempty"`
}

type Event struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Text         string   `json:"text,omitempty"`
	DateHappened int64    `json:"date_happened"`
	Priority     string   `json:"priority,omitempty"`
	AlertType    string   `json:"alert_type,omitempty"`
	Host         string   `json:"host,omitempty"`
	Source       string   `json:"source,omitempty"`
	DeviceName   string   `json:"device_name,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// EventsRequest carries the query parameters of GET /api/v1/events.
// Start and End are epoch seconds and always set.
type EventsRequest struct {
	Start              int64
	End                int64
	Priority           string
	Sources            string
	Tags               string
	Unaggregated       bool
	ExcludeAggregation bool
}

type EventsResponse struct {
	Events []Event `json:"events"`
	Status string  `json:"status,omitempty"`
}

// Resource is the generic JSON:API object used by the v2 endpoints
// (incidents, log events, span events).
type Resource struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type IncidentsRequest struct {
	IncludeArchived bool
	PageSize        int
	PageOffset      int
}

type IncidentsResponse struct {
	Data []Resource     `json:"data"`
	Meta map[string]any `json:"meta,omitempty"`
}

// QueryFilter is the filter block shared by the log and span search and
// aggregate requests. From/To accept Datadog time math ("now-15m").
type QueryFilter struct {
	Query   string   `json:"query,omitempty"`
	From    string   `json:"from,omitempty"`
	To      string   `json:"to,omitempty"`
	Indexes []string `json:"indexes,omitempty"`
}

type Page struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type LogsSearchRequest struct {
	Filter *QueryFilter `json:"filter,omitempty"`
	Sort   string       `json:"sort,omitempty"`
	Page   *Page        `json:"page,omitempty"`
}

type Compute struct {
	Aggregation string `json:"aggregation"`
	Metric      string `json:"metric,omitempty"`
	Interval    string `json:"interval,omitempty"`
	Type        string `json:"type,omitempty"`
}

type GroupBy struct {
	Facet string `json:"facet"`
	Limit int    `json:"limit,omitempty"`
}

type AggregateOptions struct {
	Timezone string `json:"timezone,omitempty"`
}

type LogsAggregateRequest struct {
	Compute []Compute         `json:"compute,omitempty"`
	Filter  *QueryFilter      `json:"filter,omitempty"`
	GroupBy []GroupBy         `json:"group_by,omitempty"`
	Options *AggregateOptions `json:"options,omitempty"`
}

type SpansSearchRequest struct {
	Filter *QueryFilter `json:"filter,omitempty"`
	Sort   string       `json:"sort,omitempty"`
	Page   *Page        `json:"page,omitempty"`
}

type SpansAggregateRequest struct {
	Compute []Compute         `json:"compute,omitempty"`
	Filter  *QueryFilter      `json:"filter,omitempty"`
	GroupBy []GroupBy         `json:"group_by,omitempty"`
	Options *AggregateOptions `json:"options,omitempty"`
}

// EventsPayload is the response shape of the v2 search endpoints.
type EventsPayload struct {
	Data  []Resource     `json:"data"`
	Meta  map[string]any `json:"meta,omitempty"`
	Links map[string]any `json:"links,omitempty"`
}

// AggregateResponse is the response shape of the v2 aggregate endpoints.
type AggregateResponse struct {
	Data map[string]any `json:"data"`
	Meta map[string]any `json:"meta,omitempty"`
}

// The v2 span endpoints wrap request attributes in a JSON:API envelope.

type spansSearchEnvelope struct {
	Data spansSearchData `json:"data"`
}

type spansSearchData struct {
	Attributes *SpansSearchRequest `json:"attributes"`
	Type       string              `json:"type"`
}

type spansAggregateEnvelope struct {
	Data spansAggregateData `json:"data"`
}

type spansAggregateData struct {
	Attributes *SpansAggregateRequest `json:"attributes"`
	Type       string                 `json:"type"`
}
