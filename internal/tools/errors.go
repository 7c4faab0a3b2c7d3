package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"datadog-mcp/client/datadog"
)

// Permission scopes named in translated 403 errors, per capability.
const (
	scopeMonitors   = "monitors_read"
	scopeDashboards = "dashboards_read"
	scopeMetrics    = "metrics_read"
	scopeEvents     = "events_read"
	scopeIncidents  = "incident_read"
	scopeLogs       = "logs_read_data"
	scopeAPM        = "apm_read"
)

// The span search/aggregate endpoints have a documented upstream quota.
const spanQuota = "300 requests per hour"

// translateAPIError maps a backend status code onto the domain error
// taxonomy. quota is empty for capabilities without a documented hourly
// quota; notFound is non-empty only for trace retrieval. The original
// error is logged on every translated path and returned unchanged on
// every other one.
func translateAPIError(err error, scope, quota, notFound string) error {
	var apiErr *datadog.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.StatusCode {
	case http.StatusForbidden:
		slog.Error("datadog request forbidden", "scope", scope, "error", apiErr)
		return fmt.Errorf("permission denied: this operation requires the %s scope", scope)
	case http.StatusTooManyRequests:
		if quota != "" {
			slog.Error("datadog request rate limited", "quota", quota, "error", apiErr)
			return fmt.Errorf("rate limit exceeded: this endpoint allows %s", quota)
		}
	case http.StatusNotFound:
		if notFound != "" {
			slog.Error("datadog resource not found", "error", apiErr)
			return errors.New(notFound)
		}
	}
	slog.Error("datadog request failed", "status", apiErr.StatusCode, "error", apiErr)
	return err
}
