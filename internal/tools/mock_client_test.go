package tools

import (
	"context"

	"github.com/stretchr/testify/mock"

	"datadog-mcp/client/datadog"
)

type MockDatadogClient struct {
	mock.Mock
}

func (m *MockDatadogClient) ListMonitors(ctx context.Context, req *datadog.MonitorsRequest) ([]datadog.Monitor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]datadog.Monitor), args.Error(1)
}

func (m *MockDatadogClient) GetMonitor(ctx context.Context, monitorID int64) (*datadog.Monitor, error) {
	args := m.Called(ctx, monitorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.Monitor), args.Error(1)
}

func (m *MockDatadogClient) ListDashboards(ctx context.Context, filterConfigured bool) (*datadog.DashboardList, error) {
	args := m.Called(ctx, filterConfigured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.DashboardList), args.Error(1)
}

func (m *MockDatadogClient) GetDashboard(ctx context.Context, dashboardID string) (datadog.Dashboard, error) {
	args := m.Called(ctx, dashboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(datadog.Dashboard), args.Error(1)
}

func (m *MockDatadogClient) SearchMetrics(ctx context.Context, query string) (*datadog.MetricSearchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.MetricSearchResponse), args.Error(1)
}

func (m *MockDatadogClient) GetMetricMetadata(ctx context.Context, metricName string) (*datadog.MetricMetadata, error) {
	args := m.Called(ctx, metricName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.MetricMetadata), args.Error(1)
}

func (m *MockDatadogClient) ListEvents(ctx context.Context, req *datadog.EventsRequest) (*datadog.EventsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.EventsResponse), args.Error(1)
}

func (m *MockDatadogClient) ListIncidents(ctx context.Context, req *datadog.IncidentsRequest) (*datadog.IncidentsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.IncidentsResponse), args.Error(1)
}

func (m *MockDatadogClient) SearchIncidents(ctx context.Context, query string, req *datadog.IncidentsRequest) (*datadog.IncidentsResponse, error) {
	args := m.Called(ctx, query, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.IncidentsResponse), args.Error(1)
}

func (m *MockDatadogClient) SearchLogs(ctx context.Context, req *datadog.LogsSearchRequest) (*datadog.EventsPayload, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.EventsPayload), args.Error(1)
}

func (m *MockDatadogClient) AggregateLogs(ctx context.Context, req *datadog.LogsAggregateRequest) (*datadog.AggregateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.AggregateResponse), args.Error(1)
}

func (m *MockDatadogClient) SearchSpans(ctx context.Context, req *datadog.SpansSearchRequest) (*datadog.EventsPayload, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.EventsPayload), args.Error(1)
}

func (m *MockDatadogClient) AggregateSpans(ctx context.Context, req *datadog.SpansAggregateRequest) (*datadog.AggregateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datadog.AggregateResponse), args.Error(1)
}
