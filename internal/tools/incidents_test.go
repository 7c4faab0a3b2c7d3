package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"datadog-mcp/client/datadog"
)

func TestGetIncidents(t *testing.T) {
	ctx := context.Background()

	t.Run("lists without query", func(t *testing.T) {
		tools, mockClient := newTestTool()
		mockClient.On("ListIncidents", ctx, mock.MatchedBy(func(req *datadog.IncidentsRequest) bool {
			return req.PageSize == 10 && req.PageOffset == 20 && req.IncludeArchived
		})).Return(&datadog.IncidentsResponse{Data: []datadog.Resource{{ID: "inc-1", Type: "incidents"}}}, nil).Once()

		result, _, err := tools.GetIncidents(ctx, nil, GetIncidentsParams{
			IncludeArchived: true,
			PageSize:        10,
			PageOffset:      20,
		})
		require.NoError(t, err)

		payload := decodeResult(t, result)
		assert.Equal(t, float64(1), payload["count"])
		mockClient.AssertExpectations(t)
	})

	t.Run("routes query to search", func(t *testing.T) {
		tools, mockClient := newTestTool()
		mockClient.On("SearchIncidents", ctx, "state:active", mock.Anything).
			Return(&datadog.IncidentsResponse{Data: []datadog.Resource{{ID: "inc-2", Type: "incidents"}}}, nil).Once()

		result, _, err := tools.GetIncidents(ctx, nil, GetIncidentsParams{Query: "state:active"})
		require.NoError(t, err)

		payload := decodeResult(t, result)
		incidents := payload["incidents"].([]any)
		require.Len(t, incidents, 1)
		assert.Equal(t, "inc-2", incidents[0].(map[string]any)["id"])
		mockClient.AssertNotCalled(t, "ListIncidents", ctx, mock.Anything)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		tools, mockClient := newTestTool()
		data := []datadog.Resource{{ID: "1"}, {ID: "2"}, {ID: "3"}}
		mockClient.On("ListIncidents", ctx, mock.Anything).
			Return(&datadog.IncidentsResponse{Data: data}, nil).Once()

		result, _, err := tools.GetIncidents(ctx, nil, GetIncidentsParams{Limit: 1})
		require.NoError(t, err)

		payload := decodeResult(t, result)
		assert.Equal(t, float64(1), payload["count"])
		assert.Len(t, payload["incidents"], 1)
	})

	t.Run("403 names the incident scope", func(t *testing.T) {
		tools, mockClient := newTestTool()
		mockClient.On("ListIncidents", ctx, mock.Anything).
			Return(nil, &datadog.APIError{StatusCode: http.StatusForbidden}).Once()

		_, _, err := tools.GetIncidents(ctx, nil, GetIncidentsParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incident_read")
	})
}
