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

func TestGetEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		tools, mockClient := newTestTool()
		mockClient.On("ListEvents", ctx, mock.MatchedBy(func(req *datadog.EventsRequest) bool {
			return req.Start == 1700000000 && req.End == 1700003600 && req.Priority == "normal"
		})).Return(&datadog.EventsResponse{Events: []datadog.Event{{ID: 1, Title: "deploy"}}}, nil).Once()

		result, _, err := tools.GetEvents(ctx, nil, GetEventsParams{
			Start:    1700000000,
			End:      1700003600,
			Priority: "normal",
		})
		require.NoError(t, err)

		payload := decodeResult(t, result)
		assert.Equal(t, float64(1), payload["count"])
		mockClient.AssertExpectations(t)
	})

	t.Run("missing time range", func(t *testing.T) {
		tools, mockClient := newTestTool()

		_, _, err := tools.GetEvents(ctx, nil, GetEventsParams{End: 1700003600})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start")

		_, _, err = tools.GetEvents(ctx, nil, GetEventsParams{Start: 1700000000})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "end")

		assert.Empty(t, mockClient.Calls)
	})

	t.Run("invalid priority", func(t *testing.T) {
		tools, mockClient := newTestTool()

		_, _, err := tools.GetEvents(ctx, nil, GetEventsParams{
			Start:    1700000000,
			End:      1700003600,
			Priority: "urgent",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "priority")
		assert.Empty(t, mockClient.Calls)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		tools, mockClient := newTestTool()
		events := []datadog.Event{{ID: 1}, {ID: 2}, {ID: 3}}
		mockClient.On("ListEvents", ctx, mock.Anything).
			Return(&datadog.EventsResponse{Events: events}, nil).Once()

		result, _, err := tools.GetEvents(ctx, nil, GetEventsParams{Start: 1, End: 2, Limit: 2})
		require.NoError(t, err)

		payload := decodeResult(t, result)
		assert.Equal(t, float64(2), payload["count"])
		assert.Len(t, payload["events"], 2)
	})

	t.Run("403 names the events scope", func(t *testing.T) {
		tools, mockClient := newTestTool()
		mockClient.On("ListEvents", ctx, mock.Anything).
			Return(nil, &datadog.APIError{StatusCode: http.StatusForbidden}).Once()

		_, _, err := tools.GetEvents(ctx, nil, GetEventsParams{Start: 1, End: 2})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "events_read")
	})
}
