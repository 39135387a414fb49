package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/abgdnv/storekeeper/pkg/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ContextHandler(t *testing.T) {
	testCases := []struct {
		name       string
		ctx        context.Context
		expectedID any
	}{
		{
			name:       "Request id added",
			ctx:        web.WithRequestID(context.Background(), "req-1"),
			expectedID: "req-1",
		},
		{
			name:       "No request id",
			ctx:        context.Background(),
			expectedID: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var buf bytes.Buffer
			log := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil))).With("component", "test")
			// when
			log.InfoContext(tc.ctx, "hello")
			// then
			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, "test", record["component"])
			assert.Equal(t, tc.expectedID, record["request_id"])
		})
	}
}
