package activity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v4/raghavdwd", r.URL.Path)
		require.Equal(t, "last", r.URL.Query().Get("y"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": {"2024": 312, "lastYear": 408},
			"contributions": [
				{"date": "2024-01-01", "count": 0, "level": 0},
				{"date": "2024-01-02", "count": 6, "level": 3}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "raghavdwd", nil)
	report, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 408, report.TotalLastYear)
	require.Len(t, report.Contributions, 2)
	assert.Equal(t, Day{Date: "2024-01-02", Count: 6, Level: 3}, report.Contributions[1])
}

func TestClientFetch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "raghavdwd", nil)
	_, err := c.Fetch(context.Background())
	assert.Error(t, err)
}
