package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/johnkit/colorkit/internal/cache"
	"github.com/johnkit/colorkit/internal/render"
	"github.com/johnkit/colorkit/internal/service"
	"github.com/johnkit/colorkit/pkg/colormap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer holds the test server and its dependencies
type testServer struct {
	server *httptest.Server
	cache  *cache.Manager
}

// setupTestServer initializes all components and returns a test server
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	cacheManager, err := cache.NewManager(cache.Config{
		ColorbarCacheSizeMB: 8,
		ColorbarTTL:         5 * time.Minute,
		QueryCacheSize:      100,
	})
	require.NoError(t, err)

	svc := service.NewColormapService(service.ColormapServiceConfig{
		Registry:      colormap.DefaultRegistry,
		Cache:         cacheManager,
		Renderer:      render.NewColorbarRenderer(render.Config{Width: 128, Height: 16}),
		DefaultSeries: colormap.Rainbow,
	})

	router := NewRouter(RouterConfig{
		Service:     svc,
		Cache:       cacheManager,
		CORSOrigins: []string{"http://localhost:3000"},
	})

	ts := &testServer{
		server: httptest.NewServer(router),
		cache:  cacheManager,
	}
	t.Cleanup(ts.close)
	return ts
}

// close cleans up test server resources
func (ts *testServer) close() {
	ts.server.Close()
	ts.cache.Close()
}

func (ts *testServer) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func (ts *testServer) post(t *testing.T, path, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(ts.server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decodeJSON(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &result), string(body))
	return result
}

func TestHealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := ts.get(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestSeriesListEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := ts.get(t, "/api/series")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	result := decodeJSON(t, body)
	assert.Equal(t, colormap.Rainbow, result["default"])

	series, ok := result["series"].([]interface{})
	require.True(t, ok)
	require.Len(t, series, len(colormap.SeriesNames()))
	first := series[0].(map[string]interface{})
	assert.Equal(t, colormap.Rainbow, first["name"])
	assert.Equal(t, float64(21), first["points"])
}

func TestSeriesEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := ts.get(t, "/api/series/viridis")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeJSON(t, body)
	assert.Equal(t, "viridis", result["name"])
	points := result["points"].([]interface{})
	assert.Len(t, points, 11)

	resp, _ = ts.get(t, "/api/series/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestColorEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedColor  interface{}
	}{
		{
			name:           "default byte format",
			path:           "/api/series/rainbow/color?value=0.6",
			expectedStatus: http.StatusOK,
			expectedColor:  []interface{}{float64(0), float64(255), float64(0)},
		},
		{
			name:           "hex with remapped range",
			path:           "/api/series/rainbow/color?value=160&min=-40&max=160&format=hex",
			expectedStatus: http.StatusOK,
			expectedColor:  "#cccccc",
		},
		{
			name:           "fraction clamped low",
			path:           "/api/series/rainbow/color?value=-5&format=fraction",
			expectedStatus: http.StatusOK,
			expectedColor:  []interface{}{float64(0), float64(0), float64(0)},
		},
		{
			name:           "missing value",
			path:           "/api/series/rainbow/color",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid value",
			path:           "/api/series/rainbow/color?value=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid format",
			path:           "/api/series/rainbow/color?value=0.5&format=cmyk",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "degenerate range",
			path:           "/api/series/rainbow/color?value=1&min=2&max=2",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown series",
			path:           "/api/series/nope/color?value=0.5",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := ts.get(t, tt.path)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode, string(body))
			if tt.expectedColor != nil {
				result := decodeJSON(t, body)
				assert.Equal(t, tt.expectedColor, result["color"])
			}
		})
	}
}

func TestColorbarEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"default size", "/api/series/rainbow/colorbar.png", http.StatusOK},
		{"vertical", "/api/series/plasma/colorbar.png?orientation=vertical&width=10&height=50", http.StatusOK},
		{"custom range", "/api/series/magma/colorbar.png?min=-1&max=1", http.StatusOK},
		{"invalid width", "/api/series/rainbow/colorbar.png?width=-3", http.StatusBadRequest},
		{"too large", "/api/series/rainbow/colorbar.png?height=100000", http.StatusBadRequest},
		{"invalid orientation", "/api/series/rainbow/colorbar.png?orientation=diagonal", http.StatusBadRequest},
		{"invalid min", "/api/series/rainbow/colorbar.png?min=NaN", http.StatusBadRequest},
		{"unknown series", "/api/series/nope/colorbar.png", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := ts.get(t, tt.path)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode, string(body))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
				require.Greater(t, len(body), 8)
				assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, body[:8])
			}
		})
	}
}

func TestInterpolateEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("named series", func(t *testing.T) {
		resp, body := ts.post(t, "/api/interpolate", `{"series":"rainbow","values":[0,0.6,1],"format":"hex"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		result := decodeJSON(t, body)
		assert.Equal(t, "hex", result["format"])
		assert.Equal(t, []interface{}{"#000000", "#00ff00", "#cccccc"}, result["colors"])
	})

	t.Run("raw points", func(t *testing.T) {
		resp, body := ts.post(t, "/api/interpolate", `{
			"points": [
				{"position": 0, "color": [0, 0.6, 0.55]},
				{"position": 0.2, "color": [0.2, 0.4, 0.54]},
				{"position": 0.4, "color": [0.4, 0.2, 0.53]},
				{"position": 0.6, "color": "#993385"},
				{"position": 0.8, "color": [0.8, 0.4, 0.51]},
				{"position": 1, "color": [1, 0.6, 0.5]}
			],
			"min": -40,
			"max": 160,
			"values": [-20, 80],
			"format": "hex"
		}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		result := decodeJSON(t, body)
		colors := result["colors"].([]interface{})
		require.Len(t, colors, 2)
		assert.Equal(t, "#1a808b", colors[0])
		assert.Equal(t, "#993385", colors[1])
		assert.Equal(t, float64(-40), result["min"])
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			body   string
			status int
		}{
			{`not json`, http.StatusBadRequest},
			{`{"values":[0.5],"unknown":1}`, http.StatusBadRequest},
			{`{"series":"nope","values":[0.5]}`, http.StatusNotFound},
			{`{"values":[0.5],"format":"cmyk"}`, http.StatusBadRequest},
			{`{"values":[0.5],"min":3,"max":3}`, http.StatusBadRequest},
			{`{"points":[{"position":0,"color":"bogus"}],"values":[0.5]}`, http.StatusBadRequest},
		}
		for _, c := range cases {
			resp, body := ts.post(t, "/api/interpolate", c.body)
			assert.Equal(t, c.status, resp.StatusCode, "%s -> %s", c.body, body)
		}
	})
}

func TestCacheStatsEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	ts.get(t, "/api/series/rainbow/colorbar.png")
	resp, body := ts.get(t, "/api/cache/stats")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeJSON(t, body)
	assert.Equal(t, float64(1), result["colorbar_cache_len"])
}

func TestGzipResponses(t *testing.T) {
	ts := setupTestServer(t)

	values := make([]string, 500)
	for i := range values {
		values[i] = "0.5"
	}
	req, err := http.NewRequest(http.MethodPost, ts.server.URL+"/api/interpolate",
		strings.NewReader(`{"values":[`+strings.Join(values, ",")+`],"format":"hex"}`))
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")

	// Setting Accept-Encoding manually disables transparent decompression.
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
}
