// Package api provides HTTP handlers for the colormap server.
package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/johnkit/colorkit/internal/cache"
	"github.com/johnkit/colorkit/internal/service"
	"github.com/johnkit/colorkit/pkg/colormap"
	"github.com/klauspost/compress/gzhttp"
)

const maxInterpolateBodyBytes = 1 << 20 // 1 MiB

// RouterConfig contains router configuration.
type RouterConfig struct {
	Service     *service.ColormapService
	Cache       *cache.Manager
	CORSOrigins []string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return gzhttp.GzipHandler(next)
	})

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/series", seriesListHandler(cfg.Service))
		r.Post("/interpolate", interpolateHandler(cfg.Service))
		r.Get("/cache/stats", cacheStatsHandler(cfg.Cache))

		// Series-scoped routes: /api/series/{name}/...
		r.Route("/series/{name}", func(r chi.Router) {
			r.Use(seriesMiddleware(cfg.Service))

			r.Get("/", seriesHandler(cfg.Service))
			r.Get("/color", colorHandler(cfg.Service))
			r.Get("/colorbar.png", colorbarHandler(cfg.Service))
		})
	})

	return r
}

// seriesListHandler returns the registered series.
func seriesListHandler(svc *service.ColormapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"default": svc.DefaultSeries(),
			"series":  seriesCatalog(svc),
		})
	}
}

// seriesHandler returns the control points of one series.
func seriesHandler(svc *service.ColormapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := getSeriesName(r)
		s, err := svc.Series(name)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		writeJSON(w, map[string]interface{}{
			"name":   name,
			"points": s,
		})
	}
}

// colorHandler maps a single value: ?value=&min=&max=&format=
func colorHandler(svc *service.ColormapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		raw := strings.TrimSpace(q.Get("value"))
		if raw == "" {
			http.Error(w, "missing required query param: value", http.StatusBadRequest)
			return
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) {
			http.Error(w, "invalid value", http.StatusBadRequest)
			return
		}

		min, max, ok := parseRange(w, q)
		if !ok {
			return
		}

		format := colormap.FormatByte
		if f := q.Get("format"); f != "" {
			format, err = colormap.ParseFormat(f)
			if err != nil {
				writeError(w, err)
				return
			}
		}

		c, err := svc.Color(getSeriesName(r), value, min, max, format)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]interface{}{
			"value":  value,
			"format": format.String(),
			"color":  c,
		})
	}
}

// colorbarHandler renders ?width=&height=&orientation=&min=&max=
func colorbarHandler(svc *service.ColormapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		width, ok := parseSize(w, q, "width")
		if !ok {
			return
		}
		height, ok := parseSize(w, q, "height")
		if !ok {
			return
		}

		vertical := false
		switch strings.ToLower(strings.TrimSpace(q.Get("orientation"))) {
		case "", "horizontal", "h":
		case "vertical", "v":
			vertical = true
		default:
			http.Error(w, "invalid orientation", http.StatusBadRequest)
			return
		}

		min, max, ok := parseRange(w, q)
		if !ok {
			return
		}

		data, err := svc.Colorbar(service.ColorbarRequest{
			Series:   getSeriesName(r),
			Width:    width,
			Height:   height,
			Vertical: vertical,
			Min:      min,
			Max:      max,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write(data)
	}
}

// interpolateHandler maps a batch of values posted as JSON.
func interpolateHandler(svc *service.ColormapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxInterpolateBodyBytes)

		var req service.InterpolateRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		data, err := svc.InterpolateJSON(req)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

// cacheStatsHandler reports cache occupancy.
func cacheStatsHandler(c *cache.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c == nil {
			writeJSON(w, map[string]interface{}{})
			return
		}
		writeJSON(w, c.Stats())
	}
}

const maxColorbarSide = 4096

func parseSize(w http.ResponseWriter, q url.Values, key string) (int, bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > maxColorbarSide {
		http.Error(w, "invalid "+key, http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func parseRange(w http.ResponseWriter, q url.Values) (min, max *float64, ok bool) {
	for _, key := range []string{"min", "max"} {
		raw := strings.TrimSpace(q.Get(key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			http.Error(w, "invalid "+key, http.StatusBadRequest)
			return nil, nil, false
		}
		if key == "min" {
			min = &v
		} else {
			max = &v
		}
	}
	return min, max, true
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, colormap.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, colormap.ErrInvalidFormat),
		errors.Is(err, colormap.ErrInvalidValue),
		errors.Is(err, colormap.ErrDegenerateRange),
		errors.Is(err, colormap.ErrDegenerateSeries),
		errors.Is(err, colormap.ErrEmptySeries),
		errors.Is(err, colormap.ErrInvalidSeries):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTooManyValues):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusForError(err))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
