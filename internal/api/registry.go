package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/johnkit/colorkit/internal/service"
)

// SeriesInfo describes one registered series for the API response.
type SeriesInfo struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// seriesCatalog lists every registered series in registry order.
func seriesCatalog(svc *service.ColormapService) []SeriesInfo {
	names := svc.SeriesNames()
	infos := make([]SeriesInfo, 0, len(names))
	for _, name := range names {
		s, err := svc.Series(name)
		if err != nil {
			continue
		}
		infos = append(infos, SeriesInfo{Name: name, Points: len(s)})
	}
	return infos
}

// Context key for the resolved series name
type ctxKey string

const seriesNameKey ctxKey = "seriesName"

// seriesMiddleware resolves the series from the URL and rejects unknown names.
func seriesMiddleware(svc *service.ColormapService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := chi.URLParam(r, "name")
			if _, err := svc.Series(name); err != nil {
				http.Error(w, "series not found: "+name, http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), seriesNameKey, name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getSeriesName(r *http.Request) string {
	if name, ok := r.Context().Value(seriesNameKey).(string); ok {
		return name
	}
	return ""
}
