package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
	"github.com/mohammed-shakir/csquares-cache/internal/core/observability"
	"github.com/mohammed-shakir/csquares-cache/pkg/csquares"
)

// SquareService answers validated requests; the router owns parsing,
// status mapping and http metrics.
type SquareService interface {
	Encode(ctx context.Context, lat, lng float64, decimals int) (model.SquareResponse, error)
	Lookup(ctx context.Context, identifier string) (model.SquareResponse, error)
	Distance(from, to model.Position) model.DistanceResponse
}

// GeoJSONRenderer turns a response into a GeoJSON feature for
// format=geojson requests.
type GeoJSONRenderer func(model.SquareResponse) any

func HandleEncode(logger *slog.Logger, defaultDecimals int, svc SquareService, render GeoJSONRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/encode", sw.code, time.Since(start).Seconds())
		}()

		q, err := ParseEncodeRequest(r, defaultDecimals)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := svc.Encode(r.Context(), q.Lat, q.Lng, q.Decimals)
		if err != nil {
			writeCodecError(sw, logger, err)
			return
		}

		if q.Format == "geojson" {
			writeJSON(sw, render(resp))
			return
		}
		writeJSON(sw, resp)
	}
}

func HandleSquare(logger *slog.Logger, svc SquareService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/squares/{id}", sw.code, time.Since(start).Seconds())
		}()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			http.Error(sw, "missing identifier", http.StatusBadRequest)
			return
		}

		resp, err := svc.Lookup(r.Context(), id)
		if err != nil {
			writeCodecError(sw, logger, err)
			return
		}
		writeJSON(sw, resp)
	}
}

func HandleDistance(logger *slog.Logger, svc SquareService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/distance", sw.code, time.Since(start).Seconds())
		}()

		q, err := ParseDistanceRequest(r)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(sw, svc.Distance(q.From, q.To))
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func ParseEncodeRequest(r *http.Request, defaultDecimals int) (model.EncodeRequest, error) {
	lat, err := parseCoord(r.URL.Query().Get("lat"), "lat")
	if err != nil {
		return model.EncodeRequest{}, err
	}
	lng, err := parseCoord(r.URL.Query().Get("lng"), "lng")
	if err != nil {
		return model.EncodeRequest{}, err
	}

	decimals := defaultDecimals
	if raw := strings.TrimSpace(r.URL.Query().Get("decimals")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return model.EncodeRequest{}, fmt.Errorf("invalid decimals: %q", raw)
		}
		decimals = n
	}
	if decimals < 0 || decimals > csquares.MaxDecimals {
		return model.EncodeRequest{}, fmt.Errorf("decimals must be in 0..%d", csquares.MaxDecimals)
	}

	format := strings.TrimSpace(r.URL.Query().Get("format"))
	switch format {
	case "":
		format = "json"
	case "json", "geojson":
	default:
		return model.EncodeRequest{}, fmt.Errorf("unsupported format: %q", format)
	}

	return model.EncodeRequest{Lat: lat, Lng: lng, Decimals: decimals, Format: format}, nil
}

func ParseDistanceRequest(r *http.Request) (model.DistanceRequest, error) {
	from, err := parsePosition(r.URL.Query().Get("from"), "from")
	if err != nil {
		return model.DistanceRequest{}, err
	}
	to, err := parsePosition(r.URL.Query().Get("to"), "to")
	if err != nil {
		return model.DistanceRequest{}, err
	}
	return model.DistanceRequest{From: from, To: to}, nil
}

func parsePosition(raw, name string) (model.Position, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Position{}, fmt.Errorf("missing required parameter: %s", name)
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return model.Position{}, fmt.Errorf("%s: expected lat,lng", name)
	}
	lat, err := parseCoord(parts[0], name+" lat")
	if err != nil {
		return model.Position{}, err
	}
	lng, err := parseCoord(parts[1], name+" lng")
	if err != nil {
		return model.Position{}, err
	}
	return model.Position{Lat: lat, Lng: lng}, nil
}

func parseCoord(raw, name string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter: %s", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

// codec errors are caller mistakes; anything else is ours
func writeCodecError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, csquares.ErrResolutionExhausted) || errors.Is(err, csquares.ErrMalformedIdentifier) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Error("square request failed", "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
