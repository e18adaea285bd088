package integration

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"

	"github.com/mohammed-shakir/csquares-cache/internal/cache/redisstore"
	"github.com/mohammed-shakir/csquares-cache/internal/cache/squarecache"
	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
	"github.com/mohammed-shakir/csquares-cache/internal/core/router"
	"github.com/mohammed-shakir/csquares-cache/internal/squares"
)

func newStack(t *testing.T, addr string) *squares.Service {
	t.Helper()

	mem, err := squarecache.New(64)
	if err != nil {
		t.Fatal(err)
	}

	var store squares.Store
	if addr != "" {
		client, err := redisstore.New(t.Context(), addr)
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = client.Close() })
		store = client
	}

	return squares.New(slog.New(slog.DiscardHandler), mem, store, time.Hour, time.Second)
}

func newServer(t *testing.T, svc *squares.Service) *httptest.Server {
	t.Helper()

	log := slog.New(slog.DiscardHandler)
	r := chi.NewRouter()
	r.Get("/encode", router.HandleEncode(log, 0, svc, func(v model.SquareResponse) any { return v }))
	r.Get("/squares/{id}", router.HandleSquare(log, svc))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func getSquare(t *testing.T, url string) model.SquareResponse {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d for %s", resp.StatusCode, url)
	}
	var out model.SquareResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func Test_Encode_CachedVsUncached_Identical(t *testing.T) {
	mr := miniredis.RunT(t)
	srv := newServer(t, newStack(t, mr.Addr()))

	url := srv.URL + "/encode?lat=-42.357&lng=147.841&decimals=1"
	first := getSquare(t, url)
	second := getSquare(t, url)

	if first.Identifier != "3414:227:238" {
		t.Fatalf("identifier: %s", first.Identifier)
	}
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("responses differ:\nFIRST : %s\nSECOND: %s", a, b)
	}
}

func Test_Lookup_SharedStoreAcrossInstances(t *testing.T) {
	mr := miniredis.RunT(t)

	writer := newServer(t, newStack(t, mr.Addr()))
	got := getSquare(t, writer.URL+"/encode?lat=-42.357&lng=147.841&decimals=1")

	// A second instance with its own LRU but the same redis must agree.
	reader := newServer(t, newStack(t, mr.Addr()))
	viaLookup := getSquare(t, reader.URL+"/squares/"+got.Identifier)

	if viaLookup.Identifier != got.Identifier {
		t.Fatalf("identifier: %s vs %s", viaLookup.Identifier, got.Identifier)
	}
	if viaLookup.LatBoundary != got.LatBoundary || viaLookup.LngBoundary != got.LngBoundary {
		t.Fatalf("boundaries differ: %+v vs %+v", viaLookup, got)
	}
}

func Test_Encode_NoStore_StillServes(t *testing.T) {
	srv := newServer(t, newStack(t, ""))

	got := getSquare(t, srv.URL+"/encode?lat=-42&lng=147&decimals=0")
	if got.Identifier != "3414:227" {
		t.Fatalf("identifier: %s", got.Identifier)
	}
}
