// Package squares serves encode and lookup requests, layering an
// in-process LRU and an optional Redis tier over the pure codec.
package squares

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mohammed-shakir/csquares-cache/internal/cache/keys"
	"github.com/mohammed-shakir/csquares-cache/internal/cache/squarecache"
	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
	"github.com/mohammed-shakir/csquares-cache/internal/core/observability"
	"github.com/mohammed-shakir/csquares-cache/pkg/csquares"
	"github.com/mohammed-shakir/csquares-cache/pkg/geodesy"
)

// Store is the Redis-tier seam; nil disables that tier.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

type Service struct {
	log       *slog.Logger
	mem       *squarecache.Cache
	store     Store
	ttl       time.Duration
	opTimeout time.Duration
}

func New(log *slog.Logger, mem *squarecache.Cache, store Store, ttl, opTimeout time.Duration) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log, mem: mem, store: store, ttl: ttl, opTimeout: opTimeout}
}

// Encode resolves a coordinate pair to its grid cell, consulting the LRU
// and Redis tiers before running the codec. Cache failures degrade to a
// plain encode; only codec errors surface to the caller.
func (s *Service) Encode(ctx context.Context, lat, lng float64, decimals int) (model.SquareResponse, error) {
	key := keys.Encode(lat, lng, decimals)
	if v, ok := s.mem.Get(key); ok {
		return v, nil
	}
	if v, ok := s.storeGet(ctx, key); ok {
		s.mem.Add(key, v)
		return v, nil
	}

	sq, err := csquares.Encode(lat, lng, decimals)
	observability.IncEncode("encode", err)
	if err != nil {
		return model.SquareResponse{}, err
	}

	resp := toResponse(sq)
	s.mem.Add(key, resp)
	s.storeSet(ctx, key, resp)
	// Prime the identifier key too so lookups of a freshly encoded
	// cell hit the store instead of re-parsing.
	s.storeSet(ctx, keys.Square(resp.Identifier), resp)
	return resp, nil
}

// Lookup resolves an identifier back to its cell geometry.
func (s *Service) Lookup(ctx context.Context, identifier string) (model.SquareResponse, error) {
	key := keys.Square(identifier)
	if v, ok := s.mem.Get(key); ok {
		return v, nil
	}
	if v, ok := s.storeGet(ctx, key); ok {
		s.mem.Add(key, v)
		return v, nil
	}

	sq, err := csquares.Parse(identifier)
	observability.IncEncode("parse", err)
	if err != nil {
		return model.SquareResponse{}, err
	}

	resp := toResponse(sq)
	s.mem.Add(key, resp)
	s.storeSet(ctx, key, resp)
	return resp, nil
}

// Distance is the great-circle distance between two positions in km.
func (s *Service) Distance(from, to model.Position) model.DistanceResponse {
	return model.DistanceResponse{
		From: from,
		To:   to,
		Km:   geodesy.Distance(from.Lat, from.Lng, to.Lat, to.Lng),
	}
}

func (s *Service) storeGet(ctx context.Context, key string) (model.SquareResponse, bool) {
	if s.store == nil {
		return model.SquareResponse{}, false
	}
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	raw, ok, err := s.store.Get(opCtx, key)
	if err != nil {
		s.log.Warn("cache get failed", "key", key, "err", err)
		return model.SquareResponse{}, false
	}
	if !ok {
		observability.IncCacheMiss("redis")
		return model.SquareResponse{}, false
	}
	var v model.SquareResponse
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn("cache entry undecodable", "key", key, "err", err)
		return model.SquareResponse{}, false
	}
	observability.IncCacheHit("redis")
	return v, true
}

func (s *Service) storeSet(ctx context.Context, key string, v model.SquareResponse) {
	if s.store == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("cache entry unencodable", "key", key, "err", err)
		return
	}
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	if err := s.store.Set(opCtx, key, raw, s.ttl); err != nil {
		s.log.Warn("cache set failed", "key", key, "err", err)
	}
}

func toResponse(sq *csquares.Square) model.SquareResponse {
	lat, lng, c := sq.LatBoundary(), sq.LngBoundary(), sq.Center()
	return model.SquareResponse{
		Identifier:  sq.Identifier(),
		Resolution:  sq.Resolution().Degrees(),
		LatBoundary: [2]float64{lat.Near, lat.Far},
		LngBoundary: [2]float64{lng.Near, lng.Far},
		Center:      model.Position{Lat: c.Lat, Lng: c.Lng},
	}
}
