// Copyright (c) 2026 The BGList Authors. All rights reserved.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tabletoplib/bglist/internal/platform/constants"
	"github.com/tabletoplib/bglist/internal/platform/ctxutil"
)

// # Cache Profiles

// Cache marks responses as publicly cacheable for the given duration.
// It is the profile applied to the listing endpoints.
func Cache(maxAge time.Duration) func(http.Handler) http.Handler {
	value := "public, max-age=" + strconv.Itoa(int(maxAge.Seconds()))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Cache-Control", value)
			next.ServeHTTP(writer, request)
		})
	}
}

// NoStore disables caching entirely. Mutation, credential, and import
// endpoints must never be cached.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(writer, request)
	})
}

// # Server-Side Response Cache

// cachedResponse is the Redis-serialized form of a cacheable response.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder buffers the response body so it can be stored after serving.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buffer bytes.Buffer
}

func (recorder *bodyRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *bodyRecorder) Write(data []byte) (int, error) {
	recorder.buffer.Write(data)
	return recorder.ResponseWriter.Write(data)
}

// ResponseCache serves GET responses from Redis for the given TTL.
//
// # Semantics
//
// Entries are keyed by the full request URI, so every pagination/sort/filter
// combination caches independently. Only 200 responses are stored. Staleness
// is bounded by the TTL alone; mutations do not invalidate the cache, which
// matches the fixed-duration cache profile advertised to clients.
func ResponseCache(client *redis.Client, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != http.MethodGet {
				next.ServeHTTP(writer, request)
				return
			}

			key := constants.RedisPrefixResponseCache + request.URL.RequestURI()

			// 1. Attempt to serve from cache
			if payload, err := client.Get(request.Context(), key).Bytes(); err == nil {
				var cached cachedResponse
				if err := json.Unmarshal(payload, &cached); err == nil {
					writer.Header().Set("Content-Type", cached.ContentType)
					writer.Header().Set("X-Cache", "HIT")
					writer.WriteHeader(cached.Status)
					_, _ = writer.Write(cached.Body)
					return
				}
			}

			// 2. Serve from the handler while buffering the body
			recorder := &bodyRecorder{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(recorder, request)

			// 3. Store successful responses for the next caller
			if recorder.status == http.StatusOK {
				payload, err := json.Marshal(cachedResponse{
					Status:      recorder.status,
					ContentType: recorder.Header().Get("Content-Type"),
					Body:        recorder.buffer.Bytes(),
				})
				if err == nil {
					if err := client.Set(request.Context(), key, payload, ttl).Err(); err != nil {
						ctxutil.GetLogger(request.Context()).Warn("response_cache_store_failed", "key", key, "error", err)
					}
				}
			}
		})
	}
}
