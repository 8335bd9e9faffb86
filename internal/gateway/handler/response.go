package handler

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/blake2b"
)

// encodedResponse is a fully rendered 200 body. The catalog never changes
// after startup, so an entry stays valid until it is evicted.
type encodedResponse struct {
	body []byte
	etag string
}

type responseCache struct {
	entries *lru.Cache[string, encodedResponse]
}

func newResponseCache(size int) (*responseCache, error) {
	if size <= 0 {
		size = 256
	}
	entries, err := lru.New[string, encodedResponse](size)
	if err != nil {
		return nil, fmt.Errorf("init response cache: %w", err)
	}
	return &responseCache{entries: entries}, nil
}

func (c *responseCache) get(key string, build func() any) (encodedResponse, error) {
	if cached, ok := c.entries.Get(key); ok {
		return cached, nil
	}
	body, err := json.Marshal(build())
	if err != nil {
		return encodedResponse{}, err
	}
	resp := encodedResponse{body: append(body, '\n'), etag: etagFor(body)}
	c.entries.Add(key, resp)
	return resp, nil
}

func (c *responseCache) Len() int {
	return c.entries.Len()
}

func etagFor(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func cacheKey(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return r.URL.Path
	}
	return r.URL.Path + "?" + r.URL.RawQuery
}

// serveCached writes an encoded 200 response, answering 304 when the client
// already holds the current representation.
func serveCached(w http.ResponseWriter, r *http.Request, resp encodedResponse) {
	w.Header().Set("ETag", resp.etag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if matchesETag(r.Header.Get("If-None-Match"), resp.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.body)
}

func matchesETag(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error       string   `json:"error"`
	ID          string   `json:"id,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}
