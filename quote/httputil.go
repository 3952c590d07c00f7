package quote

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// diskCache is an http.RoundTripper caching successful responses on disk.
// Entries are keyed by day, so the cache expires every day.
type diskCache struct {
	base http.RoundTripper
	dir  string
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", time.Now().Format(time.DateOnly), req.Method, req.URL.String())
	key = fmt.Sprintf("pms-quote-%x", sha1.Sum([]byte(key)))

	if resp, err := c.get(key, req); err == nil {
		l.Debug("cache hit", zap.Stringer("url", req.URL))
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	l.Debug("http", zap.String("method", req.Method), zap.Stringer("url", req.URL), zap.String("status", resp.Status))
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		l.Warn("cache write failed (ignored)", zap.Error(err))
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	// DumpResponse reads the body and replaces it with an in-memory copy.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o600)
}

// Daily returns a client caching responses for the day in dir. An empty dir
// means os.TempDir().
func Daily(dir string) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport, dir: dir}}
}

// jwget performs an HTTP GET request and decodes the JSON response. Numbers
// are decoded as json.Number to keep their exact value.
func jwget(ctx context.Context, client *http.Client, addr string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var jobj any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode response of %v%v: %w", resp.Request.URL.Host, resp.Request.URL.Path, err)
	}
	return jobj, nil
}
