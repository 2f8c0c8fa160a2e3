// source.go abstracts where framework JSON resources come from: an HTTP(S)
// base URL or a local directory. The loader only ever asks for named files
// relative to the base.
package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source fetches a single named resource from a dataset location.
type Source interface {
	// Fetch returns the raw bytes of the named resource. A missing or
	// unreadable resource is an error; the loader decides how to degrade.
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Base returns the location the source reads from, for logging.
	Base() string
}

// Open selects a source for the given base location: http:// and https://
// bases are fetched over the network, everything else is treated as a
// directory path.
func Open(base string) Source {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return &httpSource{
			base:   trimmed,
			client: &http.Client{Timeout: 30 * time.Second},
		}
	}
	return &dirSource{dir: trimmed}
}

type httpSource struct {
	base   string
	client *http.Client
}

func (s *httpSource) Base() string { return s.base }

func (s *httpSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	target := s.base + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", target, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", target, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	return data, nil
}

type dirSource struct {
	dir string
}

func (s *dirSource) Base() string { return s.dir }

func (s *dirSource) Fetch(_ context.Context, name string) ([]byte, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
