// Package fetch downloads benchmark files into a local cache directory,
// keyed by URL, so that repeated runs touch the network only once.
package fetch

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Cache maps URLs onto files below a single directory. A URL's slot is its
// last path segment, or the md5 of the whole URL when that segment is empty
// or carries a query string.
type Cache struct {
	dir string

	mu     sync.Mutex
	client *storage.Client
}

// New creates the cache directory if needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, pfx.Err(err)
	}

	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns the slot the URL would be cached at, whether or not it has
// been fetched yet.
func (c *Cache) Path(url string) string {
	filename := url
	if i := strings.LastIndex(url, "/"); i >= 0 {
		filename = url[i+1:]
	}
	if filename == "" || strings.Contains(filename, "?") {
		filename = fmt.Sprintf("%x", md5.Sum([]byte(url)))
	}

	return filepath.Join(c.dir, filename)
}

// Fetch returns a local path holding the contents of url, downloading into
// the cache unless a cached copy already exists. The file appears in its slot
// atomically, so a cached file is never truncated or half-written.
func (c *Cache) Fetch(url string, force bool) (string, error) {
	cachePath := c.Path(url)

	// If we have already copied the file over, don't duplicate work
	if !force {
		if _, err := os.Stat(cachePath); err == nil {
			log.Println("Using cached file:", cachePath)
			return cachePath, nil
		} else if !os.IsNotExist(err) {
			// An unreadable cache slot is not a cache hit.
			return "", fmt.Errorf("fetching %s: %w", url, err)
		}
	}

	log.Println("Downloading file:", url)
	log.Println("Saving to:", cachePath)

	r, err := c.open(url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer r.Close()

	if err := atomicWrite(cachePath, r); err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}

	return cachePath, nil
}

func (c *Cache) open(url string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(url, "gs://"):
		return c.openGoogleStorage(url)
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		resp, err := http.Get(url)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	}

	// Anything without a scheme is treated as a path on local disk.
	return os.Open(url)
}

func (c *Cache) openGoogleStorage(url string) (io.ReadCloser, error) {
	c.mu.Lock()
	if c.client == nil {
		// Create a google storage client with default credentials the
		// first time a gs:// URL shows up.
		client, err := storage.NewClient(context.Background())
		if err != nil {
			c.mu.Unlock()
			return nil, pfx.Err(err)
		}
		c.client = client
	}
	client := c.client
	c.mu.Unlock()

	// Detect the bucket and the path to the actual file
	pathParts := strings.SplitN(strings.TrimPrefix(url, "gs://"), "/", 2)
	if len(pathParts) != 2 {
		return nil, fmt.Errorf("tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}
	bucketName := pathParts[0]
	pathName := pathParts[1]

	handle := client.Bucket(bucketName).Object(pathName)

	return handle.NewReader(context.Background())
}

// atomicWrite streams r into a temporary file next to path and renames it
// into place once the copy has fully succeeded.
func atomicWrite(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return pfx.Err(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".partial.*")
	if err != nil {
		return pfx.Err(err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}

	return nil
}

// Clear removes the cache directory and everything in it.
func (c *Cache) Clear() error {
	return pfx.Err(os.RemoveAll(c.dir))
}

// ClearAll empties every cache below root, leaving the root directory itself
// in place.
func ClearAll(root string) error {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return pfx.Err(err)
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(root, entry.Name())); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
