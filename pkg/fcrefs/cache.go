package fcrefs

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
)

// documentKey identifies one on-disk version of an archive.
type documentKey struct {
	path    string
	size    int64
	modTime time.Time
}

// documentCache holds parsed documents so unchanged archives are not
// re-read when one Scanner runs several scans.
type documentCache struct {
	entries *lru.Cache[documentKey, *models.Node]
}

func newDocumentCache(size int) (*documentCache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New[documentKey, *models.Node](size)
	if err != nil {
		return nil, err
	}
	return &documentCache{entries: entries}, nil
}

func keyFor(path string, info os.FileInfo) documentKey {
	return documentKey{
		path:    path,
		size:    info.Size(),
		modTime: info.ModTime(),
	}
}

func (c *documentCache) get(key documentKey) (*models.Node, bool) {
	if c == nil {
		return nil, false
	}
	return c.entries.Get(key)
}

func (c *documentCache) add(key documentKey, root *models.Node) {
	if c == nil {
		return
	}
	c.entries.Add(key, root)
}

func (c *documentCache) len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
