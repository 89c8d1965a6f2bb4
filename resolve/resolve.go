// Package resolve provides grove.ResourceResolver implementations: images
// decoded from a file system, surfaces from a map, and a cache that shares
// resolved surfaces across materializations.
package resolve

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"

	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
)

// FS resolves a reference as a slash-separated path in a file system and
// decodes the image found there. PNG, JPEG, BMP and WebP are supported.
type FS struct {
	fsys fs.FS
	// NewSurface turns a decoded image into a surface. The default uploads
	// it with ebiten.NewImageFromImage.
	NewSurface func(image.Image) live.Surface
}

// NewFS returns a resolver reading from fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys, NewSurface: ebitenSurface}
}

func ebitenSurface(img image.Image) live.Surface {
	return ebiten.NewImageFromImage(img)
}

// Resolve implements grove.ResourceResolver. A file that does not exist
// resolves to nil without an error.
func (r *FS) Resolve(ref desc.ResourceRef) (live.Surface, error) {
	name := path.Clean(string(ref))
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("resolve: invalid path %q", ref)
	}
	f, err := r.fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("resolve: decode %s: %w", name, err)
	}
	grove.Logger().Debug("image decoded", "ref", string(ref), "format", format,
		"w", img.Bounds().Dx(), "h", img.Bounds().Dy())
	newSurface := r.NewSurface
	if newSurface == nil {
		newSurface = ebitenSurface
	}
	return newSurface(img), nil
}

// Map resolves references from a fixed set of surfaces. Missing keys
// resolve to nil.
type Map map[desc.ResourceRef]live.Surface

// Resolve implements grove.ResourceResolver.
func (m Map) Resolve(ref desc.ResourceRef) (live.Surface, error) {
	return m[ref], nil
}

// Chain tries each resolver in order and returns the first surface found.
// A typed nil surface falls through to the next resolver. An error stops the
// chain.
type Chain []grove.ResourceResolver

// Resolve implements grove.ResourceResolver.
func (c Chain) Resolve(ref desc.ResourceRef) (live.Surface, error) {
	for _, r := range c {
		s, err := r.Resolve(ref)
		if err != nil {
			return nil, err
		}
		if !live.NilSurface(s) {
			return s, nil
		}
	}
	return nil, nil
}

// Cache remembers the surfaces of another resolver so repeated
// materializations share them. Concurrent requests for one reference make a
// single call. Errors are not cached.
type Cache struct {
	next  grove.ResourceResolver
	group singleflight.Group

	mu       sync.Mutex
	surfaces map[desc.ResourceRef]live.Surface
}

// NewCache wraps next.
func NewCache(next grove.ResourceResolver) *Cache {
	return &Cache{next: next, surfaces: make(map[desc.ResourceRef]live.Surface)}
}

// Resolve implements grove.ResourceResolver.
func (c *Cache) Resolve(ref desc.ResourceRef) (live.Surface, error) {
	c.mu.Lock()
	s, ok := c.surfaces[ref]
	c.mu.Unlock()
	if ok {
		return s, nil
	}

	v, err, _ := c.group.Do(string(ref), func() (any, error) {
		c.mu.Lock()
		s, ok := c.surfaces[ref]
		c.mu.Unlock()
		if ok {
			return s, nil
		}
		s, err := c.next.Resolve(ref)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.surfaces[ref] = s
		c.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	s, _ = v.(live.Surface)
	return s, nil
}

// Forget drops the cached surface for ref.
func (c *Cache) Forget(ref desc.ResourceRef) {
	c.mu.Lock()
	delete(c.surfaces, ref)
	c.mu.Unlock()
	c.group.Forget(string(ref))
}

// Len returns the number of cached references.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.surfaces)
}
