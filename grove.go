package grove

import (
	"errors"
	"fmt"
	"time"

	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
)

// Config configures a materialization. A nil *Config uses the defaults.
type Config struct {
	// Resolver loads the images named by surface brushes. When nil, every
	// image is unresolved and its brush is left empty.
	Resolver ResourceResolver
	// Debug logs materialization statistics at Debug level.
	Debug bool
}

// Result is the output of Materialize.
type Result struct {
	// Root is the live counterpart of the root visual.
	Root live.Visual
	// Properties is the live property set attached to the root node, or
	// nil. Changing its entries after materialization retargets every
	// expression that references it.
	Properties *live.PropertySet
	Stats      Stats
}

// Materialize builds the live object graph for root using c.
//
// Every node reachable from root gets exactly one live object, so shared
// nodes stay shared. The source graph is only read: it may be materialized
// again, including concurrently from other goroutines, and each call
// produces an independent live graph.
//
// A node grove cannot materialize stops the walk and is returned as a
// *MaterializeError wrapping ErrUnknownNode, ErrUnsupported, ErrCycle,
// ErrInvalidNode or ErrInvariant. The live objects created before the
// failure are not cleaned up and should be discarded.
func Materialize(c *live.Compositor, root desc.Visual, cfg *Config) (res *Result, err error) {
	if c == nil {
		return nil, errors.New("grove: nil compositor")
	}
	if root == nil {
		return nil, fmt.Errorf("%w: nil root visual", ErrInvalidNode)
	}
	if cfg == nil {
		cfg = &Config{}
	}

	m := newMaterializer(c, cfg)
	start := time.Now()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		me, ok := r.(*MaterializeError)
		if !ok {
			panic(r)
		}
		res, err = nil, me
	}()

	v := structural[live.Visual](m, root)
	res = &Result{Root: v}
	if ps := root.Base().Properties; ps != nil {
		res.Properties = m.propertySet(ps)
	}
	m.stats.Elapsed = time.Since(start)
	res.Stats = m.stats
	if cfg.Debug {
		m.stats.debugLog(m.log)
	}
	return res, nil
}
