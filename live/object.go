package live

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/phanxgames/grove/vmath"
)

var (
	// ErrUnknownProperty is returned when an animation targets a property the
	// object does not have.
	ErrUnknownProperty = errors.New("live: unknown property")
	// ErrTypeMismatch is returned when an animation's value type does not
	// match the property it targets.
	ErrTypeMismatch = errors.New("live: animation type does not match property")
)

var nextObjectID atomic.Uint64

// Object is implemented by every live compositor object.
type Object interface {
	// ID is unique among all live objects in the process.
	ID() uint64
	TypeName() string
	Compositor() *Compositor
	Comment() string
	SetComment(string)

	// Properties returns the object's own property set, creating it on
	// first use.
	Properties() *PropertySet

	// StartAnimation starts a snapshot of a on property, replacing any
	// animation running on it or an overlapping channel. Later changes to a
	// do not affect the running animation.
	StartAnimation(property string, a Animation) error
	StopAnimation(property string)
	// AnimationOn returns the snapshot started on property, or nil.
	AnimationOn(property string) Animation
	// TryGetAnimationController returns the implicit controller of the key
	// frame animation started on property, or nil.
	TryGetAnimationController(property string) *AnimationController

	Dispose()
	IsDisposed() bool

	core() *object
}

// object is embedded by every live type. Animatable values live in values,
// keyed by property name; typed getters and setters wrap it.
type object struct {
	id       uint64
	typeName string
	comp     *Compositor
	self     Object
	comment  string
	disposed bool

	values      map[string]any
	props       *PropertySet
	running     map[string]*playback
	controllers map[string]*AnimationController
}

func (o *object) init(c *Compositor, self Object, typeName string) {
	o.id = nextObjectID.Add(1)
	o.typeName = typeName
	o.comp = c
	o.self = self
	o.values = make(map[string]any)
}

func (o *object) core() *object { return o }

// ID returns the object's process-unique id.
func (o *object) ID() uint64 { return o.id }

// TypeName returns the live type name, e.g. "SpriteVisual".
func (o *object) TypeName() string { return o.typeName }

// Compositor returns the compositor that created the object.
func (o *object) Compositor() *Compositor { return o.comp }

// Comment returns the diagnostic comment.
func (o *object) Comment() string { return o.comment }

// SetComment sets the diagnostic comment.
func (o *object) SetComment(s string) { o.comment = s }

// Properties returns the object's own property set.
func (o *object) Properties() *PropertySet {
	if o.props == nil {
		o.props = o.comp.newPropertySet(o.self)
	}
	return o.props
}

// IsDisposed reports whether Dispose has been called.
func (o *object) IsDisposed() bool { return o.disposed }

// Dispose stops every animation on the object.
func (o *object) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	for p := range o.running {
		o.stop(p)
	}
}

// --- Property store ---

func (o *object) declare(name string, v any) {
	o.values[name] = v
}

func get[T any](o *object, name string) T {
	v, _ := o.values[name].(T)
	return v
}

// setStatic is the path of every public setter: it cancels animations that
// drive the property, reports the write, then stores the value.
func (o *object) setStatic(name string, v any) {
	o.cancelOverlapping(name)
	o.comp.notifyStaticWrite(o.self, name)
	o.values[name] = v
}

// touch reports a static write of a property that is not animatable.
func (o *object) touch(name string) {
	o.comp.notifyStaticWrite(o.self, name)
}

// write stores an animated value. It never cancels animations.
func (o *object) write(name string, v any) {
	root, ch := splitChannel(name)
	if ch == "" {
		o.values[root] = v
		return
	}
	x, ok := v.(float64)
	if !ok {
		return
	}
	if nv, ok := withComponent(o.values[root], ch, x); ok {
		o.values[root] = nv
	}
}

// lookup returns the current value of a property or one of its channels.
func (o *object) lookup(name string) (any, error) {
	root, ch := splitChannel(name)
	v, ok := o.values[root]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no property %q", ErrUnknownProperty, o.typeName, root)
	}
	if ch == "" {
		return v, nil
	}
	x, ok := component(v, ch)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s has no channel %q", ErrUnknownProperty, o.typeName, root, ch)
	}
	return x, nil
}

// --- Animation ---

// StartAnimation implements Object.
func (o *object) StartAnimation(property string, a Animation) error {
	if a == nil {
		return fmt.Errorf("live: nil animation for %s.%s", o.typeName, property)
	}
	cur, err := o.lookup(property)
	if err != nil {
		return err
	}
	if !a.accepts(cur) {
		return fmt.Errorf("%w: %s on %s.%s (%T)", ErrTypeMismatch, a.TypeName(), o.typeName, property, cur)
	}
	o.cancelOverlapping(property)

	pb := &playback{target: o, property: property, anim: a.snapshot()}
	if pb.anim.keyFramed() {
		ctl := o.comp.newImplicitController()
		pb.controller = ctl
		pb.start()
		if o.controllers == nil {
			o.controllers = make(map[string]*AnimationController)
		}
		o.controllers[property] = ctl
	}
	if o.running == nil {
		o.running = make(map[string]*playback)
	}
	o.running[property] = pb
	o.comp.register(pb)
	o.comp.notifyAnimationStarted(o.self, property)
	Logger().Debug("animation started",
		"object", o.typeName, "id", o.id, "property", property, "animation", a.TypeName())
	return nil
}

// StopAnimation implements Object.
func (o *object) StopAnimation(property string) {
	o.stop(property)
}

// AnimationOn implements Object.
func (o *object) AnimationOn(property string) Animation {
	if pb := o.running[property]; pb != nil {
		return pb.anim
	}
	return nil
}

// TryGetAnimationController implements Object.
func (o *object) TryGetAnimationController(property string) *AnimationController {
	return o.controllers[property]
}

func (o *object) stop(property string) {
	pb := o.running[property]
	if pb == nil {
		return
	}
	pb.done = true
	delete(o.running, property)
	delete(o.controllers, property)
}

// cancelOverlapping stops animations on name, on its channels, and on its
// parent property when name is a channel.
func (o *object) cancelOverlapping(name string) {
	root, ch := splitChannel(name)
	for p := range o.running {
		pr, pch := splitChannel(p)
		if pr != root {
			continue
		}
		if ch == "" || pch == "" || pch == ch {
			o.stop(p)
		}
	}
}

func splitChannel(name string) (root, channel string) {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

func component(v any, ch string) (float64, bool) {
	switch v := v.(type) {
	case vmath.Vec2:
		switch ch {
		case "X":
			return v.X, true
		case "Y":
			return v.Y, true
		}
	case vmath.Vec3:
		switch ch {
		case "X":
			return v.X, true
		case "Y":
			return v.Y, true
		case "Z":
			return v.Z, true
		}
	case vmath.Vec4:
		switch ch {
		case "X":
			return v.X, true
		case "Y":
			return v.Y, true
		case "Z":
			return v.Z, true
		case "W":
			return v.W, true
		}
	case vmath.Color:
		switch ch {
		case "R":
			return v.R, true
		case "G":
			return v.G, true
		case "B":
			return v.B, true
		case "A":
			return v.A, true
		}
	}
	return 0, false
}

func withComponent(v any, ch string, x float64) (any, bool) {
	switch v := v.(type) {
	case vmath.Vec2:
		switch ch {
		case "X":
			v.X = x
		case "Y":
			v.Y = x
		default:
			return nil, false
		}
		return v, true
	case vmath.Vec3:
		switch ch {
		case "X":
			v.X = x
		case "Y":
			v.Y = x
		case "Z":
			v.Z = x
		default:
			return nil, false
		}
		return v, true
	case vmath.Vec4:
		switch ch {
		case "X":
			v.X = x
		case "Y":
			v.Y = x
		case "Z":
			v.Z = x
		case "W":
			v.W = x
		default:
			return nil, false
		}
		return v, true
	case vmath.Color:
		switch ch {
		case "R":
			v.R = x
		case "G":
			v.G = x
		case "B":
			v.B = x
		case "A":
			v.A = x
		default:
			return nil, false
		}
		return v, true
	}
	return nil, false
}
