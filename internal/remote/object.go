// Package remote wraps the email client's scriptable object model. Every
// access crosses a process boundary and may fail at any time.
package remote

import (
	"errors"
	"fmt"
	"strings"
)

// Object is a handle into the client's object model.
type Object interface {
	Get(name string) (any, error)
	Set(name string, value any) error
	Call(name string, args ...any) (any, error)
}

var (
	// ErrUnavailable is returned when the object model cannot be reached.
	ErrUnavailable = errors.New("object model unavailable")
	// ErrNoProperty is returned for a property that does not exist.
	ErrNoProperty = errors.New("no such property")
	// ErrNotCallable is returned for a method that does not exist.
	ErrNotCallable = errors.New("no such method")
	// ErrCallFailed stands in for a dead reference, marshalling fault or timeout.
	ErrCallFailed = errors.New("remote call failed")
)

// Method is a callable member of a Bag.
type Method func(args ...any) (any, error)

// Bag is an in-memory Object. Names are case-insensitive, as they are in
// the client's automation interface.
type Bag struct {
	props   map[string]any
	methods map[string]Method
	fail    map[string]error
}

// failKey lists, inside a fixture map, the members whose access fails.
const failKey = "_fail"

// NewBag builds a Bag from a decoded fixture map. Nested maps become Bags,
// including maps inside lists.
func NewBag(props map[string]any) *Bag {
	b := &Bag{
		props:   make(map[string]any, len(props)),
		methods: make(map[string]Method),
		fail:    make(map[string]error),
	}
	for k, v := range props {
		if strings.EqualFold(k, failKey) {
			for _, name := range toStrings(v) {
				b.fail[strings.ToLower(name)] = ErrCallFailed
			}
			continue
		}
		b.props[strings.ToLower(k)] = convert(v)
	}
	return b
}

func convert(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return NewBag(x)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = convert(item)
		}
		return out
	default:
		return v
	}
}

func toStrings(v any) []string {
	switch x := v.(type) {
	case string:
		return []string{x}
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Get reads a property.
func (b *Bag) Get(name string) (any, error) {
	key := strings.ToLower(name)
	if err, ok := b.fail[key]; ok {
		return nil, fmt.Errorf("get %s: %w", name, err)
	}
	v, ok := b.props[key]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", name, ErrNoProperty)
	}
	return v, nil
}

// Set writes a property.
func (b *Bag) Set(name string, value any) error {
	key := strings.ToLower(name)
	if err, ok := b.fail[key]; ok {
		return fmt.Errorf("set %s: %w", name, err)
	}
	b.props[key] = convert(value)
	return nil
}

// Call invokes a method. Without a registered Method, a property of the
// same name is returned, and a list property is indexed from 1 by a single
// integer argument, the way automation collections are.
func (b *Bag) Call(name string, args ...any) (any, error) {
	key := strings.ToLower(name)
	if err, ok := b.fail[key]; ok {
		return nil, fmt.Errorf("call %s: %w", name, err)
	}
	if m, ok := b.methods[key]; ok {
		return m(args...)
	}
	v, ok := b.props[key]
	if !ok {
		return nil, fmt.Errorf("call %s: %w", name, ErrNotCallable)
	}
	if list, ok := v.([]any); ok && len(args) == 1 {
		i, ok := toInt(args[0])
		if !ok || i < 1 || i > len(list) {
			return nil, fmt.Errorf("call %s(%v): index out of range: %w", name, args[0], ErrNoProperty)
		}
		return list[i-1], nil
	}
	return v, nil
}

// SetMethod registers a method.
func (b *Bag) SetMethod(name string, m Method) {
	b.methods[strings.ToLower(name)] = m
}

// Fail makes every access to name return err.
func (b *Bag) Fail(name string, err error) {
	if err == nil {
		err = ErrCallFailed
	}
	b.fail[strings.ToLower(name)] = err
}

// Heal undoes Fail.
func (b *Bag) Heal(name string) {
	delete(b.fail, strings.ToLower(name))
}

// SetPath assigns value to the property at the end of a dotted chain of
// nested Bags, e.g. "ActiveExplorer.Selection".
func (b *Bag) SetPath(path string, value any) error {
	parts := strings.Split(path, ".")
	cur := b
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur.props[strings.ToLower(p)].(*Bag)
		if !ok {
			return fmt.Errorf("set %s: %s is not an object: %w", path, p, ErrNoProperty)
		}
		cur = next
	}
	cur.props[strings.ToLower(parts[len(parts)-1])] = convert(value)
	return nil
}
