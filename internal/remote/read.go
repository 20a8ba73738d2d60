package remote

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Walk follows a chain of property reads and method calls starting at obj.
// A segment written "Name()" is a call without arguments and "Item(1)"
// passes one integer; any other segment is a property read.
func Walk(obj Object, path ...string) (any, error) {
	var cur any = obj
	for i, seg := range path {
		o, ok := cur.(Object)
		if !ok || o == nil {
			return nil, fmt.Errorf("%s: %w", strings.Join(path[:i+1], "."), ErrNoProperty)
		}
		name, args, isCall, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		if isCall {
			cur, err = o.Call(name, args...)
		} else {
			cur, err = o.Get(name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.Join(path[:i+1], "."), err)
		}
	}
	return cur, nil
}

// WalkObject is Walk for paths that must end at another Object.
func WalkObject(obj Object, path ...string) (Object, error) {
	v, err := Walk(obj, path...)
	if err != nil {
		return nil, err
	}
	o, ok := v.(Object)
	if !ok || o == nil {
		return nil, fmt.Errorf("%s: not an object: %w", strings.Join(path, "."), ErrNoProperty)
	}
	return o, nil
}

func parseSegment(seg string) (name string, args []any, isCall bool, err error) {
	open := strings.IndexByte(seg, '(')
	if open < 0 || !strings.HasSuffix(seg, ")") {
		return seg, nil, false, nil
	}
	name = seg[:open]
	inner := strings.TrimSpace(seg[open+1 : len(seg)-1])
	if inner == "" {
		return name, nil, true, nil
	}
	n, err := strconv.Atoi(inner)
	if err != nil {
		return "", nil, false, fmt.Errorf("segment %q: only integer arguments are supported", seg)
	}
	return name, []any{n}, true, nil
}

// readOr walks path and converts the result, returning def when either
// step fails. Failures are logged at debug level and never propagate.
func readOr[T any](log *zap.Logger, obj Object, def T, conv func(any) (T, bool), path []string) T {
	if obj == nil {
		return def
	}
	v, err := Walk(obj, path...)
	if err != nil {
		if log != nil {
			log.Debug("remote read failed, using default",
				zap.String("path", strings.Join(path, ".")),
				zap.Error(err))
		}
		return def
	}
	out, ok := conv(v)
	if !ok {
		if log != nil {
			log.Debug("remote value has unexpected type, using default",
				zap.String("path", strings.Join(path, ".")),
				zap.String("type", fmt.Sprintf("%T", v)))
		}
		return def
	}
	return out
}

// StringOr reads a string, or returns def.
func StringOr(log *zap.Logger, obj Object, def string, path ...string) string {
	return readOr(log, obj, def, toString, path)
}

// IntOr reads an integer, or returns def.
func IntOr(log *zap.Logger, obj Object, def int, path ...string) int {
	return readOr(log, obj, def, toInt, path)
}

// BoolOr reads a boolean, or returns def.
func BoolOr(log *zap.Logger, obj Object, def bool, path ...string) bool {
	return readOr(log, obj, def, toBool, path)
}

// TimeOr reads a timestamp, or returns def.
func TimeOr(log *zap.Logger, obj Object, def time.Time, path ...string) time.Time {
	return readOr(log, obj, def, toTime, path)
}

// ObjectOr reads an object reference, or returns nil.
func ObjectOr(log *zap.Logger, obj Object, path ...string) Object {
	return readOr[Object](log, obj, nil, toObject, path)
}

func toObject(v any) (Object, bool) {
	o, ok := v.(Object)
	return o, ok && o != nil
}

func toString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	case nil:
		return "", false
	case int, int64, float64, bool:
		return fmt.Sprint(x), true
	}
	return "", false
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case float64:
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case int:
		return x != 0, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		return b, err == nil
	}
	return false, false
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func toTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
