package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Vars is a flat string variable set used by layout templates.
type Vars map[string]string

// LayoutResolver resolves {{var}} placeholders in target-path layout
// templates. It supports the builtin {{$date}} (UTC, YYYYMMDD).
//
// This lives in domain because it does not depend on YAML/FS/HTTP. Only stdlib.
type LayoutResolver struct {
	now func() time.Time
}

// LayoutResolverOption configures LayoutResolver.
type LayoutResolverOption func(*LayoutResolver)

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) LayoutResolverOption {
	return func(r *LayoutResolver) { r.now = now }
}

func NewLayoutResolver(opts ...LayoutResolverOption) *LayoutResolver {
	r := &LayoutResolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve expands placeholders in the layout template using vars plus
// builtins. Unknown or malformed placeholders are errors.
func (r *LayoutResolver) Resolve(layout string, vars Vars) (string, error) {
	builtins := Vars{
		"$date": r.now().UTC().Format("20060102"),
	}

	// Fast path: no token start.
	if !strings.Contains(layout, "{{") {
		return layout, nil
	}

	var b strings.Builder
	b.Grow(len(layout) + 16)

	for i := 0; i < len(layout); {
		if i+1 < len(layout) && layout[i] == '{' && layout[i+1] == '{' {
			start := i + 2

			end := strings.Index(layout[start:], "}}")
			if end < 0 {
				return "", &OpError{
					Op:   "layout.resolve",
					Kind: KindInvalidConfig,
					Err:  errors.New("unclosed placeholder"),
				}
			}
			end = start + end

			name := strings.TrimSpace(layout[start:end])
			if name == "" {
				return "", &OpError{
					Op:   "layout.resolve",
					Kind: KindInvalidConfig,
					Err:  errors.New("empty placeholder"),
				}
			}

			val, ok := builtins[name]
			if !ok {
				val, ok = vars[name]
			}
			if !ok {
				return "", &OpError{
					Op:   "layout.resolve",
					Kind: KindMissingVar,
					Err:  fmt.Errorf("missing variable: %s", name),
				}
			}

			b.WriteString(val)
			i = end + 2
			continue
		}

		b.WriteByte(layout[i])
		i++
	}

	return b.String(), nil
}

// VideoVars builds the variable set for a video target path.
func VideoVars(class, file string) Vars {
	ext := ""
	if dot := strings.LastIndexByte(file, '.'); dot >= 0 {
		ext = file[dot:]
	}
	return Vars{
		"class": class,
		"file":  file,
		"ext":   ext,
	}
}
