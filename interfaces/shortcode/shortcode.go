package shortcode

import (
	"context"
	"regexp"
	"strings"
	"sync"
)

// Handler renders one shortcode occurrence. It returns markup and never fails;
// failures are rendered inline by the handler itself.
type Handler func(ctx context.Context, attrs map[string]string) string

var (
	tagPattern  = regexp.MustCompile(`\[([A-Za-z0-9_-]+)(\s[^\]]*?)?\s*/?\]`)
	attrPattern = regexp.MustCompile(`([A-Za-z0-9_-]+)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s'"\]]+))`)
)

// Registry maps tag names to handlers
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

func (r *Registry) Add(tag string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[strings.ToLower(tag)] = handler
}

func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[strings.ToLower(tag)]
	return ok
}

// Expand replaces every registered tag in content with its handler output.
// Unregistered tags are left as written.
func (r *Registry) Expand(ctx context.Context, content string) string {
	return tagPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := tagPattern.FindStringSubmatch(match)
		r.mu.RLock()
		handler, ok := r.handlers[strings.ToLower(groups[1])]
		r.mu.RUnlock()
		if !ok {
			return match
		}
		return handler(ctx, ParseAttributes(groups[2]))
	})
}

// ParseAttributes reads name="value", name='value' and name=value pairs. Names are lower-cased.
func ParseAttributes(s string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrPattern.FindAllStringSubmatch(s, -1) {
		value := m[4]
		switch {
		case m[2] != "":
			value = m[2]
		case m[3] != "":
			value = m[3]
		}
		attrs[strings.ToLower(m[1])] = value
	}
	return attrs
}
