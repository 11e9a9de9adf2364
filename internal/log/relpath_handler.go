package log

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
)

// RelPathHandler wraps an slog.Handler to rewrite filesystem paths.
// Any string attribute value that is an absolute path under the project
// root is replaced with its project-relative form before being passed to
// the underlying handler.
//
// Design decision: We use a handler wrapper rather than rewriting at each
// call site because it integrates with standard slog APIs and works with
// any underlying handler (text, JSON, etc.).
type RelPathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// root is the absolute project root paths are made relative to.
	root string
}

// NewRelPathHandler creates a RelPathHandler that rewrites paths under root.
// If handler is nil, the returned handler wraps slog.Default().Handler().
func NewRelPathHandler(handler slog.Handler, root string) *RelPathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RelPathHandler{handler: handler, root: filepath.Clean(root)}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RelPathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it to the underlying
// handler.
func (h *RelPathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})

	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are rewritten before being added.
func (h *RelPathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewrittenAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewrittenAttrs[i] = h.rewriteAttr(a)
	}
	return &RelPathHandler{handler: h.handler.WithAttrs(rewrittenAttrs), root: h.root}
}

// WithGroup returns a new handler with the given group name.
func (h *RelPathHandler) WithGroup(name string) slog.Handler {
	return &RelPathHandler{handler: h.handler.WithGroup(name), root: h.root}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *RelPathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewrittenAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewrittenAttrs[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewrittenAttrs...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}

	return slog.String(a.Key, h.rewritePath(a.Value.String()))
}

// rewritePath returns the project-relative form of an absolute path under
// the project root, or the value unchanged otherwise.
func (h *RelPathHandler) rewritePath(value string) string {
	if h.root == "" || h.root == "." || !filepath.IsAbs(value) {
		return value
	}
	if value == h.root {
		return "."
	}
	prefix := h.root + string(filepath.Separator)
	if !strings.HasPrefix(value, prefix) {
		return value
	}
	return filepath.ToSlash(strings.TrimPrefix(value, prefix))
}
