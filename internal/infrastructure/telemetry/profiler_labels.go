package telemetry

import (
	"context"
	"maps"
	"sort"
	"strings"

	"github.com/grafana/pyroscope-go"
)

// Profiling label keys. Values must stay low cardinality because Pyroscope
// keeps one profile series per label combination.
const (
	// ProfilingLabelScreen is the dashboard screen a request belongs to,
	// derived from the route ("partners", "invoices", "reports"...).
	ProfilingLabelScreen = "screen"
	// ProfilingLabelRoute is the matched route pattern
	ProfilingLabelRoute = "route"
	// ProfilingLabelMethod is the HTTP method
	ProfilingLabelMethod = "method"
	// ProfilingLabelRegion names a code region inside a request, such as
	// "pdf_render" or "upstream_call".
	ProfilingLabelRegion = "region"
)

// MaxLabelValueLength caps label values before they reach Pyroscope
const MaxLabelValueLength = 128

// highCardinalityLabels are keys sanitizeLabels silently drops. Per-entity
// IDs would explode the label space; they belong in traces, not profiles.
var highCardinalityLabels = map[string]bool{
	"user_id":    true,
	"request_id": true,
	"session_id": true,
	"partner_id": true,
	"invoice_id": true,
	"trace_id":   true,
	"span_id":    true,
}

// WithProfilingLabels runs fn with the given labels attached to its
// goroutine, so samples taken while it executes can be filtered in the
// Pyroscope UI. The map is copied, and unusable labels (empty, oversized,
// high cardinality) are dropped rather than rejected; with nothing left to
// attach, fn simply runs unlabeled.
func WithProfilingLabels(ctx context.Context, labels map[string]string, fn func(context.Context)) {
	pairs := sanitizeLabels(labels)
	if len(pairs) == 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(pairs...), fn)
}

// RegionLabels builds the label set for a named code region
func RegionLabels(region string, extra map[string]string) map[string]string {
	labels := make(map[string]string, len(extra)+1)
	maps.Copy(labels, extra)
	labels[ProfilingLabelRegion] = region
	return labels
}

// sanitizeLabels flattens the map into pyroscope's pair format with keys
// sorted for deterministic series naming.
func sanitizeLabels(labels map[string]string) []string {
	if len(labels) == 0 {
		return nil
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(labels)*2)
	for _, key := range keys {
		value := labels[key]
		if key == "" || value == "" || highCardinalityLabels[key] {
			continue
		}
		if len(value) > MaxLabelValueLength {
			value = value[:MaxLabelValueLength]
		}
		if key = sanitizeLabelKey(key); key == "" {
			continue
		}
		pairs = append(pairs, key, value)
	}
	return pairs
}

// sanitizeLabelKey normalizes keys to snake_case alphanumerics
func sanitizeLabelKey(key string) string {
	key = strings.ToLower(key)

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		switch c := key[i]; {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
			b.WriteByte(c)
		case c == ' ' || c == '-':
			b.WriteByte('_')
		}
	}
	return b.String()
}
