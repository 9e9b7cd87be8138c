package session

import (
	"sort"
	"strings"
	"sync"
)

// Registry is the set of administrator-added custom domains. Domains can be
// added but never removed; no per-domain metadata is kept.
type Registry struct {
	mu      sync.RWMutex
	domains map[string]struct{}
}

// NewRegistry creates an empty domain registry
func NewRegistry() *Registry {
	return &Registry{domains: make(map[string]struct{})}
}

// Add registers a custom domain. Domains are normalized to lowercase and
// adding an existing one is a no-op.
func (r *Registry) Add(domain string) {
	domain = normalize(domain)
	if domain == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.domains[domain] = struct{}{}
}

// Contains reports whether the domain was added by an administrator.
func (r *Registry) Contains(domain string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.domains[normalize(domain)]
	return ok
}

// List returns all custom domains in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.domains))
	for d := range r.domains {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of custom domains.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.domains)
}

// Merge combines the remote domain list with the custom set, without
// duplicates. Remote order is preserved; customs not present remotely follow
// in sorted order.
func (r *Registry) Merge(remote []string) []string {
	seen := make(map[string]struct{}, len(remote))
	merged := make([]string, 0, len(remote)+r.Len())

	for _, d := range remote {
		d = normalize(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		merged = append(merged, d)
	}

	for _, d := range r.List() {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		merged = append(merged, d)
	}

	return merged
}

func normalize(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}
