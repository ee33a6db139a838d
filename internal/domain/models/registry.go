package models

import "fmt"

// UnknownIDError reports an identifier (stock symbol, index symbol,
// weather location) that is not part of the supported set. It is the only
// caller-visible validation failure produced by the service layer; HTTP
// handlers map it to a 4xx response.
type UnknownIDError struct {
	Kind string // human-readable identifier category, e.g. "銘柄コード"
	ID   string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("サポートされていない%s: %s", e.Kind, e.ID)
}

// IDRegistry is the shared membership check applied by every data service
// before any provider call. All three adapters validate through the same
// mechanism so that "reject unknown identifiers before fetch" is a single
// contract rather than three ad hoc checks.
type IDRegistry struct {
	kind string
	ids  map[string]struct{}
}

// NewIDRegistry builds a registry for one identifier category.
func NewIDRegistry(kind string, ids ...string) *IDRegistry {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &IDRegistry{kind: kind, ids: set}
}

// Known reports whether the identifier is in the supported set.
func (r *IDRegistry) Known(id string) bool {
	_, ok := r.ids[id]
	return ok
}

// Validate returns an *UnknownIDError when the identifier is outside the
// supported set, nil otherwise.
func (r *IDRegistry) Validate(id string) error {
	if r.Known(id) {
		return nil
	}
	return &UnknownIDError{Kind: r.kind, ID: id}
}
