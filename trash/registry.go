package trash

import (
	"errors"
	"fmt"
	"time"
)

// Group is the administrative category a trash type is listed under.
type Group string

const (
	GroupForms          Group = "forms"
	GroupAssets         Group = "assets"
	GroupInstitutional  Group = "institutional"
	GroupUserManagement Group = "user-management"
)

// ErrUnknownEntityType is returned for type keys outside the registry.
var ErrUnknownEntityType = errors.New("unsupported entity type")

// Entry is the common envelope every soft-deleted record is normalized
// into for the trash listing. Computed per query, never persisted.
type Entry struct {
	EntityGroup    Group     `json:"entity_group"`
	EntityType     string    `json:"entity_type"`
	ID             uint      `json:"id"`
	DisplaySummary string    `json:"display_summary"`
	DeletedAt      time.Time `json:"deleted_at"`
}

// Params carries the listing options of one trash query. Filter keys a
// type does not recognize are ignored; sort keys outside the type's
// allow-list fall back to the deletion timestamp.
type Params struct {
	Filters  map[string]string
	Search   string
	SortBy   string
	SortDir  string
	Page     int
	PageSize int
}

func (p *Params) normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}
	if p.SortDir != "asc" && p.SortDir != "desc" {
		p.SortDir = "desc"
	}
}

// Descriptor binds one entity-type key to its listing and restore
// operations.
type Descriptor struct {
	Key     string
	Group   Group
	list    func(p Params) ([]Entry, int64, error)
	restore func(actor *uint, id uint) error
}

// TypeInfo describes one registered trash type for discovery endpoints.
type TypeInfo struct {
	Key   string `json:"key"`
	Group Group  `json:"group"`
}

// Registry is the fixed set of entity types the trash bin supports.
type Registry struct {
	byKey map[string]Descriptor
	order []string
}

func (r *Registry) add(d Descriptor) {
	r.byKey[d.Key] = d
	r.order = append(r.order, d.Key)
}

// Types lists the registered type keys in registration order.
func (r *Registry) Types() []TypeInfo {
	infos := make([]TypeInfo, 0, len(r.order))
	for _, key := range r.order {
		d := r.byKey[key]
		infos = append(infos, TypeInfo{Key: d.Key, Group: d.Group})
	}
	return infos
}

// Query returns one page of soft-deleted records of the given type plus
// the total count under the same filters.
func (r *Registry) Query(entityType string, p Params) ([]Entry, int64, error) {
	d, ok := r.byKey[entityType]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
	return d.list(p)
}

// Restore reverses the soft-delete of one record of the given type,
// cascading to dependents where the type declares a cascade link.
func (r *Registry) Restore(entityType string, actor *uint, id uint) error {
	d, ok := r.byKey[entityType]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
	return d.restore(actor, id)
}
