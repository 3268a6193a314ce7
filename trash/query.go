package trash

import (
	"reflect"
	"time"

	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
)

// listSpec is the per-type configuration behind the generic trash listing:
// which columns the free-text search covers, which filter keys map to
// which columns, the sortable-column allow-list, and how one row is
// summarized for display.
type listSpec[T audit.Auditable] struct {
	preloads   []string
	filters    map[string]string
	searchCols []string
	sortable   map[string]string
	summary    func(T) string
}

func newDescriptor[T audit.Auditable](db *gorm.DB, rec *audit.Recorder, key string, group Group, spec listSpec[T], opts ...audit.Option[T]) Descriptor {
	repo := audit.NewRepository[T](db, rec, opts...)
	return Descriptor{
		Key:   key,
		Group: group,
		list: func(p Params) ([]Entry, int64, error) {
			return listTrash(db, key, group, spec, p)
		},
		restore: func(actor *uint, id uint) error {
			return repo.Restore(actor, id)
		},
	}
}

func listTrash[T audit.Auditable](db *gorm.DB, key string, group Group, spec listSpec[T], p Params) ([]Entry, int64, error) {
	p.normalize()

	base := func() *gorm.DB {
		q := db.Unscoped().Model(new(T)).Where("deleted_at IS NOT NULL")
		for fkey, col := range spec.filters {
			if v, ok := p.Filters[fkey]; ok && v != "" {
				q = q.Where(col+" = ?", v)
			}
		}
		if p.Search != "" {
			like := "%" + p.Search + "%"
			clause := "CAST(id AS CHAR) LIKE ?"
			args := []interface{}{like}
			for _, col := range spec.searchCols {
				clause += " OR " + col + " LIKE ?"
				args = append(args, like)
			}
			q = q.Where("("+clause+")", args...)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "deleted_at " + p.SortDir
	switch {
	case p.SortBy == "id" || p.SortBy == "deleted_at":
		order = p.SortBy + " " + p.SortDir
	default:
		if col, ok := spec.sortable[p.SortBy]; ok {
			order = col + " " + p.SortDir
		}
	}

	q := base().Order(order).Limit(p.PageSize).Offset((p.Page - 1) * p.PageSize)
	for _, pre := range spec.preloads {
		q = q.Preload(pre)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			EntityGroup:    group,
			EntityType:     key,
			ID:             row.AuditID(),
			DisplaySummary: spec.summary(row),
			DeletedAt:      deletedAt(row),
		})
	}
	return entries, total, nil
}

// deletedAt pulls the soft-delete timestamp off any audited entity.
func deletedAt(entity interface{}) time.Time {
	f := reflect.ValueOf(entity).FieldByName("DeletedAt")
	if !f.IsValid() {
		return time.Time{}
	}
	if d, ok := f.Interface().(gorm.DeletedAt); ok {
		return d.Time
	}
	return time.Time{}
}
