package audit

import "reflect"

// Diff computes the minimal before/after maps for an update. Only keys
// present in the change-set are considered; keys whose value equals the
// original are dropped from both sides. Values are taken verbatim, no
// coercion. The function is pure: identical inputs always yield identical
// output.
func Diff(original, changes map[string]interface{}) (before, after map[string]interface{}) {
	before = map[string]interface{}{}
	after = map[string]interface{}{}
	for key, newVal := range changes {
		oldVal, existed := original[key]
		if existed && reflect.DeepEqual(oldVal, newVal) {
			continue
		}
		if existed {
			before[key] = oldVal
		}
		after[key] = newVal
	}
	return before, after
}

// RestoreOnly reports whether a change-set is nothing but the soft-delete
// flag being cleared. Such an update is the restore path's responsibility
// and must not be logged as an update.
func RestoreOnly(changes map[string]interface{}) bool {
	if len(changes) != 1 {
		return false
	}
	v, ok := changes["deleted_at"]
	return ok && v == nil
}
