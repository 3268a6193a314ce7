package trash

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/models"
)

// NewVerificationCascade links turnover/disposal records to their 1:1
// verification form. A recreated form starts over in the pending state.
func NewVerificationCascade(rec *audit.Recorder) audit.Cascade {
	return audit.NewSingletonCascade(rec, "turnover_disposal_id", func(parentID uint) models.VerificationForm {
		return models.VerificationForm{
			TurnoverDisposalID: parentID,
			Status:             "pending",
		}
	})
}

// NewRegistry builds the fixed 16-type trash registry. Adding a type means
// adding a descriptor here; any key outside this set is a caller error.
func NewRegistry(db *gorm.DB, rec *audit.Recorder) *Registry {
	r := &Registry{byKey: map[string]Descriptor{}}

	// Forms.
	r.add(newDescriptor(db, rec, "transfer", GroupForms, listSpec[models.PropertyTransfer]{
		preloads: []string{"OriginUnit", "DestinationUnit"},
		filters: map[string]string{
			"origin_unit_id":          "origin_unit_id",
			"destination_unit_id":     "destination_unit_id",
			"origin_building_id":      "origin_building_id",
			"destination_building_id": "destination_building_id",
			"scheduled_date":          "DATE(scheduled_date)",
		},
		searchCols: []string{"ref_no", "remarks"},
		sortable:   map[string]string{"ref_no": "ref_no", "scheduled_date": "scheduled_date", "status": "status"},
		summary: func(t models.PropertyTransfer) string {
			origin := orUnknown(t.OriginUnit.Name, "Unknown Unit/Department")
			dest := orUnknown(t.DestinationUnit.Name, "Unknown Unit/Department")
			return fmt.Sprintf("%s: %s to %s", t.RefNo, origin, dest)
		},
	}))
	r.add(newDescriptor(db, rec, "turnover-disposal", GroupForms, listSpec[models.TurnoverDisposal]{
		preloads: []string{"IssuingOffice"},
		filters: map[string]string{
			"type":              "type",
			"issuing_office_id": "issuing_office_id",
		},
		searchCols: []string{"ref_no", "remarks"},
		sortable:   map[string]string{"ref_no": "ref_no", "type": "type", "status": "status"},
		summary: func(t models.TurnoverDisposal) string {
			office := orUnknown(t.IssuingOffice.Name, "Unknown Unit/Department")
			return fmt.Sprintf("%s (%s) from %s", t.RefNo, t.Type, office)
		},
	}, audit.WithCascade[models.TurnoverDisposal](NewVerificationCascade(rec))))
	r.add(newDescriptor(db, rec, "off-campus", GroupForms, listSpec[models.OffCampusPass]{
		preloads: []string{"Personnel"},
		filters: map[string]string{
			"personnel_id": "personnel_id",
			"status":       "status",
		},
		searchCols: []string{"ref_no", "purpose"},
		sortable:   map[string]string{"ref_no": "ref_no", "date_issued": "date_issued", "status": "status"},
		summary: func(o models.OffCampusPass) string {
			who := orUnknown(o.Personnel.FullName, "Unknown Personnel")
			return fmt.Sprintf("%s for %s", o.RefNo, who)
		},
	}))
	r.add(newDescriptor(db, rec, "inventory-scheduling", GroupForms, listSpec[models.InventoryScheduling]{
		preloads: []string{"UnitOrDepartment"},
		filters: map[string]string{
			"unit_or_department_id": "unit_or_department_id",
			"building_id":           "building_id",
			"status":                "status",
		},
		searchCols: []string{"remarks", "status"},
		sortable:   map[string]string{"scheduled_date": "scheduled_date", "status": "status"},
		summary: func(s models.InventoryScheduling) string {
			unit := orUnknown(s.UnitOrDepartment.Name, "Unknown Unit/Department")
			return fmt.Sprintf("%s count for %s", s.ScheduledDate.Format("2006-01-02"), unit)
		},
	}))

	// Assets.
	r.add(newDescriptor(db, rec, "inventory-list", GroupAssets, listSpec[models.InventoryList]{
		filters: map[string]string{
			"unit_or_department_id": "unit_or_department_id",
			"asset_model_id":        "asset_model_id",
		},
		searchCols: []string{"asset_name", "property_no", "serial_no"},
		sortable:   map[string]string{"asset_name": "asset_name", "property_no": "property_no", "unit_cost": "unit_cost"},
		summary: func(i models.InventoryList) string {
			return fmt.Sprintf("%s (%s)", i.AssetName, i.PropertyNo)
		},
	}))
	r.add(newDescriptor(db, rec, "asset-model", GroupAssets, listSpec[models.AssetModel]{
		preloads: []string{"Category"},
		filters: map[string]string{
			"category_id": "category_id",
		},
		searchCols: []string{"brand", "model"},
		sortable:   map[string]string{"brand": "brand", "model": "model"},
		summary: func(a models.AssetModel) string {
			category := orUnknown(a.Category.Name, "Unknown Category")
			return fmt.Sprintf("%s %s (%s)", a.Brand, a.Model, category)
		},
	}))
	r.add(newDescriptor(db, rec, "equipment-copy", GroupAssets, listSpec[models.EquipmentCopy]{
		preloads: []string{"InventoryList"},
		filters: map[string]string{
			"inventory_list_id": "inventory_list_id",
			"status":            "status",
		},
		searchCols: []string{"status"},
		sortable:   map[string]string{"copy_number": "copy_number", "status": "status"},
		summary: func(e models.EquipmentCopy) string {
			item := orUnknown(e.InventoryList.AssetName, "Unknown Inventory Item")
			return fmt.Sprintf("Copy %d of %s", e.CopyNumber, item)
		},
	}))
	r.add(newDescriptor(db, rec, "category", GroupAssets, listSpec[models.Category]{
		filters: map[string]string{
			"type": "type",
		},
		searchCols: []string{"name"},
		sortable:   map[string]string{"name": "name", "type": "type"},
		summary: func(c models.Category) string {
			return c.Name
		},
	}))

	// Institutional.
	r.add(newDescriptor(db, rec, "building", GroupInstitutional, listSpec[models.Building]{
		searchCols: []string{"name", "code"},
		sortable:   map[string]string{"name": "name", "code": "code"},
		summary: func(b models.Building) string {
			return fmt.Sprintf("%s (%s)", b.Name, b.Code)
		},
	}))
	r.add(newDescriptor(db, rec, "building-room", GroupInstitutional, listSpec[models.BuildingRoom]{
		preloads: []string{"Building"},
		filters: map[string]string{
			"building_id": "building_id",
		},
		searchCols: []string{"room", "floor"},
		sortable:   map[string]string{"room": "room", "floor": "floor"},
		summary: func(r models.BuildingRoom) string {
			building := orUnknown(r.Building.Name, "Unknown Building")
			return fmt.Sprintf("Room %s, %s", r.Room, building)
		},
	}))
	r.add(newDescriptor(db, rec, "unit-or-department", GroupInstitutional, listSpec[models.UnitOrDepartment]{
		searchCols: []string{"name", "code"},
		sortable:   map[string]string{"name": "name", "code": "code"},
		summary: func(u models.UnitOrDepartment) string {
			return fmt.Sprintf("%s (%s)", u.Name, u.Code)
		},
	}))
	r.add(newDescriptor(db, rec, "personnel", GroupInstitutional, listSpec[models.Personnel]{
		preloads: []string{"UnitOrDepartment"},
		filters: map[string]string{
			"unit_or_department_id": "unit_or_department_id",
		},
		searchCols: []string{"full_name", "position"},
		sortable:   map[string]string{"full_name": "full_name", "position": "position"},
		summary: func(p models.Personnel) string {
			unit := orUnknown(p.UnitOrDepartment.Name, "Unknown Unit/Department")
			return fmt.Sprintf("%s, %s", p.FullName, unit)
		},
	}))

	// User management.
	r.add(newDescriptor(db, rec, "user", GroupUserManagement, listSpec[models.User]{
		preloads: []string{"Role"},
		filters: map[string]string{
			"role_id": "role_id",
		},
		searchCols: []string{"name", "email"},
		sortable:   map[string]string{"name": "name", "email": "email"},
		summary: func(u models.User) string {
			role := orUnknown(u.Role.Name, "Unknown Role")
			return fmt.Sprintf("%s (%s)", u.Name, role)
		},
	}))
	r.add(newDescriptor(db, rec, "role", GroupUserManagement, listSpec[models.Role]{
		searchCols: []string{"name"},
		sortable:   map[string]string{"name": "name"},
		summary: func(r models.Role) string {
			return r.Name
		},
	}))
	r.add(newDescriptor(db, rec, "designation", GroupUserManagement, listSpec[models.Designation]{
		searchCols: []string{"name"},
		sortable:   map[string]string{"name": "name"},
		summary: func(d models.Designation) string {
			return d.Name
		},
	}))
	r.add(newDescriptor(db, rec, "signatory", GroupUserManagement, listSpec[models.Signatory]{
		preloads: []string{"Personnel", "Designation"},
		filters: map[string]string{
			"personnel_id":   "personnel_id",
			"designation_id": "designation_id",
		},
		searchCols: []string{"fund_cluster"},
		sortable:   map[string]string{"fund_cluster": "fund_cluster"},
		summary: func(s models.Signatory) string {
			who := orUnknown(s.Personnel.FullName, "Unknown Personnel")
			as := orUnknown(s.Designation.Name, "Unknown Designation")
			return fmt.Sprintf("%s as %s", who, as)
		},
	}))

	return r
}

func orUnknown(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
