package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/controllers"
	"github.com/rfdelacruz/property-app/middlewares"
	"github.com/rfdelacruz/property-app/realtime"
	"github.com/rfdelacruz/property-app/trash"
)

// SetupRouter wires every controller onto a gin engine. The caller owns the
// database handle, the audit recorder and the websocket hub so tests can
// assemble the same stack against an in-memory database.
func SetupRouter(db *gorm.DB, rec *audit.Recorder, hub *realtime.Hub) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db, rec)
	buildingCtrl := controllers.NewBuildingController(db, rec)
	personnelCtrl := controllers.NewPersonnelController(db, rec)
	assetCtrl := controllers.NewAssetController(db, rec)
	inventoryCtrl := controllers.NewInventoryController(db, rec)
	transferCtrl := controllers.NewTransferController(db, rec)
	turnoverCtrl := controllers.NewTurnoverDisposalController(db, rec)
	offCampusCtrl := controllers.NewOffCampusController(db, rec)
	trashCtrl := controllers.NewTrashController(db, trash.NewRegistry(db, rec))
	changeCtrl := controllers.NewChangeRecordController(db)
	reportCtrl := controllers.NewReportController(db)
	realtimeCtrl := controllers.NewRealtimeController(hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter on the login endpoint only.
	public := r.Group("/")
	public.Use(middlewares.NewRateLimiter(10, 60).RateLimit())
	{
		public.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/me", authCtrl.Me)
	auth.GET("/ws/events", realtimeCtrl.Events)

	// Institutional structure (any authenticated role may read,
	// custodians and admins may write).
	auth.GET("/buildings", buildingCtrl.GetAllBuildings)
	auth.GET("/buildings/:building_id", buildingCtrl.GetBuildingByID)
	auth.GET("/buildings/:building_id/rooms", buildingCtrl.GetRoomsByBuilding)
	auth.GET("/units", personnelCtrl.GetAllUnits)
	auth.GET("/personnel", personnelCtrl.GetAllPersonnel)
	auth.GET("/designations", personnelCtrl.GetAllDesignations)
	auth.GET("/signatories", personnelCtrl.GetAllSignatories)

	// Asset catalogue
	auth.GET("/categories", assetCtrl.GetAllCategories)
	auth.GET("/asset-models", assetCtrl.GetAllAssetModels)
	auth.GET("/inventory-items", inventoryCtrl.GetAllItems)
	auth.GET("/inventory-items/:item_id", inventoryCtrl.GetItemByID)
	auth.GET("/inventory-items/:item_id/copies", assetCtrl.GetCopiesByItem)

	// Forms
	auth.GET("/transfers", transferCtrl.GetAllTransfers)
	auth.GET("/transfers/:transfer_id", transferCtrl.GetTransferByID)
	auth.GET("/transfers/:transfer_id/slip", reportCtrl.TransferSlipPDF)
	auth.GET("/turnover-disposals", turnoverCtrl.GetAllRecords)
	auth.GET("/turnover-disposals/:record_id", turnoverCtrl.GetRecordByID)
	auth.GET("/off-campus-passes", offCampusCtrl.GetAllPasses)
	auth.GET("/inventory-schedulings", inventoryCtrl.GetAllSchedulings)

	custodian := auth.Group("/")
	custodian.Use(middlewares.RequireRole("property_custodian"))
	{
		custodian.POST("/buildings", buildingCtrl.CreateBuilding)
		custodian.PATCH("/buildings/:building_id", buildingCtrl.UpdateBuilding)
		custodian.DELETE("/buildings/:building_id", buildingCtrl.DeleteBuilding)
		custodian.POST("/buildings/:building_id/rooms", buildingCtrl.CreateRoom)
		custodian.PATCH("/rooms/:room_id", buildingCtrl.UpdateRoom)
		custodian.DELETE("/rooms/:room_id", buildingCtrl.DeleteRoom)

		custodian.POST("/units", personnelCtrl.CreateUnit)
		custodian.PATCH("/units/:unit_id", personnelCtrl.UpdateUnit)
		custodian.DELETE("/units/:unit_id", personnelCtrl.DeleteUnit)
		custodian.POST("/personnel", personnelCtrl.CreatePersonnel)
		custodian.PATCH("/personnel/:personnel_id", personnelCtrl.UpdatePersonnel)
		custodian.DELETE("/personnel/:personnel_id", personnelCtrl.DeletePersonnel)
		custodian.POST("/designations", personnelCtrl.CreateDesignation)
		custodian.PATCH("/designations/:designation_id", personnelCtrl.UpdateDesignation)
		custodian.DELETE("/designations/:designation_id", personnelCtrl.DeleteDesignation)
		custodian.POST("/signatories", personnelCtrl.CreateSignatory)
		custodian.PATCH("/signatories/:signatory_id", personnelCtrl.UpdateSignatory)
		custodian.DELETE("/signatories/:signatory_id", personnelCtrl.DeleteSignatory)

		custodian.POST("/categories", assetCtrl.CreateCategory)
		custodian.PATCH("/categories/:category_id", assetCtrl.UpdateCategory)
		custodian.DELETE("/categories/:category_id", assetCtrl.DeleteCategory)
		custodian.POST("/asset-models", assetCtrl.CreateAssetModel)
		custodian.PATCH("/asset-models/:asset_model_id", assetCtrl.UpdateAssetModel)
		custodian.DELETE("/asset-models/:asset_model_id", assetCtrl.DeleteAssetModel)
		custodian.POST("/inventory-items", inventoryCtrl.CreateItem)
		custodian.PATCH("/inventory-items/:item_id", inventoryCtrl.UpdateItem)
		custodian.DELETE("/inventory-items/:item_id", inventoryCtrl.DeleteItem)
		custodian.POST("/equipment-copies", assetCtrl.CreateEquipmentCopy)
		custodian.PATCH("/equipment-copies/:copy_id", assetCtrl.UpdateEquipmentCopy)
		custodian.DELETE("/equipment-copies/:copy_id", assetCtrl.DeleteEquipmentCopy)

		custodian.POST("/transfers", transferCtrl.CreateTransfer)
		custodian.PATCH("/transfers/:transfer_id", transferCtrl.UpdateTransfer)
		custodian.DELETE("/transfers/:transfer_id", transferCtrl.DeleteTransfer)
		custodian.POST("/turnover-disposals", turnoverCtrl.CreateRecord)
		custodian.PATCH("/turnover-disposals/:record_id", turnoverCtrl.UpdateRecord)
		custodian.DELETE("/turnover-disposals/:record_id", turnoverCtrl.DeleteRecord)
		custodian.PATCH("/turnover-disposals/:record_id/verification", turnoverCtrl.UpdateVerificationForm)
		custodian.POST("/off-campus-passes", offCampusCtrl.CreatePass)
		custodian.PATCH("/off-campus-passes/:pass_id", offCampusCtrl.UpdatePass)
		custodian.DELETE("/off-campus-passes/:pass_id", offCampusCtrl.DeletePass)
		custodian.POST("/inventory-schedulings", inventoryCtrl.CreateScheduling)
		custodian.PATCH("/inventory-schedulings/:scheduling_id", inventoryCtrl.UpdateScheduling)
		custodian.DELETE("/inventory-schedulings/:scheduling_id", inventoryCtrl.DeleteScheduling)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := auth.Group("/admin")
	admin.Use(middlewares.RequireRole("admin"))

	admin.GET("/users", userCtrl.GetAllUsers)
	admin.POST("/users", userCtrl.CreateUser)
	admin.PATCH("/users/:user_id", userCtrl.UpdateUser)
	admin.DELETE("/users/:user_id", userCtrl.DeleteUser)
	admin.GET("/roles", userCtrl.GetAllRoles)
	admin.POST("/roles", userCtrl.CreateRole)
	admin.PATCH("/roles/:role_id", userCtrl.UpdateRole)
	admin.DELETE("/roles/:role_id", userCtrl.DeleteRole)

	// TRASH (recoverable deletes)
	admin.GET("/trash/types", trashCtrl.GetTypes)
	admin.GET("/trash/:entity_type", trashCtrl.GetTrash)
	admin.POST("/trash/:entity_type/:id/restore", trashCtrl.RestoreTrash)

	// AUDIT TRAIL
	admin.GET("/change-records", changeCtrl.GetChangeRecords)
	admin.GET("/change-records/:subject_type/:subject_id", changeCtrl.GetSubjectHistory)
	admin.GET("/reports/activity-chart", reportCtrl.ActivityChart)

	return r
}
