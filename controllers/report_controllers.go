package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/utils"
)

// ReportController renders the printable/exportable surfaces: the property
// transfer slip as PDF and the change-activity chart for the dashboard.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// TransferSlipPDF renders one property transfer as a printable slip.
func (rc *ReportController) TransferSlipPDF(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("transfer_id"))

	var transfer models.PropertyTransfer
	if err := rc.DB.Preload("OriginUnit").Preload("DestinationUnit").
		Preload("OriginBuilding").Preload("DestinationBuilding").
		First(&transfer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("transfer not found"))
		return
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Property Transfer Slip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Property Transfer Slip", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Reference No: %s", transfer.RefNo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 7, label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "1", 1, "L", false, 0, "")
	}

	unknownIf := func(name string) string {
		if name == "" {
			return "Unknown Unit/Department"
		}
		return name
	}

	row("Origin", unknownIf(transfer.OriginUnit.Name))
	row("Destination", unknownIf(transfer.DestinationUnit.Name))
	if transfer.OriginBuilding != nil {
		row("Origin Building", transfer.OriginBuilding.Name)
	}
	if transfer.DestinationBuilding != nil {
		row("Destination Building", transfer.DestinationBuilding.Name)
	}
	if transfer.ScheduledDate != nil {
		row("Scheduled Date", transfer.ScheduledDate.Format("2006-01-02"))
	}
	row("Status", transfer.Status)
	if transfer.Remarks != "" {
		row("Remarks", transfer.Remarks)
	}

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 7, "Released by: ______________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Received by: ______________________", "", 1, "L", false, 0, "")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transfer-%s.pdf", transfer.RefNo))
	c.Header("Content-Type", "application/pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.ErrorLogger.Printf("Error writing transfer slip PDF: %v", err)
	}
}

// ActivityChart renders change-record counts per day over the last 30 days
// as a PNG bar chart.
func (rc *ReportController) ActivityChart(c *gin.Context) {
	since := time.Now().AddDate(0, 0, -30)

	type bucket struct {
		Day   string
		Total int64
	}
	var buckets []bucket
	if err := rc.DB.Model(&models.ChangeRecord{}).
		Select("DATE(created_at) AS day, COUNT(*) AS total").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&buckets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if len(buckets) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("no change activity in the last 30 days"))
		return
	}

	bars := make([]chart.Value, 0, len(buckets))
	for _, b := range buckets {
		bars = append(bars, chart.Value{Label: b.Day, Value: float64(b.Total)})
	}

	graph := chart.BarChart{
		Title:    "Change activity (30 days)",
		Height:   400,
		BarWidth: 18,
		Bars:     bars,
	}

	c.Header("Content-Type", "image/png")
	if err := graph.Render(chart.PNG, c.Writer); err != nil {
		utils.ErrorLogger.Printf("Error rendering activity chart: %v", err)
	}
}
