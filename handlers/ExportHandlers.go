package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"citylockers/models"
	"citylockers/repository"
	"citylockers/storage"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportScenariosCSV godoc
// @Summary      Export saved scenarios as CSV
// @Description  One row per scenario with the headline projection figures recomputed from its stored configuration.
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  file  "CSV file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/export_csv_scenarios [get]
func ExportScenariosCSV(c *gin.Context) {
	scenarios, err := repository.ListScenarios(storage.GetGormDB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Set headers for CSV file download
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=scenarios_export.csv")

	// Create CSV writer
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	header := []string{
		"Scenario", "Saved", "Client", "PropertyType", "LocationFactor",
		"LockersM", "LockersL", "LockersXL", "RevenueSharePct", "ContractYears",
		"TotalDailyGross", "PartnerAnnual", "PartnerContract",
	}
	if err := writer.Write(header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV header"})
		return
	}

	for _, scenario := range scenarios {
		cfg, _ := models.MergeWithDefaults([]byte(scenario.Data))
		financials := CalculateFinancials(cfg)

		row := []string{
			scenario.Name,
			scenario.Date.Format("2006-01-02"),
			cfg.ClientName,
			cfg.PropertyType,
			fmt.Sprintf("%.2f", cfg.LocationFactor),
			fmt.Sprintf("%d", cfg.LockerM.Qty),
			fmt.Sprintf("%d", cfg.LockerL.Qty),
			fmt.Sprintf("%d", cfg.LockerXL.Qty),
			fmt.Sprintf("%.0f", cfg.RevenueShare),
			fmt.Sprintf("%d", cfg.ContractTerm),
			fmt.Sprintf("%.2f", financials.TotalDailyGross),
			fmt.Sprintf("%.2f", financials.PartnerAnnual),
			fmt.Sprintf("%.2f", financials.PartnerContract),
		}
		if err := writer.Write(row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV row"})
			return
		}
	}
}

// ExportSummaryExcel godoc
// @Summary      Export the current projection as an Excel workbook
// @Description  One sheet with the deal summary and the full revenue breakdown for the live configuration.
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file  "Excel file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/export_excel_summary [get]
func ExportSummaryExcel(c *gin.Context) {
	db := storage.GetDB()
	stored, _, err := storage.GetStateBlob(db, storage.CurrentStateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cfg, _ := models.MergeWithDefaults(stored)
	financials := CalculateFinancials(cfg)
	space := CalculateSpaceUtilization(cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)

	// Create a new Excel file
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
		}
	}()

	summarySheet := "Summary"
	index, err := f.NewSheet(summarySheet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating summary sheet"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1") // Delete default sheet

	f.SetCellValue(summarySheet, "A1", "CityLockers Revenue Projection")
	f.SetCellValue(summarySheet, "A2", "Client")
	f.SetCellValue(summarySheet, "B2", cfg.ClientName)
	f.SetCellValue(summarySheet, "A3", "Property Type")
	f.SetCellValue(summarySheet, "B3", cfg.PropertyType)
	f.SetCellValue(summarySheet, "A4", "Location Factor")
	f.SetCellValue(summarySheet, "B4", cfg.LocationFactor)
	f.SetCellValue(summarySheet, "A5", "Revenue Share (%)")
	f.SetCellValue(summarySheet, "B5", cfg.RevenueShare)
	f.SetCellValue(summarySheet, "A6", "Contract Term (years)")
	f.SetCellValue(summarySheet, "B6", cfg.ContractTerm)
	f.SetCellValue(summarySheet, "A7", "Properties")
	f.SetCellValue(summarySheet, "B7", max(1, cfg.NumberOfProperties))

	f.SetCellValue(summarySheet, "A9", "Daily Gross by Stream ("+models.Currency+")")
	f.SetCellValue(summarySheet, "A10", "Lockers")
	f.SetCellValue(summarySheet, "B10", financials.DailyLockerGross)
	f.SetCellValue(summarySheet, "C10", financials.Mix.Lockers/100)
	f.SetCellValue(summarySheet, "A11", "Scooters")
	f.SetCellValue(summarySheet, "B11", financials.DailyScooterGross)
	f.SetCellValue(summarySheet, "C11", financials.Mix.Scooters/100)
	f.SetCellValue(summarySheet, "A12", "Transfers")
	f.SetCellValue(summarySheet, "B12", financials.DailyTransferGross)
	f.SetCellValue(summarySheet, "C12", financials.Mix.Transfers/100)
	f.SetCellValue(summarySheet, "A13", "Delivery")
	f.SetCellValue(summarySheet, "B13", financials.DailyDeliveryGross)
	f.SetCellValue(summarySheet, "C13", financials.Mix.Delivery/100)
	f.SetCellValue(summarySheet, "A14", "Total Daily")
	f.SetCellValue(summarySheet, "B14", financials.TotalDailyGross)

	f.SetCellValue(summarySheet, "A16", "Partner Figures ("+models.Currency+")")
	f.SetCellValue(summarySheet, "A17", "Monthly")
	f.SetCellValue(summarySheet, "B17", financials.PartnerMonthly)
	f.SetCellValue(summarySheet, "A18", "Annual")
	f.SetCellValue(summarySheet, "B18", financials.PartnerAnnual)
	f.SetCellValue(summarySheet, "A19", "Contract Total")
	f.SetCellValue(summarySheet, "B19", financials.PartnerContract)

	f.SetCellValue(summarySheet, "A21", "Space")
	f.SetCellValue(summarySheet, "A22", "Total Lockers")
	f.SetCellValue(summarySheet, "B22", space.TotalLockers)
	f.SetCellValue(summarySheet, "A23", "Width Needed (m)")
	f.SetCellValue(summarySheet, "B23", space.WidthNeeded)
	f.SetCellValue(summarySheet, "A24", "Rack Units")
	f.SetCellValue(summarySheet, "B24", space.UnitsNeeded)

	safeName := strings.ReplaceAll(strings.TrimSpace(cfg.ClientName), " ", "_")
	safeName = strings.ReplaceAll(safeName, "/", "-")
	filename := fmt.Sprintf("projection_%s.xlsx", safeName)
	escaped := url.PathEscape(filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", filename, escaped))

	// Write the Excel file to the response
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
		return
	}
}
