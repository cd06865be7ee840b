package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"citylockers/models"
	"citylockers/services"
	"citylockers/storage"
	"citylockers/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func periodLabel(divisor float64) string {
	for _, p := range models.TransferPeriods {
		if p.Value == divisor {
			return p.Label
		}
	}
	return fmt.Sprintf("%.0f/yr", divisor)
}

// GenerateProposalPDF godoc
// @Summary      Generate partner proposal PDF
// @Description  Renders the current configuration and projection as a client-facing proposal document.
// @Tags         proposal
// @Produce      application/pdf
// @Success      200  "PDF file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/proposal_pdf [get]
func GenerateProposalPDF(c *gin.Context) {
	db := storage.GetDB()
	stored, _, err := storage.GetStateBlob(db, storage.CurrentStateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cfg, _ := models.MergeWithDefaults(stored)
	financials := CalculateFinancials(cfg)
	space := CalculateSpaceUtilization(cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)

	titleCaser := cases.Title(language.Und)

	// --- Generate PDF ---
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetMargins(10, 10, 10)
	pdf.SetFont("Arial", "", 10)

	// --- Header ---
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(190, 10, "CITYLOCKERS PARTNERSHIP PROPOSAL")
	pdf.Ln(12)

	// --- Client block ---
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(95, 8, "Prepared for")
	pdf.Cell(95, 8, "Deal Terms")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	leftY := pdf.GetY()
	pdf.MultiCell(90, 6, fmt.Sprintf(
		"%s\n%s\nLocation factor: %.2f\n%d properties",
		cfg.ClientName, titleCaser.String(cfg.PropertyType), cfg.LocationFactor,
		max(1, cfg.NumberOfProperties),
	), "", "", false)
	pdf.SetXY(110, leftY)
	pdf.MultiCell(90, 6, fmt.Sprintf(
		"Revenue share: %.0f%%\nContract term: %d years\nCurrency: %s",
		cfg.RevenueShare, cfg.ContractTerm, models.Currency,
	), "", "", false)
	pdf.Ln(8)

	// --- Locker table ---
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(30, 8, "Size", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Daily Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Occupancy", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 8, "Daily Gross", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	lines := []struct {
		size string
		line models.LockerLine
	}{
		{"Medium", cfg.LockerM},
		{"Large", cfg.LockerL},
		{"X-Large", cfg.LockerXL},
	}
	for _, row := range lines {
		daily := CalculateLockerRevenue(row.line.Qty, row.line.Price, row.line.Occupancy, cfg.LocationFactor)
		pdf.CellFormat(30, 8, row.size, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", row.line.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, utils.FormatAmount2(row.line.Price), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.0f%%", row.line.Occupancy), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 8, utils.FormatAmount2(daily), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// --- Additional services ---
	serviceLines := []string{}
	if cfg.ScootersEnabled {
		serviceLines = append(serviceLines, fmt.Sprintf("E-scooters: %d units at %s/hr, %.1f hrs/day",
			cfg.Scooters.Units, utils.FormatAmount2(cfg.Scooters.HourlyRate), cfg.Scooters.Utilization))
	}
	if cfg.TransfersEnabled {
		serviceLines = append(serviceLines, fmt.Sprintf("Luggage transfers: %.0f per %s at %s",
			cfg.Transfers.Volume, strings.ToLower(periodLabel(cfg.Transfers.Period)), utils.FormatAmount2(cfg.Transfers.Price)))
	}
	if cfg.DeliveryEnabled {
		airportName := cfg.Delivery.SelectedAirport
		if airport, ok := models.AirportByCode(cfg.Delivery.SelectedAirport); ok {
			airportName = airport.Name
		}
		serviceLines = append(serviceLines, fmt.Sprintf("Airport delivery to %s: %.0f per %s at %s",
			airportName, cfg.Delivery.Volume, strings.ToLower(periodLabel(cfg.Delivery.Period)),
			utils.FormatAmount2(ResolveDeliveryPrice(cfg.Delivery))))
	}
	if len(serviceLines) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 8, "Additional Services:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		for _, s := range serviceLines {
			pdf.Cell(190, 6, s)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	// --- Partner earnings summary ---
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(140, 8, "Total Daily Gross")
	pdf.CellFormat(50, 8, fmt.Sprintf("%s %s", models.Currency, utils.FormatAmount2(financials.TotalDailyGross)), "1", 1, "R", false, 0, "")
	pdf.Cell(140, 8, "Your Monthly Income")
	pdf.CellFormat(50, 8, fmt.Sprintf("%s %s", models.Currency, utils.FormatAmount(financials.PartnerMonthly)), "1", 1, "R", false, 0, "")
	pdf.Cell(140, 8, "Your Annual Income")
	pdf.CellFormat(50, 8, fmt.Sprintf("%s %s", models.Currency, utils.FormatAmount(financials.PartnerAnnual)), "1", 1, "R", false, 0, "")
	pdf.Cell(140, 8, fmt.Sprintf("Total over %d-Year Contract", cfg.ContractTerm))
	pdf.CellFormat(50, 8, fmt.Sprintf("%s %s", models.Currency, utils.FormatAmount(financials.PartnerContract)), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	// --- Space requirements ---
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(190, 8, "Installation Requirements:")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	spaceLine := fmt.Sprintf("%d lockers in %d rack unit(s), %.2f m of wall width required (%.2f m available)",
		space.TotalLockers, space.UnitsNeeded, space.WidthNeeded, cfg.AvailableWallSpace)
	if space.WidthNeeded > cfg.AvailableWallSpace {
		spaceLine += " - exceeds available space"
	}
	pdf.MultiCell(190, 6, spaceLine, "", "L", false)
	pdf.Ln(5)

	// --- Notes ---
	if strings.TrimSpace(cfg.Notes) != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 8, "Notes:")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(190, 6, services.HTMLToText(cfg.Notes), "", "L", false)
		pdf.Ln(5)
	}

	// --- Deal QR ---
	if img, err := dealQRCode(cfg, financials); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader("deal_qr", opts, bytes.NewReader(img))
		pdf.ImageOptions("deal_qr", 160, pdf.GetY(), 35, 0, false, opts, 0, "")
	}

	// --- Footer ---
	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(190, 6, "Projections are estimates based on the stated assumptions, not guaranteed income.")
	pdf.Ln(5)
	pdf.Cell(190, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))

	// --- Output PDF ---
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=proposal_%s.pdf",
		strings.ReplaceAll(strings.TrimSpace(cfg.ClientName), " ", "_")))
	if err := pdf.Output(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}
}
