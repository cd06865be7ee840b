package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"net/http"

	"citylockers/models"
	"citylockers/storage"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// addLabel adds text to an image at the specified position
func addLabel(img *image.RGBA, x, y int, label string) {
	col := color.RGBA{0, 0, 0, 255}
	face := inconsolata.Regular8x16

	point := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  point,
	}
	d.DrawString(label)
}

// addLabelBold adds bold text for field labels
func addLabelBold(img *image.RGBA, x, y int, label string) {
	col := color.RGBA{30, 30, 30, 255}
	face := inconsolata.Bold8x16

	point := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  point,
	}
	d.DrawString(label)
}

type labeledLine struct {
	label string
	value string
}

// renderLabeledQR draws a QR code with a labeled summary block underneath.
func renderLabeledQR(content string, lines []labeledLine) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("QR code generation failed: %v", err)
	}

	qrImg := qr.Image(512)

	qrSize := qrImg.Bounds().Dy()
	padding := 30
	lineHeight := 28
	textAreaHeight := len(lines)*lineHeight + padding
	totalHeight := qrSize + padding + textAreaHeight

	combinedImg := image.NewRGBA(image.Rect(0, 0, qrSize, totalHeight))
	draw.Draw(combinedImg, combinedImg.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	qrRect := image.Rect(0, 0, qrSize, qrSize)
	draw.Draw(combinedImg, qrRect, qrImg, image.Point{}, draw.Src)

	separatorY := qrSize + padding/2
	for x := 0; x < qrSize; x++ {
		combinedImg.Set(x, separatorY, color.RGBA{200, 200, 200, 255})
	}

	startY := qrSize + padding + lineHeight
	xPos := 20
	for i, line := range lines {
		value := line.value
		if len(value) > 30 {
			value = value[:27] + "..."
		}
		addLabelBold(combinedImg, xPos, startY+i*lineHeight, line.label)
		addLabel(combinedImg, xPos+160, startY+i*lineHeight, value)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, combinedImg, nil); err != nil {
		return nil, fmt.Errorf("JPEG encoding failed: %v", err)
	}
	return buf.Bytes(), nil
}

// dealQRCode renders the labeled QR card for the live configuration. The QR
// itself carries the headline deal figures as JSON so a scan on site recovers
// them without network access.
func dealQRCode(cfg models.Configuration, financials models.FinancialSummary) ([]byte, error) {
	qrData := struct {
		Client        string  `json:"client"`
		PropertyType  string  `json:"propertyType"`
		PartnerAnnual float64 `json:"partnerAnnual"`
		Currency      string  `json:"currency"`
	}{
		Client:        cfg.ClientName,
		PropertyType:  cfg.PropertyType,
		PartnerAnnual: financials.PartnerAnnual,
		Currency:      models.Currency,
	}
	jsonData, err := json.Marshal(qrData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deal data: %v", err)
	}

	lines := []labeledLine{
		{"Client:", cfg.ClientName},
		{"Property:", cfg.PropertyType},
		{"Lockers:", fmt.Sprintf("%d M / %d L / %d XL", cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)},
		{"Share:", fmt.Sprintf("%.0f%%", cfg.RevenueShare)},
		{"Annual:", fmt.Sprintf("%s %.0f", models.Currency, financials.PartnerAnnual)},
	}

	return renderLabeledQR(string(jsonData), lines)
}

// DealQRCodeHandler godoc
// @Summary      Generate deal QR card as JPEG
// @Description  Renders a QR code carrying the headline deal figures with a labeled summary underneath.
// @Tags         qr
// @Produce      jpeg
// @Success      200  {file}    file  "JPEG image"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/deal_qr [get]
func DealQRCodeHandler(c *gin.Context) {
	db := storage.GetDB()
	stored, _, err := storage.GetStateBlob(db, storage.CurrentStateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cfg, _ := models.MergeWithDefaults(stored)
	financials := CalculateFinancials(cfg)

	img, err := dealQRCode(cfg, financials)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/jpeg", img)
}
