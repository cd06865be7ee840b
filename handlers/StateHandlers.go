package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"citylockers/models"
	"citylockers/storage"

	"github.com/gin-gonic/gin"
)

// statePayload renders the merged raw state alongside the derived figures.
// The raw blob is passed through untouched so unknown fields survive.
func statePayload(merged []byte, financials models.FinancialSummary, space models.SpaceMetrics) []byte {
	payload, _ := json.Marshal(gin.H{
		"state":      json.RawMessage(merged),
		"financials": financials,
		"space":      space,
	})
	return payload
}

// GetStateHandler godoc
// @Summary      Get live calculator state
// @Description  Returns the current configuration merged with defaults. A fresh installation returns the default configuration.
// @Tags         state
// @Produce      json
// @Success      200  {object}  models.StateResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/state [get]
func GetStateHandler(c *gin.Context) {
	db := storage.GetDB()

	stored, _, err := storage.GetStateBlob(db, storage.CurrentStateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cfg, merged := models.MergeWithDefaults(stored)
	financials := CalculateFinancials(cfg)
	space := CalculateSpaceUtilization(cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)

	c.Data(http.StatusOK, "application/json", statePayload(merged, financials, space))
}

// ReplaceStateHandler godoc
// @Summary      Replace live calculator state
// @Description  Replaces the whole configuration. Missing fields are filled from defaults; unknown fields are kept.
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body      models.Configuration  true  "New configuration"
// @Success      200   {object}  models.StateResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/state [put]
func ReplaceStateHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body: " + err.Error()})
		return
	}

	cfg, merged := models.MergeWithDefaults(body)

	db := storage.GetDB()
	if err := storage.SetStateBlob(db, storage.CurrentStateKey, merged); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	financials := CalculateFinancials(cfg)
	space := CalculateSpaceUtilization(cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)

	c.Data(http.StatusOK, "application/json", statePayload(merged, financials, space))
}

// UpdateStateFieldHandler godoc
// @Summary      Update one configuration field
// @Description  Applies a single-field update (e.g. field "lockerM.qty", value 8) to the live configuration.
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateCommand  true  "Field path and new value"
// @Success      200   {object}  models.StateResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/state/update [post]
func UpdateStateFieldHandler(c *gin.Context) {
	var cmd models.UpdateCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}

	db := storage.GetDB()
	stored, _, err := storage.GetStateBlob(db, storage.CurrentStateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cfg, merged := models.MergeWithDefaults(stored)
	if err := cfg.ApplyUpdate(cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated := models.EncodeState(merged, cfg)
	if err := storage.SetStateBlob(db, storage.CurrentStateKey, updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	financials := CalculateFinancials(cfg)
	space := CalculateSpaceUtilization(cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)

	c.Data(http.StatusOK, "application/json", statePayload(updated, financials, space))
}
