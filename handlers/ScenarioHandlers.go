package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"citylockers/models"
	"citylockers/repository"
	"citylockers/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaveScenarioRequest names a scenario snapshot. Name is optional.
type SaveScenarioRequest struct {
	Name string `json:"name" example:"Marriott JBR pilot"`
}

// SaveScenarioHandler godoc
// @Summary      Save the live configuration as a scenario
// @Description  Snapshots the current configuration under the given name, or "clientName - date" when omitted. Names are not unique; saving always appends.
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        body  body      SaveScenarioRequest  false  "Scenario name (optional)"
// @Success      201   {object}  models.ScenarioGorm
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/scenarios [post]
func SaveScenarioHandler(c *gin.Context) {
	var req SaveScenarioRequest
	_ = c.ShouldBindJSON(&req)

	db := storage.GetDB()
	stored, _, err := storage.GetStateBlob(db, storage.CurrentStateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cfg, merged := models.MergeWithDefaults(stored)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = repository.GenerateScenarioName(cfg.ClientName, time.Now())
	}

	scenario, err := repository.SaveScenario(storage.GetGormDB(), name, merged)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, scenario)
}

// ListScenariosHandler godoc
// @Summary      List saved scenarios
// @Description  Returns all scenarios in insertion order.
// @Tags         scenarios
// @Produce      json
// @Success      200  {array}   models.ScenarioGorm
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/scenarios [get]
func ListScenariosHandler(c *gin.Context) {
	scenarios, err := repository.ListScenarios(storage.GetGormDB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if scenarios == nil {
		scenarios = []models.ScenarioGorm{}
	}
	c.JSON(http.StatusOK, scenarios)
}

// LoadScenarioHandler godoc
// @Summary      Load a scenario into the live configuration
// @Description  Replaces the live configuration with the scenario at the given position. Old-schema scenarios are merged with current defaults.
// @Tags         scenarios
// @Produce      json
// @Param        index  path      int  true  "Scenario position (insertion order, 0-based)"
// @Success      200    {object}  models.StateResponse
// @Failure      400    {object}  models.ErrorResponse
// @Failure      404    {object}  models.ErrorResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/scenarios/{index}/load [post]
func LoadScenarioHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	scenario, err := repository.GetScenarioAt(storage.GetGormDB(), index)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scenario not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cfg, merged := models.MergeWithDefaults([]byte(scenario.Data))

	db := storage.GetDB()
	if err := storage.SetStateBlob(db, storage.CurrentStateKey, merged); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	financials := CalculateFinancials(cfg)
	space := CalculateSpaceUtilization(cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)

	c.Data(http.StatusOK, "application/json", statePayload(merged, financials, space))
}

// DeleteScenarioHandler godoc
// @Summary      Delete a scenario
// @Description  Removes the scenario at the given position in insertion order. Later positions shift down by one.
// @Tags         scenarios
// @Produce      json
// @Param        index  path      int  true  "Scenario position (insertion order, 0-based)"
// @Success      200    {object}  models.MessageResponse
// @Failure      400    {object}  models.ErrorResponse
// @Failure      404    {object}  models.ErrorResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/scenarios/{index} [delete]
func DeleteScenarioHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	if err := repository.DeleteScenarioAt(storage.GetGormDB(), index); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scenario not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "scenario deleted"})
}

// DeleteScenarioByUIDHandler godoc
// @Summary      Delete a scenario by stable id
// @Description  Removes the scenario with the given uid. Unlike positional delete, the reference stays valid while other scenarios are added or removed.
// @Tags         scenarios
// @Produce      json
// @Param        uid  path      string  true  "Scenario uid"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/scenario_delete_by_uid/{uid} [delete]
func DeleteScenarioByUIDHandler(c *gin.Context) {
	if err := repository.DeleteScenarioByUID(storage.GetGormDB(), c.Param("uid")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scenario not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "scenario deleted"})
}
