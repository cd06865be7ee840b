package repository

import (
	"fmt"
	"strings"
	"time"

	"citylockers/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateScenarioName builds the default scenario name when the caller does
// not supply one, e.g. "Marriott JBR - 31/08/2026".
func GenerateScenarioName(clientName string, now time.Time) string {
	name := strings.TrimSpace(clientName)
	if name == "" {
		name = "New Client"
	}
	return fmt.Sprintf("%s - %s", name, now.Format("02/01/2006"))
}

// SaveScenario inserts a new scenario snapshot and returns the stored row.
func SaveScenario(db *gorm.DB, name string, data []byte) (*models.ScenarioGorm, error) {
	scenario := models.ScenarioGorm{
		UID:  uuid.NewString(),
		Name: name,
		Date: time.Now(),
		Data: models.JSONBlob(data),
	}
	if err := db.Create(&scenario).Error; err != nil {
		return nil, fmt.Errorf("failed to save scenario: %w", err)
	}
	return &scenario, nil
}

// ListScenarios returns all scenarios in insertion order.
func ListScenarios(db *gorm.DB) ([]models.ScenarioGorm, error) {
	var scenarios []models.ScenarioGorm
	if err := db.Order("id ASC").Find(&scenarios).Error; err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return scenarios, nil
}

// GetScenarioAt returns the scenario at the given position in insertion order.
func GetScenarioAt(db *gorm.DB, index int) (*models.ScenarioGorm, error) {
	if index < 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var scenario models.ScenarioGorm
	err := db.Order("id ASC").Offset(index).Limit(1).Take(&scenario).Error
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

// DeleteScenarioAt removes the scenario at the given position in insertion
// order. Positions of the remaining scenarios shift down by one.
func DeleteScenarioAt(db *gorm.DB, index int) error {
	scenario, err := GetScenarioAt(db, index)
	if err != nil {
		return err
	}
	return db.Delete(&models.ScenarioGorm{}, scenario.ID).Error
}

// DeleteScenarioByUID removes a scenario by its stable identifier.
func DeleteScenarioByUID(db *gorm.DB, uid string) error {
	result := db.Where("uid = ?", uid).Delete(&models.ScenarioGorm{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
