package repository

import (
	"promptmaster_backend/internal/model"

	"gorm.io/gorm"
)

type ScenarioRepository struct {
	DB *gorm.DB
}

func NewScenarioRepository(db *gorm.DB) *ScenarioRepository {
	return &ScenarioRepository{DB: db}
}

func (r *ScenarioRepository) FindByID(id uint) (*model.Scenario, error) {
	var scenario model.Scenario
	err := r.DB.First(&scenario, id).Error
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (r *ScenarioRepository) FindActive() ([]model.Scenario, error) {
	var scenarios []model.Scenario
	err := r.DB.Where("active = ?", true).
		Order("module_code, id").
		Find(&scenarios).Error
	return scenarios, err
}

func (r *ScenarioRepository) FindAll() ([]model.Scenario, error) {
	var scenarios []model.Scenario
	err := r.DB.Order("module_code, id").Find(&scenarios).Error
	return scenarios, err
}

// CountActiveByModule returns active scenario counts keyed by module
// code, used for module progress rollups.
func (r *ScenarioRepository) CountActiveByModule() (map[string]int, error) {
	type row struct {
		ModuleCode string
		Count      int
	}
	var rows []row
	err := r.DB.Model(&model.Scenario{}).
		Select("module_code, count(*) as count").
		Where("active = ?", true).
		Group("module_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, rw := range rows {
		counts[rw.ModuleCode] = rw.Count
	}
	return counts, nil
}

func (r *ScenarioRepository) Create(scenario *model.Scenario) error {
	return r.DB.Create(scenario).Error
}

func (r *ScenarioRepository) Update(scenario *model.Scenario) error {
	return r.DB.Save(scenario).Error
}
