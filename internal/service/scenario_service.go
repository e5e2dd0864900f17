package service

import (
	"errors"
	"promptmaster_backend/internal/model"
	"promptmaster_backend/internal/repository"
	"promptmaster_backend/internal/util"

	"gorm.io/gorm"
)

type ScenarioService struct {
	ScenarioRepo *repository.ScenarioRepository
	AttemptRepo  *repository.AttemptRepository
}

func NewScenarioService(scenarioRepo *repository.ScenarioRepository, attemptRepo *repository.AttemptRepository) *ScenarioService {
	return &ScenarioService{
		ScenarioRepo: scenarioRepo,
		AttemptRepo:  attemptRepo,
	}
}

// ScenarioStatus decorates a scenario with the requesting user's
// attempt state.
type ScenarioStatus struct {
	model.Scenario
	Attempts  int  `json:"attempts"`
	BestScore int  `json:"bestScore"`
	Completed bool `json:"completed"`
}

func (s *ScenarioService) ListForUser(userID uint) ([]ScenarioStatus, error) {
	scenarios, err := s.ScenarioRepo.FindActive()
	if err != nil {
		return nil, err
	}

	attempts, err := s.AttemptRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	attemptsByScenario := map[uint][]model.Attempt{}
	for _, a := range attempts {
		attemptsByScenario[a.ScenarioID] = append(attemptsByScenario[a.ScenarioID], a)
	}

	out := make([]ScenarioStatus, len(scenarios))
	for i, scenario := range scenarios {
		status := ScenarioStatus{Scenario: scenario}
		for _, a := range attemptsByScenario[scenario.ID] {
			status.Attempts++
			if a.Score > status.BestScore {
				status.BestScore = a.Score
			}
			if a.AttemptNumber == 1 && a.Score >= qualifyingScore {
				status.Completed = true
			}
		}
		out[i] = status
	}
	return out, nil
}

// ListAll includes inactive scenarios, for the admin catalog view.
func (s *ScenarioService) ListAll() ([]model.Scenario, error) {
	return s.ScenarioRepo.FindAll()
}

func (s *ScenarioService) GetByID(id uint) (*model.Scenario, error) {
	scenario, err := s.ScenarioRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrScenarioNotFound
	}
	return scenario, err
}

type ScenarioRequest struct {
	Title         string `json:"title" binding:"required"`
	ModuleCode    string `json:"moduleCode" binding:"required"`
	Description   string `json:"description"`
	TaskBrief     string `json:"taskBrief"`
	Difficulty    string `json:"difficulty"`
	SuggestedTime int    `json:"suggestedTime" binding:"min=0"`
	Criteria      string `json:"criteria"`
	IsCapstone    bool   `json:"isCapstone"`
}

func (s *ScenarioService) Create(req ScenarioRequest) (*model.Scenario, error) {
	scenario := &model.Scenario{
		Title:         req.Title,
		ModuleCode:    req.ModuleCode,
		Description:   req.Description,
		TaskBrief:     req.TaskBrief,
		Difficulty:    req.Difficulty,
		SuggestedTime: req.SuggestedTime,
		Criteria:      req.Criteria,
		IsCapstone:    req.IsCapstone,
		Active:        true,
	}
	if scenario.Difficulty == "" {
		scenario.Difficulty = "beginner"
	}
	if err := s.ScenarioRepo.Create(scenario); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *ScenarioService) Update(id uint, req ScenarioRequest) (*model.Scenario, error) {
	scenario, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	scenario.Title = req.Title
	scenario.ModuleCode = req.ModuleCode
	scenario.Description = req.Description
	scenario.TaskBrief = req.TaskBrief
	scenario.SuggestedTime = req.SuggestedTime
	scenario.IsCapstone = req.IsCapstone
	if req.Difficulty != "" {
		scenario.Difficulty = req.Difficulty
	}
	if req.Criteria != "" {
		scenario.Criteria = req.Criteria
	}

	if err := s.ScenarioRepo.Update(scenario); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *ScenarioService) SetActive(id uint, active bool) error {
	scenario, err := s.GetByID(id)
	if err != nil {
		return err
	}
	scenario.Active = active
	return s.ScenarioRepo.Update(scenario)
}
