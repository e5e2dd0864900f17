package service

import (
	"encoding/json"
	"errors"
	"promptmaster_backend/internal/model"
	"promptmaster_backend/internal/repository"
	"promptmaster_backend/internal/scoring"
	"promptmaster_backend/internal/util"
	"promptmaster_backend/pkg/logger"
	"promptmaster_backend/pkg/monitoring"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EvaluationService runs the submission pipeline: grade the prompt,
// persist the attempt, and - on a first-attempt success - award points,
// level, badges and certificates in one transaction.
type EvaluationService struct {
	ScenarioRepo *repository.ScenarioRepository
	AttemptRepo  *repository.AttemptRepository
	Users        *UserService
	AI           *AIService
	DB           *gorm.DB
}

func NewEvaluationService(
	scenarioRepo *repository.ScenarioRepository,
	attemptRepo *repository.AttemptRepository,
	users *UserService,
	ai *AIService,
	db *gorm.DB,
) *EvaluationService {
	return &EvaluationService{
		ScenarioRepo: scenarioRepo,
		AttemptRepo:  attemptRepo,
		Users:        users,
		AI:           ai,
		DB:           db,
	}
}

type SubmissionRequest struct {
	PromptText string `json:"promptText" binding:"required"`
	TimeSpent  int    `json:"timeSpent" binding:"min=0"` // seconds
}

// SubmissionResult is the payload returned to the client. Points and
// NewLevel stay nil unless this was a qualifying first completion.
type SubmissionResult struct {
	Attempt         *model.Attempt      `json:"attempt"`
	Evaluation      *Evaluation         `json:"evaluation"`
	Points          *scoring.Points     `json:"points"`
	NewLevel        *int                `json:"newLevel"`
	NewAchievements []model.Achievement `json:"newAchievements"`
}

// A completion qualifies for points and badges only when it is the
// user's first attempt at the scenario and scores at least 70.
const qualifyingScore = 70

func (s *EvaluationService) SubmitAttempt(userID, scenarioID uint, req SubmissionRequest, now time.Time) (*SubmissionResult, error) {
	scenario, err := s.ScenarioRepo.FindByID(scenarioID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrScenarioNotFound
	}
	if err != nil {
		return nil, err
	}
	if !scenario.Active {
		return nil, util.ErrScenarioInactive
	}

	prior, err := s.AttemptRepo.CountByUserAndScenario(userID, scenarioID)
	if err != nil {
		return nil, err
	}
	attemptNumber := int(prior) + 1

	eval, graded := s.AI.EvaluatePrompt(scenario, req.PromptText)
	if graded {
		monitoring.EvaluationCounter.WithLabelValues("graded").Inc()
	} else {
		monitoring.EvaluationCounter.WithLabelValues("fallback").Inc()
		logger.Log.Warn("AI grading unavailable, default evaluation assigned",
			zap.Uint("userId", userID),
			zap.Uint("scenarioId", scenarioID),
		)
	}

	score := util.ClampScore(eval.Score)
	criteriaJSON, err := json.Marshal(eval.CriteriaScores)
	if err != nil {
		return nil, err
	}

	attempt := &model.Attempt{
		UserID:         userID,
		ScenarioID:     scenarioID,
		AttemptNumber:  attemptNumber,
		PromptText:     req.PromptText,
		Score:          score,
		CriteriaScores: string(criteriaJSON),
		Strengths:      strings.Join(eval.Strengths, "\n"),
		Improvements:   strings.Join(eval.Improvements, "\n"),
		RewriteExample: eval.RewriteExample,
		KeyTakeaway:    eval.KeyTakeaway,
		TimeSpent:      req.TimeSpent,
	}

	// Submitting counts as a day of activity; the streak feeds the
	// points bonus below.
	streak, err := s.Users.CheckinToday(userID, now)
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{Evaluation: eval, NewAchievements: []model.Achievement{}}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		result.Attempt = attempt

		if attemptNumber != 1 || score < qualifyingScore {
			return nil
		}

		return s.awardCompletion(tx, scenario, attempt, streak, now, result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// awardCompletion applies the first-success rewards. The user row is
// locked for the duration so concurrent submissions for the same user
// serialize their read-modify-write, which the scoring engine assumes.
func (s *EvaluationService) awardCompletion(tx *gorm.DB, scenario *model.Scenario, attempt *model.Attempt, streak int, now time.Time, result *SubmissionResult) error {
	var user model.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, attempt.UserID).Error; err != nil {
		return err
	}

	progress, err := s.updateProgress(tx, scenario, attempt)
	if err != nil {
		return err
	}

	points := scoring.CalculatePoints(attempt.Score, attempt.TimeSpent, scenario.SuggestedTime, streak)
	user.TotalPoints += points.Total
	newLevel := scoring.CalculateLevel(user.TotalPoints)
	user.CurrentLevel = newLevel
	user.CurrentStreak = streak
	if err := tx.Save(&user).Error; err != nil {
		return err
	}

	newBadges, err := s.unlockAchievements(tx, &user, progress, now)
	if err != nil {
		return err
	}

	if err := s.issueCertificates(tx, &user, scenario, newBadges, now); err != nil {
		return err
	}

	result.Points = &points
	result.NewLevel = &newLevel
	result.NewAchievements = newBadges
	return nil
}

func (s *EvaluationService) updateProgress(tx *gorm.DB, scenario *model.Scenario, attempt *model.Attempt) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := tx.Where("user_id = ?", attempt.UserID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.UserProgress{UserID: attempt.UserID, ModuleProgress: "{}"}
	} else if err != nil {
		return nil, err
	}

	completed := progress.ScenariosCompleted
	progress.AverageScore = (progress.AverageScore*float64(completed) + float64(attempt.Score)) / float64(completed+1)
	progress.ScenariosCompleted = completed + 1
	progress.TotalTimeSpent += attempt.TimeSpent
	if scenario.IsCapstone {
		progress.CapstoneCompleted = true
	}

	if err := s.refreshModuleProgress(tx, &progress); err != nil {
		return nil, err
	}

	if err := tx.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// refreshModuleProgress recomputes the per-module completed/total pairs
// from the attempt history, including the attempt inserted in this
// transaction.
func (s *EvaluationService) refreshModuleProgress(tx *gorm.DB, progress *model.UserProgress) error {
	totals, err := s.ScenarioRepo.CountActiveByModule()
	if err != nil {
		return err
	}

	type row struct {
		ModuleCode string
		Count      int
	}
	var rows []row
	err = tx.Model(&model.Attempt{}).
		Select("scenarios.module_code as module_code, count(distinct attempts.scenario_id) as count").
		Joins("JOIN scenarios ON scenarios.id = attempts.scenario_id").
		Where("attempts.user_id = ? AND attempts.attempt_number = 1 AND attempts.score >= ?", progress.UserID, qualifyingScore).
		Group("scenarios.module_code").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	modules := make(map[string]model.ModuleCompletion, len(totals))
	for code, total := range totals {
		modules[code] = model.ModuleCompletion{Total: total}
	}
	for _, rw := range rows {
		mc := modules[rw.ModuleCode]
		mc.Completed = rw.Count
		modules[rw.ModuleCode] = mc
	}

	return progress.SetModuleProgress(modules)
}

func (s *EvaluationService) unlockAchievements(tx *gorm.DB, user *model.User, progress *model.UserProgress, now time.Time) ([]model.Achievement, error) {
	var attempts []model.Attempt
	if err := tx.Where("user_id = ?", user.ID).Order("created_at").Find(&attempts).Error; err != nil {
		return nil, err
	}

	var existing []model.Achievement
	if err := tx.Where("user_id = ?", user.ID).Find(&existing).Error; err != nil {
		return nil, err
	}

	stats := scoring.UserStats{
		TotalPoints:   user.TotalPoints,
		CurrentLevel:  user.CurrentLevel,
		CurrentStreak: user.CurrentStreak,
	}

	unlocked := scoring.CheckAchievements(stats, toScoringProgress(progress), toScoringAttempts(attempts), toScoringAchievements(existing), now)

	records := make([]model.Achievement, 0, len(unlocked))
	for _, badge := range unlocked {
		record := model.Achievement{
			UserID:           user.ID,
			BadgeType:        badge.BadgeType,
			BadgeName:        badge.BadgeName,
			BadgeDescription: badge.BadgeDescription,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *EvaluationService) issueCertificates(tx *gorm.DB, user *model.User, scenario *model.Scenario, newBadges []model.Achievement, now time.Time) error {
	issue := func(certType string) error {
		cert := model.Certificate{
			UserID:   user.ID,
			CertType: certType,
			SerialNo: model.GenerateUUID(),
			IssuedAt: now,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&cert).Error
	}

	if scenario.IsCapstone {
		if err := issue(model.CertCapstone); err != nil {
			return err
		}
	}
	for _, badge := range newBadges {
		if badge.BadgeType == scoring.BadgeGraduate {
			if err := issue(model.CertGraduate); err != nil {
				return err
			}
		}
	}
	return nil
}

// Conversions from persisted records to the scoring engine's snapshot
// types. Construction is validated here, at the persistence boundary,
// so the engine itself stays free of decoding concerns.

func toScoringAttempts(attempts []model.Attempt) []scoring.Attempt {
	out := make([]scoring.Attempt, len(attempts))
	for i, a := range attempts {
		out[i] = scoring.Attempt{
			Score:          a.Score,
			CriteriaScores: a.CriteriaScoreMap(),
			TimeSpent:      a.TimeSpent,
			CreatedAt:      a.CreatedAt,
			AttemptNumber:  a.AttemptNumber,
		}
	}
	return out
}

func toScoringProgress(progress *model.UserProgress) scoring.Progress {
	modules := progress.ModuleProgressMap()
	converted := make(map[string]scoring.ModuleCompletion, len(modules))
	for code, mc := range modules {
		converted[code] = scoring.ModuleCompletion{Completed: mc.Completed, Total: mc.Total}
	}
	return scoring.Progress{
		ScenariosCompleted: progress.ScenariosCompleted,
		AverageScore:       progress.AverageScore,
		TotalTimeSpent:     progress.TotalTimeSpent,
		CapstoneCompleted:  progress.CapstoneCompleted,
		ModuleProgress:     converted,
	}
}

func toScoringAchievements(achievements []model.Achievement) []scoring.Achievement {
	out := make([]scoring.Achievement, len(achievements))
	for i, a := range achievements {
		out[i] = scoring.Achievement{
			BadgeType:        a.BadgeType,
			BadgeName:        a.BadgeName,
			BadgeDescription: a.BadgeDescription,
		}
	}
	return out
}
