package service

import (
	"promptmaster_backend/internal/model"
	"promptmaster_backend/internal/repository"
	"promptmaster_backend/internal/scoring"
	"time"
)

type DashboardService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	AttemptRepo  *repository.AttemptRepository
	Users        *UserService
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	attemptRepo *repository.AttemptRepository,
	users *UserService,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		AttemptRepo:  attemptRepo,
		Users:        users,
	}
}

type Dashboard struct {
	Progress       *model.UserProgress   `json:"progress"`
	LevelProgress  scoring.LevelProgress `json:"levelProgress"`
	SkillScores    scoring.SkillScores   `json:"skillScores"`
	CurrentStreak  int                   `json:"currentStreak"`
	RecentAttempts []model.Attempt       `json:"recentAttempts"`
}

func (s *DashboardService) GetDashboard(userID uint, now time.Time) (*Dashboard, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.AttemptRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.AttemptRepo.FindRecentByUser(userID, 5)
	if err != nil {
		return nil, err
	}

	streak, err := s.Users.CurrentStreak(userID, now)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Progress:       progress,
		LevelProgress:  scoring.CalculateLevelProgress(user.TotalPoints),
		SkillScores:    scoring.CalculateSkillScores(toScoringAttempts(attempts)),
		CurrentStreak:  streak,
		RecentAttempts: recent,
	}, nil
}
