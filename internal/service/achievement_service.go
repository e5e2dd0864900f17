package service

import (
	"context"
	"encoding/json"
	"fmt"
	"promptmaster_backend/internal/model"
	"promptmaster_backend/internal/repository"
	"promptmaster_backend/internal/scoring"
	"promptmaster_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardCacheTTL = 60 * time.Second

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
	AttemptRepo     *repository.AttemptRepository
	Redis           *redis.Client
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	userRepo *repository.UserRepository,
	attemptRepo *repository.AttemptRepository,
	rdb *redis.Client,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
		AttemptRepo:     attemptRepo,
		Redis:           rdb,
	}
}

type UserAchievements struct {
	TotalPoints   int                   `json:"totalPoints"`
	LevelProgress scoring.LevelProgress `json:"levelProgress"`
	SkillScores   scoring.SkillScores   `json:"skillScores"`
	CurrentStreak int                   `json:"currentStreak"`
	Badges        []model.Achievement   `json:"badges"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	User   string `json:"user"`
	Points int    `json:"points"`
	Level  int    `json:"level"`
	Avatar string `json:"avatar,omitempty"`
}

func (s *AchievementService) GetUserAchievements(userID uint) (*UserAchievements, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	badges, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.AttemptRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	return &UserAchievements{
		TotalPoints:   user.TotalPoints,
		LevelProgress: scoring.CalculateLevelProgress(user.TotalPoints),
		SkillScores:   scoring.CalculateSkillScores(toScoringAttempts(attempts)),
		CurrentStreak: user.CurrentStreak,
		Badges:        badges,
	}, nil
}

// GetLeaderboard serves from Redis when fresh, falling back to the
// database and repopulating the cache.
func (s *AchievementService) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("leaderboard:top:%d", limit)

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.FindTopByPoints(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		entries[i] = LeaderboardEntry{
			Rank:   i + 1,
			User:   user.Name,
			Points: user.TotalPoints,
			Level:  user.CurrentLevel,
			Avatar: user.Avatar,
		}
	}

	if s.Redis != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache leaderboard", zap.Error(err))
			}
		}
	}

	return entries, nil
}
