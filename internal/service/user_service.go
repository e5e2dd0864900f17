package service

import (
	"errors"
	"promptmaster_backend/internal/model"
	"promptmaster_backend/internal/repository"
	"promptmaster_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo    *repository.UserRepository
	CheckinRepo *repository.CheckinRepository
}

func NewUserService(userRepo *repository.UserRepository, checkinRepo *repository.CheckinRepository) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		CheckinRepo: checkinRepo,
	}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

type ProfileUpdate struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// CheckinToday records one day of activity and returns the current
// streak. Calling again the same day is a no-op that returns the
// existing streak. Submitting an attempt performs an implicit check-in.
func (s *UserService) CheckinToday(userID uint, now time.Time) (int, error) {
	existing, err := s.CheckinRepo.FindByUserAndDate(userID, now)
	if err == nil {
		return existing.StreakDays, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	streak := 1
	latest, err := s.CheckinRepo.FindLatestByUser(userID)
	if err == nil {
		streak = continuedStreak(latest.CheckinAt, latest.StreakDays, now)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	checkin := &model.Checkin{
		UserID:     userID,
		CheckinAt:  now,
		StreakDays: streak,
	}
	if err := s.CheckinRepo.Create(checkin); err != nil {
		return 0, err
	}

	if err := s.UserRepo.UpdateStreak(userID, streak); err != nil {
		return 0, err
	}

	return streak, nil
}

// CurrentStreak reports the streak as of now: the last check-in's count
// when it was today or yesterday, otherwise 0 (the chain is broken).
func (s *UserService) CurrentStreak(userID uint, now time.Time) (int, error) {
	latest, err := s.CheckinRepo.FindLatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	days := calendarDaysBetween(latest.CheckinAt, now)
	if days > 1 {
		return 0, nil
	}
	return latest.StreakDays, nil
}

// continuedStreak computes the streak value for a new check-in given the
// previous one: consecutive calendar days extend the chain, a same-day
// duplicate keeps it, anything longer resets to 1.
func continuedStreak(lastCheckin time.Time, lastStreak int, now time.Time) int {
	switch calendarDaysBetween(lastCheckin, now) {
	case 0:
		return lastStreak
	case 1:
		return lastStreak + 1
	default:
		return 1
	}
}

func calendarDaysBetween(earlier, later time.Time) int {
	a := time.Date(earlier.Year(), earlier.Month(), earlier.Day(), 0, 0, 0, 0, earlier.Location())
	b := time.Date(later.Year(), later.Month(), later.Day(), 0, 0, 0, 0, later.Location())
	return int(b.Sub(a).Hours() / 24)
}
