package controller

import (
	"promptmaster_backend/internal/service"
	"promptmaster_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetProfile godoc
// @Summary Get current user profile
// @Tags user
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetUserByID(claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, user)
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Tags user
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ProfileUpdate true "Fields to update"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// Checkin godoc
// @Summary Record today's check-in
// @Description Extends the daily streak. Checking in twice the same day is a no-op.
// @Tags streak
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "Current streak"
// @Router /api/streak/checkin [post]
func (c *UserController) Checkin(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	streak, err := c.UserService.CheckinToday(claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"currentStreak": streak})
}

// GetStreak godoc
// @Summary Get current streak
// @Tags streak
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "Current streak"
// @Router /api/streak [get]
func (c *UserController) GetStreak(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	streak, err := c.UserService.CurrentStreak(claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"currentStreak": streak})
}
