package controller

import (
	"errors"
	"net/http"
	"promptmaster_backend/internal/service"
	"promptmaster_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type ScenarioController struct {
	ScenarioService   *service.ScenarioService
	EvaluationService *service.EvaluationService
}

func NewScenarioController(scenarioService *service.ScenarioService, evaluationService *service.EvaluationService) *ScenarioController {
	return &ScenarioController{
		ScenarioService:   scenarioService,
		EvaluationService: evaluationService,
	}
}

// List godoc
// @Summary List active scenarios
// @Description Returns all active scenarios annotated with the caller's attempt status
// @Tags scenarios
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ScenarioStatus}
// @Router /api/scenarios [get]
func (c *ScenarioController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	scenarios, err := c.ScenarioService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, scenarios)
}

// Get godoc
// @Summary Get one scenario
// @Tags scenarios
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Scenario ID"
// @Success 200 {object} util.Response{data=model.Scenario}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/scenarios/{id} [get]
func (c *ScenarioController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	scenario, err := c.ScenarioService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrScenarioNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, scenario)
}

// SubmitAttempt godoc
// @Summary Submit a prompt for grading
// @Description Grades the prompt, records the attempt and, on a qualifying first completion, awards points, levels, badges and certificates
// @Tags scenarios
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Scenario ID"
// @Param   body body service.SubmissionRequest true "Submission payload"
// @Success 201 {object} util.Response{data=service.SubmissionResult}
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 404 {object} util.Response "Scenario not found"
// @Failure 422 {object} util.Response "Scenario inactive"
// @Router /api/scenarios/{id}/attempts [post]
func (c *ScenarioController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	scenarioID := util.MustParseUint(ctx.Param("id"))

	result, err := c.EvaluationService.SubmitAttempt(claims.UserID, scenarioID, req, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, util.ErrScenarioNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrScenarioInactive):
			util.Error(ctx, http.StatusUnprocessableEntity, "Scenario is not active")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// ListAll godoc
// @Summary List all scenarios including inactive
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Scenario}
// @Router /api/admin/scenarios [get]
func (c *ScenarioController) ListAll(ctx *gin.Context) {
	scenarios, err := c.ScenarioService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, scenarios)
}

// Create godoc
// @Summary Create a scenario
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ScenarioRequest true "Scenario payload"
// @Success 201 {object} util.Response{data=model.Scenario}
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/admin/scenarios [post]
func (c *ScenarioController) Create(ctx *gin.Context) {
	var req service.ScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	scenario, err := c.ScenarioService.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, scenario)
}

// Update godoc
// @Summary Update a scenario
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Scenario ID"
// @Param   body body service.ScenarioRequest true "Scenario payload"
// @Success 200 {object} util.Response{data=model.Scenario}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/scenarios/{id} [put]
func (c *ScenarioController) Update(ctx *gin.Context) {
	var req service.ScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))

	scenario, err := c.ScenarioService.Update(id, req)
	if err != nil {
		if errors.Is(err, util.ErrScenarioNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, scenario)
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive godoc
// @Summary Activate or deactivate a scenario
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Scenario ID"
// @Param   body body SetActiveRequest true "Active flag"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/scenarios/{id}/active [patch]
func (c *ScenarioController) SetActive(ctx *gin.Context) {
	var req SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))

	if err := c.ScenarioService.SetActive(id, *req.Active); err != nil {
		if errors.Is(err, util.ErrScenarioNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
