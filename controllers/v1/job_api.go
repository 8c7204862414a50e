package apiv1

import (
	"strings"

	"talentflow-backend/controllers"
	"talentflow-backend/lib/job"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type jobAPIController struct {
	controllers.BaseAPIController
	handler job.Provider
}

func InitJobAPIRouters(app fiber.Router, handler job.Provider) {
	controller := jobAPIController{handler: handler}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Patch("reorder", controller.reorder)
		router.Get(":id", controller.get)
		router.Patch(":id", controller.update)
	})
}

// @Summary Jobs list
// @Tags Jobs
// @Param page query int false "page (1,2,3..)"
// @Param limit query int false "records per page"
// @Param status query string false "draft/active/archived"
// @Param search query string false "title substring"
// @Param tags query string false "comma-separated tags, any match"
// @Success 200 {object} apimodels.ListResponse{data=[]dbmodels.Job}
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs [get]
func (c *jobAPIController) list(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := ctx.QueryParser(&pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse("failed to read query parameters"))
	}
	filter := dbmodels.JobFilter{
		Status: models.JobStatus(ctx.Query("status")),
		Search: ctx.Query("search"),
	}
	if rawTags := ctx.Query("tags"); rawTags != "" {
		for _, tag := range strings.Split(rawTags, ",") {
			if tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}
	resp, err := c.handler.List(filter, pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Create job
// @Tags Jobs
// @Param body body jobapimodels.JobData true "request body"
// @Success 201 {object} dbmodels.Job
// @Failure 400 {object} apimodels.ErrorResponse "duplicate slug"
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs [post]
func (c *jobAPIController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create job")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}

// @Summary Job by id
// @Tags Jobs
// @Param id path string true "rec ID"
// @Success 200 {object} dbmodels.Job
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/jobs/{id} [get]
func (c *jobAPIController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get job")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Update job
// @Tags Jobs
// @Param id path string true "rec ID"
// @Param body body jobapimodels.JobUpdate true "request body"
// @Success 200 {object} dbmodels.Job
// @Failure 400 {object} apimodels.ErrorResponse "duplicate slug"
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{id} [patch]
func (c *jobAPIController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	var payload jobapimodels.JobUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Reorder jobs
// @Tags Jobs
// @Description Applies order = position for every id in the list, atomically.
// @Param body body jobapimodels.ReorderRequest true "request body"
// @Success 200 {object} jobapimodels.ReorderResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/reorder [patch]
func (c *jobAPIController) reorder(ctx *fiber.Ctx) error {
	var payload jobapimodels.ReorderRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err := c.handler.Reorder(payload.JobIDs); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reorder jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(jobapimodels.ReorderResponse{Success: true})
}
