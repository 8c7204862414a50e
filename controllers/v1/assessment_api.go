package apiv1

import (
	"talentflow-backend/controllers"
	"talentflow-backend/lib/assessment"
	apimodels "talentflow-backend/models/api"
	assessmentapimodels "talentflow-backend/models/api/assessment"

	"github.com/gofiber/fiber/v2"
)

type assessmentAPIController struct {
	controllers.BaseAPIController
	handler assessment.Provider
}

func InitAssessmentAPIRouters(app fiber.Router, handler assessment.Provider) {
	controller := assessmentAPIController{handler: handler}
	app.Route("assessments", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Get("preview", controller.preview)
			idRoute.Post("responses", controller.submitResponse)
		})
	})
}

// @Summary Assessments list
// @Tags Assessments
// @Param jobId query string false "job filter"
// @Success 200 {array} dbmodels.Assessment
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/assessments [get]
func (c *assessmentAPIController) list(ctx *fiber.Ctx) error {
	list, err := c.handler.List(ctx.Query("jobId"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list assessments")
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Create assessment
// @Tags Assessments
// @Param body body assessmentapimodels.AssessmentData true "request body"
// @Success 201 {object} dbmodels.Assessment
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/assessments [post]
func (c *assessmentAPIController) create(ctx *fiber.Ctx) error {
	var payload assessmentapimodels.AssessmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create assessment")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}

// @Summary Assessment by id
// @Tags Assessments
// @Param id path string true "rec ID"
// @Success 200 {object} dbmodels.Assessment
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/assessments/{id} [get]
func (c *assessmentAPIController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get assessment")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Update assessment
// @Tags Assessments
// @Description Saves the document; a present sections field replaces the whole tree.
// @Param id path string true "rec ID"
// @Param body body assessmentapimodels.AssessmentUpdate true "request body"
// @Success 200 {object} dbmodels.Assessment
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/assessments/{id} [patch]
func (c *assessmentAPIController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	var payload assessmentapimodels.AssessmentUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update assessment")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Assessment preview
// @Tags Assessments
// @Description Read-only projection of the document into the respondent form.
// @Param id path string true "rec ID"
// @Success 200 {object} assessmentapimodels.PreviewForm
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/assessments/{id}/preview [get]
func (c *assessmentAPIController) preview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	form, err := c.handler.Preview(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build preview")
	}
	return ctx.Status(fiber.StatusOK).JSON(form)
}

// @Summary Submit response
// @Tags Assessments
// @Param id path string true "rec ID"
// @Param body body assessmentapimodels.ResponseData true "request body"
// @Success 201 {object} dbmodels.AssessmentResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/assessments/{id}/responses [post]
func (c *assessmentAPIController) submitResponse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	var payload assessmentapimodels.ResponseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.SubmitResponse(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit response")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}
