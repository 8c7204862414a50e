package apiv1

import (
	"talentflow-backend/controllers"
	"talentflow-backend/lib/candidate"
	xlsexport "talentflow-backend/lib/export/xls"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

// defaultActorID stands in for the authenticated user; the service
// runs without authentication.
const defaultActorID = "1"

type candidateAPIController struct {
	controllers.BaseAPIController
	handler candidate.Provider
	export  xlsexport.Provider
}

func InitCandidateAPIRouters(app fiber.Router, handler candidate.Provider, export xlsexport.Provider) {
	controller := candidateAPIController{handler: handler, export: export}
	app.Route("candidates", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("export", controller.exportList)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("history", controller.history)
			idRoute.Patch("stage", controller.changeStage)
			idRoute.Get("notes", controller.notes)
			idRoute.Post("notes", controller.addNote)
		})
	})
}

func actorID(ctx *fiber.Ctx) string {
	if id := ctx.Get("X-User-Id"); id != "" {
		return id
	}
	return defaultActorID
}

// @Summary Candidates list
// @Tags Candidates
// @Param page query int false "page (1,2,3..)"
// @Param limit query int false "records per page, default 50"
// @Param search query string false "name or email substring"
// @Param stage query string false "pipeline stage"
// @Param jobId query string false "job filter"
// @Success 200 {object} apimodels.ListResponse{data=[]dbmodels.Candidate}
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/candidates [get]
func (c *candidateAPIController) list(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := ctx.QueryParser(&pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse("failed to read query parameters"))
	}
	filter := dbmodels.CandidateFilter{
		Search: ctx.Query("search"),
		Stage:  models.Stage(ctx.Query("stage")),
		JobID:  ctx.Query("jobId"),
	}
	resp, err := c.handler.List(filter, pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Create candidate
// @Tags Candidates
// @Description Creates the candidate together with the genesis stage history event.
// @Param body body candidateapimodels.CandidateData true "request body"
// @Success 201 {object} dbmodels.Candidate
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/candidates [post]
func (c *candidateAPIController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.Create(payload, actorID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create candidate")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}

// @Summary Candidate by id
// @Tags Candidates
// @Param id path string true "rec ID"
// @Success 200 {object} dbmodels.Candidate
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/candidates/{id} [get]
func (c *candidateAPIController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Stage history
// @Tags Candidates
// @Description Full stage log for the candidate, oldest first.
// @Param id path string true "rec ID"
// @Success 200 {array} dbmodels.StageHistoryEvent
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/candidates/{id}/history [get]
func (c *candidateAPIController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	list, err := c.handler.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get stage history")
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Change stage
// @Tags Candidates
// @Description Appends a history event and moves the candidate, atomically.
// @Param id path string true "rec ID"
// @Param body body candidateapimodels.StageUpdate true "request body"
// @Success 200 {object} dbmodels.Candidate
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/candidates/{id}/stage [patch]
func (c *candidateAPIController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	var payload candidateapimodels.StageUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.Transition(id, payload.Stage, actorID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change candidate stage")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Candidate notes
// @Tags Candidates
// @Param id path string true "rec ID"
// @Success 200 {array} dbmodels.CandidateNote
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/candidates/{id}/notes [get]
func (c *candidateAPIController) notes(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	list, err := c.handler.Notes(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get notes")
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Add note
// @Tags Candidates
// @Param id path string true "rec ID"
// @Param body body candidateapimodels.NoteData true "request body"
// @Success 201 {object} dbmodels.CandidateNote
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/candidates/{id}/notes [post]
func (c *candidateAPIController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	var payload candidateapimodels.NoteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	rec, err := c.handler.AddNote(id, actorID(ctx), payload.Text)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to add note")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}

// @Summary Export candidates
// @Tags Candidates
// @Description Pipeline export as an xlsx attachment.
// @Param stage query string false "pipeline stage"
// @Param jobId query string false "job filter"
// @Success 200
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/candidates/export [get]
func (c *candidateAPIController) exportList(ctx *fiber.Ctx) error {
	filter := dbmodels.CandidateFilter{
		Search: ctx.Query("search"),
		Stage:  models.Stage(ctx.Query("stage")),
		JobID:  ctx.Query("jobId"),
	}
	buf, err := c.export.ExportCandidateList(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export candidates")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
