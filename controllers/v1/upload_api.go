package apiv1

import (
	"io"

	"talentflow-backend/controllers"
	filestorage "talentflow-backend/lib/file-storage"
	apimodels "talentflow-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type uploadAPIController struct {
	controllers.BaseAPIController
	handler filestorage.Provider
}

// InitUploadAPIRouters registers the upload surface; skipped entirely
// when object storage is not configured.
func InitUploadAPIRouters(app fiber.Router, handler filestorage.Provider) {
	controller := uploadAPIController{handler: handler}
	app.Post("uploads", controller.upload)
}

// @Summary Upload file
// @Tags Uploads
// @Description Stores a file-upload answer payload, returns the object key to put into answers.
// @Accept multipart/form-data
// @Param file formData file true "file"
// @Success 201 {object} dbmodels.FileRecord
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/uploads [post]
func (c *uploadAPIController) upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse("file is missing"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read uploaded file")
	}

	rec, err := c.handler.Upload(ctx.Context(), fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store uploaded file")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}
