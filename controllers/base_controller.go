package controllers

import (
	apimodels "talentflow-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is not specified")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps the error taxonomy onto HTTP statuses; only genuine
// server faults are logged as errors.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	switch apimodels.KindOf(err) {
	case apimodels.ErrKindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewErrorResponse(err.Error()))
	case apimodels.ErrKindValidation:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorResponse(err.Error()))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorResponse(hMsg))
}
