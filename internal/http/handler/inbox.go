package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sitecms/internal/service"
)

// SubmitContactForm godoc
// @Summary Record a contact form submission
// @Tags submissions
// @Accept json
// @Produce json
// @Success 201 {object} service.WriteResult
// @Router /submissions [post]
func SubmitContactForm(svc service.InboxService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := parseBody(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.Submit(c.UserContext(), fields)
		return c.Status(writeStatus(res, fiber.StatusCreated)).JSON(res)
	}
}

// ListSubmissions godoc
// @Summary List contact form submissions, newest first
// @Tags submissions
// @Produce json
// @Success 200 {array} model.ContactSubmission
// @Router /submissions [get]
func ListSubmissions(svc service.InboxService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.UserContext()))
	}
}

// GetSubmission godoc
// @Summary Get a submission by id
// @Tags submissions
// @Produce json
// @Param id path string true "submission id"
// @Success 200 {object} model.ContactSubmission
// @Router /submissions/{id} [get]
func GetSubmission(svc service.InboxService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "submission not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(sub)
	}
}

// MarkSubmissionRead godoc
// @Summary Mark a submission as read
// @Tags submissions
// @Produce json
// @Param id path string true "submission id"
// @Success 200 {object} service.WriteResult
// @Router /submissions/{id}/read [post]
func MarkSubmissionRead(svc service.InboxService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := svc.MarkRead(c.UserContext(), c.Params("id"))
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// DeleteSubmission godoc
// @Summary Delete a submission
// @Tags submissions
// @Produce json
// @Param id path string true "submission id"
// @Success 200 {object} service.WriteResult
// @Router /submissions/{id} [delete]
func DeleteSubmission(svc service.InboxService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := svc.Delete(c.UserContext(), c.Params("id"))
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}
