package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"sitecms/internal/model"
	"sitecms/internal/service"
)

// GetContactInfo godoc
// @Summary Get the active contact details
// @Tags contact
// @Produce json
// @Success 200 {object} model.ContactInfo
// @Router /contact [get]
func GetContactInfo(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info := svc.Info(c.UserContext())
		if info == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contact info not available")
		}
		return c.JSON(info)
	}
}

// SaveContactInfo godoc
// @Summary Create or update the contact details
// @Tags contact
// @Accept json
// @Produce json
// @Success 200 {object} service.WriteResult
// @Router /contact [put]
func SaveContactInfo(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := parseBody(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.SaveInfo(c.UserContext(), fields)
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// ListBusinessHours godoc
// @Summary List the weekly schedule
// @Tags hours
// @Produce json
// @Success 200 {array} model.BusinessHour
// @Router /hours [get]
func ListBusinessHours(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Hours(c.UserContext()))
	}
}

// SaveBusinessHours godoc
// @Summary Upsert one day of the schedule
// @Tags hours
// @Accept json
// @Produce json
// @Success 200 {object} service.WriteResult
// @Router /hours [post]
func SaveBusinessHours(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var hour model.BusinessHour
		if err := json.Unmarshal(c.Body(), &hour); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.SaveHours(c.UserContext(), hour)
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// SaveWeek godoc
// @Summary Upsert multiple days of the schedule
// @Tags hours
// @Accept json
// @Produce json
// @Success 200 {object} service.WriteResult
// @Router /hours/week [put]
func SaveWeek(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var hours []model.BusinessHour
		if err := json.Unmarshal(c.Body(), &hours); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.SaveWeek(c.UserContext(), hours)
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}
