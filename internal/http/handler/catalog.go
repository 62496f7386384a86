package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sitecms/internal/service"
)

// ListServices godoc
// @Summary List offered services
// @Tags services
// @Produce json
// @Param active query bool false "only active services"
// @Success 200 {array} model.Service
// @Router /services [get]
func ListServices(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activeOnly := c.QueryBool("active", true)
		return c.JSON(svc.Services(c.UserContext(), activeOnly))
	}
}

// GetService godoc
// @Summary Get a service by id
// @Tags services
// @Produce json
// @Param id path string true "service id"
// @Success 200 {object} model.Service
// @Router /services/{id} [get]
func GetService(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := svc.Service(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "service not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(item)
	}
}

// CreateService godoc
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Success 201 {object} service.WriteResult
// @Router /services [post]
func CreateService(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := parseBody(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.CreateService(c.UserContext(), fields)
		return c.Status(writeStatus(res, fiber.StatusCreated)).JSON(res)
	}
}

// UpdateService godoc
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "service id"
// @Success 200 {object} service.WriteResult
// @Router /services/{id} [put]
func UpdateService(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := parseBody(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.UpdateService(c.UserContext(), c.Params("id"), fields)
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// DeleteService godoc
// @Summary Delete a service
// @Tags services
// @Produce json
// @Param id path string true "service id"
// @Success 200 {object} service.WriteResult
// @Router /services/{id} [delete]
func DeleteService(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := svc.DeleteService(c.UserContext(), c.Params("id"))
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// ListStats godoc
// @Summary List company stats
// @Tags stats
// @Produce json
// @Param active query bool false "only active stats"
// @Success 200 {array} model.CompanyStat
// @Router /stats [get]
func ListStats(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activeOnly := c.QueryBool("active", true)
		return c.JSON(svc.Stats(c.UserContext(), activeOnly))
	}
}

// GetStat godoc
// @Summary Get a company stat by id
// @Tags stats
// @Produce json
// @Param id path string true "stat id"
// @Success 200 {object} model.CompanyStat
// @Router /stats/{id} [get]
func GetStat(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stat, err := svc.Stat(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "stat not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(stat)
	}
}

// CreateStat godoc
// @Summary Create a company stat
// @Tags stats
// @Accept json
// @Produce json
// @Success 201 {object} service.WriteResult
// @Router /stats [post]
func CreateStat(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := parseBody(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.CreateStat(c.UserContext(), fields)
		return c.Status(writeStatus(res, fiber.StatusCreated)).JSON(res)
	}
}

// UpdateStat godoc
// @Summary Update a company stat
// @Tags stats
// @Accept json
// @Produce json
// @Param id path string true "stat id"
// @Success 200 {object} service.WriteResult
// @Router /stats/{id} [put]
func UpdateStat(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := parseBody(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.UpdateStat(c.UserContext(), c.Params("id"), fields)
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// DeleteStat godoc
// @Summary Delete a company stat
// @Tags stats
// @Produce json
// @Param id path string true "stat id"
// @Success 200 {object} service.WriteResult
// @Router /stats/{id} [delete]
func DeleteStat(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := svc.DeleteStat(c.UserContext(), c.Params("id"))
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}
