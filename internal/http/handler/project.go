package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sitecms/internal/service"
)

// ListProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param active query bool false "only active projects"
// @Success 200 {array} model.Project
// @Router /projects [get]
func ListProjects(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activeOnly := c.QueryBool("active", true)
		return c.JSON(svc.List(c.UserContext(), activeOnly))
	}
}

// GetProject godoc
// @Summary Get a project by id
// @Tags projects
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} model.Project
// @Router /projects/{id} [get]
func GetProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "project not found")
			}
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Success 201 {object} service.WriteResult
// @Router /projects [post]
func CreateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := parseBody(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.Create(c.UserContext(), fields)
		return c.Status(writeStatus(res, fiber.StatusCreated)).JSON(res)
	}
}

// UpdateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} service.WriteResult
// @Router /projects/{id} [put]
func UpdateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := parseBody(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res := svc.Update(c.UserContext(), c.Params("id"), fields)
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} service.WriteResult
// @Router /projects/{id} [delete]
func DeleteProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := svc.Delete(c.UserContext(), c.Params("id"))
		return c.Status(writeStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// UploadProjectImage godoc
// @Summary Upload a project image
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "project id"
// @Param file formData file true "image file"
// @Success 200 {object} map[string]string
// @Router /projects/{id}/image [post]
func UploadProjectImage(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		url, err := svc.UploadImage(c.UserContext(), c.Params("id"), f, fh.Filename, ct, fh.Size)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "project not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"imageUrl": url})
	}
}
