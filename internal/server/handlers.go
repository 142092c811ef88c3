package server

import (
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms-lite/internal/services/employees"
	"github.com/gofiber/fiber/v2"
)

type employeeHandler struct {
	log       *slog.Logger
	directory Directory
}

func (h *employeeHandler) list(c *fiber.Ctx) error {
	list, err := h.directory.List(c.UserContext())
	if err != nil {
		h.log.ErrorContext(c.UserContext(), "failed to list employees", sl.Err(err))
		return failure(c, fiber.StatusInternalServerError, "Failed to load employees")
	}

	return success(c, "Employees retrieved", list)
}

func (h *employeeHandler) detail(c *fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	employee, err := h.directory.Get(c.UserContext(), employeeID)
	if err != nil {
		return h.lookupFailure(c, employeeID, err)
	}

	return success(c, "Employee retrieved", employee)
}

func (h *employeeHandler) attendance(c *fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	records, err := h.directory.Attendance(c.UserContext(), employeeID)
	if err != nil {
		return h.lookupFailure(c, employeeID, err)
	}

	return success(c, "Attendance retrieved", records)
}

func (h *employeeHandler) lookupFailure(c *fiber.Ctx, employeeID string, err error) error {
	if errors.Is(err, employees.ErrNotFound) {
		return failure(c, fiber.StatusNotFound, "Employee not found")
	}

	h.log.ErrorContext(c.UserContext(), "employee lookup failed", "employee_id", employeeID, sl.Err(err))
	return failure(c, fiber.StatusInternalServerError, "Failed to load employee")
}
