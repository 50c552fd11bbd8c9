package controllers

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/shanykim9/BoilerInspector/database"
	"github.com/shanykim9/BoilerInspector/models"
)

type ErrorResp struct {
	Error string `json:"error"`
}

// emptyBody reports whether the request carries no usable JSON payload. A
// bare null decodes into a zero struct, so it counts as empty too.
func emptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func badReq(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResp{Error: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResp{Error: msg})
}

func serverErr(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResp{Error: err.Error()})
}

// storeErr maps storage errors onto HTTP statuses. Corrupt stored
// sub-documents surface as 500, never as partial data.
func storeErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return notFound(c, "inspection not found")
	}
	var malformed *models.MalformedRecordError
	if errors.As(err, &malformed) {
		return serverErr(c, malformed)
	}
	return serverErr(c, err)
}
