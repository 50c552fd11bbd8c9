package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/shanykim9/BoilerInspector/models"
)

// JSON payload for POST /api/inspectors.
type InspectorJSON struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func (a *API) HandleListInspectors(c *fiber.Ctx) error {
	list, err := a.Store.ListInspectors(c.Context())
	if err != nil {
		return serverErr(c, err)
	}
	out := make([]models.InspectorItem, 0, len(list))
	for _, ins := range list {
		out = append(out, models.InspectorItem{
			ID:    ins.ID,
			Name:  ins.Name,
			Phone: ins.Phone,
			Email: ins.Email,
		})
	}
	return c.JSON(out)
}

func (a *API) HandleCreateInspector(c *fiber.Ctx) error {
	if emptyBody(c.Body()) {
		return badReq(c, "no data provided")
	}
	var p InspectorJSON
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "no data provided")
	}
	if strings.TrimSpace(p.Name) == "" {
		return badReq(c, "missing name")
	}
	ins, err := a.Store.CreateInspector(c.Context(), models.Inspector{
		Name:  strings.TrimSpace(p.Name),
		Phone: p.Phone,
		Email: p.Email,
	})
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.CreateInspectorResp{ID: ins.ID, Name: ins.Name})
}
