package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shanykim9/BoilerInspector/models"
)

// JSON payload for POST /api/inspections. Everything beyond these fields is
// filled in later through partial updates.
type InspectionJSON struct {
	DocumentNumber *string `json:"documentNumber"`
	InspectionDate *string `json:"inspectionDate"`
	InspectorID    *int64  `json:"inspectorId"`
	SiteID         *int64  `json:"siteId"`
}

func (a *API) HandleListInspections(c *fiber.Ctx) error {
	list, err := a.Store.ListInspections(c.Context())
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(list)
}

func (a *API) HandleGetInspection(c *fiber.Ctx) error {
	ins, err := a.Store.GetInspection(c.Context(), c.Params("id"))
	if err != nil {
		return storeErr(c, err)
	}
	detail, err := ins.Detail()
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(detail)
}

func (a *API) HandleCreateInspection(c *fiber.Ctx) error {
	if emptyBody(c.Body()) {
		return badReq(c, "no data provided")
	}
	var p InspectionJSON
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	doc := "DOC-" + models.ShortID(id)
	if p.DocumentNumber != nil && *p.DocumentNumber != "" {
		doc = *p.DocumentNumber
	}
	date := now.Format(models.DateFormat)
	if p.InspectionDate != nil && *p.InspectionDate != "" {
		parsed, err := time.Parse(models.DateFormat, *p.InspectionDate)
		if err != nil {
			return badReq(c, "invalid inspectionDate")
		}
		date = parsed.Format(models.DateFormat)
	}

	ins := models.Inspection{
		ID:             id,
		DocumentNumber: &doc,
		InspectionDate: date,
		InspectorID:    p.InspectorID,
		SiteID:         p.SiteID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := a.Store.CreateInspection(c.Context(), ins); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.CreateInspectionResp{ID: id})
}

func (a *API) HandleUpdateInspection(c *fiber.Ctx) error {
	ins, err := a.Store.GetInspection(c.Context(), c.Params("id"))
	if err != nil {
		return storeErr(c, err)
	}

	body := c.Body()
	if emptyBody(body) {
		return badReq(c, "no data provided")
	}
	patch, err := models.ParsePatch(body)
	if err != nil {
		return badReq(c, "invalid JSON")
	}
	if err := patch.Apply(ins, time.Now()); err != nil {
		return badReq(c, err.Error())
	}

	if err := a.Store.UpdateInspection(c.Context(), ins); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(models.UpdateInspectionResp{Success: true})
}
