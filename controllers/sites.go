package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/shanykim9/BoilerInspector/models"
)

// JSON payload for POST /api/sites.
type SiteJSON struct {
	Name          string  `json:"name"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
	ContactPhone  *string `json:"contactPhone"`
}

func (a *API) HandleListSites(c *fiber.Ctx) error {
	list, err := a.Store.ListSites(c.Context(), c.Query("search"))
	if err != nil {
		return serverErr(c, err)
	}
	out := make([]models.SiteItem, 0, len(list))
	for _, site := range list {
		out = append(out, models.SiteItem{
			ID:            site.ID,
			Name:          site.Name,
			Address:       site.Address,
			ContactPerson: site.ContactPerson,
			ContactPhone:  site.ContactPhone,
		})
	}
	return c.JSON(out)
}

func (a *API) HandleCreateSite(c *fiber.Ctx) error {
	if emptyBody(c.Body()) {
		return badReq(c, "no data provided")
	}
	var p SiteJSON
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "no data provided")
	}
	if strings.TrimSpace(p.Name) == "" {
		return badReq(c, "missing name")
	}
	site, err := a.Store.CreateSite(c.Context(), models.Site{
		Name:          strings.TrimSpace(p.Name),
		Address:       p.Address,
		ContactPerson: p.ContactPerson,
		ContactPhone:  p.ContactPhone,
	})
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.CreateSiteResp{ID: site.ID, Name: site.Name})
}
