package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shanykim9/BoilerInspector/controllers"
)

// Register attaches all API endpoints to the app.
func Register(app *fiber.App, api *controllers.API) {
	r := app.Group("/api")

	r.Get("/inspectors", api.HandleListInspectors)
	r.Post("/inspectors", api.HandleCreateInspector)

	r.Get("/sites", api.HandleListSites)
	r.Post("/sites", api.HandleCreateSite)

	r.Get("/inspections", api.HandleListInspections)
	r.Post("/inspections", api.HandleCreateInspection)
	r.Get("/inspections/:id", api.HandleGetInspection)
	r.Put("/inspections/:id", api.HandleUpdateInspection)
	r.Post("/inspections/:id/photos", api.HandleUploadPhoto)
}
