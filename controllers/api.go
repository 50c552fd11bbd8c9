package controllers

import (
	"github.com/shanykim9/BoilerInspector/database"
)

// API bundles the handlers' dependencies. Handlers hang off an explicit store
// handle instead of a package-level session.
type API struct {
	Store     *database.Store
	UploadDir string
}

// New builds the handler set around a store and an upload root.
func New(store *database.Store, uploadDir string) *API {
	return &API{Store: store, UploadDir: uploadDir}
}
