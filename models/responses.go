package models

// InspectorItem is one row of GET /api/inspectors.
type InspectorItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// SiteItem is one row of GET /api/sites.
type SiteItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
	ContactPhone  *string `json:"contactPhone"`
}

type CreateInspectorResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateSiteResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateInspectionResp struct {
	ID string `json:"id"`
}

type UpdateInspectionResp struct {
	Success bool `json:"success"`
}

type PhotoUploadResp struct {
	PhotoURL string `json:"photoUrl"`
}
