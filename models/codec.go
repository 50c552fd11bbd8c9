package models

import (
	"encoding/json"
	"fmt"
)

// MalformedRecordError reports a stored sub-document that is not valid JSON.
// Reads fail loudly instead of returning partial data.
type MalformedRecordError struct {
	ID    string
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("inspection %s: stored %s is not valid JSON", e.ID, e.Field)
}

var (
	emptyArray  = json.RawMessage("[]")
	emptyObject = json.RawMessage("{}")
)

// InspectionDetail is the wire shape of a full inspection read.
type InspectionDetail struct {
	ID                   string          `json:"id"`
	DocumentNumber       *string         `json:"documentNumber"`
	InspectionDate       *string         `json:"inspectionDate"`
	InspectorID          *int64          `json:"inspectorId"`
	SiteID               *int64          `json:"siteId"`
	InstallationLocation *string         `json:"installationLocation"`
	InstallationDate     *string         `json:"installationDate"`
	YearsInUse           *string         `json:"yearsInUse"`
	Products             json.RawMessage `json:"products"`
	FuelType             *string         `json:"fuelType"`
	ManufactureYear      *string         `json:"manufactureYear"`
	RatedVoltage         *string         `json:"ratedVoltage"`
	PipingType           *string         `json:"pipingType"`
	WaterQuality         *string         `json:"waterQuality"`
	ControlMethod        *string         `json:"controlMethod"`
	InstallationPurpose  *string         `json:"installationPurpose"`
	ProductForm          *string         `json:"productForm"`
	Result               *string         `json:"result"`
	Summary              *string         `json:"summary"`
	SiteCondition        *string         `json:"siteCondition"`
	Checklist            json.RawMessage `json:"checklist"`
	Photos               json.RawMessage `json:"photos"`
}

// InspectionSummary is one row of the inspection list, newest first.
// Inspector and Site carry resolved names, null when the reference dangles.
type InspectionSummary struct {
	ID             string  `json:"id"`
	DocumentNumber string  `json:"documentNumber"`
	InspectionDate *string `json:"inspectionDate"`
	Inspector      *string `json:"inspector"`
	Site           *string `json:"site"`
	Result         *string `json:"result"`
	CreatedAt      string  `json:"createdAt"`
}

// Detail converts the stored record to its wire shape. It fails with a
// *MalformedRecordError when a stored sub-document cannot be decoded.
func (i *Inspection) Detail() (*InspectionDetail, error) {
	products, err := decodeSubDocument(i.ID, "products", i.Products, emptyArray)
	if err != nil {
		return nil, err
	}
	checklist, err := decodeSubDocument(i.ID, "checklist", i.Checklist, emptyObject)
	if err != nil {
		return nil, err
	}
	photos, err := decodeSubDocument(i.ID, "photos", i.Photos, emptyArray)
	if err != nil {
		return nil, err
	}

	date := i.InspectionDate
	return &InspectionDetail{
		ID:                   i.ID,
		DocumentNumber:       i.DocumentNumber,
		InspectionDate:       &date,
		InspectorID:          i.InspectorID,
		SiteID:               i.SiteID,
		InstallationLocation: i.InstallationLocation,
		InstallationDate:     i.InstallationDate,
		YearsInUse:           i.YearsInUse,
		Products:             products,
		FuelType:             i.FuelType,
		ManufactureYear:      i.ManufactureYear,
		RatedVoltage:         i.RatedVoltage,
		PipingType:           i.PipingType,
		WaterQuality:         i.WaterQuality,
		ControlMethod:        i.ControlMethod,
		InstallationPurpose:  i.InstallationPurpose,
		ProductForm:          i.ProductForm,
		Result:               i.Result,
		Summary:              i.Summary,
		SiteCondition:        i.SiteCondition,
		Checklist:            checklist,
		Photos:               photos,
	}, nil
}

func decodeSubDocument(id, field string, stored *string, def json.RawMessage) (json.RawMessage, error) {
	if stored == nil || *stored == "" {
		return def, nil
	}
	if !json.Valid([]byte(*stored)) {
		return nil, &MalformedRecordError{ID: id, Field: field}
	}
	return json.RawMessage(*stored), nil
}
