package models

import (
	"encoding/json"
	"time"
)

// DateFormat is the wire and storage layout for date-only fields.
const DateFormat = "2006-01-02"

// Inspector is a reference record for a person who performs inspections.
// Immutable after creation.
type Inspector struct {
	ID        int64
	Name      string
	Phone     *string
	Email     *string
	CreatedAt time.Time
}

// Site is a reference record for an inspected location. Immutable after
// creation.
type Site struct {
	ID            int64
	Name          string
	Address       *string
	ContactPerson *string
	ContactPhone  *string
	CreatedAt     time.Time
}

// Inspection is the stored shape of one inspection record. Nullable columns
// use pointer fields; Products, Checklist and Photos hold serialized JSON
// text (array, object and array respectively) or nil.
type Inspection struct {
	ID             string
	DocumentNumber *string
	InspectionDate string // YYYY-MM-DD, always set
	InspectorID    *int64
	SiteID         *int64

	InstallationLocation *string
	InstallationDate     *string // YYYY-MM-DD
	YearsInUse           *string
	Products             *string

	FuelType            *string
	ManufactureYear     *string
	RatedVoltage        *string
	PipingType          *string
	WaterQuality        *string
	ControlMethod       *string
	InstallationPurpose *string
	ProductForm         *string

	Result        *string
	Summary       *string
	SiteCondition *string
	Checklist     *string
	Photos        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShortID returns the first eight characters of an inspection id, the stem
// used for generated document numbers.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// DefaultDocumentNumber resolves the display document number, falling back to
// DOC-<id[:8]> when none was stored.
func DefaultDocumentNumber(id string, stored *string) string {
	if stored != nil && *stored != "" {
		return *stored
	}
	return "DOC-" + ShortID(id)
}

// NewPlaceholderInspection builds the record auto-created when a photo is
// uploaded against an id that has no inspection yet. The client is expected
// to submit the rest of the form later.
func NewPlaceholderInspection(id, photoURL string, now time.Time) Inspection {
	now = now.UTC()
	doc := "TEMP-" + ShortID(id)
	encoded, _ := json.Marshal([]string{photoURL})
	photos := string(encoded)
	return Inspection{
		ID:             id,
		DocumentNumber: &doc,
		InspectionDate: now.Format(DateFormat),
		Photos:         &photos,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// DecodePhotoList decodes the stored photo list, treating absent or empty as
// an empty list.
func DecodePhotoList(id string, stored *string) ([]string, error) {
	if stored == nil || *stored == "" {
		return []string{}, nil
	}
	var photos []string
	if err := json.Unmarshal([]byte(*stored), &photos); err != nil {
		return nil, &MalformedRecordError{ID: id, Field: "photos"}
	}
	return photos, nil
}
