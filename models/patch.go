package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Patch is a sparse update document. Only keys present in the map mutate the
// record; every other field is left untouched. Applying the same patch twice
// yields the same stored state, aside from UpdatedAt advancing.
type Patch map[string]json.RawMessage

// ParsePatch decodes a request body into a Patch. Bodies that are not a JSON
// object are rejected.
func ParsePatch(body []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("decode patch: body is not a JSON object")
	}
	return p, nil
}

// Apply overwrites the fields named by the patch on the stored record and
// refreshes UpdatedAt. Date fields are skipped when the patched value is null
// or empty, so a client cannot clear a date once set. The three sub-document
// fields are replaced wholesale, never merged.
func (p Patch) Apply(ins *Inspection, now time.Time) error {
	if err := p.stringField("documentNumber", &ins.DocumentNumber); err != nil {
		return err
	}
	if v, err := p.dateValue("inspectionDate"); err != nil {
		return err
	} else if v != nil {
		ins.InspectionDate = *v
	}
	if err := p.intField("inspectorId", &ins.InspectorID); err != nil {
		return err
	}
	if err := p.intField("siteId", &ins.SiteID); err != nil {
		return err
	}
	if err := p.stringField("installationLocation", &ins.InstallationLocation); err != nil {
		return err
	}
	if v, err := p.dateValue("installationDate"); err != nil {
		return err
	} else if v != nil {
		ins.InstallationDate = v
	}
	if err := p.stringField("yearsInUse", &ins.YearsInUse); err != nil {
		return err
	}
	if err := p.subDocumentField("products", &ins.Products); err != nil {
		return err
	}
	if err := p.stringField("fuelType", &ins.FuelType); err != nil {
		return err
	}
	if err := p.stringField("manufactureYear", &ins.ManufactureYear); err != nil {
		return err
	}
	if err := p.stringField("ratedVoltage", &ins.RatedVoltage); err != nil {
		return err
	}
	if err := p.stringField("pipingType", &ins.PipingType); err != nil {
		return err
	}
	if err := p.stringField("waterQuality", &ins.WaterQuality); err != nil {
		return err
	}
	if err := p.stringField("controlMethod", &ins.ControlMethod); err != nil {
		return err
	}
	if err := p.stringField("installationPurpose", &ins.InstallationPurpose); err != nil {
		return err
	}
	if err := p.stringField("productForm", &ins.ProductForm); err != nil {
		return err
	}
	if err := p.stringField("result", &ins.Result); err != nil {
		return err
	}
	if err := p.stringField("summary", &ins.Summary); err != nil {
		return err
	}
	if err := p.stringField("siteCondition", &ins.SiteCondition); err != nil {
		return err
	}
	if err := p.subDocumentField("checklist", &ins.Checklist); err != nil {
		return err
	}
	if err := p.subDocumentField("photos", &ins.Photos); err != nil {
		return err
	}

	ins.UpdatedAt = now.UTC()
	return nil
}

func (p Patch) stringField(key string, dst **string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	*dst = v
	return nil
}

func (p Patch) intField(key string, dst **int64) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	var v *int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	*dst = v
	return nil
}

// dateValue returns the patched date for key, or nil when the key is absent
// or its value is null/empty (the empty-date no-op).
func (p Patch) dateValue(key string) (*string, error) {
	raw, ok := p[key]
	if !ok {
		return nil, nil
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("field %s: %w", key, err)
	}
	if v == nil || *v == "" {
		return nil, nil
	}
	if _, err := time.Parse(DateFormat, *v); err != nil {
		return nil, fmt.Errorf("field %s: want YYYY-MM-DD: %w", key, err)
	}
	return v, nil
}

// subDocumentField re-serializes the patch's raw value into stored text. A
// present key always replaces the stored sub-document in full.
func (p Patch) subDocumentField(key string, dst **string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	text := buf.String()
	*dst = &text
	return nil
}
