package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shanykim9/BoilerInspector/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const insertInspectionSQL = `INSERT INTO inspections (
  id, document_number, inspection_date, inspector_id, site_id,
  installation_location, installation_date, years_in_use, products,
  fuel_type, manufacture_year, rated_voltage, piping_type, water_quality,
  control_method, installation_purpose, product_form,
  result, summary, site_condition, checklist, photos,
  created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectInspectionSQL = `SELECT
  id, document_number, inspection_date, inspector_id, site_id,
  installation_location, installation_date, years_in_use, products,
  fuel_type, manufacture_year, rated_voltage, piping_type, water_quality,
  control_method, installation_purpose, product_form,
  result, summary, site_condition, checklist, photos,
  created_at, updated_at
FROM inspections`

func insertInspection(ctx context.Context, ex execer, ins models.Inspection) error {
	_, err := ex.ExecContext(ctx, insertInspectionSQL,
		ins.ID, ins.DocumentNumber, ins.InspectionDate, ins.InspectorID, ins.SiteID,
		ins.InstallationLocation, ins.InstallationDate, ins.YearsInUse, ins.Products,
		ins.FuelType, ins.ManufactureYear, ins.RatedVoltage, ins.PipingType, ins.WaterQuality,
		ins.ControlMethod, ins.InstallationPurpose, ins.ProductForm,
		ins.Result, ins.Summary, ins.SiteCondition, ins.Checklist, ins.Photos,
		toMillis(ins.CreatedAt), toMillis(ins.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert inspection: %w", err)
	}
	return nil
}

// CreateInspection inserts one inspection row. The caller is responsible for
// id and document-number defaults.
func (s *Store) CreateInspection(ctx context.Context, ins models.Inspection) error {
	return insertInspection(ctx, s.db, ins)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInspection(row rowScanner) (*models.Inspection, error) {
	var ins models.Inspection
	var created, updated int64
	err := row.Scan(
		&ins.ID, &ins.DocumentNumber, &ins.InspectionDate, &ins.InspectorID, &ins.SiteID,
		&ins.InstallationLocation, &ins.InstallationDate, &ins.YearsInUse, &ins.Products,
		&ins.FuelType, &ins.ManufactureYear, &ins.RatedVoltage, &ins.PipingType, &ins.WaterQuality,
		&ins.ControlMethod, &ins.InstallationPurpose, &ins.ProductForm,
		&ins.Result, &ins.Summary, &ins.SiteCondition, &ins.Checklist, &ins.Photos,
		&created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan inspection: %w", err)
	}
	ins.CreatedAt = fromMillis(created)
	ins.UpdatedAt = fromMillis(updated)
	return &ins, nil
}

// GetInspection loads the stored shape of one inspection.
func (s *Store) GetInspection(ctx context.Context, id string) (*models.Inspection, error) {
	row := s.db.QueryRowContext(ctx, selectInspectionSQL+` WHERE id = ?`, id)
	return scanInspection(row)
}

// UpdateInspection writes every updatable column back. Callers load the
// record, apply a patch in memory and persist the result here.
func (s *Store) UpdateInspection(ctx context.Context, ins *models.Inspection) error {
	res, err := s.db.ExecContext(ctx, `UPDATE inspections SET
  document_number = ?, inspection_date = ?, inspector_id = ?, site_id = ?,
  installation_location = ?, installation_date = ?, years_in_use = ?, products = ?,
  fuel_type = ?, manufacture_year = ?, rated_voltage = ?, piping_type = ?,
  water_quality = ?, control_method = ?, installation_purpose = ?, product_form = ?,
  result = ?, summary = ?, site_condition = ?, checklist = ?, photos = ?,
  updated_at = ?
WHERE id = ?`,
		ins.DocumentNumber, ins.InspectionDate, ins.InspectorID, ins.SiteID,
		ins.InstallationLocation, ins.InstallationDate, ins.YearsInUse, ins.Products,
		ins.FuelType, ins.ManufactureYear, ins.RatedVoltage, ins.PipingType,
		ins.WaterQuality, ins.ControlMethod, ins.InstallationPurpose, ins.ProductForm,
		ins.Result, ins.Summary, ins.SiteCondition, ins.Checklist, ins.Photos,
		toMillis(ins.UpdatedAt),
		ins.ID)
	if err != nil {
		return fmt.Errorf("update inspection: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update inspection: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListInspections returns summaries newest first, resolving inspector and
// site names where the references still exist.
func (s *Store) ListInspections(ctx context.Context) ([]models.InspectionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT i.id, i.document_number, i.inspection_date, p.name, st.name, i.result, i.created_at
FROM inspections i
LEFT JOIN inspectors p ON p.id = i.inspector_id
LEFT JOIN sites st ON st.id = i.site_id
ORDER BY i.created_at DESC, i.id`)
	if err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}
	defer rows.Close()

	out := []models.InspectionSummary{}
	for rows.Next() {
		var id, date string
		var doc, inspector, site, result *string
		var created int64
		if err := rows.Scan(&id, &doc, &date, &inspector, &site, &result, &created); err != nil {
			return nil, fmt.Errorf("scan inspection summary: %w", err)
		}
		out = append(out, models.InspectionSummary{
			ID:             id,
			DocumentNumber: models.DefaultDocumentNumber(id, doc),
			InspectionDate: &date,
			Inspector:      inspector,
			Site:           site,
			Result:         result,
			CreatedAt:      fromMillis(created).Format(time.RFC3339),
		})
	}
	return out, rows.Err()
}

// AppendPhoto records url on the inspection's photo list, creating a
// placeholder record when the id has never been seen. The lookup and the
// insert run in one immediate transaction so concurrent first uploads cannot
// both take the create path.
func (s *Store) AppendPhoto(ctx context.Context, id, url string, now time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append photo: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var stored *string
	err = tx.QueryRowContext(ctx, `SELECT photos FROM inspections WHERE id = ?`, id).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := insertInspection(ctx, tx, models.NewPlaceholderInspection(id, url, now)); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("load photos: %w", err)
	default:
		photos, derr := models.DecodePhotoList(id, stored)
		if derr != nil {
			return derr
		}
		photos = append(photos, url)
		encoded, merr := json.Marshal(photos)
		if merr != nil {
			return fmt.Errorf("encode photos: %w", merr)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE inspections SET photos = ?, updated_at = ? WHERE id = ?`,
			string(encoded), toMillis(now), id); err != nil {
			return fmt.Errorf("update photos: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append photo: %w", err)
	}
	return nil
}
