package database

import (
	"context"
	"fmt"
	"time"

	"github.com/shanykim9/BoilerInspector/models"
)

// ListSites returns sites oldest first, optionally filtered by a substring
// match on name.
func (s *Store) ListSites(ctx context.Context, search string) ([]models.Site, error) {
	query := `SELECT id, name, address, contact_person, contact_phone, created_at FROM sites`
	var args []any
	if search != "" {
		query += ` WHERE name LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()

	out := []models.Site{}
	for rows.Next() {
		var site models.Site
		var createdAt int64
		if err := rows.Scan(&site.ID, &site.Name, &site.Address, &site.ContactPerson, &site.ContactPhone, &createdAt); err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		site.CreatedAt = fromMillis(createdAt)
		out = append(out, site)
	}
	return out, rows.Err()
}

// CreateSite inserts one site and returns it with id and created_at filled in.
func (s *Store) CreateSite(ctx context.Context, site models.Site) (models.Site, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sites (name, address, contact_person, contact_phone, created_at) VALUES (?, ?, ?, ?, ?)`,
		site.Name, site.Address, site.ContactPerson, site.ContactPhone, toMillis(now))
	if err != nil {
		return models.Site{}, fmt.Errorf("insert site: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Site{}, fmt.Errorf("site id: %w", err)
	}
	site.ID = id
	site.CreatedAt = now
	return site, nil
}
