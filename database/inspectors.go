package database

import (
	"context"
	"fmt"
	"time"

	"github.com/shanykim9/BoilerInspector/models"
)

// ListInspectors returns every inspector, oldest first.
func (s *Store) ListInspectors(ctx context.Context) ([]models.Inspector, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, email, created_at FROM inspectors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list inspectors: %w", err)
	}
	defer rows.Close()

	out := []models.Inspector{}
	for rows.Next() {
		var ins models.Inspector
		var createdAt int64
		if err := rows.Scan(&ins.ID, &ins.Name, &ins.Phone, &ins.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("scan inspector: %w", err)
		}
		ins.CreatedAt = fromMillis(createdAt)
		out = append(out, ins)
	}
	return out, rows.Err()
}

// CreateInspector inserts one inspector and returns it with id and created_at
// filled in.
func (s *Store) CreateInspector(ctx context.Context, ins models.Inspector) (models.Inspector, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO inspectors (name, phone, email, created_at) VALUES (?, ?, ?, ?)`,
		ins.Name, ins.Phone, ins.Email, toMillis(now))
	if err != nil {
		return models.Inspector{}, fmt.Errorf("insert inspector: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Inspector{}, fmt.Errorf("inspector id: %w", err)
	}
	ins.ID = id
	ins.CreatedAt = now
	return ins, nil
}
