package database

import (
	"context"
	"fmt"

	"github.com/shanykim9/BoilerInspector/models"
)

func strPtr(s string) *string { return &s }

// SeedSampleData inserts demo inspectors and sites when their tables are
// empty so a fresh install has reference data to pick from.
func (s *Store) SeedSampleData(ctx context.Context) error {
	var inspectors int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inspectors`).Scan(&inspectors); err != nil {
		return fmt.Errorf("count inspectors: %w", err)
	}
	if inspectors == 0 {
		samples := []models.Inspector{
			{Name: "김철수", Phone: strPtr("010-1234-5678"), Email: strPtr("kim@example.com")},
			{Name: "이영희", Phone: strPtr("010-2345-6789"), Email: strPtr("lee@example.com")},
			{Name: "박민수", Phone: strPtr("010-3456-7890"), Email: strPtr("park@example.com")},
		}
		for _, ins := range samples {
			if _, err := s.CreateInspector(ctx, ins); err != nil {
				return err
			}
		}
	}

	var sites int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sites`).Scan(&sites); err != nil {
		return fmt.Errorf("count sites: %w", err)
	}
	if sites == 0 {
		samples := []models.Site{
			{Name: "서울아파트", Address: strPtr("서울시 강남구"), ContactPerson: strPtr("관리사무소"), ContactPhone: strPtr("02-123-4567")},
			{Name: "부산빌딩", Address: strPtr("부산시 해운대구"), ContactPerson: strPtr("빌딩관리팀"), ContactPhone: strPtr("051-234-5678")},
			{Name: "대구오피스텔", Address: strPtr("대구시 수성구"), ContactPerson: strPtr("시설관리"), ContactPhone: strPtr("053-345-6789")},
		}
		for _, site := range samples {
			if _, err := s.CreateSite(ctx, site); err != nil {
				return err
			}
		}
	}
	return nil
}
