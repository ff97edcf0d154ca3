package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"smart_travel/internal/domain"
)

// Repo persists the curated catalog. It implements domain.CatalogRepository.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCatalogSQL); err != nil {
		return fmt.Errorf("migrate catalog_places: %w", err)
	}
	return nil
}

// UpsertRegion replaces the stored list for region with places, keeping their
// order. Region keys are stored lowercase.
func (r *Repo) UpsertRegion(ctx context.Context, region string, places []domain.Place) error {
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		return fmt.Errorf("upsert region: empty key")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteRegionSQL, region); err != nil {
		return fmt.Errorf("clear region %s: %w", region, err)
	}
	if len(places) > 0 {
		values := make([]string, 0, len(places))
		args := make([]any, 0, len(places)*6)
		for i, p := range places {
			values = append(values, "(?,?,?,?,?,?)")
			args = append(args, region, i, p.Name, p.Rating, p.Description, string(p.Category))
		}
		q := insertPlacesPrefix + strings.Join(values, ",") + insertPlacesOnDup
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert region %s: %w", region, err)
		}
	}
	return tx.Commit()
}

// LoadRegions returns every stored region ordered by key, places by position.
func (r *Repo) LoadRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.db.QueryContext(ctx, loadRegionsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Region
	for rows.Next() {
		var (
			region, name, rating, category string
			position                       int
			desc                           sql.NullString
		)
		if err := rows.Scan(&region, &position, &name, &rating, &desc, &category); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Key != region {
			out = append(out, domain.Region{Key: region})
		}
		last := &out[len(out)-1]
		last.Places = append(last.Places, domain.Place{
			Name:        name,
			Rating:      rating,
			Description: desc.String,
			Category:    domain.ParseCategory(category),
		})
	}
	return out, rows.Err()
}
