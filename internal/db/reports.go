package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
	"github.com/georgysavva/scany/pgxscan"
)

// CreateReport validates and inserts a new report, filling in its ID and
// creation timestamp. Records failing validation never reach the database.
func (sdb *SharedDB) CreateReport(ctx context.Context, report *models.Report) error {
	if !report.Categoria.Valid() {
		return ErrInvalidCategory
	}
	if report.Descripcion == "" {
		return ErrEmptyDescription
	}

	sql, args, _ := psql.
		Insert("reports").
		Columns("categoria", "descripcion", "direccion", "lat", "lng", "telefono", "anonimo", "imagen_path").
		Values(report.Categoria, report.Descripcion, report.Direccion,
			report.Lat, report.Lng, report.Telefono, report.Anonimo, report.ImagenPath).
		Suffix("RETURNING id, created_at").
		ToSql()

	row := sdb.db.QueryRow(ctx, sql, args...)
	return row.Scan(&report.ID, &report.CreatedAt)
}

// ListReports returns reports newest first, for the admin listing and the
// JSON export. A limit of 0 falls back to the admin listing cap.
func (sdb *SharedDB) ListReports(ctx context.Context, limit, offset int) ([]models.Report, error) {
	if limit <= 0 || limit > LimitAdminListing {
		limit = LimitAdminListing
	}
	if offset < 0 {
		offset = 0
	}
	sql, args, _ := psql.
		Select("*").
		From("reports").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()

	var reports []models.Report
	err := pgxscan.Select(ctx, sdb.db, &reports, sql, args...)
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ListAlerts returns the map feed: reports carrying a usable coordinate
// pair, projected down to what the map needs, newest first. An empty
// categoria means no filter.
func (sdb *SharedDB) ListAlerts(ctx context.Context, categoria models.Category) ([]models.AlertView, error) {
	q := psql.
		Select("categoria", "descripcion", "direccion", "lat", "lng").
		From("reports").
		Where("lat IS NOT NULL AND lng IS NOT NULL").
		Where("lat BETWEEN -90 AND 90").
		Where("lng BETWEEN -180 AND 180").
		OrderBy("created_at DESC", "id DESC")
	if categoria != "" {
		q = q.Where(sq.Eq{"categoria": categoria})
	}
	sql, args, _ := q.ToSql()

	alerts := []models.AlertView{}
	err := pgxscan.Select(ctx, sdb.db, &alerts, sql, args...)
	if err != nil {
		return nil, err
	}
	return alerts, nil
}
