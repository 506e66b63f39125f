package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/shenikar/emergency_locator/internal/service"
)

// serviceColumns - общий список колонок записи; координаты извлекаются из geography
const serviceColumns = `
			id,
			name,
			service_type,
			address,
			phone,
			email,
			description,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			capacity,
			is_24_hours,
			created_at,
			updated_at`

type EmergencyServiceRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyServiceRepository(db *pgxpool.Pool) service.EmergencyServiceRepository {
	return &EmergencyServiceRepository{
		db: db,
	}
}

// Create создает новую запись в бд
func (r *EmergencyServiceRepository) Create(ctx context.Context, svc *models.EmergencyService) error {
	query := `
		INSERT INTO emergency_services
			(name, service_type, address, phone, email, description, location, capacity, is_24_hours)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography, $9, $10)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		svc.Name,
		string(svc.ServiceType),
		svc.Address,
		svc.Phone,
		svc.Email,
		svc.Description,
		svc.Location.Lng,
		svc.Location.Lat,
		svc.Capacity,
		svc.Is24Hours,
	).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create emergency service: %w", classify(err))
	}
	return nil
}

// GetByID возвращает запись по её UUID
func (r *EmergencyServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyService, error) {
	query := `SELECT ` + serviceColumns + `
		FROM emergency_services
		WHERE id = $1;
	`
	svc, err := scanService(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency service with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency service by id: %w", err)
	}
	return svc, nil
}

// Update сохраняет все изменяемые поля записи
func (r *EmergencyServiceRepository) Update(ctx context.Context, svc *models.EmergencyService) error {
	query := `
		UPDATE emergency_services SET
			name = $1,
			service_type = $2,
			address = $3,
			phone = $4,
			email = $5,
			description = $6,
			location = ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography,
			capacity = $9,
			is_24_hours = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		svc.Name,
		string(svc.ServiceType),
		svc.Address,
		svc.Phone,
		svc.Email,
		svc.Description,
		svc.Location.Lng,
		svc.Location.Lat,
		svc.Capacity,
		svc.Is24Hours,
		svc.ID,
	).Scan(&svc.UpdatedAt)
	if err != nil {
		// Ни одна строка не обновлена - записи с таким id не существует
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("emergency service with id %s for update: %w", svc.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update emergency service: %w", classify(err))
	}
	return nil
}

// Delete удаляет запись
func (r *EmergencyServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM emergency_services WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete emergency service: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency service with id %s for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// List возвращает все записи, отсортированные по имени; пустой тип означает все типы
func (r *EmergencyServiceRepository) List(ctx context.Context, serviceType models.ServiceType) ([]*models.EmergencyService, error) {
	query := `SELECT ` + serviceColumns + `
		FROM emergency_services
		WHERE ($1::text = '' OR service_type = $1::text)
		ORDER BY name, id;
	`
	rows, err := r.db.Query(ctx, query, string(serviceType))
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency services: %w", err)
	}
	defer rows.Close()

	services := make([]*models.EmergencyService, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency service row: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return services, nil
}

// FindNearest возвращает до limit ближайших к точке записей. Фильтр по типу применяется до лимита.
func (r *EmergencyServiceRepository) FindNearest(ctx context.Context, point geo.Point, limit int, serviceType models.ServiceType) ([]*models.NearbyService, error) {
	query := `
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geog
		)
		SELECT ` + serviceColumns + `,
			ST_Distance(location, point.geog) AS distance
		FROM emergency_services, point
		WHERE ($3::text = '' OR service_type = $3::text)
		ORDER BY distance, id
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, point.Lng, point.Lat, string(serviceType), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearest emergency services: %w", err)
	}
	return collectNearby(rows, "FindNearest")
}

// FindWithinRadius возвращает все записи на расстоянии не более radiusMeters от точки
func (r *EmergencyServiceRepository) FindWithinRadius(ctx context.Context, point geo.Point, radiusMeters float64, serviceType models.ServiceType) ([]*models.NearbyService, error) {
	query := `
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geog
		)
		SELECT ` + serviceColumns + `,
			ST_Distance(location, point.geog) AS distance
		FROM emergency_services, point
		WHERE
			ST_DWithin(location, point.geog, $3)
			AND ($4::text = '' OR service_type = $4::text)
		ORDER BY distance, id;
	`
	rows, err := r.db.Query(ctx, query, point.Lng, point.Lat, radiusMeters, string(serviceType))
	if err != nil {
		return nil, fmt.Errorf("failed to find emergency services within radius: %w", err)
	}
	return collectNearby(rows, "FindWithinRadius")
}

// FindByType возвращает все записи заданного типа с расстоянием до точки
func (r *EmergencyServiceRepository) FindByType(ctx context.Context, point geo.Point, serviceType models.ServiceType) ([]*models.NearbyService, error) {
	query := `
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geog
		)
		SELECT ` + serviceColumns + `,
			ST_Distance(location, point.geog) AS distance
		FROM emergency_services, point
		WHERE service_type = $3
		ORDER BY distance, id;
	`
	rows, err := r.db.Query(ctx, query, point.Lng, point.Lat, string(serviceType))
	if err != nil {
		return nil, fmt.Errorf("failed to find emergency services by type: %w", err)
	}
	return collectNearby(rows, "FindByType")
}

// GetStatistics возвращает количество записей всего, по типам и круглосуточных
func (r *EmergencyServiceRepository) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE service_type = 'hospital'),
			COUNT(*) FILTER (WHERE service_type = 'police'),
			COUNT(*) FILTER (WHERE service_type = 'fire'),
			COUNT(*) FILTER (WHERE is_24_hours)
		FROM emergency_services;
	`
	stats := &models.Statistics{}
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.Hospitals,
		&stats.Police,
		&stats.Fire,
		&stats.Available24Hours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	return stats, nil
}

func scanService(row pgx.Row) (*models.EmergencyService, error) {
	svc := &models.EmergencyService{}
	var serviceType string
	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&serviceType,
		&svc.Address,
		&svc.Phone,
		&svc.Email,
		&svc.Description,
		&svc.Location.Lat,
		&svc.Location.Lng,
		&svc.Capacity,
		&svc.Is24Hours,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	svc.ServiceType = models.ServiceType(serviceType)
	return svc, nil
}

func collectNearby(rows pgx.Rows, method string) ([]*models.NearbyService, error) {
	defer rows.Close()

	services := make([]*models.NearbyService, 0)
	for rows.Next() {
		item := &models.NearbyService{}
		var serviceType string
		var meters float64
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&serviceType,
			&item.Address,
			&item.Phone,
			&item.Email,
			&item.Description,
			&item.Location.Lat,
			&item.Location.Lng,
			&item.Capacity,
			&item.Is24Hours,
			&item.CreatedAt,
			&item.UpdatedAt,
			&meters,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency service row in %s: %w", method, err)
		}
		item.ServiceType = models.ServiceType(serviceType)
		item.Distance = models.NewDistance(meters)
		services = append(services, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", method, err)
	}
	return services, nil
}

// classify переводит нарушения ограничений PostgreSQL в ErrInvalidParameter
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%w: %s", models.ErrInvalidParameter, pgErr.Message)
		}
	}
	return err
}
