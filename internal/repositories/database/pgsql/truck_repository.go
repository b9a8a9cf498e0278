package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/models"
	"github.com/SscSPs/truck_invoice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTruckRepository struct {
	BaseRepository
}

// newPgxTruckRepository creates a new repository for truck data.
func newPgxTruckRepository(pool *pgxpool.Pool) portsrepo.TruckRepositoryFacade {
	return &PgxTruckRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.TruckRepositoryFacade = (*PgxTruckRepository)(nil)

// ListTrucks retrieves all trucks.
func (r *PgxTruckRepository) ListTrucks(ctx context.Context) ([]domain.Truck, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, truck_number FROM trucks ORDER BY id;`)
	if err != nil {
		return nil, storeError(err, "failed to query trucks")
	}
	defer rows.Close()

	modelTrucks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Truck, error) {
		var t models.Truck
		err := row.Scan(&t.ID, &t.TruckNumber)
		return t, err
	})
	if err != nil {
		return nil, storeError(err, "failed to scan trucks")
	}
	return mapping.ToDomainTruckSlice(modelTrucks), nil
}

// FindTruckByID retrieves a truck by id.
func (r *PgxTruckRepository) FindTruckByID(ctx context.Context, truckID int64) (*domain.Truck, error) {
	var m models.Truck
	err := r.Pool.QueryRow(ctx, `SELECT id, truck_number FROM trucks WHERE id = $1;`, truckID).Scan(&m.ID, &m.TruckNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("truck %d not found", truckID)
		}
		return nil, storeError(err, "failed to find truck %d", truckID)
	}
	truck := mapping.ToDomainTruck(m)
	return &truck, nil
}

// SaveTruck inserts a truck.
func (r *PgxTruckRepository) SaveTruck(ctx context.Context, truck domain.Truck) (*domain.Truck, error) {
	m := mapping.ToModelTruck(truck)
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO trucks (truck_number) VALUES ($1) RETURNING id;`,
		m.TruckNumber,
	).Scan(&m.ID)
	if err != nil {
		return nil, storeError(err, "failed to save truck %s", m.TruckNumber)
	}
	saved := mapping.ToDomainTruck(m)
	return &saved, nil
}
