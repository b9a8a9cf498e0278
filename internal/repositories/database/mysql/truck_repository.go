package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/models"
	"github.com/SscSPs/truck_invoice_app/internal/utils/mapping"
)

type MySQLTruckRepository struct {
	BaseRepository
}

func newMySQLTruckRepository(db *sql.DB) portsrepo.TruckRepositoryFacade {
	return &MySQLTruckRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TruckRepositoryFacade = (*MySQLTruckRepository)(nil)

func (r *MySQLTruckRepository) ListTrucks(ctx context.Context) ([]domain.Truck, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, truck_number FROM trucks ORDER BY id")
	if err != nil {
		return nil, storeError(err, "failed to query trucks")
	}
	defer rows.Close()

	modelTrucks := []models.Truck{}
	for rows.Next() {
		var t models.Truck
		if err := rows.Scan(&t.ID, &t.TruckNumber); err != nil {
			return nil, storeError(err, "failed to scan trucks")
		}
		modelTrucks = append(modelTrucks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate trucks")
	}
	return mapping.ToDomainTruckSlice(modelTrucks), nil
}

func (r *MySQLTruckRepository) FindTruckByID(ctx context.Context, truckID int64) (*domain.Truck, error) {
	var m models.Truck
	err := r.DB.QueryRowContext(ctx, "SELECT id, truck_number FROM trucks WHERE id = ?", truckID).Scan(&m.ID, &m.TruckNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("truck %d not found", truckID)
		}
		return nil, storeError(err, "failed to find truck %d", truckID)
	}
	truck := mapping.ToDomainTruck(m)
	return &truck, nil
}

func (r *MySQLTruckRepository) SaveTruck(ctx context.Context, truck domain.Truck) (*domain.Truck, error) {
	m := mapping.ToModelTruck(truck)
	res, err := r.DB.ExecContext(ctx, "INSERT INTO trucks (truck_number) VALUES (?)", m.TruckNumber)
	if err != nil {
		return nil, storeError(err, "failed to save truck %s", m.TruckNumber)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, storeError(err, "failed to read id of truck %s", m.TruckNumber)
	}
	saved := mapping.ToDomainTruck(m)
	return &saved, nil
}
