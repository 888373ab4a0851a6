package rpstatus

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/davegonzalez/Litview/internal/app/domains/entity/etorder"
)

// statusRecord is the GORM model for the order_status_records table.
type statusRecord struct {
	OrderNumber            string    `gorm:"column:order_number;primaryKey"`
	SquarespaceOrderNumber string    `gorm:"column:squarespace_order_number"`
	ShipStatus             string    `gorm:"column:ship_status"`
	CreatedAt              time.Time `gorm:"column:created_at"`
}

func (statusRecord) TableName() string {
	return "order_status_records"
}

// StatusRepositoryImpl is the MySQL-backed StatusRepository.
type StatusRepositoryImpl struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &StatusRepositoryImpl{db: db}
}

// Create stores the record, converting the domain object to the GORM model.
func (r *StatusRepositoryImpl) Create(ctx context.Context, rec *etorder.StatusRecord) error {
	po := &statusRecord{
		OrderNumber:            rec.OrderNumber,
		SquarespaceOrderNumber: rec.SquarespaceOrderNumber,
		ShipStatus:             rec.ShipStatus,
		CreatedAt:              rec.CreatedAt,
	}
	if po.CreatedAt.IsZero() {
		po.CreatedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return fmt.Errorf("create status record %s: %w", rec.OrderNumber, err)
	}
	return nil
}
