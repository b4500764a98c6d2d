// Package paymentrepo stores the immutable payment records.
package paymentrepo

import (
	"context"
	"time"

	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PayerEmail    string    `gorm:"not null;index"`
	Amount        int64     `gorm:"not null"`
	Currency      string    `gorm:"size:8;not null"`
	Method        string    `gorm:"size:32;not null"`
	TransactionID string    `gorm:"not null;uniqueIndex"`
	PaidAt        time.Time `gorm:"not null;index"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add inserts a payment. Reusing a gateway transaction id is a ValueIsInvalidError.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := PaymentDTO{
		ID:            aggregate.ID().Google(),
		ParcelID:      aggregate.ParcelID().Google(),
		PayerEmail:    aggregate.PayerEmail().String(),
		Amount:        aggregate.Amount(),
		Currency:      aggregate.Currency(),
		Method:        aggregate.Method(),
		TransactionID: aggregate.TransactionID(),
		PaidAt:        aggregate.PaidAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("insert payment", err)
	}

	return nil
}
