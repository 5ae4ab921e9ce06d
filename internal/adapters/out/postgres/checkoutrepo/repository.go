package checkoutrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCheckoutSessionRepository implements CheckoutSessionRepository using GORM.
type GormCheckoutSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCheckoutSessionRepository creates a new GORM checkout session repository.
func NewGormCheckoutSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormCheckoutSessionRepository {
	return &GormCheckoutSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new checkout session to the database.
func (r *GormCheckoutSessionRepository) Add(ctx context.Context, aggregate *checkout.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}

// Update saves an existing checkout session to the database.
// Uses Select("*") so fields cleared by Reset are written back as zero values.
func (r *GormCheckoutSessionRepository) Update(ctx context.Context, aggregate *checkout.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SessionDTO{}).
		Where("customer_id = ?", dto.CustomerID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}

// GetByCustomer retrieves the checkout session owned by the given customer.
func (r *GormCheckoutSessionRepository) GetByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) (*checkout.Session, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checkout session", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
