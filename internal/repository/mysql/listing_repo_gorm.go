package mysql

import (
	"errors"
	"fmt"

	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type listingRepo struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepo{db: db}
}

func (r *listingRepo) LockForUpdate(tx *gorm.DB, id uint64) (*domain.Listing, error) {
	var l domain.Listing
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&l, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *listingRepo) MarkSold(tx *gorm.DB, id uint64) error {
	result := tx.Model(&domain.Listing{}).
		Where("id = ? AND status = ?", id, domain.ListingAvailable).
		Update("status", domain.ListingSold)
	if result.Error != nil {
		return result.Error
	}
	// The coordinator only calls this for rows it holds locked and has
	// verified available, so zero affected rows means a broken invariant.
	if result.RowsAffected == 0 {
		return fmt.Errorf("listing %d was not available to sell", id)
	}
	return nil
}

func (r *listingRepo) FindByID(id uint64) (*domain.Listing, error) {
	var l domain.Listing
	if err := r.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
