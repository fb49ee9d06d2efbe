package repository

import (
	"errors"

	"dineboard/entity"

	"gorm.io/gorm"
)

type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next increments and returns the daily counter for the given day key.
// Callers serialize access; this only performs the read-modify-write.
func (r *SequenceRepository) Next(tx *gorm.DB, day string) (int, error) {
	if tx == nil {
		tx = r.db
	}
	var seq entity.OrderSequence
	err := tx.Where("day = ?", day).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = entity.OrderSequence{Day: day, LastSeq: 1}
		if err := tx.Create(&seq).Error; err != nil {
			return 0, err
		}
		return seq.LastSeq, nil
	}
	if err != nil {
		return 0, err
	}
	seq.LastSeq++
	if err := tx.Save(&seq).Error; err != nil {
		return 0, err
	}
	return seq.LastSeq, nil
}
