package services

import (
	"encoding/json"
	"errors"
	"time"

	"dineboard/entity"
	"dineboard/pkg/apperr"
	"dineboard/repository"

	"gorm.io/gorm"
)

// TableService is the table registry: it owns occupancy state and is the
// only writer of occupy/free/reserve transitions.
type TableService struct {
	Repo  *repository.TableRepository
	Sink  EventSink
	locks *keyedMutex
}

func NewTableService(repo *repository.TableRepository, sink EventSink) *TableService {
	return &TableService{Repo: repo, Sink: sink, locks: newKeyedMutex()}
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	t, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.ErrNotFound, "table %d", id)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) List(status *entity.TableStatus) ([]entity.Table, error) {
	if status != nil && !status.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid table status %q", *status)
	}
	return s.Repo.List(status)
}

// Reserve moves an available table to reserved and stores the details.
func (s *TableService) Reserve(id uint, details entity.Reservation) (*entity.Table, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if t.Status != entity.TableAvailable || !t.IsActive {
		return nil, apperr.Wrap(apperr.ErrPreconditionFailed, "table %s is %s", t.TableNumber, t.Status)
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	t.Status = entity.TableReserved
	t.ReservationDetails = raw
	if err := s.Repo.Save(nil, t); err != nil {
		return nil, err
	}
	emit(s.Sink, EventTableReserved, t)
	return t, nil
}

// Occupy points the table at an order. Callable from any prior state so a
// reserved table can seat the party that reserved it.
func (s *TableService) Occupy(tx *gorm.DB, id, orderID uint) error {
	unlock := s.locks.lock(id)
	defer unlock()

	t, err := s.Get(id)
	if err != nil {
		return err
	}
	t.Status = entity.TableOccupied
	t.CurrentOrderID = &orderID
	return s.Repo.Save(tx, t)
}

// Free returns the table to available, clearing the order reference and
// any reservation. Idempotent: freeing an available table changes nothing
// but the cleaned timestamp.
func (s *TableService) Free(tx *gorm.DB, id uint) (*entity.Table, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t.Status = entity.TableAvailable
	t.CurrentOrderID = nil
	t.ReservationDetails = nil
	t.LastCleanedAt = &now
	if err := s.Repo.Save(tx, t); err != nil {
		return nil, err
	}
	emit(s.Sink, EventTableFreed, t)
	return t, nil
}

type TableIn struct {
	TableNumber string             `json:"tableNumber" binding:"required"`
	Name        string             `json:"name"`
	Chairs      int                `json:"chairs"`
	Status      entity.TableStatus `json:"status"`
}

func (s *TableService) Create(in *TableIn) (*entity.Table, error) {
	if in.Chairs == 0 {
		in.Chairs = 4
	}
	if in.Chairs < 1 || in.Chairs > 20 {
		return nil, apperr.Wrap(apperr.ErrValidation, "chairs must be between 1 and 20")
	}
	if in.Status == "" {
		in.Status = entity.TableAvailable
	}
	if !in.Status.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid table status %q", in.Status)
	}
	if _, err := s.Repo.GetByNumber(in.TableNumber); err == nil {
		return nil, apperr.Wrap(apperr.ErrValidation, "table number %s already exists", in.TableNumber)
	}
	name := in.Name
	if name == "" {
		name = "Table " + in.TableNumber
	}
	t := entity.Table{
		TableNumber: in.TableNumber,
		Name:        name,
		Chairs:      in.Chairs,
		Status:      in.Status,
		IsActive:    true,
	}
	if err := s.Repo.Create(&t); err != nil {
		return nil, err
	}
	emit(s.Sink, EventTableCreated, &t)
	return &t, nil
}

// Update applies direct staff edits (seat count, renames, maintenance).
func (s *TableService) Update(id uint, in *TableIn) (*entity.Table, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid table status %q", in.Status)
	}
	if in.Chairs != 0 && (in.Chairs < 1 || in.Chairs > 20) {
		return nil, apperr.Wrap(apperr.ErrValidation, "chairs must be between 1 and 20")
	}
	if in.Name != "" {
		t.Name = in.Name
	}
	if in.Chairs != 0 {
		t.Chairs = in.Chairs
	}
	if in.Status != "" {
		t.Status = in.Status
		if in.Status == entity.TableAvailable {
			t.CurrentOrderID = nil
		}
	}
	if err := s.Repo.Save(nil, t); err != nil {
		return nil, err
	}
	emit(s.Sink, EventTableUpdated, t)
	return t, nil
}

// Delete refuses while an open order still references the table.
func (s *TableService) Delete(id uint) error {
	unlock := s.locks.lock(id)
	defer unlock()

	t, err := s.Get(id)
	if err != nil {
		return err
	}
	if t.CurrentOrderID != nil {
		return apperr.Wrap(apperr.ErrPreconditionFailed, "table %s has an open order", t.TableNumber)
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	emit(s.Sink, EventTableDeleted, map[string]any{"tableId": id})
	return nil
}
