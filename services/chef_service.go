package services

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"dineboard/entity"
	"dineboard/pkg/apperr"
	"dineboard/repository"

	"gorm.io/gorm"
)

// ChefService is the staff directory: availability, specialties, workload
// and performance counters. Every mutation of a chef's assignment list or
// counters runs under that chef's lock, so concurrent assignment and
// completion never read a stale workload.
type ChefService struct {
	DB    *gorm.DB
	Repo  *repository.ChefRepository
	locks *keyedMutex
}

func NewChefService(db *gorm.DB, repo *repository.ChefRepository) *ChefService {
	return &ChefService{DB: db, Repo: repo, locks: newKeyedMutex()}
}

func (s *ChefService) Get(id uint) (*entity.Chef, error) {
	c, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.ErrNotFound, "chef %d", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ChefService) List(status *entity.ChefStatus) ([]entity.Chef, error) {
	if status != nil && !status.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid chef status %q", *status)
	}
	return s.Repo.List(status)
}

// ListAvailable returns eligible chefs ordered by rating descending, then
// current workload ascending. This ordering is the assignment policy:
// greedy best-rated least-loaded, no global rebalancing.
func (s *ChefService) ListAvailable(specialty *entity.MenuCategory) ([]entity.Chef, error) {
	if specialty != nil && !specialty.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid specialty %q", *specialty)
	}
	chefs, err := s.Repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	if specialty != nil {
		filtered := chefs[:0]
		for _, c := range chefs {
			if c.HasSpecialty(*specialty) {
				filtered = append(filtered, c)
			}
		}
		chefs = filtered
	}
	sort.SliceStable(chefs, func(i, j int) bool {
		if chefs[i].RatingAvg != chefs[j].RatingAvg {
			return chefs[i].RatingAvg > chefs[j].RatingAvg
		}
		return chefs[i].Workload() < chefs[j].Workload()
	})
	return chefs, nil
}

// Assign appends an assignment record, promoting the chef to busy when it
// reaches capacity. Fails without mutating state if already at capacity.
func (s *ChefService) Assign(chefID, orderID uint, priority entity.Priority) error {
	unlock := s.locks.lock(chefID)
	defer unlock()

	chef, err := s.Get(chefID)
	if err != nil {
		return err
	}
	if chef.Workload() >= chef.MaxConcurrentOrders {
		return apperr.Wrap(apperr.ErrCapacityExceeded, "chef %s is at maximum capacity", chef.Name)
	}
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.Valid() {
		return apperr.Wrap(apperr.ErrValidation, "invalid priority %q", priority)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		a := entity.ChefAssignment{
			ChefID:     chefID,
			OrderID:    orderID,
			AssignedAt: time.Now().UTC(),
			Priority:   priority,
		}
		if err := s.Repo.CreateAssignment(tx, &a); err != nil {
			return err
		}
		if chef.Workload()+1 >= chef.MaxConcurrentOrders {
			chef.CurrentStatus = entity.ChefBusy
			return s.Repo.Save(tx, chef)
		}
		return nil
	})
}

// Complete removes the assignment for orderID (a no-op when absent, which
// covers races with cancellation), bumps the completion counter and folds
// the duration into the running average. The average uses the count from
// before the increment as its old weight; changing that drifts the mean.
func (s *ChefService) Complete(chefID, orderID uint, completionMinutes *float64) error {
	unlock := s.locks.lock(chefID)
	defer unlock()

	chef, err := s.Get(chefID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		removed, err := s.Repo.DeleteAssignment(tx, chefID, orderID)
		if err != nil {
			return err
		}

		oldCount := chef.OrdersCompleted
		chef.OrdersCompleted++
		if completionMinutes != nil {
			total := chef.AvgCompletionMinutes * float64(oldCount)
			chef.AvgCompletionMinutes = (total + *completionMinutes) / float64(chef.OrdersCompleted)
		}

		remaining := chef.Workload() - int(removed)
		if remaining < chef.MaxConcurrentOrders && chef.CurrentStatus == entity.ChefBusy {
			chef.CurrentStatus = entity.ChefAvailable
		}
		return s.Repo.Save(tx, chef)
	})
}

// Detach removes the order from the chef's list without touching the
// performance counters. Used on cancellation and reassignment; a missing
// assignment is not an error.
func (s *ChefService) Detach(tx *gorm.DB, chefID, orderID uint) error {
	unlock := s.locks.lock(chefID)
	defer unlock()

	chef, err := s.Get(chefID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	removed, err := s.Repo.DeleteAssignment(tx, chefID, orderID)
	if err != nil {
		return err
	}
	remaining := chef.Workload() - int(removed)
	if remaining < chef.MaxConcurrentOrders && chef.CurrentStatus == entity.ChefBusy {
		chef.CurrentStatus = entity.ChefAvailable
		return s.Repo.Save(tx, chef)
	}
	return nil
}

// Rate folds a new rating into the running average.
func (s *ChefService) Rate(chefID uint, rating float64) (*entity.Chef, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.Wrap(apperr.ErrValidation, "rating must be between 1 and 5")
	}
	unlock := s.locks.lock(chefID)
	defer unlock()

	chef, err := s.Get(chefID)
	if err != nil {
		return nil, err
	}
	total := chef.RatingAvg * float64(chef.RatingCount)
	chef.RatingCount++
	chef.RatingAvg = (total + rating) / float64(chef.RatingCount)
	if err := s.Repo.Save(nil, chef); err != nil {
		return nil, err
	}
	return chef, nil
}

// AutoAssign picks the best-ranked eligible chef and assigns the order.
func (s *ChefService) AutoAssign(orderID uint, specialty *entity.MenuCategory) (*entity.Chef, error) {
	candidates, err := s.ListAvailable(specialty)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperr.Wrap(apperr.ErrNoAvailableStaff, "no available chefs found")
	}
	best := &candidates[0]
	if err := s.Assign(best.ID, orderID, entity.PriorityMedium); err != nil {
		return nil, err
	}
	return best, nil
}

type ChefIn struct {
	Name                string                `json:"name" binding:"required"`
	Email               string                `json:"email" binding:"required,email"`
	Phone               string                `json:"phone" binding:"required"`
	Position            entity.ChefPosition   `json:"position"`
	Specialties         []entity.MenuCategory `json:"specialties"`
	Shift               entity.Shift          `json:"shift"`
	MaxConcurrentOrders int                   `json:"maxConcurrentOrders"`
}

func (s *ChefService) Create(in *ChefIn) (*entity.Chef, error) {
	if in.Position == "" {
		in.Position = entity.LineCook
	}
	if in.Shift == "" {
		in.Shift = entity.ShiftFullTime
	}
	if !in.Position.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid position %q", in.Position)
	}
	if !in.Shift.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid shift %q", in.Shift)
	}
	for _, sp := range in.Specialties {
		if !sp.Valid() {
			return nil, apperr.Wrap(apperr.ErrValidation, "invalid specialty %q", sp)
		}
	}
	if _, err := s.Repo.GetByEmail(in.Email); err == nil {
		return nil, apperr.Wrap(apperr.ErrValidation, "chef with email %s already exists", in.Email)
	}

	now := time.Now().UTC()
	chef := entity.Chef{
		Name:                in.Name,
		Email:               in.Email,
		Phone:               in.Phone,
		Position:            in.Position,
		Shift:               in.Shift,
		CurrentStatus:       entity.ChefAvailable,
		MaxConcurrentOrders: 3,
		HiredAt:             &now,
		IsActive:            true,
	}
	if in.MaxConcurrentOrders > 0 {
		chef.MaxConcurrentOrders = in.MaxConcurrentOrders
	}
	if len(in.Specialties) > 0 {
		raw, err := json.Marshal(in.Specialties)
		if err != nil {
			return nil, err
		}
		chef.Specialties = raw
	}
	if err := s.Repo.Create(&chef); err != nil {
		return nil, err
	}
	return &chef, nil
}

func (s *ChefService) Update(id uint, in *ChefIn) (*entity.Chef, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	chef, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Position != "" {
		if !in.Position.Valid() {
			return nil, apperr.Wrap(apperr.ErrValidation, "invalid position %q", in.Position)
		}
		chef.Position = in.Position
	}
	if in.Shift != "" {
		if !in.Shift.Valid() {
			return nil, apperr.Wrap(apperr.ErrValidation, "invalid shift %q", in.Shift)
		}
		chef.Shift = in.Shift
	}
	if in.Name != "" {
		chef.Name = in.Name
	}
	if in.Phone != "" {
		chef.Phone = in.Phone
	}
	if in.MaxConcurrentOrders > 0 {
		chef.MaxConcurrentOrders = in.MaxConcurrentOrders
	}
	if in.Specialties != nil {
		for _, sp := range in.Specialties {
			if !sp.Valid() {
				return nil, apperr.Wrap(apperr.ErrValidation, "invalid specialty %q", sp)
			}
		}
		raw, err := json.Marshal(in.Specialties)
		if err != nil {
			return nil, err
		}
		chef.Specialties = raw
	}
	if err := s.Repo.Save(nil, chef); err != nil {
		return nil, err
	}
	return chef, nil
}

// SetStatus applies a direct staff status change (break, off-duty).
func (s *ChefService) SetStatus(id uint, status entity.ChefStatus) (*entity.Chef, error) {
	if !status.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid chef status %q", status)
	}
	unlock := s.locks.lock(id)
	defer unlock()

	chef, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	chef.CurrentStatus = status
	if err := s.Repo.Save(nil, chef); err != nil {
		return nil, err
	}
	return chef, nil
}

// Delete deactivates the chef while orders are outstanding; the record is
// only soft-deleted once the assignment list is empty.
func (s *ChefService) Delete(id uint) error {
	unlock := s.locks.lock(id)
	defer unlock()

	chef, err := s.Get(id)
	if err != nil {
		return err
	}
	if chef.Workload() > 0 {
		chef.IsActive = false
		return s.Repo.Save(nil, chef)
	}
	return s.Repo.Delete(id)
}
