package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"dineboard/entity"
	"dineboard/pkg/apperr"
	"dineboard/repository"

	"gorm.io/gorm"
)

const orderNumberPrefix = "ORD"

// OrderService is the order ledger: lifecycle state, line items and
// pricing. Cross-entity side effects (tables, chefs) belong to the
// fulfillment coordinator.
type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Seq     *repository.SequenceRepository
	Catalog Catalog

	TaxRate        float64
	DeliveryCharge float64

	// Serializes daily sequence generation; concurrent creations must
	// never observe the same count.
	seqMu sync.Mutex
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, seq *repository.SequenceRepository, catalog Catalog, taxRate, deliveryCharge float64) *OrderService {
	return &OrderService{
		DB:             db,
		Repo:           repo,
		Seq:            seq,
		Catalog:        catalog,
		TaxRate:        taxRate,
		DeliveryCharge: deliveryCharge,
	}
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.ErrNotFound, "order %d", id)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(f repository.OrderFilter) ([]entity.Order, int64, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, 0, apperr.Wrap(apperr.ErrValidation, "invalid order status %q", *f.Status)
	}
	if f.Type != nil && !f.Type.Valid() {
		return nil, 0, apperr.Wrap(apperr.ErrValidation, "invalid order type %q", *f.Type)
	}
	return s.Repo.List(f)
}

// NextOrderNumber issues the customer-facing number: fixed prefix, 8-digit
// date, zero-padded 3-digit daily sequence (ORD20240315007).
func (s *OrderService) NextOrderNumber(now time.Time) (string, error) {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	day := now.UTC().Format("20060102")
	var n int
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		n, err = s.Seq.Next(tx, day)
		return err
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%03d", orderNumberPrefix, day, n), nil
}

type OrderItemIn struct {
	MenuItemID          uint                   `json:"menuItemId" binding:"required"`
	Quantity            int                    `json:"quantity" binding:"required,min=1"`
	Customizations      []entity.Customization `json:"customizations"`
	SpecialInstructions string                 `json:"specialInstructions"`
}

type CreateOrderIn struct {
	Type                entity.OrderType `json:"orderType" binding:"required"`
	TableID             *uint            `json:"tableId"`
	Items               []OrderItemIn    `json:"items" binding:"required,min=1,dive"`
	CustomerName        string           `json:"customerName"`
	CustomerPhone       string           `json:"customerPhone"`
	CustomerAddress     string           `json:"customerAddress"`
	CookingInstructions string           `json:"cookingInstructions"`
}

// Build validates the request and prices it against the catalog, capturing
// each item's name and price so later menu edits never change the order.
// Nothing is persisted; the coordinator owns the write.
func (s *OrderService) Build(in *CreateOrderIn) (*entity.Order, error) {
	if !in.Type.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid order type %q", in.Type)
	}
	if in.Type == entity.DineIn && in.TableID == nil {
		return nil, apperr.Wrap(apperr.ErrValidation, "dine-in orders require a table")
	}
	if len(in.Items) == 0 {
		return nil, apperr.Wrap(apperr.ErrValidation, "at least one item is required")
	}

	now := time.Now().UTC()
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, apperr.Wrap(apperr.ErrValidation, "quantity must be at least 1")
		}
		menuItem, err := s.Catalog.Lookup(it.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !menuItem.CurrentlyAvailable(now) {
			return nil, apperr.Wrap(apperr.ErrItemUnavailable, "menu item %s is not available", menuItem.Name)
		}
		item := entity.OrderItem{
			MenuItemID:          menuItem.ID,
			Name:                menuItem.Name,
			Price:               menuItem.Price,
			Category:            menuItem.Category,
			Quantity:            it.Quantity,
			SpecialInstructions: it.SpecialInstructions,
		}
		if len(it.Customizations) > 0 {
			raw, err := json.Marshal(it.Customizations)
			if err != nil {
				return nil, err
			}
			item.Customizations = raw
		}
		items = append(items, item)
	}

	order := &entity.Order{
		Type:                in.Type,
		Status:              entity.OrderPending,
		Items:               items,
		CustomerName:        in.CustomerName,
		CustomerPhone:       in.CustomerPhone,
		CustomerAddress:     in.CustomerAddress,
		CookingInstructions: in.CookingInstructions,
		OrderedAt:           now,
		IsActive:            true,
	}
	if in.Type == entity.DineIn {
		order.TableID = in.TableID
	}
	if in.Type == entity.Delivery {
		order.DeliveryCharge = s.DeliveryCharge
	}
	s.CalculateTotal(order)
	return order, nil
}

// CalculateTotal re-derives subtotal, tax and total from the current line
// items. Safe to call whenever items change.
func (s *OrderService) CalculateTotal(o *entity.Order) float64 {
	subtotal := 0.0
	for i := range o.Items {
		subtotal += o.Items[i].LineTotal()
	}
	o.Subtotal = round2(subtotal)
	o.Tax = round2(subtotal * s.TaxRate)
	o.Total = round2(o.Subtotal + o.Tax + o.DeliveryCharge - o.Discount)
	return o.Total
}

// Transition validates the status edge and applies the timestamp side
// effects to the order in memory. The caller persists.
func (s *OrderService) Transition(o *entity.Order, next entity.OrderStatus) error {
	if !next.Valid() {
		return apperr.Wrap(apperr.ErrValidation, "invalid order status %q", next)
	}
	if !o.Status.CanTransitionTo(next) {
		return apperr.Wrap(apperr.ErrInvalidTransition, "cannot move order %s from %s to %s", o.OrderNumber, o.Status, next)
	}

	now := time.Now().UTC()
	switch next {
	case entity.OrderProcessing:
		o.AcceptedAt = &now
	case entity.OrderReady:
		o.ReadyAt = &now
		// Backfill so cooking duration is always computable from here on.
		if o.StartedCookingAt == nil {
			if o.AcceptedAt != nil {
				o.StartedCookingAt = o.AcceptedAt
			} else {
				o.StartedCookingAt = &now
			}
		}
	case entity.OrderServed:
		o.ServedAt = &now
	case entity.OrderCancelled:
		o.IsActive = false
	}
	o.Status = next
	return nil
}

// Insert persists a built order together with its line items.
func (s *OrderService) Insert(tx *gorm.DB, o *entity.Order) error {
	return s.Repo.Create(tx, o)
}

func (s *OrderService) Save(tx *gorm.DB, o *entity.Order) error {
	return s.Repo.Save(tx, o)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
