package services

import (
	"errors"
	"log"

	"dineboard/entity"
	"dineboard/pkg/apperr"

	"gorm.io/gorm"
)

// FulfillmentService coordinates the order ledger, table registry and
// staff directory for the composite operations: order creation, status
// progression, chef (re)assignment and cancellation.
type FulfillmentService struct {
	DB     *gorm.DB
	Orders *OrderService
	Tables *TableService
	Chefs  *ChefService
	Sink   EventSink
}

func NewFulfillmentService(db *gorm.DB, orders *OrderService, tables *TableService, chefs *ChefService, sink EventSink) *FulfillmentService {
	return &FulfillmentService{DB: db, Orders: orders, Tables: tables, Chefs: chefs, Sink: sink}
}

// CreateOrder validates and prices the request, occupies the table for
// dine-in, persists the order and attempts auto-assignment. Pricing and
// table failures abort before anything is written; finding no chef does
// not — the order stays unassigned for manual assignment later.
func (f *FulfillmentService) CreateOrder(in *CreateOrderIn) (*entity.Order, error) {
	order, err := f.Orders.Build(in)
	if err != nil {
		return nil, err
	}
	if order.Type == entity.DineIn {
		if _, err := f.Tables.Get(*order.TableID); err != nil {
			return nil, err
		}
	}

	number, err := f.Orders.NextOrderNumber(order.OrderedAt)
	if err != nil {
		return nil, err
	}
	order.OrderNumber = number

	err = f.DB.Transaction(func(tx *gorm.DB) error {
		if err := f.Orders.Insert(tx, order); err != nil {
			return err
		}
		if order.Type == entity.DineIn {
			if err := f.Tables.Occupy(tx, *order.TableID, order.ID); err != nil {
				return err
			}
		}
		for i := range order.Items {
			it := &order.Items[i]
			if err := f.Orders.Catalog.RecordOrder(tx, it.MenuItemID, it.Quantity, order.OrderedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.autoAssign(order)

	emit(f.Sink, EventOrderCreated, order)
	return order, nil
}

// autoAssign tries the dominant line-item category as a specialty hint
// first, then any available chef. Failure is tolerated by design.
func (f *FulfillmentService) autoAssign(order *entity.Order) {
	specialty := dominantCategory(order.Items)

	chef, err := f.Chefs.AutoAssign(order.ID, specialty)
	if specialty != nil && errors.Is(err, apperr.ErrNoAvailableStaff) {
		chef, err = f.Chefs.AutoAssign(order.ID, nil)
	}
	if err != nil {
		log.Printf("no chef auto-assigned for order %s: %v", order.OrderNumber, err)
		return
	}
	order.ChefID = &chef.ID
	if err := f.Orders.Save(nil, order); err != nil {
		log.Printf("failed to record chef assignment on order %s: %v", order.OrderNumber, err)
	}
}

// UpdateStatus moves an order along its lifecycle and resolves the table
// and chef side effects of the transition.
func (f *FulfillmentService) UpdateStatus(orderID uint, next entity.OrderStatus) (*entity.Order, error) {
	order, err := f.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	old := order.Status
	if err := f.applyTransition(order, next); err != nil {
		return nil, err
	}

	if next == entity.OrderReady && order.ChefID != nil {
		if d := order.CookingDuration(); d != nil {
			minutes := d.Minutes()
			if err := f.Chefs.Complete(*order.ChefID, order.ID, &minutes); err != nil {
				return nil, err
			}
		}
	}

	emit(f.Sink, EventOrderStatusUpdated, map[string]any{
		"orderId":   order.ID,
		"oldStatus": old,
		"newStatus": next,
		"order":     order,
	})
	return order, nil
}

// applyTransition persists the status change plus its cross-entity side
// effects in one transaction.
func (f *FulfillmentService) applyTransition(order *entity.Order, next entity.OrderStatus) error {
	if err := f.Orders.Transition(order, next); err != nil {
		return err
	}
	return f.DB.Transaction(func(tx *gorm.DB) error {
		if err := f.Orders.Save(tx, order); err != nil {
			return err
		}
		if (next == entity.OrderServed || next == entity.OrderCancelled) && order.TableID != nil {
			if _, err := f.Tables.Free(tx, *order.TableID); err != nil {
				return err
			}
		}
		if next == entity.OrderCancelled && order.ChefID != nil {
			if err := f.Chefs.Detach(tx, *order.ChefID, order.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// AssignChef manually (re)assigns an order. The previous chef, if any, is
// detached best-effort before the new assignment.
func (f *FulfillmentService) AssignChef(orderID, chefID uint, priority entity.Priority) (*entity.Order, error) {
	order, err := f.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	chef, err := f.Chefs.Get(chefID)
	if err != nil {
		return nil, err
	}
	if chef.CurrentStatus != entity.ChefAvailable || !chef.IsActive ||
		chef.Workload() >= chef.MaxConcurrentOrders {
		return nil, apperr.Wrap(apperr.ErrChefUnavailable, "chef %s is not available", chef.Name)
	}

	if order.ChefID != nil {
		if err := f.Chefs.Detach(nil, *order.ChefID, order.ID); err != nil {
			return nil, err
		}
	}
	if err := f.Chefs.Assign(chefID, order.ID, priority); err != nil {
		return nil, err
	}
	order.ChefID = &chefID
	if err := f.Orders.Save(nil, order); err != nil {
		return nil, err
	}

	emit(f.Sink, EventOrderChefAssigned, map[string]any{
		"orderId":  order.ID,
		"chefId":   chef.ID,
		"chefName": chef.Name,
	})
	return order, nil
}

// Cancel rejects orders whose progress is irreversible (ready or served),
// then performs the cancelled transition: the order is deactivated, its
// table freed and its chef detached without touching performance counters.
func (f *FulfillmentService) Cancel(orderID uint) (*entity.Order, error) {
	order, err := f.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderReady || order.Status == entity.OrderServed {
		return nil, apperr.Wrap(apperr.ErrPreconditionFailed, "cannot cancel order that is %s", order.Status)
	}
	if err := f.applyTransition(order, entity.OrderCancelled); err != nil {
		return nil, err
	}

	emit(f.Sink, EventOrderCancelled, map[string]any{
		"orderId": order.ID,
		"tableId": order.TableID,
	})
	return order, nil
}

// dominantCategory picks the category with the highest ordered quantity,
// used as the specialty hint for auto-assignment.
func dominantCategory(items []entity.OrderItem) *entity.MenuCategory {
	counts := make(map[entity.MenuCategory]int)
	var best *entity.MenuCategory
	bestCount := 0
	for i := range items {
		it := items[i]
		if !it.Category.Valid() {
			continue
		}
		counts[it.Category] += it.Quantity
		if counts[it.Category] > bestCount {
			bestCount = counts[it.Category]
			cat := it.Category
			best = &cat
		}
	}
	return best
}
