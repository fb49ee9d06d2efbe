package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"dineboard/entity"
	"dineboard/pkg/apperr"
)

func TestNextOrderNumberFormat(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	n1, err := f.orders.NextOrderNumber(now)
	if err != nil {
		t.Fatalf("NextOrderNumber: %v", err)
	}
	if n1 != "ORD20240315001" {
		t.Errorf("first number = %s, want ORD20240315001", n1)
	}
	n2, err := f.orders.NextOrderNumber(now)
	if err != nil {
		t.Fatalf("NextOrderNumber: %v", err)
	}
	if n2 != "ORD20240315002" {
		t.Errorf("second number = %s, want ORD20240315002", n2)
	}

	// A new day restarts the sequence.
	n3, err := f.orders.NextOrderNumber(now.Add(24 * time.Hour))
	if err != nil {
		t.Fatalf("NextOrderNumber: %v", err)
	}
	if n3 != "ORD20240316001" {
		t.Errorf("next-day number = %s, want ORD20240316001", n3)
	}
}

func TestNextOrderNumberConcurrent(t *testing.T) {
	f := newFixture(t)

	const n = 20
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	results := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := f.orders.NextOrderNumber(now)
			if err != nil {
				t.Errorf("NextOrderNumber: %v", err)
				return
			}
			results <- num
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for num := range results {
		if seen[num] {
			t.Errorf("duplicate order number %s", num)
		}
		seen[num] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d unique numbers, want %d", len(seen), n)
	}
	if !seen[fmt.Sprintf("ORD20240315%03d", n)] {
		t.Errorf("highest sequence %03d was never issued", n)
	}
}

func TestBuildPricing(t *testing.T) {
	f := newFixture(t)
	burger := f.addMenuItem(t, "Burger", 100, entity.CategoryBurger)
	drink := f.addMenuItem(t, "Cola", 50, entity.CategoryDrink)
	table := f.addTable(t, "T1")

	order, err := f.orders.Build(&CreateOrderIn{
		Type:    entity.DineIn,
		TableID: &table.ID,
		Items: []OrderItemIn{
			{MenuItemID: burger.ID, Quantity: 1},
			{MenuItemID: drink.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if order.Subtotal != 150 {
		t.Errorf("subtotal = %v, want 150", order.Subtotal)
	}
	if order.Tax != 15 {
		t.Errorf("tax = %v, want 15", order.Tax)
	}
	if order.DeliveryCharge != 0 {
		t.Errorf("deliveryCharge = %v, want 0 for dine-in", order.DeliveryCharge)
	}
	if order.Total != 165 {
		t.Errorf("total = %v, want 165", order.Total)
	}
	want := order.Subtotal + order.Tax + order.DeliveryCharge - order.Discount
	if order.Total != want {
		t.Errorf("total identity broken: %v != %v", order.Total, want)
	}
}

func TestBuildDeliveryCharge(t *testing.T) {
	f := newFixture(t)
	burger := f.addMenuItem(t, "Burger", 100, entity.CategoryBurger)

	order, err := f.orders.Build(&CreateOrderIn{
		Type:  entity.Delivery,
		Items: []OrderItemIn{{MenuItemID: burger.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if order.DeliveryCharge != 50 {
		t.Errorf("deliveryCharge = %v, want 50", order.DeliveryCharge)
	}
	if order.Total != 160 { // 100 + 10 tax + 50 delivery
		t.Errorf("total = %v, want 160", order.Total)
	}
}

func TestBuildCustomizationSurcharge(t *testing.T) {
	f := newFixture(t)
	burger := f.addMenuItem(t, "Burger", 100, entity.CategoryBurger)

	order, err := f.orders.Build(&CreateOrderIn{
		Type: entity.TakeAway,
		Items: []OrderItemIn{{
			MenuItemID: burger.ID,
			Quantity:   2,
			Customizations: []entity.Customization{
				{Name: "cheese", Value: "extra", AdditionalPrice: 10},
			},
		}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// 100*2 + 10 surcharge per line, not per unit.
	if order.Subtotal != 210 {
		t.Errorf("subtotal = %v, want 210", order.Subtotal)
	}
	if order.Total != 231 {
		t.Errorf("total = %v, want 231", order.Total)
	}
}

func TestBuildCapturesMenuSnapshot(t *testing.T) {
	f := newFixture(t)
	burger := f.addMenuItem(t, "Burger", 100, entity.CategoryBurger)

	order, err := f.orders.Build(&CreateOrderIn{
		Type:  entity.TakeAway,
		Items: []OrderItemIn{{MenuItemID: burger.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	it := order.Items[0]
	if it.Name != "Burger" || it.Price != 100 || it.Category != entity.CategoryBurger {
		t.Errorf("captured item = %+v, want name/price/category from the menu", it)
	}
}

func TestBuildValidation(t *testing.T) {
	f := newFixture(t)
	burger := f.addMenuItem(t, "Burger", 100, entity.CategoryBurger)

	tests := []struct {
		name string
		in   CreateOrderIn
		want error
	}{
		{
			name: "dine-in without table",
			in:   CreateOrderIn{Type: entity.DineIn, Items: []OrderItemIn{{MenuItemID: burger.ID, Quantity: 1}}},
			want: apperr.ErrValidation,
		},
		{
			name: "unknown order type",
			in:   CreateOrderIn{Type: "pickup", Items: []OrderItemIn{{MenuItemID: burger.ID, Quantity: 1}}},
			want: apperr.ErrValidation,
		},
		{
			name: "no items",
			in:   CreateOrderIn{Type: entity.TakeAway},
			want: apperr.ErrValidation,
		},
		{
			name: "zero quantity",
			in:   CreateOrderIn{Type: entity.TakeAway, Items: []OrderItemIn{{MenuItemID: burger.ID, Quantity: 0}}},
			want: apperr.ErrValidation,
		},
		{
			name: "unknown menu item",
			in:   CreateOrderIn{Type: entity.TakeAway, Items: []OrderItemIn{{MenuItemID: 9999, Quantity: 1}}},
			want: apperr.ErrNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.orders.Build(&tc.in)
			if !errors.Is(err, tc.want) {
				t.Errorf("Build() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBuildUnavailableItem(t *testing.T) {
	f := newFixture(t)

	off := false
	hidden, err := f.menu.Create(&MenuItemIn{Name: "Special", Price: 90, Category: entity.CategoryOther, IsAvailable: &off})
	if err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	_, err = f.orders.Build(&CreateOrderIn{
		Type:  entity.TakeAway,
		Items: []OrderItemIn{{MenuItemID: hidden.ID, Quantity: 1}},
	})
	if !errors.Is(err, apperr.ErrItemUnavailable) {
		t.Errorf("unavailable flag: error = %v, want %v", err, apperr.ErrItemUnavailable)
	}

	soup := f.addMenuItem(t, "Soup", 70, entity.CategoryOther)
	future := time.Now().UTC().Add(2 * time.Hour)
	if err := f.db.Model(&entity.MenuItem{}).Where("id = ?", soup.ID).Update("out_of_stock_until", future).Error; err != nil {
		t.Fatalf("mark out of stock: %v", err)
	}
	_, err = f.orders.Build(&CreateOrderIn{
		Type:  entity.TakeAway,
		Items: []OrderItemIn{{MenuItemID: soup.ID, Quantity: 1}},
	})
	if !errors.Is(err, apperr.ErrItemUnavailable) {
		t.Errorf("out of stock: error = %v, want %v", err, apperr.ErrItemUnavailable)
	}
}

func TestTransitionMatrix(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		from, to entity.OrderStatus
		ok       bool
	}{
		{entity.OrderPending, entity.OrderProcessing, true},
		{entity.OrderPending, entity.OrderReady, true}, // skipping ahead is allowed
		{entity.OrderPending, entity.OrderServed, true},
		{entity.OrderPending, entity.OrderCancelled, true},
		{entity.OrderPending, entity.OrderPending, false},
		{entity.OrderProcessing, entity.OrderPending, false},
		{entity.OrderProcessing, entity.OrderReady, true},
		{entity.OrderReady, entity.OrderProcessing, false},
		{entity.OrderReady, entity.OrderServed, true},
		{entity.OrderServed, entity.OrderCancelled, false},
		{entity.OrderServed, entity.OrderServed, false},
		{entity.OrderCancelled, entity.OrderProcessing, false},
		{entity.OrderCancelled, entity.OrderCancelled, false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s_to_%s", tc.from, tc.to), func(t *testing.T) {
			o := &entity.Order{Status: tc.from, IsActive: true}
			err := f.orders.Transition(o, tc.to)
			if tc.ok && err != nil {
				t.Errorf("Transition(%s -> %s) = %v, want nil", tc.from, tc.to, err)
			}
			if !tc.ok {
				if !errors.Is(err, apperr.ErrInvalidTransition) {
					t.Errorf("Transition(%s -> %s) = %v, want %v", tc.from, tc.to, err, apperr.ErrInvalidTransition)
				}
				if o.Status != tc.from {
					t.Errorf("status mutated to %s on rejected transition", o.Status)
				}
			}
		})
	}
}

func TestTransitionTimestamps(t *testing.T) {
	f := newFixture(t)

	t.Run("ready backfills cooking start from accepted", func(t *testing.T) {
		o := &entity.Order{Status: entity.OrderPending, IsActive: true}
		if err := f.orders.Transition(o, entity.OrderProcessing); err != nil {
			t.Fatalf("to processing: %v", err)
		}
		if o.AcceptedAt == nil {
			t.Fatal("AcceptedAt not stamped")
		}
		if err := f.orders.Transition(o, entity.OrderReady); err != nil {
			t.Fatalf("to ready: %v", err)
		}
		if o.ReadyAt == nil {
			t.Fatal("ReadyAt not stamped")
		}
		if o.StartedCookingAt == nil || !o.StartedCookingAt.Equal(*o.AcceptedAt) {
			t.Errorf("StartedCookingAt = %v, want backfilled from AcceptedAt %v", o.StartedCookingAt, o.AcceptedAt)
		}
		if o.CookingDuration() == nil {
			t.Error("cooking duration not computable after ready")
		}
	})

	t.Run("ready without accepted backfills from now", func(t *testing.T) {
		o := &entity.Order{Status: entity.OrderPending, IsActive: true}
		if err := f.orders.Transition(o, entity.OrderReady); err != nil {
			t.Fatalf("to ready: %v", err)
		}
		if o.StartedCookingAt == nil || !o.StartedCookingAt.Equal(*o.ReadyAt) {
			t.Errorf("StartedCookingAt = %v, want ReadyAt %v", o.StartedCookingAt, o.ReadyAt)
		}
	})

	t.Run("cancelled deactivates", func(t *testing.T) {
		o := &entity.Order{Status: entity.OrderProcessing, IsActive: true}
		if err := f.orders.Transition(o, entity.OrderCancelled); err != nil {
			t.Fatalf("to cancelled: %v", err)
		}
		if o.IsActive {
			t.Error("order still active after cancellation")
		}
	})

	t.Run("served stamps servedAt", func(t *testing.T) {
		o := &entity.Order{Status: entity.OrderReady, IsActive: true, OrderedAt: time.Now().UTC()}
		if err := f.orders.Transition(o, entity.OrderServed); err != nil {
			t.Fatalf("to served: %v", err)
		}
		if o.ServedAt == nil {
			t.Error("ServedAt not stamped")
		}
		if o.TotalDuration() == nil {
			t.Error("total duration not computable after served")
		}
	})
}
