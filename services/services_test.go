package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"dineboard/entity"
	"dineboard/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Table{},
		&entity.Chef{}, &entity.ChefAssignment{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderSequence{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// recordingSink collects published envelopes for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []Envelope
}

func (r *recordingSink) Publish(env Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, env)
	return nil
}

func (r *recordingSink) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Event)
	}
	return out
}

func (r *recordingSink) has(event string) bool {
	for _, n := range r.names() {
		if n == event {
			return true
		}
	}
	return false
}

type fixture struct {
	db          *gorm.DB
	sink        *recordingSink
	menu        *MenuService
	tables      *TableService
	chefs       *ChefService
	orders      *OrderService
	fulfillment *FulfillmentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testDB(t)
	sink := &recordingSink{}

	menu := NewMenuService(repository.NewMenuRepository(db))
	tables := NewTableService(repository.NewTableRepository(db), sink)
	chefs := NewChefService(db, repository.NewChefRepository(db))
	orders := NewOrderService(db, repository.NewOrderRepository(db), repository.NewSequenceRepository(db), menu, 0.10, 50)
	fulfillment := NewFulfillmentService(db, orders, tables, chefs, sink)

	return &fixture{
		db:          db,
		sink:        sink,
		menu:        menu,
		tables:      tables,
		chefs:       chefs,
		orders:      orders,
		fulfillment: fulfillment,
	}
}

func (f *fixture) addMenuItem(t *testing.T, name string, price float64, category entity.MenuCategory) *entity.MenuItem {
	t.Helper()
	item, err := f.menu.Create(&MenuItemIn{Name: name, Price: price, Category: category})
	if err != nil {
		t.Fatalf("create menu item %s: %v", name, err)
	}
	return item
}

func (f *fixture) addTable(t *testing.T, number string) *entity.Table {
	t.Helper()
	tb, err := f.tables.Create(&TableIn{TableNumber: number})
	if err != nil {
		t.Fatalf("create table %s: %v", number, err)
	}
	return tb
}

func (f *fixture) addChef(t *testing.T, name string, maxOrders int, rating float64, specialties ...entity.MenuCategory) *entity.Chef {
	t.Helper()
	chef, err := f.chefs.Create(&ChefIn{
		Name:                name,
		Email:               strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@test.local",
		Phone:               "555-0000",
		MaxConcurrentOrders: maxOrders,
		Specialties:         specialties,
	})
	if err != nil {
		t.Fatalf("create chef %s: %v", name, err)
	}
	if rating > 0 {
		err := f.db.Model(&entity.Chef{}).Where("id = ?", chef.ID).
			Updates(map[string]any{"rating_avg": rating, "rating_count": 10}).Error
		if err != nil {
			t.Fatalf("set rating: %v", err)
		}
		chef.RatingAvg = rating
		chef.RatingCount = 10
	}
	return chef
}

func (f *fixture) reloadChef(t *testing.T, id uint) *entity.Chef {
	t.Helper()
	chef, err := f.chefs.Get(id)
	if err != nil {
		t.Fatalf("reload chef %d: %v", id, err)
	}
	return chef
}

func (f *fixture) reloadTable(t *testing.T, id uint) *entity.Table {
	t.Helper()
	tb, err := f.tables.Get(id)
	if err != nil {
		t.Fatalf("reload table %d: %v", id, err)
	}
	return tb
}

func (f *fixture) reloadOrder(t *testing.T, id uint) *entity.Order {
	t.Helper()
	o, err := f.orders.Get(id)
	if err != nil {
		t.Fatalf("reload order %d: %v", id, err)
	}
	return o
}
