package routes

import (
	"dineboard/configs"
	"dineboard/controllers"
	"dineboard/repository"
	"dineboard/services"
	"dineboard/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, sink services.EventSink, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	chefRepo := repository.NewChefRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	seqRepo := repository.NewSequenceRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	tableSvc := services.NewTableService(tableRepo, sink)
	chefSvc := services.NewChefService(db, chefRepo)
	orderSvc := services.NewOrderService(db, orderRepo, seqRepo, menuSvc, cfg.TaxRate, cfg.DeliveryCharge)
	fulfillSvc := services.NewFulfillmentService(db, orderSvc, tableSvc, chefSvc, sink)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	chefCtrl := controllers.NewChefController(chefSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, fulfillSvc)

	// Real-time dashboard feed
	r.GET("/ws", hub.Serve)

	menu := r.Group("/menu")
	{
		menu.GET("", menuCtrl.List)
		menu.POST("", menuCtrl.Create)
		menu.GET("/:id", menuCtrl.Detail)
		menu.PUT("/:id", menuCtrl.Update)
		menu.DELETE("/:id", menuCtrl.Delete)
	}

	tables := r.Group("/tables")
	{
		tables.GET("", tableCtrl.List)
		tables.POST("", tableCtrl.Create)
		tables.GET("/:id", tableCtrl.Detail)
		tables.PUT("/:id", tableCtrl.Update)
		tables.DELETE("/:id", tableCtrl.Delete)
		tables.PUT("/:id/reserve", tableCtrl.Reserve)
		tables.PUT("/:id/free", tableCtrl.Free)
	}

	chefs := r.Group("/chefs")
	{
		chefs.GET("", chefCtrl.List)
		chefs.POST("", chefCtrl.Create)
		chefs.GET("/available/list", chefCtrl.AvailableList)
		chefs.GET("/:id", chefCtrl.Detail)
		chefs.PUT("/:id", chefCtrl.Update)
		chefs.DELETE("/:id", chefCtrl.Delete)
		chefs.PUT("/:id/status", chefCtrl.SetStatus)
		chefs.POST("/:id/rate", chefCtrl.Rate)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Create)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/status", orderCtrl.UpdateStatus)
		orders.PUT("/:id/assign-chef", orderCtrl.AssignChef)
		orders.DELETE("/:id", orderCtrl.Cancel)
	}
}
