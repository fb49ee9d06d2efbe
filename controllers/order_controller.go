package controllers

import (
	"strconv"

	"dineboard/entity"
	"dineboard/pkg/resp"
	"dineboard/repository"
	"dineboard/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders      *services.OrderService
	Fulfillment *services.FulfillmentService
}

func NewOrderController(orders *services.OrderService, fulfillment *services.FulfillmentService) *OrderController {
	return &OrderController{Orders: orders, Fulfillment: fulfillment}
}

func (ct *OrderController) List(c *gin.Context) {
	var f repository.OrderFilter
	if v := c.Query("status"); v != "" {
		st := entity.OrderStatus(v)
		f.Status = &st
	}
	if v := c.Query("orderType"); v != "" {
		t := entity.OrderType(v)
		f.Type = &t
	}
	if v := c.Query("table"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			u := uint(id)
			f.TableID = &u
		}
	}
	if v := c.Query("chef"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			u := uint(id)
			f.ChefID = &u
		}
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))

	orders, total, err := ct.Orders.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"orders": orders,
		"pagination": gin.H{
			"page":  f.Page,
			"limit": f.Limit,
			"total": total,
		},
	})
}

func (ct *OrderController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := ct.Orders.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

func (ct *OrderController) Create(c *gin.Context) {
	var in services.CreateOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ct.Fulfillment.CreateOrder(&in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

func (ct *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ct.Fulfillment.UpdateStatus(id, body.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

func (ct *OrderController) AssignChef(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var body struct {
		ChefID   uint            `json:"chefId" binding:"required"`
		Priority entity.Priority `json:"priority"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ct.Fulfillment.AssignChef(id, body.ChefID, body.Priority)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

func (ct *OrderController) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := ct.Fulfillment.Cancel(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
