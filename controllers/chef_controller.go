package controllers

import (
	"dineboard/entity"
	"dineboard/pkg/resp"
	"dineboard/services"

	"github.com/gin-gonic/gin"
)

type ChefController struct {
	Chefs *services.ChefService
}

func NewChefController(chefs *services.ChefService) *ChefController {
	return &ChefController{Chefs: chefs}
}

func (ct *ChefController) List(c *gin.Context) {
	var status *entity.ChefStatus
	if v := c.Query("status"); v != "" {
		st := entity.ChefStatus(v)
		status = &st
	}
	chefs, err := ct.Chefs.List(status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, chefs)
}

func (ct *ChefController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	chef, err := ct.Chefs.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, chef)
}

func (ct *ChefController) Create(c *gin.Context) {
	var in services.ChefIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	chef, err := ct.Chefs.Create(&in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, chef)
}

func (ct *ChefController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.ChefIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	chef, err := ct.Chefs.Update(id, &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, chef)
}

func (ct *ChefController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.Chefs.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

func (ct *ChefController) SetStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var body struct {
		Status entity.ChefStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	chef, err := ct.Chefs.SetStatus(id, body.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, chef)
}

func (ct *ChefController) AvailableList(c *gin.Context) {
	var specialty *entity.MenuCategory
	if v := c.Query("specialty"); v != "" {
		sp := entity.MenuCategory(v)
		specialty = &sp
	}
	chefs, err := ct.Chefs.ListAvailable(specialty)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, chefs)
}

func (ct *ChefController) Rate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var body struct {
		Rating float64 `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	chef, err := ct.Chefs.Rate(id, body.Rating)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, chef)
}
