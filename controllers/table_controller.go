package controllers

import (
	"dineboard/entity"
	"dineboard/pkg/resp"
	"dineboard/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

func (ct *TableController) List(c *gin.Context) {
	var status *entity.TableStatus
	if v := c.Query("status"); v != "" {
		st := entity.TableStatus(v)
		status = &st
	}
	tables, err := ct.Tables.List(status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

func (ct *TableController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := ct.Tables.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

func (ct *TableController) Create(c *gin.Context) {
	var in services.TableIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ct.Tables.Create(&in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, t)
}

func (ct *TableController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.TableIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ct.Tables.Update(id, &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

func (ct *TableController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.Tables.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

func (ct *TableController) Reserve(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var details entity.Reservation
	if err := c.ShouldBindJSON(&details); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ct.Tables.Reserve(id, details)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

func (ct *TableController) Free(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := ct.Tables.Free(nil, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}
