package controllers

import (
	"strconv"

	"dineboard/entity"
	"dineboard/pkg/resp"
	"dineboard/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

func (ct *MenuController) List(c *gin.Context) {
	var category *entity.MenuCategory
	if v := c.Query("category"); v != "" {
		cat := entity.MenuCategory(v)
		category = &cat
	}
	items, err := ct.Menu.List(category)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

func (ct *MenuController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := ct.Menu.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

func (ct *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ct.Menu.Create(&in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

func (ct *MenuController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ct.Menu.Update(id, &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

func (ct *MenuController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.Menu.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// idParam parses the :id path segment, answering 400 itself on garbage.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
