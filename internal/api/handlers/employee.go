package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"employee_web/internal/repository"
	"employee_web/internal/service"
)

// EmployeeHandler 處理員工通訊錄相關的請求
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler 創建一個新的 EmployeeHandler 實例
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Dashboard 渲染員工列表頁
func (h *EmployeeHandler) Dashboard(c *gin.Context) {
	employees, err := h.employeeService.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Flash":     PopFlash(c),
		"Employees": employees,
	})
}

// Add 處理新增員工的請求
func (h *EmployeeHandler) Add(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	department := c.PostForm("department")

	result, err := h.employeeService.Add(name, email, department)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	SetFlash(c, result)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowUpdate 渲染編輯表單，帶入目前的員工資料
func (h *EmployeeHandler) ShowUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "404 - 找不到該員工")
		return
	}

	employee, err := h.employeeService.Get(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "404 - 找不到該員工")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "update.html", gin.H{
		"Flash":    PopFlash(c),
		"Employee": employee,
	})
}

// Update 處理編輯員工的請求，覆寫全部欄位
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "404 - 找不到該員工")
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	department := c.PostForm("department")

	result, err := h.employeeService.Update(uint(id), name, email, department)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "404 - 找不到該員工")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	SetFlash(c, result)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Delete 處理刪除員工的請求
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "404 - 找不到該員工")
		return
	}

	result, err := h.employeeService.Delete(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "404 - 找不到該員工")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	SetFlash(c, result)
	c.Redirect(http.StatusFound, "/dashboard")
}
