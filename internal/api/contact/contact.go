package contact

import (
	"net/http"
	"strconv"

	"contactbook-backend/internal/errors"
	"contactbook-backend/internal/middleware"
	"contactbook-backend/internal/model"
	"contactbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler 处理与联系人相关的HTTP请求
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler 创建一个新的 ContactHandler 实例
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService}
}

// contactIDParam 解析路由中的联系人ID
func contactIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("contactId"))
	if err != nil || id < 1 {
		return 0, errors.New(errors.ErrBadRequest, "invalid contact id")
	}
	return id, nil
}

// Create 处理创建联系人请求
func (h *ContactHandler) Create(c *gin.Context) {
	var request model.CreateContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid request body"))
		return
	}

	response, err := h.contactService.Create(c.Request.Context(), middleware.CurrentUser(c), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusCreated, response)
}

// Get 处理查询单个联系人请求
func (h *ContactHandler) Get(c *gin.Context) {
	contactID, err := contactIDParam(c)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	response, err := h.contactService.Get(c.Request.Context(), middleware.CurrentUser(c), contactID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, response)
}

// Update 处理更新联系人请求
func (h *ContactHandler) Update(c *gin.Context) {
	contactID, err := contactIDParam(c)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	var request model.UpdateContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid request body"))
		return
	}
	request.ID = contactID

	response, err := h.contactService.Update(c.Request.Context(), middleware.CurrentUser(c), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, response)
}

// Remove 处理删除联系人请求
func (h *ContactHandler) Remove(c *gin.Context) {
	contactID, err := contactIDParam(c)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.contactService.Remove(c.Request.Context(), middleware.CurrentUser(c), contactID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, true)
}

// Search 处理联系人搜索请求，过滤条件和分页参数均来自查询串
func (h *ContactHandler) Search(c *gin.Context) {
	request := model.SearchContactRequest{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
	}

	if value := c.Query("page"); value != "" {
		page, err := strconv.Atoi(value)
		if err != nil {
			errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid page"))
			return
		}
		request.Page = page
	}
	if value := c.Query("per_page"); value != "" {
		perPage, err := strconv.Atoi(value)
		if err != nil {
			errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid per_page"))
			return
		}
		request.PerPage = perPage
	}

	responses, paging, err := h.contactService.Search(c.Request.Context(), middleware.CurrentUser(c), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccessWithPaging(c, responses, paging)
}
