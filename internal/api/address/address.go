package address

import (
	"net/http"
	"strconv"

	"contactbook-backend/internal/errors"
	"contactbook-backend/internal/middleware"
	"contactbook-backend/internal/model"
	"contactbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressHandler 处理与地址相关的HTTP请求
type AddressHandler struct {
	addressService service.AddressServiceInterface
}

// NewAddressHandler 创建一个新的 AddressHandler 实例
func NewAddressHandler(addressService service.AddressServiceInterface) *AddressHandler {
	return &AddressHandler{addressService}
}

func pathParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, errors.New(errors.ErrBadRequest, "invalid "+name)
	}
	return id, nil
}

// Create 处理在联系人下创建地址的请求
func (h *AddressHandler) Create(c *gin.Context) {
	contactID, err := pathParam(c, "contactId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	var request model.CreateAddressRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid request body"))
		return
	}
	request.ContactID = contactID

	response, err := h.addressService.Create(c.Request.Context(), middleware.CurrentUser(c), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusCreated, response)
}

// Get 处理查询单个地址的请求
func (h *AddressHandler) Get(c *gin.Context) {
	contactID, err := pathParam(c, "contactId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	addressID, err := pathParam(c, "addressId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	request := model.GetAddressRequest{ContactID: contactID, AddressID: addressID}
	response, err := h.addressService.Get(c.Request.Context(), middleware.CurrentUser(c), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, response)
}

// List 处理查询联系人全部地址的请求
func (h *AddressHandler) List(c *gin.Context) {
	contactID, err := pathParam(c, "contactId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	responses, err := h.addressService.List(c.Request.Context(), middleware.CurrentUser(c), contactID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, responses)
}

// Update 处理更新地址请求
func (h *AddressHandler) Update(c *gin.Context) {
	contactID, err := pathParam(c, "contactId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	addressID, err := pathParam(c, "addressId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	var request model.UpdateAddressRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "invalid request body"))
		return
	}
	request.ID = addressID
	request.ContactID = contactID

	response, err := h.addressService.Update(c.Request.Context(), middleware.CurrentUser(c), request)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, response)
}

// Remove 处理删除地址请求
func (h *AddressHandler) Remove(c *gin.Context) {
	contactID, err := pathParam(c, "contactId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	addressID, err := pathParam(c, "addressId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	request := model.RemoveAddressRequest{ContactID: contactID, AddressID: addressID}
	if err := h.addressService.Remove(c.Request.Context(), middleware.CurrentUser(c), request); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, true)
}
