package model

// Address 结构体表示地址模型，归属于一个联系人
type Address struct {
	ID         int    `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	ContactID  int    `json:"-"` // 所属联系人
}

// CreateAddressRequest 创建地址请求，ContactID 来自路由参数
type CreateAddressRequest struct {
	ContactID  int    `json:"-" validate:"required,gt=0"`
	Street     string `json:"street" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// UpdateAddressRequest 更新地址请求，ID 和 ContactID 来自路由参数
type UpdateAddressRequest struct {
	ID         int    `json:"-" validate:"required,gt=0"`
	ContactID  int    `json:"-" validate:"required,gt=0"`
	Street     string `json:"street" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// GetAddressRequest 查询单个地址的请求
type GetAddressRequest struct {
	ContactID int `validate:"required,gt=0"`
	AddressID int `validate:"required,gt=0"`
}

// RemoveAddressRequest 删除地址的请求
type RemoveAddressRequest struct {
	ContactID int `validate:"required,gt=0"`
	AddressID int `validate:"required,gt=0"`
}

// AddressResponse 地址响应，可选字段为空时省略
type AddressResponse struct {
	ID         int    `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// ToAddressResponse 将地址实体转换为响应结构
func ToAddressResponse(address *Address) *AddressResponse {
	return &AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
