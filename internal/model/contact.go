package model

// Contact 结构体表示联系人模型，归属于一个用户
type Contact struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Username  string `json:"-"` // 所属用户，不对外暴露
}

// CreateContactRequest 创建联系人请求
type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateContactRequest 更新联系人请求，ID 来自路由参数
type UpdateContactRequest struct {
	ID        int    `json:"-" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// SearchContactRequest 搜索联系人请求，所有过滤条件可选
type SearchContactRequest struct {
	Name    string `json:"name" validate:"omitempty,max=100"`
	Email   string `json:"email" validate:"omitempty,max=100"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Page    int    `json:"page" validate:"gte=1"`
	PerPage int    `json:"per_page" validate:"gte=1"`
}

// ContactFilters 传递给仓库层的搜索条件，空字段不参与过滤
type ContactFilters struct {
	Name  string
	Email string
	Phone string
}

// ContactResponse 联系人响应，可选字段为空时省略
type ContactResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ToContactResponse 将联系人实体转换为响应结构
func ToContactResponse(contact *Contact) *ContactResponse {
	return &ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
