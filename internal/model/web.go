package model

// Paging 分页元数据
type Paging struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalPage   int `json:"total_page"`
}

// WebResponse 统一响应信封
type WebResponse struct {
	Data   interface{} `json:"data,omitempty"`
	Errors string      `json:"errors,omitempty"`
	Paging *Paging     `json:"paging,omitempty"`
}
