package dto

// Res is the uniform success envelope. Pagination fields are present only on
// list responses.
type Res struct {
	Data  interface{} `json:"data"`
	Total *int64      `json:"total,omitempty"`
	Page  *int        `json:"page,omitempty"`
	Limit *int        `json:"limit,omitempty"`
}

// ResErr is the uniform failure envelope.
type ResErr struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func NewRes(data interface{}) Res {
	return Res{Data: data}
}

func NewPagedRes(data interface{}, total int64, page, limit int) Res {
	return Res{Data: data, Total: &total, Page: &page, Limit: &limit}
}

func NewResErr(statusCode int, message string) ResErr {
	return ResErr{StatusCode: statusCode, Message: message}
}
