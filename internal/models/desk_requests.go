package models

type CreateDeskRequestBody struct {
	Name string `json:"name"`
}

type UpdateDeskRequestBody struct {
	Name string `json:"name"`
}

type ShareDeskRequestBody struct {
	UserID string `json:"user_id"`
}
