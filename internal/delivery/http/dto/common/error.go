package common

type ErrorResponse struct {
	Error string `json:"error"`
}
