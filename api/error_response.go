package api

const (
	statusOK    = "OK"
	statusError = "ERROR"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Status: statusError, Message: err.Error()}
}
