package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	statusOK         = "OK"
	statusBadRequest = "Bad Request"
	statusInternal   = "Internal Server Error!"

	msgInternal      = "Internal Server Error!"
	msgInvalidUserID = "Invalid user ID"
	msgInvalidBody   = "Invalid request payload"
)

// Response is the envelope every API endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`         // short message for humans
	Data    any    `json:"data,omitempty"`  // actual payload (can be nil)
	Error   string `json:"error,omitempty"` // error detail (if any)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type DeletedUser struct {
	DeletedID int64 `json:"deletedId"`
}
