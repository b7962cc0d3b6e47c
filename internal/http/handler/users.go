package handler

import (
	"net/http"
	"usermgmt/internal/http/payload"

	"go.uber.org/zap"
)

var (
	CreateUser  = "POST /createUser"
	GetUsers    = "GET /users"
	GetUserByID = "GET /userById/{id}"
	UpdateUser  = "PUT /updateUser/{id}"
	DeleteUser  = "DELETE /deleteUser/{id}"
)

// UserHandler serves the user CRUD endpoints. Every failure after the
// request has been parsed is answered with 500, missing users included.
type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	users            UserService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		users:            userService,
	}
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, prefix string) {
	mux.HandleFunc(withPrefix(CreateUser, prefix), h.HandleCreateUser)
	mux.HandleFunc(withPrefix(GetUsers, prefix), h.HandleGetUsers)
	mux.HandleFunc(withPrefix(GetUserByID, prefix), h.HandleGetUserByID)
	mux.HandleFunc(withPrefix(UpdateUser, prefix), h.HandleUpdateUser)
	mux.HandleFunc(withPrefix(DeleteUser, prefix), h.HandleDeleteUser)
}

func (h *UserHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var body payload.UserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		respond(h.logs, w, Response{
			Status:  statusBadRequest,
			Message: msgInvalidBody,
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	user, err := h.users.CreateUser(r.Context(), body.Username)
	if err != nil {
		respond(h.logs, w, Response{
			Status:  statusInternal,
			Message: msgInternal,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create user",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Status:  statusOK,
		Message: "Successfully created User.",
		Data:    user,
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		respond(h.logs, w, Response{
			Status:  statusInternal,
			Message: msgInternal,
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get all users",
			"error", err,
			"handler", GetUsers,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Status:  statusOK,
		Message: "Successfully fetched all users!",
		Data:    users,
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleGetUserByID(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	userID := payload.UserIDOrZero(r.PathValue("id"))

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		respond(h.logs, w, Response{
			Status:  statusInternal,
			Message: msgInternal,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get user by id",
			"error", err,
			"user_id", userID,
			"handler", GetUserByID,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Status:  statusOK,
		Message: "Successfully fetched user by id!",
		Data:    user,
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, err := payload.ParseUserID(r.PathValue("id"))
	if err != nil {
		respond(h.logs, w, Response{
			Status:  statusBadRequest,
			Message: msgInvalidUserID,
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid user id",
			"error", err,
			"handler", UpdateUser,
			"request_id", requestId)
		return
	}

	var body payload.UserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		respond(h.logs, w, Response{
			Status:  statusBadRequest,
			Message: msgInvalidBody,
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", UpdateUser,
			"request_id", requestId)
		return
	}

	user, err := h.users.UpdateUser(r.Context(), userID, body.Username)
	if err != nil {
		respond(h.logs, w, Response{
			Status:  statusInternal,
			Message: msgInternal,
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to update user",
			"error", err,
			"user_id", userID,
			"handler", UpdateUser,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Status:  statusOK,
		Message: "Successfully updated User.",
		Data:    user,
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	userID := payload.UserIDOrZero(r.PathValue("id"))

	if err := h.users.DeleteUser(r.Context(), userID); err != nil {
		respond(h.logs, w, Response{
			Status:  statusInternal,
			Message: msgInternal,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to delete user",
			"error", err,
			"user_id", userID,
			"handler", DeleteUser,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Status:  statusOK,
		Message: "Successfully deleted User.",
		Data:    DeletedUser{DeletedID: userID},
	}, http.StatusOK, requestId)
}
