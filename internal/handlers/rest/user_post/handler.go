package user_post

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/service/user"
	"zapshift/pkg/logger"
)

const userExistsMessage = "user already exists"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var userCreateDTO dto.UserCreate
	err := response.DecodeJSON(w, r, &userCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := h.service.CreateUser(r.Context(), entities.UserModify{
		Email:    &userCreateDTO.Email,
		Name:     userCreateDTO.Name,
		PhotoURL: userCreateDTO.PhotoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserAlreadyExists):
			response.JSON(w, h.log, http.StatusOK, dto.InsertResult{Message: pointer.To(userExistsMessage)})
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidName):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("create user", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.InsertResult{InsertedId: pointer.To(created.ID.String())})
}
