package handler

import (
	"errors"
	"net/http"

	"github.com/copool/chat-service/internal/dto"
	"github.com/copool/chat-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	messages     service.MessageService
	participants service.ParticipantService
}

func NewChatHandler(messages service.MessageService, participants service.ParticipantService) *ChatHandler {
	return &ChatHandler{messages: messages, participants: participants}
}

func (h *ChatHandler) RegisterRoutes(e *echo.Echo) {
	rides := e.Group("/api/v1/rides")
	rides.POST("/:id/messages", h.PostMessage)
	rides.GET("/:id/messages", h.ListMessages)
	rides.GET("/:id/participants", h.GetParticipants)
}

func (h *ChatHandler) PostMessage(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ride id")
	}

	var req dto.PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.SenderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sender_id is required")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	msg, err := h.messages.PostMessage(c.Request().Context(), rideID, req.SenderID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRideNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrChatClosed):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrChatUnauthorized):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrRideLookup):
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "could not store message")
		}
	}

	return c.JSON(http.StatusCreated, dto.ToMessageResponse(msg))
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ride id")
	}
	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	msgs, err := h.messages.ListRideMessages(c.Request().Context(), userID, rideID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRideNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrChatClosed):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrChatUnauthorized):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrRideLookup):
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "could not load messages")
		}
	}

	resp := make([]dto.MessageResponse, len(msgs))
	for i, m := range msgs {
		resp[i] = dto.ToRideMessageResponse(m.Message, m.IsDriver)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) GetParticipants(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ride id")
	}

	participants, err := h.participants.GetRideParticipants(c.Request().Context(), rideID)
	if err != nil {
		if errors.Is(err, service.ErrRideNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load participants")
	}

	resp := make([]dto.ParticipantResponse, len(participants))
	for i, p := range participants {
		resp[i] = dto.ParticipantResponse{
			ID:       p.ID,
			Name:     p.Name,
			Email:    p.Email,
			IsDriver: p.IsDriver,
		}
	}

	return c.JSON(http.StatusOK, resp)
}
