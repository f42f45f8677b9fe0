package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dzhusipov/fleet-core/internal/apierror"
	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/service"
)

type NotificationsHandler struct{ svc *service.NotificationService }

func NewNotificationsHandler(svc *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

func (h *NotificationsHandler) List(c *gin.Context) {
	var filter dto.NotificationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	uid := currentUserID(c)
	resp, err := h.svc.ListForUser(c.Request.Context(), *uid, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationsHandler) UnreadCount(c *gin.Context) {
	uid := currentUserID(c)
	resp, err := h.svc.UnreadCount(c.Request.Context(), *uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	uid := currentUserID(c)
	if err := h.svc.MarkRead(c.Request.Context(), *uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationsHandler) MarkAllRead(c *gin.Context) {
	uid := currentUserID(c)
	if err := h.svc.MarkAllRead(c.Request.Context(), *uid); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationsHandler) Preferences(c *gin.Context) {
	uid := currentUserID(c)
	resp, err := h.svc.Preferences(c.Request.Context(), *uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationsHandler) UpdatePreferences(c *gin.Context) {
	var req dto.NotificationPreferences
	if !bindAndValidate(c, &req) {
		return
	}
	uid := currentUserID(c)
	resp, err := h.svc.UpdatePreferences(c.Request.Context(), *uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
