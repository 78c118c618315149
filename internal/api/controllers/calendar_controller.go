package controllers

import (
	"github.com/gin-gonic/gin"

	"gainsystem/internal/models/request_models"
	"gainsystem/internal/services"
	"gainsystem/pkg/utils"
)

type CalendarController struct {
	service services.CalendarService
}

func NewCalendarController(service services.CalendarService) *CalendarController {
	return &CalendarController{service: service}
}

func (ctrl *CalendarController) CreateEvent(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.CreateEventRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.CreateEvent(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *CalendarController) UpdateEvent(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.UpdateEventRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.UpdateEvent(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *CalendarController) DeleteEvent(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.DeleteEventRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.DeleteEvent(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *CalendarController) DeleteParticipant(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.DeleteParticipantRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.DeleteParticipant(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *CalendarController) GetEvents(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.GetEventsRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.GetEvents(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}
