package controllers

import (
	"github.com/gin-gonic/gin"

	"gainsystem/internal/models/request_models"
	"gainsystem/internal/services"
	"gainsystem/pkg/utils"
)

type FinanceController struct {
	service services.FinanceService
}

func NewFinanceController(service services.FinanceService) *FinanceController {
	return &FinanceController{service: service}
}

func (ctrl *FinanceController) CreateTransaction(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.CreateTransactionRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.CreateTransaction(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *FinanceController) CreateTag(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.CreateTagRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.CreateTag(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *FinanceController) UpdateTag(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.UpdateTagRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.UpdateTag(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *FinanceController) DeleteTag(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.DeleteTagRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.DeleteTag(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *FinanceController) GetHistory(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.TransactionHistoryRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.GetHistory(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *FinanceController) GetTags(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.FinancialTagsRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.GetTags(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}
