package controllers

import (
	"github.com/gin-gonic/gin"

	"gainsystem/internal/models/request_models"
	"gainsystem/internal/services"
	"gainsystem/pkg/utils"
)

type BusinessController struct {
	service services.BusinessService
}

func NewBusinessController(service services.BusinessService) *BusinessController {
	return &BusinessController{service: service}
}

func (ctrl *BusinessController) GetScopeTypes(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	nodes, err := ctrl.service.GetScopeTypes(sess)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nodes, "")
}

func (ctrl *BusinessController) CreateBusiness(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.CreateBusinessRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.CreateBusiness(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) UpdateBusiness(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.UpdateBusinessRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.UpdateBusiness(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) DeleteBusiness(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.DeleteBusinessRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.DeleteBusiness(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) CreateRole(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.CreateRoleRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.CreateRole(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) UpdateRole(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.UpdateRoleRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.UpdateRole(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) DeleteRole(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.DeleteRoleRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.DeleteRole(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) AddTeamMember(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.AddTeamMemberRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.AddTeamMember(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) UpdateTeamMember(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.UpdateTeamMemberRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.UpdateTeamMember(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) GetTeam(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.BusinessTeamRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.GetTeam(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) DeleteTeamMember(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.DeleteTeamMemberRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.DeleteTeamMember(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) AddClient(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.AddClientRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.AddClient(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) UpdateClient(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.UpdateClientRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.UpdateClient(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) DeleteClient(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.DeleteClientRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.DeleteClient(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) GetClients(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}

	nodes, err := ctrl.service.GetClients(sess)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nodes, "")
}

func (ctrl *BusinessController) AddClientAttribute(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.AddClientAttributeRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.AddClientAttribute(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) UpdateClientAttribute(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.UpdateClientAttributeRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.UpdateClientAttribute(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *BusinessController) DeleteClientAttribute(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.DeleteClientAttributeRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.DeleteClientAttribute(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}
