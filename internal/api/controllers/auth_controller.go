package controllers

import (
	"github.com/gin-gonic/gin"

	"gainsystem/internal/models/request_models"
	"gainsystem/internal/services"
	"gainsystem/pkg/utils"
)

type AuthController struct {
	service services.AuthService
}

func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	req, ok := bindJSON[request_models.RegistrationRequest](c)
	if !ok {
		return
	}
	sess, ok := session(c)
	if !ok {
		return
	}

	node, err := ctrl.service.Register(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *AuthController) Authenticate(c *gin.Context) {
	req, ok := bindJSON[request_models.AuthenticationRequest](c)
	if !ok {
		return
	}
	sess, ok := session(c)
	if !ok {
		return
	}

	node, err := ctrl.service.Authenticate(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *AuthController) ThirdPartyAuthenticate(c *gin.Context) {
	req, ok := bindJSON[request_models.ThirdPartyRequest](c)
	if !ok {
		return
	}
	sess, ok := session(c)
	if !ok {
		return
	}

	node, err := ctrl.service.ThirdPartyAuthenticate(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *AuthController) Refresh(c *gin.Context) {
	req, ok := bindJSON[request_models.RefreshRequest](c)
	if !ok {
		return
	}
	sess, ok := session(c)
	if !ok {
		return
	}

	node, err := ctrl.service.Refresh(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *AuthController) GetMe(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}

	node, err := ctrl.service.GetMe(sess)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}

func (ctrl *AuthController) UpdateUser(c *gin.Context) {
	sess, ok := authedSession(c)
	if !ok {
		return
	}
	req, ok := bindJSON[request_models.UpdateUserRequest](c)
	if !ok {
		return
	}

	node, err := ctrl.service.UpdateUser(sess, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, node, "")
}
