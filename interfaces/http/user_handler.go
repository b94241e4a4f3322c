package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/infrastructure/logger"
	"vidtube/usecase"
)

type IUserHandler interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (userHandler *UserHandler) Login(c *gin.Context) {
	var req dto.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		writeErr(c, apperror.NewValidation("invalid request body"))
		return
	}

	res, err := userHandler.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRes(res))
}

func (userHandler *UserHandler) Register(c *gin.Context) {
	var req dto.ReqRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		writeErr(c, apperror.NewValidation("invalid request body"))
		return
	}

	user, err := userHandler.userUsecase.Register(c.Request.Context(), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRes(user))
}
