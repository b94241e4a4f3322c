package usecase

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/utils"
)

type IUserUsecase interface {
	Login(ctx context.Context, req dto.ReqLogin) (dto.ResLogin, error)
	Register(ctx context.Context, req dto.ReqRegister) (*model.User, error)
}

type UserUsecase struct {
	userRepo repository.IUser
}

func NewUserUsecase(userRepo repository.IUser) IUserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

func (u *UserUsecase) Login(ctx context.Context, req dto.ReqLogin) (dto.ResLogin, error) {
	user, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching user")
		return dto.ResLogin{}, apperror.NewUpstream("failed to log in", err)
	}
	if user == nil || user.Password != digest(req.Password) {
		return dto.ResLogin{}, apperror.NewAuth("invalid user name or password")
	}

	token, err := utils.GenerateToken(map[string]interface{}{
		"iss":       user.ID.Hex(),
		"user_name": user.UserName,
		"exp":       utils.GetCurrentTime().Add(24 * time.Hour).Unix(),
	}, configuration.C.App.SecretKey)
	if err != nil {
		return dto.ResLogin{}, apperror.NewUpstream("failed to log in", err)
	}
	return dto.ResLogin{Token: token}, nil
}

func (u *UserUsecase) Register(ctx context.Context, req dto.ReqRegister) (*model.User, error) {
	existing, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching user")
		return nil, apperror.NewUpstream("failed to register", err)
	}
	if existing != nil {
		return nil, apperror.NewValidation("user name already taken")
	}

	user, err := u.userRepo.Create(ctx, model.User{
		UserName: req.UserName,
		Name:     req.Name,
		Email:    req.Email,
		Password: digest(req.Password),
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		return nil, apperror.NewUpstream("failed to register", err)
	}
	return user, nil
}

func digest(password string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(password)))
}
