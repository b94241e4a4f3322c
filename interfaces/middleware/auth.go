package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/logger"
)

// Auth validates the Bearer token, confirms the user still exists in the user
// directory and stores the caller's id under "user_id" in the gin context.
func Auth(userRepository repository.IUser) gin.HandlerFunc {
	unauthorized := dto.NewResErr(http.StatusUnauthorized, "user not authenticated")

	return func(ctx *gin.Context) {
		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}
		auth := strings.Split(authorization, "Bearer ")
		if len(auth) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}

		var userClaims model.UserClaims
		token, err := jwt.ParseWithClaims(
			auth[1],
			&userClaims,
			func(token *jwt.Token) (interface{}, error) {
				return []byte(configuration.C.App.SecretKey), nil
			},
		)
		if err != nil || !token.Valid {
			logger.GetLogger().WithField("error", err).Info("Rejected token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}

		user, err := userRepository.GetByUserName(ctx.Request.Context(), userClaims.UserName)
		if err != nil || user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}

		ctx.Set("user_id", userClaims.Issuer)
		ctx.Next()
	}
}
