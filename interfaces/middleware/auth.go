package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"playlist-grid/domain/dto"
	"playlist-grid/domain/model"
	"playlist-grid/infrastructure/logger"
)

// AdminTokenCookie lets a browser carry the admin token to the settings form
const AdminTokenCookie = "ytpg_admin_token"

// AdminAuth accepts an HS256 token signed with secretKey whose role claim is admin.
// The token comes from "Authorization: Bearer <token>" or the AdminTokenCookie cookie.
func AdminAuth(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}

		tokenString := bearerToken(ctx.GetHeader("Authorization"))
		if tokenString == "" {
			if cookie, err := ctx.Cookie(AdminTokenCookie); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" || secretKey == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims, err := getClaim(tokenString, secretKey)
		if err != nil {
			res.ResponseMessage = reason(err)
			logger.GetLogger().WithField("error", err).Warn("Rejected admin token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		if claims.Role != model.RoleAdmin {
			res.ResponseCode = "403"
			res.ResponseMessage = "Forbidden"
			ctx.AbortWithStatusJSON(http.StatusForbidden, res)
			return
		}

		ctx.Set("admin_subject", claims.Subject)
		ctx.Next()
	}
}

func bearerToken(authorization string) string {
	auth := strings.SplitN(authorization, "Bearer ", 2)
	if len(auth) != 2 {
		return ""
	}
	return strings.TrimSpace(auth[1])
}

func reason(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
	}
	return fmt.Sprintf("Couldn't handle this token: %v", err)
}

func getClaim(tokenString, secretKey string) (*model.AdminClaims, error) {
	var claims model.AdminClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		},
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return &claims, nil
}
