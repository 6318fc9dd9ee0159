package middlewares

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func AuthMiddleware(ctx *gin.Context) {
	user, ok := userFromBearerToken(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	setIdentity(ctx, user)
}

// OptionalAuthMiddleware resolves the caller when a valid bearer token is
// present and lets anonymous requests through untouched.
func OptionalAuthMiddleware(ctx *gin.Context) {
	if ctx.Request.Header.Get("Authorization") == "" {
		return
	}
	if user, ok := userFromBearerToken(ctx); ok {
		setIdentity(ctx, user)
	}
}

func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString("role")
		for _, r := range roles {
			if role == r {
				return
			}
		}
		ctx.AbortWithStatus(http.StatusForbidden)
	}
}

func userFromBearerToken(ctx *gin.Context) (*models.User, bool) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		return nil, false
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		return nil, false
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		return nil, false
	}
	if !tkn.Valid {
		return nil, false
	}

	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		return nil, false
	}
	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{ID: uint(uid)}).
		First(&user).
		Error; err != nil {
		return nil, false
	}
	return &user, true
}

func setIdentity(ctx *gin.Context, user *models.User) {
	ctx.Set("id", user.ID)
	ctx.Set("email", user.Email)
	ctx.Set("username", user.Username)
	ctx.Set("role", user.Role)
}
