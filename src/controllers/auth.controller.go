package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"tbs/src/db"
	"tbs/src/lib"
	"tbs/src/models"
	"tbs/src/types"
	"tbs/src/utils"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for both unknown accounts and wrong
// passwords so that callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialAuthenticator resolves a claimed identifier and verifies the
// supplied credential against the stored hash.
type CredentialAuthenticator interface {
	Authenticate(identifier string, password string) (*models.User, error)
}

type UsernameAuthenticator struct{}

func (UsernameAuthenticator) Authenticate(identifier string, password string) (*models.User, error) {
	return verifyCredential(&models.User{Username: identifier}, password)
}

// EmailAuthenticator treats the claimed identifier as an email address. It
// sits behind UsernameAuthenticator in the chain as the alternate strategy.
type EmailAuthenticator struct{}

func (EmailAuthenticator) Authenticate(identifier string, password string) (*models.User, error) {
	return verifyCredential(&models.User{Email: identifier}, password)
}

func verifyCredential(match *models.User, password string) (*models.User, error) {
	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(match).
		First(&user).
		Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// authChain is the ordered list of credential strategies; each is tried in
// turn until one succeeds.
func authChain() []CredentialAuthenticator {
	return []CredentialAuthenticator{
		UsernameAuthenticator{},
		EmailAuthenticator{},
	}
}

func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	var user *models.User
	for _, backend := range authChain() {
		user, err = backend.Authenticate(body.Username, body.Password)
		if err == nil {
			break
		}
	}
	if user == nil {
		return nil, http.StatusUnauthorized, ErrInvalidCredentials
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Model(&models.User{}).
			Where("id", user.ID).
			Update("last_active", time.Now()).
			Error
	})
	if err != nil {
		log.Printf("Error logging in user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusBadRequest, err
	}

	jwt, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating token for user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}

	if err := lib.CacheJSON(ctx, fmt.Sprintf("%d:user", user.ID), user, 24*time.Hour); err != nil {
		log.Printf("[redis] Error updating user cache: %s\n", err.Error())
	}

	return &jwt, http.StatusOK, nil
}

func AuthRegister(ctx *gin.Context) (userId *uint, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	newUser := models.User{
		Username:     body.Username,
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: string(hash),
		Role:         types.ROLE_CUSTOMER,
	}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.User{}).
			Where("username = ? OR email = ?", body.Username, body.Email).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("an account with that username or email already exists")
		}
		return tx.Create(&newUser).Error
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &newUser.ID, http.StatusCreated, nil
}
