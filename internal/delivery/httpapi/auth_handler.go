package httpapi

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosemall/flash-order-service/internal/domain"
	uc "github.com/rosemall/flash-order-service/internal/usecase"
)

type AuthHandler struct {
	UserUsecase uc.UserUsecase
	Auth        *AuthManager

	AdminUsername string
	AdminPassword string
}

func NewAuthHandler(userUsecase uc.UserUsecase, auth *AuthManager, adminUsername, adminPassword string) *AuthHandler {
	return &AuthHandler{
		UserUsecase:   userUsecase,
		Auth:          auth,
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
	}
}

type registerRequest struct {
	Phone      string `json:"phone" binding:"required"`
	Code       string `json:"code" binding:"required"`
	InviteCode string `json:"inviteCode" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type adminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID         string `json:"id"`
	Phone      string `json:"phone"`
	Nickname   string `json:"nickname"`
	InviteCode string `json:"inviteCode"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:         user.ID,
		Phone:      user.Phone,
		Nickname:   user.Nickname,
		InviteCode: user.InviteCode,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.UserUsecase.Register(&uc.RegisterInput{
		Phone:      req.Phone,
		Code:       req.Code,
		InviteCode: req.InviteCode,
		Password:   req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.Auth.IssueToken(user.ID, RoleUser)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": toUserResponse(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.UserUsecase.Login(req.Phone, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.Auth.IssueToken(user.ID, RoleUser)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": toUserResponse(user)})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.AdminUsername)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.AdminPassword)) == 1
	if !usernameOK || !passwordOK {
		writeError(c, fmt.Errorf("%w: wrong username or password", domain.ErrUnauthorized))
		return
	}

	token, err := h.Auth.IssueToken(req.Username, RoleAdmin)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
