package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "gym-planner/internal/domain/user"
	"gym-planner/internal/handler/response"
	repo "gym-planner/internal/repository/interfaces"
	authuc "gym-planner/internal/usecase/auth"
)

// Handler обрабатывает HTTP-запросы, связанные с аутентификацией.
type Handler struct {
	auth authuc.Service
}

// NewHandler создаёт новый AuthHandler.
func NewHandler(auth authuc.Service) *Handler {
	return &Handler{auth: auth}
}

// Register обрабатывает регистрацию пользователя.
//
//	@Summary	Регистрация нового пользователя
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterRequest	true	"Данные регистрации"
//	@Success	201		{object}	LoginResponse
//	@Router		/api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, access, refresh, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmailExists):
			log.Printf("email conflict in Register: email=%s err=%v", req.Email, err)
			response.Error(c, http.StatusConflict, "email_already_exists", "Указанный email уже используется", nil)
		case errors.Is(err, repo.ErrUsernameExists):
			log.Printf("username conflict in Register: username=%s err=%v", req.Username, err)
			response.Error(c, http.StatusConflict, "username_already_exists", "Указанный никнейм уже используется", nil)
		default:
			log.Printf("internal error in Register: email=%s username=%s err=%v", req.Email, req.Username, err)
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, toLoginResponse(user, access, refresh))
}

// Login обрабатывает вход пользователя по email/паролю.
//
//	@Summary	Вход по email и паролю
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Учётные данные"
//	@Success	200		{object}	LoginResponse
//	@Router		/api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, access, refresh, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authuc.ErrInvalidCredentials) {
			// Не раскрываем, что именно неверно: email или пароль.
			response.Error(c, http.StatusUnauthorized, "invalid_credentials", "Неверный email или пароль", nil)
			return
		}
		log.Printf("internal error in Login: email=%s err=%v", req.Email, err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, toLoginResponse(user, access, refresh))
}

// Refresh обрабатывает обновление пары токенов по refresh-токену.
//
//	@Summary	Обновление пары access/refresh токенов
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RefreshRequest	true	"Refresh-токен"
//	@Success	200		{object}	LoginResponse
//	@Router		/api/v1/auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, access, refresh, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, authuc.ErrInvalidRefreshToken) {
			response.Error(c, http.StatusUnauthorized, "invalid_refresh_token", "Недействительный refresh-токен", nil)
			return
		}
		log.Printf("internal error in Refresh: err=%v", err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, toLoginResponse(user, access, refresh))
}

// toLoginResponse маппит пользователя и пару токенов в DTO ответа.
func toLoginResponse(user *domain.User, access, refresh string) LoginResponse {
	return LoginResponse{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
		Tokens: TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}
}
