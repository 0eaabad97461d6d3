package users

import (
	"time"

	"github.com/gin-gonic/gin"

	"resume-hub/internal/shared/server/middleware"
	"resume-hub/internal/shared/server/request"
	"resume-hub/internal/shared/server/respond"
	"resume-hub/internal/shared/server/session"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	Carrier  session.Carrier
	TokenTTL time.Duration
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, carrier session.Carrier, tokenTTL time.Duration) *Handler {
	return &Handler{Svc: svc, Carrier: carrier, TokenTTL: tokenTTL}
}

// RegisterPublicRoutes attaches the sign-up and sign-in routes.
func (h *Handler) RegisterPublicRoutes(rg gin.IRoutes) {
	rg.POST("/sign-up", h.signUp)
	rg.POST("/sign-in", h.signIn)
}

// RegisterRoutes attaches routes that require a session.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/me", h.me)
}

func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}

	profile, err := h.Svc.SignUp(c.Request.Context(), SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Name:            req.Name,
	})
	if err != nil {
		respond.Fail(c, err)
		return
	}

	respond.Created(c, "회원가입이 완료되었습니다.", profile)
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}

	token, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.Fail(c, err)
		return
	}

	h.Carrier.Set(c, token, h.TokenTTL)
	respond.OK(c, "로그인에 성공했습니다.", nil)
}

func (h *Handler) me(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		respond.Internal(c, nil)
		return
	}

	profile, err := h.Svc.Profile(c.Request.Context(), user.ID)
	if err != nil {
		respond.Fail(c, err)
		return
	}

	respond.OK(c, "내 정보 조회에 성공했습니다.", profile)
}
