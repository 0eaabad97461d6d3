package resumes

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-hub/internal/shared/apperr"
	"resume-hub/internal/shared/identity"
	"resume-hub/internal/shared/server/middleware"
	"resume-hub/internal/shared/server/request"
	"resume-hub/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to a group guarded by the auth gate.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/resume", h.create)
	rg.GET("/resume", h.list)
	rg.GET("/resume/:id", h.get)
	rg.PATCH("/resume/:id", h.update)
	rg.DELETE("/resume/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}

	var req createRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), owner, CreateInput{Title: req.Title, Content: req.Content})
	if err != nil {
		respond.Fail(c, err)
		return
	}
	c.Set("resumeId", resume.ID)

	respond.Created(c, "이력서 생성이 완료되었습니다.", resume)
}

func (h *Handler) list(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}

	items, err := h.Svc.List(c.Request.Context(), owner, ParseSortOrder(c.Query("sort")))
	if err != nil {
		respond.Fail(c, err)
		return
	}

	respond.OK(c, "이력서 목록 조회에 성공했습니다.", items)
}

func (h *Handler) get(c *gin.Context) {
	owner, id, ok := callerAndID(c)
	if !ok {
		return
	}

	resume, err := h.Svc.Get(c.Request.Context(), owner, id)
	if err != nil {
		respond.Fail(c, err)
		return
	}

	respond.OK(c, "이력서 상세 조회에 성공했습니다.", resume)
}

func (h *Handler) update(c *gin.Context) {
	owner, id, ok := callerAndID(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), owner, id, Patch{Title: req.Title, Content: req.Content})
	if err != nil {
		respond.Fail(c, err)
		return
	}

	respond.OK(c, "이력서 수정이 완료되었습니다.", resume)
}

func (h *Handler) delete(c *gin.Context) {
	owner, id, ok := callerAndID(c)
	if !ok {
		return
	}

	resume, err := h.Svc.Delete(c.Request.Context(), owner, id)
	if err != nil {
		respond.Fail(c, err)
		return
	}

	respond.OK(c, "이력서 삭제가 완료되었습니다.", resume)
}

func caller(c *gin.Context) (identity.User, bool) {
	owner, ok := middleware.UserFromContext(c)
	if !ok {
		respond.Internal(c, nil)
		return identity.User{}, false
	}
	return owner, true
}

// callerAndID resolves the caller and the :id path parameter. An id that is
// not a positive integer cannot match any resume and is reported as not found.
func callerAndID(c *gin.Context) (identity.User, int64, bool) {
	owner, ok := caller(c)
	if !ok {
		return identity.User{}, 0, false
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Fail(c, apperr.NotFound(notFoundMessage))
		return identity.User{}, 0, false
	}
	c.Set("resumeId", id)
	return owner, id, true
}
