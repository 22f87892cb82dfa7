package api

import (
	"net/http"

	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SiteConfigHandler struct {
	cmds commands.SiteConfigCommands
	q    queries.SiteConfigQueries
}

func NewSiteConfigHandler(cmds commands.SiteConfigCommands, q queries.SiteConfigQueries) *SiteConfigHandler {
	return &SiteConfigHandler{cmds: cmds, q: q}
}

// @Summary Get site configuration
// @Tags site-config
// @Produce json
// @Success 200 {object} resdto.SiteConfigResponse
// @Router /site-config [get]
func (h *SiteConfigHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSiteConfigView(view))
}

// @Summary Update site configuration
// @Description Enabling single property mode requires mainPropertyId
// @Tags site-config
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetSiteConfigRequest true "Configuration"
// @Success 200 {object} resdto.SiteConfigResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /site-config [post]
func (h *SiteConfigHandler) Set(c *gin.Context) {
	var req reqdto.SetSiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	view, err := h.cmds.Set(c.Request.Context(), *req.SinglePropertyMode, req.MainPropertyID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSiteConfigView(view))
}
