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

type PropertyHandler struct {
	cmds         commands.PropertyCommands
	q            queries.PropertyQueries
	availability queries.AvailabilityQueries
}

func NewPropertyHandler(cmds commands.PropertyCommands, q queries.PropertyQueries, availability queries.AvailabilityQueries) *PropertyHandler {
	return &PropertyHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary List properties
// @Tags properties
// @Produce json
// @Success 200 {array} resdto.PropertyResponse
// @Router /property [get]
func (h *PropertyHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyViews(views))
}

// @Summary Get property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary Create property
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Property"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /property [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	params, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPropertyView(view))
}

// @Summary Update property
// @Description Partial update; omitted fields keep their value
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	patch, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, patch)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary Delete property
// @Description Refused while the property has pending or confirmed reservations
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Property deleted successfully"})
}

// @Summary Check availability
// @Tags properties
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Stay"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property/check-availability [post]
func (h *PropertyHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	available, err := h.availability.IsAvailable(c.Request.Context(), req.PropertyID, req.StartDate.Value(), req.EndDate.Value())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{IsAvailable: available})
}

// @Summary Unavailable dates
// @Description Ranges blocked by active reservations, or one all-covering range when the property is closed
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.DateRangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property/{id}/unavailable-dates [get]
func (h *PropertyHandler) UnavailableDates(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ranges, err := h.availability.UnavailableRanges(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDateRanges(ranges))
}
