package api

import (
	"net/http"

	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

var errMissingSignature = errs.New("webhook without signature header")

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Open checkout session
// @Description Opens a new deposit checkout for a reservation still awaiting payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentSessionRequest true "Reservation"
// @Success 200 {object} resdto.PaymentSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/create-session [post]
func (h *PaymentHandler) CreateSession(c *gin.Context) {
	var req reqdto.CreatePaymentSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	session, err := h.cmds.OpenSession(c.Request.Context(), req.ReservationID, req.FrontendURL)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentSessionResponse{URL: session.URL, SessionID: session.SessionID})
}

// @Summary Check checkout session
// @Description Confirms the reservation when the provider reports the session paid
// @Tags payments
// @Produce json
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/check/{sessionId} [get]
func (h *PaymentHandler) Check(c *gin.Context) {
	paid, err := h.cmds.CheckStatus(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentStatusResponse{Paid: paid})
}

// @Summary Payment provider webhook
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	signature := c.GetHeader(stripeSignatureHeader)
	if signature == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSignature, "Missing Stripe-Signature header", nil)
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true})
}
