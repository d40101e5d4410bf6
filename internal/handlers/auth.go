package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/internal/user"
)

type requestOTPBody struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type verifyOTPBody struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

type completeSignupBody struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// RequestOTP issues a one-time code for the phone number. The code itself is
// only echoed back in development builds; production delivers it over SMS.
func (h *Handler) RequestOTP(c *gin.Context) {
	var body requestOTPBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "phoneNumber is required")
		return
	}

	code, err := h.users.RequestOTP(c.Request.Context(), body.PhoneNumber)
	if err != nil {
		fail(c, err)
		return
	}

	h.metrics.OTPRequests.Inc()

	data := gin.H{}
	if h.devMode {
		data["otp"] = code
	}
	respondMessage(c, http.StatusOK, data, "otp sent")
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var body verifyOTPBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "phoneNumber and otp are required")
		return
	}

	res, err := h.users.VerifyOTP(c.Request.Context(), body.PhoneNumber, body.OTP)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"token":     res.AccessToken,
		"user":      user.ToAPI(res.User),
		"isNewUser": res.IsNewUser,
	})
}

func (h *Handler) CompleteSignup(c *gin.Context) {
	var body completeSignupBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "phoneNumber, fullName and address are required")
		return
	}

	res, err := h.users.CompleteSignup(c.Request.Context(), body.PhoneNumber, body.FullName, body.Address)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"token": res.AccessToken,
		"user":  user.ToAPI(res.User),
	})
}
