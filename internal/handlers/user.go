package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/internal/middleware"
	"github.com/maheenur13/laundry-lab-frontend/internal/user"
)

func (h *Handler) GetProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	u, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, user.ToAPI(u))
}

type updateProfileBody struct {
	FullName *string `json:"fullName"`
	Address  *string `json:"address"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var body updateProfileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.users.UpdateProfile(c.Request.Context(), userID, user.UpdateProfileParams{
		FullName: body.FullName,
		Address:  body.Address,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, user.ToAPI(u))
}

func (h *Handler) ListDeliveryPersonnel(c *gin.Context) {
	personnel, err := h.users.ListDeliveryPersonnel(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]interface{}, 0, len(personnel))
	for _, p := range personnel {
		out = append(out, user.ToAPI(p))
	}
	respond(c, http.StatusOK, out)
}
