package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"highpro/web/internal/ids"
	"highpro/web/internal/telegram"
)

type submitRequest struct {
	Name   string `json:"name" binding:"required"`
	Course string `json:"course" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
}

// Submit forwards a contact-form lead to the operator chat. The response
// strings are the ones the site shows its visitors, hence Uzbek.
func (h HandlerSet) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Barcha maydonlar to'ldirilishi shart"})
		return
	}

	if !h.telegram.Configured() {
		h.log.Error().Msg("telegram credentials missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server sozlamalarida xatolik"})
		return
	}

	leadID := ids.New()
	err := h.telegram.SendLead(c.Request.Context(), telegram.Lead{
		Name:   req.Name,
		Course: req.Course,
		Phone:  req.Phone,
	})
	if err != nil {
		var delivery *telegram.DeliveryError
		if errors.As(err, &delivery) {
			h.log.Error().
				Str("lead_id", leadID).
				Int("upstream_status", delivery.StatusCode).
				Msg("telegram delivery rejected")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":    "Xabar yuborishda xatolik yuz berdi",
				"upstream": string(delivery.Body),
			})
			return
		}

		h.log.Error().Err(err).Str("lead_id", leadID).Msg("telegram delivery failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xabar yuborishda xatolik yuz berdi"})
		return
	}

	h.log.Info().
		Str("lead_id", leadID).
		Str("course", req.Course).
		Msg("lead delivered")

	c.JSON(http.StatusOK, gin.H{"success": true})
}
