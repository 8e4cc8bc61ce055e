package mailController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAX838/divine-sounds/mail"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// SendContactMessage forwards a visitor's message to the shop inbox.
func SendContactMessage(mailer *mail.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled."})
			return
		}

		if err := mailer.SendContactMessage(req.Name, req.Email, req.Phone, req.Message); err != nil {
			log.Printf("❌ Email sending error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
	}
}
