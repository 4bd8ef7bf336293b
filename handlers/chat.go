package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookassist/models"
	"bookassist/services/chat"
	"bookassist/utils"
)

// ChatHandler handles one conversation turn. A missing session ID starts a
// fresh session and the generated ID is returned in the reply.
func ChatHandler(svc *chat.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if req.Text == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "text is required")
			return
		}
		if req.SessionID == "" {
			req.SessionID = uuid.New().String()
		}

		reply, err := svc.HandleMessage(c.Request.Context(), req.SessionID, req.Text)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
			return
		}
		c.JSON(http.StatusOK, reply)
	}
}

// ResetSessionHandler clears all conversation state for a session.
func ResetSessionHandler(svc *chat.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")
		if err := svc.ClearSession(c.Request.Context(), sessionID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to reset session", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "status": "reset"})
	}
}
