// internal/handlers/chat.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/electromart/support-backend/internal/models"
	"github.com/electromart/support-backend/internal/services"
	"github.com/electromart/support-backend/internal/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /chat
//
// The chat wire format is fixed: both the success and the validation
// failure body carry a single "response" field.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ChatResponse{Response: "No message provided."})
		return
	}

	if err := utils.ValidateStruct(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, models.ChatResponse{Response: "No message provided."})
		return
	}

	reply := h.chatService.HandleMessage(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}
