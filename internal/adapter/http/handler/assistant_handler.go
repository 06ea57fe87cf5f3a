package handler

import (
	"novapay/internal/adapter/http/dto"
	"novapay/internal/core/domain"
	"novapay/internal/core/ports"
	"novapay/pkg/apperror"
	"novapay/pkg/response"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles assistant chat endpoints.
type AssistantHandler struct {
	assistantSvc ports.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantSvc ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantSvc: assistantSvc}
}

// Chat handles POST /api/v1/assistant/chat. The reply is always a
// renderable message; upstream failures never surface as HTTP errors.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	reply := h.assistantSvc.Chat(c.Request.Context(), req.Message)
	response.OK(c, dto.ChatResponse{Reply: reply})
}

// History handles GET /api/v1/assistant/history.
func (h *AssistantHandler) History(c *gin.Context) {
	messages := h.assistantSvc.History()
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	response.OK(c, dto.ChatHistoryResponse{Messages: messages})
}
