package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"citylockers/models"
	"citylockers/services"
	"citylockers/storage"

	"github.com/gin-gonic/gin"
)

var chatService *services.ChatService

// SetChatService injects the chat service instance used by ChatHandler.
func SetChatService(service *services.ChatService) {
	chatService = service
}

// BuildChatContext formats the live deal data and the user's question into
// the single context message sent to the assistant.
func BuildChatContext(cfg models.Configuration, financials models.FinancialSummary, question string) string {
	var b strings.Builder
	b.WriteString("Current deal context:\n")
	fmt.Fprintf(&b, "- Client: %s\n", cfg.ClientName)
	fmt.Fprintf(&b, "- Property type: %s\n", cfg.PropertyType)
	fmt.Fprintf(&b, "- Location factor: %.2f\n", cfg.LocationFactor)
	fmt.Fprintf(&b, "- Lockers: %d M, %d L, %d XL\n", cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)
	fmt.Fprintf(&b, "- Revenue share: %.0f%%\n", cfg.RevenueShare)
	fmt.Fprintf(&b, "- Estimated annual partner income: %s %.0f\n", models.Currency, financials.PartnerAnnual)
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String()
}

// ChatHandler godoc
// @Summary      Ask the deal assistant
// @Description  Relays a question plus the live deal context to the AI assistant. Failures return a degraded message, never an error.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      models.ChatRequest  true  "Conversation history and new question"
// @Success      200   {object}  models.ChatResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/chat [post]
func ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if chatService == nil {
		c.JSON(http.StatusOK, models.ChatResponse{
			Success: false,
			Message: "The AI assistant is not configured.",
		})
		return
	}

	db := storage.GetDB()
	stored, _, err := storage.GetStateBlob(db, storage.CurrentStateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cfg, _ := models.MergeWithDefaults(stored)
	financials := CalculateFinancials(cfg)

	contextMessage := BuildChatContext(cfg, financials, req.Message)
	c.JSON(http.StatusOK, chatService.Send(c.Request.Context(), req.Messages, contextMessage))
}
