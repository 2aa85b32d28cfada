package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Devang1/BVCOE-TalkZone/internal/models"
	"github.com/Devang1/BVCOE-TalkZone/internal/observability"
	"github.com/Devang1/BVCOE-TalkZone/internal/repositories"
	"github.com/Devang1/BVCOE-TalkZone/internal/telemetry"
	"github.com/Devang1/BVCOE-TalkZone/internal/textcrop"
	"github.com/Devang1/BVCOE-TalkZone/internal/ws"
)

// MessageHandler manages message ingestion and retrieval.
type MessageHandler struct {
	messageRepo repositories.MessageRepository
	hub         *ws.Hub
	audit       *telemetry.AuditEmitter
}

// NewMessageHandler builds a MessageHandler.
func NewMessageHandler(messageRepo repositories.MessageRepository, hub *ws.Hub, audit *telemetry.AuditEmitter) *MessageHandler {
	return &MessageHandler{messageRepo: messageRepo, hub: hub, audit: audit}
}

// ListMessages handles GET /api/messages. The full room history is
// returned oldest first; clients re-poll on an interval for freshness.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	classID, err := strconv.Atoi(c.Query("classId"))
	if err != nil || classID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classId required"})
		return
	}

	msgs, err := h.messageRepo.ListMessages(c.Request.Context(), classID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}

	c.JSON(http.StatusOK, msgs)
}

// PostMessage handles POST /api/messages. Text is cropped to the word
// cap before the row is inserted; the sender is always the placeholder
// value. Retries create duplicate rows, there is no deduplication.
func (h *MessageHandler) PostMessage(c *gin.Context) {
	var req struct {
		ClassID  int     `json:"classId"`
		Text     *string `json:"text"`
		ImageURL *string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ClassID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classId required"})
		return
	}

	var text *string
	cropped := false
	if req.Text != nil && *req.Text != "" {
		out, truncated := textcrop.Crop(*req.Text, textcrop.DefaultWordLimit)
		text = &out
		cropped = truncated
	}

	imageURL := req.ImageURL
	if imageURL != nil && *imageURL == "" {
		imageURL = nil
	}

	msg, err := h.messageRepo.CreateMessage(c.Request.Context(), req.ClassID, text, imageURL, models.PlaceholderSender)
	if err != nil {
		h.emitAudit(c, "ERROR", "failed to store message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	observability.IncMessageIngested(cropped)
	if h.hub != nil {
		h.hub.BroadcastMessage(msg.ClassID, msg)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func (h *MessageHandler) emitAudit(c *gin.Context, level, text string) {
	if h.audit == nil {
		return
	}
	h.audit.Emit(c.Request.Context(), level, text, requestIDFromContext(c), nil)
}
