package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Devang1/BVCOE-TalkZone/internal/repositories"
)

// NicknameHandler answers nickname availability checks. There is no
// nickname registry; the sender column of the message table is probed
// instead, so a checked nickname is never reserved.
type NicknameHandler struct {
	roomRepo    repositories.RoomRepository
	messageRepo repositories.MessageRepository
}

// NewNicknameHandler builds a NicknameHandler.
func NewNicknameHandler(roomRepo repositories.RoomRepository, messageRepo repositories.MessageRepository) *NicknameHandler {
	return &NicknameHandler{roomRepo: roomRepo, messageRepo: messageRepo}
}

// CheckNickname handles POST /api/check-nickname.
func (h *NicknameHandler) CheckNickname(c *gin.Context) {
	var req struct {
		ClassName string `json:"classname"`
		Year      string `json:"year"`
		Nickname  string `json:"nickname"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Nickname == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nickname is required"})
		return
	}
	if req.ClassName == "" || req.Year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Classname and year are required"})
		return
	}

	room, err := h.roomRepo.GetRoom(c.Request.Context(), req.Year, req.ClassName)
	if err != nil {
		if errors.Is(err, repositories.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error checking nickname"})
		return
	}

	exists, err := h.messageRepo.SenderExists(c.Request.Context(), room.ID, strings.TrimSpace(req.Nickname))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error checking nickname"})
		return
	}

	message := "Nickname available"
	if exists {
		message = "Nickname already taken"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "exists": exists, "message": message})
}
