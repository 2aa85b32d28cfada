package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devang1/BVCOE-TalkZone/internal/repositories"
	"github.com/Devang1/BVCOE-TalkZone/internal/telemetry"
)

// AuthHandler manages room authentication endpoints.
type AuthHandler struct {
	roomRepo repositories.RoomRepository
	audit    *telemetry.AuditEmitter
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(roomRepo repositories.RoomRepository, audit *telemetry.AuditEmitter) *AuthHandler {
	return &AuthHandler{roomRepo: roomRepo, audit: audit}
}

// Login handles POST /api/auth. It verifies the shared room password and
// returns a success flag only; the room id is resolved by a separate
// call. Passwords are compared as plaintext, which is the contract this
// service inherited.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Year      string `json:"year"`
		ClassName string `json:"className"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Year == "" || req.ClassName == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing parameters"})
		return
	}

	room, err := h.roomRepo.GetRoom(c.Request.Context(), req.Year, req.ClassName)
	if err != nil {
		if errors.Is(err, repositories.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	if room.Password != req.Password {
		h.emitAudit(c, "WARN", "incorrect room password", req.Year, req.ClassName)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect password"})
		return
	}

	h.emitAudit(c, "INFO", "room login", req.Year, req.ClassName)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResolveClassID handles GET /api/auth. It maps (year, className) to the
// room id without re-checking the password; no session links this call
// to Login. That gap is part of the observed contract.
func (h *AuthHandler) ResolveClassID(c *gin.Context) {
	year := c.Query("year")
	className := c.Query("className")
	if year == "" || className == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing parameters"})
		return
	}

	room, err := h.roomRepo.GetRoom(c.Request.Context(), year, className)
	if err != nil {
		if errors.Is(err, repositories.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "classId": room.ID})
}

func (h *AuthHandler) emitAudit(c *gin.Context, level, text, year, className string) {
	if h.audit == nil {
		return
	}
	h.audit.Emit(c.Request.Context(), level, text, requestIDFromContext(c), roomLabel(year, className))
}
