package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namegame/api/internal/game"
	"github.com/namegame/api/internal/middleware"
	"github.com/namegame/api/internal/model"
)

// SessionHandler serves the session and hand routes. Errors are recorded on
// the context and translated by the error middleware.
type SessionHandler struct {
	sessions *game.SessionManager
	hands    *game.HandService
	scoring  *game.ScoringService
}

func NewSessionHandler(sessions *game.SessionManager, hands *game.HandService, scoring *game.ScoringService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		hands:    hands,
		scoring:  scoring,
	}
}

type CreateSessionRequest struct {
	Mode   model.Mode `json:"mode"`
	Expire int        `json:"expire"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	c.ShouldBindJSON(&req) // body is optional; zero values select the defaults

	session, err := h.sessions.Create(c.Request.Context(), req.Mode, req.Expire)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessions.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) DealHand(c *gin.Context) {
	hand, err := h.hands.Deal(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.Error(err)
		return
	}

	middleware.RecordHandDealt()
	c.JSON(http.StatusOK, hand)
}

func (h *SessionHandler) PlayHand(c *gin.Context) {
	result, err := h.scoring.Play(c.Request.Context(), c.Param("sessionId"), c.Param("profileId"))
	if err != nil {
		c.Error(err)
		return
	}

	middleware.RecordHandPlayed(result.Won)
	c.JSON(http.StatusOK, result)
}
