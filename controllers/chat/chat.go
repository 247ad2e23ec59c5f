package chatControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/session"
)

type TurnInput struct {
	Text string `json:"text" binding:"required"`
	// Voice marks the text as a speech-recognition transcript. It is handled
	// exactly like a typed submission.
	Voice bool `json:"voice,omitempty"`
}

// POST /user/chat
func PostMessage(sessions *session.Manager, repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var input TurnInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s := sessions.Get(userID)
		res, err := s.HandleTurn(input.Text)
		if err != nil {
			// Only ErrSessionBusy can occur; the submission is dropped,
			// not queued.
			c.JSON(http.StatusConflict, gin.H{"error": "The assistant is still responding. Please try again."})
			return
		}

		recordOrder(repo, res.Order)

		c.JSON(http.StatusOK, gin.H{
			"messages": res.Messages,
			"checkout": s.Checkout(),
			"cart":     s.Cart(),
		})
	}
}

// GET /user/chat
func GetTranscript(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": sessions.Get(userID).Messages()})
	}
}

// GET /user/chat/state
func GetState(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sessions.SnapshotFor(userID))
	}
}

// DELETE /user/chat
func ResetSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		sessions.Reset(userID)
		c.JSON(http.StatusOK, sessions.SnapshotFor(userID))
	}
}

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, _ := userIDVal.(string)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func recordOrder(repo *catalog.Repository, order *models.Order) {
	if order == nil {
		return
	}
	if repo != nil {
		if err := repo.SaveOrder(order); err != nil {
			log.Printf("❌ Failed to persist order %s: %v", order.ID, err)
		}
	}
	broadcastNewOrder(*order)
}
