package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

// Demo credentials: any non-empty email/password signs in as a regular user;
// only this pair grants the admin role.
const (
	adminEmail    = "admin"
	adminPassword = "admin123"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if input.Email == adminEmail && input.Password == adminPassword {
			user = models.User{
				ID:    "admin-1",
				Name:  "Administrator",
				Email: "admin@example.com",
				Role:  "admin",
			}
		} else {
			user = models.User{
				ID:    "user-" + uuid.NewString(),
				Name:  input.Email,
				Email: input.Email,
				Role:  "user",
			}
		}

		token, err := issueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  user,
			"token": token,
		})
	}
}

func issueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
