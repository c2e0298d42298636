package controllers

import (
	"net/http"
	"strings"
	"time"

	"frontdesk-backend/config"
	"frontdesk-backend/middleware"
	"frontdesk-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the admin credentials and issues a bearer token.
func Login(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload loginPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
			return
		}

		username := strings.TrimSpace(payload.Username)

		var admin models.Admin
		if err := config.DB.Where("username = ?", username).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		now := time.Now()
		claims := middleware.Claims{
			AdminID:  admin.ID,
			Username: admin.Username,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(12 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"admin": gin.H{
				"id":        admin.ID,
				"full_name": admin.FullName,
				"username":  admin.Username,
			},
		})
	}
}
