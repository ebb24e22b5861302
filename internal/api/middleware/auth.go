package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	accessTokenCookie   = "token"
	userCtx             = "userID" // Key to store user ID in context
	roleCtx             = "userRole"
)

// extractToken reads the access token from the Authorization header or,
// failing that, from the session cookie the login handler sets.
func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader != "" {
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			return "", errors.New("invalid Authorization header format")
		}
		return headerParts[1], nil
	}
	token, err := c.Cookie(accessTokenCookie)
	if err != nil || token == "" {
		return "", errors.New("authentication required")
	}
	return token, nil
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			log.Printf("Auth middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &services.Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(*services.Claims)
		if !ok || !token.Valid {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.Printf("Auth middleware: Error parsing user ID from token subject '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid user identifier in token"})
			return
		}

		c.Set(userCtx, userID)
		c.Set(roleCtx, claims.Role)
		c.Next()
	}
}

// RequireRecruiter guards recruiter-only routes. It must run after
// JWTAuthMiddleware.
func RequireRecruiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get(roleCtx)
		role, ok := roleAny.(models.UserRole)
		if !exists || !ok || role != models.UserRoleRecruiter {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Recruiter access required"})
			return
		}
		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated user's ID set by the
// middleware.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}
	return userID, nil
}
