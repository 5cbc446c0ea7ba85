package middleware

import (
	"kaenpro_os/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const sessionKey = "operator_session"

// Session resolves the operator identity from the X-Session-User and
// X-Session-Role headers and stores it in the gin context. An absent user
// header yields a zero session; handlers decide whether that is an error.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := entities.UserSession{
			Username: c.GetHeader("X-Session-User"),
			Role:     entities.SessionRole(c.GetHeader("X-Session-Role")),
		}
		if session.Username != "" && session.Role == "" {
			session.Role = entities.SessionRoleEmployee
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the operator session stored by Session. A request that
// skipped the middleware gets a zero session.
func SessionFrom(c *gin.Context) entities.UserSession {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.UserSession{}
	}
	session, ok := v.(entities.UserSession)
	if !ok {
		return entities.UserSession{}
	}
	return session
}
