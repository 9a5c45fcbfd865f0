package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"steelcatalog/internal/identity"
	"steelcatalog/internal/logging"
	"steelcatalog/internal/service"
	"steelcatalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// FirebaseUIDHeader carries the caller identity on admin requests
const FirebaseUIDHeader = "firebase-uid"

const adminContextKey = "admin"

// AdminAuthorizer is the part of the auth service the gate needs
type AdminAuthorizer interface {
	AuthorizeAdmin(ctx context.Context, firebaseUID string) (service.AdminIdentity, error)
}

// RequireAdmin looks up the firebase-uid header and lets active admins through.
// When verifier is non-nil the request must also carry a Firebase ID token for that uid.
func RequireAdmin(auth AdminAuthorizer, verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(FirebaseUIDHeader))
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Unauthorized - No Firebase UID provided"))
			return
		}

		if verifier != nil {
			tokenUID, err := verifier.VerifyIDToken(c.Request.Context(), identity.BearerToken(c.GetHeader("Authorization")))
			if err != nil || tokenUID != uid {
				logging.FromContext(c.Request.Context()).Warn("admin token rejected", "uid", uid, "error", err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Unauthorized - Invalid ID token"))
				return
			}
		}

		admin, err := auth.AuthorizeAdmin(c.Request.Context(), uid)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrUnauthorized):
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Unauthorized - User not found"))
			return
		case errors.Is(err, service.ErrForbidden):
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error("Forbidden - "+forbiddenReason(err)))
			return
		default:
			logging.FromContext(c.Request.Context()).Error("admin auth middleware error", "uid", uid, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error("Internal server error"))
			return
		}

		c.Set(adminContextKey, admin)
		c.Next()
	}
}

func forbiddenReason(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// AdminFrom returns the identity attached by RequireAdmin
func AdminFrom(c *gin.Context) (service.AdminIdentity, bool) {
	v, ok := c.Get(adminContextKey)
	if !ok {
		return service.AdminIdentity{}, false
	}
	admin, ok := v.(service.AdminIdentity)
	return admin, ok
}

// ActorUID is the admin uid for audit rows, empty outside the gate
func ActorUID(c *gin.Context) string {
	admin, _ := AdminFrom(c)
	return admin.FirebaseUID
}
