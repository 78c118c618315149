package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gainsystem/internal/auth"
	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
	"gainsystem/pkg/utils"
)

const authScheme = "JWT "

// Session opens a transaction for the request and resolves the subject
// from the Authorization header. A bad or missing token leaves the session
// unauthenticated; only identity-gated handlers reject it later. After the
// handler chain the transaction is committed unless a fatal error was
// recorded, then rolled back, which is a no-op once committed.
func Session(db *gorm.DB, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tx := db.Begin()
		if tx.Error != nil {
			utils.RespondError(c, http.StatusInternalServerError, "could not open transaction")
			c.Abort()
			return
		}

		sess := &reqctx.Session{Ctx: c.Request.Context(), Tx: tx}
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, authScheme) {
			if claims, err := jwtManager.Verify(strings.TrimPrefix(header, authScheme)); err == nil {
				var user db_models.User
				if err := sess.DB().First(&user, "email = ?", claims.Email).Error; err == nil {
					sess.User = &user
				}
			}
		}

		reqctx.Attach(c, sess)
		c.Next()

		if len(c.Errors) == 0 {
			if err := tx.Commit().Error; err != nil {
				slog.Error("commit failed", "error", err, "path", c.Request.URL.Path)
			}
		}
		tx.Rollback()
	}
}
