// Package reqctx bundles the per-request state: the transactional database
// handle opened for the request and the authenticated subject, if any. The
// session is built once by the middleware chain and passed explicitly into
// every service and repository call.
package reqctx

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
)

const ginKey = "reqctx.session"

type Session struct {
	Ctx  context.Context
	Tx   *gorm.DB
	User *db_models.User
}

// DB returns the transaction handle bound to the request context.
func (s *Session) DB() *gorm.DB {
	return s.Tx.WithContext(s.Ctx)
}

// Authenticated reports whether a verified subject is attached.
func (s *Session) Authenticated() bool {
	return s.User != nil
}

func Attach(c *gin.Context, s *Session) {
	c.Set(ginKey, s)
}

func FromGin(c *gin.Context) (*Session, bool) {
	value, ok := c.Get(ginKey)
	if !ok {
		return nil, false
	}
	session, ok := value.(*Session)
	return session, ok
}
