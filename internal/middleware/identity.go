package middleware

import (
	"bloom_daily_backend/internal/util"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Identity 单用户模式下的调用方身份解析，默认邮箱可在配置热更新时替换
type Identity struct {
	defaultEmail atomic.Value
}

func NewIdentity(defaultEmail string) *Identity {
	id := &Identity{}
	id.SetDefaultEmail(defaultEmail)
	return id
}

func (i *Identity) SetDefaultEmail(email string) {
	i.defaultEmail.Store(strings.TrimSpace(email))
}

func (i *Identity) DefaultEmail() string {
	return i.defaultEmail.Load().(string)
}

// Middleware 优先使用 X-User-Email 请求头，缺省时回落到默认邮箱
func (i *Identity) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(util.UserEmailHeader))
		if email == "" {
			email = i.DefaultEmail()
		}
		if email == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetUserEmail(c, email)
		c.Next()
	}
}
