package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/jwt"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/redis"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/response"
)

// LocalUserID 本地文件模式下的隐式用户标识
const LocalUserID = "local"

// JWTAuth JWT 认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Access Token，
// 校验通过后再查 Redis 黑名单（已登出的 JTI 拒绝访问）。
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Token 无效或已过期")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "Token 类型无效")
			c.Abort()
			return
		}

		// 黑名单检查；Redis 不可用时降级放行
		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "Token 已失效")
				c.Abort()
				return
			}
		}

		// 将用户信息注入上下文；登出时需要 JTI 和过期时间
		c.Set("user_id", claims.UserID)
		c.Set("token_jti", claims.ID)
		c.Set("token_exp", claims.ExpiresAt.Time)

		c.Next()
	}
}

// LocalUser 本地文件模式中间件
// 没有用户体系，所有请求归属同一个隐式用户。
func LocalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", LocalUserID)
		c.Next()
	}
}
