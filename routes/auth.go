package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rortrainees/depot-app-chirag/auth"
)

func SetupAuthRoutes(r *gin.Engine) {
	r.POST("/auth/admin/login", auth.AdminLoginHandler)
}
