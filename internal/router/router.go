package router

import (
	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/config"
	"github.com/akshayrj/portfolio-backend/internal/app/controller"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

type Router struct {
	authController          *controller.AuthController
	personalInfoController  *controller.PersonalInfoController
	projectController       *controller.ProjectController
	skillController         *controller.SkillController
	educationController     *controller.EducationController
	experienceController    *controller.ExperienceController
	certificationController *controller.CertificationController
	socialLinkController    *controller.SocialLinkController
	resumeController        *controller.ResumeController
	contactController       *controller.ContactController
	chatbotController       *controller.ChatbotController
	authMiddleware          *middleware.AuthMiddleware
	config                  *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	personalInfoController *controller.PersonalInfoController,
	projectController *controller.ProjectController,
	skillController *controller.SkillController,
	educationController *controller.EducationController,
	experienceController *controller.ExperienceController,
	certificationController *controller.CertificationController,
	socialLinkController *controller.SocialLinkController,
	resumeController *controller.ResumeController,
	contactController *controller.ContactController,
	chatbotController *controller.ChatbotController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:          authController,
		personalInfoController:  personalInfoController,
		projectController:       projectController,
		skillController:         skillController,
		educationController:     educationController,
		experienceController:    experienceController,
		certificationController: certificationController,
		socialLinkController:    socialLinkController,
		resumeController:        resumeController,
		contactController:       contactController,
		chatbotController:       chatbotController,
		authMiddleware:          authMiddleware,
		config:                  cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Portfolio API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/send-otp", r.authController.SendOTP)
			auth.POST("/verify-otp", r.authController.VerifyOTP)
			auth.POST("/forget-password",
				r.authMiddleware.Authenticate(),
				r.authController.ForgetPassword,
			)
		}

		guard := r.authMiddleware.Authenticate()

		personalInfo := v1.Group("/personal-info")
		{
			personalInfo.GET("", r.personalInfoController.Get)
			personalInfo.PUT("", guard, r.personalInfoController.Upsert)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", r.projectController.List)
			projects.GET("/:id", r.projectController.Get)
			projects.POST("", guard, r.projectController.Create)
			projects.PUT("/:id", guard, r.projectController.Update)
			projects.DELETE("/:id", guard, r.projectController.Delete)
		}

		skills := v1.Group("/skills")
		{
			skills.GET("", r.skillController.List)
			skills.POST("", guard, r.skillController.Create)
			skills.PUT("/:id", guard, r.skillController.Update)
			skills.DELETE("/:id", guard, r.skillController.Delete)
		}

		education := v1.Group("/education")
		{
			education.GET("", r.educationController.List)
			education.POST("", guard, r.educationController.Create)
			education.PUT("/:id", guard, r.educationController.Update)
			education.DELETE("/:id", guard, r.educationController.Delete)
		}

		experience := v1.Group("/experience")
		{
			experience.GET("", r.experienceController.List)
			experience.POST("", guard, r.experienceController.Create)
			experience.PUT("/:id", guard, r.experienceController.Update)
			experience.DELETE("/:id", guard, r.experienceController.Delete)
		}

		certifications := v1.Group("/certifications")
		{
			certifications.GET("", r.certificationController.List)
			certifications.POST("", guard, r.certificationController.Create)
			certifications.PUT("/:id", guard, r.certificationController.Update)
			certifications.DELETE("/:id", guard, r.certificationController.Delete)
		}

		socialLinks := v1.Group("/social-links")
		{
			socialLinks.GET("", r.socialLinkController.List)
			socialLinks.GET("/all", guard, r.socialLinkController.ListAll)
			socialLinks.POST("", guard, r.socialLinkController.Create)
			socialLinks.PUT("/:id", guard, r.socialLinkController.Update)
			socialLinks.DELETE("/:id", guard, r.socialLinkController.Delete)
		}

		resume := v1.Group("/resume")
		{
			resume.GET("", r.resumeController.Active)
			resume.GET("/all", guard, r.resumeController.List)
			resume.POST("", guard, r.resumeController.Upload)
			resume.DELETE("/:id", guard, r.resumeController.Delete)
		}

		v1.POST("/contact", r.contactController.Submit)
		v1.POST("/chatbot", r.chatbotController.Ask)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
