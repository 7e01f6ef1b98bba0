package handlers

import (
	"net/http"

	_ "feedback_app/docs"
	"feedback_app/internal/logger"
	"feedback_app/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultCookieName = "session"

// Options tunes the session cookie.
type Options struct {
	CookieName string
	Secure     bool
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = defaultCookieName
	}
	registerValidators()
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(mustParseTemplates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	pages := router.Group("/", h.sessionMiddleware)
	{
		pages.GET("/", h.home)
		h.registerAuthRoutes(pages)
		h.registerUserRoutes(pages)
		h.registerFeedbackRoutes(pages)
	}

	router.NoRoute(h.sessionMiddleware, h.notFound)
	return router
}

func (h *Handler) registerAuthRoutes(r *gin.RouterGroup) {
	r.GET("/register", h.showRegister)
	r.POST("/register", h.register)
	r.GET("/login", h.showLogin)
	r.POST("/login", h.login)
	r.GET("/secret", h.secret)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerUserRoutes(r *gin.RouterGroup) {
	users := r.Group("/users/:username")
	{
		users.GET("", h.showUser)
		users.POST("/delete", h.deleteUser)
		users.GET("/feedback/add", h.showAddFeedback)
		users.POST("/feedback/add", h.addFeedback)
	}
}

func (h *Handler) registerFeedbackRoutes(r *gin.RouterGroup) {
	feedback := r.Group("/feedback/:id")
	{
		feedback.GET("/update", h.showUpdateFeedback)
		feedback.POST("/update", h.updateFeedback)
		feedback.POST("/delete", h.deleteFeedback)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Home
// @Description  Redirects to the registration page.
// @Tags         pages
// @Success      302
// @Router       / [get]
func (h *Handler) home(c *gin.Context) {
	h.redirect(c, "/register")
}
