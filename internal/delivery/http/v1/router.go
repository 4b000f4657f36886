package v1

import (
	"net/http"
	"time"

	"go-ats-backend/config"
	"go-ats-backend/internal/delivery/http/middleware"
	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/auth"
	"go-ats-backend/pkg/security"
	"go-ats-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ProfileUC     domain.ProfileUsecase
	DepartmentUC  domain.DepartmentUsecase
	JobUC         domain.JobUsecase
	CandidateUC   domain.CandidateUsecase
	ResumeUC      domain.ResumeUsecase
	ApplicationUC domain.ApplicationUsecase
	ShortListUC   domain.ShortListUsecase
	Tokens        *auth.TokenManager
	UploadLimiter *security.UploadLimiter
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes. Login and register get a tighter rate limit to slow
	// credential stuffing.
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))
	NewAuthHandler(public, deps.AuthUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewMeHandler(protected, deps.AuthUC, deps.ProfileUC)
		NewDepartmentHandler(protected, deps.DepartmentUC)
		NewJobHandler(protected, deps.JobUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewResumeHandler(protected, deps.ResumeUC, deps.UploadLimiter)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewShortListHandler(protected, deps.ShortListUC)
	}

	return r
}
