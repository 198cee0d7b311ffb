package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campushub/events-api/docs"
	v1 "github.com/campushub/events-api/internal/api/handler/v1"
	"github.com/campushub/events-api/internal/api/middleware"
	"github.com/campushub/events-api/internal/config"
	"github.com/campushub/events-api/internal/repository"
	"github.com/campushub/events-api/internal/service"
	"github.com/campushub/events-api/internal/store"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, st store.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(st)
	userHandler := s.initUserHandler(st)
	eventHandler := s.initEventHandler(st)
	registrationHandler := s.initRegistrationHandler(st)
	reportHandler := s.initReportHandler(st)
	s.MountHandlers(authHandler, userHandler, eventHandler, registrationHandler, reportHandler)

	return s
}

func (s *Server) initAuthHandler(st store.Store) *v1.AuthHandler {
	users := repository.NewUserRepository(st)
	sessions := repository.NewSessionRepository(st)
	svc := service.NewAuthService(users, sessions)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(st store.Store) *v1.UserHandler {
	users := repository.NewUserRepository(st)
	svc := service.NewUserService(users)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initEventHandler(st store.Store) *v1.EventHandler {
	events := repository.NewEventRepository(st)
	svc := service.NewEventService(events)
	uSvc := service.NewUserService(repository.NewUserRepository(st))
	handler := v1.NewEventHandler(svc, uSvc)

	return handler
}

func (s *Server) initRegistrationHandler(st store.Store) *v1.RegistrationHandler {
	registrations := repository.NewRegistrationRepository(st)
	events := repository.NewEventRepository(st)
	svc := service.NewRegistrationService(registrations, events)
	uSvc := service.NewUserService(repository.NewUserRepository(st))
	handler := v1.NewRegistrationHandler(svc, uSvc)

	return handler
}

func (s *Server) initReportHandler(st store.Store) *v1.ReportHandler {
	events := repository.NewEventRepository(st)
	registrations := repository.NewRegistrationRepository(st)
	users := repository.NewUserRepository(st)
	svc := service.NewReportService(events, registrations, users)
	uSvc := service.NewUserService(repository.NewUserRepository(st))
	handler := v1.NewReportHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	eventHandler *v1.EventHandler,
	registrationHandler *v1.RegistrationHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.POST("/auth/logout", authHandler.HandleLogout)
		authenticated.GET("/auth/me", authHandler.HandleMe)

		authenticated.GET("/users", userHandler.HandleListUsers)
		authenticated.GET("/users/:userID", userHandler.HandleGetUser)

		authenticated.GET("/events", eventHandler.HandleListEvents)
		authenticated.POST("/events", eventHandler.HandleCreateEvent)
		authenticated.GET("/events/:eventID", eventHandler.HandleGetEvent)
		authenticated.PUT("/events/:eventID/status", eventHandler.HandleUpdateEventStatus)

		authenticated.POST("/events/:eventID/register", registrationHandler.HandleRegisterForEvent)
		authenticated.GET("/events/:eventID/registrations/count", registrationHandler.HandleCountRegistrations)
		authenticated.GET("/registrations", registrationHandler.HandleListRegistrations)
		authenticated.GET("/registrations/mine", registrationHandler.HandleMyRegistrations)

		authenticated.GET("/reports/:entity/export", reportHandler.HandleExport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Campus Events API"
	docs.SwaggerInfo.Description = "College events portal: accounts, event approval and capacity-checked registration."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
