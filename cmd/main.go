package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"fieldlog/internal/config"
	"fieldlog/internal/downdetect"
	"fieldlog/internal/features/audit_logs"
	"fieldlog/internal/features/join_secrets"
	"fieldlog/internal/features/observations"
	system_healthcheck "fieldlog/internal/features/system/healthcheck"
	users_controllers "fieldlog/internal/features/users/controllers"
	users_middleware "fieldlog/internal/features/users/middleware"
	users_models "fieldlog/internal/features/users/models"
	users_services "fieldlog/internal/features/users/services"
	workspaces_controllers "fieldlog/internal/features/workspaces/controllers"
	workspaces_models "fieldlog/internal/features/workspaces/models"
	"fieldlog/internal/storage"
	cache_utils "fieldlog/internal/util/cache"
	env_utils "fieldlog/internal/util/env"
	"fieldlog/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title FieldLog Backend API
// @version 1.0
// @description API for FieldLog, a multi-tenant field observation logbook

// @host localhost:4010
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()
	setUpDependencies()

	cache_utils.TestCacheConnection()

	runMigrations(log)

	err := users_services.GetUserService().CreateInitialAdmin()
	if err != nil {
		log.Error("Failed to create initial admin", "error", err)
		os.Exit(1)
	}

	handlePasswordReset(log)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		// Don't compress already compressed files
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":4010",
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Mount Swagger UI
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes: auth, workspace join and the liveness probe
	userController := users_controllers.GetUserController()
	userController.RegisterPublicRoutes(v1)
	workspaces_controllers.GetMembershipController().RegisterPublicRoutes(v1)
	downdetect.GetDowndetectController().RegisterPublicRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware())

	userController.RegisterProtectedRoutes(protected)
	users_controllers.GetSettingsController().RegisterProtectedRoutes(protected)
	workspaces_controllers.GetWorkspaceController().RegisterProtectedRoutes(protected)
	workspaces_controllers.GetMembershipController().RegisterProtectedRoutes(protected)
	workspaces_controllers.GetNoticeController().RegisterProtectedRoutes(protected)
	join_secrets.GetJoinSecretController().RegisterProtectedRoutes(protected)
	observations.GetObservationController().RegisterProtectedRoutes(protected)
	audit_logs.GetAuditLogController().RegisterProtectedRoutes(protected)
	system_healthcheck.GetHealthCheckController().RegisterProtectedRoutes(protected)
}

func setUpDependencies() {
	audit_logs.SetupDependencies()
	join_secrets.SetupDependencies()
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	err := storage.GetDb().AutoMigrate(
		&users_models.User{},
		&users_models.UsersSettings{},
		&users_models.SecretKey{},
		&workspaces_models.Workspace{},
		&workspaces_models.Membership{},
		&workspaces_models.Notice{},
		&join_secrets.JoinSecret{},
		&observations.Observation{},
		&audit_logs.AuditLog{},
	)
	if err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"Access-Control-Allow-Methods",
				"Access-Control-Allow-Headers",
				"Access-Control-Allow-Origin",
			},
			AllowCredentials: true,
		}))
	}
}

func handlePasswordReset(log *slog.Logger) {
	newPassword := flag.String("new-password", "", "Set a new password for the user")
	email := flag.String("email", "", "Email of the user to reset password")

	flag.Parse()

	if *newPassword == "" {
		return
	}

	log.Info("Found reset password command - reseting password...")

	if *email == "" {
		log.Info("No email provided, please provide an email via --email=\"some@email.com\" flag")
		os.Exit(1)
	}

	resetPassword(*email, *newPassword, log)
}

func resetPassword(email string, newPassword string, log *slog.Logger) {
	log.Info("Resetting password...")

	userService := users_services.GetUserService()
	err := userService.ChangeUserPasswordByEmail(email, newPassword)
	if err != nil {
		log.Error("Failed to reset password", "error", err)
		os.Exit(1)
	}

	log.Info("Password reset successfully")
	os.Exit(0)
}
