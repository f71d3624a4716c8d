package main

import (
	"fmt"
	"net/http"

	"github.com/atlashr/attendance-backend-go/internal/config"
	appHTTP "github.com/atlashr/attendance-backend-go/internal/handler/http"
	"github.com/atlashr/attendance-backend-go/internal/pkg/cache"
	"github.com/atlashr/attendance-backend-go/internal/pkg/database"
	"github.com/atlashr/attendance-backend-go/internal/pkg/jwt"
	"github.com/atlashr/attendance-backend-go/internal/pkg/oauth"
	"github.com/atlashr/attendance-backend-go/internal/repository/postgresql"
	accesspolicyService "github.com/atlashr/attendance-backend-go/internal/service/accesspolicy"
	attendanceService "github.com/atlashr/attendance-backend-go/internal/service/attendance"
	authService "github.com/atlashr/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/atlashr/attendance-backend-go/internal/service/dashboard"
	sidebarService "github.com/atlashr/attendance-backend-go/internal/service/sidebar"
	userService "github.com/atlashr/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	redis := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	officeHoursRepo := postgresql.NewOfficeHoursRepository(db)
	accessPolicyRepo := postgresql.NewAccessPolicyRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	sidebarRepo := postgresql.NewSidebarRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	resolver := accesspolicyService.NewResolver(accessPolicyRepo, redis)
	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, officeHoursRepo, userRepo, resolver)
	userSvc := userService.NewUserService(db, userRepo, roleRepo, departmentRepo, refreshTokenRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo)
	sidebarSvc := sidebarService.NewSidebarService(sidebarRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:            cfg,
		JWTService:        JWTService,
		Resolver:          resolver,
		AuthHandler:       appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		UserHandler:       appHTTP.NewUserHandler(userSvc),
		DashboardHandler:  appHTTP.NewDashboardHandler(dashboardSvc),
		SidebarHandler:    appHTTP.NewSidebarHandler(sidebarSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
