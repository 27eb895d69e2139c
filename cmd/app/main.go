package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"earnhub/cmd/fx/account_fx"
	"earnhub/cmd/fx/controllers_fx"
	"earnhub/cmd/fx/dashboard_fx"
	"earnhub/cmd/fx/db_fx"
	"earnhub/cmd/fx/earnings_fx"
	"earnhub/cmd/fx/plan_fx"
	"earnhub/cmd/fx/referral_fx"
	"earnhub/cmd/fx/subscription_fx"
	"earnhub/cmd/fx/task_fx"
	"earnhub/cmd/fx/withdrawal_fx"
	"earnhub/internal/api/controllers"
	"earnhub/pkg/logger"
	mem "earnhub/pkg/memcache"
	"earnhub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system environment")
	}

	app := fx.New(
		fx.Provide(logger.NewLogger),
		fx.Invoke(func(l *zap.Logger) {}),

		db_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		subscription_fx.Module,
		task_fx.Module,
		earnings_fx.Module,
		referral_fx.Module,
		withdrawal_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zap.L().Info("starting HTTP server", zap.String("port", os.Getenv("PORT")))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					zap.L().Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zap.L().Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	subscriptionController *controllers.SubscriptionController,
	taskController *controllers.TaskController,
	referralController *controllers.ReferralController,
	withdrawalController *controllers.WithdrawalController,
	dashboardController *controllers.DashboardController,
	revoked mem.RevokedTokenStore) *gin.Engine {

	if os.Getenv("ENV") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, revoked,
		accountController, planController, subscriptionController,
		taskController, referralController, withdrawalController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	revoked mem.RevokedTokenStore,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	subscriptionController *controllers.SubscriptionController,
	taskController *controllers.TaskController,
	referralController *controllers.ReferralController,
	withdrawalController *controllers.WithdrawalController,
	dashboardController *controllers.DashboardController) {

	auth := middleware.JWTAuthMiddleware(revoked)
	admin := middleware.RoleMiddleware("admin")

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/logout", auth, accountController.Logout)

	plansGroup := r.Group("/plans")
	plansGroup.GET("", planController.ListPlans)
	plansGroup.GET("/:planId", planController.GetPlan)
	plansGroup.POST("", auth, admin, planController.CreatePlan)

	planGroup := r.Group("/plan", auth)
	planGroup.POST("/purchase/:userId", subscriptionController.Purchase)
	planGroup.GET("/user/:userId", subscriptionController.GetUserPlans)
	planGroup.POST("/userplanswithtasks/:userId", subscriptionController.GetUserPlansWithTasks)
	planGroup.GET("/user/:userId/total-deposit", subscriptionController.GetTotalDeposit)
	planGroup.POST("/update-state", admin, subscriptionController.UpdateState)
	planGroup.GET("/all-purchased", admin, subscriptionController.GetAllPurchased)

	taskGroup := r.Group("/task", auth)
	taskGroup.GET("/:taskId/user/:userId", taskController.GetTaskForUser)
	taskGroup.GET("/status/:userId", taskController.GetStatuses)
	taskGroup.POST("/:taskId/user/:userId/submit", taskController.Submit)

	userGroup := r.Group("/user", auth)
	userGroup.GET("/:id", accountController.GetUserDetails)
	userGroup.GET("", admin, accountController.ListUsers)

	referralGroup := r.Group("/referral", auth)
	referralGroup.GET("/:userId", referralController.GetReferralDetails)

	withdrawalGroup := r.Group("/withdrawal", auth)
	withdrawalGroup.POST("/:userId", withdrawalController.Request)
	withdrawalGroup.GET("/user/:userId", withdrawalController.ListMine)
	withdrawalGroup.GET("/all", admin, withdrawalController.ListAll)
	withdrawalGroup.POST("/update-state", admin, withdrawalController.UpdateState)

	dashboardGroup := r.Group("/dashboard", auth, admin)
	dashboardGroup.GET("/overview", dashboardController.Overview)
}
