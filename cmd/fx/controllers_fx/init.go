package controllers_fx

import (
	"go.uber.org/fx"

	"earnhub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewTaskController),
	fx.Provide(controllers.NewReferralController),
	fx.Provide(controllers.NewWithdrawalController),
	fx.Provide(controllers.NewDashboardController))
