package referral_fx

import (
	"go.uber.org/fx"

	"earnhub/internal/repositories"
	"earnhub/internal/services"
)

var Module = fx.Provide(
	provideReferralService)

func provideReferralService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository) services.ReferralServiceInterface {
	return services.NewReferralService(userRepo, subRepo)
}
