package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"earnhub/internal/repositories"
	"earnhub/internal/services"
	mem "earnhub/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideRevokedTokens, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func provideAccountService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	earnings services.EarningsServiceInterface,
	referral services.ReferralServiceInterface,
	revoked mem.RevokedTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, subRepo, earnings, referral, revoked)
}
