// @title Fadebook API
// @description Loyalty and gamification engine for the "Fadebook" barbershop platform
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/fadebook/fadebook/internal/api"
	"github.com/fadebook/fadebook/internal/repository"
	"github.com/fadebook/fadebook/internal/service"
	"github.com/fadebook/fadebook/pkg/cleanup"
	"github.com/fadebook/fadebook/pkg/config"
	jwtservice "github.com/fadebook/fadebook/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	customersRepo := repository.NewCustomersRepo(&dbCfg)
	rewardsRepo := repository.NewRewardsRepo(&dbCfg)
	visitsRepo := repository.NewVisitsRepo(&dbCfg)
	redemptionsRepo := repository.NewCustomerRedemptionsRepo(&dbCfg)
	barbersRepo := repository.NewBarbersRepo(&dbCfg)
	achievementsRepo := repository.NewAchievementsRepo(&dbCfg)
	barberRewardsRepo := repository.NewBarberRewardsRepo(&dbCfg)

	serv := api.New(&api.ServicesList{
		AdminService:         service.NewAdminService(repository.NewAdminsRepo(&dbCfg)),
		LoyaltyService:       service.NewLoyaltyService(customersRepo, rewardsRepo, visitsRepo, redemptionsRepo),
		AchievementsService:  service.NewAchievementsService(achievementsRepo, barbersRepo, visitsRepo),
		BarberRewardsService: service.NewBarberRewardsService(barberRewardsRepo, barbersRepo),
		LeaderboardService:   service.NewLeaderboardService(barbersRepo),
		JwtService:           jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
