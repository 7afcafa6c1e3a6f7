package api

import (
	"net/http"

	"github.com/fadebook/fadebook/internal/service"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	mx                   *chi.Mux
	adminService         service.AdminServiceI
	loyaltyService       service.LoyaltyServiceI
	achievementsService  service.AchievementsServiceI
	barberRewardsService service.BarberRewardsServiceI
	leaderboardService   service.LeaderboardServiceI
	jwtService           JWTServiceI
}

type ServicesList struct {
	AdminService         service.AdminServiceI
	LoyaltyService       service.LoyaltyServiceI
	AchievementsService  service.AchievementsServiceI
	BarberRewardsService service.BarberRewardsServiceI
	LeaderboardService   service.LeaderboardServiceI
	JwtService           JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                   chi.NewMux(),
		adminService:         servicesOptions.AdminService,
		loyaltyService:       servicesOptions.LoyaltyService,
		achievementsService:  servicesOptions.AchievementsService,
		barberRewardsService: servicesOptions.BarberRewardsService,
		leaderboardService:   servicesOptions.LeaderboardService,
		jwtService:           servicesOptions.JwtService,
	}
}

func (s *Server) RegisterRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/customers/{id}/loyalty", s.GetLoyaltyStatus)
			r.Post("/customers/{id}/loyalty/select", s.SelectReward)
			r.Post("/customers/{id}/loyalty/visits", s.RecordVisit)
			r.Post("/customers/{id}/loyalty/redeem", s.RedeemReward)
			r.Get("/customers/{id}/loyalty/rewards", s.GetAvailableRewards)
			r.Post("/customers/{id}/loyalty/reset", s.ResetLoyalty)
			r.Post("/rewards", s.CreateReward)
			r.Post("/barbers/{id}/achievements/refresh", s.RefreshAchievements)
			r.Get("/barbers/{id}/achievements", s.GetAchievements)
			r.Post("/barbers/{id}/rewards/refresh", s.RefreshBarberRewards)
			r.Get("/barbers/{id}/rewards", s.GetBarberRewards)
			r.Post("/redemptions/{id}/redeem", s.MarkRedemptionRedeemed)
			r.Get("/leaderboard", s.GetLeaderboard)
		})
	})
}

func (s *Server) Run(address string) error {
	s.RegisterRoutes()
	return http.ListenAndServe(address, s.mx)
}
