package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/fadebook/fadebook/internal/repository"
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/fadebook/fadebook/pkg/tenure"
)

const leaderboardLimit = 50

const maxBadges = 4

// LeaderboardService ranks active barbers on a weighted composite of
// stored facts. Display-only: nothing here feeds eligibility decisions.
type LeaderboardService struct {
	barbers repository.BarbersRepositoryI
}

func NewLeaderboardService(barbersRepo repository.BarbersRepositoryI) *LeaderboardService {
	return &LeaderboardService{
		barbers: barbersRepo,
	}
}

func (lbs *LeaderboardService) GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	stats, err := lbs.barbers.GetStats(ctx)
	if err != nil {
		return nil, errors.New("repository aggregating error: " + err.Error())
	}
	now := time.Now()
	entries := make([]entity.LeaderboardEntry, 0, len(stats))
	for _, s := range stats {
		monthsWorked := tenure.WholeMonths(s.JoinDate, now)
		score := float64(s.TotalVisits)*1 +
			float64(s.UniqueClients)*2 +
			float64(monthsWorked)*10 +
			s.RetentionRate*0.5 +
			float64(s.EarnedRewards)*50
		entries = append(entries, entity.LeaderboardEntry{
			BarberID:      s.BarberID,
			Name:          s.Name,
			Score:         score,
			TotalVisits:   s.TotalVisits,
			UniqueClients: s.UniqueClients,
			MonthsWorked:  monthsWorked,
			RetentionRate: s.RetentionRate,
			EarnedRewards: s.EarnedRewards,
			Badges:        badgesFor(s, monthsWorked),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if entries[i].TotalVisits != entries[j].TotalVisits {
			return entries[i].TotalVisits > entries[j].TotalVisits
		}
		return entries[i].MonthsWorked > entries[j].MonthsWorked
	})
	if len(entries) > leaderboardLimit {
		entries = entries[:leaderboardLimit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func badgesFor(s entity.BarberStats, monthsWorked int) []string {
	badges := make([]string, 0, maxBadges)
	if monthsWorked >= 12 {
		badges = append(badges, "veteran")
	}
	switch {
	case s.TotalVisits >= 1000:
		badges = append(badges, "visits_1000")
	case s.TotalVisits >= 500:
		badges = append(badges, "visits_500")
	case s.TotalVisits >= 100:
		badges = append(badges, "visits_100")
	}
	if s.RetentionRate >= 80 {
		badges = append(badges, "client_magnet")
	}
	if s.EarnedRewards >= 5 {
		badges = append(badges, "reward_collector")
	}
	if len(badges) > maxBadges {
		badges = badges[:maxBadges]
	}
	return badges
}
