package service

import (
	"context"
	"errors"
	"time"

	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/internal/repository"
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/fadebook/fadebook/pkg/keymutex"
	"github.com/google/uuid"
)

// LoyaltyService owns reward selection, visit-driven progress
// accumulation, eligibility and redemption for customers. Counter
// mutations for one customer are serialized through a keyed mutex.
type LoyaltyService struct {
	customers   repository.CustomersRepositoryI
	rewards     repository.RewardsRepositoryI
	visits      repository.VisitsRepositoryI
	redemptions repository.CustomerRedemptionsRepositoryI
	locks       *keymutex.KeyMutex
}

func NewLoyaltyService(
	customersRepo repository.CustomersRepositoryI,
	rewardsRepo repository.RewardsRepositoryI,
	visitsRepo repository.VisitsRepositoryI,
	redemptionsRepo repository.CustomerRedemptionsRepositoryI,
) *LoyaltyService {
	return &LoyaltyService{
		customers:   customersRepo,
		rewards:     rewardsRepo,
		visits:      visitsRepo,
		redemptions: redemptionsRepo,
		locks:       keymutex.New(),
	}
}

func (ls *LoyaltyService) GetLoyaltyStatus(ctx context.Context, customerID uuid.UUID) (*LoyaltyStatusView, error) {
	ls.locks.Lock(customerID)
	defer ls.locks.Unlock(customerID)
	customer, err := ls.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			return nil, errorvalues.ErrCustomerNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	active, err := ls.rewards.GetActive(ctx)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	view := &LoyaltyStatusView{
		Customer:        customer,
		EligibleRewards: make([]*entity.Reward, 0),
	}
	for _, reward := range active {
		if customer.CurrentProgressVisits >= reward.VisitsRequired {
			view.EligibleRewards = append(view.EligibleRewards, reward)
		}
		if customer.SelectedRewardID != nil && reward.ID == *customer.SelectedRewardID {
			view.SelectedReward = reward
		}
	}
	if view.SelectedReward != nil {
		required := view.SelectedReward.VisitsRequired
		remaining := required - customer.CurrentProgressVisits
		if remaining < 0 {
			remaining = 0
		}
		view.VisitsToNextReward = remaining
		view.ProgressPercentage = clampPercentage(customer.CurrentProgressVisits, required)
		view.CanRedeem = customer.CurrentProgressVisits >= required
	}
	if view.CanRedeem && customer.LoyaltyStatus != entity.LoyaltyMilestoneReached {
		customer.LoyaltyStatus = entity.LoyaltyMilestoneReached
		if err = ls.customers.Update(ctx, customer); err != nil {
			return nil, errors.New("repository updating error: " + err.Error())
		}
	}
	return view, nil
}

func (ls *LoyaltyService) SelectReward(ctx context.Context, customerID, rewardID uuid.UUID) (*entity.Customer, error) {
	ls.locks.Lock(customerID)
	defer ls.locks.Unlock(customerID)
	customer, err := ls.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			return nil, errorvalues.ErrCustomerNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	reward, err := ls.rewards.GetByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardNotFound) {
			return nil, errorvalues.ErrRewardNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if !reward.IsActive {
		return nil, errorvalues.ErrRewardInactive
	}
	customer.SelectedRewardID = &reward.ID
	customer.SelectionBaseline = customer.VisitCount
	customer.LoyaltyStatus = entity.LoyaltyActive
	if customer.LoyaltyJoinDate == nil {
		now := time.Now()
		customer.LoyaltyJoinDate = &now
	}
	if err = ls.customers.Update(ctx, customer); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return customer, nil
}

func (ls *LoyaltyService) RecordVisitForLoyalty(ctx context.Context, customerID, visitID uuid.UUID) (*entity.Customer, error) {
	ls.locks.Lock(customerID)
	defer ls.locks.Unlock(customerID)
	customer, err := ls.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			return nil, errorvalues.ErrCustomerNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	visit, err := ls.visits.GetByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrVisitNotFound) {
			return nil, errorvalues.ErrVisitNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	customer.VisitCount++
	customer.TotalLifetimeVisits++
	customer.CurrentProgressVisits++
	if customer.LoyaltyStatus == entity.LoyaltyNew {
		customer.LoyaltyStatus = entity.LoyaltyActive
	}
	customer.LastVisit = &visit.VisitDate
	if err = ls.customers.Update(ctx, customer); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	if err = ls.visits.SetVisitNumber(ctx, visitID, customer.VisitCount); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return customer, nil
}

func (ls *LoyaltyService) RedeemReward(ctx context.Context, req *RedeemRequest) (*RedeemResult, error) {
	ls.locks.Lock(req.CustomerID)
	defer ls.locks.Unlock(req.CustomerID)
	customer, err := ls.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			return nil, errorvalues.ErrCustomerNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	reward, err := ls.rewards.GetByID(ctx, req.RewardID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardNotFound) {
			return nil, errorvalues.ErrRewardNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if !reward.IsActive {
		return nil, errorvalues.ErrRewardInactive
	}
	if customer.CurrentProgressVisits < reward.VisitsRequired {
		return nil, errorvalues.ErrNotEligible
	}
	if reward.MaxRedemptions != nil {
		redeemed, err := ls.redemptions.CountByCustomerAndReward(ctx, customer.ID, reward.ID)
		if err != nil {
			return nil, errors.New("repository counting error: " + err.Error())
		}
		if redeemed >= *reward.MaxRedemptions {
			return nil, errorvalues.ErrMaxRedemptionsReached
		}
	}
	now := time.Now()
	previousProgress := customer.CurrentProgressVisits
	if req.VisitID != nil {
		stamp := &repository.RedemptionStamp{
			RewardID:           reward.ID,
			RewardName:         reward.Name,
			RewardType:         string(reward.RewardType),
			DiscountPercentage: reward.DiscountPercentage,
			RedeemedBy:         req.RedeemedBy,
			RedeemedAt:         now,
		}
		if err = ls.visits.StampRedemption(ctx, *req.VisitID, stamp); err != nil {
			return nil, errors.New("repository updating error: " + err.Error())
		}
	}
	_, err = ls.redemptions.Create(ctx, &entity.Redemption{
		CustomerID:           customer.ID,
		RewardID:             reward.ID,
		VisitID:              req.VisitID,
		RewardName:           reward.Name,
		RewardType:           reward.RewardType,
		DiscountPercentage:   reward.DiscountPercentage,
		ProgressAtRedemption: previousProgress,
		RedeemedBy:           req.RedeemedBy,
		RedeemedAt:           now,
	})
	if err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	customer.RewardsEarned++
	customer.RewardsRedeemed++
	customer.CurrentProgressVisits = 0
	customer.SelectedRewardID = nil
	customer.SelectionBaseline = 0
	customer.LoyaltyStatus = entity.LoyaltyActive
	if err = ls.customers.Update(ctx, customer); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	receipt := RedemptionReceipt{
		RewardID:           reward.ID,
		RewardName:         reward.Name,
		RewardType:         reward.RewardType,
		DiscountPercentage: reward.DiscountPercentage,
		PreviousProgress:   previousProgress,
	}
	if reward.RewardType == entity.RewardFree {
		receipt.FreeServices = reward.ApplicableServices
	}
	return &RedeemResult{Customer: customer, Receipt: receipt}, nil
}

func (ls *LoyaltyService) GetAvailableRewards(ctx context.Context, customerID uuid.UUID) ([]*entity.Reward, error) {
	customer, err := ls.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			return nil, errorvalues.ErrCustomerNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	active, err := ls.rewards.GetActive(ctx)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	available := make([]*entity.Reward, 0, len(active))
	for _, reward := range active {
		if reward.MaxRedemptions != nil {
			redeemed, err := ls.redemptions.CountByCustomerAndReward(ctx, customer.ID, reward.ID)
			if err != nil {
				return nil, errors.New("repository counting error: " + err.Error())
			}
			if redeemed >= *reward.MaxRedemptions {
				continue
			}
		}
		available = append(available, reward)
	}
	return available, nil
}

func (ls *LoyaltyService) ResetClientLoyalty(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	ls.locks.Lock(customerID)
	defer ls.locks.Unlock(customerID)
	customer, err := ls.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			return nil, errorvalues.ErrCustomerNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	customer.CurrentProgressVisits = 0
	customer.SelectedRewardID = nil
	customer.SelectionBaseline = 0
	customer.LoyaltyStatus = entity.LoyaltyActive
	if err = ls.customers.Update(ctx, customer); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return customer, nil
}

func (ls *LoyaltyService) CreateReward(ctx context.Context, req *CreateRewardRequest) (*entity.Reward, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidDefinition, err)
	}
	if entity.RewardType(req.RewardType) == entity.RewardDiscount && req.DiscountPercentage == nil {
		return nil, errorvalues.ErrInvalidDefinition
	}
	reward := &entity.Reward{
		Name:               req.Name,
		VisitsRequired:     req.VisitsRequired,
		RewardType:         entity.RewardType(req.RewardType),
		DiscountPercentage: req.DiscountPercentage,
		ApplicableServices: req.ApplicableServices,
		MaxRedemptions:     req.MaxRedemptions,
		IsActive:           true,
	}
	id, err := ls.rewards.Create(ctx, reward)
	if err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	reward.ID = id
	return reward, nil
}

func clampPercentage(progress, required int) int {
	if required <= 0 {
		return 100
	}
	pct := progress * 100 / required
	if pct > 100 {
		pct = 100
	}
	return pct
}
