package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrCustomerNotFound    = errors.New("customer doesn't exist")
	ErrBarberNotFound      = errors.New("barber doesn't exist")
	ErrRewardNotFound      = errors.New("reward doesn't exist")
	ErrRewardInactive      = errors.New("reward is not active")
	ErrVisitNotFound       = errors.New("visit doesn't exist")
	ErrAchievementNotFound = errors.New("achievement doesn't exist")
	ErrRedemptionNotFound  = errors.New("redemption doesn't exist")
	ErrNoRewardSelected    = errors.New("no reward selected")

	ErrNotEligible           = errors.New("progress below reward requirement")
	ErrMaxRedemptionsReached = errors.New("max redemptions reached for reward")
	ErrInvalidDefinition     = errors.New("invalid reward definition")

	ErrRedemptionExists = errors.New("redemption already exists for this barber and reward")
	ErrCustomerExists   = errors.New("such customer already exists")
)
