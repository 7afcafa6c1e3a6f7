package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/internal/service"
	"github.com/fadebook/fadebook/pkg/httputil"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SelectRewardRequest struct {
	RewardID string `json:"reward_id"`
}

type RecordVisitRequest struct {
	VisitID string `json:"visit_id"`
}

type RedeemRewardRequest struct {
	RewardID   string  `json:"reward_id"`
	RedeemedBy string  `json:"redeemed_by"`
	VisitID    *string `json:"visit_id,omitempty"`
}

type CreateRewardRequest struct {
	Name               string   `json:"name"`
	VisitsRequired     int      `json:"visits_required"`
	RewardType         string   `json:"reward_type"`
	DiscountPercentage *int     `json:"discount_percentage,omitempty"`
	ApplicableServices []string `json:"applicable_services,omitempty"`
	MaxRedemptions     *int     `json:"max_redemptions,omitempty"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	admin, err := s.adminService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed admin")
			httputil.WriteErrorResponse(w, http.StatusConflict, "admin with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"admin_id": admin.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	admin, err := s.adminService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist admin")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "admin with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(admin)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"admin_id": admin.ID.String(),
		"token":    token,
	})
	logger.Info("successful login")
}

func (s *Server) GetLoyaltyStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	customerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("loyalty status error: invalid customer id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid customer id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	status, err := s.loyaltyService.GetLoyaltyStatus(ctx, customerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			logger.Error("loyalty status error: unexist customer")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "customer doesn't exist", nil)
			return
		}
		logger.Error("loyalty status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting loyalty status", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
	logger.Info("loyalty status provided")
}

func (s *Server) SelectReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	customerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("select reward error: invalid customer id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid customer id in path value", nil)
		return
	}
	var req SelectRewardRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("select reward error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	rewardID, err := uuid.Parse(req.RewardID)
	if err != nil {
		logger.Error("select reward error: invalid reward id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	customer, err := s.loyaltyService.SelectReward(ctx, customerID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCustomerNotFound):
			logger.Error("select reward error: unexist customer")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "customer doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrRewardNotFound):
			logger.Error("select reward error: unexist reward")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrRewardInactive):
			logger.Error("select reward error: inactive reward")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		default:
			logger.Error("select reward error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while selecting reward", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, customer)
	logger.Info("reward selected")
}

func (s *Server) RecordVisit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	customerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("record visit error: invalid customer id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid customer id in path value", nil)
		return
	}
	var req RecordVisitRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("record visit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	visitID, err := uuid.Parse(req.VisitID)
	if err != nil {
		logger.Error("record visit error: invalid visit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid visit id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	customer, err := s.loyaltyService.RecordVisitForLoyalty(ctx, customerID, visitID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCustomerNotFound):
			logger.Error("record visit error: unexist customer")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "customer doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrVisitNotFound):
			logger.Error("record visit error: unexist visit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "visit doesn't exist", nil)
		default:
			logger.Error("record visit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording visit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, customer)
	logger.Info("visit counted")
}

func (s *Server) RedeemReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	customerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("redeem error: invalid customer id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid customer id in path value", nil)
		return
	}
	var req RedeemRewardRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("redeem error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	rewardID, err := uuid.Parse(req.RewardID)
	if err != nil {
		logger.Error("redeem error: invalid reward id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward id", nil)
		return
	}
	redeemReq := &service.RedeemRequest{
		CustomerID: customerID,
		RewardID:   rewardID,
		RedeemedBy: req.RedeemedBy,
	}
	if req.VisitID != nil {
		visitID, err := uuid.Parse(*req.VisitID)
		if err != nil {
			logger.Error("redeem error: invalid visit id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid visit id", nil)
			return
		}
		redeemReq.VisitID = &visitID
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	result, err := s.loyaltyService.RedeemReward(ctx, redeemReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCustomerNotFound):
			logger.Error("redeem error: unexist customer")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "customer doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrRewardNotFound):
			logger.Error("redeem error: unexist reward")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrRewardInactive):
			logger.Error("redeem error: inactive reward")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reward doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotEligible):
			logger.Error("redeem error: not enough progress")
			httputil.WriteErrorResponse(w, http.StatusConflict, "customer is not eligible for this reward", nil)
		case errors.Is(err, errorvalues.ErrMaxRedemptionsReached):
			logger.Error("redeem error: redemption cap reached")
			httputil.WriteErrorResponse(w, http.StatusConflict, "max redemptions for this reward reached", nil)
		default:
			logger.Error("redeem error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while redeeming reward", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("reward redeemed")
}

func (s *Server) GetAvailableRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	customerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("available rewards error: invalid customer id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid customer id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	rewards, err := s.loyaltyService.GetAvailableRewards(ctx, customerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			logger.Error("available rewards error: unexist customer")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "customer doesn't exist", nil)
			return
		}
		logger.Error("available rewards error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting rewards", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"customer_id": customerID.String(),
		"rewards":     rewards,
	})
	logger.Info("available rewards provided")
}

func (s *Server) ResetLoyalty(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	customerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("loyalty reset error: invalid customer id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid customer id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	customer, err := s.loyaltyService.ResetClientLoyalty(ctx, customerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCustomerNotFound) {
			logger.Error("loyalty reset error: unexist customer")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "customer doesn't exist", nil)
			return
		}
		logger.Error("loyalty reset error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting loyalty", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, customer)
	logger.Info("loyalty progress reset")
}

func (s *Server) CreateReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateRewardRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("create reward error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	reward, err := s.loyaltyService.CreateReward(ctx, &service.CreateRewardRequest{
		Name:               req.Name,
		VisitsRequired:     req.VisitsRequired,
		RewardType:         req.RewardType,
		DiscountPercentage: req.DiscountPercentage,
		ApplicableServices: req.ApplicableServices,
		MaxRedemptions:     req.MaxRedemptions,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDefinition) {
			logger.Error("create reward error: invalid definition")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward definition", err)
			return
		}
		logger.Error("create reward error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating reward", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, reward)
	logger.Info("reward created")
}
