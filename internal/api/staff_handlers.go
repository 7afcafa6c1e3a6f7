package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/pkg/httputil"
	"github.com/google/uuid"
)

type MarkRedeemedRequest struct {
	Notes string `json:"notes,omitempty"`
}

func (s *Server) RefreshAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	barberID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("achievements refresh error: invalid barber id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid barber id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	err = s.achievementsService.UpdateProgress(ctx, barberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			logger.Error("achievements refresh error: unexist barber")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "barber doesn't exist", nil)
			return
		}
		logger.Error("achievements refresh error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while refreshing achievements", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("achievements refreshed")
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	barberID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("achievements error: invalid barber id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid barber id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	progress, err := s.achievementsService.GetProgress(ctx, barberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			logger.Error("achievements error: unexist barber")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "barber doesn't exist", nil)
			return
		}
		logger.Error("achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"barber_id":    barberID.String(),
		"achievements": progress,
	})
	logger.Info("achievements provided")
}

func (s *Server) RefreshBarberRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	barberID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("rewards refresh error: invalid barber id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid barber id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	err = s.barberRewardsService.UpdateRewardProgress(ctx, barberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			logger.Error("rewards refresh error: unexist barber")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "barber doesn't exist", nil)
			return
		}
		logger.Error("rewards refresh error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while refreshing rewards", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("barber rewards refreshed")
}

func (s *Server) GetBarberRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	barberID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("rewards error: invalid barber id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid barber id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	progress, err := s.barberRewardsService.GetRewardProgress(ctx, barberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			logger.Error("rewards error: unexist barber")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "barber doesn't exist", nil)
			return
		}
		logger.Error("rewards error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting rewards", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"barber_id": barberID.String(),
		"rewards":   progress,
	})
	logger.Info("barber rewards provided")
}

func (s *Server) MarkRedemptionRedeemed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	adminID, err := GetAdminIDFromContext(r)
	if err != nil {
		logger.Error("redemption marking error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	redemptionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("redemption marking error: invalid redemption id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid redemption id in path value", nil)
		return
	}
	var req MarkRedeemedRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("redemption marking error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	ok, err := s.barberRewardsService.MarkRedeemed(ctx, redemptionID, adminID, req.Notes)
	if err != nil {
		logger.Error("redemption marking error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while marking redemption", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"redemption_id": redemptionID.String(),
		"redeemed":      ok,
	})
	logger.Info("redemption marking handled", slog.Bool("redeemed", ok))
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	entries, err := s.leaderboardService.GetLeaderboard(ctx)
	if err != nil {
		logger.Error("leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"leaderboard": entries,
	})
	logger.Info("leaderboard provided")
}
