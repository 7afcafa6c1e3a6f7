package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/fadebook/fadebook/internal/api"
	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/internal/repository"
	"github.com/fadebook/fadebook/internal/service"
	"github.com/fadebook/fadebook/internal/service/mocks"
	"github.com/fadebook/fadebook/pkg/entity"
	jwtservice "github.com/fadebook/fadebook/pkg/jwt_service"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type AdminServiceMock struct {
	success bool
}

func (asmock *AdminServiceMock) ChangeState(success bool) {
	asmock.success = success
}

func (asmock *AdminServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.AdminUser, error) {
	if asmock.success {
		return &entity.AdminUser{
			ID:           adminID,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (asmock *AdminServiceMock) Login(ctx context.Context, name, password string) (*entity.AdminUser, error) {
	if asmock.success {
		return &entity.AdminUser{
			ID:           adminID,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (asmock *AdminServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	if asmock.success {
		return &entity.AdminUser{
			ID:           adminID,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

var (
	username        = "test_admin"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	adminID         = uuid.New()
)

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := AdminServiceMock{}
	serv := api.New(&api.ServicesList{
		AdminService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})

	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", nil)
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := AdminServiceMock{}
	serv := api.New(&api.ServicesList{
		AdminService: &mock,
		JwtService:   jwtservice.New("secret"),
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		if err != nil {
			t.Fatal(err)
		}
		token, ok := result["token"].(string)
		if !ok || token == "" {
			t.Error("invalid token")
		}
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	adminID, err := api.GetAdminIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"admin_id": ` + adminID.String() + `}`))
}

func TestAuthMiddleware(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integrational test in short mode")
	}
	secret := "secret"
	cfg := setupAdminsTestDB(t)
	repo := repository.NewAdminsRepo(cfg)
	adminService := service.NewAdminService(repo)
	serv := api.New(&api.ServicesList{
		AdminService: adminService,
		JwtService:   jwtservice.New(secret),
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	// Creating admin to login
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("creating admin", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	var token string
	var ok bool
	t.Run("logging in and getting token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		if err != nil {
			t.Fatal(err)
		}
		token, ok = result["token"].(string)
		if !ok || token == "" {
			t.Error("invalid token")
		}
		t.Log("token: ", token)
	})
	t.Run("successful auth", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

var (
	customerID = uuid.New()
	barberID   = uuid.New()
)

func testStatusView() *service.LoyaltyStatusView {
	return &service.LoyaltyStatusView{
		Customer: &entity.Customer{
			ID:                    customerID,
			Name:                  "test_customer",
			CurrentProgressVisits: 3,
			LoyaltyStatus:         entity.LoyaltyActive,
		},
		EligibleRewards:    []*entity.Reward{},
		VisitsToNextReward: 7,
		ProgressPercentage: 30,
	}
}

func TestGetLoyaltyStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLoyaltyServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LoyaltyService: lService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().GetLoyaltyStatus(gomock.Any(), customerID).Return(testStatusView(), nil)
			},
			PathID: customerID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().GetLoyaltyStatus(gomock.Any(), customerID).Return(nil, errorvalues.ErrCustomerNotFound)
			},
			PathID: customerID.String(),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().GetLoyaltyStatus(gomock.Any(), customerID).Return(nil, errors.New("service error"))
			},
			PathID: customerID.String(),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "not-a-uuid",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/customers/"+tc.PathID+"/loyalty", nil)
		r.SetPathValue("id", tc.PathID)
		serv.GetLoyaltyStatus(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestSelectReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLoyaltyServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LoyaltyService: lService,
	})
	rewardID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.SelectRewardRequest{
		RewardID: rewardID.String(),
	})
	require.NoError(t, err)
	badRewardBody, err := sonic.ConfigDefault.Marshal(api.SelectRewardRequest{
		RewardID: "not-a-uuid",
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().SelectReward(gomock.Any(), customerID, rewardID).Return(&entity.Customer{
					ID:               customerID,
					SelectedRewardID: &rewardID,
					LoyaltyStatus:    entity.LoyaltyActive,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().SelectReward(gomock.Any(), customerID, rewardID).Return(nil, errorvalues.ErrCustomerNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().SelectReward(gomock.Any(), customerID, rewardID).Return(nil, errorvalues.ErrRewardNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().SelectReward(gomock.Any(), customerID, rewardID).Return(nil, errorvalues.ErrRewardInactive)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().SelectReward(gomock.Any(), customerID, rewardID).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader(badRewardBody),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/customers/"+customerID.String()+"/loyalty/select", tc.Body)
		r.SetPathValue("id", customerID.String())
		serv.SelectReward(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestRecordVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLoyaltyServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LoyaltyService: lService,
	})
	visitID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.RecordVisitRequest{
		VisitID: visitID.String(),
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().RecordVisitForLoyalty(gomock.Any(), customerID, visitID).Return(&entity.Customer{
					ID:                    customerID,
					VisitCount:            9,
					TotalLifetimeVisits:   9,
					CurrentProgressVisits: 4,
					LoyaltyStatus:         entity.LoyaltyActive,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().RecordVisitForLoyalty(gomock.Any(), customerID, visitID).Return(nil, errorvalues.ErrCustomerNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().RecordVisitForLoyalty(gomock.Any(), customerID, visitID).Return(nil, errorvalues.ErrVisitNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().RecordVisitForLoyalty(gomock.Any(), customerID, visitID).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/customers/"+customerID.String()+"/loyalty/visit", tc.Body)
		r.SetPathValue("id", customerID.String())
		serv.RecordVisit(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestRedeemReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLoyaltyServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LoyaltyService: lService,
	})
	rewardID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.RedeemRewardRequest{
		RewardID:   rewardID.String(),
		RedeemedBy: "front desk",
	})
	require.NoError(t, err)
	redeemReq := &service.RedeemRequest{
		CustomerID: customerID,
		RewardID:   rewardID,
		RedeemedBy: "front desk",
	}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().RedeemReward(gomock.Any(), redeemReq).Return(&service.RedeemResult{
					Customer: &entity.Customer{
						ID:              customerID,
						RewardsRedeemed: 1,
						LoyaltyStatus:   entity.LoyaltyActive,
					},
					Receipt: service.RedemptionReceipt{
						RewardID:         rewardID,
						RewardName:       "free haircut",
						RewardType:       entity.RewardFree,
						PreviousProgress: 11,
					},
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().RedeemReward(gomock.Any(), redeemReq).Return(nil, errorvalues.ErrCustomerNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().RedeemReward(gomock.Any(), redeemReq).Return(nil, errorvalues.ErrRewardNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().RedeemReward(gomock.Any(), redeemReq).Return(nil, errorvalues.ErrRewardInactive)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				lService.EXPECT().RedeemReward(gomock.Any(), redeemReq).Return(nil, errorvalues.ErrNotEligible)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				lService.EXPECT().RedeemReward(gomock.Any(), redeemReq).Return(nil, errorvalues.ErrMaxRedemptionsReached)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().RedeemReward(gomock.Any(), redeemReq).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/customers/"+customerID.String()+"/loyalty/redeem", tc.Body)
		r.SetPathValue("id", customerID.String())
		serv.RedeemReward(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}

	t.Run("invalid visit id", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.RedeemRewardRequest{
			RewardID:   rewardID.String(),
			RedeemedBy: "front desk",
			VisitID:    strPtr("not-a-uuid"),
		})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/customers/"+customerID.String()+"/loyalty/redeem", bytes.NewReader(body))
		r.SetPathValue("id", customerID.String())
		serv.RedeemReward(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func strPtr(s string) *string {
	return &s
}

func TestGetAvailableRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLoyaltyServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LoyaltyService: lService,
	})
	rewards := []*entity.Reward{
		{
			ID:             uuid.New(),
			Name:           "free haircut",
			VisitsRequired: 10,
			RewardType:     entity.RewardFree,
			IsActive:       true,
		},
		{
			ID:             uuid.New(),
			Name:           "half off color",
			VisitsRequired: 5,
			RewardType:     entity.RewardDiscount,
			IsActive:       true,
		},
	}

	testCases := []struct {
		ExpectedCode         int
		MockPrepFunc         func()
		ExpectedRewardsCount int
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().GetAvailableRewards(gomock.Any(), customerID).Return(rewards, nil)
			},
			ExpectedRewardsCount: 2,
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().GetAvailableRewards(gomock.Any(), customerID).Return(nil, errorvalues.ErrCustomerNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().GetAvailableRewards(gomock.Any(), customerID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/customers/"+customerID.String()+"/loyalty/rewards", nil)
		r.SetPathValue("id", customerID.String())
		serv.GetAvailableRewards(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			result := make(map[string]any)
			err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
			require.NoError(t, err)
			list, ok := result["rewards"].([]any)
			if !ok {
				t.Error("invalid response body")
			}
			assert.Equal(t, tc.ExpectedRewardsCount, len(list))
		}
	}
}

func TestResetLoyalty(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLoyaltyServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LoyaltyService: lService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().ResetClientLoyalty(gomock.Any(), customerID).Return(&entity.Customer{
					ID:                  customerID,
					TotalLifetimeVisits: 8,
					LoyaltyStatus:       entity.LoyaltyActive,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().ResetClientLoyalty(gomock.Any(), customerID).Return(nil, errorvalues.ErrCustomerNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().ResetClientLoyalty(gomock.Any(), customerID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/customers/"+customerID.String()+"/loyalty/reset", nil)
		r.SetPathValue("id", customerID.String())
		serv.ResetLoyalty(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestCreateRewardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLoyaltyServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LoyaltyService: lService,
	})
	reward := api.CreateRewardRequest{
		Name:           "free haircut",
		VisitsRequired: 10,
		RewardType:     "free",
	}
	body, err := sonic.ConfigDefault.Marshal(reward)
	require.NoError(t, err)
	rewardID := uuid.New()
	serviceReq := &service.CreateRewardRequest{
		Name:           reward.Name,
		VisitsRequired: reward.VisitsRequired,
		RewardType:     reward.RewardType,
	}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				lService.EXPECT().CreateReward(gomock.Any(), serviceReq).Return(&entity.Reward{
					ID:             rewardID,
					Name:           reward.Name,
					VisitsRequired: reward.VisitsRequired,
					RewardType:     entity.RewardFree,
					IsActive:       true,
					CreatedAt:      time.Now(),
					UpdatedAt:      time.Now(),
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				lService.EXPECT().CreateReward(gomock.Any(), serviceReq).Return(nil, errorvalues.ErrInvalidDefinition)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().CreateReward(gomock.Any(), serviceReq).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/rewards", tc.Body)
		serv.CreateReward(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestRefreshAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAchievementsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AchievementsService: aService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				aService.EXPECT().UpdateProgress(gomock.Any(), barberID).Return(nil)
			},
			PathID: barberID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				aService.EXPECT().UpdateProgress(gomock.Any(), barberID).Return(errorvalues.ErrBarberNotFound)
			},
			PathID: barberID.String(),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				aService.EXPECT().UpdateProgress(gomock.Any(), barberID).Return(errors.New("service error"))
			},
			PathID: barberID.String(),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "not-a-uuid",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/barbers/"+tc.PathID+"/achievements/refresh", nil)
		r.SetPathValue("id", tc.PathID)
		serv.RefreshAchievements(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAchievementsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AchievementsService: aService,
	})
	views := []service.AchievementProgressView{
		{
			Achievement: &entity.Achievement{
				ID:       uuid.New(),
				Title:    "century club",
				Category: entity.CategoryVisits,
			},
			Progress:           47,
			ProgressPercentage: 47,
		},
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				aService.EXPECT().GetProgress(gomock.Any(), barberID).Return(views, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				aService.EXPECT().GetProgress(gomock.Any(), barberID).Return(nil, errorvalues.ErrBarberNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				aService.EXPECT().GetProgress(gomock.Any(), barberID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/barbers/"+barberID.String()+"/achievements", nil)
		r.SetPathValue("id", barberID.String())
		serv.GetAchievements(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			result := make(map[string]any)
			err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
			require.NoError(t, err)
			assert.Equal(t, barberID.String(), result["barber_id"])
		}
	}
}

func TestRefreshBarberRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	brService := mocks.NewMockBarberRewardsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BarberRewardsService: brService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				brService.EXPECT().UpdateRewardProgress(gomock.Any(), barberID).Return(nil)
			},
			PathID: barberID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				brService.EXPECT().UpdateRewardProgress(gomock.Any(), barberID).Return(errorvalues.ErrBarberNotFound)
			},
			PathID: barberID.String(),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				brService.EXPECT().UpdateRewardProgress(gomock.Any(), barberID).Return(errors.New("service error"))
			},
			PathID: barberID.String(),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "not-a-uuid",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/barbers/"+tc.PathID+"/rewards/refresh", nil)
		r.SetPathValue("id", tc.PathID)
		serv.RefreshBarberRewards(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetBarberRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	brService := mocks.NewMockBarberRewardsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BarberRewardsService: brService,
	})
	views := []service.BarberRewardProgressView{
		{
			Reward: &entity.BarberReward{
				ID:    uuid.New(),
				Title: "anniversary bonus",
			},
			Progress:           120,
			ProgressPercentage: 100,
			Status:             entity.RedemptionEarned,
		},
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				brService.EXPECT().GetRewardProgress(gomock.Any(), barberID).Return(views, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				brService.EXPECT().GetRewardProgress(gomock.Any(), barberID).Return(nil, errorvalues.ErrBarberNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				brService.EXPECT().GetRewardProgress(gomock.Any(), barberID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/barbers/"+barberID.String()+"/rewards", nil)
		r.SetPathValue("id", barberID.String())
		serv.GetBarberRewards(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestMarkRedemptionRedeemed(t *testing.T) {
	ctrl := gomock.NewController(t)
	brService := mocks.NewMockBarberRewardsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BarberRewardsService: brService,
	})
	redemptionID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.MarkRedeemedRequest{
		Notes: "paid out in cash",
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				brService.EXPECT().MarkRedeemed(gomock.Any(), redemptionID, adminID, "paid out in cash").Return(true, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				brService.EXPECT().MarkRedeemed(gomock.Any(), redemptionID, adminID, "paid out in cash").Return(false, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				brService.EXPECT().MarkRedeemed(gomock.Any(), redemptionID, adminID, "paid out in cash").Return(false, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/redemptions/"+redemptionID.String()+"/redeem", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "Admin-ID", adminID))
		r.SetPathValue("id", redemptionID.String())
		serv.MarkRedemptionRedeemed(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}

	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/redemptions/"+redemptionID.String()+"/redeem", bytes.NewReader(body))
		r.SetPathValue("id", redemptionID.String())
		serv.MarkRedemptionRedeemed(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})

	t.Run("invalid redemption id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/redemptions/not-a-uuid/redeem", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "Admin-ID", adminID))
		r.SetPathValue("id", "not-a-uuid")
		serv.MarkRedemptionRedeemed(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetLeaderboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	lbService := mocks.NewMockLeaderboardServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LeaderboardService: lbService,
	})
	entries := []entity.LeaderboardEntry{
		{
			BarberID:      barberID,
			Name:          "test_barber",
			Rank:          1,
			Score:         395,
			TotalVisits:   200,
			UniqueClients: 50,
			MonthsWorked:  6,
			Badges:        []string{"visits_100"},
		},
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lbService.EXPECT().GetLeaderboard(gomock.Any()).Return(entries, nil)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lbService.EXPECT().GetLeaderboard(gomock.Any()).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			result := make(map[string]any)
			err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
			require.NoError(t, err)
			list, ok := result["leaderboard"].([]any)
			if !ok {
				t.Error("invalid response body")
			}
			assert.Equal(t, len(entries), len(list))
		}
	}
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupAdminsTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fadebook"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
