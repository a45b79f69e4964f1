package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/interchain-gateway/pkg/app/http"
	"github.com/chainsafe/interchain-gateway/pkg/auth"
	"github.com/chainsafe/interchain-gateway/pkg/config"
	"github.com/chainsafe/interchain-gateway/pkg/gateway"
	gatewaymocks "github.com/chainsafe/interchain-gateway/pkg/gateway/service/mocks"
	"github.com/chainsafe/interchain-gateway/pkg/its"
	itsmocks "github.com/chainsafe/interchain-gateway/pkg/its/service/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{RequestTimeout: 5 * time.Second},
		Gateway:    config.GatewayConfig{VerifierAddress: "axelar1verifier", RouterAddress: "axelar1router"},
		ITS:        config.ITSConfig{AxelarnetGateway: "axelar1gateway", AdminAddress: "axelar1admin"},
		Auth:       config.AuthConfig{JWTSecret: "secret", Issuer: "test", TokenTTL: time.Hour},
		Monitoring: config.MonitoringConfig{Enabled: true},
	}
}

func serve(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Operational(t *testing.T) {
	cfg := testConfig()
	gw := gatewaymocks.NewService(t)
	h := newRouter(cfg, gw, itsmocks.NewService(t), auth.NewTokenAuthority(&cfg.Auth), zap.NewNop())

	rec := serve(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(apphttp.HeaderRequestID))

	gw.EXPECT().Config(mock.Anything).Return(nil, errors.New("not instantiated")).Once()
	rec = serve(h, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	gw.EXPECT().Config(mock.Anything).Return(&gateway.Config{}, nil).Once()
	rec = serve(h, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_APIRequiresToken(t *testing.T) {
	cfg := testConfig()
	authority := auth.NewTokenAuthority(&cfg.Auth)
	gw := gatewaymocks.NewService(t)
	ledger := itsmocks.NewService(t)
	h := newRouter(cfg, gw, ledger, authority, zap.NewNop())

	rec := serve(h, http.MethodGet, "/api/v1/gateway/config", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/its/config", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := authority.IssueToken("axelar1relayer")
	require.NoError(t, err)

	gw.EXPECT().Config(mock.Anything).Return(&gateway.Config{Verifier: "axelar1verifier", Router: "axelar1router"}, nil)
	rec = serve(h, http.MethodGet, "/api/v1/gateway/config", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	ledger.EXPECT().Config(mock.Anything).Return(&its.Config{AxelarnetGateway: "axelar1gateway"}, nil)
	rec = serve(h, http.MethodGet, "/api/v1/its/config", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/its/chains/sui/freeze", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestInstantiate(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	gw := gatewaymocks.NewService(t)
	ledger := itsmocks.NewService(t)

	gw.EXPECT().Instantiate(mock.Anything, &gateway.InstantiateRequest{
		VerifierAddress: "axelar1verifier",
		RouterAddress:   "axelar1router",
	}).Return(nil)
	ledger.EXPECT().Instantiate(mock.Anything, &its.InstantiateRequest{AxelarnetGateway: "axelar1gateway"}).Return(nil)
	require.NoError(t, instantiate(ctx, cfg, gw, ledger, zap.NewNop()))

	cfg.Gateway = config.GatewayConfig{}
	cfg.ITS.AxelarnetGateway = ""
	require.NoError(t, instantiate(ctx, cfg, gatewaymocks.NewService(t), itsmocks.NewService(t), zap.NewNop()))

	failing := gatewaymocks.NewService(t)
	failing.EXPECT().Instantiate(mock.Anything, mock.Anything).Return(errors.New("bad address"))
	cfg.Gateway = config.GatewayConfig{VerifierAddress: "x", RouterAddress: "y"}
	require.Error(t, instantiate(ctx, cfg, failing, itsmocks.NewService(t), zap.NewNop()))
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Backend = config.StoreBackendMemory

	store, closeStore, err := openStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, store.Set(context.Background(), "ns", []byte("k"), []byte("v")))
	got, err := store.Get(context.Background(), "ns", []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}
