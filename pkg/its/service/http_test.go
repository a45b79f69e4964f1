package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/interchain-gateway/pkg/auth"
	"github.com/chainsafe/interchain-gateway/pkg/its"
	"github.com/chainsafe/interchain-gateway/pkg/its/service/mocks"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

const testAdmin = message.Address("axelar1admin")

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newLedgerTestServer(svc Service, sender message.Address) http.Handler {
	r := chi.NewRouter()
	if sender != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(auth.WithSender(req.Context(), sender)))
			})
		})
	}
	RegisterRoutes(r, svc, testAdmin, zap.NewNop())
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

var (
	tokenPath    = "/tokens/" + testToken.String()
	suiInstance  = tokenPath + "/instances/sui"
	registerBody = map[string]any{"chain": "sui", "max_uint": "1000000", "max_target_decimals": 6}
)

func TestHTTP_AdminRoutesRequireAdmin(t *testing.T) {
	svc := mocks.NewService(t)

	rec := doJSON(t, newLedgerTestServer(svc, ""), http.MethodPost, "/chains", registerBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, newLedgerTestServer(svc, "axelar1someone"), http.MethodPost, "/chains", registerBody)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "sender not allowed", decode[errorBody](t, rec).Error)

	rec = doJSON(t, newLedgerTestServer(svc, "axelar1someone"), http.MethodPost, "/chains/sui/freeze", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, newLedgerTestServer(svc, "axelar1someone"), http.MethodDelete, "/contracts/sui", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHTTP_SupplyRoutesRequireGateway(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Config(mock.Anything).Return(&its.Config{AxelarnetGateway: testGateway}, nil)

	rec := doJSON(t, newLedgerTestServer(svc, testAdmin), http.MethodPost, suiInstance+"/credit", map[string]string{"amount": "5"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHTTP_SupplyRefusedWhileFrozen(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Config(mock.Anything).Return(&its.Config{AxelarnetGateway: testGateway}, nil)
	svc.EXPECT().IsChainFrozen(mock.Anything, message.ChainName("sui")).Return(true, nil)

	rec := doJSON(t, newLedgerTestServer(svc, testGateway), http.MethodPost, suiInstance+"/debit", map[string]string{"amount": "5"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, its.ErrChainFrozen.Error(), decode[errorBody](t, rec).Error)
	svc.AssertNotCalled(t, "DebitSupply", mock.Anything, mock.Anything)
}

func TestHTTP_CreditPassesRequest(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Config(mock.Anything).Return(&its.Config{AxelarnetGateway: testGateway}, nil)
	svc.EXPECT().IsChainFrozen(mock.Anything, message.ChainName("sui")).Return(false, nil)
	svc.EXPECT().CreditSupply(mock.Anything, &its.SupplyChangeRequest{
		Chain:   "sui",
		TokenID: testToken,
		Amount:  its.MustAmount(1500),
	}).Return(&its.TokenInstance{Supply: its.Tracked(uint256.NewInt(1500)), Decimals: u8(3)}, nil)

	rec := doJSON(t, newLedgerTestServer(svc, testGateway), http.MethodPost, "/tokens/"+testToken.String()+"/instances/SUI/credit", map[string]string{"amount": "1500"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.Equal(t, "1.5", got["formatted_supply"])
	assert.Equal(t, map[string]any{"type": "tracked", "amount": "1500"}, got["supply"])
}

func TestHTTP_BadParams(t *testing.T) {
	svc := mocks.NewService(t)
	h := newLedgerTestServer(svc, testAdmin)

	rec := doJSON(t, h, http.MethodGet, "/tokens/0x1234", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/chains/bad_chain", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/chains", map[string]any{"chain": "sui", "max_uint": "0"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTP_TranslateRejectsInvalidChains(t *testing.T) {
	svc := mocks.NewService(t)
	h := newLedgerTestServer(svc, testAdmin)

	rec := doJSON(t, h, http.MethodPost, tokenPath+"/translate", map[string]any{
		"source_chain":      strings.Repeat("a", 70_000),
		"destination_chain": "sui",
		"amount":            "1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, tokenPath+"/translate", map[string]any{
		"source_chain":      "ethereum",
		"destination_chain": "",
		"amount":            "1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/tokens", map[string]any{"token_id": testToken.String(), "origin_chain": "bad_chain", "decimals": 18})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertNotCalled(t, "TranslateAmount", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "RegisterToken", mock.Anything, mock.Anything)
}

func TestHTTP_LedgerFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestLedger(t)
	admin := newLedgerTestServer(svc, testAdmin)
	gateway := newLedgerTestServer(svc, testGateway)

	rec := doJSON(t, admin, http.MethodPost, "/chains", map[string]any{"chain": "ethereum", "max_uint": "1000000000000000000000", "max_target_decimals": 18})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, admin, http.MethodPost, "/chains", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, admin, http.MethodPost, "/tokens", map[string]any{"token_id": testToken.String(), "origin_chain": "ethereum", "decimals": 18})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, admin, http.MethodPost, tokenPath+"/instances", map[string]any{"chain": "sui", "deployment_type": "trustless"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, gateway, http.MethodPost, suiInstance+"/credit", map[string]string{"amount": "100"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, gateway, http.MethodPost, suiInstance+"/debit", map[string]string{"amount": "150"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, admin, http.MethodPost, "/chains/sui/freeze", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, admin, http.MethodGet, "/chains/sui/frozen", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, frozenResponse{Chain: "sui", Frozen: true}, decode[frozenResponse](t, rec))

	rec = doJSON(t, gateway, http.MethodPost, suiInstance+"/debit", map[string]string{"amount": "50"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	inst, err := svc.TokenInstance(ctx, "sui", testToken)
	require.NoError(t, err)
	assert.Equal(t, its.Tracked(uint256.NewInt(100)), inst.Supply)

	rec = doJSON(t, admin, http.MethodGet, suiInstance, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.0001", decode[map[string]any](t, rec)["formatted_supply"])

	rec = doJSON(t, admin, http.MethodPost, tokenPath+"/translate", map[string]any{"source_chain": "ethereum", "destination_chain": "sui", "amount": "2000000000000"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, its.MustAmount(2), decode[translateResponse](t, rec).Amount)
}

func TestHTTP_Contracts(t *testing.T) {
	svc := newTestLedger(t)
	admin := newLedgerTestServer(svc, testAdmin)

	rec := doJSON(t, admin, http.MethodGet, "/contracts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[contractsResponse](t, rec).Contracts)

	rec = doJSON(t, admin, http.MethodPost, "/contracts", map[string]string{"chain": "Sui", "address": "0xsui"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, contractResponse{Chain: "sui", Address: "0xsui"}, decode[contractResponse](t, rec))

	rec = doJSON(t, admin, http.MethodPost, "/contracts", map[string]string{"chain": "sui", "address": "0xsui"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, admin, http.MethodGet, "/contracts/sui", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, admin, http.MethodDelete, "/contracts/sui", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, admin, http.MethodDelete, "/contracts/sui", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
