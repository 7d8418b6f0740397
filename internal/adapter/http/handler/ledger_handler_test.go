package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/adapter/http/handler"
	"github.com/iho/bankledger/internal/adapter/http/handler/mocks"
	"github.com/iho/bankledger/internal/ledger"
)

func TestLedgerHandler_Consistency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockLedgerService(ctrl)
	svc.EXPECT().CheckConsistency().Return(ledger.ConsistencyReport{
		Consistent:   true,
		TotalBalance: decimal.NewFromInt(100),
		TotalAmount:  decimal.NewFromInt(100),
	})

	req := httptest.NewRequest(http.MethodGet, "/consistency", nil)
	rec := httptest.NewRecorder()

	handler.NewLedgerHandler(svc).Consistency(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ConsistencyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Consistent)
}

func TestLedgerHandler_Consistency_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockLedgerService(ctrl)
	svc.EXPECT().CheckConsistency().Return(ledger.ConsistencyReport{
		Consistent: false,
		Mismatches: []string{"account SV-000001 balance 10 != row sum 20"},
	})

	req := httptest.NewRequest(http.MethodGet, "/consistency", nil)
	rec := httptest.NewRecorder()

	handler.NewLedgerHandler(svc).Consistency(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
