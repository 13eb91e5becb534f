package sales

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/services/mock"
)

type testSalesHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockSalesLedgerService
}

func salesTestHelper(t *testing.T) testSalesHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockSvc := mock.NewMockSalesLedgerService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testSalesHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func doRequest(t *testing.T, router *echo.Echo, method, url, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, strings.TrimSuffix(string(b), "\n")
}

func Test_Handler_getDailySales(t *testing.T) {
	batchID := int64(3)
	emptyOut := &models.DailySalesOut{
		Kind:    "dailySales",
		Results: []models.DailySalesRowOut{},
		Filters: models.DailySalesFiltersOut{
			Year:            2024,
			AvailableYears:  []int{2024},
			AvailableMonths: []int{1},
		},
		WeekSummary: []models.WeekSummaryOut{},
	}

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func(h testSalesHelper)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/sales/daily?year=2024&month=1",
			mockData: mockData{
				wantRes:  `{"kind":"dailySales","results":[],"filters":{"year":2024,"month":null,"monthLabel":null,"batchId":null,"dateFrom":null,"dateTo":null,"availableYears":[2024],"availableMonths":[1]},"dataset":null,"stats":{"totalSales":0.00,"days":0,"averageDaily":0.00,"maxDay":null},"weekSummary":[]}`,
				wantCode: 200,
			},
			doMock: func(h testSalesHelper) {
				h.mockService.EXPECT().GetDailySales(gomock.Any(), models.WindowFilter{Year: 2024, Month: 1}).Return(emptyOut, nil)
			},
		},
		{
			name:      "success with batch and range",
			urlCalled: "/api/v1/sales/daily?batch_id=3&date_from=2024-01-02&date_to=2024-01-05",
			mockData: mockData{
				wantRes:  `{"kind":"dailySales","results":[],"filters":{"year":2024,"month":null,"monthLabel":null,"batchId":null,"dateFrom":null,"dateTo":null,"availableYears":[2024],"availableMonths":[1]},"dataset":null,"stats":{"totalSales":0.00,"days":0,"averageDaily":0.00,"maxDay":null},"weekSummary":[]}`,
				wantCode: 200,
			},
			doMock: func(h testSalesHelper) {
				from := civil.Date{Year: 2024, Month: 1, Day: 2}
				to := civil.Date{Year: 2024, Month: 1, Day: 5}
				h.mockService.EXPECT().
					GetDailySales(gomock.Any(), models.WindowFilter{BatchID: &batchID, DateFrom: &from, DateTo: &to}).
					Return(emptyOut, nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/sales/daily?month=13&date_from=02-01-2024",
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"OUT_OF_RANGE","field":"month","message":"field is out of range"},{"code":"INVALID_DATE","field":"date_from","message":"field must be a date formatted as YYYY-MM-DD"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error inverted range",
			urlCalled: "/api/v1/sales/daily?date_from=2024-02-01&date_to=2024-01-01",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"INVALID_WINDOW_FILTER","message":"invalid window filter caused by date_to is before date_from"}`,
				wantCode: 400,
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/sales/daily",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"DATABASE_ERROR","message":"database error caused by boom"}`,
				wantCode: 500,
			},
			doMock: func(h testSalesHelper) {
				h.mockService.EXPECT().GetDailySales(gomock.Any(), models.WindowFilter{}).
					Return(nil, models.GetErrMap(models.ErrKeyDatabaseError, "boom"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper := salesTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}

			code, body := doRequest(t, testHelper.router, http.MethodGet, tt.urlCalled, "")
			require.Equal(t, tt.mockData.wantCode, code)
			require.Equal(t, tt.mockData.wantRes, body)
		})
	}
}

func Test_Handler_upsertManualEntry(t *testing.T) {
	const urlCalled = "/api/v1/sales/manual"
	date := civil.Date{Year: 2024, Month: 1, Day: 2}

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name     string
		body     string
		mockData mockData
		doMock   func(h testSalesHelper)
	}{
		{
			name: "success",
			body: `{"batchId":1,"date":"2024-01-02","fields":{"payments":100,"closingBalance":"200"},"settlementTotal":1400}`,
			mockData: mockData{
				wantRes:  `{"kind":"manualEntry","batchId":1,"date":"2024-01-02","fields":{"anulado":0.00,"payments":100.00,"debits":0.00,"expenses":0.00,"vouchers":0.00,"closingBalance":200.00,"openingBalance":0.00},"settlementTotal":1400.00}`,
				wantCode: 201,
			},
			doMock: func(h testSalesHelper) {
				h.mockService.EXPECT().UpsertManualEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.UpsertManualEntryIn) (*models.ManualEntry, error) {
						assert.Equal(t, int64(1), in.BatchID)
						assert.Equal(t, date, in.Date)
						assert.True(t, in.Fields.Payments.Equal(decimal.NewFromInt(100)))
						assert.True(t, in.Fields.Vouchers.IsZero())
						assert.Nil(t, in.Fields.OpeningBalance)
						return &models.ManualEntry{
							BatchID:         in.BatchID,
							Date:            in.Date,
							Fields:          in.Fields,
							SettlementTotal: in.SettlementTotal,
						}, nil
					})
			},
		},
		{
			name: "error validating request",
			body: `{"fields":{}}`,
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"MISSING_FIELD","field":"batchId","message":"field is missing"},{"code":"MISSING_FIELD","field":"date","message":"field is missing"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "error malformed amount",
			body: `{"batchId":1,"date":"2024-01-02","fields":{"payments":"abc"}}`,
			mockData: mockData{
				wantCode: 400,
			},
		},
		{
			name: "error batch not found",
			body: `{"batchId":9,"date":"2024-01-02"}`,
			mockData: mockData{
				wantRes:  `{"status":"error","code":"BATCH_NOT_FOUND","message":"upload batch not found caused by batch 9"}`,
				wantCode: 404,
			},
			doMock: func(h testSalesHelper) {
				h.mockService.EXPECT().UpsertManualEntry(gomock.Any(), gomock.Any()).
					Return(nil, models.GetErrMap(models.ErrKeyBatchNotFound, "batch 9"))
			},
		},
		{
			name: "error service",
			body: `{"batchId":1,"date":"2024-01-02"}`,
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(h testSalesHelper) {
				h.mockService.EXPECT().UpsertManualEntry(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper := salesTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}

			code, body := doRequest(t, testHelper.router, http.MethodPost, urlCalled, tt.body)
			require.Equal(t, tt.mockData.wantCode, code)
			if tt.mockData.wantRes != "" {
				require.Equal(t, tt.mockData.wantRes, body)
			}
		})
	}
}
