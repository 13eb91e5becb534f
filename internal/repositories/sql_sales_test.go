package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/models"
)

func TestSalesRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(salesTestSuite))
}

type salesTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    SalesRepository
}

func (suite *salesTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetSalesRepository()
}

func (suite *salesTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

var dailySalesColumns = []string{
	"id", "day", "sum", "count", "originalFilename", "singleDate", "dateFrom", "dateTo", "createdAt",
}

func (suite *salesTestSuite) TestRepository_GetDailySales() {
	batchID := int64(4)
	createdAt := time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		filter     models.WindowFilter
		setupMocks func(query string)
		want       []models.DailySales
		wantErr    bool
	}{
		{
			name:   "test success",
			filter: models.WindowFilter{Year: 2024, Month: 1, BatchID: &batchID},
			setupMocks: func(query string) {
				rows := sqlmock.NewRows(dailySalesColumns).
					AddRow(4, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), "1234.50", 12,
						"ventas.xlsx", time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), nil, nil, createdAt)
				suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(
						time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
						batchID,
					).
					WillReturnRows(rows)
			},
			want: []models.DailySales{
				{
					BatchID:     4,
					Date:        date(2024, time.January, 2),
					Sales:       *amount("1234.5"),
					RecordCount: 12,
					Batch: models.UploadBatch{
						ID:               4,
						OriginalFilename: "ventas.xlsx",
						SingleDate:       datePtr(date(2024, time.January, 2)),
						CreatedAt:        &createdAt,
					},
				},
			},
		},
		{
			name:   "test empty window",
			filter: models.WindowFilter{Year: 2023},
			setupMocks: func(query string) {
				suite.mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(sqlmock.NewRows(dailySalesColumns))
			},
		},
		{
			name:   "test error result",
			filter: models.WindowFilter{},
			setupMocks: func(query string) {
				suite.mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
		{
			name:   "test error scan",
			filter: models.WindowFilter{},
			setupMocks: func(query string) {
				rows := sqlmock.NewRows(dailySalesColumns).
					AddRow(4, "not a date", "1", 1, "x", nil, nil, nil, nil)
				suite.mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)
			},
			wantErr: true,
		},
	}
	for _, tt := range testCases {
		suite.t.Run(tt.name, func(t *testing.T) {
			query, _, err := buildDailySalesQuery(tt.filter).ToSql()
			require.NoError(t, err)
			tt.setupMocks(query)

			got, err := suite.repo.GetDailySales(context.Background(), tt.filter)
			assert.Equal(t, tt.wantErr, err != nil)
			if !tt.wantErr {
				require.Len(t, got, len(tt.want))
				for i := range tt.want {
					assert.Equal(t, tt.want[i].BatchID, got[i].BatchID)
					assert.Equal(t, tt.want[i].Date, got[i].Date)
					assert.True(t, tt.want[i].Sales.Equal(got[i].Sales))
					assert.Equal(t, tt.want[i].RecordCount, got[i].RecordCount)
					assert.Equal(t, tt.want[i].Batch, got[i].Batch)
				}
			}
			assert.NoError(t, suite.mock.ExpectationsWereMet())
		})
	}
}

func (suite *salesTestSuite) TestRepository_GetAvailableYears() {
	query, _, err := buildAvailableYearsQuery(nil).ToSql()
	require.NoError(suite.t, err)

	suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows([]string{"year"}).AddRow(2023).AddRow(2024))
	years, err := suite.repo.GetAvailableYears(context.Background(), nil)
	assert.NoError(suite.t, err)
	assert.Equal(suite.t, []int{2023, 2024}, years)

	suite.mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(assert.AnError)
	_, err = suite.repo.GetAvailableYears(context.Background(), nil)
	assert.Error(suite.t, err)

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *salesTestSuite) TestRepository_GetAvailableMonths() {
	batchID := int64(2)
	query, _, err := buildAvailableMonthsQuery(2024, &batchID).ToSql()
	require.NoError(suite.t, err)

	suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			batchID,
		).
		WillReturnRows(sqlmock.NewRows([]string{"month"}).AddRow(1).AddRow(3))
	months, err := suite.repo.GetAvailableMonths(context.Background(), 2024, &batchID)
	assert.NoError(suite.t, err)
	assert.Equal(suite.t, []int{1, 3}, months)

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *salesTestSuite) TestRepository_GetBatch() {
	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "originalFilename", "singleDate", "dateFrom", "dateTo", "createdAt"}

	testCases := []struct {
		name       string
		setupMocks func()
		wantErr    error
	}{
		{
			name: "test success",
			setupMocks: func() {
				rows := sqlmock.NewRows(columns).AddRow(9, "semana.csv", nil, from, to, nil)
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryBatchGetByID)).WithArgs(int64(9)).WillReturnRows(rows)
			},
		},
		{
			name: "test data not found",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryBatchGetByID)).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrBatchNotFound,
		},
		{
			name: "test error result",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryBatchGetByID)).WithArgs(int64(9)).WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}
	for _, tt := range testCases {
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			got, err := suite.repo.GetBatch(context.Background(), 9)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.Equal(t, int64(9), got.ID)
				assert.Nil(t, got.SingleDate)
				assert.Equal(t, date(2024, time.February, 1), *got.DateFrom)
				assert.Equal(t, date(2024, time.February, 7), *got.DateTo)
				assert.Equal(t, "01/02/2024 al 07/02/2024", got.PeriodLabel())
			}
			assert.NoError(t, suite.mock.ExpectationsWereMet())
		})
	}
}
