package report

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/report"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/ims/backend/internal/infrastructure/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockOrderReportRepository struct {
	mock.Mock
}

func (m *mockOrderReportRepository) OrderSummary(ctx context.Context, period report.Period) (*report.OrderSummary, error) {
	args := m.Called(ctx, period)
	if s := args.Get(0); s != nil {
		return s.(*report.OrderSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderReportRepository) SalesRegister(ctx context.Context, period report.Period) (*report.SalesRegister, error) {
	args := m.Called(ctx, period)
	if r := args.Get(0); r != nil {
		return r.(*report.SalesRegister), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockInventoryReportRepository struct {
	mock.Mock
}

func (m *mockInventoryReportRepository) StockLevels(ctx context.Context) (*report.StockReport, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*report.StockReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryReportRepository) TotalQuantity(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInventoryReportRepository) QuantityCreatedBy(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

type mockSalesReportRepository struct {
	mock.Mock
}

func (m *mockSalesReportRepository) SalesForDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type stubRenderer struct {
	rendered []pdf.Document
}

func (r *stubRenderer) Render(ctx context.Context, doc pdf.Document) ([]byte, error) {
	r.rendered = append(r.rendered, doc)
	return []byte("%PDF-1.4 stub"), nil
}

func (r *stubRenderer) Close() error { return nil }

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown report type", func(t *testing.T) {
		renderer := &stubRenderer{}
		svc := NewReportService(new(mockOrderReportRepository), new(mockInventoryReportRepository), renderer, zap.NewNop())

		_, err := svc.Generate(ctx, "Bogus", nil, nil)
		assert.ErrorIs(t, err, shared.ErrInvalidReportType)
		assert.Empty(t, renderer.rendered)
	})

	t.Run("order summary", func(t *testing.T) {
		orders := new(mockOrderReportRepository)
		orders.On("OrderSummary", mock.Anything, mock.Anything).Return(&report.OrderSummary{}, nil)
		renderer := &stubRenderer{}
		svc := NewReportService(orders, new(mockInventoryReportRepository), renderer, zap.NewNop())

		from := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
		generated, err := svc.Generate(ctx, "OrderSummary", &from, nil)
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^OrderSummary_\d{12}\.pdf$`), generated.Filename)
		assert.Equal(t, []byte("%PDF-1.4 stub"), generated.Data)
		require.Len(t, renderer.rendered, 1)
		assert.Equal(t, "Order Summary Report", renderer.rendered[0].Title)

		// the period passed to the query is widened to the day start
		period := orders.Calls[0].Arguments.Get(1).(report.Period)
		require.NotNil(t, period.From)
		assert.Equal(t, 0, period.From.Hour())
	})

	t.Run("inventory stock", func(t *testing.T) {
		items := new(mockInventoryReportRepository)
		items.On("StockLevels", mock.Anything).Return(&report.StockReport{}, nil)
		renderer := &stubRenderer{}
		svc := NewReportService(new(mockOrderReportRepository), items, renderer, zap.NewNop())

		generated, err := svc.Generate(ctx, "InventoryStock", nil, nil)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^InventoryStock_\d{12}\.pdf$`), generated.Filename)
	})

	t.Run("sales register", func(t *testing.T) {
		orders := new(mockOrderReportRepository)
		orders.On("SalesRegister", mock.Anything, mock.Anything).Return(&report.SalesRegister{}, nil)
		renderer := &stubRenderer{}
		svc := NewReportService(orders, new(mockInventoryReportRepository), renderer, zap.NewNop())

		_, err := svc.Generate(ctx, "SalesRegister", nil, nil)
		require.NoError(t, err)
		orders.AssertCalled(t, "SalesRegister", mock.Anything, mock.Anything)
	})
}

type mockSupplierRepository struct {
	mock.Mock
}

func (m *mockSupplierRepository) FindByID(ctx context.Context, id uint) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*partner.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSupplierRepository) FindActive(ctx context.Context) ([]*partner.Supplier, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]*partner.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *mockSupplierRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uint) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*trade.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.([]trade.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOrderRepository) DeleteItems(ctx context.Context, orderID uint) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *mockOrderRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	items := new(mockInventoryReportRepository)
	items.On("TotalQuantity", mock.Anything).Return(int64(55), nil)
	items.On("QuantityCreatedBy", mock.Anything, mock.Anything).Return(int64(40), nil)

	orders := new(mockOrderRepository)
	orders.On("CountByStatus", mock.Anything, trade.StatusPending).Return(int64(3), nil)

	sales := new(mockSalesReportRepository)
	sales.On("SalesForDay", mock.Anything, mock.Anything).Return(decimal.RequireFromString("7.50"), nil)

	suppliers := new(mockSupplierRepository)
	suppliers.On("Count", mock.Anything).Return(int64(4), nil)

	svc := NewDashboardService(items, orders, sales, suppliers)
	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 55, summary.TotalInventory)
	assert.EqualValues(t, 3, summary.PendingOrders)
	assert.True(t, summary.TodaySales.Equal(decimal.RequireFromString("7.50")))
	assert.EqualValues(t, 4, summary.SupplierCount)

	require.Len(t, summary.Trend, 7)
	assert.Equal(t, time.Now().Format("Mon"), summary.Trend[6].Label)
	assert.Equal(t, time.Now().AddDate(0, 0, -6).Format("Mon"), summary.Trend[0].Label)
	for _, day := range summary.Trend {
		assert.EqualValues(t, 40, day.Inventory)
	}
}
