package persistence

import (
	"context"
	"time"

	"github.com/ims/backend/internal/domain/report"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// lineTotalSubquery computes an order's total from its lines. It backs
// the COALESCE fallback for orders saved without a total snapshot.
const lineTotalSubquery = "(SELECT COALESCE(SUM(oi.unit_price * oi.quantity), 0) FROM order_items oi WHERE oi.order_id = orders.id)"

// GormOrderReportRepository implements OrderReportRepository using GORM
type GormOrderReportRepository struct {
	db *gorm.DB
}

// NewGormOrderReportRepository creates a new GormOrderReportRepository
func NewGormOrderReportRepository(db *gorm.DB) *GormOrderReportRepository {
	return &GormOrderReportRepository{db: db}
}

type orderReportRow struct {
	OrderID      uint
	CustomerName string
	OrderDate    time.Time
	Status       string
	ItemsCount   int
	Total        decimal.Decimal
}

func (r *GormOrderReportRepository) baseQuery(ctx context.Context, period report.Period) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("orders.id AS order_id, customers.name AS customer_name, orders.order_date, orders.status, "+
			"(SELECT COALESCE(SUM(oi.quantity), 0) FROM order_items oi WHERE oi.order_id = orders.id) AS items_count, "+
			"COALESCE(orders.total_amount, "+lineTotalSubquery+") AS total").
		Joins("JOIN customers ON customers.id = orders.customer_id")
	if period.From != nil {
		query = query.Where("orders.order_date >= ?", *period.From)
	}
	if period.To != nil {
		query = query.Where("orders.order_date <= ?", *period.To)
	}
	return query.Order("orders.order_date DESC")
}

// OrderSummary returns every order in the period with its customer and total
func (r *GormOrderReportRepository) OrderSummary(ctx context.Context, period report.Period) (*report.OrderSummary, error) {
	var rows []orderReportRow
	if err := r.baseQuery(ctx, period).Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := &report.OrderSummary{
		Rows:       make([]report.OrderSummaryRow, len(rows)),
		OrderCount: len(rows),
		GrandTotal: decimal.Zero,
	}
	for i, row := range rows {
		summary.Rows[i] = report.OrderSummaryRow{
			OrderID:      row.OrderID,
			CustomerName: row.CustomerName,
			OrderDate:    row.OrderDate,
			Status:       row.Status,
			Total:        row.Total,
		}
		summary.GrandTotal = summary.GrandTotal.Add(row.Total)
	}
	return summary, nil
}

// SalesRegister returns completed orders in the period with item counts
func (r *GormOrderReportRepository) SalesRegister(ctx context.Context, period report.Period) (*report.SalesRegister, error) {
	var rows []orderReportRow
	if err := r.baseQuery(ctx, period).
		Where("orders.status = ?", "Completed").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	register := &report.SalesRegister{
		Rows:       make([]report.SalesRegisterRow, len(rows)),
		OrderCount: len(rows),
		TotalSales: decimal.Zero,
	}
	for i, row := range rows {
		register.Rows[i] = report.SalesRegisterRow{
			OrderID:      row.OrderID,
			CustomerName: row.CustomerName,
			OrderDate:    row.OrderDate,
			ItemsCount:   row.ItemsCount,
			Total:        row.Total,
		}
		register.TotalSales = register.TotalSales.Add(row.Total)
	}
	return register, nil
}

// Ensure GormOrderReportRepository implements OrderReportRepository
var _ report.OrderReportRepository = (*GormOrderReportRepository)(nil)

// GormInventoryReportRepository implements InventoryReportRepository using GORM
type GormInventoryReportRepository struct {
	db *gorm.DB
}

// NewGormInventoryReportRepository creates a new GormInventoryReportRepository
func NewGormInventoryReportRepository(db *gorm.DB) *GormInventoryReportRepository {
	return &GormInventoryReportRepository{db: db}
}

// StockLevels returns every inventory item ordered by name
func (r *GormInventoryReportRepository) StockLevels(ctx context.Context) (*report.StockReport, error) {
	var list []models.InventoryItemModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	stock := &report.StockReport{
		Rows:      make([]report.StockRow, len(list)),
		ItemCount: len(list),
	}
	for i := range list {
		item := list[i].ToDomain()
		stock.Rows[i] = report.StockRow{
			Name:         item.Name,
			SKU:          item.SKU,
			Category:     item.Category,
			Quantity:     item.Quantity,
			ReorderLevel: item.ReorderLevel,
			Price:        item.EffectivePrice(),
			LowStock:     item.IsLowStock(),
		}
		if item.IsLowStock() {
			stock.LowStockCount++
		}
	}
	return stock, nil
}

// TotalQuantity sums the quantity of all inventory items
func (r *GormInventoryReportRepository) TotalQuantity(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItemModel{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

// QuantityCreatedBy sums quantities of items created on or before the
// end of the given day
func (r *GormInventoryReportRepository) QuantityCreatedBy(ctx context.Context, day time.Time) (int64, error) {
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(24*time.Hour - time.Nanosecond)
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItemModel{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("created_at <= ?", dayEnd).
		Scan(&total).Error
	return total, err
}

// Ensure GormInventoryReportRepository implements InventoryReportRepository
var _ report.InventoryReportRepository = (*GormInventoryReportRepository)(nil)

// GormSalesReportRepository implements SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// SalesForDay sums sale amounts recorded on the given calendar day
func (r *GormSalesReportRepository) SalesForDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.SaleModel{}).
		Select("SUM(sale_amount)").
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Ensure GormSalesReportRepository implements SalesReportRepository
var _ report.SalesReportRepository = (*GormSalesReportRepository)(nil)
