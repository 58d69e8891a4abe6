package pdf

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ims/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"date": func(t time.Time) string {
		return t.Format("02 Jan 2006")
	},
	"datetime": func(t time.Time) string {
		return t.Format("02 Jan 2006 15:04")
	},
}

const layoutTemplate = `
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: #222; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .meta { color: #666; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; background: #f0f0f0; border-bottom: 2px solid #999; padding: 6px 8px; }
  td { border-bottom: 1px solid #ddd; padding: 5px 8px; }
  td.num, th.num { text-align: right; }
  tr.low td { background: #fdecea; color: #a12622; }
  tfoot td { font-weight: bold; border-top: 2px solid #999; border-bottom: none; }
  .empty { color: #888; padding: 24px 0; text-align: center; }
</style>
<h1>{{.Title}}</h1>
<div class="meta">{{.PeriodLabel}}Generated at {{datetime .GeneratedAt}}</div>
{{.Body}}
`

const orderSummaryTemplate = `
{{if .Rows}}
<table>
  <thead>
    <tr><th>Order #</th><th>Customer</th><th>Date</th><th>Status</th><th class="num">Total</th></tr>
  </thead>
  <tbody>
    {{range .Rows}}
    <tr>
      <td>{{.OrderID}}</td>
      <td>{{.CustomerName}}</td>
      <td>{{date .OrderDate}}</td>
      <td>{{.Status}}</td>
      <td class="num">{{money .Total}}</td>
    </tr>
    {{end}}
  </tbody>
  <tfoot>
    <tr><td colspan="3">{{.OrderCount}} orders</td><td>Grand total</td><td class="num">{{money .GrandTotal}}</td></tr>
  </tfoot>
</table>
{{else}}
<div class="empty">No orders in the selected period.</div>
{{end}}
`

const inventoryStockTemplate = `
{{if .Rows}}
<table>
  <thead>
    <tr><th>Name</th><th>SKU</th><th>Category</th><th class="num">Quantity</th><th class="num">Reorder level</th><th class="num">Unit price</th></tr>
  </thead>
  <tbody>
    {{range .Rows}}
    <tr{{if .LowStock}} class="low"{{end}}>
      <td>{{.Name}}</td>
      <td>{{.SKU}}</td>
      <td>{{.Category}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{.ReorderLevel}}</td>
      <td class="num">{{money .Price}}</td>
    </tr>
    {{end}}
  </tbody>
  <tfoot>
    <tr><td colspan="6">{{.ItemCount}} items, {{.LowStockCount}} at or below reorder level</td></tr>
  </tfoot>
</table>
{{else}}
<div class="empty">No inventory items recorded.</div>
{{end}}
`

const salesRegisterTemplate = `
{{if .Rows}}
<table>
  <thead>
    <tr><th>Order #</th><th>Customer</th><th>Date</th><th class="num">Items</th><th class="num">Total</th></tr>
  </thead>
  <tbody>
    {{range .Rows}}
    <tr>
      <td>{{.OrderID}}</td>
      <td>{{.CustomerName}}</td>
      <td>{{date .OrderDate}}</td>
      <td class="num">{{.ItemsCount}}</td>
      <td class="num">{{money .Total}}</td>
    </tr>
    {{end}}
  </tbody>
  <tfoot>
    <tr><td colspan="3">{{.OrderCount}} completed orders</td><td>Total sales</td><td class="num">{{money .TotalSales}}</td></tr>
  </tfoot>
</table>
{{else}}
<div class="empty">No completed orders in the selected period.</div>
{{end}}
`

var (
	layoutTmpl         = template.Must(template.New("layout").Funcs(templateFuncs).Parse(layoutTemplate))
	orderSummaryTmpl   = template.Must(template.New("order_summary").Funcs(templateFuncs).Parse(orderSummaryTemplate))
	inventoryStockTmpl = template.Must(template.New("inventory_stock").Funcs(templateFuncs).Parse(inventoryStockTemplate))
	salesRegisterTmpl  = template.Must(template.New("sales_register").Funcs(templateFuncs).Parse(salesRegisterTemplate))
)

type layoutData struct {
	Title       string
	PeriodLabel string
	GeneratedAt time.Time
	Body        template.HTML
}

func renderLayout(title string, period *report.Period, body string) (string, error) {
	data := layoutData{
		Title:       title,
		GeneratedAt: time.Now(),
		Body:        template.HTML(body),
	}
	if period != nil {
		data.PeriodLabel = periodLabel(*period)
	}

	var b strings.Builder
	if err := layoutTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render report layout: %w", err)
	}
	return b.String(), nil
}

func periodLabel(p report.Period) string {
	switch {
	case p.From != nil && p.To != nil:
		return fmt.Sprintf("%s to %s. ", p.From.Format("02 Jan 2006"), p.To.Format("02 Jan 2006"))
	case p.From != nil:
		return fmt.Sprintf("From %s. ", p.From.Format("02 Jan 2006"))
	case p.To != nil:
		return fmt.Sprintf("Up to %s. ", p.To.Format("02 Jan 2006"))
	default:
		return ""
	}
}

// OrderSummaryDocument renders the order summary report to HTML
func OrderSummaryDocument(summary *report.OrderSummary, period report.Period) (Document, error) {
	var body strings.Builder
	if err := orderSummaryTmpl.Execute(&body, summary); err != nil {
		return Document{}, fmt.Errorf("failed to render order summary: %w", err)
	}

	title := report.KindOrderSummary.Title()
	html, err := renderLayout(title, &period, body.String())
	if err != nil {
		return Document{}, err
	}
	return Document{Title: title, HTML: html}, nil
}

// InventoryStockDocument renders the inventory stock report to HTML
func InventoryStockDocument(stock *report.StockReport) (Document, error) {
	var body strings.Builder
	if err := inventoryStockTmpl.Execute(&body, stock); err != nil {
		return Document{}, fmt.Errorf("failed to render inventory stock report: %w", err)
	}

	title := report.KindInventoryStock.Title()
	html, err := renderLayout(title, nil, body.String())
	if err != nil {
		return Document{}, err
	}
	return Document{Title: title, HTML: html}, nil
}

// SalesRegisterDocument renders the sales register report to HTML
func SalesRegisterDocument(register *report.SalesRegister, period report.Period) (Document, error) {
	var body strings.Builder
	if err := salesRegisterTmpl.Execute(&body, register); err != nil {
		return Document{}, fmt.Errorf("failed to render sales register: %w", err)
	}

	title := report.KindSalesRegister.Title()
	html, err := renderLayout(title, &period, body.String())
	if err != nil {
		return Document{}, err
	}
	return Document{Title: title, HTML: html}, nil
}
