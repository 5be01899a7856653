package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

// flatShippingRate is the fixed per-order figure the business compares
// actual shipping income against.
var flatShippingRate = decimal.NewFromInt(7)

// Window converts YYYY-MM-DD week bounds into a half-open [start, end+24h)
// range in loc, so orders placed any time on the end date are included.
func Window(weekStart, weekEnd string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", weekStart, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid weekStart %q: %w", weekStart, err)
	}

	end, err := time.ParseInLocation("2006-01-02", weekEnd, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid weekEnd %q: %w", weekEnd, err)
	}

	return start, end.AddDate(0, 0, 1), nil
}

// Merge normalizes legacy and live orders into one list sorted by order
// date ascending. Ties keep legacy rows before live rows.
func Merge(legacy []models.LegacyOrder, current []models.Order) []models.ReportOrder {
	rows := make([]models.ReportOrder, 0, len(legacy)+len(current))

	for _, o := range legacy {
		rows = append(rows, NormalizeLegacy(o))
	}
	for _, o := range current {
		rows = append(rows, NormalizeCurrent(o))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OrderDate.Before(rows[j].OrderDate)
	})

	return rows
}

// Totals computes the aggregate block for a set of normalized orders
func Totals(orders []models.ReportOrder) models.ReportTotals {
	var t models.ReportTotals
	var shipShipping decimal.Decimal

	for _, o := range orders {
		t.OrderCount++
		switch o.Type {
		case models.FulfillmentPickup:
			t.PickupCount++
		case models.FulfillmentReplacement:
			t.ReplacementCount++
		case models.FulfillmentShip:
			t.ShipCount++
			shipShipping = shipShipping.Add(o.ShippingIncome)
			bucketShipOrder(&t.ShipHistogram, o.SeedlingQty)
		}

		t.TotalSeedlings += o.SeedlingQty
		t.TotalOther += o.OtherQty
		t.TotalSeedlingIncome = t.TotalSeedlingIncome.Add(o.SeedlingIncome)
		t.TotalOtherRevenue = t.TotalOtherRevenue.Add(o.OtherRevenue)
		t.TotalShippingIncome = t.TotalShippingIncome.Add(o.ShippingIncome)
		t.TotalDiscounts = t.TotalDiscounts.Add(o.Discount)
		t.TotalTax = t.TotalTax.Add(o.Tax)
		t.TotalRevenue = t.TotalRevenue.Add(o.OrderTotal)
	}

	if t.TotalSeedlings > 0 {
		t.AvgRevenuePerSeedling = t.TotalSeedlingIncome.DivRound(decimal.NewFromInt(int64(t.TotalSeedlings)), 2)
	}
	if t.ShipCount > 0 {
		t.AvgShippingPerShip = shipShipping.DivRound(decimal.NewFromInt(int64(t.ShipCount)), 2)
	}
	t.FlatRateReference = flatShippingRate.Mul(decimal.NewFromInt(int64(t.ShipCount)))

	return t
}

// bucketShipOrder counts a shipped order into the size histogram by its
// seedling quantity
func bucketShipOrder(h *models.ShipSizeHistogram, seedlingQty int) {
	switch {
	case seedlingQty <= 10:
		h.UpTo10++
	case seedlingQty <= 20:
		h.UpTo20++
	case seedlingQty <= 40:
		h.UpTo40++
	default:
		h.Over40++
	}
}
