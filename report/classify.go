package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/utils"
)

// accessoryKeywords marks products that count in the "other" bucket instead
// of the seedling bucket. Product names are free text, so bucketing is a
// substring match until products carry a real category field.
var accessoryKeywords = []string{
	"clip",
	"tag",
	"kit",
	"accessory",
	"tool",
	"pot",
	"tray",
	"soil",
	"fertilizer",
}

// IsAccessoryProduct reports whether a product name belongs in the "other"
// bucket. All item tallying goes through this single function.
func IsAccessoryProduct(name string) bool {
	nameLower := strings.ToLower(name)
	for _, keyword := range accessoryKeywords {
		if strings.Contains(nameLower, keyword) {
			return true
		}
	}
	return false
}

// legacyReplacementCeiling is the subtotal below which a free-shipping
// legacy order counts as a replacement rather than a pickup.
var legacyReplacementCeiling = decimal.NewFromInt(5)

// ClassifyLegacy infers the fulfillment type of a legacy order. The legacy
// storefront stored no pickup flag and no promotion code, so zero shipping
// plus a subtotal under five dollars marks a replacement, zero shipping
// otherwise marks a pickup, and anything else shipped.
func ClassifyLegacy(o models.LegacyOrder) models.FulfillmentType {
	if o.Shipping.IsZero() {
		if o.Subtotal.LessThan(legacyReplacementCeiling) {
			return models.FulfillmentReplacement
		}
		return models.FulfillmentPickup
	}
	return models.FulfillmentShip
}

// ClassifyCurrent classifies a live order. A promotion code containing
// "replacement" wins over the pickup flag: replacement orders picked up at
// the farm still count as replacements.
func ClassifyCurrent(o models.Order) models.FulfillmentType {
	if strings.Contains(strings.ToLower(o.PromotionCode), "replacement") {
		return models.FulfillmentReplacement
	}
	if o.IsPickup {
		return models.FulfillmentPickup
	}
	return models.FulfillmentShip
}

// NormalizeLegacy reduces a legacy order to the report projection
func NormalizeLegacy(o models.LegacyOrder) models.ReportOrder {
	var seedlingQty, otherQty int
	var seedlingIncome, otherRevenue decimal.Decimal

	for _, item := range o.Items {
		if IsAccessoryProduct(item.ProductName) {
			otherQty += item.Quantity
			otherRevenue = otherRevenue.Add(item.LineTotal)
		} else {
			seedlingQty += item.Quantity
			seedlingIncome = seedlingIncome.Add(item.LineTotal)
		}
	}

	return models.ReportOrder{
		OrderID:        strconv.FormatInt(o.ID, 10),
		OrderDate:      o.OrderDate,
		Type:           ClassifyLegacy(o),
		FirstName:      o.FirstName,
		LastName:       o.LastName,
		State:          utils.MapStateToCode(o.State),
		SeedlingQty:    seedlingQty,
		OtherQty:       otherQty,
		SeedlingIncome: seedlingIncome,
		OtherRevenue:   otherRevenue,
		ShippingIncome: o.Shipping,
		// The legacy storefront had no promotions, so no discount column.
		Discount:       decimal.Zero,
		Tax:            o.Tax,
		OrderTotal:     o.Total,
		ShippingMethod: o.ShippingMethod,
	}
}

// NormalizeCurrent reduces a live order to the report projection
func NormalizeCurrent(o models.Order) models.ReportOrder {
	var seedlingQty, otherQty int
	var seedlingIncome, otherRevenue decimal.Decimal

	for _, item := range o.Items {
		if IsAccessoryProduct(item.ProductName) {
			otherQty += item.Quantity
			otherRevenue = otherRevenue.Add(item.LineTotal)
		} else {
			seedlingQty += item.Quantity
			seedlingIncome = seedlingIncome.Add(item.LineTotal)
		}
	}

	return models.ReportOrder{
		OrderID:        o.OrderNumber,
		OrderDate:      o.CreatedAt,
		Type:           ClassifyCurrent(o),
		FirstName:      o.ShippingFirstName,
		LastName:       o.ShippingLastName,
		State:          utils.MapStateToCode(o.ShippingState),
		SeedlingQty:    seedlingQty,
		OtherQty:       otherQty,
		SeedlingIncome: seedlingIncome,
		OtherRevenue:   otherRevenue,
		ShippingIncome: o.ShippingAmount,
		Discount:       o.DiscountAmount,
		Tax:            o.TaxAmount,
		OrderTotal:     o.TotalAmount,
		ShippingMethod: o.ShippingMethod,
	}
}
