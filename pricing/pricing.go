/*
# Module: pricing/pricing.go
Purchase pricing and point-award arithmetic.

## Linked Modules
- [types/product](../types/product.go) - Product catalog data structures

## Tags
pricing, tax, points, business-logic

## Exports
Result, Compute

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "pricing/pricing.go" ;
    code:description "Purchase pricing and point-award arithmetic" ;
    code:linksTo [
        code:name "types/product" ;
        code:path "../types/product.go" ;
        code:relationship "Product catalog data structures"
    ] ;
    code:exports :Result, :Compute ;
    code:tags "pricing", "tax", "points", "business-logic" .
<!-- End LinkedDoc RDF -->
*/
package pricing

import (
	"github.com/shopspring/decimal"

	"members-card/types"
)

// Rates are base-10 decimals so 0.10 and 0.05 are exact; binary floats
// drift at large subtotals and can move a floor across an integer boundary.
var (
	taxRate   = decimal.New(1, -1) // 0.10
	pointRate = decimal.New(5, -2) // 0.05
)

// Result holds the derived monetary values for one purchase, all in whole yen.
type Result struct {
	Subtotal int64
	Tax      int64
	Total    int64
	Points   int64
}

// Compute derives subtotal, consumption tax, total and awarded points for
// the catalog bundle.
//
// Points are floored once over the summed per-product values, not per
// product: floor(p1*0.05 + p2*0.05). The distinction matters at the
// boundary (13 and 9 yield 1 point combined, 0 per-item).
//
// The discount reduces the subtotal only; points are a function of the
// catalog unit prices alone. The purchase flow always passes 0 - the
// parameter is kept for future promotions.
func Compute(item types.ProductItem, discount int64) Result {
	subtotal := item.UnitPrice1 + item.UnitPrice2 + item.Postage + item.Fee - discount
	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Floor().IntPart()
	points := decimal.NewFromInt(item.UnitPrice1).Mul(pointRate).
		Add(decimal.NewFromInt(item.UnitPrice2).Mul(pointRate)).
		Floor().IntPart()

	return Result{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		Points:   points,
	}
}
