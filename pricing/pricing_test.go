package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"members-card/types"
)

func bundle(p1, p2, postage, fee int64) types.ProductItem {
	return types.ProductItem{
		UnitPrice1:   p1,
		UnitPrice2:   p2,
		Postage:      postage,
		Fee:          fee,
		ProductName1: map[string]string{"ja": "商品1"},
		ProductName2: map[string]string{"ja": "商品2"},
	}
}

func TestComputeReferenceBundle(t *testing.T) {
	r := Compute(bundle(21000, 13500, 0, 300), 0)

	assert.Equal(t, int64(34800), r.Subtotal)
	assert.Equal(t, int64(3480), r.Tax)
	assert.Equal(t, int64(38280), r.Total)
	// floor(21000*0.05 + 13500*0.05) = floor(1050 + 675)
	assert.Equal(t, int64(1725), r.Points)
}

func TestComputeTaxFloors(t *testing.T) {
	r := Compute(bundle(300, 5, 0, 0), 0)

	assert.Equal(t, int64(305), r.Subtotal)
	assert.Equal(t, int64(30), r.Tax)
	assert.Equal(t, int64(335), r.Total)
}

func TestComputeLargeSubtotalNoDrift(t *testing.T) {
	// 999999995 * 0.10 = 99999999.5; a binary-float multiplier can land on
	// either side of the boundary, the decimal one cannot.
	r := Compute(bundle(999999995, 0, 0, 0), 0)

	assert.Equal(t, int64(99999999), r.Tax)
	assert.Equal(t, int64(1099999994), r.Total)
	assert.Equal(t, int64(49999999), r.Points)
}

func TestComputePointsFlooredOnceOverSum(t *testing.T) {
	// Per-item flooring would give 0 + 0; the combined floor gives
	// floor(0.65 + 0.45) = 1.
	r := Compute(bundle(13, 9, 0, 0), 0)

	assert.Equal(t, int64(1), r.Points)
}

func TestComputeDiscountReducesSubtotalNotPoints(t *testing.T) {
	withDiscount := Compute(bundle(21000, 13500, 0, 300), 800)
	without := Compute(bundle(21000, 13500, 0, 300), 0)

	assert.Equal(t, int64(34000), withDiscount.Subtotal)
	assert.Equal(t, int64(3400), withDiscount.Tax)
	assert.Equal(t, int64(37400), withDiscount.Total)
	assert.Equal(t, without.Points, withDiscount.Points)
}

func TestComputeTotalIsSubtotalPlusTax(t *testing.T) {
	for _, r := range []Result{
		Compute(bundle(1, 0, 0, 0), 0),
		Compute(bundle(21000, 13500, 120, 300), 0),
		Compute(bundle(999, 999, 999, 999), 500),
	} {
		assert.Equal(t, r.Total, r.Subtotal+r.Tax)
	}
}
