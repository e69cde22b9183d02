/*
# Module: types/product.go
Product catalog data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, product, catalog

## Exports
ProductItem

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/product.go" ;
    code:description "Product catalog data structures" ;
    code:exports :ProductItem ;
    code:tags "data-types", "product", "catalog" .
<!-- End LinkedDoc RDF -->
*/
package types

// ProductItem is the fixed two-product bundle sold by the demo store.
// All monetary fields are whole yen; the name maps key a language code
// to the display string used on the receipt.
type ProductItem struct {
	UnitPrice1   int64             `json:"unitPrice1" yaml:"unitPrice1"`
	UnitPrice2   int64             `json:"unitPrice2" yaml:"unitPrice2"`
	Postage      int64             `json:"postage" yaml:"postage"`
	Fee          int64             `json:"fee" yaml:"fee"`
	ProductName1 map[string]string `json:"productName1" yaml:"productName1"`
	ProductName2 map[string]string `json:"productName2" yaml:"productName2"`
}
