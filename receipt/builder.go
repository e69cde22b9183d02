/*
# Module: receipt/builder.go
Electronic receipt flex message construction.

## Linked Modules
- [receipt/format](./format.go) - Thousands-grouped number formatting
- [pricing/pricing](../pricing/pricing.go) - Purchase pricing arithmetic
- [types/flex](../types/flex.go) - LINE flex message data structures
- [types/product](../types/product.go) - Product catalog data structures

## Tags
receipt, flex-message, line, localization

## Exports
Build, LocalizationError

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "receipt/builder.go" ;
    code:description "Electronic receipt flex message construction" ;
    code:linksTo [
        code:name "receipt/format" ;
        code:path "./format.go" ;
        code:relationship "Thousands-grouped number formatting"
    ], [
        code:name "pricing/pricing" ;
        code:path "../pricing/pricing.go" ;
        code:relationship "Purchase pricing arithmetic"
    ], [
        code:name "types/flex" ;
        code:path "../types/flex.go" ;
        code:relationship "LINE flex message data structures"
    ], [
        code:name "types/product" ;
        code:path "../types/product.go" ;
        code:relationship "Product catalog data structures"
    ] ;
    code:exports :Build, :LocalizationError ;
    code:tags "receipt", "flex-message", "line", "localization" .
<!-- End LinkedDoc RDF -->
*/
package receipt

import (
	"fmt"
	"time"

	"members-card/pricing"
	"members-card/types"
)

const (
	altText    = "お買い上げありがとうございます。電子レシートを発行します。"
	storeTitle = "Use Case STORE"
	disclaimer = "※LINE API Use Caseサイトのデモアプリケーションであるため、実際の課金は行われません"
	thanksNote = "商品のご購入ありがとうございます。\n本メッセージは、Use Case STOREおよびUse Case GROUPの店舗で商品をご購入されたお客様にお届けしています。"

	labelPostage  = "送料（税抜）"
	labelFee      = "決算手数料（税抜）"
	labelDiscount = "値引き"
	labelSubtotal = "小計（税抜）"
	labelTax      = "消費税"
	labelTotal    = "お会計金額"
	labelPoints   = "付与ポイント"

	memberCardLabel = "会員証を表示"
)

// LocalizationError reports a catalog product name map that has no entry
// for the requested language. Language is a configuration input, so this
// is surfaced to the caller rather than silently falling back.
type LocalizationError struct {
	Language string
}

func (e *LocalizationError) Error() string {
	return fmt.Sprintf("no product name registered for language %q", e.Language)
}

// Build assembles the electronic receipt flex message for one purchase.
// Every numeric field goes through FormatThousands before it becomes
// display text. The footer link is a literal interpolation of liffID and
// language; neither is URL-encoded.
//
// Pure transformation: no I/O, safe to call before any state is committed.
func Build(item types.ProductItem, pr pricing.Result, discount int64, now time.Time, language, liffID string) (*types.FlexMessage, error) {
	name1, ok := item.ProductName1[language]
	if !ok {
		return nil, &LocalizationError{Language: language}
	}
	name2, ok := item.ProductName2[language]
	if !ok {
		return nil, &LocalizationError{Language: language}
	}

	header := &types.FlexBox{
		Type:   "box",
		Layout: "vertical",
		Contents: []types.FlexComponent{
			&types.FlexText{Type: "text", Text: storeTitle, Size: "xxl", Weight: "bold"},
			&types.FlexText{Type: "text", Text: now.Format("2006/01/02 15:04:05"), Color: "#767676"},
			&types.FlexText{Type: "text", Text: disclaimer, Wrap: true, Color: "#ff6347"},
		},
	}

	body := &types.FlexBox{
		Type:   "box",
		Layout: "vertical",
		Contents: []types.FlexComponent{
			&types.FlexBox{
				Type:    "box",
				Layout:  "vertical",
				Margin:  "lg",
				Spacing: "sm",
				Contents: []types.FlexComponent{
					row(name1, FormatThousands(item.UnitPrice1)),
					row(name2, FormatThousands(item.UnitPrice2)),
					row(labelPostage, FormatThousands(item.Postage)),
					row(labelFee, FormatThousands(item.Fee)),
					row(labelDiscount, FormatThousands(discount)),
					row(labelSubtotal, FormatThousands(pr.Subtotal)),
					row(labelTax, FormatThousands(pr.Tax)),
					row(labelTotal, FormatThousands(pr.Total)),
					row(labelPoints, FormatThousands(pr.Points)),
				},
				PaddingBottom: "xxl",
			},
			&types.FlexBox{
				Type:   "box",
				Layout: "vertical",
				Contents: []types.FlexComponent{
					&types.FlexText{Type: "text", Text: thanksNote, Wrap: true, Size: "sm", Color: "#767676"},
				},
			},
		},
		PaddingTop: "0%",
	}

	footerFlex := 0
	footer := &types.FlexBox{
		Type:    "box",
		Layout:  "vertical",
		Spacing: "sm",
		Contents: []types.FlexComponent{
			&types.FlexButton{
				Type:   "button",
				Style:  "link",
				Height: "sm",
				Color:  "#0033cc",
				Action: &types.URIAction{
					Type:  "uri",
					Label: memberCardLabel,
					URI:   fmt.Sprintf("https://liff.line.me/%s?lang=%s", liffID, language),
				},
			},
		},
		Flex: &footerFlex,
	}

	return &types.FlexMessage{
		Type:    "flex",
		AltText: altText,
		Contents: &types.FlexBubble{
			Type:   "bubble",
			Header: header,
			Body:   body,
			Footer: footer,
		},
	}, nil
}

// row builds one label/value line of the itemized receipt body.
func row(label, value string) *types.FlexBox {
	return &types.FlexBox{
		Type:    "box",
		Layout:  "baseline",
		Spacing: "sm",
		Contents: []types.FlexComponent{
			&types.FlexText{Type: "text", Text: label, Color: "#5B5B5B", Size: "sm", Flex: 5},
			&types.FlexText{Type: "text", Text: value, Wrap: true, Color: "#666666", Size: "sm", Flex: 2, Align: "end"},
		},
	}
}
