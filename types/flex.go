/*
# Module: types/flex.go
LINE flex message data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, flex-message, line

## Exports
FlexMessage, FlexBubble, FlexBox, FlexText, FlexButton, URIAction

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/flex.go" ;
    code:description "LINE flex message data structures" ;
    code:exports :FlexMessage, :FlexBubble, :FlexBox, :FlexText, :FlexButton, :URIAction ;
    code:tags "data-types", "flex-message", "line" .
<!-- End LinkedDoc RDF -->
*/
package types

// FlexMessage is the outer envelope sent to the Messaging API push endpoint.
type FlexMessage struct {
	Type     string      `json:"type"`
	AltText  string      `json:"altText"`
	Contents *FlexBubble `json:"contents"`
}

// FlexBubble is a single-bubble flex container with optional blocks.
type FlexBubble struct {
	Type   string   `json:"type"`
	Header *FlexBox `json:"header,omitempty"`
	Body   *FlexBox `json:"body,omitempty"`
	Footer *FlexBox `json:"footer,omitempty"`
}

// FlexComponent is implemented by every component that can appear inside
// a box's contents array.
type FlexComponent interface {
	flexComponent()
}

// FlexBox lays out child components vertically or along a baseline.
// Flex is a pointer so an explicit 0 survives omitempty (the footer
// requires "flex": 0).
type FlexBox struct {
	Type          string          `json:"type"`
	Layout        string          `json:"layout"`
	Margin        string          `json:"margin,omitempty"`
	Spacing       string          `json:"spacing,omitempty"`
	Contents      []FlexComponent `json:"contents"`
	PaddingTop    string          `json:"paddingTop,omitempty"`
	PaddingBottom string          `json:"paddingBottom,omitempty"`
	Flex          *int            `json:"flex,omitempty"`
}

// FlexText renders a single text span.
type FlexText struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Wrap   bool   `json:"wrap,omitempty"`
	Color  string `json:"color,omitempty"`
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
	Flex   int    `json:"flex,omitempty"`
	Align  string `json:"align,omitempty"`
}

// FlexButton renders a tappable action.
type FlexButton struct {
	Type   string     `json:"type"`
	Style  string     `json:"style,omitempty"`
	Height string     `json:"height,omitempty"`
	Color  string     `json:"color,omitempty"`
	Action *URIAction `json:"action"`
}

// URIAction opens a URI when its button is tapped.
type URIAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

func (*FlexBox) flexComponent()    {}
func (*FlexText) flexComponent()   {}
func (*FlexButton) flexComponent() {}
