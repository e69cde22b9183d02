/*
# Module: receipt/format.go
Thousands-grouped number formatting for receipt display text.

## Linked Modules
(None - pure formatting helper)

## Tags
formatting, display, receipt

## Exports
FormatThousands

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "receipt/format.go" ;
    code:description "Thousands-grouped number formatting for receipt display text" ;
    code:exports :FormatThousands ;
    code:tags "formatting", "display", "receipt" .
<!-- End LinkedDoc RDF -->
*/
package receipt

import "strconv"

// FormatThousands renders n with a comma every three digits from the right,
// e.g. 1000000 -> "1,000,000". A leading minus sign is preserved and never
// grouped.
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)

	sign := ""
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	// First group may be 1-2 digits, the rest are exactly 3.
	out := make([]byte, 0, len(s)+(len(s)-1)/3)
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	out = append(out, s[:head]...)
	for i := head; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}

	return sign + string(out)
}
