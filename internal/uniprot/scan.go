package uniprot

import "strings"

// tagMarkers are the KEY= tokens that open the labeled fields of a header.
// Free-text fields run until the earliest of these.
var tagMarkers = [...]string{"OS=", "OX=", "GN=", "PE=", "SV="}

// nextTagIndex returns the byte offset of the earliest tag marker in s, or
// -1 if none remains. Only the exact KEY= literal opens a tag; a bare "OS"
// inside free text does not.
func nextTagIndex(s string) int {
	next := -1
	for _, marker := range tagMarkers {
		if idx := strings.Index(s, marker); idx >= 0 && (next < 0 || idx < next) {
			next = idx
		}
	}
	return next
}

// scanMarker consumes the '>' that opens every FASTA header.
func scanMarker(in string) (string, error) {
	if !strings.HasPrefix(in, ">") {
		return in, &ParseError{Err: ErrMissingHeaderMarker, Rest: in}
	}
	return in[1:], nil
}

// scanPipeToken consumes everything up to the next '|', and the '|' itself.
func scanPipeToken(in string) (string, string, error) {
	idx := strings.IndexByte(in, '|')
	if idx < 0 {
		return "", in, &ParseError{Err: ErrMissingDelimiter, Token: "|", Rest: in}
	}
	return in[:idx], in[idx+1:], nil
}

// scanSpaceToken consumes everything up to the next space or tab, and the
// delimiter itself.
func scanSpaceToken(in string) (string, string, error) {
	idx := strings.IndexAny(in, " \t")
	if idx < 0 {
		return "", in, &ParseError{Err: ErrMissingDelimiter, Token: " ", Rest: in}
	}
	return in[:idx], in[idx+1:], nil
}

// scanFreeText consumes everything up to the earliest tag marker or the end
// of the line, trimming exactly one trailing space. This is how protein and
// organism names absorb embedded spaces and punctuation without swallowing
// the tag that follows them.
func scanFreeText(in string) (string, string) {
	idx := nextTagIndex(in)
	if idx < 0 {
		idx = len(in)
	}
	if nl := strings.IndexAny(in, "\r\n"); nl >= 0 && nl < idx {
		idx = nl
	}
	return strings.TrimSuffix(in[:idx], " "), in[idx:]
}

// skipSpaces consumes the spaces separating header fields. Some TrEMBL
// exports carry doubled spaces, so one-or-more rather than exactly one.
func skipSpaces(in string) string {
	return strings.TrimLeft(in, " \t")
}

// scanTagText consumes the key literal and captures the value up to the
// next tag marker or end of line. A mandatory tag fails with ErrMissingTag
// when its key is not at the current position; an optional tag reports
// ok=false instead and leaves the input untouched.
func scanTagText(in, key string, optional bool) (val string, ok bool, rest string, err error) {
	at := skipSpaces(in)
	if !strings.HasPrefix(at, key) {
		if optional {
			return "", false, in, nil
		}
		return "", false, in, &ParseError{Err: ErrMissingTag, Token: key, Rest: in}
	}
	val, rest = scanFreeText(at[len(key):])
	return val, true, rest, nil
}

// scanTagDigits consumes the key literal and captures the maximal run of
// ASCII digits after it. Anything past the digits is left unconsumed for
// the next rule to reject.
func scanTagDigits(in, key string) (string, string, error) {
	at := skipSpaces(in)
	if !strings.HasPrefix(at, key) {
		return "", in, &ParseError{Err: ErrMissingTag, Token: key, Rest: in}
	}
	at = at[len(key):]
	n := 0
	for n < len(at) && at[n] >= '0' && at[n] <= '9' {
		n++
	}
	return at[:n], at[n:], nil
}

// splitIsoformID splits an identifier token on its single '-' into the
// accession and the numeric isoform suffix, e.g. "Q4R572-2" into "Q4R572"
// and "2".
func splitIsoformID(tok string) (string, string, error) {
	accession, isoform, found := strings.Cut(tok, "-")
	if !found || accession == "" || strings.Contains(isoform, "-") || !allDigits(isoform) {
		return "", "", &ParseError{Err: ErrMalformedIsoformIdentifier, Token: tok}
	}
	return accession, isoform, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
