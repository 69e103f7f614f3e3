// Package scan locates structure inside JSON-shaped text by offset-preserving
// byte scans instead of building a parse tree.
//
// [ClosingQuote] and [OpeningQuote] pair string delimiters in either
// direction, [MatchingBrace] pairs braces and brackets, and [VisitSiblings]
// walks the key/value pairs of a single object outward from an anchor key.
// Every offset handed to a caller is an index into the original buffer, so
// later byte-splice rewrites need no translation step.
//
// The scanners assume the text is well formed and contains no optional
// whitespace; anything that contradicts that yields [ErrMalformed].
package scan
