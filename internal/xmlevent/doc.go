// Package xmlevent exposes an incremental event view over XML documents.
//
// A Source yields start-element, end-element, text, whitespace and
// end-of-document events one at a time without materializing the document.
// Namespace prefixes are reported exactly as written (podcast:liveItem keeps
// its "podcast" prefix) so callers can match on qualified names. Declared
// non-UTF-8 encodings are converted through golang.org/x/net/html/charset.
package xmlevent
