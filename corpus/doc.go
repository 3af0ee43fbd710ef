// Package corpus builds and holds the statistics a fitted corpus exposes to
// lexical scorers: per-document term frequencies, per-term posting bitmaps,
// document lengths and the average document length.
//
// Statistics is a fit-once value: it is fully constructed by Fit and
// read-only afterwards, so any number of scorers can share one instance
// without synchronization. Posting lists are roaring bitmaps keyed by term;
// document frequency is the bitmap cardinality.
package corpus
