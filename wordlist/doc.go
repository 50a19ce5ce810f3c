// Package wordlist loads newline-delimited dictionaries, optionally
// cleaned of likely inflected forms, and represents subsets of a
// dictionary as bit vectors over word indices.
package wordlist
