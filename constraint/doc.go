// Package constraint accumulates the feedback of a game into a State and
// tests candidate words against it.
//
// A State tracks, for every position, the set of letters that may still
// appear there, and for every letter the minimum and maximum number of
// times it may occur. Each play only narrows these bounds, so the set of
// words a State matches never grows as plays are added.
package constraint
