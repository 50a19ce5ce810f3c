// Package feedback computes and encodes the per-letter hints Wordle gives
// for a guess: exact (green), present (yellow) and absent (gray).
package feedback
