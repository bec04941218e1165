// Package report renders ranking comparisons and writes the results file.
//
// Charts are PNG images drawn with gonum/plot. The results file is indented
// JSON in which every ranked entry is a [code, name, score] array.
package report
