// Package projection maps high-dimensional embeddings onto a plane for plotting.
//
// TSNE is an exact t-distributed stochastic neighbor embedding. Every run
// with the same seed and input produces the same coordinates.
package projection
