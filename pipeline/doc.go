// Package pipeline runs the keyword versus embedding comparison end to end.
//
// A run assembles course texts, fits the semantic backend once, ranks every
// configured query with both methods, renders one comparison chart per
// query and a projection of the embedding space, writes the results file,
// and returns a Summary. Stages report to a Monitor; the default one does
// nothing.
package pipeline
