// Package demo provides the example views served by "rangeui serve" and
// rendered by "rangeui render".
//
// Each view exercises one reconciliation path:
//
//	counter  a stable handler keeps the buttons; only the count text is replaced
//	toggle   the shown element changes tag and is replaced as a whole
//	todo     items are appended and trailing items are removed
//	app      composition with children passed through to the rendered tree
package demo
