// Package memdom is an in-memory host surface.
//
// It implements surface.Host with a small DOM: element and text nodes, live
// ranges whose boundaries follow insertions and removals the way browser
// Ranges do, listener dispatch with bubbling, and HTML serialization.
//
// memdom backs the tests of the rendering core, the headless CLI commands
// and the live preview server.
//
//	doc := memdom.New()
//	eng, err := rangeui.Render(app, doc.Body(), doc)
//	fmt.Println(doc.Body().InnerHTML())
package memdom
