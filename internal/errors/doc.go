// Package errors provides structured, actionable errors for rangeui.
//
// Every failure raised by the rendering core carries a code (e.g. "E001")
// that maps to a short message, a longer explanation and a category:
//   - render: render functions, leaf expansion, tree construction
//   - mount: mount and update passes against a host surface
//   - host: host surface contract violations
//   - config: configuration loading and validation
//   - cli: command line usage
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail("Counter.Render panicked: index out of range").
//	    WithSuggestion("Guard slice accesses in Render").
//	    Wrap(cause)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Render function panicked
//	//
//	//   Counter.Render panicked: index out of range
//	//
//	//   Hint: Guard slice accesses in Render
package errors
