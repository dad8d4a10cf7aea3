package vdom

// Element helpers for the tags the demo views and tests use. Each is
// shorthand for H(tag, attrs, children...).

// Div creates a <div>.
func Div(attrs Attrs, children ...any) Node { return H("div", attrs, children...) }

// Span creates a <span>.
func Span(attrs Attrs, children ...any) Node { return H("span", attrs, children...) }

// P creates a <p>.
func P(attrs Attrs, children ...any) Node { return H("p", attrs, children...) }

// H1 creates an <h1>.
func H1(attrs Attrs, children ...any) Node { return H("h1", attrs, children...) }

// H2 creates an <h2>.
func H2(attrs Attrs, children ...any) Node { return H("h2", attrs, children...) }

// Button creates a <button>.
func Button(attrs Attrs, children ...any) Node { return H("button", attrs, children...) }

// Ul creates a <ul>.
func Ul(attrs Attrs, children ...any) Node { return H("ul", attrs, children...) }

// Li creates an <li>.
func Li(attrs Attrs, children ...any) Node { return H("li", attrs, children...) }

// Strong creates a <strong>.
func Strong(attrs Attrs, children ...any) Node { return H("strong", attrs, children...) }

// Em creates an <em>.
func Em(attrs Attrs, children ...any) Node { return H("em", attrs, children...) }

// Input creates an <input>.
func Input(attrs Attrs) Node { return H("input", attrs) }
