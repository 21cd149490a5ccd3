// Package colors provides ANSI color codes and the Style renderer used by
// the text formatter.
//
// Style.Apply composes directives in a fixed order: pad, color, dim, bold.
// Each directive wraps the previous result, so bold markup ends up
// outermost.
package colors
