// Package tui provides the event routing and message bubbling core for a
// terminal UI toolkit.
//
// Users import this single package for the complete public API: the element
// tree surface, focus management, typed message dispatch with DOM-style
// bubbling, and the capture/target/bubble event router. Rendering, layout,
// and widget layers live elsewhere and consume this package.
package tui
