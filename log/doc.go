// Package log defines the minimal structured logging facade used by the
// assert subpackage.
//
// The package is dependency-free on purpose: consumers bring their own
// backend by implementing Logger (the zap subpackage provides one), and
// libraries that only need to emit can depend on this interface alone.
package log
