// Package internalcheck holds static policy tests over the module.
//
// The tests load packages with golang.org/x/tools/go/packages and walk their
// syntax trees. Cipher packages fail when they panic, perform I/O or draw
// randomness. The registry, recipe and CLI packages fail when a log call is
// handed a cipher key that has not gone through logging.Redacted or a
// logging.Fingerprinter. It is not intended for external use.
package internalcheck
