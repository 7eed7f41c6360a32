// Package mython implements a small dynamically typed, indentation-scoped
// scripting language: Number, String, Bool, and None values; classes with
// single inheritance and dynamically dispatched methods; and the usual
// assignment, arithmetic, comparison, and control-flow statements.
//
// Compiling turns source into a Script via a Lexer/Parser pipeline, and
// running it walks the resulting AST directly against a Closure holding
// its variable bindings. Errors at every stage are reported as a single
// *LanguageError carrying the failing line.
package mython
