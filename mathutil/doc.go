// Package mathutil provides pure integer computation functions.
//
// Each function validates its input and fails with an invalid-argument
// error (see utilkit.dev/utilkit/errors) when given a value outside its
// documented domain.
package mathutil
