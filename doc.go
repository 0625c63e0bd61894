// Package goenum implement lazy, pull-based enumerations over
// elements of any type, along with the usual set of constructors,
// combinators and terminal operations.
//
//   - Enumerations are possibly infinite and computed on demand.
//   - Combinators (Map, Filter, Append, Concat ...) are lazy, no
//     element is pulled from the source until the derived enumeration
//     is itself consumed.
//   - Clone gives every consumer an independent handle instead of
//     sharing one cursor across consumers.
//
// Enumerations are meant for single threaded, sequential consumption.
// No operation is safe for concurrent invocation on the same handle
// without external synchronization.
//
// Passing an enumeration to a combinator hands over its consumption,
// the derived enumeration becomes the sole sanctioned consumer of the
// source. Consuming the source independently afterwards will race
// both over the same cursor. This is a usage discipline and is not
// enforced by the package.
//
// strutil:
//
// Pure string manipulation functions - searching, splitting, joining,
// slicing, case conversion - and the two bridges between strings and
// byte enumerations.
package goenum
