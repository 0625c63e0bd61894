// Package strutil implement pure string manipulation functions -
// searching, splitting, joining, slicing, case conversion and numeric
// conversion - along with the two bridges between strings and byte
// enumerations, Enumerate and Ofenum.
//
// Functions are byte oriented. Case conversions apply to the ASCII
// subset and leave every other byte untouched.
package strutil
