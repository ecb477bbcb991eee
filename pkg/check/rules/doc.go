// Package rules contains the built-in encoding rules (SE001-SE007).
//
// Rules register themselves with check.DefaultRegistry via init(), so
// importing this package (typically with a blank import in main) makes
// all built-in rules available.
package rules
