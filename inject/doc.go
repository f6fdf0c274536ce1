// Package inject rewrites marker-delimited regions of a text document. A
// region starts with an opening marker line carrying a directive and ends
// with a closing marker line:
//
//	<!-- INJECT: ${docs/usage.txt} -->
//	anything here is replaced
//	<!-- /INJECT -->
//
// Locate finds the regions, Expand turns a directive into replacement text
// by unescaping \n and substituting every ${path} placeholder with the
// trailing-whitespace-trimmed contents of path, and Inject splices the
// expansions back between the preserved marker lines. Text outside the
// regions is left byte-identical.
package inject
