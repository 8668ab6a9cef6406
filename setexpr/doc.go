/*
Package setexpr implements a small expression language over immutable sets.

It is intended as a sandbox for experimenting with set construction and
algebra, e.g. from the REPL in setexpr/icrepl. Expressions are built from
set literals, variables and operators:

    {1, 2, 3}                  set literal (integers and strings)
    a = {1, 2} | {2, 3}        union, bound to variable a
    a & {2}                    intersection
    a - {1}                    difference
    a ^ {3, 4}                 symmetric difference
    a == {1, 2, 3}             set equality      (yields true/false)
    {1} <= a                   subset test
    a >= {2, 3}                superset test

Operator precedence, tightest first: '&', then '|' '-' '^' left to right,
then a single comparison. Evaluation yields an *iset.Set, or a bool for
comparisons.

Scanning is done with a lexmachine lexer; parsing is a small recursive
descent over the token stream. Scan and parse errors are returned to the
caller, not retried.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package setexpr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.lang'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.lang")
}
