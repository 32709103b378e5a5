/*

Process of checking

KWS Text ->
	parse ->
Builder calls (kws) ->
	verify ->
Diagnostics (diag) ->
	report ->
Text or Table

Front end ->
	builder calls (kws) ->
Diagnostics (diag)

Instructions are checked as they are issued.
Only a few checks wait: dispatch arms until br.a, unterminated blocks until Finish.

*/
package compiler
