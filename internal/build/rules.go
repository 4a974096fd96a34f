// Package build lowers a parsed grammar.Document into an aqt.Root: it
// assigns auto-names from cursor offsets, normalizes relationship
// direction, propagates optionality, splits the pipeline at WITH, and
// applies every dialect gate. Per Design Notes, gating is driven by a
// table of per-dialect rule overrides (dialectRules) rather than scattered
// version checks.
package build

import "github.com/arbograph/gql/internal/aqt"

// dialectRules is the per-dialect feature table consulted throughout the
// builder instead of branching on aqt.Dialect directly.
type dialectRules struct {
	// booleanLowering, when true, lowers `true`/`false` literals to
	// True()/Not(True()) instead of Expression.BoolLiteral.
	booleanLowering bool
	// optionalPropagation, when true, marks pattern endpoints reached
	// through an optional relationship as SingleOptionalNode (I5).
	optionalPropagation bool
	// pipeColonTypeSeparator selects which chained relationship-type
	// separator is accepted: true requires `|:`, false requires bare `|`.
	pipeColonTypeSeparator bool
	// nullablePostfix allows `.p?`/`.p!` on property access.
	nullablePostfix bool
	// union allows the UNION clause.
	union bool
	// labelSetRemove allows `SET`/`REMOVE n:Label`.
	labelSetRemove bool
	// schemaDDL allows CREATE/DROP INDEX and CREATE CONSTRAINT.
	schemaDDL bool
	// patternPredicates allows a bare pattern as a boolean expression,
	// lowered to Expression.PatternPredicate; otherwise it lowers to
	// Expression.NonEmpty(PathExpression(...)).
	patternPredicates bool
	// comprehensionExtract allows the `[x IN c WHERE p]`, `[x IN c | e]` and
	// `[x IN c WHERE p | e]` list-comprehension forms; the grammar has no
	// named extract(...) function.
	comprehensionExtract bool
	// genericCase allows `CASE WHEN pred THEN r END` (no scrutinee).
	genericCase bool
	// reduce allows the reduce(...) function.
	reduce bool
	// hints allows USING INDEX/SCAN.
	hints bool
	// matchWithoutStart allows a query to open with MATCH (no START).
	matchWithoutStart bool
	// deleteOnProperties allows v1_9's `DELETE n.p` form.
	deleteOnProperties bool
}

var rulesV19 = &dialectRules{
	booleanLowering:        false,
	optionalPropagation:    false,
	pipeColonTypeSeparator: false,
	nullablePostfix:        true,
	union:                  false,
	labelSetRemove:         false,
	schemaDDL:              false,
	patternPredicates:      false,
	comprehensionExtract:   false,
	genericCase:            false,
	reduce:                 false,
	hints:                  true,
	matchWithoutStart:      false,
	deleteOnProperties:     true,
}

var rulesV20 = &dialectRules{
	booleanLowering:        true,
	optionalPropagation:    true,
	pipeColonTypeSeparator: true,
	nullablePostfix:        false,
	union:                  true,
	labelSetRemove:         true,
	schemaDDL:              true,
	patternPredicates:      true,
	comprehensionExtract:   true,
	genericCase:            true,
	reduce:                 true,
	hints:                  true,
	matchWithoutStart:      true,
	deleteOnProperties:     false,
}

// rulesFor resolves the rule table for a dialect; Default behaves as V2_0,
// the more permissive modern dialect.
func rulesFor(d aqt.Dialect) *dialectRules {
	switch d {
	case aqt.V1_9:
		return rulesV19
	default:
		return rulesV20
	}
}
