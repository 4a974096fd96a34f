package build

import (
	"strconv"
	"strings"

	"github.com/arbograph/gql/gqlerr"
	"github.com/arbograph/gql/internal/aqt"
	"github.com/arbograph/gql/internal/grammar"
	gqllexer "github.com/arbograph/gql/internal/lexer"
)

func ident(name string) *aqt.Expression {
	return &aqt.Expression{Identifier: &name}
}

// buildExpression lowers an OR-level expression, folding left-associative
// OR terms.
func (b *Builder) buildExpression(e *grammar.Expression) (*aqt.Expression, error) {
	left, err := b.buildXor(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Right {
		right, err := b.buildXor(r)
		if err != nil {
			return nil, err
		}
		left = &aqt.Expression{Or: &aqt.BinaryExpr{Left: left, Right: right}}
	}
	return left, nil
}

func (b *Builder) buildXor(e *grammar.XorExpr) (*aqt.Expression, error) {
	left, err := b.buildAnd(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Right {
		right, err := b.buildAnd(r)
		if err != nil {
			return nil, err
		}
		left = &aqt.Expression{Xor: &aqt.BinaryExpr{Left: left, Right: right}}
	}
	return left, nil
}

func (b *Builder) buildAnd(e *grammar.AndExpr) (*aqt.Expression, error) {
	left, err := b.buildNot(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Right {
		right, err := b.buildNot(r)
		if err != nil {
			return nil, err
		}
		left = &aqt.Expression{And: &aqt.BinaryExpr{Left: left, Right: right}}
	}
	return left, nil
}

func (b *Builder) buildNot(e *grammar.NotExpr) (*aqt.Expression, error) {
	inner, err := b.buildComparison(e.Expr)
	if err != nil {
		return nil, err
	}
	if e.Not {
		return &aqt.Expression{Not: inner}, nil
	}
	return inner, nil
}

// buildComparison lowers =, <>, <, <=, >, >=, =~, IS [NOT] NULL, and IN.
// <> is lowered to Not(Eq(...)) per the Design Notes' operator-lowering
// rule; IN over a collection desugars to AnyInCollection with the
// reserved inner-variable name.
func (b *Builder) buildComparison(e *grammar.ComparisonExpr) (*aqt.Expression, error) {
	left, err := b.buildAddSub(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Suffix == nil {
		return left, nil
	}
	s := e.Suffix

	switch {
	case s.IsNull != nil:
		return &aqt.Expression{IsNull: &aqt.IsNullExpr{Target: left, Not: s.IsNull.Not}}, nil
	case s.In != nil:
		right, err := b.buildAddSub(s.In)
		if err != nil {
			return nil, err
		}
		inner := aqt.InnerVariable
		pred := &aqt.Expression{Eq: &aqt.BinaryExpr{Left: left, Right: ident(inner)}}
		return &aqt.Expression{AnyInCollection: &aqt.InCollectionExpr{Collection: right, Variable: inner, Predicate: pred}}, nil
	default:
		right, err := b.buildAddSub(s.Right)
		if err != nil {
			return nil, err
		}
		switch s.Op {
		case "=":
			return &aqt.Expression{Eq: &aqt.BinaryExpr{Left: left, Right: right}}, nil
		case "<>":
			return &aqt.Expression{Not: &aqt.Expression{Eq: &aqt.BinaryExpr{Left: left, Right: right}}}, nil
		case "<":
			return &aqt.Expression{Lt: &aqt.BinaryExpr{Left: left, Right: right}}, nil
		case "<=":
			return &aqt.Expression{Le: &aqt.BinaryExpr{Left: left, Right: right}}, nil
		case ">":
			return &aqt.Expression{Gt: &aqt.BinaryExpr{Left: left, Right: right}}, nil
		case ">=":
			return &aqt.Expression{Ge: &aqt.BinaryExpr{Left: left, Right: right}}, nil
		case "=~":
			match := &aqt.RegexMatchExpr{Left: left, Pattern: right}
			if right.StringLiteral != nil {
				return &aqt.Expression{RegexLiteral: match}, nil
			}
			return &aqt.Expression{RegexDynamic: match}, nil
		default:
			return nil, b.internalErr(s.Pos, "unknown comparison operator "+s.Op)
		}
	}
}

func (b *Builder) buildAddSub(e *grammar.AddSubExpr) (*aqt.Expression, error) {
	left, err := b.buildMultDiv(e.Left)
	if err != nil {
		return nil, err
	}
	for _, term := range e.Right {
		right, err := b.buildMultDiv(term.Expr)
		if err != nil {
			return nil, err
		}
		switch term.Op {
		case "+":
			left = &aqt.Expression{Add: &aqt.BinaryExpr{Left: left, Right: right}}
		case "-":
			left = &aqt.Expression{Sub: &aqt.BinaryExpr{Left: left, Right: right}}
		}
	}
	return left, nil
}

func (b *Builder) buildMultDiv(e *grammar.MultDivExpr) (*aqt.Expression, error) {
	left, err := b.buildPower(e.Left)
	if err != nil {
		return nil, err
	}
	for _, term := range e.Right {
		right, err := b.buildPower(term.Expr)
		if err != nil {
			return nil, err
		}
		switch term.Op {
		case "*":
			left = &aqt.Expression{Mul: &aqt.BinaryExpr{Left: left, Right: right}}
		case "/":
			left = &aqt.Expression{Div: &aqt.BinaryExpr{Left: left, Right: right}}
		case "%":
			left = &aqt.Expression{Mod: &aqt.BinaryExpr{Left: left, Right: right}}
		}
	}
	return left, nil
}

func (b *Builder) buildPower(e *grammar.PowerExpr) (*aqt.Expression, error) {
	left, err := b.buildUnary(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Right {
		right, err := b.buildUnary(r)
		if err != nil {
			return nil, err
		}
		left = &aqt.Expression{Pow: &aqt.BinaryExpr{Left: left, Right: right}}
	}
	return left, nil
}

func (b *Builder) buildUnary(e *grammar.UnaryExpr) (*aqt.Expression, error) {
	inner, err := b.buildPostfix(e.Expr)
	if err != nil {
		return nil, err
	}
	if e.Op == "-" {
		return &aqt.Expression{Neg: inner}, nil
	}
	return inner, nil
}

func (b *Builder) buildPostfix(e *grammar.PostfixExpr) (*aqt.Expression, error) {
	result, err := b.buildAtom(e.Atom)
	if err != nil {
		return nil, err
	}
	for _, suffix := range e.Suffixes {
		result, err = b.applyPostfixSuffix(result, suffix)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (b *Builder) applyPostfixSuffix(target *aqt.Expression, suffix *grammar.PostfixSuffix) (*aqt.Expression, error) {
	switch {
	case suffix.Property != nil:
		p := suffix.Property
		result := &aqt.Expression{Property: &aqt.PropertyExpr{Target: target, Key: p.Name}}
		if p.Nullable {
			if !b.rules.nullablePostfix {
				return nil, b.dialectErr(gqlerr.ErrNullablePostfixNotSupported, p.Pos)
			}
			result = &aqt.Expression{Nullable: result}
		}
		if p.NullableGet {
			if !b.rules.nullablePostfix {
				return nil, b.dialectErr(gqlerr.ErrNullablePostfixNotSupported, p.Pos)
			}
			result = &aqt.Expression{NullablePredicate: &aqt.NullablePredicateExpr{Inner: result, Default: false}}
		}
		return result, nil

	case suffix.Index != nil:
		idx := suffix.Index
		if idx.HasRange {
			var start, end *aqt.Expression
			if idx.Start != nil {
				s, err := b.buildExpression(idx.Start)
				if err != nil {
					return nil, err
				}
				start = s
			}
			if idx.End != nil {
				e, err := b.buildExpression(idx.End)
				if err != nil {
					return nil, err
				}
				end = e
			}
			return &aqt.Expression{Slice: &aqt.SliceExpr{Target: target, Start: start, End: end}}, nil
		}
		if idx.Start == nil {
			return nil, b.internalErr(idx.Pos, "index expression missing operand")
		}
		ix, err := b.buildExpression(idx.Start)
		if err != nil {
			return nil, err
		}
		return &aqt.Expression{Index: &aqt.IndexExpr{Target: target, Index: ix}}, nil

	case len(suffix.Labels) > 0:
		var combined *aqt.Expression
		for _, lbl := range suffix.Labels {
			he := &aqt.Expression{HasLabel: &aqt.HasLabelExpr{Target: target, Label: lbl}}
			if combined == nil {
				combined = he
			} else {
				combined = &aqt.Expression{And: &aqt.BinaryExpr{Left: combined, Right: he}}
			}
		}
		return combined, nil
	}
	return target, nil
}

// buildAtom lowers a single atomic expression, handling every literal,
// function-like form, and dialect-gated construct.
func (b *Builder) buildAtom(a *grammar.Atom) (*aqt.Expression, error) {
	switch {
	case a.ListComp != nil:
		return b.buildListComprehension(a.ListComp)
	case a.Parameter != nil:
		name, err := b.parameterName(a.Parameter)
		if err != nil {
			return nil, err
		}
		return &aqt.Expression{Parameter: &name}, nil
	case a.CaseExpr != nil:
		return b.buildCase(a.CaseExpr)
	case a.CountStar:
		return &aqt.Expression{FunctionCall: &aqt.FunctionCallExpr{Name: "count", Args: []aqt.Expression{{StringLiteral: strPtr("*")}}}}, nil
	case a.Reduce != nil:
		if !b.rules.reduce {
			return nil, b.dialectErr(gqlerr.ErrReduceNotSupported, a.Reduce.Pos)
		}
		return b.buildReduce(a.Reduce)
	case a.FilterPredicate != nil:
		return b.buildFilterPredicate(a.FilterPredicate)
	case a.ShortestPathExpr != nil:
		sp, err := b.buildShortestPath(a.ShortestPathExpr, "")
		if err != nil {
			return nil, err
		}
		return &aqt.Expression{ShortestPathExpression: sp}, nil
	case a.PatternPredicate != nil:
		patterns, err := b.buildPatternChainAsRecords(a.PatternPredicate)
		if err != nil {
			return nil, err
		}
		if b.rules.patternPredicates {
			return &aqt.Expression{PatternPredicate: patterns}, nil
		}
		return &aqt.Expression{NonEmpty: &aqt.Expression{PathExpression: patterns}}, nil
	case a.Parenthesized != nil:
		return b.buildExpression(a.Parenthesized)
	case a.FunctionCall != nil:
		return b.buildFunctionCall(a.FunctionCall)
	case a.Literal != nil:
		return b.buildLiteral(a.Literal)
	case a.Variable != "":
		return ident(a.Variable), nil
	default:
		return nil, b.internalErr(a.Pos, "empty atom")
	}
}

func (b *Builder) buildLiteral(l *grammar.Literal) (*aqt.Expression, error) {
	switch {
	case l.Null:
		return &aqt.Expression{NullLiteral: true}, nil
	case l.True:
		if b.rules.booleanLowering {
			return &aqt.Expression{True_: true}, nil
		}
		v := true
		return &aqt.Expression{BoolLiteral: &v}, nil
	case l.False:
		if b.rules.booleanLowering {
			return &aqt.Expression{Not: &aqt.Expression{True_: true}}, nil
		}
		v := false
		return &aqt.Expression{BoolLiteral: &v}, nil
	case l.Float != nil:
		return &aqt.Expression{FloatLiteral: l.Float}, nil
	case l.Int != nil:
		return &aqt.Expression{IntLiteral: l.Int}, nil
	case l.Str != nil:
		s := gqllexer.Unescape(*l.Str)
		return &aqt.Expression{StringLiteral: &s}, nil
	case l.List != nil:
		items := make([]aqt.Expression, 0, len(l.List.Items))
		for _, it := range l.List.Items {
			ex, err := b.buildExpression(it)
			if err != nil {
				return nil, err
			}
			items = append(items, *ex)
		}
		return &aqt.Expression{ListLiteral: items}, nil
	case l.Map != nil:
		m, err := b.buildMapLiteral(l.Map)
		if err != nil {
			return nil, err
		}
		return &aqt.Expression{MapLiteral: m}, nil
	default:
		return nil, b.internalErr(l.Pos, "empty literal")
	}
}

func (b *Builder) buildMapLiteral(m *grammar.MapLiteral) (map[string]aqt.Expression, error) {
	out := make(map[string]aqt.Expression, len(m.Pairs))
	for _, pair := range m.Pairs {
		v, err := b.buildExpression(pair.Value)
		if err != nil {
			return nil, err
		}
		out[pair.Key] = *v
	}
	return out, nil
}

func (b *Builder) mapLiteralExpr(m *grammar.MapLiteral) (*aqt.Expression, error) {
	built, err := b.buildMapLiteral(m)
	if err != nil {
		return nil, err
	}
	return &aqt.Expression{MapLiteral: built}, nil
}

func (b *Builder) parameterName(p *grammar.Parameter) (string, error) {
	switch {
	case p.Ident != "":
		return p.Ident, nil
	case p.Escaped != "":
		return gqllexer.UnescapeIdent(p.Escaped), nil
	case p.Index != nil:
		return strconv.FormatInt(*p.Index, 10), nil
	default:
		return "", b.internalErr(p.Pos, "empty parameter")
	}
}

func (b *Builder) buildFunctionCall(f *grammar.FunctionCall) (*aqt.Expression, error) {
	args := make([]aqt.Expression, 0, len(f.Args))
	for _, a := range f.Args {
		ex, err := b.buildExpression(a)
		if err != nil {
			return nil, err
		}
		args = append(args, *ex)
	}
	return &aqt.Expression{FunctionCall: &aqt.FunctionCallExpr{Name: f.Name, Distinct: f.Distinct, Args: args}}, nil
}

// buildListComprehension lowers [x IN c WHERE p], [x IN c | e], and
// [x IN c WHERE p | e] per the Design Notes' extract/filter desugar. A
// comprehension with neither WHERE nor a mapping ([x IN c]) is rejected.
func (b *Builder) buildListComprehension(lc *grammar.ListComprehension) (*aqt.Expression, error) {
	source, err := b.buildExpression(lc.Source)
	if err != nil {
		return nil, err
	}

	var filtered *aqt.Expression = source
	if lc.Where != nil {
		if !b.rules.comprehensionExtract {
			return nil, b.dialectErr(gqlerr.ErrComprehensionNotSupported, lc.Pos)
		}
		pred, err := b.buildExpression(lc.Where)
		if err != nil {
			return nil, err
		}
		filtered = &aqt.Expression{FilterFunction: &aqt.FilterFunctionExpr{Collection: source, Variable: lc.Variable, Predicate: pred}}
	}

	if lc.Mapping == nil {
		if lc.Where == nil {
			return nil, b.internalErr(lc.Pos, "list comprehension without WHERE or mapping")
		}
		return filtered, nil
	}
	if !b.rules.comprehensionExtract {
		return nil, b.dialectErr(gqlerr.ErrComprehensionNotSupported, lc.Pos)
	}
	mapping, err := b.buildExpression(lc.Mapping)
	if err != nil {
		return nil, err
	}
	return &aqt.Expression{ExtractFunction: &aqt.ExtractFunctionExpr{Collection: filtered, Variable: lc.Variable, Mapping: mapping}}, nil
}

func (b *Builder) buildFilterPredicate(f *grammar.FilterPredicate) (*aqt.Expression, error) {
	source, err := b.buildExpression(f.Source)
	if err != nil {
		return nil, err
	}
	var predExpr *grammar.Expression
	switch {
	case f.WherePred != nil:
		predExpr = f.WherePred
	case f.ColonPred != nil:
		predExpr = f.ColonPred
	}
	var pred *aqt.Expression
	if predExpr != nil {
		pred, err = b.buildExpression(predExpr)
		if err != nil {
			return nil, err
		}
	}

	switch strings.ToUpper(f.Kind) {
	case "FILTER":
		return &aqt.Expression{FilterFunction: &aqt.FilterFunctionExpr{Collection: source, Variable: f.Variable, Predicate: pred}}, nil
	case "ALL":
		return &aqt.Expression{AllInCollection: &aqt.InCollectionExpr{Collection: source, Variable: f.Variable, Predicate: pred}}, nil
	case "ANY":
		return &aqt.Expression{AnyInCollection: &aqt.InCollectionExpr{Collection: source, Variable: f.Variable, Predicate: pred}}, nil
	case "NONE":
		return &aqt.Expression{NoneInCollection: &aqt.InCollectionExpr{Collection: source, Variable: f.Variable, Predicate: pred}}, nil
	case "SINGLE":
		return &aqt.Expression{SingleInCollection: &aqt.InCollectionExpr{Collection: source, Variable: f.Variable, Predicate: pred}}, nil
	default:
		return nil, b.internalErr(f.Pos, "unknown predicate kind "+f.Kind)
	}
}

func (b *Builder) buildReduce(r *grammar.ReduceExpr) (*aqt.Expression, error) {
	init, err := b.buildExpression(r.Init)
	if err != nil {
		return nil, err
	}
	source, err := b.buildExpression(r.Source)
	if err != nil {
		return nil, err
	}
	mapping, err := b.buildExpression(r.Expr)
	if err != nil {
		return nil, err
	}
	return &aqt.Expression{ReduceFunction: &aqt.ReduceFunctionExpr{
		Collection:  source,
		Variable:    r.Variable,
		Mapping:     mapping,
		Accumulator: r.Acc,
		Init:        init,
	}}, nil
}

// buildCase lowers a simple CASE (with scrutinee) or a generic CASE
// (condition-only WHEN clauses, ≥2.0 only).
func (b *Builder) buildCase(c *grammar.CaseExpr) (*aqt.Expression, error) {
	whens := make([]aqt.CaseWhenExpr, 0, len(c.Whens))
	for _, w := range c.Whens {
		when, err := b.buildExpression(w.When)
		if err != nil {
			return nil, err
		}
		then, err := b.buildExpression(w.Then)
		if err != nil {
			return nil, err
		}
		whens = append(whens, aqt.CaseWhenExpr{When: when, Then: then})
	}
	var elseExpr *aqt.Expression
	if c.Else != nil {
		e, err := b.buildExpression(c.Else)
		if err != nil {
			return nil, err
		}
		elseExpr = e
	}

	if c.Input != nil {
		input, err := b.buildExpression(c.Input)
		if err != nil {
			return nil, err
		}
		return &aqt.Expression{SimpleCase: &aqt.SimpleCaseExpr{Input: input, Whens: whens, Else: elseExpr}}, nil
	}
	if !b.rules.genericCase {
		return nil, b.dialectErr(gqlerr.ErrGenericCaseNotSupported, c.Pos)
	}
	return &aqt.Expression{GenericCase: &aqt.GenericCaseExpr{Whens: whens, Else: elseExpr}}, nil
}

func strPtr(s string) *string { return &s }
