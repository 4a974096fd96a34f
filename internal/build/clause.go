package build

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/arbograph/gql/gqlerr"
	"github.com/arbograph/gql/internal/aqt"
	"github.com/arbograph/gql/internal/grammar"
)

// buildRegularQuery lowers a query's head segment and its UNION branches,
// if any. Per I4 distinct is a property of the whole union, never a single
// branch: a chain of UNIONs is distinct, a chain of UNION ALLs is not, and a
// chain that mixes the two is rejected with a DialectFeatureError.
func (b *Builder) buildRegularQuery(rq *grammar.RegularQuery) (*aqt.Root, error) {
	head, err := b.buildSingleQuery(rq.Single)
	if err != nil {
		return nil, err
	}
	if len(rq.Unions) == 0 {
		return &aqt.Root{Query: head}, nil
	}
	if !b.rules.union {
		return nil, b.dialectErr(gqlerr.ErrUnionNotSupported, rq.Unions[0].Pos)
	}

	queries := []*aqt.Query{head}
	distinct := false
	for _, u := range rq.Unions {
		if u.All != rq.Unions[0].All {
			return nil, gqlerr.WithDialect(gqlerr.New(gqlerr.DialectFeatureError, u.Pos, "mixing UNION and UNION ALL in one chain is not supported"), b.dialect)
		}
		q, err := b.buildSingleQuery(u.Query)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
		if !u.All {
			distinct = true
		}
	}
	return &aqt.Root{Union: &aqt.Union{Queries: queries, Distinct: distinct}}, nil
}

func (b *Builder) buildSingleQuery(q *grammar.SingleQuery) (*aqt.Query, error) {
	var start []*grammar.StartItem
	if q.Start != nil {
		start = q.Start.Items
	}
	return b.buildQueryParts(q.Pos, start, q.Reads, q.Where, q.Updates, q.With, q.Return)
}

func (b *Builder) buildTailQuery(q *grammar.TailQuery) (*aqt.Query, error) {
	return b.buildQueryParts(q.Pos, nil, q.Reads, q.Where, q.Updates, q.With, q.Return)
}

// buildQueryParts assembles one pipeline segment. The WITH boundary splits
// the segment: everything up to and including WITH's own ORDER/SKIP/LIMIT
// lives in this Query, and WITH's Tail becomes this Query's Tail (§4.7).
func (b *Builder) buildQueryParts(
	pos lexer.Position,
	start []*grammar.StartItem,
	reads []*grammar.ReadPart,
	where *grammar.WhereClause,
	updates []*grammar.UpdatePart,
	with *grammar.WithClause,
	ret *grammar.ReturnClause,
) (*aqt.Query, error) {
	q := &aqt.Query{}

	startItems, err := b.buildStartItems(start)
	if err != nil {
		return nil, err
	}
	q.Start = startItems

	if len(start) == 0 {
		for _, r := range reads {
			if r.Match != nil && !b.rules.matchWithoutStart {
				return nil, b.dialectErr(gqlerr.ErrMatchWithoutStartNotSupported, r.Match.Pos)
			}
		}
	}

	var whereExpr *aqt.Expression
	for _, r := range reads {
		switch {
		case r.Match != nil:
			records, paths, err := b.buildPattern(r.Match.Pattern)
			if err != nil {
				return nil, err
			}
			q.Matches = append(q.Matches, records...)
			q.NamedPaths = mergeNamedPaths(q.NamedPaths, paths)
			if r.Match.Where != nil {
				w, err := b.buildExpression(r.Match.Where.Expr)
				if err != nil {
					return nil, err
				}
				whereExpr = andExpr(whereExpr, w)
			}
		case r.Using != nil:
			if !b.rules.hints {
				continue
			}
			q.Hints = append(q.Hints, buildHint(r.Using))
		}
	}
	if where != nil {
		w, err := b.buildExpression(where.Expr)
		if err != nil {
			return nil, err
		}
		whereExpr = andExpr(whereExpr, w)
	}
	q.Where = whereExpr

	for _, u := range updates {
		actions, err := b.buildUpdatePart(u)
		if err != nil {
			return nil, err
		}
		q.Updates = append(q.Updates, actions...)
	}

	switch {
	case with != nil:
		items, err := b.buildProjectionItems(with.Items)
		if err != nil {
			return nil, err
		}
		q.Return = *items
		if agg := b.detectAggregation(with.Distinct, items); agg != nil {
			q.Aggregation = agg
		}
		if with.Order != nil {
			order, err := b.buildOrderBy(with.Order)
			if err != nil {
				return nil, err
			}
			q.OrderBy = order
		}
		if with.Skip != nil {
			s, err := b.buildExpression(with.Skip.Expr)
			if err != nil {
				return nil, err
			}
			q.Skip = s
		}
		if with.Limit != nil {
			l, err := b.buildExpression(with.Limit.Expr)
			if err != nil {
				return nil, err
			}
			q.Limit = l
		}
		// WITH's own WHERE filters the tail's inherited rows, not this
		// segment (it reads like a WHERE clause attached to the next MATCH).
		tail, err := b.buildTailQuery(with.Tail)
		if err != nil {
			return nil, err
		}
		if with.Where != nil {
			w, err := b.buildExpression(with.Where.Expr)
			if err != nil {
				return nil, err
			}
			tail.Where = andExpr(w, tail.Where)
		}
		q.Tail = tail

	case ret != nil:
		items, err := b.buildProjectionItems(ret.Items)
		if err != nil {
			return nil, err
		}
		q.Return = *items
		if agg := b.detectAggregation(ret.Distinct, items); agg != nil {
			q.Aggregation = agg
		}
		if ret.Order != nil {
			order, err := b.buildOrderBy(ret.Order)
			if err != nil {
				return nil, err
			}
			q.OrderBy = order
		}
		if ret.Skip != nil {
			s, err := b.buildExpression(ret.Skip.Expr)
			if err != nil {
				return nil, err
			}
			q.Skip = s
		}
		if ret.Limit != nil {
			l, err := b.buildExpression(ret.Limit.Expr)
			if err != nil {
				return nil, err
			}
			q.Limit = l
		}

	default:
		q.Return = aqt.ReturnSpec{Kind: aqt.ReturnEmpty}
	}

	return q, nil
}

func andExpr(existing, next *aqt.Expression) *aqt.Expression {
	if existing == nil {
		return next
	}
	if next == nil {
		return existing
	}
	return &aqt.Expression{And: &aqt.BinaryExpr{Left: existing, Right: next}}
}

func mergeNamedPaths(dst map[string]aqt.NamedPath, src map[string]aqt.NamedPath) map[string]aqt.NamedPath {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = map[string]aqt.NamedPath{}
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (b *Builder) buildProjectionItems(p *grammar.ProjectionItems) (*aqt.ReturnSpec, error) {
	if p.Star {
		return &aqt.ReturnSpec{Kind: aqt.ReturnAllIdentifiers}, nil
	}
	items := make([]aqt.ReturnItem, 0, len(p.Items))
	for _, it := range p.Items {
		expr, err := b.buildExpression(it.Expr)
		if err != nil {
			return nil, err
		}
		items = append(items, aqt.ReturnItem{Expr: *expr, Alias: it.Alias})
	}
	return &aqt.ReturnSpec{Kind: aqt.ReturnItemsKind, Items: items}, nil
}

// detectAggregation returns a non-nil Aggregation when DISTINCT was given
// or an aggregate function call appears among the projected items.
func (b *Builder) detectAggregation(distinct bool, spec *aqt.ReturnSpec) *aqt.Aggregation {
	hasAgg := false
	var groupBy []aqt.Expression
	for _, item := range spec.Items {
		if exprHasAggregate(&item.Expr) {
			hasAgg = true
		} else {
			groupBy = append(groupBy, item.Expr)
		}
	}
	if !distinct && !hasAgg {
		return nil
	}
	if hasAgg {
		return &aqt.Aggregation{GroupBy: groupBy, HasAggregates: true}
	}
	return &aqt.Aggregation{HasAggregates: false}
}

var aggregateFunctions = map[string]bool{
	"count": true, "sum": true, "avg": true, "min": true, "max": true,
	"collect": true, "stdev": true, "stdevp": true,
	"percentilecont": true, "percentiledisc": true,
}

func exprHasAggregate(e *aqt.Expression) bool {
	if e == nil {
		return false
	}
	if e.FunctionCall != nil && aggregateFunctions[strings.ToLower(e.FunctionCall.Name)] {
		return true
	}
	switch {
	case e.Add != nil:
		return exprHasAggregate(e.Add.Left) || exprHasAggregate(e.Add.Right)
	case e.Sub != nil:
		return exprHasAggregate(e.Sub.Left) || exprHasAggregate(e.Sub.Right)
	case e.Mul != nil:
		return exprHasAggregate(e.Mul.Left) || exprHasAggregate(e.Mul.Right)
	case e.Div != nil:
		return exprHasAggregate(e.Div.Left) || exprHasAggregate(e.Div.Right)
	case e.Property != nil:
		return exprHasAggregate(e.Property.Target)
	case e.Nullable != nil:
		return exprHasAggregate(e.Nullable)
	}
	return false
}

func (b *Builder) buildOrderBy(o *grammar.OrderBy) ([]aqt.SortItem, error) {
	items := make([]aqt.SortItem, 0, len(o.Items))
	for _, it := range o.Items {
		e, err := b.buildExpression(it.Expr)
		if err != nil {
			return nil, err
		}
		dir := strings.ToUpper(it.Dir)
		desc := dir == "DESC" || dir == "DESCENDING"
		items = append(items, aqt.SortItem{Expr: *e, Desc: desc})
	}
	return items, nil
}

// buildHint lowers a USING INDEX/SCAN clause into its Hint record.
// IndexKind and Value are left zero: they only apply to a CREATE INDEX's own
// record, not a query-time hint referencing one.
func buildHint(u *grammar.UsingClause) aqt.Hint {
	switch {
	case u.Index != nil:
		return aqt.Hint{SchemaIndex: &aqt.SchemaIndexHint{
			Node:     u.Index.Node,
			Label:    u.Index.Label,
			Property: u.Index.Property,
		}}
	default:
		return aqt.Hint{NodeByLabel: &aqt.NodeByLabelHint{
			Node:  u.Scan.Node,
			Label: u.Scan.Label,
		}}
	}
}

// ----------------------------------------------------------------------------
// START clause
// ----------------------------------------------------------------------------

func (b *Builder) buildStartItems(items []*grammar.StartItem) ([]aqt.StartItem, error) {
	out := make([]aqt.StartItem, 0, len(items))
	for _, it := range items {
		si, err := b.buildStartItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, si)
	}
	return out, nil
}

func (b *Builder) buildStartItem(it *grammar.StartItem) (aqt.StartItem, error) {
	switch {
	case it.Node != nil:
		return b.buildNodeStartItem(it.Name, it.Node)
	case it.Rel != nil:
		return b.buildRelStartItem(it.Name, it.Rel)
	default:
		return aqt.StartItem{}, b.internalErr(it.Pos, "empty start item")
	}
}

func (b *Builder) buildNodeStartItem(name string, n *grammar.NodeStartItem) (aqt.StartItem, error) {
	switch {
	case n.All:
		return aqt.StartItem{AllNodes: &aqt.AllNodes{Name: name}}, nil
	case n.ByID != nil:
		ids, param, err := b.buildIDListOrParam(n.ByID)
		if err != nil {
			return aqt.StartItem{}, err
		}
		return aqt.StartItem{NodeById: &aqt.NodeById{Name: name, IDs: ids, Param: param}}, nil
	case n.Index != nil:
		return b.buildNodeIndexStart(name, n.Index)
	default:
		return aqt.StartItem{}, b.internalErr(n.Pos, "empty node start item")
	}
}

func (b *Builder) buildRelStartItem(name string, r *grammar.RelStartItem) (aqt.StartItem, error) {
	switch {
	case r.All:
		return aqt.StartItem{AllRels: &aqt.AllRels{Name: name}}, nil
	case r.ByID != nil:
		ids, param, err := b.buildIDListOrParam(r.ByID)
		if err != nil {
			return aqt.StartItem{}, err
		}
		return aqt.StartItem{RelById: &aqt.RelById{Name: name, IDs: ids, Param: param}}, nil
	case r.Index != nil:
		return b.buildRelIndexStart(name, r.Index)
	default:
		return aqt.StartItem{}, b.internalErr(r.Pos, "empty relationship start item")
	}
}

func (b *Builder) buildIDListOrParam(idp *grammar.IDListOrParam) ([]int64, *string, error) {
	if idp.Param != nil {
		name, err := b.parameterName(idp.Param)
		if err != nil {
			return nil, nil, err
		}
		return nil, &name, nil
	}
	return idp.IDs, nil, nil
}

func (b *Builder) buildNodeIndexStart(name string, spec *grammar.IndexSpec) (aqt.StartItem, error) {
	switch {
	case spec.Lookup != nil:
		key, err := b.buildExpression(spec.Lookup.Key)
		if err != nil {
			return aqt.StartItem{}, err
		}
		value, err := b.buildExpression(spec.Lookup.Value)
		if err != nil {
			return aqt.StartItem{}, err
		}
		return aqt.StartItem{NodeByIndex: &aqt.NodeByIndex{Name: name, Index: spec.Name, Key: *key, Value: *value}}, nil
	case spec.Query != nil:
		q, err := b.buildExpression(spec.Query)
		if err != nil {
			return aqt.StartItem{}, err
		}
		return aqt.StartItem{NodeByIndexQuery: &aqt.NodeByIndexQuery{Name: name, Index: spec.Name, Query: *q}}, nil
	default:
		return aqt.StartItem{}, b.internalErr(spec.Pos, "empty index spec")
	}
}

func (b *Builder) buildRelIndexStart(name string, spec *grammar.IndexSpec) (aqt.StartItem, error) {
	switch {
	case spec.Lookup != nil:
		key, err := b.buildExpression(spec.Lookup.Key)
		if err != nil {
			return aqt.StartItem{}, err
		}
		value, err := b.buildExpression(spec.Lookup.Value)
		if err != nil {
			return aqt.StartItem{}, err
		}
		return aqt.StartItem{RelByIndex: &aqt.RelByIndex{Name: name, Index: spec.Name, Key: *key, Value: *value}}, nil
	case spec.Query != nil:
		q, err := b.buildExpression(spec.Query)
		if err != nil {
			return aqt.StartItem{}, err
		}
		return aqt.StartItem{RelByIndexQuery: &aqt.RelByIndexQuery{Name: name, Index: spec.Name, Query: *q}}, nil
	default:
		return aqt.StartItem{}, b.internalErr(spec.Pos, "empty index spec")
	}
}

// ----------------------------------------------------------------------------
// Updates
// ----------------------------------------------------------------------------

func (b *Builder) buildUpdatePart(u *grammar.UpdatePart) ([]aqt.UpdateAction, error) {
	switch {
	case u.CreateUnique != nil:
		return b.buildCreateUniqueClause(u.CreateUnique)
	case u.Create != nil:
		return b.buildCreateClause(u.Create)
	case u.Set != nil:
		return b.buildSetClause(u.Set)
	case u.Remove != nil:
		return b.buildRemoveClause(u.Remove)
	case u.Delete != nil:
		return b.buildDeleteClause(u.Delete)
	case u.Foreach != nil:
		action, err := b.buildForeachClause(u.Foreach)
		if err != nil {
			return nil, err
		}
		return []aqt.UpdateAction{{Foreach: action}}, nil
	default:
		return nil, b.internalErr(u.Pos, "empty update part")
	}
}

// buildCreateClause lowers CREATE's pattern into node/relationship create
// actions. A lone node `(n:Label {p})` becomes CreateNodeAction; a chain
// becomes one CreateRelationshipAction per link, plus a CreateNodeAction
// for every endpoint, whether or not it has its own label/property detail.
func (b *Builder) buildCreateClause(c *grammar.CreateClause) ([]aqt.UpdateAction, error) {
	return b.buildCreatePattern(c.Pattern)
}

func (b *Builder) buildCreatePattern(p *grammar.Pattern) ([]aqt.UpdateAction, error) {
	var actions []aqt.UpdateAction
	for _, path := range p.Paths {
		if path.Chain == nil {
			return nil, b.unexpected(path.Pos, "CREATE requires a plain pattern", nil)
		}
		chainActions, err := b.buildCreateChain(path.Chain)
		if err != nil {
			return nil, err
		}
		actions = append(actions, chainActions...)
	}
	return actions, nil
}

func (b *Builder) buildCreateChain(chain *grammar.PatternChain) ([]aqt.UpdateAction, error) {
	nodes := make([]*nodeInfo, 0, len(chain.Links)+1)
	n0, err := b.parseNodePattern(chain.Node)
	if err != nil {
		return nil, err
	}
	nodes = append(nodes, n0)

	var actions []aqt.UpdateAction
	actions = append(actions, aqt.UpdateAction{CreateNode: b.createNodeAction(n0)})

	for _, l := range chain.Links {
		n, err := b.parseNodePattern(l.Node)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		actions = append(actions, aqt.UpdateAction{CreateNode: b.createNodeAction(n)})

		direction, err := b.relDirection(l.Rel)
		if err != nil {
			return nil, err
		}
		from := aqt.NodeRef{Single: &aqt.SingleNode{Name: nodes[len(nodes)-2].name, Labels: nodes[len(nodes)-2].labels}}
		to := aqt.NodeRef{Single: &aqt.SingleNode{Name: n.name, Labels: n.labels}}
		if direction == aqt.In {
			from, to = to, from
			direction = aqt.Out
		}

		detail := l.Rel.Detail
		relName := anonymousName(l.Rel.Pos)
		var relType string
		var props *aqt.Expression
		if detail != nil {
			if detail.Variable != "" {
				relName = detail.Variable
			}
			types, err := b.relTypes(detail.Types)
			if err != nil {
				return nil, err
			}
			if len(types) > 0 {
				relType = types[0]
			}
			if detail.Properties != nil {
				props, err = b.buildProperties(detail.Properties)
				if err != nil {
					return nil, err
				}
			}
		}

		actions = append(actions, aqt.UpdateAction{CreateRelationship: &aqt.CreateRelationshipAction{
			From: from, To: to, Name: relName, Type: relType, Properties: props, Direction: direction,
		}})
	}
	return actions, nil
}

func (b *Builder) createNodeAction(n *nodeInfo) *aqt.CreateNodeAction {
	return &aqt.CreateNodeAction{Name: n.name, Labels: n.labels, Properties: n.properties, Bare: n.bare}
}

// buildCreateUniqueClause lowers CREATE UNIQUE into UniqueLink records, one
// per relationship in the chain.
func (b *Builder) buildCreateUniqueClause(c *grammar.CreateUniqueClause) ([]aqt.UpdateAction, error) {
	var actions []aqt.UpdateAction
	for _, path := range c.Pattern.Paths {
		if path.Chain == nil {
			return nil, b.unexpected(path.Pos, "CREATE UNIQUE requires a plain pattern", nil)
		}
		links, err := b.buildUniqueLinks(path.Chain)
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			link := l
			actions = append(actions, aqt.UpdateAction{UniqueLink: &link})
		}
	}
	return actions, nil
}

func (b *Builder) buildUniqueLinks(chain *grammar.PatternChain) ([]aqt.UniqueLink, error) {
	records, err := b.buildPatternChain(chain, true)
	if err != nil {
		return nil, err
	}
	links := make([]aqt.UniqueLink, 0, len(records))
	for _, r := range records {
		if r.RelatedTo == nil {
			continue
		}
		links = append(links, aqt.UniqueLink{
			Left:           r.RelatedTo.From,
			Right:          r.RelatedTo.To,
			RelExpectation: r.RelatedTo.RelName,
			Type:           firstOrEmpty(r.RelatedTo.Types),
			Direction:      r.RelatedTo.Direction,
		})
	}
	return links, nil
}

func firstOrEmpty(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

func (b *Builder) buildSetClause(s *grammar.SetClause) ([]aqt.UpdateAction, error) {
	actions := make([]aqt.UpdateAction, 0, len(s.Items))
	for _, item := range s.Items {
		a, err := b.buildSetItem(item)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func (b *Builder) buildSetItem(item *grammar.SetItem) (aqt.UpdateAction, error) {
	switch {
	case item.Property != nil:
		p := item.Property
		val, err := b.buildExpression(p.Expr)
		if err != nil {
			return aqt.UpdateAction{}, err
		}
		return aqt.UpdateAction{PropertySet: &aqt.PropertySetAction{Target: ident(p.Variable), Property: p.Property, Value: val}}, nil
	case item.MapSet != nil:
		m := item.MapSet
		val, err := b.mapLiteralExpr(m.Map)
		if err != nil {
			return aqt.UpdateAction{}, err
		}
		return aqt.UpdateAction{MapPropertySet: &aqt.MapPropertySetAction{Target: ident(m.Variable), Value: val}}, nil
	case item.Label != nil:
		if !b.rules.labelSetRemove {
			return aqt.UpdateAction{}, b.dialectErr(gqlerr.ErrLabelSetNotSupported, item.Label.Pos)
		}
		l := item.Label
		return aqt.UpdateAction{LabelAction: &aqt.LabelActionRecord{Target: ident(l.Variable), Op: aqt.LabelOpSet, Labels: l.Labels}}, nil
	default:
		return aqt.UpdateAction{}, b.internalErr(item.Pos, "empty SET item")
	}
}

func (b *Builder) buildRemoveClause(r *grammar.RemoveClause) ([]aqt.UpdateAction, error) {
	actions := make([]aqt.UpdateAction, 0, len(r.Items))
	for _, item := range r.Items {
		a, err := b.buildRemoveItem(item)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func (b *Builder) buildRemoveItem(item *grammar.RemoveItem) (aqt.UpdateAction, error) {
	switch {
	case item.Label != nil:
		if !b.rules.labelSetRemove {
			return aqt.UpdateAction{}, b.dialectErr(gqlerr.ErrLabelSetNotSupported, item.Label.Pos)
		}
		l := item.Label
		return aqt.UpdateAction{LabelAction: &aqt.LabelActionRecord{Target: ident(l.Variable), Op: aqt.LabelOpRemove, Labels: l.Labels}}, nil
	case item.Prop != nil:
		p := item.Prop
		return aqt.UpdateAction{DeleteProperty: &aqt.DeletePropertyAction{Target: &aqt.Expression{Property: &aqt.PropertyExpr{Target: ident(p.Variable), Key: p.Property}}}}, nil
	default:
		return aqt.UpdateAction{}, b.internalErr(item.Pos, "empty REMOVE item")
	}
}

// buildDeleteClause distinguishes whole-entity DELETE from v1_9's
// property-valued DELETE n.p form by checking whether the built
// expression is a bare identifier or a property access.
func (b *Builder) buildDeleteClause(d *grammar.DeleteClause) ([]aqt.UpdateAction, error) {
	actions := make([]aqt.UpdateAction, 0, len(d.Exprs))
	for _, e := range d.Exprs {
		expr, err := b.buildExpression(e)
		if err != nil {
			return nil, err
		}
		if expr.Property != nil {
			if !b.rules.deleteOnProperties {
				return nil, b.dialectErr(gqlerr.ErrDeletePropertyNotSupported, e.Pos)
			}
			actions = append(actions, aqt.UpdateAction{DeleteProperty: &aqt.DeletePropertyAction{Target: expr}})
			continue
		}
		actions = append(actions, aqt.UpdateAction{DeleteEntity: &aqt.DeleteEntityAction{Target: expr, Detach: d.Detach}})
	}
	return actions, nil
}

// buildForeachClause preserves the `:` separator accepted alongside `|`
// regardless of dialect (Design Notes, open question b): Sep is captured
// by the grammar but never gated here.
func (b *Builder) buildForeachClause(f *grammar.ForeachClause) (*aqt.ForeachAction, error) {
	source, err := b.buildExpression(f.Source)
	if err != nil {
		return nil, err
	}
	body := make([]aqt.UpdateAction, 0, len(f.Body))
	for _, u := range f.Body {
		actions, err := b.buildUpdatePart(u)
		if err != nil {
			return nil, err
		}
		body = append(body, actions...)
	}
	return &aqt.ForeachAction{IterExpr: source, Variable: f.Variable, Body: body}, nil
}

// ----------------------------------------------------------------------------
// Schema commands
// ----------------------------------------------------------------------------

func (b *Builder) buildSchemaCommand(s *grammar.SchemaCommand) (*aqt.Root, error) {
	if !b.rules.schemaDDL {
		return nil, b.dialectErr(gqlerr.ErrSchemaDDLNotSupported, s.Pos)
	}
	switch {
	case s.CreateIndex != nil:
		idx, err := b.buildIndexSpec(s.CreateIndex.Label, s.CreateIndex.Props, s.CreateIndex.Pos)
		if err != nil {
			return nil, err
		}
		return &aqt.Root{CreateIndex: &aqt.CreateIndex{Label: idx.Label, Properties: idx.Properties}}, nil
	case s.DropIndex != nil:
		idx, err := b.buildIndexSpec(s.DropIndex.Label, s.DropIndex.Props, s.DropIndex.Pos)
		if err != nil {
			return nil, err
		}
		return &aqt.Root{DropIndex: &aqt.DropIndex{Label: idx.Label, Properties: idx.Properties}}, nil
	case s.CreateConstraint != nil:
		c := s.CreateConstraint
		return &aqt.Root{CreateUniqueConstraint: &aqt.CreateUniqueConstraint{
			Variable:    c.Var,
			Label:       c.Label,
			PropertyVar: c.PropVar,
			Property:    c.Property,
		}}, nil
	default:
		return nil, b.internalErr(s.Pos, "empty schema command")
	}
}

// buildIndexSpec enforces the §4.8 arity rules: an index needs at least
// one property, and composite (multi-property) indexes are rejected.
func (b *Builder) buildIndexSpec(label string, props []string, pos lexer.Position) (*aqt.CreateIndex, error) {
	if len(props) == 0 {
		return nil, b.arityErr(gqlerr.ErrIndexWithoutProperty, pos)
	}
	if len(props) > 1 {
		return nil, b.arityErr(gqlerr.ErrCompositeIndex, pos)
	}
	return &aqt.CreateIndex{Label: label, Properties: props}, nil
}
