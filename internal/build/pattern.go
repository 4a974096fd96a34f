package build

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/arbograph/gql/gqlerr"
	"github.com/arbograph/gql/internal/aqt"
	"github.com/arbograph/gql/internal/grammar"
)

// nodeInfo is an intermediate, pre-propagation view of a parsed node
// pattern: enough to build either a bare SingleNode or, once optional
// propagation runs, a SingleOptionalNode.
type nodeInfo struct {
	pos        lexer.Position
	bare       bool
	name       string
	labels     []string
	properties *aqt.Expression
}

// buildPattern lowers a comma-separated pattern list into flattened
// PatternRecords plus any named paths it introduces.
func (b *Builder) buildPattern(p *grammar.Pattern) ([]aqt.PatternRecord, map[string]aqt.NamedPath, error) {
	var records []aqt.PatternRecord
	paths := map[string]aqt.NamedPath{}

	for _, path := range p.Paths {
		segs, err := b.buildPathPattern(path)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, segs...)
		if path.Name != "" {
			paths[path.Name] = aqt.NamedPath{Name: path.Name, Segments: segs}
		}
	}
	return records, paths, nil
}

func (b *Builder) buildPathPattern(p *grammar.PathPattern) ([]aqt.PatternRecord, error) {
	if p.Shortest != nil {
		sp, err := b.buildShortestPath(p.Shortest, p.Name)
		if err != nil {
			return nil, err
		}
		return []aqt.PatternRecord{{ShortestPath: sp}}, nil
	}
	return b.buildPatternChain(p.Chain, p.Name != "")
}

// buildPatternChain lowers a node (-rel-node)* chain into one or more
// PatternRecords: a lone SingleNode when there are no relationships,
// otherwise one RelatedTo/VarLengthRelatedTo per link. namedPath is true
// when this chain is bound to a `p = ...` name, which preserves the
// author-written direction instead of normalizing it (§4.4).
func (b *Builder) buildPatternChain(chain *grammar.PatternChain, namedPath bool) ([]aqt.PatternRecord, error) {
	nodes := make([]*nodeInfo, 0, len(chain.Links)+1)
	n0, err := b.parseNodePattern(chain.Node)
	if err != nil {
		return nil, err
	}
	nodes = append(nodes, n0)

	type linkInfo struct {
		rel  *grammar.RelPattern
		node *nodeInfo
	}
	links := make([]linkInfo, 0, len(chain.Links))
	for _, l := range chain.Links {
		n, err := b.parseNodePattern(l.Node)
		if err != nil {
			return nil, err
		}
		links = append(links, linkInfo{rel: l.Rel, node: n})
		nodes = append(nodes, n)
	}

	if len(links) == 0 {
		return []aqt.PatternRecord{{SingleNode: &aqt.SingleNodeRecord{Name: nodes[0].name, Labels: nodes[0].labels}}}, nil
	}

	optional := make([]bool, len(nodes))
	if b.rules.optionalPropagation {
		for i, l := range links {
			if l.rel.Detail != nil && l.rel.Detail.Optional {
				optional[i] = true
				optional[i+1] = true
			}
		}
	}

	refOf := func(i int) aqt.NodeRef {
		n := nodes[i]
		if optional[i] {
			return aqt.NodeRef{SingleOptional: &aqt.SingleOptionalNode{Name: n.name, Labels: n.labels}}
		}
		return aqt.NodeRef{Single: &aqt.SingleNode{Name: n.name, Labels: n.labels}}
	}

	records := make([]aqt.PatternRecord, 0, len(links))
	for i, l := range links {
		from, to := refOf(i), refOf(i+1)
		direction, err := b.relDirection(l.rel)
		if err != nil {
			return nil, err
		}

		detail := l.rel.Detail
		var (
			relName    string
			relOptional bool
			types      []string
		)
		relName = anonymousName(l.rel.Pos)
		if detail != nil {
			if detail.Variable != "" {
				relName = detail.Variable
			}
			relOptional = detail.Optional
			types, err = b.relTypes(detail.Types)
			if err != nil {
				return nil, err
			}
		}

		if !namedPath && direction == aqt.In {
			from, to = to, from
			direction = aqt.Out
		}

		if detail != nil && detail.Range != nil {
			min, max := rangeBounds(detail.Range)
			var relBinding *string
			if detail.Variable != "" {
				v := detail.Variable
				relBinding = &v
			}
			records = append(records, aqt.PatternRecord{VarLengthRelatedTo: &aqt.VarLengthRelatedTo{
				PathName:   anonymousName(l.rel.Pos),
				From:       from,
				To:         to,
				Min:        min,
				Max:        max,
				Types:      types,
				Direction:  direction,
				RelBinding: relBinding,
				Optional:   relOptional,
			}})
			continue
		}

		records = append(records, aqt.PatternRecord{RelatedTo: &aqt.RelatedTo{
			From:      from,
			To:        to,
			RelName:   relName,
			Types:     types,
			Direction: direction,
			Optional:  relOptional,
		}})
	}
	return records, nil
}

// buildPatternChainAsRecords is the entry point used when a pattern chain
// appears as an expression atom (pattern predicate / path expression),
// always treated as a non-named path so direction normalizes as usual.
func (b *Builder) buildPatternChainAsRecords(chain *grammar.PatternChain) ([]aqt.PatternRecord, error) {
	return b.buildPatternChain(chain, false)
}

func (b *Builder) relDirection(r *grammar.RelPattern) (aqt.Direction, error) {
	switch {
	case r.Left && r.Right:
		return "", b.unexpected(r.Pos, "a relationship cannot point both directions", nil)
	case r.Left:
		return aqt.In, nil
	case r.Right:
		return aqt.Out, nil
	default:
		return aqt.Both, nil
	}
}

// relTypes flattens a RelTypeList and gates the `|` vs `|:` separator per
// dialect.
func (b *Builder) relTypes(list *grammar.RelTypeList) ([]string, error) {
	if list == nil {
		return nil, nil
	}
	types := []string{list.First}
	for _, item := range list.Rest {
		if item.Colon != b.rules.pipeColonTypeSeparator {
			return nil, b.dialectErr(gqlerr.ErrTypeSeparatorMismatch, item.Pos)
		}
		types = append(types, item.Name)
	}
	return types, nil
}

func rangeBounds(r *grammar.RangeSpec) (min, max *int) {
	switch {
	case r.HasRange:
		if r.Min != nil {
			v := int(*r.Min)
			min = &v
		}
		if r.Max != nil {
			v := int(*r.Max)
			max = &v
		}
	case r.Min != nil:
		v := int(*r.Min)
		min, max = &v, &v
	}
	return min, max
}

func (b *Builder) parseNodePattern(n *grammar.NodePattern) (*nodeInfo, error) {
	if n.Bare != "" {
		return &nodeInfo{pos: n.Pos, bare: true, name: n.Bare}, nil
	}
	paren := n.Paren
	name := paren.Variable
	bare := false
	if name == "" {
		name = anonymousName(n.Pos)
		bare = true
	}
	var props *aqt.Expression
	if paren.Properties != nil {
		p, err := b.buildProperties(paren.Properties)
		if err != nil {
			return nil, err
		}
		props = p
	}
	return &nodeInfo{pos: n.Pos, bare: bare, name: name, labels: paren.Labels, properties: props}, nil
}

func (b *Builder) buildProperties(p *grammar.Properties) (*aqt.Expression, error) {
	switch {
	case p.Map != nil:
		return b.mapLiteralExpr(p.Map)
	case p.Param != nil:
		name, err := b.parameterName(p.Param)
		if err != nil {
			return nil, err
		}
		return &aqt.Expression{Parameter: &name}, nil
	default:
		return nil, b.internalErr(p.Pos, "empty properties")
	}
}

// buildShortestPath lowers shortestPath(...)/allShortestPaths(...). name
// is the path's bound name, if any; otherwise an anonymous name is
// assigned at the shortestPath keyword's offset.
func (b *Builder) buildShortestPath(s *grammar.ShortestPathExpr, name string) (*aqt.ShortestPath, error) {
	if name == "" {
		name = anonymousName(s.Pos)
	}
	segs, err := b.buildPatternChain(s.Inner, true)
	if err != nil {
		return nil, err
	}
	if len(segs) != 1 || (segs[0].RelatedTo == nil && segs[0].VarLengthRelatedTo == nil) {
		return nil, b.unexpected(s.Pos, "shortestPath requires exactly one relationship between two nodes", nil)
	}

	if vlr := segs[0].VarLengthRelatedTo; vlr != nil {
		return &aqt.ShortestPath{
			Name:       name,
			From:       vlr.From,
			To:         vlr.To,
			Types:      vlr.Types,
			Direction:  vlr.Direction,
			Max:        vlr.Max,
			Optional:   vlr.Optional,
			Single:     s.Single,
			RelBinding: vlr.RelBinding,
		}, nil
	}

	rel := segs[0].RelatedTo
	var relBinding *string
	if rel.RelName != "" {
		rb := rel.RelName
		relBinding = &rb
	}
	return &aqt.ShortestPath{
		Name:       name,
		From:       rel.From,
		To:         rel.To,
		Types:      rel.Types,
		Direction:  rel.Direction,
		Optional:   rel.Optional,
		Single:     s.Single,
		RelBinding: relBinding,
	}, nil
}
