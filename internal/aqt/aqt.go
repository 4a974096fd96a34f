// Package aqt defines the Abstract Query Tree: the immutable, structurally
// tagged-variant representation a parsed query is lowered to. Every
// variant type here is a closed set per its section in the data model;
// internal/build is the only package that constructs values of these
// types. Tagged unions follow the teacher's own Clause{Reading *Reading;
// Updating *Updating; ...} idiom: a struct with several nilable pointer
// fields, exactly one of which is set.
package aqt

// Dialect selects grammar rules and desugaring behavior for a parse.
type Dialect string

const (
	V1_9    Dialect = "v1_9"
	V2_0    Dialect = "v2_0"
	Default Dialect = "default"
)

// Direction is a relationship pattern's direction, normalized so that a
// relation outside a named path is never IN.
type Direction string

const (
	Out  Direction = "OUT"
	In   Direction = "IN"
	Both Direction = "BOTH"
)

// Root is the top-level value parse returns: exactly one of its fields is
// set.
type Root struct {
	Query                  *Query                  `json:"query,omitempty" yaml:"query,omitempty"`
	Union                  *Union                  `json:"union,omitempty" yaml:"union,omitempty"`
	CreateIndex            *CreateIndex            `json:"createIndex,omitempty" yaml:"createIndex,omitempty"`
	DropIndex              *DropIndex              `json:"dropIndex,omitempty" yaml:"dropIndex,omitempty"`
	CreateUniqueConstraint *CreateUniqueConstraint `json:"createUniqueConstraint,omitempty" yaml:"createUniqueConstraint,omitempty"`
}

// Query is one segment of a pipeline: start items, matched patterns, a
// predicate, updates, and a return spec, with an optional tail query
// produced by a WITH boundary.
type Query struct {
	Start       []StartItem           `json:"start,omitempty" yaml:"start,omitempty"`
	Matches     []PatternRecord       `json:"matches,omitempty" yaml:"matches,omitempty"`
	Where       *Expression           `json:"where,omitempty" yaml:"where,omitempty"`
	NamedPaths  map[string]NamedPath  `json:"namedPaths,omitempty" yaml:"namedPaths,omitempty"`
	Aggregation *Aggregation          `json:"aggregation,omitempty" yaml:"aggregation,omitempty"`
	OrderBy     []SortItem            `json:"orderBy,omitempty" yaml:"orderBy,omitempty"`
	Skip        *Expression           `json:"skip,omitempty" yaml:"skip,omitempty"`
	Limit       *Expression           `json:"limit,omitempty" yaml:"limit,omitempty"`
	Updates     []UpdateAction        `json:"updates,omitempty" yaml:"updates,omitempty"`
	Hints       []Hint                `json:"hints,omitempty" yaml:"hints,omitempty"`
	Return      ReturnSpec            `json:"return" yaml:"return"`
	Tail        *Query                `json:"tail,omitempty" yaml:"tail,omitempty"`
}

// NamedPath records a path pattern bound to a name, alongside the
// flattened matches() list the same pattern also contributes to.
type NamedPath struct {
	Name     string          `json:"name" yaml:"name"`
	Segments []PatternRecord `json:"segments,omitempty" yaml:"segments,omitempty"`
}

// Aggregation is present when RETURN/WITH groups: either because DISTINCT
// was given (HasAggregates false, grouping-only) or because an aggregate
// expression appeared among the projected items.
type Aggregation struct {
	GroupBy       []Expression `json:"groupBy,omitempty" yaml:"groupBy,omitempty"`
	HasAggregates bool         `json:"hasAggregates" yaml:"hasAggregates"`
}

// SortItem is one ORDER BY entry.
type SortItem struct {
	Expr Expression `json:"expr" yaml:"expr"`
	Desc bool       `json:"desc,omitempty" yaml:"desc,omitempty"`
}

// ReturnKind discriminates ReturnSpec's three legal shapes (invariant I3
// in the data model: exactly one of these ever applies to a Query).
type ReturnKind int

const (
	ReturnEmpty ReturnKind = iota
	ReturnAllIdentifiers
	ReturnItemsKind
)

// ReturnSpec is a query's projection: nothing (terminal update queries),
// RETURN *, or an explicit aliased item list.
type ReturnSpec struct {
	Kind  ReturnKind   `json:"kind" yaml:"kind"`
	Items []ReturnItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// ReturnItem is expr (AS alias)?.
type ReturnItem struct {
	Expr  Expression `json:"expr" yaml:"expr"`
	Alias string     `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// Union is a left-associative chain of ≥2 queries with a union-wide
// distinct flag (invariant I4: never a per-branch property).
type Union struct {
	Queries  []*Query `json:"queries" yaml:"queries"`
	Distinct bool     `json:"distinct" yaml:"distinct"`
}

// ----------------------------------------------------------------------------
// Start items
// ----------------------------------------------------------------------------

// StartItem is a START-clause entry. CreateNode/CreateRel/CreateUnique
// exist as variants of this type for data-model completeness (the legacy
// StartItem supertype these are modeled on could carry mutating forms) but
// this front end only ever constructs the read variants from a parsed
// START clause.
type StartItem struct {
	NodeById         *NodeById         `json:"nodeById,omitempty" yaml:"nodeById,omitempty"`
	RelById          *RelById          `json:"relById,omitempty" yaml:"relById,omitempty"`
	NodeByIndex      *NodeByIndex      `json:"nodeByIndex,omitempty" yaml:"nodeByIndex,omitempty"`
	NodeByIndexQuery *NodeByIndexQuery `json:"nodeByIndexQuery,omitempty" yaml:"nodeByIndexQuery,omitempty"`
	RelByIndex       *RelByIndex       `json:"relByIndex,omitempty" yaml:"relByIndex,omitempty"`
	RelByIndexQuery  *RelByIndexQuery  `json:"relByIndexQuery,omitempty" yaml:"relByIndexQuery,omitempty"`
	AllNodes         *AllNodes         `json:"allNodes,omitempty" yaml:"allNodes,omitempty"`
	AllRels          *AllRels          `json:"allRels,omitempty" yaml:"allRels,omitempty"`
	CreateNode       *CreateNodeStart  `json:"createNode,omitempty" yaml:"createNode,omitempty"`
	CreateRel        *CreateRelStart   `json:"createRel,omitempty" yaml:"createRel,omitempty"`
	CreateUnique     *CreateUniqueStart `json:"createUnique,omitempty" yaml:"createUniqueStart,omitempty"`
}

type NodeById struct {
	Name  string   `json:"name" yaml:"name"`
	IDs   []int64  `json:"ids,omitempty" yaml:"ids,omitempty"`
	Param *string  `json:"param,omitempty" yaml:"param,omitempty"`
}

type RelById struct {
	Name  string  `json:"name" yaml:"name"`
	IDs   []int64 `json:"ids,omitempty" yaml:"ids,omitempty"`
	Param *string `json:"param,omitempty" yaml:"param,omitempty"`
}

type NodeByIndex struct {
	Name  string     `json:"name" yaml:"name"`
	Index string     `json:"index" yaml:"index"`
	Key   Expression `json:"key" yaml:"key"`
	Value Expression `json:"value" yaml:"value"`
}

type NodeByIndexQuery struct {
	Name  string     `json:"name" yaml:"name"`
	Index string     `json:"index" yaml:"index"`
	Query Expression `json:"query" yaml:"query"`
}

type RelByIndex struct {
	Name  string     `json:"name" yaml:"name"`
	Index string     `json:"index" yaml:"index"`
	Key   Expression `json:"key" yaml:"key"`
	Value Expression `json:"value" yaml:"value"`
}

type RelByIndexQuery struct {
	Name  string     `json:"name" yaml:"name"`
	Index string     `json:"index" yaml:"index"`
	Query Expression `json:"query" yaml:"query"`
}

type AllNodes struct {
	Name string `json:"name" yaml:"name"`
}

type AllRels struct {
	Name string `json:"name" yaml:"name"`
}

type CreateNodeStart struct {
	Action *CreateNodeAction `json:"action" yaml:"action"`
}

type CreateRelStart struct {
	Action *CreateRelationshipAction `json:"action" yaml:"action"`
}

type CreateUniqueStart struct {
	Links []*UniqueLink `json:"links" yaml:"links"`
}

// ----------------------------------------------------------------------------
// Pattern records and node references
// ----------------------------------------------------------------------------

// PatternRecord is one matched pattern: a direct relation, a var-length
// relation, a shortest path, or a lone node.
type PatternRecord struct {
	RelatedTo          *RelatedTo          `json:"relatedTo,omitempty" yaml:"relatedTo,omitempty"`
	VarLengthRelatedTo *VarLengthRelatedTo `json:"varLengthRelatedTo,omitempty" yaml:"varLengthRelatedTo,omitempty"`
	ShortestPath       *ShortestPath       `json:"shortestPath,omitempty" yaml:"shortestPath,omitempty"`
	SingleNode         *SingleNodeRecord   `json:"singleNode,omitempty" yaml:"singleNode,omitempty"`
}

// RelatedTo is a direct, fixed-length relationship between two node
// references. Outside a named path, Direction is never In (P5):
// normalization swaps endpoints instead.
type RelatedTo struct {
	From      NodeRef   `json:"from" yaml:"from"`
	To        NodeRef   `json:"to" yaml:"to"`
	RelName   string    `json:"relName" yaml:"relName"`
	Types     []string  `json:"types,omitempty" yaml:"types,omitempty"`
	Direction Direction `json:"direction" yaml:"direction"`
	Optional  bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// VarLengthRelatedTo is a *m..n relationship pattern.
type VarLengthRelatedTo struct {
	PathName   string    `json:"pathName" yaml:"pathName"`
	From       NodeRef   `json:"from" yaml:"from"`
	To         NodeRef   `json:"to" yaml:"to"`
	Min        *int      `json:"min,omitempty" yaml:"min,omitempty"`
	Max        *int      `json:"max,omitempty" yaml:"max,omitempty"`
	Types      []string  `json:"types,omitempty" yaml:"types,omitempty"`
	Direction  Direction `json:"direction" yaml:"direction"`
	RelBinding *string   `json:"relBinding,omitempty" yaml:"relBinding,omitempty"`
	Optional   bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// ShortestPath is shortestPath(...)/allShortestPaths(...); Single is true
// only for the former.
type ShortestPath struct {
	Name       string    `json:"name" yaml:"name"`
	From       NodeRef   `json:"from" yaml:"from"`
	To         NodeRef   `json:"to" yaml:"to"`
	Types      []string  `json:"types,omitempty" yaml:"types,omitempty"`
	Direction  Direction `json:"direction" yaml:"direction"`
	Max        *int      `json:"max,omitempty" yaml:"max,omitempty"`
	Optional   bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
	Single     bool      `json:"single" yaml:"single"`
	RelBinding *string   `json:"relBinding,omitempty" yaml:"relBinding,omitempty"`
}

// SingleNodeRecord is a lone node pattern with no relationship.
type SingleNodeRecord struct {
	Name   string   `json:"name" yaml:"name"`
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// NodeRef is a pattern endpoint: SingleOptional is produced only in
// dialect ≥2.0 when the endpoint is reached through an optional
// relationship (I5, optional propagation).
type NodeRef struct {
	Single         *SingleNode         `json:"single,omitempty" yaml:"single,omitempty"`
	SingleOptional *SingleOptionalNode `json:"singleOptional,omitempty" yaml:"singleOptional,omitempty"`
}

type SingleNode struct {
	Name   string   `json:"name" yaml:"name"`
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

type SingleOptionalNode struct {
	Name   string   `json:"name" yaml:"name"`
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// ----------------------------------------------------------------------------
// Expressions
// ----------------------------------------------------------------------------

// Expression is the closed tagged-variant set from the data model. Exactly
// one field is populated per value (NullLiteral and True_ are bool flags
// rather than pointers since they carry no further data, matching the
// teacher's Literal{Null bool; True bool; ...} shape).
type Expression struct {
	IntLiteral    *int64             `json:"intLiteral,omitempty" yaml:"intLiteral,omitempty"`
	FloatLiteral  *float64           `json:"floatLiteral,omitempty" yaml:"floatLiteral,omitempty"`
	StringLiteral *string            `json:"stringLiteral,omitempty" yaml:"stringLiteral,omitempty"`
	BoolLiteral   *bool              `json:"boolLiteral,omitempty" yaml:"boolLiteral,omitempty"`
	NullLiteral   bool               `json:"nullLiteral,omitempty" yaml:"nullLiteral,omitempty"`
	ListLiteral   []Expression       `json:"listLiteral,omitempty" yaml:"listLiteral,omitempty"`
	MapLiteral    map[string]Expression `json:"mapLiteral,omitempty" yaml:"mapLiteral,omitempty"`

	Identifier *string `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Parameter  *string `json:"parameter,omitempty" yaml:"parameter,omitempty"`

	Index             *IndexExpr             `json:"index,omitempty" yaml:"index,omitempty"`
	Slice             *SliceExpr             `json:"slice,omitempty" yaml:"slice,omitempty"`
	Property          *PropertyExpr          `json:"property,omitempty" yaml:"property,omitempty"`
	Nullable          *Expression            `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	NullablePredicate *NullablePredicateExpr `json:"nullablePredicate,omitempty" yaml:"nullablePredicate,omitempty"`

	Add *BinaryExpr `json:"add,omitempty" yaml:"add,omitempty"`
	Sub *BinaryExpr `json:"sub,omitempty" yaml:"sub,omitempty"`
	Mul *BinaryExpr `json:"mul,omitempty" yaml:"mul,omitempty"`
	Div *BinaryExpr `json:"div,omitempty" yaml:"div,omitempty"`
	Mod *BinaryExpr `json:"mod,omitempty" yaml:"mod,omitempty"`
	Pow *BinaryExpr `json:"pow,omitempty" yaml:"pow,omitempty"`
	Neg *Expression `json:"neg,omitempty" yaml:"neg,omitempty"`

	Eq *BinaryExpr `json:"eq,omitempty" yaml:"eq,omitempty"`
	Ne *BinaryExpr `json:"ne,omitempty" yaml:"ne,omitempty"`
	Lt *BinaryExpr `json:"lt,omitempty" yaml:"lt,omitempty"`
	Le *BinaryExpr `json:"le,omitempty" yaml:"le,omitempty"`
	Gt *BinaryExpr `json:"gt,omitempty" yaml:"gt,omitempty"`
	Ge *BinaryExpr `json:"ge,omitempty" yaml:"ge,omitempty"`

	RegexLiteral *RegexMatchExpr `json:"regexLiteral,omitempty" yaml:"regexLiteral,omitempty"`
	RegexDynamic *RegexMatchExpr `json:"regexDynamic,omitempty" yaml:"regexDynamic,omitempty"`

	And *BinaryExpr `json:"and,omitempty" yaml:"and,omitempty"`
	Or  *BinaryExpr `json:"or,omitempty" yaml:"or,omitempty"`
	Xor *BinaryExpr `json:"xor,omitempty" yaml:"xor,omitempty"`
	Not *Expression `json:"not,omitempty" yaml:"not,omitempty"`
	// True_ is the ≥2.0 canonical boolean-true predicate; ≥2.0 false is
	// represented as Not{True_: true}, never as its own variant.
	True_ bool `json:"true,omitempty" yaml:"true,omitempty"`

	FunctionCall *FunctionCallExpr `json:"functionCall,omitempty" yaml:"functionCall,omitempty"`

	AnyInCollection   *InCollectionExpr `json:"anyInCollection,omitempty" yaml:"anyInCollection,omitempty"`
	AllInCollection   *InCollectionExpr `json:"allInCollection,omitempty" yaml:"allInCollection,omitempty"`
	NoneInCollection  *InCollectionExpr `json:"noneInCollection,omitempty" yaml:"noneInCollection,omitempty"`
	SingleInCollection *InCollectionExpr `json:"singleInCollection,omitempty" yaml:"singleInCollection,omitempty"`

	PatternPredicate []PatternRecord `json:"patternPredicate,omitempty" yaml:"patternPredicate,omitempty"`
	NonEmpty         *Expression     `json:"nonEmpty,omitempty" yaml:"nonEmpty,omitempty"`
	PathExpression   []PatternRecord `json:"pathExpression,omitempty" yaml:"pathExpression,omitempty"`

	HasLabel *HasLabelExpr `json:"hasLabel,omitempty" yaml:"hasLabel,omitempty"`
	IsNull   *IsNullExpr   `json:"isNull,omitempty" yaml:"isNull,omitempty"`

	SimpleCase  *SimpleCaseExpr  `json:"simpleCase,omitempty" yaml:"simpleCase,omitempty"`
	GenericCase *GenericCaseExpr `json:"genericCase,omitempty" yaml:"genericCase,omitempty"`

	FilterFunction  *FilterFunctionExpr  `json:"filterFunction,omitempty" yaml:"filterFunction,omitempty"`
	ExtractFunction *ExtractFunctionExpr `json:"extractFunction,omitempty" yaml:"extractFunction,omitempty"`
	ReduceFunction  *ReduceFunctionExpr  `json:"reduceFunction,omitempty" yaml:"reduceFunction,omitempty"`

	ShortestPathExpression *ShortestPath `json:"shortestPathExpression,omitempty" yaml:"shortestPathExpression,omitempty"`
}

// BinaryExpr is the shared shape for every two-operand expression variant
// (arithmetic, comparison, and boolean And/Or/Xor all reuse it).
type BinaryExpr struct {
	Left  *Expression `json:"left" yaml:"left"`
	Right *Expression `json:"right" yaml:"right"`
}

// IndexExpr is target[index]; Slice is target[start?..end?]. Neither is
// named explicitly in the data model's illustrative Expression list, but
// both are required by the index/slice grammar in §4.3 and are additive,
// never conflicting with a named variant.
type IndexExpr struct {
	Target *Expression `json:"target" yaml:"target"`
	Index  *Expression `json:"index" yaml:"index"`
}

type SliceExpr struct {
	Target *Expression `json:"target" yaml:"target"`
	Start  *Expression `json:"start,omitempty" yaml:"start,omitempty"`
	End    *Expression `json:"end,omitempty" yaml:"end,omitempty"`
}

type PropertyExpr struct {
	Target *Expression `json:"target" yaml:"target"`
	Key    string      `json:"key" yaml:"key"`
}

// NullablePredicateExpr wraps a pre-2.0 `a.p!` expression in predicate
// position.
type NullablePredicateExpr struct {
	Inner   *Expression `json:"inner" yaml:"inner"`
	Default bool        `json:"default" yaml:"default"`
}

// RegexMatchExpr backs both Literal and Dynamic regex variants; the
// builder chooses which field of Expression to populate based on whether
// Pattern is a string literal.
type RegexMatchExpr struct {
	Left    *Expression `json:"left" yaml:"left"`
	Pattern *Expression `json:"pattern" yaml:"pattern"`
}

// FunctionCallExpr is a named function invocation, used for every
// function in the data model's function list (length, nodes, rels, type,
// id, coalesce, head/last/tail, abs, round, sqrt, sign, startNode,
// endNode, percentileCont/Disc, stdev[p], min/max/avg/sum/count, has,
// count(*) normalized to name "count" with a single "*" sentinel arg).
type FunctionCallExpr struct {
	Name     string       `json:"name" yaml:"name"`
	Distinct bool         `json:"distinct,omitempty" yaml:"distinct,omitempty"`
	Args     []Expression `json:"args,omitempty" yaml:"args,omitempty"`
}

// InCollectionExpr backs all|any|none|single(x IN c WHERE p) and the
// `expr IN collection` desugar (whose synthetic Variable is the literal
// "-_-INNER-_-").
type InCollectionExpr struct {
	Collection *Expression `json:"collection" yaml:"collection"`
	Variable   string      `json:"variable" yaml:"variable"`
	Predicate  *Expression `json:"predicate" yaml:"predicate"`
}

type HasLabelExpr struct {
	Target *Expression `json:"target" yaml:"target"`
	Label  string      `json:"label" yaml:"label"`
}

type IsNullExpr struct {
	Target *Expression `json:"target" yaml:"target"`
	Not    bool        `json:"not,omitempty" yaml:"not,omitempty"`
}

type SimpleCaseExpr struct {
	Input *Expression     `json:"input" yaml:"input"`
	Whens []CaseWhenExpr  `json:"whens" yaml:"whens"`
	Else  *Expression     `json:"else,omitempty" yaml:"else,omitempty"`
}

type GenericCaseExpr struct {
	Whens []CaseWhenExpr `json:"whens" yaml:"whens"`
	Else  *Expression    `json:"else,omitempty" yaml:"else,omitempty"`
}

type CaseWhenExpr struct {
	When *Expression `json:"when" yaml:"when"`
	Then *Expression `json:"then" yaml:"then"`
}

type FilterFunctionExpr struct {
	Collection *Expression `json:"collection" yaml:"collection"`
	Variable   string      `json:"variable" yaml:"variable"`
	Predicate  *Expression `json:"predicate" yaml:"predicate"`
}

type ExtractFunctionExpr struct {
	Collection *Expression `json:"collection" yaml:"collection"`
	Variable   string      `json:"variable" yaml:"variable"`
	Mapping    *Expression `json:"mapping" yaml:"mapping"`
}

type ReduceFunctionExpr struct {
	Collection  *Expression `json:"collection" yaml:"collection"`
	Variable    string      `json:"variable" yaml:"variable"`
	Mapping     *Expression `json:"mapping" yaml:"mapping"`
	Accumulator string      `json:"accumulator" yaml:"accumulator"`
	Init        *Expression `json:"init" yaml:"init"`
}

// ----------------------------------------------------------------------------
// Update actions
// ----------------------------------------------------------------------------

// UpdateAction is one CREATE/CREATE UNIQUE/SET/REMOVE/DELETE/FOREACH
// action; exactly one field is populated.
type UpdateAction struct {
	CreateNode         *CreateNodeAction         `json:"createNode,omitempty" yaml:"createNode,omitempty"`
	CreateRelationship *CreateRelationshipAction `json:"createRelationship,omitempty" yaml:"createRelationship,omitempty"`
	DeleteEntity       *DeleteEntityAction       `json:"deleteEntity,omitempty" yaml:"deleteEntity,omitempty"`
	DeleteProperty     *DeletePropertyAction     `json:"deleteProperty,omitempty" yaml:"deleteProperty,omitempty"`
	PropertySet        *PropertySetAction        `json:"propertySet,omitempty" yaml:"propertySet,omitempty"`
	MapPropertySet     *MapPropertySetAction     `json:"mapPropertySet,omitempty" yaml:"mapPropertySet,omitempty"`
	LabelAction        *LabelActionRecord        `json:"labelAction,omitempty" yaml:"labelAction,omitempty"`
	Foreach            *ForeachAction            `json:"foreach,omitempty" yaml:"foreach,omitempty"`
	UniqueLink         *UniqueLink               `json:"uniqueLink,omitempty" yaml:"uniqueLink,omitempty"`
}

// CreateNodeAction is CREATE (n:Label {props}) or bare CREATE n. Bare is
// preserved verbatim per the open-question decision: both forms produce
// the same node shape but the flag distinguishes how the source wrote it.
type CreateNodeAction struct {
	Name       string      `json:"name" yaml:"name"`
	Labels     []string    `json:"labels,omitempty" yaml:"labels,omitempty"`
	Properties *Expression `json:"properties,omitempty" yaml:"properties,omitempty"`
	Bare       bool        `json:"bare,omitempty" yaml:"bare,omitempty"`
}

type CreateRelationshipAction struct {
	From       NodeRef     `json:"from" yaml:"from"`
	To         NodeRef     `json:"to" yaml:"to"`
	Name       string      `json:"name" yaml:"name"`
	Type       string      `json:"type" yaml:"type"`
	Properties *Expression `json:"properties,omitempty" yaml:"properties,omitempty"`
	Direction  Direction   `json:"direction" yaml:"direction"`
}

type DeleteEntityAction struct {
	Target *Expression `json:"target" yaml:"target"`
	Detach bool        `json:"detach,omitempty" yaml:"detach,omitempty"`
}

// DeletePropertyAction backs v1_9-only `DELETE n.p`.
type DeletePropertyAction struct {
	Target *Expression `json:"target" yaml:"target"`
}

type PropertySetAction struct {
	Target   *Expression `json:"target" yaml:"target"`
	Property string      `json:"property" yaml:"property"`
	Value    *Expression `json:"value" yaml:"value"`
}

type MapPropertySetAction struct {
	Target *Expression `json:"target" yaml:"target"`
	Value  *Expression `json:"value" yaml:"value"`
}

// LabelOp discriminates SET n:Label from REMOVE n:Label.
type LabelOp string

const (
	LabelOpSet    LabelOp = "SET"
	LabelOpRemove LabelOp = "REMOVE"
)

type LabelActionRecord struct {
	Target *Expression `json:"target" yaml:"target"`
	Op     LabelOp     `json:"op" yaml:"op"`
	Labels []string    `json:"labels" yaml:"labels"`
}

type ForeachAction struct {
	IterExpr *Expression    `json:"iterExpr" yaml:"iterExpr"`
	Variable string         `json:"variable" yaml:"variable"`
	Body     []UpdateAction `json:"body" yaml:"body"`
}

// UniqueLink is one CREATE UNIQUE relationship record. Left and Right carry
// each endpoint's name and labels only; property or parameter maps written
// on an endpoint are not recorded.
type UniqueLink struct {
	Left           NodeRef   `json:"left" yaml:"left"`
	Right          NodeRef   `json:"right" yaml:"right"`
	RelExpectation string    `json:"relExpectation,omitempty" yaml:"relExpectation,omitempty"`
	Type           string    `json:"type,omitempty" yaml:"type,omitempty"`
	Direction      Direction `json:"direction" yaml:"direction"`
}

// ----------------------------------------------------------------------------
// Hints and schema commands
// ----------------------------------------------------------------------------

type Hint struct {
	SchemaIndex *SchemaIndexHint `json:"schemaIndex,omitempty" yaml:"schemaIndex,omitempty"`
	NodeByLabel *NodeByLabelHint `json:"nodeByLabel,omitempty" yaml:"nodeByLabel,omitempty"`
}

type SchemaIndexHint struct {
	Node      string      `json:"node" yaml:"node"`
	Label     string      `json:"label" yaml:"label"`
	Property  string      `json:"property" yaml:"property"`
	IndexKind string      `json:"indexKind" yaml:"indexKind"`
	Value     *Expression `json:"value,omitempty" yaml:"value,omitempty"`
}

type NodeByLabelHint struct {
	Node  string `json:"node" yaml:"node"`
	Label string `json:"label" yaml:"label"`
}

// CreateIndex is CREATE INDEX ON :Label(props...).
type CreateIndex struct {
	Label      string   `json:"label" yaml:"label"`
	Properties []string `json:"properties" yaml:"properties"`
}

// DropIndex is DROP INDEX ON :Label(props...).
type DropIndex struct {
	Label      string   `json:"label" yaml:"label"`
	Properties []string `json:"properties" yaml:"properties"`
}

// CreateUniqueConstraint is CREATE CONSTRAINT ON (v:Label) ASSERT
// v.property IS UNIQUE.
type CreateUniqueConstraint struct {
	Variable    string `json:"variable" yaml:"variable"`
	Label       string `json:"label" yaml:"label"`
	PropertyVar string `json:"propertyVar" yaml:"propertyVar"`
	Property    string `json:"property" yaml:"property"`
}

// AnonymousPrefix is the literal sentinel prefix for every auto-generated
// name (I2); byte-offset is appended in decimal with no separator.
const AnonymousPrefix = "  UNNAMED"

// InnerVariable is the synthetic iterator name reserved for the `IN
// <collection-literal>` desugar to AnyInCollection.
const InnerVariable = "-_-INNER-_-"
