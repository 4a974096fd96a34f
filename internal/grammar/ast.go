// Package grammar defines the GQL concrete syntax tree, built with
// participle over internal/lexer. It mirrors openCypher structure (the
// teacher's dialects/cypher/grammar package) generalized to the v1_9/v2_0
// surface described by the spec: every node embeds a lexer.Position so the
// AQT builder can read byte offsets at construction sites without
// reconstructing them later.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Document is the root of a parse: either a standalone schema command or a
// regular (possibly UNION'd) query.
type Document struct {
	Pos    lexer.Position
	Schema *SchemaCommand `  @@`
	Query  *RegularQuery  `| @@`
}

// ----------------------------------------------------------------------------
// Regular queries, UNION, and the linear clause pipeline
// ----------------------------------------------------------------------------

// RegularQuery is a single query plus zero or more UNION branches.
type RegularQuery struct {
	Pos    lexer.Position
	Single *SingleQuery   `@@`
	Unions []*UnionClause `@@*`
}

// UnionClause is UNION [ALL] <query>.
type UnionClause struct {
	Pos   lexer.Position
	All   bool         `"UNION" @"ALL"?`
	Query *SingleQuery `@@`
}

// SingleQuery is the head segment of a query: START? (MATCH|USING)* WHERE?
// updates* (WITH -> TailQuery | RETURN?).
type SingleQuery struct {
	Pos     lexer.Position
	Start   *StartClause  `@@?`
	Reads   []*ReadPart   `@@*`
	Where   *WhereClause  `@@?`
	Updates []*UpdatePart `@@*`
	With    *WithClause   `@@?`
	Return  *ReturnClause `@@?`
}

// TailQuery is the sub-query following a WITH: it never has its own START,
// per the spec's "tail inherits projected identifiers only".
type TailQuery struct {
	Pos     lexer.Position
	Reads   []*ReadPart   `@@*`
	Where   *WhereClause  `@@?`
	Updates []*UpdatePart `@@*`
	With    *WithClause   `@@?`
	Return  *ReturnClause `@@?`
}

// ReadPart is a MATCH clause or a USING hint, freely interleaved.
type ReadPart struct {
	Pos   lexer.Position
	Match *MatchClause `  @@`
	Using *UsingClause `| @@`
}

// MatchClause is OPTIONAL? MATCH pattern WHERE?.
type MatchClause struct {
	Pos      lexer.Position
	Optional bool         `@"OPTIONAL"?`
	Pattern  *Pattern     `"MATCH" @@`
	Where    *WhereClause `@@?`
}

// UsingClause is USING INDEX v:L(p) or USING SCAN v:L.
type UsingClause struct {
	Pos   lexer.Position
	Index *UsingIndex `"USING" ( @@`
	Scan  *UsingScan  `        | @@ )`
}

// UsingIndex is INDEX v:Label(prop).
type UsingIndex struct {
	Pos      lexer.Position
	Node     string `"INDEX" @Ident Colon`
	Label    string `@Ident LParen`
	Property string `@Ident RParen`
}

// UsingScan is SCAN v:Label.
type UsingScan struct {
	Pos   lexer.Position
	Node  string `"SCAN" @Ident Colon`
	Label string `@Ident`
}

// WhereClause is WHERE <expr>.
type WhereClause struct {
	Pos  lexer.Position
	Expr *Expression `"WHERE" @@`
}

// UpdatePart dispatches CREATE / CREATE UNIQUE / SET / REMOVE / DELETE /
// FOREACH, in the order they may appear.
type UpdatePart struct {
	Pos          lexer.Position
	CreateUnique *CreateUniqueClause `  "CREATE" "UNIQUE" @@`
	Create       *CreateClause       `| "CREATE" @@`
	Set          *SetClause          `| @@`
	Remove       *RemoveClause       `| @@`
	Delete       *DeleteClause       `| @@`
	Foreach      *ForeachClause      `| @@`
}

// CreateClause is the pattern following CREATE.
type CreateClause struct {
	Pos     lexer.Position
	Pattern *Pattern `@@`
}

// CreateUniqueClause is the pattern following CREATE UNIQUE.
type CreateUniqueClause struct {
	Pos     lexer.Position
	Pattern *Pattern `@@`
}

// SetClause is SET item (, item)*.
type SetClause struct {
	Pos   lexer.Position
	Items []*SetItem `"SET" @@ ( Comma @@ )*`
}

// SetItem is one of property=expr, var={map}, or var:Label(:Label)*.
type SetItem struct {
	Pos      lexer.Position
	Property *PropertySet    `  @@`
	MapSet   *MapPropertySet `| @@`
	Label    *LabelSet       `| @@`
}

// PropertySet is var.prop = expr.
type PropertySet struct {
	Pos      lexer.Position
	Variable string      `@Ident`
	Property string      `Dot @Ident`
	Expr     *Expression `Eq @@`
}

// MapPropertySet is var = {map}.
type MapPropertySet struct {
	Pos      lexer.Position
	Variable string      `@Ident Eq`
	Map      *MapLiteral `@@`
}

// LabelSet is var:Label(:Label)*.
type LabelSet struct {
	Pos      lexer.Position
	Variable string   `@Ident`
	Labels   []string `( Colon @Ident )+`
}

// RemoveClause is REMOVE item (, item)*.
type RemoveClause struct {
	Pos   lexer.Position
	Items []*RemoveItem `"REMOVE" @@ ( Comma @@ )*`
}

// RemoveItem is either var:Label(:Label)* or var.prop.
type RemoveItem struct {
	Pos   lexer.Position
	Label *RemoveLabelForm `  @@`
	Prop  *RemovePropForm  `| @@`
}

// RemoveLabelForm is var:Label(:Label)*.
type RemoveLabelForm struct {
	Pos      lexer.Position
	Variable string   `@Ident`
	Labels   []string `( Colon @Ident )+`
}

// RemovePropForm is var.prop.
type RemovePropForm struct {
	Pos      lexer.Position
	Variable string `@Ident`
	Property string `Dot @Ident`
}

// DeleteClause is DETACH? DELETE expr (, expr)*.
type DeleteClause struct {
	Pos    lexer.Position
	Detach bool          `@"DETACH"?`
	Exprs  []*Expression `"DELETE" @@ ( Comma @@ )*`
}

// ForeachClause is FOREACH ( var IN expr (| | :) updates+ ).
type ForeachClause struct {
	Pos      lexer.Position
	Variable string        `"FOREACH" LParen @Ident "IN"`
	Source   *Expression   `@@`
	Sep      string        `( @Pipe | @Colon )`
	Body     []*UpdatePart `@@+ RParen`
}

// WithClause is WITH DISTINCT? items ORDER? SKIP? LIMIT? WHERE? <tail>.
type WithClause struct {
	Pos      lexer.Position
	Distinct bool             `"WITH" @"DISTINCT"?`
	Items    *ProjectionItems `@@`
	Order    *OrderBy         `@@?`
	Skip     *SkipClause      `@@?`
	Limit    *LimitClause     `@@?`
	Where    *WhereClause     `@@?`
	Tail     *TailQuery       `@@`
}

// ReturnClause is RETURN DISTINCT? items ORDER? SKIP? LIMIT?.
type ReturnClause struct {
	Pos      lexer.Position
	Distinct bool             `"RETURN" @"DISTINCT"?`
	Items    *ProjectionItems `@@`
	Order    *OrderBy         `@@?`
	Skip     *SkipClause      `@@?`
	Limit    *LimitClause     `@@?`
}

// ProjectionItems is * or a list of aliased expressions.
type ProjectionItems struct {
	Pos   lexer.Position
	Star  bool              `  @Star`
	Items []*ProjectionItem `| @@ ( Comma @@ )*`
}

// ProjectionItem is expr (AS name)?.
type ProjectionItem struct {
	Pos   lexer.Position
	Expr  *Expression `@@`
	Alias string      `( "AS" @Ident )?`
}

// OrderBy is ORDER BY item (, item)*.
type OrderBy struct {
	Pos   lexer.Position
	Items []*OrderItem `"ORDER" "BY" @@ ( Comma @@ )*`
}

// OrderItem is expr with an optional explicit direction.
type OrderItem struct {
	Pos  lexer.Position
	Expr *Expression `@@`
	Dir  string       `@( "ASC" | "ASCENDING" | "DESC" | "DESCENDING" )?`
}

// SkipClause is SKIP <expr>.
type SkipClause struct {
	Pos  lexer.Position
	Expr *Expression `"SKIP" @@`
}

// LimitClause is LIMIT <expr>.
type LimitClause struct {
	Pos  lexer.Position
	Expr *Expression `"LIMIT" @@`
}

// ----------------------------------------------------------------------------
// START clause
// ----------------------------------------------------------------------------

// StartClause is START item (, item)*.
type StartClause struct {
	Pos   lexer.Position
	Items []*StartItem `"START" @@ ( Comma @@ )*`
}

// StartItem is name = NODE(...) or name = RELATIONSHIP(...).
type StartItem struct {
	Pos  lexer.Position
	Name string          `@Ident Eq`
	Node *NodeStartItem  `( "NODE" @@`
	Rel  *RelStartItem   `| ( "RELATIONSHIP" | "REL" ) @@ )`
}

// NodeStartItem is (ids|*) or :index(...).
type NodeStartItem struct {
	Pos   lexer.Position
	ByID  *IDListOrParam `  LParen ( @@`
	All   bool           `  | @Star ) RParen`
	Index *IndexSpec     `| Colon @@`
}

// RelStartItem mirrors NodeStartItem for relationships.
type RelStartItem struct {
	Pos   lexer.Position
	ByID  *IDListOrParam `  LParen ( @@`
	All   bool           `  | @Star ) RParen`
	Index *IndexSpec     `| Colon @@`
}

// IDListOrParam is a comma-separated int list or a single parameter.
type IDListOrParam struct {
	Pos   lexer.Position
	IDs   []int64    `  @Int ( Comma @Int )*`
	Param *Parameter `| @@`
}

// IndexSpec is indexName(key = value) or indexName(query-expr).
type IndexSpec struct {
	Pos    lexer.Position
	Name   string        `@Ident LParen`
	Lookup *IndexLookup  `( @@`
	Query  *Expression   ` | @@ ) RParen`
}

// IndexLookup is key = value inside an index start item.
type IndexLookup struct {
	Pos   lexer.Position
	Key   *Expression `@@ Eq`
	Value *Expression `@@`
}

// ----------------------------------------------------------------------------
// Schema commands (standalone top-level statements)
// ----------------------------------------------------------------------------

// SchemaCommand is CREATE/DROP INDEX or CREATE CONSTRAINT.
type SchemaCommand struct {
	Pos              lexer.Position
	CreateIndex      *CreateIndexCmd      `  "CREATE" "INDEX" @@`
	DropIndex        *DropIndexCmd        `| "DROP" "INDEX" @@`
	CreateConstraint *CreateConstraintCmd `| "CREATE" "CONSTRAINT" @@`
}

// CreateIndexCmd is ON :Label(prop, ...). The property list is grammatically
// optional (ON :Label()) so an empty list is a semantic error (builder-side
// SemanticArityError), not a parse error.
type CreateIndexCmd struct {
	Pos   lexer.Position
	Label string   `"ON" Colon @Ident LParen`
	Props []string `( @Ident ( Comma @Ident )* )? RParen`
}

// DropIndexCmd is ON :Label(prop, ...). See CreateIndexCmd on the optional
// property list.
type DropIndexCmd struct {
	Pos   lexer.Position
	Label string   `"ON" Colon @Ident LParen`
	Props []string `( @Ident ( Comma @Ident )* )? RParen`
}

// CreateConstraintCmd is ON (v:Label) ASSERT v.prop IS UNIQUE.
type CreateConstraintCmd struct {
	Pos      lexer.Position
	Var      string `"ON" LParen @Ident Colon`
	Label    string `@Ident RParen "ASSERT"`
	PropVar  string `@Ident Dot`
	Property string `@Ident "IS" "UNIQUE"`
}

// ----------------------------------------------------------------------------
// Patterns
// ----------------------------------------------------------------------------

// Pattern is a comma-separated list of path patterns.
type Pattern struct {
	Pos   lexer.Position
	Paths []*PathPattern `@@ ( Comma @@ )*`
}

// PathPattern is an optionally-named path: a plain chain or a shortestPath.
type PathPattern struct {
	Pos      lexer.Position
	Name     string            `( @Ident Eq )?`
	Shortest *ShortestPathExpr `(  @@`
	Chain    *PatternChain     `  | @@ )`
}

// ShortestPathExpr is shortestPath(...) or allShortestPaths(...).
type ShortestPathExpr struct {
	Pos    lexer.Position
	Single bool          `(  @"SHORTESTPATH"`
	All    bool          `   | @"ALLSHORTESTPATHS" )`
	Inner  *PatternChain `LParen @@ RParen`
}

// PatternChain is a node pattern followed by zero or more rel-node links.
type PatternChain struct {
	Pos   lexer.Position
	Node  *NodePattern        `@@`
	Links []*PatternChainLink `@@*`
}

// PatternChainLink is a relationship pattern followed by a node pattern.
type PatternChainLink struct {
	Pos  lexer.Position
	Rel  *RelPattern  `@@`
	Node *NodePattern `@@`
}

// NodePattern is a parenthesized node or a bare identifier; both forms are
// accepted in every dialect.
type NodePattern struct {
	Pos   lexer.Position
	Paren *NodeParenPattern `  @@`
	Bare  string            `| @Ident`
}

// NodeParenPattern is (var? :Label* {props}?).
type NodeParenPattern struct {
	Pos        lexer.Position
	Variable   string      `LParen @Ident?`
	Labels     []string    `( Colon @Ident )*`
	Properties *Properties `@@? RParen`
}

// RelPattern is -[...]->, <-[...]-, or -[...]-.
type RelPattern struct {
	Pos    lexer.Position
	Left   bool        `@Less? Minus`
	Detail *RelDetail  `( LBracket @@ RBracket )?`
	Right  bool        `Minus @Greater?`
}

// RelDetail is the content of a relationship's brackets.
type RelDetail struct {
	Pos        lexer.Position
	Variable   string       `@Ident?`
	Optional   bool         `@Question?`
	Types      *RelTypeList `@@?`
	Range      *RangeSpec   `@@?`
	Properties *Properties  `@@?`
}

// RelTypeList is the (possibly chained) :TYPE(|[:]TYPE)* relationship-type
// list; each chained item records whether it used the bare `|` separator
// (v1_9) or `|:` (≥2.0) so the builder can gate dialect mismatches (P3).
type RelTypeList struct {
	Pos   lexer.Position
	First string         `Colon @Ident`
	Rest  []*RelTypeItem `( Pipe @@ )*`
}

// RelTypeItem is one chained type name, with Colon recording whether `|:`
// (rather than bare `|`) introduced it.
type RelTypeItem struct {
	Pos   lexer.Position
	Colon bool   `@Colon?`
	Name  string `@Ident`
}

// RangeSpec is *min..max, *n (exact), or * (unbounded).
type RangeSpec struct {
	Pos      lexer.Position
	Min      *int64 `Star @Int?`
	HasRange bool   `@Range?`
	Max      *int64 `@Int?`
}

// Properties is a map literal or a parameter reference.
type Properties struct {
	Pos   lexer.Position
	Map   *MapLiteral `  @@`
	Param *Parameter  `| @@`
}

// MapLiteral is {key: value, ...}.
type MapLiteral struct {
	Pos   lexer.Position
	Pairs []*MapPair `LBrace ( @@ ( Comma @@ )* )? RBrace`
}

// MapPair is key: value.
type MapPair struct {
	Pos   lexer.Position
	Key   string      `@Ident Colon`
	Value *Expression `@@`
}

// Parameter is {name}, {0}, or {`escaped name`}.
type Parameter struct {
	Pos     lexer.Position
	Ident   string `LBrace ( @Ident`
	Escaped string `         | @EscapedIdent`
	Index   *int64 `         | @Int ) RBrace`
}

// ----------------------------------------------------------------------------
// Expressions (lowest to highest precedence: OR, XOR, AND, NOT, comparison,
// +/-, * / %, ^, unary, postfix, atom)
// ----------------------------------------------------------------------------

// Expression is the OR level, the entry point for all expression parsing.
type Expression struct {
	Pos   lexer.Position
	Left  *XorExpr   `@@`
	Right []*XorExpr `( "OR" @@ )*`
}

// XorExpr is the XOR level.
type XorExpr struct {
	Pos   lexer.Position
	Left  *AndExpr   `@@`
	Right []*AndExpr `( "XOR" @@ )*`
}

// AndExpr is the AND level.
type AndExpr struct {
	Pos   lexer.Position
	Left  *NotExpr   `@@`
	Right []*NotExpr `( "AND" @@ )*`
}

// NotExpr is the NOT level.
type NotExpr struct {
	Pos  lexer.Position
	Not  bool            `@"NOT"?`
	Expr *ComparisonExpr `@@`
}

// ComparisonExpr handles =, <>, <, <=, >, >=, =~, IS [NOT] NULL, and IN.
type ComparisonExpr struct {
	Pos    lexer.Position
	Left   *AddSubExpr       `@@`
	Suffix *ComparisonSuffix `@@?`
}

// ComparisonSuffix is the (at most one) trailing comparison operator.
type ComparisonSuffix struct {
	Pos    lexer.Position
	Op     string      `(  @( Eq | NotEqual | Less | LessEqual | Greater | GreaterEqual | RegexMatch )`
	Right  *AddSubExpr `     @@`
	IsNull *IsNullTail `|  @@`
	In     *AddSubExpr `|  "IN" @@ )`
}

// IsNullTail is IS [NOT] NULL.
type IsNullTail struct {
	Pos  lexer.Position
	Not  bool `"IS" @"NOT"?`
	Null bool `@"NULL"`
}

// AddSubExpr handles + and -.
type AddSubExpr struct {
	Pos   lexer.Position
	Left  *MultDivExpr  `@@`
	Right []*AddSubTerm `@@*`
}

// AddSubTerm is a + or - operand.
type AddSubTerm struct {
	Pos  lexer.Position
	Op   string       `@( Plus | Minus )`
	Expr *MultDivExpr `@@`
}

// MultDivExpr handles *, /, %.
type MultDivExpr struct {
	Pos   lexer.Position
	Left  *PowerExpr     `@@`
	Right []*MultDivTerm `@@*`
}

// MultDivTerm is a *, /, or % operand.
type MultDivTerm struct {
	Pos  lexer.Position
	Op   string     `@( Star | Slash | Percent )`
	Expr *PowerExpr `@@`
}

// PowerExpr handles ^.
type PowerExpr struct {
	Pos   lexer.Position
	Left  *UnaryExpr   `@@`
	Right []*UnaryExpr `( Caret @@ )*`
}

// UnaryExpr handles unary + and -.
type UnaryExpr struct {
	Pos  lexer.Position
	Op   string       `@( Plus | Minus )?`
	Expr *PostfixExpr `@@`
}

// PostfixExpr handles property access, indexing, and label tests.
type PostfixExpr struct {
	Pos      lexer.Position
	Atom     *Atom            `@@`
	Suffixes []*PostfixSuffix `@@*`
}

// PostfixSuffix is a .prop[?|!], [index|slice], or :Label(:Label)* suffix.
type PostfixSuffix struct {
	Pos      lexer.Position
	Property *PropertySuffix `  @@`
	Index    *IndexSuffix    `| @@`
	Labels   []string        `| ( Colon @Ident )+`
}

// PropertySuffix is .name, optionally followed by ? or ! (pre-2.0 only;
// gated by the builder).
type PropertySuffix struct {
	Pos         lexer.Position
	Name        string `Dot @Ident`
	Nullable    bool   `@Question?`
	NullableGet bool   `@Bang?`
}

// IndexSuffix is [expr] or [start?..end?].
type IndexSuffix struct {
	Pos      lexer.Position
	Start    *Expression `LBracket @@?`
	HasRange bool        `@Range?`
	End      *Expression `@@? RBracket`
}

// ----------------------------------------------------------------------------
// Atoms
// ----------------------------------------------------------------------------

// Atom is the base expression: ordered so the more constrained forms (list
// comprehension, pattern predicate) are tried before the permissive ones
// (parenthesized expression, bare variable) that would otherwise shadow
// them, mirroring the teacher's disambiguation-by-ordering technique. A
// pattern predicate is only tried when a relationship follows its first
// node, so a lone identifier or parenthesized expression never becomes one.
type Atom struct {
	Pos              lexer.Position
	ListComp         *ListComprehension `  @@`
	Parameter        *Parameter         `| @@`
	CaseExpr         *CaseExpr          `| @@`
	CountStar        bool               `| @( "COUNT" LParen Star RParen )`
	Reduce           *ReduceExpr        `| @@`
	FilterPredicate  *FilterPredicate   `| @@`
	ShortestPathExpr *ShortestPathExpr  `| @@`
	PatternPredicate *PatternChain      `| (?= ( Ident | LParen ( ~RParen )* RParen ) Less? Minus ( LBracket ( ~RBracket )* RBracket )? Minus ) @@`
	Parenthesized    *Expression        `| LParen @@ RParen`
	FunctionCall     *FunctionCall      `| @@`
	Literal          *Literal           `| @@`
	Variable         string             `| @Ident`
}

// Literal is a constant value.
type Literal struct {
	Pos   lexer.Position
	Null  bool         `  @"NULL"`
	True  bool         `| @"TRUE"`
	False bool         `| @"FALSE"`
	Float *float64     `| @Float`
	Int   *int64       `| @Int`
	Str   *string      `| @String`
	List  *ListLiteral `| @@`
	Map   *MapLiteral  `| @@`
}

// ListLiteral is [expr, expr, ...].
type ListLiteral struct {
	Pos   lexer.Position
	Items []*Expression `LBracket ( @@ ( Comma @@ )* )? RBracket`
}

// ListComprehension is [x IN src (WHERE pred)? (| mapping)?].
type ListComprehension struct {
	Pos      lexer.Position
	Variable string      `LBracket @Ident "IN"`
	Source   *Expression `@@`
	Where    *Expression `( "WHERE" @@ )?`
	Mapping  *Expression `( Pipe @@ )? RBracket`
}

// FilterPredicate is ALL/ANY/NONE/SINGLE/FILTER(x IN src (WHERE|:) pred).
type FilterPredicate struct {
	Pos       lexer.Position
	Kind      string      `@( "ALL" | "ANY" | "NONE" | "SINGLE" | "FILTER" ) LParen`
	Variable  string      `@Ident "IN"`
	Source    *Expression `@@`
	WherePred *Expression `( "WHERE" @@`
	ColonPred *Expression `  | Colon @@ )? RParen`
}

// ReduceExpr is reduce(acc = init, x IN src | expr).
type ReduceExpr struct {
	Pos      lexer.Position
	Acc      string      `"REDUCE" LParen @Ident Eq`
	Init     *Expression `@@ Comma`
	Variable string      `@Ident "IN"`
	Source   *Expression `@@ Pipe`
	Expr     *Expression `@@ RParen`
}

// CaseExpr is CASE expr? (WHEN expr THEN expr)+ (ELSE expr)? END.
type CaseExpr struct {
	Pos   lexer.Position
	Input *Expression `"CASE" ( (?! "WHEN" ) @@ )?`
	Whens []*CaseWhen `@@+`
	Else  *Expression `( "ELSE" @@ )?`
	End   bool        `@"END"`
}

// CaseWhen is WHEN cond THEN result.
type CaseWhen struct {
	Pos  lexer.Position
	When *Expression `"WHEN" @@`
	Then *Expression `"THEN" @@`
}

// FunctionCall is name(DISTINCT? args...). The lookahead ensures we only
// commit once an LParen actually follows, so a bare identifier used for
// property access isn't mistaken for one.
type FunctionCall struct {
	Pos      lexer.Position
	Name     string        `@Ident (?= LParen)`
	Distinct bool          `LParen @"DISTINCT"?`
	Args     []*Expression `( @@ ( Comma @@ )* )? RParen`
}
