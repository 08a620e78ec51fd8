package criteria

import (
	"strconv"

	"github.com/syssam/criteria/schema"
)

// fromAlias is the fixed alias of the FROM root. Joined roots probe the
// j, j1, j2, ... sequence instead.
const (
	fromAlias     = "m"
	joinAliasBase = "j"
)

// Builder is the stateful per-query context. It owns exactly one FROM
// root and zero or more JOIN roots, and every fragment fed into a Query
// is produced by one of its factory methods.
//
// A Builder is not safe for concurrent use; create one instance per
// logical query.
type Builder struct {
	from    *Root
	joins   []*Root          // declaration order, preserved in rendering
	aliases map[string]*Root // joined roots keyed by alias
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// From declares the primary FROM table for the query and assigns it the
// alias "m". Only one FROM root is allowed per builder.
func (b *Builder) From(e *schema.Entity) (*Root, error) {
	if b.from != nil {
		return nil, ErrFromDefined
	}
	b.from = &Root{entity: e, alias: fromAlias}
	return b.from, nil
}

// Join declares a joined table. The ON clause compares source against the
// column resolved from targetField on the new root. The alias is the
// first unused one in the sequence j, j1, j2, ..., so joining the same
// table repeatedly never collides.
//
// Join fails if From has not been called, or if targetField cannot be
// resolved on the joined entity.
func (b *Builder) Join(e *schema.Entity, source Column, targetField string, jt JoinType) (*Root, error) {
	if b.from == nil {
		return nil, ErrFromMissing
	}
	if b.aliases == nil {
		b.aliases = make(map[string]*Root)
	}
	root := &Root{entity: e, alias: uniqueAlias(b.aliases, joinAliasBase)}
	target, err := root.C(targetField)
	if err != nil {
		return nil, err
	}
	root.join(jt, source, target)
	b.aliases[root.alias] = root
	b.joins = append(b.joins, root)
	return root, nil
}

// Query returns a new Query assembler bound to the builder.
func (b *Builder) Query() *Query {
	return &Query{builder: b}
}

// uniqueAlias returns base if unused, otherwise the first free alias from
// base1, base2, ... by linear probing. It does not modify existing.
func uniqueAlias(existing map[string]*Root, base string) string {
	if _, ok := existing[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		alias := base + strconv.Itoa(i)
		if _, ok := existing[alias]; !ok {
			return alias
		}
	}
}
