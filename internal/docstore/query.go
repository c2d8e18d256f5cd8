package docstore

import (
	"fmt"
	"strings"
)

// likeEscaper neutralizes LIKE wildcards in user-supplied search terms.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Query describes a collection scan. The zero value is an unrestricted scan
// ordered by creation time descending; constructors narrow it. SQL is
// assembled only inside the collection, so every caller-supplied value
// travels as a bind parameter.
type Query struct {
	partition    string
	hasPartition bool
	term         string
	fields       []string
	limit        int
}

// Search builds a case-insensitive substring query across the named document
// fields. A blank term yields an unrestricted recency-ordered scan. No
// tokenization, ranking, or fuzzy matching: pure containment.
func Search(term string, fields ...string) Query {
	return Query{
		term:   strings.ToLower(strings.TrimSpace(term)),
		fields: fields,
	}
}

// ByPartition builds a query restricted to one partition.
func ByPartition(partitionKey string) Query {
	return Query{partition: partitionKey, hasPartition: true}
}

// Partition returns the partition restriction, if any.
func (q Query) Partition() (string, bool) {
	return q.partition, q.hasPartition
}

// WithLimit caps the number of returned documents. Zero means no cap.
func (q Query) WithLimit(n int) Query {
	q.limit = n
	return q
}

// build renders the query against a sanitized table name, returning the SQL
// and its bind arguments.
func (q Query) build(table string) (string, []any) {
	var (
		sb     strings.Builder
		args   []any
		wheres []string
	)

	sb.WriteString("SELECT doc FROM ")
	sb.WriteString(table)

	if q.hasPartition {
		args = append(args, q.partition)
		wheres = append(wheres, fmt.Sprintf("partition_key = $%d", len(args)))
	}

	if q.term != "" && len(q.fields) > 0 {
		args = append(args, "%"+likeEscaper.Replace(q.term)+"%")
		pattern := len(args)

		ors := make([]string, 0, len(q.fields))
		for _, f := range q.fields {
			args = append(args, f)
			ors = append(ors, fmt.Sprintf(`lower(doc->>$%d) LIKE $%d ESCAPE '\'`, len(args), pattern))
		}
		wheres = append(wheres, "("+strings.Join(ors, " OR ")+")")
	}

	if len(wheres) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(wheres, " AND "))
	}

	sb.WriteString(" ORDER BY created_at DESC")

	if q.limit > 0 {
		args = append(args, q.limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	return sb.String(), args
}
