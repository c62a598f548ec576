package querybuilder

import (
	"fmt"
	"strings"
)

// QueryBuilder assembles schema-qualified SQL with ?-style placeholders;
// callers rebind for their driver. It covers the surface the repositories
// use: inserts (single and multi-row, with ON CONFLICT DO NOTHING) and
// simple filtered selects.
type QueryBuilder interface {
	Select(cols ...string) QueryBuilder
	From(table string) QueryBuilder
	Into(table string) QueryBuilder
	Where(clause string, args ...interface{}) QueryBuilder
	And(clause string, args ...interface{}) QueryBuilder
	OrderBy(col string, asc bool) QueryBuilder

	Insert(cols ...string) QueryBuilder
	Values(values ...interface{}) QueryBuilder
	OnConflict(cols ...string) QueryBuilder
	DoNothing() QueryBuilder

	Build() (string, []interface{})
}

type condition struct {
	clause string
	args   []interface{}
}

type queryBuilder struct {
	schema     string
	table      string
	cols       []string
	conditions []condition
	values     [][]interface{}
	orderBy    []string
	onConflict []string
	doNothing  bool
}

func NewQueryBuilder(schema string) QueryBuilder {
	return &queryBuilder{
		schema: schema,
	}
}

func (q *queryBuilder) Select(cols ...string) QueryBuilder {
	q.cols = append(q.cols, cols...)
	return q
}

func (q *queryBuilder) From(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Into(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Where(clause string, args ...interface{}) QueryBuilder {
	q.conditions = append(q.conditions, condition{clause: clause, args: args})
	return q
}

func (q *queryBuilder) And(clause string, args ...interface{}) QueryBuilder {
	return q.Where(clause, args...)
}

func (q *queryBuilder) OrderBy(col string, asc bool) QueryBuilder {
	orderVector := "ASC"
	if !asc {
		orderVector = "DESC"
	}
	q.orderBy = append(q.orderBy, fmt.Sprintf("%s %s", col, orderVector))
	return q
}

func (q *queryBuilder) Insert(cols ...string) QueryBuilder {
	q.cols = cols
	return q
}

func (q *queryBuilder) Values(values ...interface{}) QueryBuilder {
	q.values = append(q.values, values)
	return q
}

func (q *queryBuilder) OnConflict(cols ...string) QueryBuilder {
	q.onConflict = cols
	return q
}

func (q *queryBuilder) DoNothing() QueryBuilder {
	q.doNothing = true
	return q
}

func (q *queryBuilder) Build() (string, []interface{}) {
	if len(q.values) > 0 {
		return q.buildInsert()
	}
	return q.buildSelect()
}

func (q *queryBuilder) buildSelect() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s.%s", strings.Join(q.cols, ", "), q.schema, q.table)

	var args []interface{}
	if len(q.conditions) > 0 {
		clauses := make([]string, 0, len(q.conditions))
		for _, cond := range q.conditions {
			clauses = append(clauses, cond.clause)
			args = append(args, cond.args...)
		}
		query += fmt.Sprintf(" WHERE %s", strings.Join(clauses, " AND "))
	}

	if len(q.orderBy) > 0 {
		query += fmt.Sprintf(" ORDER BY %s", strings.Join(q.orderBy, ", "))
	}

	return query, args
}

func (q *queryBuilder) buildInsert() (string, []interface{}) {
	numOfParam := len(q.cols)
	if numOfParam == 0 {
		return "", nil
	}

	valueTuples := make([]string, 0, len(q.values))
	args := make([]interface{}, 0, len(q.values)*numOfParam)
	placeholders := make([]string, numOfParam)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	tuple := fmt.Sprintf("(%s)", strings.Join(placeholders, ", "))

	for _, row := range q.values {
		if len(row) != numOfParam {
			return "", nil
		}
		args = append(args, row...)
		valueTuples = append(valueTuples, tuple)
	}

	query := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
		q.schema, q.table, strings.Join(q.cols, ", "), strings.Join(valueTuples, ", "))

	if len(q.onConflict) > 0 && q.doNothing {
		query += fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", strings.Join(q.onConflict, ", "))
	}

	return query, args
}
