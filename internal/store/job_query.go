// SPDX-License-Identifier: Apache-2.0

package store

import (
	"net/url"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Reserved query-string keys consumed by dedicated pipeline stages.
// Every other key is interpreted by the Filter stage.
var reservedParams = map[string]struct{}{
	"sort":   {},
	"fields": {},
	"q":      {},
	"limit":  {},
	"page":   {},
}

// jobColumns maps the API's query-parameter field names to the columns they
// address. Only whitelisted fields participate in filtering, sorting, and
// field selection; everything else is silently ignored.
var jobColumns = map[string]string{
	"title":        "title",
	"slug":         "slug",
	"description":  "description",
	"email":        "email",
	"address":      "address",
	"company":      "company",
	"jobType":      "job_type",
	"minEducation": "min_education",
	"positions":    "positions",
	"experience":   "experience",
	"salary":       "salary",
	"postingDate":  "posting_date",
	"lastDate":     "last_date",
}

// jobSelectColumns is the full column list returned by default reads,
// in scan order. The revision column is deliberately absent: the internal
// version marker is excluded unless requested explicitly.
var jobSelectColumns = []string{
	"id", "title", "slug", "description", "email", "address",
	"location_type", "longitude", "latitude", "formatted_address",
	"street", "city", "state", "zipcode", "country",
	"company", "industry", "job_type", "min_education",
	"positions", "experience", "salary",
	"posting_date", "last_date", "user_id",
}

// selectableColumns maps the API field names usable in the `fields`
// parameter to result columns. The record identifier is always included.
var selectableColumns = map[string]string{
	"title":        "title",
	"slug":         "slug",
	"description":  "description",
	"email":        "email",
	"address":      "address",
	"company":      "company",
	"industry":     "industry",
	"jobType":      "job_type",
	"minEducation": "min_education",
	"positions":    "positions",
	"experience":   "experience",
	"salary":       "salary",
	"postingDate":  "posting_date",
	"lastDate":     "last_date",
	"user":         "user_id",
	"revision":     "revision",
}

const (
	defaultPage  = 1
	defaultLimit = 10

	// maxPage and maxLimit bound caller-supplied pagination so the offset
	// arithmetic stays well inside the int range.
	maxPage  = 1_000_000
	maxLimit = 100
)

// jobSearchPredicate matches the generated search_vector column covering
// title, description, and company. Must stay in sync with the schema.
const jobSearchPredicate = "search_vector @@ phraseto_tsquery('english', ?)"

// JobQuery composes a job listing query from raw request query parameters in
// five independent stages: Filter, Sort, Fields, Search, Paginate. Stages
// accumulate state and return the receiver for fluent chaining; nothing
// touches the database until Build's output is executed. Stage order
// matters: filtering narrows the candidate set before sort, field selection
// and pagination apply, and text search is layered onto the filter as an
// additional AND predicate rather than replacing it.
type JobQuery struct {
	params url.Values

	columns []string
	where   []sq.Sqlizer
	orderBy []string
	limit   uint64
	offset  uint64
}

// NewJobQuery wraps the raw query parameters of a listing request.
// The zero pipeline (no stages invoked) selects the default column set
// with no predicates, no ordering, and no bounds.
func NewJobQuery(params url.Values) *JobQuery {
	return &JobQuery{
		params:  params,
		columns: jobSelectColumns,
	}
}

// Filter interprets every non-reserved query parameter as a typed predicate.
//
// A bare key (`salary=50000`) becomes an equality predicate. A key of the
// form `field[op]` with op one of gt, gte, lt, lte, in becomes the matching
// comparison or set predicate (`salary[gte]=50000`, `jobType[in]=Permanent,
// Internship`). Unknown fields, unknown operators, and malformed nesting
// produce no predicate at all.
func (q *JobQuery) Filter() *JobQuery {
	for key, values := range q.params {
		if _, reserved := reservedParams[key]; reserved {
			continue
		}
		if len(values) == 0 {
			continue
		}

		field, op, ok := splitFilterKey(key)
		if !ok {
			continue
		}

		// industry is a set-valued column: equality means containment
		if field == "industry" && op == "" {
			q.where = append(q.where, sq.Expr("industry @> ?", jsonArray(values[0])))
			continue
		}

		column, known := jobColumns[field]
		if !known {
			continue
		}

		switch op {
		case "":
			if len(values) > 1 {
				q.where = append(q.where, sq.Eq{column: values})
			} else {
				q.where = append(q.where, sq.Eq{column: values[0]})
			}
		case "gt":
			q.where = append(q.where, sq.Gt{column: values[0]})
		case "gte":
			q.where = append(q.where, sq.GtOrEq{column: values[0]})
		case "lt":
			q.where = append(q.where, sq.Lt{column: values[0]})
		case "lte":
			q.where = append(q.where, sq.LtOrEq{column: values[0]})
		case "in":
			q.where = append(q.where, sq.Eq{column: strings.Split(values[0], ",")})
		}
	}

	return q
}

// Sort applies the `sort` parameter as a multi-key sort: a comma-separated
// list of field specifiers applied in listed order, with a leading `-`
// denoting descending. Without the parameter, jobs sort by descending
// posting date.
func (q *JobQuery) Sort() *JobQuery {
	sortParam := q.params.Get("sort")
	if sortParam == "" {
		q.orderBy = append(q.orderBy, "posting_date DESC")
		return q
	}

	for _, spec := range strings.Split(sortParam, ",") {
		spec = strings.TrimSpace(spec)
		direction := "ASC"
		if strings.HasPrefix(spec, "-") {
			direction = "DESC"
			spec = spec[1:]
		}

		column, known := jobColumns[spec]
		if !known {
			continue
		}
		q.orderBy = append(q.orderBy, column+" "+direction)
	}

	if len(q.orderBy) == 0 {
		q.orderBy = append(q.orderBy, "posting_date DESC")
	}

	return q
}

// Fields applies the `fields` parameter as an explicit inclusion list.
// The record identifier is always part of the result. Without the
// parameter, all fields except the internal revision marker are included.
func (q *JobQuery) Fields() *JobQuery {
	fieldsParam := q.params.Get("fields")
	if fieldsParam == "" {
		return q
	}

	columns := []string{"id"}
	for _, field := range strings.Split(fieldsParam, ",") {
		column, known := selectableColumns[strings.TrimSpace(field)]
		if !known || column == "id" {
			continue
		}
		columns = append(columns, column)
	}

	if len(columns) > 1 {
		q.columns = columns
	}

	return q
}

// Search layers the `q` parameter as an exact-phrase full-text predicate on
// top of whatever Filter produced (logical AND). Hyphens are normalised to
// spaces so slug-ish input matches titles.
func (q *JobQuery) Search() *JobQuery {
	searchParam := q.params.Get("q")
	if searchParam == "" {
		return q
	}

	phrase := strings.ReplaceAll(searchParam, "-", " ")
	q.where = append(q.where, sq.Expr(jobSearchPredicate, phrase))

	return q
}

// Paginate parses `page` and `limit` as base-10 integers, falling back to
// page 1 and limit 10 on missing, non-numeric, or non-positive values,
// clamping oversized ones to maxPage and maxLimit, and bounds the query
// with OFFSET (page-1)*limit LIMIT limit.
func (q *JobQuery) Paginate() *JobQuery {
	page := clampedIntOrDefault(q.params.Get("page"), defaultPage, maxPage)
	limit := clampedIntOrDefault(q.params.Get("limit"), defaultLimit, maxLimit)

	q.offset = uint64((page - 1) * limit)
	q.limit = uint64(limit)

	return q
}

// Build materializes the accumulated stages into a single SQL statement and
// its arguments. It performs no I/O; the caller executes the result exactly
// once.
func (q *JobQuery) Build() (string, []any, error) {
	builder := sq.Select(q.columns...).
		From("jobs").
		PlaceholderFormat(sq.Dollar)

	for _, cond := range q.where {
		builder = builder.Where(cond)
	}
	if len(q.orderBy) > 0 {
		builder = builder.OrderBy(q.orderBy...)
	}
	if q.limit > 0 {
		builder = builder.Offset(q.offset).Limit(q.limit)
	}

	return builder.ToSql()
}

// splitFilterKey separates a raw parameter key into its field name and
// optional bracketed operator. Returns ok=false for malformed nesting
// (multiple brackets, dangling brackets, empty field).
func splitFilterKey(key string) (field, op string, ok bool) {
	open := strings.Index(key, "[")
	if open == -1 {
		if strings.Contains(key, "]") {
			return "", "", false
		}
		return key, "", key != ""
	}

	if !strings.HasSuffix(key, "]") {
		return "", "", false
	}

	field = key[:open]
	op = key[open+1 : len(key)-1]
	if field == "" || op == "" || strings.ContainsAny(field+op, "[]") {
		return "", "", false
	}

	return field, op, true
}

func clampedIntOrDefault(raw string, def, ceiling int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	if n > ceiling {
		return ceiling
	}
	return n
}

// jsonArray renders a single value as a one-element JSON array literal for
// jsonb containment checks.
func jsonArray(value string) string {
	return `["` + strings.ReplaceAll(value, `"`, `\"`) + `"]`
}
