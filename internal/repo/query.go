package repo

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The legacy schema uses camelCase column names, so every column reference
// goes through clause.Column and is quoted by the active dialect.

func col(name string) clause.Column {
	return clause.Column{Name: name}
}

func eq(column string, value any) clause.Expression {
	return clause.Eq{Column: col(column), Value: value}
}

func isNull(column string) clause.Expression {
	return clause.Expr{SQL: "? IS NULL", Vars: []any{col(column)}}
}

func in(column string, values ...any) clause.Expression {
	return clause.IN{Column: col(column), Values: values}
}

func textCast(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "CHAR"
	}
	return "TEXT"
}

// truthy matches flag columns holding 1, true or yes in any storage type.
func truthy(db *gorm.DB, column string) clause.Expression {
	return clause.Expr{
		SQL:  "LOWER(CAST(? AS " + textCast(db) + ")) IN ('1','true','t','yes')",
		Vars: []any{col(column)},
	}
}

// falsy matches flag columns holding 0, false or no.
func falsy(db *gorm.DB, column string) clause.Expression {
	return clause.Expr{
		SQL:  "LOWER(CAST(? AS " + textCast(db) + ")) IN ('0','false','f','no')",
		Vars: []any{col(column)},
	}
}

// truthyOrNull matches published-by-default flags.
func truthyOrNull(db *gorm.DB, column string) clause.Expression {
	return clause.Or(isNull(column), truthy(db, column))
}

// likeAny matches term as a substring of any of the columns. PostgreSQL
// compares case-insensitively to match the MySQL collation.
func likeAny(db *gorm.DB, term string, columns ...string) clause.Expression {
	pattern := "%" + escapeLike(term) + "%"
	exprs := make([]clause.Expression, len(columns))
	for i, c := range columns {
		exprs[i] = like(db, c, pattern)
	}
	return clause.Or(exprs...)
}

func like(db *gorm.DB, column, pattern string) clause.Expression {
	if db.Dialector.Name() == "mysql" {
		return clause.Like{Column: col(column), Value: pattern}
	}
	return clause.Expr{SQL: "CAST(? AS TEXT) ILIKE ?", Vars: []any{col(column), pattern}}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// jsonArrayContains matches JSON array columns holding value as a string
// element.
func jsonArrayContains(db *gorm.DB, column, value string) clause.Expression {
	if db.Dialector.Name() == "mysql" {
		return clause.Expr{SQL: "JSON_CONTAINS(?, JSON_QUOTE(?))", Vars: []any{col(column), value}}
	}
	return like(db, column, `%"`+escapeLike(value)+`"%`)
}

func orderBy(column string, desc bool) clause.OrderByColumn {
	return clause.OrderByColumn{Column: col(column), Desc: desc}
}
