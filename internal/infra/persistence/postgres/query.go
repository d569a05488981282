package postgres

import (
	"context"

	"gorm.io/gorm"
)

// Statement is one parameterized SQL statement. Values bind to the '?'
// placeholders in order; the dialector renders them as $n.
type Statement struct {
	Text   string
	Values []any
}

// query runs stmt and scans the returned rows into dest. The row count is the
// number of rows the statement returned, so a conditional UPDATE ... RETURNING
// that matched nothing reports zero.
func query(ctx context.Context, db *gorm.DB, stmt Statement, dest any) (int64, error) {
	result := db.WithContext(ctx).Raw(stmt.Text, stmt.Values...).Scan(dest)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
