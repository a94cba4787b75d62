package question

import (
	"database/sql"

	"tracker_api/internal/domain"
)

func nullableString(value *string) sql.NullString {
	// 将可选字符串转换为 SQL 可空类型
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullableBool(value *bool) sql.NullBool {
	// 将可选布尔转换为 SQL 可空类型
	if value == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *value, Valid: true}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (domain.Question, error) {
	var (
		q       domain.Question
		youtube sql.NullString
	)
	if err := row.Scan(&q.ID, &q.Title, &q.IsSolved, &q.Link, &youtube, &q.TopicID, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return domain.Question{}, err
	}
	if youtube.Valid {
		q.Youtube = &youtube.String
	}
	return q, nil
}
