package question

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"tracker_api/internal/database"
	"tracker_api/internal/domain"
)

const table = "questions"

var columns = []string{"id", "title", "is_solved", "link", "youtube", "topic_id", "created_at", "updated_at"}

var returning = "RETURNING id, title, is_solved, link, youtube, topic_id, created_at, updated_at"

type Store struct {
	db database.Querier
}

func NewStore(db database.Querier) *Store {
	// 数据访问层封装，db 可以是连接池、单个连接或事务
	return &Store{db: db}
}

// Create 不预先检查 topic 是否存在，外键约束失败时返回 domain.ErrConstraint
func (s *Store) Create(ctx context.Context, topicID int64, input CreateInput) (domain.Question, error) {
	query, args, err := database.Builder.
		Insert(table).
		Columns("title", "is_solved", "link", "youtube", "topic_id").
		Values(input.Title, input.IsSolved, input.Link, nullableString(input.Youtube), topicID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Question{}, fmt.Errorf("build insert question: %w", err)
	}

	q, err := scanQuestion(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Question{}, fmt.Errorf("create question in topic %d: %w", topicID, database.Classify(err))
	}
	return q, nil
}

func (s *Store) Update(ctx context.Context, id int64, input UpdateInput) (domain.Question, error) {
	// 更新题目（部分字段）
	builder := database.Builder.
		Update(table).
		Set("title", sq.Expr("COALESCE(?, title)", nullableString(input.Title))).
		Set("is_solved", sq.Expr("COALESCE(?, is_solved)", nullableBool(input.IsSolved))).
		Set("link", sq.Expr("COALESCE(?, link)", nullableString(input.Link)))
	if input.Youtube.Set {
		// 显式传入时直接覆盖，null 会清空
		builder = builder.Set("youtube", nullableString(input.Youtube.Value))
	}
	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Question{}, fmt.Errorf("build update question: %w", err)
	}

	q, err := scanQuestion(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Question{}, database.MapError(err, "question", id)
	}
	return q, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	query, args, err := database.Builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete question: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return database.MapError(err, "question", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return database.MapError(err, "question", id)
	}
	if affected == 0 {
		return database.MapError(sql.ErrNoRows, "question", id)
	}
	return nil
}

// ListByTopic 返回 topic 下的题目，topic 不存在时返回空列表
func (s *Store) ListByTopic(ctx context.Context, topicID int64) ([]domain.Question, error) {
	return s.list(ctx, database.Builder.Select(columns...).From(table).Where(sq.Eq{"topic_id": topicID}).OrderBy("id"))
}

func (s *Store) List(ctx context.Context) ([]domain.Question, error) {
	return s.list(ctx, database.Builder.Select(columns...).From(table).OrderBy("id"))
}

// ListSolved 返回最多 limit 条已解决的题目
func (s *Store) ListSolved(ctx context.Context, limit uint64) ([]domain.Question, error) {
	return s.list(ctx, database.Builder.Select(columns...).From(table).Where(sq.Eq{"is_solved": true}).OrderBy("id").Limit(limit))
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.count(ctx, database.Builder.Select("COUNT(*)").From(table))
}

func (s *Store) CountSolved(ctx context.Context) (int64, error) {
	return s.count(ctx, database.Builder.Select("COUNT(*)").From(table).Where(sq.Eq{"is_solved": true}))
}

func (s *Store) list(ctx context.Context, builder sq.SelectBuilder) ([]domain.Question, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select questions: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

func (s *Store) count(ctx context.Context, builder sq.SelectBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count questions: %w", err)
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}
