package topic

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"tracker_api/internal/database"
	"tracker_api/internal/domain"
)

const table = "topics"

var columns = []string{"id", "name", "description", "created_at", "updated_at"}

type questionLister interface {
	ListByTopic(ctx context.Context, topicID int64) ([]domain.Question, error)
	List(ctx context.Context) ([]domain.Question, error)
}

type Store struct {
	db        database.Querier
	questions questionLister
}

func NewStore(db database.Querier, questions questionLister) *Store {
	return &Store{db: db, questions: questions}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTopic(row scanner) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (s *Store) Create(ctx context.Context, input CreateInput) (domain.Topic, error) {
	query, args, err := database.Builder.
		Insert(table).
		Columns("name", "description").
		Values(input.Name, input.Description).
		Suffix("RETURNING id, name, description, created_at, updated_at").
		ToSql()
	if err != nil {
		return domain.Topic{}, fmt.Errorf("build insert topic: %w", err)
	}

	t, err := scanTopic(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Topic{}, database.MapError(err, "topic", 0)
	}
	return t, nil
}

func (s *Store) List(ctx context.Context) ([]domain.Topic, error) {
	// 查询全部 topic，按 id 排序
	query, args, err := database.Builder.Select(columns...).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select topics: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	topics := []domain.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}
	return topics, nil
}

// Get 返回 topic 及其题目，不存在时返回 domain.ErrNotFound
func (s *Store) Get(ctx context.Context, id int64) (domain.TopicWithQuestions, error) {
	query, args, err := database.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.TopicWithQuestions{}, fmt.Errorf("build select topic: %w", err)
	}

	t, err := scanTopic(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.TopicWithQuestions{}, database.MapError(err, "topic", id)
	}

	questions, err := s.questions.ListByTopic(ctx, id)
	if err != nil {
		return domain.TopicWithQuestions{}, fmt.Errorf("topic %d: %w", id, err)
	}
	return domain.TopicWithQuestions{Topic: t, Questions: questions}, nil
}

// ListQuestions 不检查 topic 是否存在
func (s *Store) ListQuestions(ctx context.Context, topicID int64) ([]domain.Question, error) {
	return s.questions.ListByTopic(ctx, topicID)
}

// ListWithQuestions 读取全部 topic 及题目，在内存中按 topic_id 分组
func (s *Store) ListWithQuestions(ctx context.Context) ([]domain.TopicWithQuestions, error) {
	topics, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	byTopic := make(map[int64][]domain.Question, len(topics))
	for _, q := range questions {
		byTopic[q.TopicID] = append(byTopic[q.TopicID], q)
	}

	result := make([]domain.TopicWithQuestions, 0, len(topics))
	for _, t := range topics {
		qs := byTopic[t.ID]
		if qs == nil {
			qs = []domain.Question{}
		}
		result = append(result, domain.TopicWithQuestions{Topic: t, Questions: qs})
	}
	return result, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	query, args, err := database.Builder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count topics: %w", err)
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}
	return n, nil
}
