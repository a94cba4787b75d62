package dashboard

import (
	"context"
	"database/sql"
	"fmt"

	"tracker_api/internal/database"
	"tracker_api/internal/domain"
	"tracker_api/internal/question"
	"tracker_api/internal/topic"
)

// source 是聚合所需的读操作，每个方法都是一次独立的查询
type source interface {
	ListSolved(ctx context.Context, limit uint64) ([]domain.Question, error)
	ListTopicsWithQuestions(ctx context.Context) ([]domain.TopicWithQuestions, error)
	CountSolved(ctx context.Context) (int64, error)
	CountTopics(ctx context.Context) (int64, error)
	CountQuestions(ctx context.Context) (int64, error)
}

type Store struct {
	db       *sql.DB
	snapshot bool
}

// NewStore 创建看板聚合器；snapshot 为 true 时所有读取共享一个 REPEATABLE READ 只读事务
func NewStore(db *sql.DB, snapshot bool) *Store {
	return &Store{db: db, snapshot: snapshot}
}

func (s *Store) Metrics(ctx context.Context) (Metrics, error) {
	// 每次聚合独占一个连接，任何返回路径都归还
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	var q database.Querier = conn
	if s.snapshot {
		tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
		if err != nil {
			return Metrics{}, fmt.Errorf("begin snapshot: %w", err)
		}
		defer tx.Rollback()
		q = tx
	}

	return aggregate(ctx, newStoreSource(q))
}

func aggregate(ctx context.Context, src source) (Metrics, error) {
	solved, err := src.ListSolved(ctx, solvedPreviewLimit)
	if err != nil {
		return Metrics{}, fmt.Errorf("list solved questions: %w", err)
	}

	topics, err := src.ListTopicsWithQuestions(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("list topics with questions: %w", err)
	}

	solvedCount, err := src.CountSolved(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("count solved questions: %w", err)
	}

	topicsCount, err := src.CountTopics(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("count topics: %w", err)
	}

	questionsCount, err := src.CountQuestions(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("count questions: %w", err)
	}

	return buildMetrics(solved, topics, solvedCount, topicsCount, questionsCount), nil
}

func buildMetrics(solved []domain.Question, topics []domain.TopicWithQuestions, solvedCount, topicsCount, questionsCount int64) Metrics {
	preview := make([]domain.Question, 0, solvedPreviewLimit)
	for _, q := range solved {
		if len(preview) == solvedPreviewLimit {
			break
		}
		if q.IsSolved {
			preview = append(preview, q)
		}
	}

	return Metrics{
		SolvedQuestionsCount: solvedCount,
		TopicsCount:          topicsCount,
		SolvedQuestions:      preview,
		ProgressData: []ProgressPoint{
			{Category: categorySolved, Value: solvedCount},
			{Category: categoryUnsolved, Value: questionsCount - solvedCount},
		},
		CompletedTopicsCount: domain.CountCompleted(topics),
		QuestionsCount:       questionsCount,
	}
}

// storeSource 把 topic 与 question 的 Store 绑定到同一个 Querier 上
type storeSource struct {
	questions *question.Store
	topics    *topic.Store
}

func newStoreSource(q database.Querier) storeSource {
	questions := question.NewStore(q)
	return storeSource{
		questions: questions,
		topics:    topic.NewStore(q, questions),
	}
}

func (s storeSource) ListSolved(ctx context.Context, limit uint64) ([]domain.Question, error) {
	return s.questions.ListSolved(ctx, limit)
}

func (s storeSource) ListTopicsWithQuestions(ctx context.Context) ([]domain.TopicWithQuestions, error) {
	return s.topics.ListWithQuestions(ctx)
}

func (s storeSource) CountSolved(ctx context.Context) (int64, error) {
	return s.questions.CountSolved(ctx)
}

func (s storeSource) CountTopics(ctx context.Context) (int64, error) {
	return s.topics.Count(ctx)
}

func (s storeSource) CountQuestions(ctx context.Context) (int64, error) {
	return s.questions.Count(ctx)
}
