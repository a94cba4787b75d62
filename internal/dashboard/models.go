package dashboard

import "tracker_api/internal/domain"

const (
	categorySolved   = "Solved"
	categoryUnsolved = "Unsolved"

	solvedPreviewLimit = 10
)

type ProgressPoint struct {
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

// Metrics 是看板接口的响应体，progressData 可直接用于饼图
type Metrics struct {
	SolvedQuestionsCount int64             `json:"solvedQuestionsCount"`
	TopicsCount          int64             `json:"topicsCount"`
	SolvedQuestions      []domain.Question `json:"solvedQuestions"`
	ProgressData         []ProgressPoint   `json:"progressData"`
	CompletedTopicsCount int64             `json:"completedTopicsCount"`
	QuestionsCount       int64             `json:"questionsCount"`
}
