package domain

import "time"

type Topic struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TopicWithQuestions 是按 ID 查询 topic 时返回的嵌套结构，questions 始终输出（空时为 []）。
type TopicWithQuestions struct {
	Topic
	Questions []Question `json:"questions"`
}

// Completed 判断 topic 下的题目是否全部解决，没有题目时视为已完成。
func (t TopicWithQuestions) Completed() bool {
	for _, q := range t.Questions {
		if !q.IsSolved {
			return false
		}
	}
	return true
}

type Question struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	IsSolved  bool      `json:"isSolved"`
	Link      string    `json:"link"`
	Youtube   *string   `json:"youtube"`
	TopicID   int64     `json:"topicId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CountCompleted 统计已完成的 topic 数量
func CountCompleted(topics []TopicWithQuestions) int64 {
	var n int64
	for _, t := range topics {
		if t.Completed() {
			n++
		}
	}
	return n
}
