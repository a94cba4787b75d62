package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicCompleted(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		want      bool
	}{
		{name: "no questions", questions: nil, want: true},
		{name: "all solved", questions: []Question{{IsSolved: true}, {IsSolved: true}}, want: true},
		{name: "one unsolved", questions: []Question{{IsSolved: true}, {IsSolved: false}}, want: false},
		{name: "none solved", questions: []Question{{}, {}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := TopicWithQuestions{Topic: Topic{ID: 1}, Questions: tt.questions}
			assert.Equal(t, tt.want, topic.Completed())
		})
	}
}

func TestCountCompleted(t *testing.T) {
	topics := []TopicWithQuestions{
		{Topic: Topic{ID: 1}},
		{Topic: Topic{ID: 2}, Questions: []Question{{IsSolved: true}}},
		{Topic: Topic{ID: 3}, Questions: []Question{{IsSolved: true}, {IsSolved: false}}},
		{Topic: Topic{ID: 4}, Questions: []Question{{IsSolved: false}}},
	}

	assert.Equal(t, int64(2), CountCompleted(topics))
	assert.Zero(t, CountCompleted(nil))
}
