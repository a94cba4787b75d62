package question

import (
	"bytes"
	"encoding/json"
)

type CreateInput struct {
	Title    string  `json:"title"`
	IsSolved bool    `json:"isSolved"`
	Link     string  `json:"link"`
	Youtube  *string `json:"youtube"`
}

// UpdateInput 中为 nil 的字段保持原值，Youtube 显式传 null 时清空
type UpdateInput struct {
	Title    *string        `json:"title"`
	IsSolved *bool          `json:"isSolved"`
	Link     *string        `json:"link"`
	Youtube  OptionalString `json:"youtube"`
}

// OptionalString 区分字段缺失、显式 null 和普通字符串
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

