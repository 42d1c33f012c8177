package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/mebelart/catalogbot/internal/domain"
)

func TestFailureText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "timeout gets its own wording",
			err:  &domain.GenerationError{Kind: domain.FailureTimeout},
			want: "не ответил вовремя",
		},
		{
			name: "remote failure surfaces the detail",
			err:  &domain.GenerationError{Kind: domain.FailureRemoteTask, Detail: "content rejected"},
			want: "content rejected",
		},
		{
			name: "protocol violation",
			err:  &domain.GenerationError{Kind: domain.FailureProtocol},
			want: "некорректный ответ",
		},
		{
			name: "submission failure",
			err:  &domain.GenerationError{Kind: domain.FailureSubmission, Detail: "401"},
			want: "Не удалось отправить",
		},
		{
			name: "unclassified error",
			err:  errors.New("boom"),
			want: "Ошибка генерации",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failureText(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("failureText(%v) = %q, want substring %q", tt.err, got, tt.want)
			}
		})
	}
}
