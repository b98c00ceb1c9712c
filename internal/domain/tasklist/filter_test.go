package tasklist_test

import (
	"testing"

	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		{ID: "1", Status: task.StatusNew},
		{ID: "2", Status: task.StatusCompleted},
		{ID: "3", Status: task.StatusInProgress},
		{ID: "4", Status: task.StatusCompleted},
	}

	tests := []struct {
		filter tasklist.Filter
		want   []string
	}{
		{filter: tasklist.FilterAll, want: []string{"1", "2", "3", "4"}},
		{filter: tasklist.FilterActive, want: []string{"1", "3"}},
		{filter: tasklist.FilterCompleted, want: []string{"2", "4"}},
		{filter: "bogus", want: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			t.Parallel()

			got := tt.filter.Apply(tasks)
			if len(got) != len(tt.want) {
				t.Fatalf("len(Apply()) = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("Apply()[%d].ID = %q, want %q", i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilter_IsValid(t *testing.T) {
	t.Parallel()

	for _, f := range []tasklist.Filter{tasklist.FilterAll, tasklist.FilterActive, tasklist.FilterCompleted} {
		if !f.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", f)
		}
	}
	if tasklist.Filter("done").IsValid() {
		t.Error(`"done".IsValid() = true, want false`)
	}
}

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	if err := tasklist.ValidateTitle("Groceries"); err != nil {
		t.Errorf("ValidateTitle(valid) error = %v", err)
	}
	if err := tasklist.ValidateTitle(""); err == nil {
		t.Error("ValidateTitle(\"\") returned nil, want error")
	}
}
