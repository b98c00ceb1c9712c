package task_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
)

func ptr[T any](v T) *T { return &v }

var testTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func sampleTask() task.Task {
	start := testTime
	deadline := testTime.Add(48 * time.Hour)
	return task.Task{
		ID:          "t-1",
		ListID:      "l-1",
		Title:       "Buy milk",
		Description: "2% milk",
		Status:      task.StatusNew,
		Priority:    task.PriorityMiddle,
		StartDate:   &start,
		Deadline:    &deadline,
		Order:       -1,
		AddedDate:   testTime,
	}
}

func TestPatch_ApplyTo(t *testing.T) {
	t.Parallel()

	base := sampleTask().Model()

	tests := []struct {
		name  string
		patch task.Patch
		want  func(m task.Model) task.Model
	}{
		{
			name:  "empty patch leaves model unchanged",
			patch: task.Patch{},
			want:  func(m task.Model) task.Model { return m },
		},
		{
			name:  "status only",
			patch: task.Patch{Status: ptr(task.StatusCompleted)},
			want: func(m task.Model) task.Model {
				m.Status = task.StatusCompleted
				return m
			},
		},
		{
			name:  "title and priority",
			patch: task.Patch{Title: ptr("Buy oat milk"), Priority: ptr(task.PriorityUrgently)},
			want: func(m task.Model) task.Model {
				m.Title = "Buy oat milk"
				m.Priority = task.PriorityUrgently
				return m
			},
		},
		{
			name:  "empty description is a real value",
			patch: task.Patch{Description: ptr("")},
			want: func(m task.Model) task.Model {
				m.Description = ""
				return m
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.patch.ApplyTo(base)
			want := tt.want(base)
			if got.Title != want.Title || got.Description != want.Description ||
				got.Status != want.Status || got.Priority != want.Priority ||
				got.StartDate != want.StartDate || got.Deadline != want.Deadline {
				t.Errorf("ApplyTo() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestTask_WithModel_PreservesIdentity(t *testing.T) {
	t.Parallel()

	orig := sampleTask()
	m := task.Patch{Title: ptr("Renamed")}.ApplyTo(orig.Model())

	got := orig.WithModel(m)

	if got.ID != orig.ID || got.ListID != orig.ListID || got.Order != orig.Order || !got.AddedDate.Equal(orig.AddedDate) {
		t.Errorf("WithModel() changed identity fields: got %+v, orig %+v", got, orig)
	}
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want %q", got.Title, "Renamed")
	}
	if got.Description != orig.Description || got.Status != orig.Status || got.Priority != orig.Priority {
		t.Errorf("WithModel() changed unpatched fields: got %+v", got)
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(task.Patch{}).IsEmpty() {
		t.Error("zero Patch.IsEmpty() = false, want true")
	}
	if (task.Patch{Deadline: ptr(testTime)}).IsEmpty() {
		t.Error("Patch{Deadline}.IsEmpty() = true, want false")
	}
}

func TestPatch_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		patch     task.Patch
		wantField string
	}{
		{name: "valid patch", patch: task.Patch{Title: ptr("ok"), Status: ptr(task.StatusDraft)}},
		{name: "blank title", patch: task.Patch{Title: ptr("  ")}, wantField: "title"},
		{name: "unknown status", patch: task.Patch{Status: ptr(task.Status(9))}, wantField: "status"},
		{name: "unknown priority", patch: task.Patch{Priority: ptr(task.Priority(-1))}, wantField: "priority"},
		{
			name:      "deadline before start",
			patch:     task.Patch{StartDate: ptr(testTime), Deadline: ptr(testTime.Add(-time.Hour))},
			wantField: "deadline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.patch.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Validate() fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestValidateTitle_MaxLength(t *testing.T) {
	t.Parallel()

	long := make([]rune, task.MaxTitleLength+1)
	for i := range long {
		long[i] = 'ж'
	}

	if err := task.ValidateTitle(string(long[:task.MaxTitleLength])); err != nil {
		t.Errorf("ValidateTitle(100 runes) error = %v, want nil", err)
	}
	if err := task.ValidateTitle(string(long)); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ValidateTitle(101 runes) error = %v, want ErrValidation", err)
	}
}

func TestPatch_Merge(t *testing.T) {
	t.Parallel()

	stored := sampleTask().Model() // start testTime, deadline testTime+48h

	tests := []struct {
		name      string
		patch     task.Patch
		wantField string
	}{
		{name: "deadline after stored start", patch: task.Patch{Deadline: ptr(testTime.Add(time.Hour))}},
		{
			name:      "deadline before stored start",
			patch:     task.Patch{Deadline: ptr(testTime.Add(-time.Hour))},
			wantField: "deadline",
		},
		{
			name:      "start after stored deadline",
			patch:     task.Patch{StartDate: ptr(testTime.Add(72 * time.Hour))},
			wantField: "deadline",
		},
		{name: "title only", patch: task.Patch{Title: ptr("Buy oat milk")}},
		{name: "invalid field", patch: task.Patch{Status: ptr(task.Status(9))}, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.patch.Merge(stored)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Merge() error = %v, want nil", err)
				}
				if want := tt.patch.ApplyTo(stored); got != want {
					t.Errorf("Merge() = %+v, want %+v", got, want)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Merge() error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Merge() fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestPatch_Merge_KeepsStoredInvertedDates(t *testing.T) {
	t.Parallel()

	stored := sampleTask().Model()
	inverted := testTime.Add(-time.Hour)
	stored.Deadline = &inverted

	if _, err := (task.Patch{Title: ptr("Renamed")}).Merge(stored); err != nil {
		t.Errorf("Merge() error = %v, want nil for a patch without dates", err)
	}
}
