package models

import (
	"strings"
	"testing"
)

func TestParseTask(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantStat Status
		wantDesc string
		wantDone bool
	}{
		{"pending", "[ ] Buy milk", StatusPending, "Buy milk", false},
		{"completed", "[x] Buy milk", StatusCompleted, "Buy milk", true},
		{"bare pending token", "[ ]", StatusPending, "", false},
		{"description keeps inner tokens", "[ ] fix [x] marker", StatusPending, "fix [x] marker", false},
		{"no token", "just text", "", "just text", false},
		{"token without space", "[x]text", "", "[x]text", false},
		{"empty line", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTask(3, tt.line)
			if got.Index != 3 {
				t.Errorf("Index = %d, want 3", got.Index)
			}
			if got.Status != tt.wantStat {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStat)
			}
			if got.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDesc)
			}
			if got.Completed != tt.wantDone {
				t.Errorf("Completed = %v, want %v", got.Completed, tt.wantDone)
			}
		})
	}
}

func TestTask_StringRoundTrip(t *testing.T) {
	for _, line := range []string{"[ ] Buy milk", "[x] Call mom", "loose line", "[ ]", "[x]  two spaces", "[ ]tight"} {
		if got := ParseTask(0, line).String(); got != line {
			t.Errorf("ParseTask(%q).String() = %q", line, got)
		}
	}
}

func TestParseTasks_KeepsOrder(t *testing.T) {
	tasks := ParseTasks([]string{"[ ] a", "[x] b", "[ ] c"})
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, want := range []string{"a", "b", "c"} {
		if tasks[i].Index != i || tasks[i].Description != want {
			t.Errorf("tasks[%d] = %+v", i, tasks[i])
		}
	}
}

func TestStatus_IsValid(t *testing.T) {
	if !StatusPending.IsValid() || !StatusCompleted.IsValid() {
		t.Error("core statuses should be valid")
	}
	if Status("[-]").IsValid() {
		t.Error("unknown token should not be valid")
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid", "Buy milk", ""},
		{"empty", "", "cannot be empty"},
		{"newline", "Buy\nmilk", "single line"},
		{"carriage return", "Buy\rmilk", "single line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateInput(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateInput(%q) error = %v, want containing %q", tt.input, err, tt.wantErr)
			}
		})
	}
}
