package analyzer

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

func newFixedService(t *testing.T, jitter int) (Service, time.Time) {
	t.Helper()
	mock := clock.NewMock()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	mock.Set(now)
	svc := NewService(nil,
		WithClock(mock),
		WithRandInt(func(n int) int { return jitter % n }),
	)
	return svc, now
}

func TestAnalyzeEmptyTranscriptUsesFallbacks(t *testing.T) {
	svc, now := newFixedService(t, 0)

	result := svc.Analyze("", nil)

	if result.Summary != fallbackSummary {
		t.Errorf("summary = %q, want fallback", result.Summary)
	}
	if len(result.KeyTopics) != 0 {
		t.Errorf("keyTopics = %v, want empty", result.KeyTopics)
	}
	if len(result.ActionItems) != 2 {
		t.Fatalf("got %d action items, want 2 defaults", len(result.ActionItems))
	}
	if result.ActionItems[0].ID != "action-1" || result.ActionItems[1].ID != "action-2" {
		t.Errorf("default action item IDs = %s, %s", result.ActionItems[0].ID, result.ActionItems[1].ID)
	}
	if len(result.Tasks) != 4 {
		t.Fatalf("got %d tasks, want 4 defaults", len(result.Tasks))
	}
	for i, task := range result.Tasks {
		wantDue := now.AddDate(0, 0, i+3).Format("2006-01-02")
		if task.DueDate != wantDue {
			t.Errorf("task %d dueDate = %s, want %s", i, task.DueDate, wantDue)
		}
		wantPriority := entities.PriorityMedium
		if i == 0 {
			wantPriority = entities.PriorityHigh
		}
		if task.Priority != wantPriority {
			t.Errorf("task %d priority = %s, want %s", i, task.Priority, wantPriority)
		}
		if task.Status != entities.TaskStatusPending {
			t.Errorf("task %d status = %s, want Pending", i, task.Status)
		}
	}
	if !reflect.DeepEqual(result.NextSteps, baselineNextSteps) {
		t.Errorf("nextSteps = %v, want baseline only", result.NextSteps)
	}
}

func TestAnalyzeCapsActionItemsAndTasks(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("We need to handle the rollout step. ")
	}
	result := svc.Analyze(b.String(), nil)

	if len(result.ActionItems) > 6 {
		t.Errorf("got %d action items, cap is 6", len(result.ActionItems))
	}
	if len(result.Tasks) > 5 {
		t.Errorf("got %d tasks, cap is 5", len(result.Tasks))
	}
}

func TestRoundRobinAssigneesUseSentencePosition(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	// Task triggers at sentence positions 0, 2 and 5. Rotation is over
	// all sentences, so positions map to roster[0], roster[2], roster[5%3].
	transcript := strings.Join([]string{
		"Please handle the rollout",
		"The weather was nice today",
		"Someone must deliver the report",
		"Everyone enjoyed the coffee",
		"The room was warm",
		"The launch is due on Friday",
	}, ". ") + "."

	result := svc.Analyze(transcript, []string{"Sarah", "Mike", "Lisa"})

	want := []string{"Sarah", "Lisa", "Lisa"}
	if len(result.Tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(result.Tasks), len(want))
	}
	for i, task := range result.Tasks {
		if task.Assignee != want[i] {
			t.Errorf("task %d assignee = %s, want %s", i, task.Assignee, want[i])
		}
	}
}

func TestUrgentTaskGetsHighPriority(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	result := svc.Analyze("Bob must handle the urgent deployment.", nil)

	if len(result.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(result.Tasks))
	}
	if result.Tasks[0].Priority != entities.PriorityHigh {
		t.Errorf("priority = %s, want High", result.Tasks[0].Priority)
	}
}

func TestClientCategoryPrecedesBudget(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	result := svc.Analyze("We should discuss the client budget concerns.", nil)

	if len(result.ActionItems) == 0 {
		t.Fatal("expected at least one action item")
	}
	if got := result.ActionItems[0].Category; got != entities.CategoryClientRelations {
		t.Errorf("category = %s, want Client Relations", got)
	}
}

func TestBudgetReviewExample(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	result := svc.Analyze("We need to review the budget urgently.", nil)

	if len(result.ActionItems) != 1 {
		t.Fatalf("got %d action items, want 1", len(result.ActionItems))
	}
	item := result.ActionItems[0]
	if item.Priority != entities.PriorityHigh {
		t.Errorf("priority = %s, want High", item.Priority)
	}
	if item.Category != entities.CategoryBudgetFinance {
		t.Errorf("category = %s, want Budget & Finance", item.Category)
	}
	found := false
	for _, topic := range result.KeyTopics {
		if topic == "budget & finance" {
			found = true
		}
	}
	if !found {
		t.Errorf("keyTopics = %v, want budget & finance included", result.KeyTopics)
	}
}

func TestTopicsFollowTableOrder(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	// Mentions appear in reverse table order in the transcript.
	result := svc.Analyze("The technical rollout depends on the budget and the project scope.", nil)

	want := []string{"project management", "budget & finance", "technical discussion"}
	if !reflect.DeepEqual(result.KeyTopics, want) {
		t.Errorf("keyTopics = %v, want %v", result.KeyTopics, want)
	}
}

func TestTopicMatchIsWholeToken(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	// "budgetary" must not trigger the budget topic via substring match.
	result := svc.Analyze("The budgetary overview was shared.", nil)

	for _, topic := range result.KeyTopics {
		if topic == "budget & finance" {
			t.Errorf("keyTopics = %v, substring token should not match", result.KeyTopics)
		}
	}
}

func TestSummaryKeepsFirstFourMatches(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	transcript := "We discussed the roadmap. Filler sentence here. They agreed on scope. " +
		"The vendor presented pricing. We reviewed the backlog. They proposed a change."
	result := svc.Analyze(transcript, nil)

	want := "We discussed the roadmap. They agreed on scope. The vendor presented pricing. We reviewed the backlog."
	if result.Summary != want {
		t.Errorf("summary = %q, want %q", result.Summary, want)
	}
}

func TestNextStepsIncludeUrgencyExtras(t *testing.T) {
	svc, _ := newFixedService(t, 0)

	transcript := "We must contact the vendor urgently. Anna will handle the critical migration."
	result := svc.Analyze(transcript, nil)

	if len(result.NextSteps) != 5 {
		t.Fatalf("got %d next steps, want 5: %v", len(result.NextSteps), result.NextSteps)
	}
	if result.NextSteps[0] != urgentActionStep {
		t.Errorf("first step = %q, want urgent action step", result.NextSteps[0])
	}
	if result.NextSteps[4] != urgentTaskStep {
		t.Errorf("last step = %q, want urgent task step", result.NextSteps[4])
	}
	if !reflect.DeepEqual(result.NextSteps[1:4], baselineNextSteps) {
		t.Errorf("middle steps = %v, want baseline", result.NextSteps[1:4])
	}
}

func TestAnalyzeIsDeterministicWithFixedSources(t *testing.T) {
	transcript := "We discussed the project timeline. Sarah will handle the urgent client demo. " +
		"The team must deliver the budget report."
	participants := []string{"Sarah", "Mike"}

	first, _ := newFixedService(t, 7)
	second, _ := newFixedService(t, 7)

	a := first.Analyze(transcript, participants)
	b := second.Analyze(transcript, participants)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated analysis differs:\n%+v\n%+v", a, b)
	}
}

func TestDueDatesStayInJitterWindow(t *testing.T) {
	mock := clock.NewMock()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	mock.Set(now)
	svc := NewService(nil, WithClock(mock))

	result := svc.Analyze("Mike will handle the rollout.", nil)

	if len(result.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(result.Tasks))
	}
	due, err := time.Parse("2006-01-02", result.Tasks[0].DueDate)
	if err != nil {
		t.Fatalf("bad dueDate format %q: %v", result.Tasks[0].DueDate, err)
	}
	min := now.AddDate(0, 0, 1)
	max := now.AddDate(0, 0, 14)
	if due.Before(min.Truncate(24*time.Hour)) || due.After(max) {
		t.Errorf("dueDate %s outside [%s, %s]", result.Tasks[0].DueDate,
			min.Format("2006-01-02"), max.Format("2006-01-02"))
	}
}
