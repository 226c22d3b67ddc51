package entities

// Priority ranks action items and tasks by urgency signals found in the
// transcript.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Category classifies action items by business concern.
type Category string

const (
	CategoryClientRelations Category = "Client Relations"
	CategoryBudgetFinance   Category = "Budget & Finance"
	CategoryTechnical       Category = "Technical"
	CategoryGeneral         Category = "General"
)

// TaskStatus is the lifecycle state of an extracted task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "Pending"
)

// ActionItem is a commitment detected in the transcript.
type ActionItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Category    Category `json:"category"`
}

// Task is an assignable unit of work detected in the transcript.
type Task struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee"`
	DueDate     string     `json:"dueDate"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
}

// MeetingAnalysis is the full result of analyzing one transcript.
type MeetingAnalysis struct {
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"actionItems"`
	Tasks       []Task       `json:"tasks"`
	KeyTopics   []string     `json:"keyTopics"`
	NextSteps   []string     `json:"nextSteps"`
}
