package analyzer

import "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"

// topicEntry maps a topic label to the trigger words that activate it.
// Topics are emitted in declaration order.
type topicEntry struct {
	Label    string
	Triggers []string
}

var topicTable = []topicEntry{
	{
		Label:    "project management",
		Triggers: []string{"project", "timeline", "milestone", "deadline", "planning", "roadmap", "sprint"},
	},
	{
		Label:    "budget & finance",
		Triggers: []string{"budget", "cost", "finance", "financial", "expense", "funding", "revenue"},
	},
	{
		Label:    "team coordination",
		Triggers: []string{"team", "collaboration", "coordination", "communication", "standup", "sync"},
	},
	{
		Label:    "client relations",
		Triggers: []string{"client", "customer", "stakeholder", "presentation", "demo"},
	},
	{
		Label:    "technical discussion",
		Triggers: []string{"technical", "development", "architecture", "infrastructure", "deployment", "testing", "code"},
	},
}

// keyPhrases select sentences for the summary.
var keyPhrases = []string{
	"discussed", "agreed", "decided", "concluded", "reviewed",
	"presented", "analyzed", "proposed", "suggested", "recommended",
}

// actionTriggers mark sentences that contain an action item.
var actionTriggers = []string{
	"action", "todo", "follow up", "next step", "need to", "should",
	"must", "required", "implement", "review", "analyze", "prepare", "contact",
}

// taskTriggers mark sentences that contain an assignable task.
var taskTriggers = []string{
	"assign", "responsible", "owner", "lead", "manage", "handle",
	"complete", "deliver", "finish", "due", "deadline",
}

// defaultRoster is used for round-robin assignment when no participants
// are supplied.
var defaultRoster = []string{"Team Lead", "Project Manager", "Developer", "Analyst"}

const (
	maxActionItems   = 6
	maxTasks         = 5
	maxSummaryLines  = 4
	minDueDateDays   = 1
	dueDateDaysRange = 14
)

const fallbackSummary = "The team held a meeting to discuss ongoing work and align on current priorities."

// defaultActionItems are substituted when no sentence matches an action trigger.
var defaultActionItems = []entities.ActionItem{
	{
		ID:          "action-1",
		Description: "Review meeting notes and share key takeaways with the team",
		Priority:    entities.PriorityMedium,
		Category:    entities.CategoryGeneral,
	},
	{
		ID:          "action-2",
		Description: "Schedule a follow-up meeting to track progress",
		Priority:    entities.PriorityLow,
		Category:    entities.CategoryGeneral,
	},
}

// defaultTaskDescriptions are substituted when no sentence matches a task
// trigger. Due dates are offset by index+3 days from the analysis time.
var defaultTaskDescriptions = []string{
	"Prepare meeting minutes and distribute to attendees",
	"Update project documentation with discussed changes",
	"Collect feedback from team members on meeting outcomes",
	"Set the agenda for the next meeting",
}

// baselineNextSteps are always present, in this order.
var baselineNextSteps = []string{
	"Share meeting summary with all participants",
	"Schedule follow-up meetings with key stakeholders",
	"Update project timeline based on discussed changes",
}

const (
	urgentActionStep = "Address high-priority action items immediately"
	urgentTaskStep   = "Monitor progress of urgent tasks daily"
)
