package analyzer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

// Service derives a structured analysis from a raw meeting transcript.
// Analyze is total: any input, including an empty transcript, produces a
// fully populated result via fallback defaults. It holds no mutable state
// and is safe for concurrent use.
type Service interface {
	Analyze(transcript string, participants []string) *entities.MeetingAnalysis
}

type service struct {
	clock   clock.Clock
	randInt func(n int) int
	logger  *zap.Logger
}

// Option configures the analyzer service
type Option func(*service)

// WithClock injects the time source used for due-date stamping
func WithClock(c clock.Clock) Option {
	return func(s *service) {
		s.clock = c
	}
}

// WithRandInt injects the random source used for due-date jitter
func WithRandInt(fn func(n int) int) Option {
	return func(s *service) {
		s.randInt = fn
	}
}

// NewService creates a new analyzer service
func NewService(logger *zap.Logger, opts ...Option) Service {
	s := &service{
		clock:   clock.New(),
		randInt: rand.Intn,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze runs the full keyword-matching pipeline over the transcript
func (s *service) Analyze(transcript string, participants []string) *entities.MeetingAnalysis {
	sentences := splitSentences(transcript)
	now := s.clock.Now()

	roster := participants
	if len(roster) == 0 {
		roster = defaultRoster
	}

	matchedActions := extractActionItems(sentences)
	matchedTasks := s.extractTasks(sentences, roster, now)

	// Urgency-driven next steps consider only matched items, never the
	// fallback defaults substituted below.
	nextSteps := deriveNextSteps(matchedActions, matchedTasks)

	actionItems := matchedActions
	if len(actionItems) == 0 {
		actionItems = append([]entities.ActionItem(nil), defaultActionItems...)
	}
	tasks := matchedTasks
	if len(tasks) == 0 {
		tasks = s.defaultTasks(roster, now)
	}

	analysis := &entities.MeetingAnalysis{
		Summary:     extractSummary(sentences),
		ActionItems: actionItems,
		Tasks:       tasks,
		KeyTopics:   extractTopics(transcript),
		NextSteps:   nextSteps,
	}

	if s.logger != nil {
		s.logger.Debug("transcript analyzed",
			zap.Int("sentences", len(sentences)),
			zap.Int("action_items", len(analysis.ActionItems)),
			zap.Int("tasks", len(analysis.Tasks)),
			zap.Int("topics", len(analysis.KeyTopics)))
	}

	return analysis
}

// splitSentences splits on sentence terminators and drops empty fragments
func splitSentences(transcript string) []string {
	parts := strings.FieldsFunc(transcript, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// extractTopics matches whole lowercase tokens against the topic table.
// Output order follows the table, not the transcript.
func extractTopics(transcript string) []string {
	words := strings.Fields(strings.ToLower(transcript))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}

	topics := make([]string, 0, len(topicTable))
	for _, entry := range topicTable {
		for _, trigger := range entry.Triggers {
			if _, ok := seen[trigger]; ok {
				topics = append(topics, entry.Label)
				break
			}
		}
	}
	return topics
}

// extractSummary keeps the first sentences containing a key phrase
func extractSummary(sentences []string) string {
	matched := make([]string, 0, maxSummaryLines)
	for _, sentence := range sentences {
		if containsAny(strings.ToLower(sentence), keyPhrases) {
			matched = append(matched, sentence)
			if len(matched) == maxSummaryLines {
				break
			}
		}
	}
	if len(matched) == 0 {
		return fallbackSummary
	}
	return strings.Join(matched, ". ") + "."
}

func extractActionItems(sentences []string) []entities.ActionItem {
	items := make([]entities.ActionItem, 0, maxActionItems)
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if !containsAny(lower, actionTriggers) {
			continue
		}
		items = append(items, entities.ActionItem{
			ID:          fmt.Sprintf("action-%d", len(items)+1),
			Description: sentence,
			Priority:    actionPriority(lower),
			Category:    actionCategory(lower),
		})
		if len(items) == maxActionItems {
			break
		}
	}
	return items
}

func actionPriority(lower string) entities.Priority {
	switch {
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "asap"):
		return entities.PriorityHigh
	case strings.Contains(lower, "important"):
		return entities.PriorityMedium
	default:
		return entities.PriorityLow
	}
}

// actionCategory classifies by first matching keyword: client wins over
// budget, budget over technical.
func actionCategory(lower string) entities.Category {
	switch {
	case strings.Contains(lower, "client"):
		return entities.CategoryClientRelations
	case strings.Contains(lower, "budget"):
		return entities.CategoryBudgetFinance
	case strings.Contains(lower, "technical"):
		return entities.CategoryTechnical
	default:
		return entities.CategoryGeneral
	}
}

func (s *service) extractTasks(sentences []string, roster []string, now time.Time) []entities.Task {
	tasks := make([]entities.Task, 0, maxTasks)
	// Assignees rotate by position among all sentences, not among matches.
	for i, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if !containsAny(lower, taskTriggers) {
			continue
		}
		tasks = append(tasks, entities.Task{
			ID:          fmt.Sprintf("task-%d", len(tasks)+1),
			Description: sentence,
			Assignee:    roster[i%len(roster)],
			DueDate:     s.jitteredDueDate(now),
			Priority:    taskPriority(lower),
			Status:      entities.TaskStatusPending,
		})
		if len(tasks) == maxTasks {
			break
		}
	}
	return tasks
}

func taskPriority(lower string) entities.Priority {
	switch {
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "critical"):
		return entities.PriorityHigh
	case strings.Contains(lower, "important"):
		return entities.PriorityMedium
	default:
		return entities.PriorityLow
	}
}

// jitteredDueDate picks a date between 1 and 14 days out
func (s *service) jitteredDueDate(now time.Time) string {
	days := minDueDateDays + s.randInt(dueDateDaysRange)
	return now.AddDate(0, 0, days).Format("2006-01-02")
}

// defaultTasks builds the fixed substitute tasks with deterministic
// due-date offsets of index+3 days.
func (s *service) defaultTasks(roster []string, now time.Time) []entities.Task {
	tasks := make([]entities.Task, 0, len(defaultTaskDescriptions))
	for i, desc := range defaultTaskDescriptions {
		priority := entities.PriorityMedium
		if i == 0 {
			priority = entities.PriorityHigh
		}
		tasks = append(tasks, entities.Task{
			ID:          fmt.Sprintf("task-%d", i+1),
			Description: desc,
			Assignee:    roster[i%len(roster)],
			DueDate:     now.AddDate(0, 0, i+3).Format("2006-01-02"),
			Priority:    priority,
			Status:      entities.TaskStatusPending,
		})
	}
	return tasks
}

// deriveNextSteps wraps the fixed baseline with urgency-driven extras
func deriveNextSteps(actionItems []entities.ActionItem, tasks []entities.Task) []string {
	steps := make([]string, 0, len(baselineNextSteps)+2)
	if hasHighPriorityAction(actionItems) {
		steps = append(steps, urgentActionStep)
	}
	steps = append(steps, baselineNextSteps...)
	if hasHighPriorityTask(tasks) {
		steps = append(steps, urgentTaskStep)
	}
	return steps
}

func hasHighPriorityAction(items []entities.ActionItem) bool {
	for _, item := range items {
		if item.Priority == entities.PriorityHigh {
			return true
		}
	}
	return false
}

func hasHighPriorityTask(tasks []entities.Task) bool {
	for _, task := range tasks {
		if task.Priority == entities.PriorityHigh {
			return true
		}
	}
	return false
}

func containsAny(lower string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
