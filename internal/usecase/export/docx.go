package export

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// writeReportDocx renders a meeting and its analysis into a docx file
func writeReportDocx(meeting *entities.Meeting, analysis *entities.MeetingAnalysis, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), meeting.Title, true, 16)
	addPlainText(doc.AddParagraph(""), "Date: "+meeting.CreatedAt.Format("January 2, 2006"))
	if len(meeting.Participants) > 0 {
		addPlainText(doc.AddParagraph(""), "Participants: "+strings.Join(meeting.Participants, ", "))
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
	addPlainText(doc.AddParagraph(""), analysis.Summary)
	doc.AddParagraph("")

	if len(analysis.KeyTopics) > 0 {
		addStyledRun(doc.AddParagraph(""), "Key Topics", true, 15)
		for _, topic := range analysis.KeyTopics {
			addPlainText(doc.AddParagraph(""), "• "+topic)
		}
		doc.AddParagraph("")
	}

	addStyledRun(doc.AddParagraph(""), "Action Items", true, 15)
	for _, item := range analysis.ActionItems {
		p := doc.AddParagraph("")
		p.AddText("• "+item.Description).Font(fontName).Size(fontSize).Color("000000")
		p.AddText(fmt.Sprintf(" [%s, %s]", item.Priority, item.Category)).
			Font(fontName).Size(fontSize).Color("000000").Bold(true)
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Tasks", true, 15)
	for _, task := range analysis.Tasks {
		p := doc.AddParagraph("")
		p.AddText("• "+task.Description).Font(fontName).Size(fontSize).Color("000000")
		p.AddText(fmt.Sprintf(" (%s, due %s) [%s]", task.Assignee, task.DueDate, task.Priority)).
			Font(fontName).Size(fontSize).Color("000000").Bold(true)
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Next Steps", true, 15)
	for i, step := range analysis.NextSteps {
		addPlainText(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, step))
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addPlainText(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
