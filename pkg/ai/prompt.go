package ai

import "fmt"

// summaryInstruction asks for the same JSON shape the local summarizer
// produces, so both paths normalize through one parser.
const summaryInstruction = `You summarize meeting notes. Answer with JSON only, no prose, matching:
{
  "title": string,
  "topics": [{"title": string, "bullets": [string], "decisions": [string]}],
  "action_items": [{"owner": string, "task": string, "due": string}],
  "overall_summary": string,
  "decisions": [string]
}
Use "unassigned" when no owner is named and "unspecified" when no due date is given.
Keep the language of the notes. At most 6 topics and 10 action items.`

func summaryPrompt(text string) string {
	return fmt.Sprintf("%s\n\nMeeting notes:\n\n%s", summaryInstruction, text)
}
