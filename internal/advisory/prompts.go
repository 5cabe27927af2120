package advisory

import (
	"fmt"
	"strings"

	"planshop/internal/wizard"
)

const advisorySystemPrompt = `You are an expert strategy consultant for managers of municipal educational-psychology services.
You are assisting inside a workshop for building an annual work plan.
Answer in lightweight markup only: #/##/### headings, * bullet lines, **bold** for emphasis. Keep it under 300 words.`

const integrationSystemPrompt = `You are an expert strategy consultant for managers of municipal educational-psychology services.
You produce polished, executive-grade annual work plan documents.
Answer in lightweight markup: #/##/### headings, * bullet lines, **bold**, and |-delimited table rows.`

// stepTopics is the natural-language framing of each step, sent alongside
// the plan snapshot so the model knows what the user is currently filling in.
var stepTopics = map[wizard.StepID]string{
	wizard.StepContext:     "Environmental and background mapping for the psychological service.",
	wizard.StepSwot:        "SWOT analysis - strengths, weaknesses, opportunities and threats for the unit.",
	wizard.StepTransition:  "Moving from analysis to direction-setting.",
	wizard.StepVision:      "Vision building for the service - where do we want to be?",
	wizard.StepGoals:       "Strategic goal setting - the main pillars for next year.",
	wizard.StepObjectives:  "Defining SMART objectives for each strategic goal.",
	wizard.StepTasks:       "Detailed task planning - turning goals into action.",
	wizard.StepConstraints: "Risk assessment and management of constraints.",
	wizard.StepSummary:     "Final plan integration and roadmap construction.",
}

func buildStepPrompt(step wizard.StepID, snapshot string) string {
	topic := stepTopics[step]
	if topic == "" {
		topic = string(step)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "We are in a work-plan workshop. The current step is: %s\n\n", topic)
	fmt.Fprintf(&b, "The data entered so far (JSON):\n%s\n\n", snapshot)
	b.WriteString(`Your task:
1. Give 2-3 deep, practical insights that will help the manager complete this step more professionally.
2. Give one example of a well-phrased item for this step (vision/goal/objective etc.), grounded in the data the user entered.
3. Use empowering managerial-psychological language.`)
	return b.String()
}

func buildIntegrationPrompt(snapshot string) string {
	var b strings.Builder
	b.WriteString("Task: build a strategic annual work plan document for the service manager.\n")
	b.WriteString("Perform a full integration of the background, the SWOT, the vision, the goals and the tasks.\n\n")
	fmt.Fprintf(&b, "Data (JSON):\n%s\n\n", snapshot)
	b.WriteString(`The output must include:
1. A strategic executive summary linking the background to the new direction of the service.
2. The polished vision of the service.
3. A complete work-plan table with |-delimited rows and exactly these columns: Goal | SMART Objective | Task | Responsibility | Timeline.
   Every goal and objective the user entered must appear in the table, even ones without tasks yet.
4. How the plan answers each constraint the user listed.
5. Change-management recommendations for embedding the plan in the team.`)
	return b.String()
}
