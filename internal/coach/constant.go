package coach

// Log prefixes
const (
	LogPrefixWrite = "internal.coach.Write"
)

// Coach prompts
const (
	PromptSummarySystem = `You are a productivity coach for software engineers at a startup.
Analyze this week's productivity data and generate:
  1. A concise summary (2-3 sentences) of the week's tasks and productivity metrics. The summary should not mention the dates nor that this is a summary; focus on summarizing the actions taken and any correlation between action, focus, and time spent.
  2. 1-3 specific, actionable recommendations to improve efficiency or focus for the next week BASED UPON THE WEEK'S TASKS AND PRODUCTIVITY METRICS. Each should be a single sentence, with the most important part in bold HTML tags e.g.
    - Set aside <b>1-2 days free from lower focus tasks</b> to help your concentration.
    - Try to <b>pair up during low-focus tasks</b> so you can help each other stay on track.

Do not suggest introducing a time tracking tool, that is what is being used to track these tasks.

Provide a JSON response with:
{
"summary": "2-3 sentence summary of the week",
"recommendations": ["recommendation 1", "recommendation 2", "recommendation 3"]
}`

	PromptWeekTemplate = `Week: %s to %s
Total Tasks: %d
Total Hours: %s
Average Focus: %s

Tasks:
%s
%s`

	PromptContextPrefix = "IMPORTANT: Use this context from previous and future weeks to provide DIFFERENT advice than what was already given. Avoid repeating recommendations and focus on new insights or next steps in the user's productivity journey. Praise them for ways they have implemented past recommendations or improved their productivity.\n\n"
	PromptBeforeHeader  = "PREVIOUS WEEKS:"
	PromptAfterHeader   = "WEEKS AFTER:"
	UnknownWeekRange    = "Unknown week"
)

// Coach configuration
const (
	CoachTemperature   = 0.7
	CoachMaxTokens     = 600
	MaxRecommendations = 3
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "failed to parse JSON response"
	ErrMsgEmptyResponse   = "empty summary or recommendations"
)

// Offline summary used by the sample-data seeder when the model is unavailable.
const (
	FallbackSummary        = "Week completed with various tasks across different focus levels."
	FallbackRecommendation = "Continue maintaining consistent productivity patterns"
)
