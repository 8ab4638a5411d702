package usecase

import (
	"fmt"
	"strings"

	activitydomain "activityhub-backend/internal/activity/domain"
	authdomain "activityhub-backend/internal/auth/domain"
)

func statusLabel(s activitydomain.Status) string {
	switch s {
	case activitydomain.StatusTodo:
		return "To Do"
	case activitydomain.StatusInProgress:
		return "In Progress"
	case activitydomain.StatusPending:
		return "Pending"
	case activitydomain.StatusCompleted:
		return "Completed"
	case activitydomain.StatusReopen:
		return "Reopened"
	}
	return string(s)
}

// pendingReason reads the reason a pending activity was parked with, from the
// second evidence slot once the activity has been reopened.
func pendingReason(a *activitydomain.Activity) string {
	ev := a.Evidence
	if a.Reopened {
		ev = a.ReopenEvidence
	}
	if ev != nil && ev.Type == activitydomain.EvidenceText {
		return ev.Content
	}
	return ""
}

// BuildTeamDailyReport renders the raw facts of one team day as plain text for
// the model. Every member appears, including those without any activity that day.
func BuildTeamDailyReport(date string, users []*authdomain.User, activities []*activitydomain.Activity) string {
	byAssignee := make(map[string][]*activitydomain.Activity)
	for _, a := range activities {
		byAssignee[a.AssigneeID] = append(byAssignee[a.AssigneeID], a)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Team activity report for %s\n", date)
	fmt.Fprintf(&b, "Team size: %d members\n\n", len(users))

	for _, user := range users {
		fmt.Fprintf(&b, "%s (%s):\n", user.Name, user.Position)
		tasks := byAssignee[user.ID]
		if len(tasks) == 0 {
			b.WriteString("- No tasks scheduled for this day\n")
		}
		for _, a := range tasks {
			fmt.Fprintf(&b, "- [%s] %s (%s, %d points)", statusLabel(a.Status), a.Title, a.Category, a.Points)
			if a.Status == activitydomain.StatusPending {
				if reason := pendingReason(a); reason != "" {
					fmt.Fprintf(&b, " - blocked: %s", reason)
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// BuildMemberMonthlyReport renders one member's month as plain text for the model.
// month is YYYY-MM.
func BuildMemberMonthlyReport(month string, user *authdomain.User, activities []*activitydomain.Activity) string {
	statusCounts := make(map[activitydomain.Status]int)
	categoryCounts := make(map[activitydomain.Category]int)
	pointsEarned := 0
	for _, a := range activities {
		statusCounts[a.Status]++
		categoryCounts[a.Category]++
		if a.Status == activitydomain.StatusCompleted {
			pointsEarned += a.Points
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Monthly activity report for %s (%s), %s\n\n", user.Name, user.Position, month)
	fmt.Fprintf(&b, "Total activities: %d\n", len(activities))
	fmt.Fprintf(&b, "Completed: %d, In progress: %d, Pending: %d, To do: %d, Reopened: %d\n",
		statusCounts[activitydomain.StatusCompleted],
		statusCounts[activitydomain.StatusInProgress],
		statusCounts[activitydomain.StatusPending],
		statusCounts[activitydomain.StatusTodo],
		statusCounts[activitydomain.StatusReopen])
	fmt.Fprintf(&b, "By category: project %d, personal %d, urgent %d, team %d\n",
		categoryCounts[activitydomain.CategoryProject],
		categoryCounts[activitydomain.CategoryPersonal],
		categoryCounts[activitydomain.CategoryUrgent],
		categoryCounts[activitydomain.CategoryTeam])
	fmt.Fprintf(&b, "Points earned from completed work: %d\n\n", pointsEarned)

	if len(activities) == 0 {
		b.WriteString("No activities recorded this month\n")
		return b.String()
	}

	b.WriteString("Activities:\n")
	for _, a := range activities {
		fmt.Fprintf(&b, "- %s [%s] %s (%s)\n", a.Date, statusLabel(a.Status), a.Title, a.Category)
	}
	return b.String()
}

// TeamDailyPrompt wraps a team day report with generation instructions
func TeamDailyPrompt(report string) string {
	return "You are an assistant writing a daily standup digest for a small team.\n" +
		"Summarize the report below in markdown: one short overall paragraph, " +
		"then a bullet per member with what they worked on and anything blocked. " +
		"Mention members with no scheduled tasks in a single closing line. " +
		"Keep it under 250 words and do not invent facts.\n\n" + report
}

// MemberMonthlyPrompt wraps a member month report with generation instructions
func MemberMonthlyPrompt(report string) string {
	return "You are an assistant writing a monthly personal work review.\n" +
		"Summarize the report below in markdown: a short paragraph on overall output, " +
		"a bullet list of highlights, and one sentence on open or blocked work. " +
		"Keep it under 200 words and do not invent facts.\n\n" + report
}
