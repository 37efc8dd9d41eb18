package port

// NotificationService pushes refresh notifications to connected
// dashboard clients.
type NotificationService interface {
	// BroadcastTeamHealthUpdate notifies clients that the health
	// snapshot of a team has changed
	BroadcastTeamHealthUpdate(teamID, sprintNumber string)
}
