package types

// Lifecycle statuses shared by Project/Site/Lot. Tasks additionally use
// Todo/Done; the status synchronizer treats Done as completed.
const (
	StatusPlanned    = "Planned"
	StatusPending    = "Pending"
	StatusInProgress = "InProgress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"

	TaskStatusTodo = "Todo"
	TaskStatusDone = "Done"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

const (
	AlertKindInfo     = "INFO"
	AlertKindWarning  = "WARNING"
	AlertKindCritical = "CRITICAL"

	AlertStatusNew = "NEW"
)

const (
	RoleAdministrator  = "ADMINISTRATOR"
	RoleProjectOwner   = "PROJECT_OWNER"
	RoleProjectManager = "PROJECT_MANAGER"
	RoleFieldEngineer  = "FIELD_ENGINEER"
)
