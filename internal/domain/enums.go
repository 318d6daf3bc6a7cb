package domain

// Роли пользователей
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// Статусы арендатора
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
)

// Статусы сотрудника
const (
	EmployeeStatusActive     = "Active"
	EmployeeStatusOnLeave    = "On Leave"
	EmployeeStatusInactive   = "Inactive"
	EmployeeStatusTerminated = "Terminated"
)

// Сотрудник, создаваемый вместе с администратором арендатора
const (
	AdminDepartment = "Management"
	AdminJobTitle   = "Administrator"
)

// Цели
const (
	GoalStatusNotStarted = "Not Started"
	GoalStatusInProgress = "In Progress"
	GoalStatusCompleted  = "Completed"
	GoalStatusCancelled  = "Cancelled"

	GoalPriorityMedium = "Medium"
)

// Оценки
const (
	ReviewStatusDraft = "Draft"
)

// Отпуска
const (
	LeaveTypeVacation = "Vacation"
	LeaveTypeSick     = "Sick"
	LeaveTypePersonal = "Personal"

	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Табели
const (
	TimesheetStatusDraft = "Draft"
)

// Объявления
const (
	AnnouncementPriorityNormal = "Normal"
)

// Адаптация
const (
	OnboardingStatusPending = "Pending"
)
