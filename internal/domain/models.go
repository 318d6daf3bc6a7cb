package domain

import (
	"time"
)

// TenantModel - общие колонки всех записей, принадлежащих арендатору
type TenantModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantID  int64     `json:"tenantId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// SetTenantID привязывает запись к арендатору
func (m *TenantModel) SetTenantID(tenantID int64) {
	m.TenantID = tenantID
}

// Tenant представляет организацию-арендатора
type Tenant struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"type:varchar(200);not null;uniqueIndex"`
	ContactEmail string    `json:"contactEmail" gorm:"type:varchar(320)"`
	Status       string    `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Tenant) TableName() string {
	return "tenants"
}

// User - учётная запись для входа в систему
type User struct {
	TenantModel
	Email        string `json:"email" gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"type:varchar(255);not null"`
	Role         string `json:"role" gorm:"type:varchar(20);not null"`
	EmployeeID   *int64 `json:"employeeId" gorm:"uniqueIndex"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// Employee представляет сотрудника
type Employee struct {
	TenantModel
	Name       string     `json:"name" gorm:"type:varchar(200);not null"`
	Email      string     `json:"email" gorm:"type:varchar(320);not null"`
	Role       string     `json:"role" gorm:"type:varchar(200)"`
	Department string     `json:"department" gorm:"type:varchar(200);index"`
	HireDate   *time.Time `json:"hireDate" gorm:"type:date"`
	Status     string     `json:"status" gorm:"type:varchar(20);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Goal - цель сотрудника с ключевыми результатами
type Goal struct {
	TenantModel
	EmployeeID  int64     `json:"employeeId" gorm:"not null;index"`
	Objective   string    `json:"objective" gorm:"type:varchar(500);not null"`
	Description string    `json:"description" gorm:"type:text"`
	DueDate     time.Time `json:"dueDate" gorm:"type:date;not null"`
	Category    string    `json:"category" gorm:"type:varchar(30);not null"`
	Priority    string    `json:"priority" gorm:"type:varchar(20);not null"`
	Status      string    `json:"status" gorm:"type:varchar(20);not null"`
	KeyResults  []string  `json:"keyResults" gorm:"type:text;serializer:json"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Goal) TableName() string {
	return "goals"
}

// Review - оценка эффективности сотрудника
type Review struct {
	TenantModel
	EmployeeID   int64     `json:"employeeId" gorm:"not null;index"`
	ReviewerID   int64     `json:"reviewerId" gorm:"not null;index"`
	ReviewPeriod string    `json:"reviewPeriod" gorm:"type:varchar(100);not null"`
	ReviewDate   time.Time `json:"reviewDate" gorm:"type:date;not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	Strengths    string    `json:"strengths" gorm:"type:text"`
	Improvements string    `json:"improvements" gorm:"type:text"`
	Comments     string    `json:"comments" gorm:"type:text"`
	Status       string    `json:"status" gorm:"type:varchar(20);not null"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Reviewer *Employee `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}

// TableName задаёт имя таблицы для GORM
func (Review) TableName() string {
	return "reviews"
}

// LeaveRequest - заявка на отпуск
type LeaveRequest struct {
	TenantModel
	EmployeeID int64     `json:"employeeId" gorm:"not null;index"`
	Type       string    `json:"type" gorm:"column:leave_type;type:varchar(20);not null"`
	StartDate  time.Time `json:"startDate" gorm:"type:date;not null"`
	EndDate    time.Time `json:"endDate" gorm:"type:date;not null"`
	Reason     string    `json:"reason" gorm:"type:text"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Timesheet - учёт рабочего времени за день
type Timesheet struct {
	TenantModel
	EmployeeID  int64     `json:"employeeId" gorm:"not null;index"`
	Date        time.Time `json:"date" gorm:"column:work_date;type:date;not null"`
	HoursWorked float64   `json:"hoursWorked" gorm:"not null"`
	Project     string    `json:"project" gorm:"type:varchar(200)"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"type:varchar(20);not null"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Timesheet) TableName() string {
	return "timesheets"
}

// Announcement - объявление для всех сотрудников арендатора
type Announcement struct {
	TenantModel
	AuthorID    int64      `json:"authorId" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"type:varchar(300);not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	Priority    string     `json:"priority" gorm:"type:varchar(20);not null"`
	PublishDate time.Time  `json:"publishDate" gorm:"type:date;not null"`
	ExpiryDate  *time.Time `json:"expiryDate" gorm:"type:date"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName задаёт имя таблицы для GORM
func (Announcement) TableName() string {
	return "announcements"
}

// Recognition - благодарность одного сотрудника другому
type Recognition struct {
	TenantModel
	FromEmployeeID int64  `json:"fromEmployeeId" gorm:"not null;index"`
	ToEmployeeID   int64  `json:"toEmployeeId" gorm:"not null;index"`
	Category       string `json:"category" gorm:"type:varchar(30);not null"`
	Message        string `json:"message" gorm:"type:text;not null"`

	FromEmployee *Employee `json:"fromEmployee,omitempty" gorm:"foreignKey:FromEmployeeID"`
	ToEmployee   *Employee `json:"toEmployee,omitempty" gorm:"foreignKey:ToEmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Recognition) TableName() string {
	return "recognitions"
}

// OnboardingTask - задача адаптации нового сотрудника
type OnboardingTask struct {
	TenantModel
	EmployeeID  int64      `json:"employeeId" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"type:varchar(300);not null"`
	Description string     `json:"description" gorm:"type:text"`
	DueDate     *time.Time `json:"dueDate" gorm:"type:date"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (OnboardingTask) TableName() string {
	return "onboarding_tasks"
}

// Document - файл сотрудника; сам файл лежит во внешнем хранилище
type Document struct {
	TenantModel
	EmployeeID int64  `json:"employeeId" gorm:"not null;index"`
	Title      string `json:"title" gorm:"type:varchar(300);not null"`
	Category   string `json:"category" gorm:"type:varchar(30);not null"`
	FileName   string `json:"fileName" gorm:"type:varchar(300)"`
	FileURL    string `json:"fileUrl" gorm:"type:text"`
	StorageKey string `json:"storageKey" gorm:"type:varchar(500)"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Document) TableName() string {
	return "documents"
}
