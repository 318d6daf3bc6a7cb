package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hrms-api/internal/auth"
	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/mailer"
	"github.com/hrms-api/internal/repository"
	"github.com/hrms-api/internal/repository/repotest"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newGoalService(t *testing.T) (*goalService, *gorm.DB) {
	t.Helper()
	db := repotest.NewDB(t)
	svc := NewGoalService(repository.NewGoalRepository(db), repository.NewEmployeeRepository(db)).(*goalService)
	svc.now = func() time.Time { return fixedNow }
	return svc, db
}

func TestGoalService_CreateRequiresFutureDueDate(t *testing.T) {
	svc, db := newGoalService(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	emp := repotest.SeedEmployee(t, db, tenant.ID, "jane")

	req := &dto.CreateGoalRequest{
		EmployeeID: emp.ID,
		Objective:  "Ship v2",
		Category:   "Project",
	}

	for _, due := range []string{"2026-03-10", "2026-03-09"} {
		req.DueDate = due
		_, err := svc.Create(ctx, tenant.ID, req)
		require.ErrorIs(t, err, domain.ErrDueDateNotFuture, due)
	}

	req.DueDate = "2026-03-11"
	goal, err := svc.Create(ctx, tenant.ID, req)
	require.NoError(t, err)
	require.Equal(t, domain.GoalStatusNotStarted, goal.Status)
	require.Equal(t, domain.GoalPriorityMedium, goal.Priority)
	require.Equal(t, []string{}, goal.KeyResults)
	require.Equal(t, tenant.ID, goal.TenantID)
	require.NotNil(t, goal.Employee)
}

func TestGoalService_CreateUnknownEmployee(t *testing.T) {
	svc, db := newGoalService(t)
	acme := repotest.SeedTenant(t, db, "Acme")
	globex := repotest.SeedTenant(t, db, "Globex")
	foreign := repotest.SeedEmployee(t, db, globex.ID, "hank")

	_, err := svc.Create(context.Background(), acme.ID, &dto.CreateGoalRequest{
		EmployeeID: foreign.ID,
		Objective:  "Steal",
		DueDate:    "2027-01-01",
		Category:   "Personal",
	})
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestGoalService_UpdatePastDueDate(t *testing.T) {
	svc, db := newGoalService(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	emp := repotest.SeedEmployee(t, db, tenant.ID, "jane")

	goal, err := svc.Create(ctx, tenant.ID, &dto.CreateGoalRequest{
		EmployeeID: emp.ID,
		Objective:  "Ship v2",
		DueDate:    "2026-06-01",
		Category:   "Project",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, tenant.ID, goal.ID, &dto.UpdateGoalRequest{DueDate: ptr("2026-01-01")})
	require.ErrorIs(t, err, domain.ErrPastDueDateNotAllowed)

	updated, err := svc.Update(ctx, tenant.ID, goal.ID, &dto.UpdateGoalRequest{
		DueDate: ptr("2026-01-01"),
		Status:  ptr(domain.GoalStatusCompleted),
	})
	require.NoError(t, err)
	require.Equal(t, domain.GoalStatusCompleted, updated.Status)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), updated.DueDate.UTC())

	// статус уже Completed, передавать его повторно не нужно
	_, err = svc.Update(ctx, tenant.ID, goal.ID, &dto.UpdateGoalRequest{DueDate: ptr("2025-12-31")})
	require.NoError(t, err)
}

func TestGoalService_UpdateKeyResults(t *testing.T) {
	svc, db := newGoalService(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	emp := repotest.SeedEmployee(t, db, tenant.ID, "jane")

	goal, err := svc.Create(ctx, tenant.ID, &dto.CreateGoalRequest{
		EmployeeID: emp.ID,
		Objective:  "Ship v2",
		DueDate:    "2026-06-01",
		Category:   "Project",
	})
	require.NoError(t, err)

	for _, raw := range []string{`"one"`, `{"a":1}`, `42`, `[1,2]`} {
		_, err = svc.Update(ctx, tenant.ID, goal.ID, &dto.UpdateGoalRequest{KeyResults: json.RawMessage(raw)})
		require.ErrorIs(t, err, domain.ErrInvalidKeyResults, raw)
	}

	updated, err := svc.Update(ctx, tenant.ID, goal.ID, &dto.UpdateGoalRequest{
		KeyResults: json.RawMessage(`["NPS 40", "Churn < 2%"]`),
		Objective:  ptr("Ship v2.1"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"NPS 40", "Churn < 2%"}, updated.KeyResults)
	require.Equal(t, "Ship v2.1", updated.Objective)
	require.Equal(t, "Project", updated.Category)
}

func TestGoalService_DeleteMissing(t *testing.T) {
	svc, db := newGoalService(t)
	tenant := repotest.SeedTenant(t, db, "Acme")

	err := svc.Delete(context.Background(), tenant.ID, 999)
	require.ErrorIs(t, err, domain.ErrGoalNotFound)
}

type recordingMailer struct {
	sent []mailer.WelcomeMessage
	err  error
}

func (m *recordingMailer) SendWelcome(_ context.Context, msg mailer.WelcomeMessage) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func TestEmployeeService_CreateSendsWelcome(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")

	m := &recordingMailer{}
	svc := NewEmployeeService(repository.NewEmployeeRepository(db), repository.NewTenantRepository(db), m, discardLogger())

	emp, err := svc.Create(ctx, tenant.ID, &dto.CreateEmployeeRequest{
		Name:     "Jane Doe",
		Email:    " Jane@Acme.com ",
		HireDate: "2026-02-01",
	})
	require.NoError(t, err)
	require.Equal(t, "jane@acme.com", emp.Email)
	require.Equal(t, domain.EmployeeStatusActive, emp.Status)
	require.NotNil(t, emp.HireDate)

	require.Len(t, m.sent, 1)
	require.Equal(t, mailer.WelcomeMessage{To: "jane@acme.com", EmployeeName: "Jane Doe", TenantName: "Acme"}, m.sent[0])

	_, err = svc.Create(ctx, tenant.ID, &dto.CreateEmployeeRequest{Name: "Copy", Email: "JANE@acme.com"})
	require.ErrorIs(t, err, domain.ErrDuplicateEmployeeEmail)
}

func TestEmployeeService_MailFailureIsNotFatal(t *testing.T) {
	db := repotest.NewDB(t)
	tenant := repotest.SeedTenant(t, db, "Acme")

	m := &recordingMailer{err: errors.New("smtp down")}
	svc := NewEmployeeService(repository.NewEmployeeRepository(db), repository.NewTenantRepository(db), m, discardLogger())

	emp, err := svc.Create(context.Background(), tenant.ID, &dto.CreateEmployeeRequest{Name: "Jane", Email: "jane@acme.com"})
	require.NoError(t, err)
	require.NotZero(t, emp.ID)
}

func newAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := repotest.NewDB(t)
	tokens, err := auth.NewTokenManager("service-test-secret-long-enough-for-hs256")
	require.NoError(t, err)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewTenantRepository(db),
		repository.NewEmployeeRepository(db),
		tokens,
	)
	return svc, db
}

func TestAuthService_SetupAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.SetupTenantAdmin(ctx, &dto.SetupTenantAdminRequest{
		TenantName:    "Acme",
		AdminEmail:    "a@acme.com",
		AdminPassword: "pw",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, domain.RoleAdmin, resp.User.Role)
	require.NotNil(t, resp.User.Employee)
	require.Equal(t, domain.AdminDepartment, resp.User.Employee.Department)
	require.Equal(t, domain.AdminJobTitle, resp.User.Employee.Role)
	require.Equal(t, "a", resp.User.Employee.Name)

	_, err = svc.SetupTenantAdmin(ctx, &dto.SetupTenantAdminRequest{
		TenantName: "acme", AdminEmail: "b@acme.com", AdminPassword: "pw",
	})
	require.ErrorIs(t, err, domain.ErrDuplicateTenantName)

	_, err = svc.SetupTenantAdmin(ctx, &dto.SetupTenantAdminRequest{
		TenantName: "Globex", AdminEmail: "A@acme.com", AdminPassword: "pw",
	})
	require.ErrorIs(t, err, domain.ErrDuplicateUserEmail)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@acme.com", Password: "pw"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	require.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "a@acme.com", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@acme.com", Password: "pw"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginInactiveTenant(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.SetupTenantAdmin(ctx, &dto.SetupTenantAdminRequest{
		TenantName: "Acme", AdminEmail: "a@acme.com", AdminPassword: "pw",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&domain.Tenant{}).
		Where("id = ?", resp.User.TenantID).
		Update("status", domain.TenantStatusInactive).Error)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "a@acme.com", Password: "pw"})
	require.ErrorIs(t, err, domain.ErrTenantInactive)
}

func TestAuthService_CreateUser(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.SetupTenantAdmin(ctx, &dto.SetupTenantAdminRequest{
		TenantName: "Acme", AdminEmail: "a@acme.com", AdminPassword: "pw",
	})
	require.NoError(t, err)
	tenantID := resp.User.TenantID
	emp := repotest.SeedEmployee(t, db, tenantID, "jane")

	user, err := svc.CreateUser(ctx, tenantID, &dto.CreateUserRequest{
		Email: "jane@acme.com", Password: "password1", Role: domain.RoleEmployee, EmployeeID: &emp.ID,
	})
	require.NoError(t, err)
	require.Equal(t, emp.ID, *user.EmployeeID)

	_, err = svc.CreateUser(ctx, tenantID, &dto.CreateUserRequest{
		Email: "jane2@acme.com", Password: "password1", Role: domain.RoleEmployee, EmployeeID: &emp.ID,
	})
	require.ErrorIs(t, err, domain.ErrEmployeeAlreadyLinked)

	_, err = svc.CreateUser(ctx, tenantID, &dto.CreateUserRequest{
		Email: "jane@acme.com", Password: "password1", Role: domain.RoleHR,
	})
	require.ErrorIs(t, err, domain.ErrDuplicateUserEmail)

	profile, err := svc.Profile(ctx, tenantID, user.ID)
	require.NoError(t, err)
	require.Equal(t, "jane", profile.Employee.Name)
}

func TestLeaveRequestService_DateOrder(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	emp := repotest.SeedEmployee(t, db, tenant.ID, "jane")
	svc := NewLeaveRequestService(repository.NewLeaveRequestRepository(db), repository.NewEmployeeRepository(db))

	_, err := svc.Create(ctx, tenant.ID, &dto.CreateLeaveRequestRequest{
		EmployeeID: emp.ID, Type: domain.LeaveTypeVacation, StartDate: "2026-05-10", EndDate: "2026-05-01",
	})
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)

	leave, err := svc.Create(ctx, tenant.ID, &dto.CreateLeaveRequestRequest{
		EmployeeID: emp.ID, Type: domain.LeaveTypeVacation, StartDate: "2026-05-01", EndDate: "2026-05-10",
	})
	require.NoError(t, err)
	require.Equal(t, domain.LeaveStatusPending, leave.Status)

	// конец раньше сохранённого начала
	_, err = svc.Update(ctx, tenant.ID, leave.ID, &dto.UpdateLeaveRequestRequest{EndDate: ptr("2026-04-30")})
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)

	approved, err := svc.Update(ctx, tenant.ID, leave.ID, &dto.UpdateLeaveRequestRequest{Status: ptr(domain.LeaveStatusApproved)})
	require.NoError(t, err)
	require.Equal(t, domain.LeaveStatusApproved, approved.Status)
	require.Equal(t, "jane", approved.Employee.Name)
}

func TestAnnouncementService_Defaults(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	svc := NewAnnouncementService(repository.NewAnnouncementRepository(db)).(*announcementService)
	svc.now = func() time.Time { return fixedNow }

	a, err := svc.Create(ctx, tenant.ID, 5, &dto.CreateAnnouncementRequest{Title: "Hi", Content: "Hello"})
	require.NoError(t, err)
	require.Equal(t, domain.AnnouncementPriorityNormal, a.Priority)
	require.Equal(t, domain.Today(fixedNow), a.PublishDate)
	require.Equal(t, int64(5), a.AuthorID)

	_, err = svc.Create(ctx, tenant.ID, 5, &dto.CreateAnnouncementRequest{
		Title: "Hi", Content: "Hello", PublishDate: "2026-03-10", ExpiryDate: "2026-03-09",
	})
	require.ErrorIs(t, err, domain.ErrExpiryBeforePublish)

	_, err = svc.Create(ctx, tenant.ID, 5, &dto.CreateAnnouncementRequest{
		Title: "Later", Content: "Soon", PublishDate: "2026-04-01",
	})
	require.NoError(t, err)

	active, err := svc.List(ctx, tenant.ID, dto.AnnouncementListQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "Hi", active[0].Title)
}

func TestRecognitionAndReview_SelfReference(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	jane := repotest.SeedEmployee(t, db, tenant.ID, "jane")
	employees := repository.NewEmployeeRepository(db)

	recognitions := NewRecognitionService(repository.NewRecognitionRepository(db), employees)
	_, err := recognitions.Create(ctx, tenant.ID, &dto.CreateRecognitionRequest{
		FromEmployeeID: jane.ID, ToEmployeeID: jane.ID, Category: "Teamwork", Message: "me",
	})
	require.ErrorIs(t, err, domain.ErrSelfRecognition)

	reviews := NewReviewService(repository.NewReviewRepository(db), employees)
	_, err = reviews.Create(ctx, tenant.ID, &dto.CreateReviewRequest{
		EmployeeID: jane.ID, ReviewerID: 999, ReviewPeriod: "Q1", ReviewDate: "2026-03-31", Rating: 4,
	})
	require.ErrorIs(t, err, domain.ErrReviewerNotFound)

	_, err = reviews.Create(ctx, tenant.ID, &dto.CreateReviewRequest{
		EmployeeID: jane.ID, ReviewerID: jane.ID, ReviewPeriod: "Q1", ReviewDate: "2026-03-31", Rating: 4,
	})
	require.ErrorIs(t, err, domain.ErrSelfReview)
}

type fakeStorage struct{}

func (fakeStorage) PresignUpload(_ context.Context, key string) (string, error) {
	return "https://s3.local/put/" + key, nil
}

func (fakeStorage) PresignDownload(_ context.Context, key string) (string, error) {
	return "https://s3.local/get/" + key, nil
}

func TestDocumentService_StorageFlow(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	jane := repotest.SeedEmployee(t, db, tenant.ID, "jane")
	docs := repository.NewDocumentRepository(db)
	employees := repository.NewEmployeeRepository(db)

	svc := NewDocumentService(docs, employees, fakeStorage{})

	upload, err := svc.UploadURL(ctx, tenant.ID, &dto.UploadURLRequest{FileName: "contract.pdf"})
	require.NoError(t, err)
	require.Contains(t, upload.URL, upload.StorageKey)

	_, err = svc.Create(ctx, tenant.ID, &dto.CreateDocumentRequest{
		EmployeeID: jane.ID, Title: "Contract", Category: "Contract",
		StorageKey: "tenants/999/documents/x/contract.pdf",
	})
	require.ErrorIs(t, err, domain.ErrInvalidStorageKey)

	doc, err := svc.Create(ctx, tenant.ID, &dto.CreateDocumentRequest{
		EmployeeID: jane.ID, Title: "Contract", Category: "Contract",
		FileName: "contract.pdf", StorageKey: upload.StorageKey,
	})
	require.NoError(t, err)

	download, err := svc.DownloadURL(ctx, tenant.ID, doc.ID)
	require.NoError(t, err)
	require.Equal(t, "https://s3.local/get/"+upload.StorageKey, download.URL)

	plain, err := svc.Create(ctx, tenant.ID, &dto.CreateDocumentRequest{
		EmployeeID: jane.ID, Title: "Policy", Category: "Policy",
	})
	require.NoError(t, err)
	_, err = svc.DownloadURL(ctx, tenant.ID, plain.ID)
	require.ErrorIs(t, err, domain.ErrNoStoredFile)

	noStorage := NewDocumentService(docs, employees, nil)
	_, err = noStorage.UploadURL(ctx, tenant.ID, &dto.UploadURLRequest{FileName: "x.pdf"})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestTenantService_UpdateCurrent(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	acme := repotest.SeedTenant(t, db, "Acme")
	repotest.SeedTenant(t, db, "Globex")
	svc := NewTenantService(repository.NewTenantRepository(db))

	_, err := svc.UpdateCurrent(ctx, acme.ID, &dto.UpdateTenantRequest{Name: ptr("globex")})
	require.ErrorIs(t, err, domain.ErrDuplicateTenantName)

	updated, err := svc.UpdateCurrent(ctx, acme.ID, &dto.UpdateTenantRequest{
		Name:         ptr("Acme Corp"),
		ContactEmail: ptr("HR@acme.com"),
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", updated.Name)
	require.Equal(t, "hr@acme.com", updated.ContactEmail)

	current, err := svc.GetCurrent(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", current.Name)
	require.Equal(t, domain.TenantStatusActive, current.Status)
}

func TestEmployeeService_UpdateMergesAndChecksEmail(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	jane := repotest.SeedEmployee(t, db, tenant.ID, "jane")
	repotest.SeedEmployee(t, db, tenant.ID, "bob")
	svc := NewEmployeeService(repository.NewEmployeeRepository(db), repository.NewTenantRepository(db), &recordingMailer{}, discardLogger())

	_, err := svc.Update(ctx, tenant.ID, jane.ID, &dto.UpdateEmployeeRequest{Email: ptr("Bob@Example.com")})
	require.ErrorIs(t, err, domain.ErrDuplicateEmployeeEmail)

	// собственный email не считается дублем
	updated, err := svc.Update(ctx, tenant.ID, jane.ID, &dto.UpdateEmployeeRequest{
		Email:  ptr("JANE@example.com"),
		Status: ptr(domain.EmployeeStatusOnLeave),
	})
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", updated.Email)
	require.Equal(t, domain.EmployeeStatusOnLeave, updated.Status)
	require.Equal(t, "Engineering", updated.Department)
	require.Equal(t, "jane", updated.Name)
}

func TestReviewService_UpdateReviewer(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	acme := repotest.SeedTenant(t, db, "Acme")
	globex := repotest.SeedTenant(t, db, "Globex")
	jane := repotest.SeedEmployee(t, db, acme.ID, "jane")
	bob := repotest.SeedEmployee(t, db, acme.ID, "bob")
	carol := repotest.SeedEmployee(t, db, acme.ID, "carol")
	foreign := repotest.SeedEmployee(t, db, globex.ID, "hank")
	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewEmployeeRepository(db))

	review, err := svc.Create(ctx, acme.ID, &dto.CreateReviewRequest{
		EmployeeID: jane.ID, ReviewerID: bob.ID, ReviewPeriod: "Q1", ReviewDate: "2026-03-31",
		Rating: 3, Comments: "solid quarter",
	})
	require.NoError(t, err)
	require.Equal(t, domain.ReviewStatusDraft, review.Status)

	_, err = svc.Update(ctx, acme.ID, review.ID, &dto.UpdateReviewRequest{ReviewerID: &jane.ID})
	require.ErrorIs(t, err, domain.ErrSelfReview)

	_, err = svc.Update(ctx, acme.ID, review.ID, &dto.UpdateReviewRequest{ReviewerID: &foreign.ID})
	require.ErrorIs(t, err, domain.ErrReviewerNotFound)

	updated, err := svc.Update(ctx, acme.ID, review.ID, &dto.UpdateReviewRequest{
		ReviewerID: &carol.ID,
		Rating:     ptr(5),
	})
	require.NoError(t, err)
	require.Equal(t, carol.ID, updated.ReviewerID)
	require.Equal(t, "carol", updated.Reviewer.Name)
	require.Equal(t, 5, updated.Rating)
	require.Equal(t, "Q1", updated.ReviewPeriod)
	require.Equal(t, "solid quarter", updated.Comments)
}

func TestAnnouncementService_UpdateRechecksExpiry(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	svc := NewAnnouncementService(repository.NewAnnouncementRepository(db)).(*announcementService)
	svc.now = func() time.Time { return fixedNow }

	a, err := svc.Create(ctx, tenant.ID, 5, &dto.CreateAnnouncementRequest{
		Title: "Offsite", Content: "Plan", PublishDate: "2026-03-10", ExpiryDate: "2026-03-20",
	})
	require.NoError(t, err)

	// новая дата публикации позже сохранённого срока действия
	_, err = svc.Update(ctx, tenant.ID, a.ID, &dto.UpdateAnnouncementRequest{PublishDate: ptr("2026-03-25")})
	require.ErrorIs(t, err, domain.ErrExpiryBeforePublish)

	_, err = svc.Update(ctx, tenant.ID, a.ID, &dto.UpdateAnnouncementRequest{ExpiryDate: ptr("2026-03-01")})
	require.ErrorIs(t, err, domain.ErrExpiryBeforePublish)

	updated, err := svc.Update(ctx, tenant.ID, a.ID, &dto.UpdateAnnouncementRequest{
		PublishDate: ptr("2026-03-25"),
		ExpiryDate:  ptr("2026-04-01"),
	})
	require.NoError(t, err)
	require.Equal(t, "Offsite", updated.Title)
	require.Equal(t, int64(5), updated.AuthorID)
	require.Equal(t, time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), updated.PublishDate.UTC())
}

func TestDocumentService_UpdateStorageKey(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	jane := repotest.SeedEmployee(t, db, tenant.ID, "jane")
	svc := NewDocumentService(repository.NewDocumentRepository(db), repository.NewEmployeeRepository(db), fakeStorage{})

	doc, err := svc.Create(ctx, tenant.ID, &dto.CreateDocumentRequest{
		EmployeeID: jane.ID, Title: "Policy", Category: "Policy",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, tenant.ID, doc.ID, &dto.UpdateDocumentRequest{
		StorageKey: ptr("tenants/999/documents/x/policy.pdf"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidStorageKey)

	stored, err := svc.GetByID(ctx, tenant.ID, doc.ID)
	require.NoError(t, err)
	require.Empty(t, stored.StorageKey)

	upload, err := svc.UploadURL(ctx, tenant.ID, &dto.UploadURLRequest{FileName: "policy.pdf"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, tenant.ID, doc.ID, &dto.UpdateDocumentRequest{
		StorageKey: &upload.StorageKey,
		FileName:   ptr("policy.pdf"),
	})
	require.NoError(t, err)
	require.Equal(t, upload.StorageKey, updated.StorageKey)
	require.Equal(t, "Policy", updated.Title)
	require.Equal(t, "Policy", updated.Category)
}

func TestRecordServices_UpdateKeepsUntouchedFields(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	tenant := repotest.SeedTenant(t, db, "Acme")
	jane := repotest.SeedEmployee(t, db, tenant.ID, "jane")
	bob := repotest.SeedEmployee(t, db, tenant.ID, "bob")
	employees := repository.NewEmployeeRepository(db)

	timesheets := NewTimesheetService(repository.NewTimesheetRepository(db), employees)
	ts, err := timesheets.Create(ctx, tenant.ID, &dto.CreateTimesheetRequest{
		EmployeeID: jane.ID, Date: "2026-03-02", HoursWorked: 7.5, Project: "Payroll",
	})
	require.NoError(t, err)
	tsUpdated, err := timesheets.Update(ctx, tenant.ID, ts.ID, &dto.UpdateTimesheetRequest{HoursWorked: ptr(8.0)})
	require.NoError(t, err)
	require.Equal(t, 8.0, tsUpdated.HoursWorked)
	require.Equal(t, "Payroll", tsUpdated.Project)
	require.Equal(t, domain.TimesheetStatusDraft, tsUpdated.Status)

	recognitions := NewRecognitionService(repository.NewRecognitionRepository(db), employees)
	rec, err := recognitions.Create(ctx, tenant.ID, &dto.CreateRecognitionRequest{
		FromEmployeeID: bob.ID, ToEmployeeID: jane.ID, Category: "Teamwork", Message: "Thanks",
	})
	require.NoError(t, err)
	recUpdated, err := recognitions.Update(ctx, tenant.ID, rec.ID, &dto.UpdateRecognitionRequest{Message: ptr("Thanks again")})
	require.NoError(t, err)
	require.Equal(t, "Thanks again", recUpdated.Message)
	require.Equal(t, "Teamwork", recUpdated.Category)
	require.Equal(t, jane.ID, recUpdated.ToEmployeeID)

	tasks := NewOnboardingTaskService(repository.NewOnboardingTaskRepository(db), employees)
	task, err := tasks.Create(ctx, tenant.ID, &dto.CreateOnboardingTaskRequest{
		EmployeeID: jane.ID, Title: "Laptop setup", DueDate: "2026-03-20",
	})
	require.NoError(t, err)
	require.Equal(t, domain.OnboardingStatusPending, task.Status)
	taskUpdated, err := tasks.Update(ctx, tenant.ID, task.ID, &dto.UpdateOnboardingTaskRequest{Status: ptr("Completed")})
	require.NoError(t, err)
	require.Equal(t, "Completed", taskUpdated.Status)
	require.Equal(t, "Laptop setup", taskUpdated.Title)
	require.NotNil(t, taskUpdated.DueDate)
}
