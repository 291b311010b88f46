package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) *DbContext {
	t.Helper()

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("could not create db context: %v", err)
	}
	if err = dbCtx.Migrate(); err != nil {
		t.Fatalf("could not migrate db: %v", err)
	}
	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}

func addUser(t *testing.T, repo *Users, email string, role entities.Role) *entities.User {
	t.Helper()

	user := &entities.User{
		Email: email, Name: "Test", Surname: "User", Age: 30,
		Role: role, PasswordHash: "hash",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("could not add user: %v", err)
	}
	return user
}

func assertConflict(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func Test_UsersCreate_DuplicateEmail_ReturnsConflict(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)

	addUser(t, users, "taken@example.com", entities.RoleWorker)

	err := users.Create(context.Background(), &entities.User{
		Email: "taken@example.com", Name: "Other", Surname: "User", Age: 25,
		Role: entities.RoleEmployer, PasswordHash: "hash",
	})
	assertConflict(t, err)
}

func Test_UsersGetByEmail_UnknownEmail_ReturnsNil(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)

	user, err := users.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func Test_UsersGet_Pagination_ReturnsStableWindow(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)

	first := addUser(t, users, "a@example.com", entities.RoleWorker)
	second := addUser(t, users, "b@example.com", entities.RoleWorker)
	third := addUser(t, users, "c@example.com", entities.RoleWorker)

	assert.Greater(t, second.ID, first.ID)
	assert.Greater(t, third.ID, second.ID)

	page, err := users.Get(context.Background(), 2, 1)
	assert.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, second.ID, page[0].ID)
	assert.Equal(t, third.ID, page[1].ID)
}

func Test_CompaniesCreate_SameTitleSameOwner_ReturnsConflict(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	companies := NewCompaniesRepository(dbCtx.DB)

	owner := addUser(t, users, "owner@example.com", entities.RoleEmployer)

	first := &entities.Company{OwnerID: owner.ID, Title: "Acme", City: "Berlin"}
	assert.NoError(t, companies.Create(context.Background(), first))

	dup := &entities.Company{OwnerID: owner.ID, Title: "Acme", City: "Munich"}
	assertConflict(t, companies.Create(context.Background(), dup))
}

func Test_CompaniesCreate_SameTitleDifferentOwner_Succeeds(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	companies := NewCompaniesRepository(dbCtx.DB)

	first := addUser(t, users, "first@example.com", entities.RoleEmployer)
	second := addUser(t, users, "second@example.com", entities.RoleEmployer)

	assert.NoError(t, companies.Create(context.Background(), &entities.Company{OwnerID: first.ID, Title: "Acme"}))
	assert.NoError(t, companies.Create(context.Background(), &entities.Company{OwnerID: second.ID, Title: "Acme"}))
}

func Test_ResumesCreate_SecondResumeForOwner_ReturnsConflict(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	resumes := NewResumesRepository(dbCtx.DB)

	owner := addUser(t, users, "worker@example.com", entities.RoleWorker)

	first := &entities.Resume{OwnerID: owner.ID, Title: "Backend Developer"}
	assert.NoError(t, resumes.Create(context.Background(), first))

	second := &entities.Resume{OwnerID: owner.ID, Title: "Frontend Developer"}
	assertConflict(t, resumes.Create(context.Background(), second))
}

func Test_ResumesRoundTrip_ListFieldsSurviveStore(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	resumes := NewResumesRepository(dbCtx.DB)

	owner := addUser(t, users, "worker@example.com", entities.RoleWorker)

	created := &entities.Resume{
		OwnerID:   owner.ID,
		Title:     "Разработчик",
		Languages: entities.StringList{"русский", "english"},
		Skills:    entities.StringList{"Go", "SQL"},
	}
	assert.NoError(t, resumes.Create(context.Background(), created))

	loaded, err := resumes.GetByOwner(context.Background(), owner.ID)
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Equal(t, created.Languages, loaded.Languages)
	assert.Equal(t, created.Skills, loaded.Skills)
}

func Test_ApplicationsCreate_SameResumeAndJob_ReturnsConflict(t *testing.T) {

	dbCtx := newTestContext(t)
	applications := NewApplicationsRepository(dbCtx.DB)

	first := &entities.Application{ResumeID: 1, JobID: 1}
	assert.NoError(t, applications.Create(context.Background(), first))

	second := &entities.Application{ResumeID: 1, JobID: 1}
	assertConflict(t, applications.Create(context.Background(), second))
}

func Test_ApplicationsGetByResumeOwner_JoinsThroughResumes(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	resumes := NewResumesRepository(dbCtx.DB)
	applications := NewApplicationsRepository(dbCtx.DB)

	// two workers whose user id differs from their resume row id
	addUser(t, users, "padding@example.com", entities.RoleWorker)
	alice := addUser(t, users, "alice@example.com", entities.RoleWorker)
	bob := addUser(t, users, "bob@example.com", entities.RoleWorker)

	aliceResume := &entities.Resume{OwnerID: alice.ID, Title: "Alice"}
	assert.NoError(t, resumes.Create(context.Background(), aliceResume))
	bobResume := &entities.Resume{OwnerID: bob.ID, Title: "Bob"}
	assert.NoError(t, resumes.Create(context.Background(), bobResume))

	assert.NoError(t, applications.Create(context.Background(), &entities.Application{ResumeID: aliceResume.ID, JobID: 1}))
	assert.NoError(t, applications.Create(context.Background(), &entities.Application{ResumeID: bobResume.ID, JobID: 1}))

	mine, err := applications.GetByResumeOwner(context.Background(), alice.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, aliceResume.ID, mine[0].ResumeID)
}

func Test_ChatsCreate_SamePairTwice_ReturnsConflict(t *testing.T) {

	dbCtx := newTestContext(t)
	chats := NewChatsRepository(dbCtx.DB)

	assert.NoError(t, chats.Create(context.Background(), &entities.Chat{EmployerID: 1, WorkerID: 2}))
	assertConflict(t, chats.Create(context.Background(), &entities.Chat{EmployerID: 1, WorkerID: 2}))
}

func Test_ChatsGetMessages_ReturnsChronologicalOrder(t *testing.T) {

	dbCtx := newTestContext(t)
	chats := NewChatsRepository(dbCtx.DB)

	chat := &entities.Chat{EmployerID: 1, WorkerID: 2}
	assert.NoError(t, chats.Create(context.Background(), chat))

	for _, text := range []string{"first", "second", "third"} {
		assert.NoError(t, chats.CreateMessage(context.Background(), &entities.Message{
			ChatID: chat.ID, SenderID: 1, Text: text,
		}))
	}

	messages, err := chats.GetMessages(context.Background(), chat.ID)
	assert.NoError(t, err)
	assert.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "third", messages[2].Text)
}

func Test_JobsGet_MostRecentFirst(t *testing.T) {

	dbCtx := newTestContext(t)
	jobs := NewJobsRepository(dbCtx.DB)

	older := &entities.Job{CompanyID: 1, Name: "older", CreatedAt: time.Now().Add(-time.Hour)}
	assert.NoError(t, jobs.Create(context.Background(), older))
	newer := &entities.Job{CompanyID: 1, Name: "newer", CreatedAt: time.Now()}
	assert.NoError(t, jobs.Create(context.Background(), newer))

	page, err := jobs.Get(context.Background(), 1, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, "newer", page[0].Name)
}

func Test_JobsGetWithApplications_BuildsAggregate(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	companies := NewCompaniesRepository(dbCtx.DB)
	resumes := NewResumesRepository(dbCtx.DB)
	jobs := NewJobsRepository(dbCtx.DB)
	applications := NewApplicationsRepository(dbCtx.DB)
	ctx := context.Background()

	employer := addUser(t, users, "boss@example.com", entities.RoleEmployer)
	worker := addUser(t, users, "dev@example.com", entities.RoleWorker)

	company := &entities.Company{OwnerID: employer.ID, Title: "Acme"}
	assert.NoError(t, companies.Create(ctx, company))

	applied := &entities.Job{CompanyID: company.ID, Name: "Go Developer"}
	assert.NoError(t, jobs.Create(ctx, applied))
	unapplied := &entities.Job{CompanyID: company.ID, Name: "Rust Developer"}
	assert.NoError(t, jobs.Create(ctx, unapplied))

	resume := &entities.Resume{OwnerID: worker.ID, Title: "Go Dev", Skills: entities.StringList{"Go", "SQL"}}
	assert.NoError(t, resumes.Create(ctx, resume))

	message := "hire me"
	assert.NoError(t, applications.Create(ctx, &entities.Application{
		ResumeID: resume.ID, JobID: applied.ID, Message: &message,
	}))

	aggregates, err := jobs.GetWithApplications(ctx, []int{company.ID}, 100, 0)
	assert.NoError(t, err)
	assert.Len(t, aggregates, 1) // job without applications is excluded

	aggregate := aggregates[0]
	assert.Equal(t, applied.ID, aggregate.Job.ID)
	assert.Equal(t, 1, aggregate.ApplicationCount)
	assert.Len(t, aggregate.Applications, 1)

	detail := aggregate.Applications[0]
	assert.Equal(t, worker.ID, detail.ApplicantID)
	assert.Equal(t, worker.Email, detail.ApplicantEmail)
	assert.Equal(t, resume.ID, detail.Resume.ID)
	assert.Equal(t, entities.StringList{"Go", "SQL"}, detail.Resume.Skills)
	assert.NotNil(t, detail.Message)
	assert.Equal(t, "hire me", *detail.Message)
}

func Test_CachedUsers_SecondLookupSkipsStore(t *testing.T) {

	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)

	user := addUser(t, users, "cached@example.com", entities.RoleWorker)

	cached := NewCachedUsers(users)

	first, err := cached.GetByID(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.NotNil(t, first)

	// remove the row behind the cache's back: a hit proves the cache answered
	assert.NoError(t, dbCtx.DB.Delete(&entities.User{}, user.ID).Error)

	second, err := cached.GetByID(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.NotNil(t, second)
	assert.Equal(t, first.Email, second.Email)
}
