package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/maxaizer/job-platform/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	for _, model := range []any{
		entities.User{}, entities.Company{}, entities.Resume{},
		entities.Job{}, entities.Application{}, entities.Chat{}, entities.Message{},
	} {
		if err := c.DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Pair uniqueness the tag syntax can't express; these back the
	// conflict checks done inside transactions.
	if err := c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_company_owner_title ON companies (owner_id, title); " +
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_application_resume_job ON applications (resume_id, job_id); " +
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_chat_employer_worker ON chats (employer_id, worker_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create unique indexes: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

// isDuplicate reports whether err is a unique-constraint violation. The
// string check covers sqlite errors the gorm translator misses.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
