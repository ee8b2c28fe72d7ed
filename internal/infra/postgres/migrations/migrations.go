package migrations

import (
	_ "embed"

	"github.com/uptrace/bun/migrate"
)

//go:embed 0001_create_questions.sql
var createQuestionsSQL string

//go:embed 0002_create_quizzes.sql
var createQuizzesSQL string

var Migrations = migrate.NewMigrations()
