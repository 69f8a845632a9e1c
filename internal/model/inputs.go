package model

import (
	"time"

	"github.com/google/uuid"
)

type RegisterStudentInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Username string
	Password string
}

type UpdateProfileInput struct {
	FirstName      *string
	LastName       *string
	Email          *string
	PhoneNumber    *string
	DateOfBirth    *time.Time
	Gender         *Gender
	Address        *string
	ProfilePhotoId *uuid.UUID
	StudentNumber  *string
	Department     *Department
	Semester       *string
	PreferredTrack *Track
	LearningGoal   *string
}

type CreateCourseInput struct {
	Title       string
	Description string
	MentorId    uuid.UUID
	ImageFileId *uuid.UUID
}

type UpdateCourseInput struct {
	Title       *string
	Description *string
	ImageFileId *uuid.UUID
}

// CourseFilter narrows the catalog listing. Search matches course
// title, description and the mentor's name, case-insensitively.
type CourseFilter struct {
	Search   string
	MentorId uuid.UUID
}

type CreateLessonInput struct {
	CourseId uuid.UUID
	Title    string
	VideoURL *string
	Content  string
	Order    int32
}

type UpdateLessonInput struct {
	Title    *string
	VideoURL *string
	Content  *string
	Order    *int32
}

type CreateAssignmentInput struct {
	CourseId    uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
}

type SubmitAssignmentInput struct {
	AssignmentId uuid.UUID
	FileId       *uuid.UUID
}

type GradeSubmissionInput struct {
	SubmissionId uuid.UUID
	Marks        int32
}

type CreateQuizInput struct {
	CourseId    uuid.UUID
	Title       string
	Description string
	TotalMarks  int32
}

type CreateQuestionInput struct {
	QuizId uuid.UUID
	Text   string
	Order  int32
}

type CreateChoiceInput struct {
	QuestionId uuid.UUID
	Text       string
	IsCorrect  bool
}

// SubmitAnswersInput maps each answered question to the chosen choice.
// Unanswered questions are simply absent from the map.
type SubmitAnswersInput struct {
	QuizId  uuid.UUID
	Answers map[uuid.UUID]uuid.UUID
}

type RepositoryCreateUserInput struct {
	Id           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
	Role         Role      `db:"role"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
}

type RepositoryCreateSubmissionInput struct {
	Id           uuid.UUID  `db:"id"`
	AssignmentId uuid.UUID  `db:"assignment_id"`
	StudentId    uuid.UUID  `db:"student_id"`
	FileId       *uuid.UUID `db:"file_id"`
}

type RepositoryCreateQuizResultInput struct {
	Id        uuid.UUID `db:"id"`
	QuizId    uuid.UUID `db:"quiz_id"`
	StudentId uuid.UUID `db:"student_id"`
	Score     int32     `db:"score"`
}

type RepositoryCreateEnrollmentInput struct {
	Id        uuid.UUID `db:"id"`
	StudentId uuid.UUID `db:"student_id"`
	CourseId  uuid.UUID `db:"course_id"`
}
