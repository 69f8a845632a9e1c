package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleMentor || r == RoleAdmin
}

func RoleFromString(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

type Department string

const (
	DepartmentCSE   Department = "CSE"
	DepartmentSWE   Department = "SWE"
	DepartmentEEE   Department = "EEE"
	DepartmentBBA   Department = "BBA"
	DepartmentOther Department = "OTHER"
)

func (d Department) IsValid() bool {
	switch d {
	case DepartmentCSE, DepartmentSWE, DepartmentEEE, DepartmentBBA, DepartmentOther:
		return true
	default:
		return false
	}
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

type Track string

const (
	TrackWeb     Track = "web"
	TrackData    Track = "data"
	TrackNetwork Track = "network"
	TrackApp     Track = "app"
)

func (t Track) IsValid() bool {
	return t == TrackWeb || t == TrackData || t == TrackNetwork || t == TrackApp
}

type User struct {
	Id             uuid.UUID   `db:"id"`
	Username       string      `db:"username"`
	Email          string      `db:"email"`
	PasswordHash   []byte      `db:"password_hash"`
	Role           Role        `db:"role"`
	FirstName      string      `db:"first_name"`
	LastName       string      `db:"last_name"`
	PhoneNumber    *string     `db:"phone_number"`
	DateOfBirth    *time.Time  `db:"date_of_birth"`
	Gender         *Gender     `db:"gender"`
	Address        *string     `db:"address"`
	ProfilePhotoId *uuid.UUID  `db:"profile_photo_id"`
	StudentNumber  *string     `db:"student_number"`
	Department     *Department `db:"department"`
	Semester       *string     `db:"semester"`
	PreferredTrack *Track      `db:"preferred_track"`
	LearningGoal   *string     `db:"learning_goal"`
	CreatedAt      time.Time   `db:"created_at"`
	EditedAt       time.Time   `db:"edited_at"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type UserPublic struct {
	Id        uuid.UUID
	Username  string
	Role      Role
	FirstName string
	LastName  string
}

func (u *User) Public() *UserPublic {
	return &UserPublic{
		Id:        u.Id,
		Username:  u.Username,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type Course struct {
	Id          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	MentorId    uuid.UUID  `db:"mentor_id"`
	ImageFileId *uuid.UUID `db:"image_file_id"`
	CreatedAt   time.Time  `db:"created_at"`
}

type Lesson struct {
	Id       uuid.UUID `db:"id"`
	CourseId uuid.UUID `db:"course_id"`
	Title    string    `db:"title"`
	VideoURL *string   `db:"video_url"`
	Content  string    `db:"content"`
	Order    int32     `db:"position"`
}

type Assignment struct {
	Id          uuid.UUID `db:"id"`
	CourseId    uuid.UUID `db:"course_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
}

type Submission struct {
	Id           uuid.UUID  `db:"id"`
	AssignmentId uuid.UUID  `db:"assignment_id"`
	StudentId    uuid.UUID  `db:"student_id"`
	FileId       *uuid.UUID `db:"file_id"`
	Marks        *int32     `db:"marks"`
	SubmittedAt  time.Time  `db:"submitted_at"`
}

type Quiz struct {
	Id          uuid.UUID `db:"id"`
	CourseId    uuid.UUID `db:"course_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	// TotalMarks is descriptive metadata shown to students. Scoring
	// always awards one point per correct answer.
	TotalMarks int32 `db:"total_marks"`
}

type Question struct {
	Id     uuid.UUID `db:"id"`
	QuizId uuid.UUID `db:"quiz_id"`
	Text   string    `db:"text"`
	Order  int32     `db:"position"`
}

type Choice struct {
	Id         uuid.UUID `db:"id"`
	QuestionId uuid.UUID `db:"question_id"`
	Text       string    `db:"text"`
	IsCorrect  bool      `db:"is_correct"`
}

type QuizResult struct {
	Id          uuid.UUID `db:"id"`
	QuizId      uuid.UUID `db:"quiz_id"`
	StudentId   uuid.UUID `db:"student_id"`
	Score       int32     `db:"score"`
	AttemptedAt time.Time `db:"attempted_at"`
}

type Enrollment struct {
	Id         uuid.UUID `db:"id"`
	StudentId  uuid.UUID `db:"student_id"`
	CourseId   uuid.UUID `db:"course_id"`
	EnrolledAt time.Time `db:"enrolled_at"`
}

type File struct {
	Id         uuid.UUID `db:"id"`
	OwnerId    uuid.UUID `db:"owner_id"`
	Filename   string    `db:"filename"`
	BucketKey  string    `db:"bucket_key"`
	UploadedAt time.Time `db:"uploaded_at"`
}
