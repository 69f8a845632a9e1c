package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/model"
	"github.com/farhananowshin/SkillBridge/internal/service"
)

type userResponse struct {
	Id             uuid.UUID         `json:"id"`
	Username       string            `json:"username"`
	Email          string            `json:"email"`
	Role           model.Role        `json:"role"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	PhoneNumber    *string           `json:"phone_number,omitempty"`
	DateOfBirth    *time.Time        `json:"date_of_birth,omitempty"`
	Gender         *model.Gender     `json:"gender,omitempty"`
	Address        *string           `json:"address,omitempty"`
	ProfilePhotoId *uuid.UUID        `json:"profile_photo_id,omitempty"`
	StudentNumber  *string           `json:"student_number,omitempty"`
	Department     *model.Department `json:"department,omitempty"`
	Semester       *string           `json:"semester,omitempty"`
	PreferredTrack *model.Track      `json:"preferred_track,omitempty"`
	LearningGoal   *string           `json:"learning_goal,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

func toUserResponse(u *model.User) *userResponse {
	return &userResponse{
		Id:             u.Id,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		PhoneNumber:    u.PhoneNumber,
		DateOfBirth:    u.DateOfBirth,
		Gender:         u.Gender,
		Address:        u.Address,
		ProfilePhotoId: u.ProfilePhotoId,
		StudentNumber:  u.StudentNumber,
		Department:     u.Department,
		Semester:       u.Semester,
		PreferredTrack: u.PreferredTrack,
		LearningGoal:   u.LearningGoal,
		CreatedAt:      u.CreatedAt,
	}
}

type userPublicResponse struct {
	Id        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Role      model.Role `json:"role"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
}

func toUserPublicResponse(u *model.UserPublic) *userPublicResponse {
	return &userPublicResponse{
		Id:        u.Id,
		Username:  u.Username,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type courseResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	MentorId    uuid.UUID  `json:"mentor_id"`
	ImageFileId *uuid.UUID `json:"image_file_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Enrolled    bool       `json:"enrolled"`
}

func toCourseResponse(c *model.Course) *courseResponse {
	return &courseResponse{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		MentorId:    c.MentorId,
		ImageFileId: c.ImageFileId,
		CreatedAt:   c.CreatedAt,
	}
}

func toCourseResponses(courses []*model.Course) []*courseResponse {
	out := make([]*courseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseResponse(c))
	}
	return out
}

type lessonResponse struct {
	Id       uuid.UUID `json:"id"`
	CourseId uuid.UUID `json:"course_id"`
	Title    string    `json:"title"`
	VideoURL *string   `json:"video_url,omitempty"`
	Content  string    `json:"content"`
	Order    int32     `json:"order"`
}

func toLessonResponse(l *model.Lesson) *lessonResponse {
	return &lessonResponse{
		Id:       l.Id,
		CourseId: l.CourseId,
		Title:    l.Title,
		VideoURL: l.VideoURL,
		Content:  l.Content,
		Order:    l.Order,
	}
}

type lessonPageResponse struct {
	Lesson   *lessonResponse `json:"lesson"`
	Previous *lessonResponse `json:"previous,omitempty"`
	Next     *lessonResponse `json:"next,omitempty"`
}

func toLessonPageResponse(p *service.LessonPage) *lessonPageResponse {
	resp := &lessonPageResponse{Lesson: toLessonResponse(p.Lesson)}
	if p.Previous != nil {
		resp.Previous = toLessonResponse(p.Previous)
	}
	if p.Next != nil {
		resp.Next = toLessonResponse(p.Next)
	}
	return resp
}

type assignmentResponse struct {
	Id          uuid.UUID `json:"id"`
	CourseId    uuid.UUID `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
}

func toAssignmentResponse(a *model.Assignment) *assignmentResponse {
	return &assignmentResponse{
		Id:          a.Id,
		CourseId:    a.CourseId,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
	}
}

type submissionResponse struct {
	Id           uuid.UUID  `json:"id"`
	AssignmentId uuid.UUID  `json:"assignment_id"`
	StudentId    uuid.UUID  `json:"student_id"`
	FileId       *uuid.UUID `json:"file_id,omitempty"`
	Marks        *int32     `json:"marks,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
}

func toSubmissionResponse(s *model.Submission) *submissionResponse {
	return &submissionResponse{
		Id:           s.Id,
		AssignmentId: s.AssignmentId,
		StudentId:    s.StudentId,
		FileId:       s.FileId,
		Marks:        s.Marks,
		SubmittedAt:  s.SubmittedAt,
	}
}

type quizResponse struct {
	Id          uuid.UUID `json:"id"`
	CourseId    uuid.UUID `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TotalMarks  int32     `json:"total_marks"`
}

func toQuizResponse(q *model.Quiz) *quizResponse {
	return &quizResponse{
		Id:          q.Id,
		CourseId:    q.CourseId,
		Title:       q.Title,
		Description: q.Description,
		TotalMarks:  q.TotalMarks,
	}
}

// choiceResponse deliberately omits the correctness flag: the taking
// view must not leak answers.
type choiceResponse struct {
	Id   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type questionResponse struct {
	Id      uuid.UUID         `json:"id"`
	Text    string            `json:"text"`
	Order   int32             `json:"order"`
	Choices []*choiceResponse `json:"choices"`
}

type quizDetailResponse struct {
	Quiz      *quizResponse       `json:"quiz"`
	Questions []*questionResponse `json:"questions"`
}

func toQuizDetailResponse(d *service.QuizDetail) *quizDetailResponse {
	questions := make([]*questionResponse, 0, len(d.Questions))
	for _, q := range d.Questions {
		choices := make([]*choiceResponse, 0, len(d.Choices[q.Id]))
		for _, c := range d.Choices[q.Id] {
			choices = append(choices, &choiceResponse{Id: c.Id, Text: c.Text})
		}
		questions = append(questions, &questionResponse{
			Id:      q.Id,
			Text:    q.Text,
			Order:   q.Order,
			Choices: choices,
		})
	}
	return &quizDetailResponse{Quiz: toQuizResponse(d.Quiz), Questions: questions}
}

type quizResultResponse struct {
	Id          uuid.UUID `json:"id"`
	QuizId      uuid.UUID `json:"quiz_id"`
	StudentId   uuid.UUID `json:"student_id"`
	Score       int32     `json:"score"`
	AttemptedAt time.Time `json:"attempted_at"`
}

func toQuizResultResponse(r *model.QuizResult) *quizResultResponse {
	return &quizResultResponse{
		Id:          r.Id,
		QuizId:      r.QuizId,
		StudentId:   r.StudentId,
		Score:       r.Score,
		AttemptedAt: r.AttemptedAt,
	}
}

type enrollmentResponse struct {
	Id         uuid.UUID `json:"id"`
	StudentId  uuid.UUID `json:"student_id"`
	CourseId   uuid.UUID `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

func toEnrollmentResponse(e *model.Enrollment) *enrollmentResponse {
	return &enrollmentResponse{
		Id:         e.Id,
		StudentId:  e.StudentId,
		CourseId:   e.CourseId,
		EnrolledAt: e.EnrolledAt,
	}
}

type eligibilityResponse struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

type dashboardResponse struct {
	Student     *userResponse         `json:"student"`
	Enrollments []*enrollmentResponse `json:"enrollments"`
	Submissions []*submissionResponse `json:"submissions"`
	QuizResults []*quizResultResponse `json:"quiz_results"`
}

func toDashboardResponse(d *service.Dashboard) *dashboardResponse {
	resp := &dashboardResponse{
		Student:     toUserResponse(d.Student),
		Enrollments: make([]*enrollmentResponse, 0, len(d.Enrollments)),
		Submissions: make([]*submissionResponse, 0, len(d.Submissions)),
		QuizResults: make([]*quizResultResponse, 0, len(d.QuizResults)),
	}
	for _, e := range d.Enrollments {
		resp.Enrollments = append(resp.Enrollments, toEnrollmentResponse(e))
	}
	for _, s := range d.Submissions {
		resp.Submissions = append(resp.Submissions, toSubmissionResponse(s))
	}
	for _, r := range d.QuizResults {
		resp.QuizResults = append(resp.QuizResults, toQuizResultResponse(r))
	}
	return resp
}
