package data

import (
	"fmt"
	"strings"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

var ErrNoFieldsToUpdate = fmt.Errorf("no fields to update")

func buildUserUpdateQuery(input *model.UpdateProfileInput) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	add := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if input.FirstName != nil {
		add("first_name", input.FirstName)
	}
	if input.LastName != nil {
		add("last_name", input.LastName)
	}
	if input.Email != nil {
		add("email", input.Email)
	}
	if input.PhoneNumber != nil {
		add("phone_number", input.PhoneNumber)
	}
	if input.DateOfBirth != nil {
		add("date_of_birth", input.DateOfBirth)
	}
	if input.Gender != nil {
		add("gender", input.Gender)
	}
	if input.Address != nil {
		add("address", input.Address)
	}
	if input.ProfilePhotoId != nil {
		add("profile_photo_id", input.ProfilePhotoId)
	}
	if input.StudentNumber != nil {
		add("student_number", input.StudentNumber)
	}
	if input.Department != nil {
		add("department", input.Department)
	}
	if input.Semester != nil {
		add("semester", input.Semester)
	}
	if input.PreferredTrack != nil {
		add("preferred_track", input.PreferredTrack)
	}
	if input.LearningGoal != nil {
		add("learning_goal", input.LearningGoal)
	}

	if len(set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	set = append(set, "edited_at = now()")

	query := fmt.Sprintf(
		`
UPDATE users
SET %s
WHERE id = $%d
RETURNING %s
`,
		strings.Join(set, ", "),
		argIdx,
		userColumns,
	)
	return query, args, nil
}

func buildCourseUpdateQuery(input *model.UpdateCourseInput) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	if input.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, input.Title)
		argIdx++
	}
	if input.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, input.Description)
		argIdx++
	}
	if input.ImageFileId != nil {
		set = append(set, fmt.Sprintf("image_file_id = $%d", argIdx))
		args = append(args, input.ImageFileId)
		argIdx++
	}

	if len(set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(
		`
UPDATE courses
SET %s
WHERE id = $%d
RETURNING id, title, description, mentor_id, image_file_id, created_at
`,
		strings.Join(set, ", "),
		argIdx,
	)
	return query, args, nil
}

// buildLessonUpdateQuery always rewrites video_url: the normalizer
// re-derives the canonical form on every save, including when the
// caller clears it.
func buildLessonUpdateQuery(input *model.UpdateLessonInput, videoURL *string) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	if input.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, input.Title)
		argIdx++
	}
	if input.Content != nil {
		set = append(set, fmt.Sprintf("content = $%d", argIdx))
		args = append(args, input.Content)
		argIdx++
	}
	if input.Order != nil {
		set = append(set, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, input.Order)
		argIdx++
	}

	set = append(set, fmt.Sprintf("video_url = $%d", argIdx))
	args = append(args, videoURL)
	argIdx++

	query := fmt.Sprintf(
		`
UPDATE lessons
SET %s
WHERE id = $%d
RETURNING id, course_id, title, video_url, content, position
`,
		strings.Join(set, ", "),
		argIdx,
	)
	return query, args, nil
}
