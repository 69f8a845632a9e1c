package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type UserHandler struct {
	userService UserService
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type signupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.userService.RegisterStudent(r.Context(), &model.RegisterStudentInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, token, err := h.userService.Login(r.Context(), &model.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &loginResponse{Token: token, User: toUserResponse(user)})
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetMe(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type updateProfileRequest struct {
	FirstName      *string           `json:"first_name"`
	LastName       *string           `json:"last_name"`
	Email          *string           `json:"email"`
	PhoneNumber    *string           `json:"phone_number"`
	DateOfBirth    *time.Time        `json:"date_of_birth"`
	Gender         *model.Gender     `json:"gender"`
	Address        *string           `json:"address"`
	ProfilePhotoId *uuid.UUID        `json:"profile_photo_id"`
	StudentNumber  *string           `json:"student_number"`
	Department     *model.Department `json:"department"`
	Semester       *string           `json:"semester"`
	PreferredTrack *model.Track      `json:"preferred_track"`
	LearningGoal   *string           `json:"learning_goal"`
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), &model.UpdateProfileInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Address:        req.Address,
		ProfilePhotoId: req.ProfilePhotoId,
		StudentNumber:  req.StudentNumber,
		Department:     req.Department,
		Semester:       req.Semester,
		PreferredTrack: req.PreferredTrack,
		LearningGoal:   req.LearningGoal,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.userService.GetUserPublic(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserPublicResponse(user))
}

func (h *UserHandler) ListMentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := h.userService.ListMentors(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]*userPublicResponse, 0, len(mentors))
	for _, m := range mentors {
		out = append(out, toUserPublicResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}
