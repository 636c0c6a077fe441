package controllers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"docushop/errs"
	"docushop/models"
	"docushop/store"
	"docushop/utils"
)

const bcryptCost = 10

// UserController handles account requests.
type UserController struct {
	log   zerolog.Logger
	users store.UserStore
}

func NewUserController(log zerolog.Logger, users store.UserStore) *UserController {
	return &UserController{log: log, users: users}
}

type registerRequest struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

type userSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Register handles POST /users/register.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	exists, err := uc.users.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}
	if exists {
		utils.RespondError(w, uc.log, errs.Validation("email or username already exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		utils.RespondError(w, uc.log, errs.Wrap(errs.CodeInternal, err, "hashing password"))
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashed),
		Role:      models.RoleUser,
		Status:    models.UserStatusActive,
	}
	user, err = uc.users.Insert(ctx, user)
	if err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Registration successful",
		"user":    userSummary{ID: user.ID.Hex(), Email: user.Email, Username: user.Username},
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /users/login and returns a bearer token with the
// account summary.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		utils.RespondError(w, uc.log, errs.Validation("user not found"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(w, uc.log, errs.Validation("incorrect password"))
		return
	}
	if user.Status != models.UserStatusActive {
		utils.RespondError(w, uc.log, errs.New(errs.CodeForbidden, "account not active"))
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		utils.RespondError(w, uc.log, errs.Wrap(errs.CodeInternal, err, "generating token"))
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user": userSummary{
			ID:       user.ID.Hex(),
			Email:    user.Email,
			Username: user.Username,
			Role:     user.Role,
			Status:   user.Status,
		},
	})
}

type createAdminRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAdmin handles POST /create-admin: a one-time bootstrap that
// refuses to run once an admin account exists.
func (uc *UserController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}
	if req.Username == "" {
		req.Username = "admin"
	}
	if req.Email == "" {
		req.Email = "admin@example.com"
	}
	if req.Password == "" {
		req.Password = "admin123"
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if _, err := uc.users.FindByRole(ctx, models.RoleAdmin); err == nil {
		utils.RespondError(w, uc.log, errs.Validation("admin user already exists"))
		return
	} else if !errs.IsCode(err, errs.CodeNotFound) {
		utils.RespondError(w, uc.log, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		utils.RespondError(w, uc.log, errs.Wrap(errs.CodeInternal, err, "hashing password"))
		return
	}

	admin := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		Status:   models.UserStatusActive,
	}
	admin, err = uc.users.Insert(ctx, admin)
	if err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Admin user created",
		"admin":   userSummary{ID: admin.ID.Hex(), Email: admin.Email, Username: admin.Username},
	})
}

type updateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateAdmin handles PUT /users/admin (admin only): rotates the admin
// login credentials.
func (uc *UserController) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var req updateAdminRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	admin, err := uc.users.FindByRole(ctx, models.RoleAdmin)
	if err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		utils.RespondError(w, uc.log, errs.Wrap(errs.CodeInternal, err, "hashing password"))
		return
	}
	if err := uc.users.UpdateCredentials(ctx, admin.ID, req.Email, string(hashed)); err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Admin login details updated"})
}

// GetUsers handles GET /users (admin only) with safe fields only.
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, err := uc.users.FindAll(ctx)
	if err != nil {
		utils.RespondError(w, uc.log, err)
		return
	}

	summaries := make([]userSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, userSummary{
			ID:       user.ID.Hex(),
			Email:    user.Email,
			Username: user.Username,
			Role:     user.Role,
			Status:   user.Status,
		})
	}
	utils.RespondJSON(w, http.StatusOK, summaries)
}
