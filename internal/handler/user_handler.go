package handler

import (
	"net/http"

	"github.com/LucasLevingston/AneisDePoder/internal/database"
	"github.com/LucasLevingston/AneisDePoder/internal/models"
	"github.com/LucasLevingston/AneisDePoder/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required" example:"frodo"`
	Email    string `json:"email" binding:"required,email" example:"f@shire.example"`
	Password string `json:"password" binding:"required" example:"ring123"`
	Class    string `json:"class" binding:"required" example:"Homem"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"f@shire.example"`
	Password string `json:"password" binding:"required" example:"ring123"`
}

// PublicUserResponse defines the structure for a user's public fields.
// The password hash is never serialized.
type PublicUserResponse struct {
	ID       string `json:"id" example:"6e6a460b-dd38-4cb5-b93d-103a7239149c"`
	Username string `json:"username" example:"frodo"`
	Email    string `json:"email" example:"f@shire.example"`
	Class    string `json:"class" example:"Homem"`
}

// LoginResponse defines the structure returned on a successful login.
type LoginResponse struct {
	User  PublicUserResponse `json:"user"`
	Token string             `json:"token"`
}

func newPublicUserResponse(user models.User) PublicUserResponse {
	return PublicUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Class:    user.Class,
	}
}

// endregion

// The user handlers shape their own failures instead of going through the
// error translator: registration and login problems have always been
// answered with 500 plus the domain message, and clients depend on it.

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user with a hashed password.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  PublicUserResponse
// @Failure      400  {object}  MessageResponse "Invalid input"
// @Failure      500  {object}  MessageResponse "User already exists"
// @Router       /users [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "User already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Class:    input.Class,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	c.JSON(http.StatusCreated, newPublicUserResponse(user))
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates by email and password and returns a token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  MessageResponse "Invalid input"
// @Failure      500  {object}  MessageResponse "User not found or invalid password"
// @Router       /users/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid password"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User:  newPublicUserResponse(user),
		Token: token,
	})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Deletes a user by id. No authentication is performed.
// @Tags         users
// @Produce      json
// @Param        userId  path  string  true  "User ID"
// @Success      204     "No Content"
// @Failure      404     {object}  MessageResponse "User not found"
// @Router       /users/{userId} [delete]
func DeleteUser(c *gin.Context) {
	userID := c.Param("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
