package authController

import (
	"log"
	"time"

	"topclass/config"
	"topclass/database"
	"topclass/middleware"
	"topclass/models"
	authValidator "topclass/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user account
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.User{}).Error; err == nil {
		return middleware.Fail(c, fiber.StatusConflict, "Email is already registered!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{
		"user": newUser,
	})
}

// Login authenticates a user and issues a JWT
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "Invalid email or password!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "Invalid email or password!")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	user.LastLogin = time.Now()
	db.Model(&user).Update("last_login", user.LastLogin)

	return middleware.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}
