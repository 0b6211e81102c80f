package purchaseController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"topclass/config"
	"topclass/database"
	"topclass/middleware"
	"topclass/models"
	purchaseValidator "topclass/validators/purchase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Course{}, &models.Purchase{}, &models.CourseProgress{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/purchases", middleware.JWTMiddleware, purchaseValidator.CreatePurchase(), CreatePurchase)
	app.Get("/purchases", middleware.JWTMiddleware, GetPurchases)
	app.Post("/admin/purchases/:id/refund", middleware.JWTMiddleware, middleware.AdminOnly, purchaseValidator.RefundPurchase(), AdminRefundPurchase)
	app.Get("/admin/purchases", middleware.JWTMiddleware, middleware.AdminOnly, purchaseValidator.AdminPurchaseList(), AdminListPurchases)
	return app
}

func seedUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("%s-%s@example.com", role, t.Name()),
		Password: "irrelevant",
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func seedCourse(t *testing.T, title string, price int64) models.Course {
	t.Helper()

	course := models.Course{
		Title:       title,
		Description: "a course",
		Category:    "programming",
		Price:       price,
		Status:      models.CoursePublished,
		Published:   true,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func jsonRequest(method, target, token string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestCreatePurchase(t *testing.T) {
	app := setupTestApp(t)
	user, token := seedUser(t, "USER")
	course := seedCourse(t, "Go In Practice", 50000)

	resp, err := app.Test(jsonRequest("POST", "/purchases", token, fiber.Map{"courseId": course.ID}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, true, envelope["success"])

	var purchase models.Purchase
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&purchase).Error)
	assert.Equal(t, models.PurchaseCompleted, purchase.Status)
	assert.Equal(t, int64(50000), purchase.Amount)
	assert.NotEmpty(t, purchase.OrderNo)

	// A zero-progress record is seeded alongside the purchase
	var progress models.CourseProgress
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&progress).Error)
	assert.Zero(t, progress.ProgressPercent)
}

func TestCreatePurchaseRejectsDuplicate(t *testing.T) {
	app := setupTestApp(t)
	user, token := seedUser(t, "USER")
	course := seedCourse(t, "Go In Practice", 50000)

	resp, err := app.Test(jsonRequest("POST", "/purchases", token, fiber.Map{"courseId": course.ID}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/purchases", token, fiber.Map{"courseId": course.ID}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "You have already purchased this course!", envelope["error"])

	var count int64
	database.Database.Db.Model(&models.Purchase{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count, "no second record is created")
}

func TestCreatePurchaseFailures(t *testing.T) {
	app := setupTestApp(t)
	_, token := seedUser(t, "USER")

	// Unauthenticated caller
	resp, err := app.Test(jsonRequest("POST", "/purchases", "", fiber.Map{"courseId": 1}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Unknown course
	resp, err = app.Test(jsonRequest("POST", "/purchases", token, fiber.Map{"courseId": 999}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Missing course id
	resp, err = app.Test(jsonRequest("POST", "/purchases", token, fiber.Map{}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetPurchasesListsOnlyCompleted(t *testing.T) {
	app := setupTestApp(t)
	user, token := seedUser(t, "USER")
	course := seedCourse(t, "Go In Practice", 50000)
	other := seedCourse(t, "Rust In Practice", 60000)

	require.NoError(t, database.Database.Db.Create(&models.Purchase{
		OrderNo: "order-1", UserID: user.ID, CourseID: course.ID, Amount: 50000, Status: models.PurchaseCompleted,
	}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Purchase{
		OrderNo: "order-2", UserID: user.ID, CourseID: other.ID, Amount: 60000, Status: models.PurchaseRefunded,
	}).Error)

	resp, err := app.Test(jsonRequest("GET", "/purchases", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestRefundRequiresReason(t *testing.T) {
	app := setupTestApp(t)
	user, _ := seedUser(t, "USER")
	_, adminToken := seedUser(t, "ADMIN")
	course := seedCourse(t, "Go In Practice", 50000)

	purchase := models.Purchase{OrderNo: "order-1", UserID: user.ID, CourseID: course.ID, Amount: 50000, Status: models.PurchaseCompleted}
	require.NoError(t, database.Database.Db.Create(&purchase).Error)

	target := fmt.Sprintf("/admin/purchases/%d/refund", purchase.ID)

	resp, err := app.Test(jsonRequest("POST", target, adminToken, fiber.Map{"reason": ""}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var unchanged models.Purchase
	require.NoError(t, database.Database.Db.First(&unchanged, purchase.ID).Error)
	assert.Equal(t, models.PurchaseCompleted, unchanged.Status)
}

func TestRefundTransitionsCompletedToRefunded(t *testing.T) {
	app := setupTestApp(t)
	user, _ := seedUser(t, "USER")
	_, adminToken := seedUser(t, "ADMIN")
	course := seedCourse(t, "Go In Practice", 50000)

	purchase := models.Purchase{OrderNo: "order-1", UserID: user.ID, CourseID: course.ID, Amount: 50000, Status: models.PurchaseCompleted}
	require.NoError(t, database.Database.Db.Create(&purchase).Error)
	createdUpdatedAt := purchase.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	target := fmt.Sprintf("/admin/purchases/%d/refund", purchase.ID)
	resp, err := app.Test(jsonRequest("POST", target, adminToken, fiber.Map{"reason": "defective"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var refunded models.Purchase
	require.NoError(t, database.Database.Db.First(&refunded, purchase.ID).Error)
	assert.Equal(t, models.PurchaseRefunded, refunded.Status)
	assert.Equal(t, "defective", refunded.RefundReason)
	assert.True(t, refunded.UpdatedAt.After(createdUpdatedAt), "refund stamps a new updated-at")

	// Refunding twice is a conflict
	resp, err = app.Test(jsonRequest("POST", target, adminToken, fiber.Map{"reason": "again"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRefundRejectsNonAdmin(t *testing.T) {
	app := setupTestApp(t)
	user, userToken := seedUser(t, "USER")
	course := seedCourse(t, "Go In Practice", 50000)

	purchase := models.Purchase{OrderNo: "order-1", UserID: user.ID, CourseID: course.ID, Amount: 50000, Status: models.PurchaseCompleted}
	require.NoError(t, database.Database.Db.Create(&purchase).Error)

	target := fmt.Sprintf("/admin/purchases/%d/refund", purchase.ID)
	resp, err := app.Test(jsonRequest("POST", target, userToken, fiber.Map{"reason": "defective"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminListPurchasesFiltersByStatus(t *testing.T) {
	app := setupTestApp(t)
	user, _ := seedUser(t, "USER")
	_, adminToken := seedUser(t, "ADMIN")
	course := seedCourse(t, "Go In Practice", 50000)

	require.NoError(t, database.Database.Db.Create(&models.Purchase{
		OrderNo: "order-1", UserID: user.ID, CourseID: course.ID, Amount: 50000, Status: models.PurchaseCompleted,
	}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Purchase{
		OrderNo: "order-2", UserID: user.ID, CourseID: course.ID, Amount: 50000, Status: models.PurchaseRefunded, RefundReason: "defective",
	}).Error)

	resp, err := app.Test(jsonRequest("GET", "/admin/purchases?status=refunded", adminToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	purchases := data["purchases"].([]interface{})
	assert.Len(t, purchases, 1)

	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total"])
}
