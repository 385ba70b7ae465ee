package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"course_catalog_backend/internal/model"
	"course_catalog_backend/internal/repository"
	"course_catalog_backend/internal/service"
	"course_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, repository.Storage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemStorage()

	chef, err := store.CreateInstructor(model.InsertInstructor{
		Name: "Great Chef", Bio: "b", Specialty: "Cooking", AvatarURL: "a", Title: "Chef",
	})
	require.NoError(t, err)
	ceo, err := store.CreateInstructor(model.InsertInstructor{
		Name: "Busy CEO", Bio: "b", Specialty: "Business", AvatarURL: "a", Title: "CEO",
	})
	require.NoError(t, err)

	courses := []model.InsertCourse{
		{
			Title: "Cooking Basics", Description: "pots and pans", ShortDescription: "s",
			InstructorID: chef.ID, Category: "Culinary Arts", Difficulty: model.DifficultyBeginner,
			Duration: "1h", LessonsCount: 3, ThumbnailURL: "t", Price: 100, Rating: 5,
			StudentsCount: 10, Featured: true,
		},
		{
			Title: "Leadership", Description: "teams", ShortDescription: "s",
			InstructorID: ceo.ID, Category: "Business", Difficulty: model.DifficultyAdvanced,
			Duration: "2h", LessonsCount: 5, ThumbnailURL: "t", Price: 50, Rating: 4,
			StudentsCount: 20,
		},
	}
	for _, in := range courses {
		_, err := store.CreateCourse(in)
		require.NoError(t, err)
	}

	courseController := NewCourseController(service.NewCourseService(store))
	instructorController := NewInstructorController(service.NewInstructorService(store))
	catalogController := NewCatalogController(service.NewCatalogService(store))
	enrollmentController := NewEnrollmentController(service.NewEnrollmentService(store))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/courses", courseController.ListCourses)
	api.GET("/courses/featured", courseController.GetFeaturedCourses)
	api.GET("/courses/category/:category", courseController.GetCoursesByCategory)
	api.GET("/courses/search", courseController.SearchCourses)
	api.GET("/courses/:id", courseController.GetCourse)
	api.GET("/instructors", instructorController.GetAllInstructors)
	api.GET("/instructors/:id", instructorController.GetInstructor)
	api.GET("/categories", catalogController.GetAllCategories)
	api.GET("/testimonials", catalogController.GetAllTestimonials)
	api.POST("/enrollments", enrollmentController.CreateEnrollment)
	api.GET("/enrollments/user/:userId", enrollmentController.GetUserEnrollments)

	return router, store
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestListCoursesReturnsJoinedList(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := decodeData(t, w).([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Contains(t, first, "instructor")
}

func TestListCoursesAppliesQueryParams(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/courses?sort=price-low", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w).([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Leadership", data[0].(map[string]interface{})["title"])

	w = doRequest(router, http.MethodGet, "/api/courses?difficulty=Advanced", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w).([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Leadership", data[0].(map[string]interface{})["title"])
}

func TestGetCourseInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/courses/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCourseNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/courses/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFeaturedCourses(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/courses/featured", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w).([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Cooking Basics", data[0].(map[string]interface{})["title"])
}

func TestGetCoursesByCategoryIsCaseInsensitive(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/courses/category/business", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w).([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Leadership", data[0].(map[string]interface{})["title"])
}

func TestSearchCoursesRequiresQuery(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/courses/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/courses/search?q=chef", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w).([]interface{})
	assert.Len(t, data, 1)
}

func TestGetInstructorWithCourses(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/instructors/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w).(map[string]interface{})
	assert.Equal(t, "Great Chef", data["name"])
	assert.Len(t, data["courses"], 1)

	w = doRequest(router, http.MethodGet, "/api/instructors/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/instructors/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEnrollmentLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	body := []byte(`{"userId": 1, "courseId": 5}`)
	w := doRequest(router, http.MethodPost, "/api/enrollments", body)
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w).(map[string]interface{})
	assert.Equal(t, float64(0), data["progress"])

	// Second identical enrollment conflicts.
	w = doRequest(router, http.MethodPost, "/api/enrollments", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateEnrollmentMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/enrollments", []byte(`{"userId": 1}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/api/enrollments", []byte(`not json`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserEnrollments(t *testing.T) {
	router, store := newTestRouter(t)

	_, err := store.CreateEnrollment(model.InsertEnrollment{UserID: 9, CourseID: 1})
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/api/enrollments/user/9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w).([]interface{})
	assert.Len(t, data, 1)

	w = doRequest(router, http.MethodGet, "/api/enrollments/user/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
