package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TrungQuaan22/ProjectIII-Elearning/middleware"
	"github.com/TrungQuaan22/ProjectIII-Elearning/services"
)

type CourseController struct {
	courses *services.CourseService
}

func NewCourseController(courses *services.CourseService) *CourseController {
	return &CourseController{courses: courses}
}

func (cc *CourseController) ListCourses(c *gin.Context) {
	page, limit := parsePaginationParams(c)
	result, svcErr := cc.courses.ListPublished(c.Request.Context(), c.Query("search"), page, limit)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (cc *CourseController) GetCourseBySlug(c *gin.Context) {
	course, svcErr := cc.courses.GetBySlug(c.Request.Context(), c.Param("slug"))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourse adds a course to the catalog (admin only).
func (cc *CourseController) CreateCourse(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req services.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	course, svcErr := cc.courses.Create(c.Request.Context(), userID, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse overwrites a course's mutable fields (admin only).
func (cc *CourseController) UpdateCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var req services.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	course, svcErr := cc.courses.Update(c.Request.Context(), courseID, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, course)
}
