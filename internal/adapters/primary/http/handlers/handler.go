package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
	"classroom-planner-service/internal/core/services"
)

type Handler struct {
	auditSvc      *services.AuditService
	exportSvc     *services.ExportService
	outcomeSvc    *services.OutcomeService
	subjectSvc    *services.SubjectService
	activitySvc   *services.ActivityService
	assessmentSvc *services.AssessmentService
	studentSvc    *services.StudentService
	reflectionSvc *services.ReflectionService
	newsletterSvc *services.NewsletterService
}

func New(
	auditSvc *services.AuditService,
	exportSvc *services.ExportService,
	outcomeSvc *services.OutcomeService,
	subjectSvc *services.SubjectService,
	activitySvc *services.ActivityService,
	assessmentSvc *services.AssessmentService,
	studentSvc *services.StudentService,
	reflectionSvc *services.ReflectionService,
	newsletterSvc *services.NewsletterService,
) *Handler {
	return &Handler{
		auditSvc:      auditSvc,
		exportSvc:     exportSvc,
		outcomeSvc:    outcomeSvc,
		subjectSvc:    subjectSvc,
		activitySvc:   activitySvc,
		assessmentSvc: assessmentSvc,
		studentSvc:    studentSvc,
		reflectionSvc: reflectionSvc,
		newsletterSvc: newsletterSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Curriculum audit
	r.GET("/audit/curriculum-coverage", h.GetCoverage)
	r.GET("/audit/curriculum-coverage/summary", h.GetCoverageSummary)
	r.GET("/audit/curriculum-coverage/export", h.ExportCoverage)
	r.GET("/audit/metrics", h.GetAuditMetrics)

	// Outcomes
	r.GET("/outcomes", h.ListOutcomes)
	r.GET("/outcomes/:id", h.GetOutcome)
	r.GET("/outcome", h.GetOutcomeByCode)
	r.POST("/outcomes", h.CreateOutcome)
	r.PATCH("/outcomes/:id", h.UpdateOutcome)
	r.DELETE("/outcomes/:id", h.DeleteOutcome)

	// Subjects and milestones
	r.GET("/subjects", h.ListSubjects)
	r.GET("/subjects/:id", h.GetSubject)
	r.POST("/subjects", h.CreateSubject)
	r.PATCH("/subjects/:id", h.UpdateSubject)
	r.DELETE("/subjects/:id", h.DeleteSubject)
	r.GET("/subjects/:id/milestones", h.ListMilestones)
	r.POST("/subjects/:id/milestones", h.AddMilestone)

	// Activities
	r.GET("/activities", h.ListActivities)
	r.GET("/activities/:id", h.GetActivity)
	r.POST("/activities", h.CreateActivity)
	r.PATCH("/activities/:id", h.UpdateActivity)
	r.DELETE("/activities/:id", h.DeleteActivity)

	// Assessment results
	r.GET("/assessments", h.ListAssessments)
	r.GET("/assessments/:id", h.GetAssessment)
	r.POST("/assessments", h.CreateAssessment)
	r.DELETE("/assessments/:id", h.DeleteAssessment)

	// Students
	r.GET("/students", h.ListStudents)
	r.GET("/students/:id", h.GetStudent)
	r.POST("/students", h.CreateStudent)
	r.PATCH("/students/:id", h.UpdateStudent)
	r.DELETE("/students/:id", h.DeleteStudent)

	// Reflection journal
	r.GET("/reflections", h.ListReflections)
	r.GET("/reflections/:id", h.GetReflection)
	r.POST("/reflections", h.CreateReflection)
	r.PATCH("/reflections/:id", h.UpdateReflection)
	r.DELETE("/reflections/:id", h.DeleteReflection)

	// Newsletters
	r.GET("/newsletters", h.ListNewsletters)
	r.GET("/newsletters/:id", h.GetNewsletter)
	r.POST("/newsletters", h.CreateNewsletter)
	r.POST("/newsletters/generate", h.GenerateNewsletter)
	r.PATCH("/newsletters/:id", h.UpdateNewsletter)
	r.DELETE("/newsletters/:id", h.DeleteNewsletter)
}

func getTeacherID(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get("teacher_id")
	if !ok {
		return uuid.Nil, domain.ErrMissingTeacherID
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, domain.ErrMissingTeacherID
	}
	return id, nil
}
