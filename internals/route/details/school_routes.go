// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/access"
	academicRoutes "schoolhub_backend/internals/features/school/academics/route"
	academicService "schoolhub_backend/internals/features/school/academics/service"
	calendarRoutes "schoolhub_backend/internals/features/school/calendar/route"
	calendarService "schoolhub_backend/internals/features/school/calendar/service"
	familyRoutes "schoolhub_backend/internals/features/school/families/route"
	familyService "schoolhub_backend/internals/features/school/families/service"
	gradesRoutes "schoolhub_backend/internals/features/school/grades/route"
	gradesService "schoolhub_backend/internals/features/school/grades/service"
	studentRoutes "schoolhub_backend/internals/features/school/students/route"
	studentService "schoolhub_backend/internals/features/school/students/service"
	tasksRoutes "schoolhub_backend/internals/features/school/tasks/route"
	tasksService "schoolhub_backend/internals/features/school/tasks/service"
)

/* ===================== PRIVATE (JWT) ===================== */
func SchoolRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	edges := access.NewGormEdges(db)

	studentRoutes.StudentRoutes(r, studentService.NewStudentService(db, edges))
	gradesRoutes.GradesRoutes(r, gradesService.NewGradesService(gradesService.NewGormStore(db), edges, log))
	academicRoutes.AssignmentRoutes(r, academicService.NewAssignmentService(db, edges))
	familyRoutes.FamilyRoutes(r, familyService.NewFamilyService(db, log))
	tasksRoutes.TasksRoutes(r, tasksService.NewTasksService(db, edges, log))
	calendarRoutes.CalendarRoutes(r, calendarService.NewCalendarService(db, edges))
}
