package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group(BasePath)
	{
		appointments := v1.Group("/appointments")
		appointments.GET("/", s.listAppointments)
		appointments.POST("/", s.createAppointment)
		appointments.GET("/closest/", s.closestAppointment)
		appointments.GET("/export.ics", s.exportAppointments)
		appointments.GET("/:id/", s.getAppointment)
		appointments.PUT("/:id/", s.replaceAppointment)
		appointments.PATCH("/:id/", s.patchAppointment)
		appointments.DELETE("/:id/", s.deleteAppointment)

		departments := v1.Group("/departments")
		departments.GET("/", s.listDepartments)
		departments.POST("/", s.createDepartment)
		departments.GET("/:id/", s.getDepartment)
		departments.PUT("/:id/", s.replaceDepartment)
		departments.PATCH("/:id/", s.patchDepartment)
		departments.DELETE("/:id/", s.deleteDepartment)
		departments.GET("/:id/employees/", s.listDepartmentEmployees)

		employees := v1.Group("/employees")
		employees.GET("/", s.listEmployees)
		employees.POST("/", s.createEmployee)
		employees.GET("/:id/", s.getEmployee)
		employees.PUT("/:id/", s.replaceEmployee)
		employees.PATCH("/:id/", s.patchEmployee)
		employees.DELETE("/:id/", s.deleteEmployee)

		v1.GET("/dayview/", s.dayView)
	}
}
