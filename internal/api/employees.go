package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/dayview/internal/appointment"
)

func (s *Server) listEmployees(c *gin.Context) {
	f := appointment.EmployeeFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}
	employees, err := s.store.ListEmployees(c.Request.Context(), f)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).employees(employees))
}

func (s *Server) getEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := s.store.GetEmployee(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).employee(e))
}

// applyEmployee writes the payload onto e. Name and email are required
// unless partial is set; omitted optional fields keep their value.
func applyEmployee(p payload, e *appointment.Employee, partial bool) fieldErrors {
	errs := fieldErrors{}
	name := p.str("name", !partial, errs)
	email := p.str("email", !partial, errs)
	position := p.str("position", false, errs)
	departmentID, departmentSet := p.ref("department", "departments", false, true, errs)
	if !errs.empty() {
		return errs
	}

	if name != nil {
		e.Name = *name
	}
	if email != nil {
		e.Email = *email
	}
	if position != nil {
		e.Position = appointment.Position(*position)
	}
	if departmentSet {
		e.Department = nil
		if departmentID != nil {
			e.Department = &appointment.Department{ID: *departmentID}
		}
	}
	return nil
}

func (s *Server) createEmployee(c *gin.Context) {
	p, ok := bindPayload(c)
	if !ok {
		return
	}
	e := &appointment.Employee{Position: appointment.PositionEmployee}
	if errs := applyEmployee(p, e, false); errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if err := s.store.CreateEmployee(c.Request.Context(), e); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newLinker(c).employee(e))
}

func (s *Server) replaceEmployee(c *gin.Context) {
	s.updateEmployee(c, false)
}

func (s *Server) patchEmployee(c *gin.Context) {
	s.updateEmployee(c, true)
}

func (s *Server) updateEmployee(c *gin.Context, partial bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := s.store.GetEmployee(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	p, ok := bindPayload(c)
	if !ok {
		return
	}
	if errs := applyEmployee(p, e, partial); errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if err := s.store.UpdateEmployee(c.Request.Context(), e); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).employee(e))
}

func (s *Server) deleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteEmployee(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
