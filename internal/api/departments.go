package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/dayview/internal/appointment"
)

func (s *Server) listDepartments(c *gin.Context) {
	departments, err := s.store.ListDepartments(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).departments(departments))
}

func (s *Server) getDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := s.store.GetDepartment(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).department(d))
}

func (s *Server) listDepartmentEmployees(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	employees, err := s.store.ListDepartmentEmployees(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).employees(employees))
}

// applyDepartment writes the payload onto d. Only name is required on a
// full write; the manager may be cleared with null.
func applyDepartment(p payload, d *appointment.Department, partial bool) fieldErrors {
	errs := fieldErrors{}
	name := p.str("name", !partial, errs)
	description := p.str("description", false, errs)
	managerID, managerSet := p.ref("manager", "employees", false, true, errs)
	if !errs.empty() {
		return errs
	}

	if name != nil {
		d.Name = *name
	}
	if description != nil {
		d.Description = *description
	}
	if managerSet {
		d.ManagerID = managerID
	}
	return nil
}

func (s *Server) createDepartment(c *gin.Context) {
	p, ok := bindPayload(c)
	if !ok {
		return
	}
	d := &appointment.Department{}
	if errs := applyDepartment(p, d, false); errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if err := s.store.CreateDepartment(c.Request.Context(), d); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newLinker(c).department(d))
}

func (s *Server) replaceDepartment(c *gin.Context) {
	s.updateDepartment(c, false)
}

func (s *Server) patchDepartment(c *gin.Context) {
	s.updateDepartment(c, true)
}

func (s *Server) updateDepartment(c *gin.Context, partial bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := s.store.GetDepartment(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	p, ok := bindPayload(c)
	if !ok {
		return
	}
	if errs := applyDepartment(p, d, partial); errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if err := s.store.UpdateDepartment(c.Request.Context(), d); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).department(d))
}

func (s *Server) deleteDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteDepartment(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
