package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/dateutil"
	"github.com/javiermolinar/dayview/internal/ics"
)

// appointmentFilter reads the optional ?date= query parameter.
func appointmentFilter(c *gin.Context) (appointment.AppointmentFilter, bool) {
	var f appointment.AppointmentFilter
	raw := c.Query("date")
	if raw == "" {
		return f, true
	}
	date, err := dateutil.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, fieldErrors{"date": {"Enter a valid date."}})
		return f, false
	}
	f.Date = &date
	return f, true
}

func (s *Server) listAppointments(c *gin.Context) {
	f, ok := appointmentFilter(c)
	if !ok {
		return
	}
	appts, err := s.store.ListAppointments(c.Request.Context(), f)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).appointments(appts))
}

func (s *Server) getAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := s.store.GetAppointment(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).appointment(a))
}

func (s *Server) closestAppointment(c *gin.Context) {
	a, err := s.store.ClosestAppointment(c.Request.Context(), s.now())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).appointment(a))
}

// appointmentInput reads a full write. Every field but description and
// participants is required.
func appointmentInput(p payload) (appointment.Input, fieldErrors) {
	errs := fieldErrors{}
	title := p.str("title", true, errs)
	description := p.str("description", false, errs)
	start := p.datetime("start_datetime", true, errs)
	end := p.datetime("end_datetime", true, errs)
	employeeID, _ := p.ref("employee", "employees", true, false, errs)
	participants := p.refs("participants", "employees", false, errs)
	if !errs.empty() {
		return appointment.Input{}, errs
	}

	in := appointment.Input{
		Title:      *title,
		Start:      *start,
		End:        *end,
		EmployeeID: employeeID,
	}
	if description != nil {
		in.Description = *description
	}
	if participants != nil {
		in.ParticipantIDs = *participants
	}
	return in, nil
}

// appointmentPatch reads a partial write.
func appointmentPatch(p payload) (appointment.Patch, fieldErrors) {
	errs := fieldErrors{}
	patch := appointment.Patch{
		Title:          p.str("title", false, errs),
		Description:    p.str("description", false, errs),
		Start:          p.datetime("start_datetime", false, errs),
		End:            p.datetime("end_datetime", false, errs),
		ParticipantIDs: p.refs("participants", "employees", false, errs),
	}
	patch.EmployeeID, _ = p.ref("employee", "employees", false, false, errs)
	if !errs.empty() {
		return appointment.Patch{}, errs
	}
	return patch, nil
}

func (s *Server) createAppointment(c *gin.Context) {
	p, ok := bindPayload(c)
	if !ok {
		return
	}
	in, errs := appointmentInput(p)
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	a, err := appointment.New(in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.store.CreateAppointment(c.Request.Context(), a); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newLinker(c).appointment(a))
}

func (s *Server) replaceAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := s.store.GetAppointment(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	p, ok := bindPayload(c)
	if !ok {
		return
	}
	in, errs := appointmentInput(p)
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if err := in.Replace(a); err != nil {
		s.writeError(c, err)
		return
	}
	s.saveAppointment(c, a)
}

func (s *Server) patchAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := s.store.GetAppointment(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	p, ok := bindPayload(c)
	if !ok {
		return
	}
	patch, errs := appointmentPatch(p)
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if err := patch.Apply(a); err != nil {
		s.writeError(c, err)
		return
	}
	s.saveAppointment(c, a)
}

func (s *Server) saveAppointment(c *gin.Context, a *appointment.Appointment) {
	if err := s.store.UpdateAppointment(c.Request.Context(), a); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLinker(c).appointment(a))
}

func (s *Server) deleteAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteAppointment(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) exportAppointments(c *gin.Context) {
	f, ok := appointmentFilter(c)
	if !ok {
		return
	}
	appts, err := s.store.ListAppointments(c.Request.Context(), f)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="dayview.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", ics.Export(appts, ics.DefaultProdID))
}
