package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/dayview/internal/appointment"
)

type departmentJSON struct {
	URL         string  `json:"url"`
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Manager     *string `json:"manager"`
	Description string  `json:"description"`
}

type employeeJSON struct {
	URL        string          `json:"url"`
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Department *departmentJSON `json:"department"`
}

type appointmentJSON struct {
	URL          string          `json:"url"`
	ID           int64           `json:"id"`
	Start        time.Time       `json:"start_datetime"`
	End          time.Time       `json:"end_datetime"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Employee     *employeeJSON   `json:"employee"`
	Participants []*employeeJSON `json:"participants"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// linker builds absolute hyperlinks for the request's host.
type linker struct {
	base string
}

func newLinker(c *gin.Context) linker {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return linker{base: scheme + "://" + c.Request.Host + BasePath}
}

func (l linker) url(resource string, id int64) string {
	return fmt.Sprintf("%s/%s/%d/", l.base, resource, id)
}

func (l linker) department(d *appointment.Department) *departmentJSON {
	if d == nil {
		return nil
	}
	out := &departmentJSON{
		URL:         l.url("departments", d.ID),
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}
	if d.ManagerID != nil {
		manager := l.url("employees", *d.ManagerID)
		out.Manager = &manager
	}
	return out
}

func (l linker) employee(e *appointment.Employee) *employeeJSON {
	if e == nil {
		return nil
	}
	return &employeeJSON{
		URL:        l.url("employees", e.ID),
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Position:   string(e.Position),
		Department: l.department(e.Department),
	}
}

func (l linker) employees(es []*appointment.Employee) []*employeeJSON {
	out := make([]*employeeJSON, 0, len(es))
	for _, e := range es {
		out = append(out, l.employee(e))
	}
	return out
}

func (l linker) departments(ds []*appointment.Department) []*departmentJSON {
	out := make([]*departmentJSON, 0, len(ds))
	for _, d := range ds {
		out = append(out, l.department(d))
	}
	return out
}

func (l linker) appointment(a *appointment.Appointment) *appointmentJSON {
	return &appointmentJSON{
		URL:          l.url("appointments", a.ID),
		ID:           a.ID,
		Start:        a.Start.UTC(),
		End:          a.End.UTC(),
		Title:        a.Title,
		Description:  a.Description,
		Employee:     l.employee(a.Employee),
		Participants: l.employees(a.Participants),
		CreatedAt:    a.CreatedAt.UTC(),
		UpdatedAt:    a.UpdatedAt.UTC(),
	}
}

func (l linker) appointments(as []*appointment.Appointment) []*appointmentJSON {
	out := make([]*appointmentJSON, 0, len(as))
	for _, a := range as {
		out = append(out, l.appointment(a))
	}
	return out
}
