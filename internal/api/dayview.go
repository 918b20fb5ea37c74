package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/dateutil"
)

type blockJSON struct {
	Appointment  *appointmentJSON   `json:"appointment"`
	Top          float64            `json:"top"`
	Height       float64            `json:"height"`
	OverlapCount int                `json:"overlap_count"`
	Overlapped   []*appointmentJSON `json:"overlapped"`
}

type dayViewJSON struct {
	Date        string      `json:"date"`
	HourHeight  float64     `json:"hour_height"`
	TotalHeight float64     `json:"total_height"`
	Blocks      []blockJSON `json:"blocks"`
}

// dayView returns the day's appointments grouped by overlap and positioned
// on a timeline of 24 × hour_height units.
func (s *Server) dayView(c *gin.Context) {
	errs := fieldErrors{}

	date := dateutil.TruncateToDay(s.now())
	if raw := c.Query("date"); raw != "" {
		d, err := dateutil.ParseDate(raw)
		if err != nil {
			errs.add("date", "Enter a valid date.")
		}
		date = d
	}

	hourHeight := s.hourHeight
	if raw := c.Query("hour_height"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || !validHourHeight(v) {
			errs.add("hour_height", "Ensure this value is a positive number.")
		}
		hourHeight = v
	}
	if !errs.empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	appts, err := s.store.ListAppointments(c.Request.Context(), appointment.AppointmentFilter{Date: &date})
	if err != nil {
		s.writeError(c, err)
		return
	}

	l := newLinker(c)
	day := appointment.NewDay(date, appts)
	blocks := day.Blocks(hourHeight)

	out := dayViewJSON{
		Date:        date.Format(time.DateOnly),
		HourHeight:  hourHeight,
		TotalHeight: 24 * hourHeight,
		Blocks:      make([]blockJSON, 0, len(blocks)),
	}
	for _, b := range blocks {
		out.Blocks = append(out.Blocks, blockJSON{
			Appointment:  l.appointment(b.Primary),
			Top:          b.Top,
			Height:       b.Height,
			OverlapCount: b.OverlapCount(),
			Overlapped:   l.appointments(b.Overlapped),
		})
	}
	c.JSON(http.StatusOK, out)
}

// validHourHeight reports whether v is positive and keeps the whole
// 24 hour timeline finite, so the response can be encoded.
func validHourHeight(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) && !math.IsInf(24*v, 0)
}
