package attendance

import (
	"strings"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// EditRequest changes a record's clock times and, optionally, its flag. A nil
// Flag re-derives it from the in time.
type EditRequest struct {
	InTime  string  `json:"in_time"`
	OutTime string  `json:"out_time"`
	Flag    *string `json:"flag,omitempty"`
}

func (r EditRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.InTime) {
		if _, ok := validator.ParseClock(r.InTime); !ok {
			errs.Add("in_time", "in_time must be HH:MM")
		}
	}
	if !validator.IsEmpty(r.OutTime) {
		if _, ok := validator.ParseClock(r.OutTime); !ok {
			errs.Add("out_time", "out_time must be HH:MM")
		}
		if validator.IsEmpty(r.InTime) {
			errs.Add("in_time", "in_time is required when out_time is set")
		}
	}
	if r.Flag != nil {
		if _, ok := ParseFlag(*r.Flag); !ok {
			errs.Add("flag", "flag must be one of: Late, Absent, none")
		}
	}

	return errs.Err()
}

// Apply returns rec with the edit applied and derived fields recomputed.
func (r EditRequest) Apply(rec Record, lateAfter string) Record {
	rec.InTime = strings.TrimSpace(r.InTime)
	rec.OutTime = strings.TrimSpace(r.OutTime)
	if r.Flag != nil {
		rec.Flag, _ = ParseFlag(*r.Flag)
	} else {
		rec.Flag = DeriveFlag(rec.InTime, lateAfter)
	}
	return rec.Recompute()
}
