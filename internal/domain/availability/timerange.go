package availability

import (
	"time"

	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
)

// ===============================
// Time Range
// ===============================

// TimeRange é um intervalo semiaberto [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Validate garante Start < End (nunca corrigimos silenciosamente)
func (r TimeRange) Validate() error {
	if !r.Start.Before(r.End) {
		return httperr.ErrBusiness("invalid_time_range")
	}
	return nil
}

// Overlaps usa a semântica semiaberta: janelas encostadas
// ([10,11) e [11,12)) NÃO se sobrepõem.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}
