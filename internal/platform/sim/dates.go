package sim

import (
	"fmt"
	"time"

	"github.com/mj1618/outlook-a11y/internal/platform"
	"golang.org/x/text/language"
)

var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
}

// Dates formats dates the way the host's locale services do for the
// languages it knows. Unknown languages fall back to English names.
type Dates struct{}

func (Dates) FormatDate(tag language.Tag, style platform.DateStyle, t time.Time) string {
	base, _ := tag.Base()
	region, conf := tag.Region()
	us := conf == language.Exact && region.String() == "US"
	if style == platform.DateShort {
		if us {
			return t.Format("01/02/2006")
		}
		return t.Format("02/01/2006")
	}
	names, ok := monthNames[base.String()]
	if !ok {
		names = monthNames["en"]
	}
	month := names[t.Month()-1]
	if us {
		return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
	}
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
}

func (Dates) FormatTime(tag language.Tag, style platform.TimeStyle, t time.Time) string {
	if style == platform.TimeNoSeconds {
		return t.Format("15:04")
	}
	return t.Format("15:04:05")
}
