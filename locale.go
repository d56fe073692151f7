package chronoaxis

import (
	"time"

	"golang.org/x/text/language"
)

// WeekRule selects how the ww/w pattern tokens number the weeks of a
// year.
type WeekRule int

const (
	// WeekRuleFirstDay starts week 1 on January 1; a new week begins at
	// each configured first day of the week.
	WeekRuleFirstDay WeekRule = iota

	// WeekRuleFirstFullWeek starts week 1 at the first full week of the
	// year; leading days belong to the last week of the previous year.
	WeekRuleFirstFullWeek

	// WeekRuleISO uses ISO 8601 week numbering (weeks start on Monday,
	// week 1 contains the first Thursday).
	WeekRuleISO
)

// locale bundles the calendar vocabulary label formatting needs. The
// catalogue below is deliberately small; unknown tags fall back through
// the language matcher to the closest supported locale.
type locale struct {
	tag         language.Tag
	monthsShort [12]string
	monthsLong  [12]string
	daysShort   [7]string // indexed by time.Weekday (Sunday = 0)
	daysLong    [7]string
	am, pm      string
	shortDate   string // pattern in the axis token syntax
	firstDay    time.Weekday
	weekRule    WeekRule
}

var locales = []locale{
	{
		tag:         language.AmericanEnglish,
		monthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		monthsLong:  [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		daysShort:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		daysLong:    [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		am:          "AM", pm: "PM",
		shortDate: "M/d/yyyy",
		firstDay:  time.Sunday,
		weekRule:  WeekRuleFirstDay,
	},
	{
		tag:         language.BritishEnglish,
		monthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		monthsLong:  [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		daysShort:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		daysLong:    [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		am:          "AM", pm: "PM",
		shortDate: "dd/MM/yyyy",
		firstDay:  time.Monday,
		weekRule:  WeekRuleISO,
	},
	{
		tag:         language.German,
		monthsShort: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		monthsLong:  [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		daysShort:   [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		daysLong:    [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		am:          "", pm: "",
		shortDate: "dd.MM.yyyy",
		firstDay:  time.Monday,
		weekRule:  WeekRuleISO,
	},
	{
		tag:         language.French,
		monthsShort: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		monthsLong:  [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		daysShort:   [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		daysLong:    [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		am:          "", pm: "",
		shortDate: "dd/MM/yyyy",
		firstDay:  time.Monday,
		weekRule:  WeekRuleISO,
	},
	{
		tag:         language.Spanish,
		monthsShort: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		monthsLong:  [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		daysShort:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		daysLong:    [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		am:          "a. m.", pm: "p. m.",
		shortDate: "dd/MM/yyyy",
		firstDay:  time.Monday,
		weekRule:  WeekRuleISO,
	},
	{
		tag:         language.Japanese,
		monthsShort: [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		monthsLong:  [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		daysShort:   [7]string{"日", "月", "火", "水", "木", "金", "土"},
		daysLong:    [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		am:          "午前", pm: "午後",
		shortDate: "yyyy/MM/dd",
		firstDay:  time.Sunday,
		weekRule:  WeekRuleFirstDay,
	},
}

// localeMatcher resolves arbitrary BCP 47 tags against the catalogue.
var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// lookupLocale returns the catalogue entry closest to the requested
// tag. language.Und (the zero tag) resolves to the first entry.
func lookupLocale(tag language.Tag) *locale {
	_, idx, _ := localeMatcher.Match(tag)
	return &locales[idx]
}

// weekNumber computes the week-of-year for the ww and w tokens under
// the given first-day-of-week and numbering rule.
func weekNumber(t time.Time, firstDay time.Weekday, rule WeekRule) int {
	switch rule {
	case WeekRuleISO:
		_, week := t.ISOWeek()
		return week
	case WeekRuleFirstFullWeek:
		lead := leadDays(t.Year(), t.Location(), firstDay)
		yday := t.YearDay() - 1
		if yday < lead {
			// Belongs to the final week of the previous year.
			prev := time.Date(t.Year()-1, time.December, 31, 0, 0, 0, 0, t.Location())
			return weekNumber(prev, firstDay, rule)
		}
		return (yday-lead)/7 + 1
	default: // WeekRuleFirstDay
		lead := leadDays(t.Year(), t.Location(), firstDay)
		offset := 0
		if lead > 0 {
			offset = 7 - lead
		}
		return (t.YearDay()-1+offset)/7 + 1
	}
}

// leadDays counts the days before the first occurrence of firstDay in
// the year: the length of the partial leading week.
func leadDays(year int, loc *time.Location, firstDay time.Weekday) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return (int(firstDay) - int(jan1.Weekday()) + 7) % 7
}
