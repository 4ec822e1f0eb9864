// This file is part of Locutus.
//
// Locutus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Locutus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Locutus.  If not, see <https://www.gnu.org/licenses/>.

package metadata

import (
	"fmt"
	"strconv"

	"github.com/jetsetilly/locutus/curated"
)

// Error patterns.
const (
	DateEncoding = "metadata: date: %v"
)

// UTCUnknown is the value of Date.UTCDelta when the time zone is not known.
const UTCUnknown = -32768

// Date is a date with partial precision. Fields can be unknown from the right,
// so a date with an unknown month will also have an unknown day.
type Date struct {
	// the year is always known for a valid date. a year of zero means the
	// entire date is unknown
	Year int

	// month (1 to 12) and day (1 to 31). zero if unknown
	Month int
	Day   int

	// hour (0 to 23), minute (0 to 59) and second (0 to 60). negative if
	// unknown
	Hour int
	Min  int
	Sec  int

	// offset from UTC in minutes (-720 to 720) or UTCUnknown
	UTCDelta int
}

// NewDate returns a date where only the year is known.
func NewDate(year int) Date {
	return Date{
		Year:     year,
		Hour:     -1,
		Min:      -1,
		Sec:      -1,
		UTCDelta: UTCUnknown,
	}
}

// IsZero returns true if the date is unknown.
func (d Date) IsZero() bool {
	return d.Year == 0
}

func (d Date) hasUTC() bool {
	return d.UTCDelta >= -720 && d.UTCDelta <= 720
}

func (d Date) String() string {
	y, m, dd := d.Year, d.Month, d.Day
	hh, mm, ss := d.Hour, d.Min, d.Sec

	switch {
	case y == 0:
		return ""
	case m > 0 && dd > 0 && hh >= 0 && mm >= 0 && ss >= 0 && d.hasUTC():
		sign := '+'
		ad := d.UTCDelta
		if ad < 0 {
			sign = '-'
			ad = -ad
		}
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d %c%02d%02d", y, m, dd, hh, mm, ss, sign, ad/60, ad%60)
	case m > 0 && dd > 0 && hh >= 0 && mm >= 0 && ss >= 0:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", y, m, dd, hh, mm, ss)
	case m > 0 && dd > 0 && hh >= 0 && mm >= 0:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", y, m, dd, hh, mm)
	case m > 0 && dd > 0 && hh >= 0:
		return fmt.Sprintf("%04d-%02d-%02d %02d", y, m, dd, hh)
	case m > 0 && dd > 0:
		return fmt.Sprintf("%04d-%02d-%02d", y, m, dd)
	case m > 0:
		return fmt.Sprintf("%04d-%02d", y, m)
	}
	return fmt.Sprintf("%04d", y)
}

// Encode the date in the format used by LUIGI metadata blocks. The encoding
// is between one and eight bytes long.
func (d Date) Encode() []byte {
	var data []byte

	if d.Year == 0 {
		return data
	}
	data = append(data, byte(d.Year-1900))
	if d.Month == 0 {
		return data
	}
	data = append(data, byte(d.Month))
	if d.Day == 0 {
		return data
	}
	data = append(data, byte(d.Day))
	if d.Hour < 0 {
		return data
	}
	data = append(data, byte(d.Hour))
	if d.Min < 0 {
		return data
	}
	data = append(data, byte(d.Min))
	if d.Sec < 0 {
		return data
	}
	data = append(data, byte(d.Sec))

	if d.UTCDelta != UTCUnknown {
		// the hour is rounded towards negative infinity so that the minutes
		// are always a positive offset. -01:30 is encoded as -2 +30
		var uh int
		if d.UTCDelta < 0 {
			uh = -((59 - d.UTCDelta) / 60)
		} else {
			uh = d.UTCDelta / 60
		}
		um := d.UTCDelta - uh*60

		if uh >= -12 && uh <= 12 {
			data = append(data, byte(int8(uh)))
			if um != 0 {
				data = append(data, byte(um))
			}
		}
	}

	return data
}

// DecodeDate is the reverse of Date.Encode().
func DecodeDate(data []byte) (Date, error) {
	if len(data) < 1 || len(data) > 8 {
		return Date{}, curated.Errorf(DateEncoding, fmt.Sprintf("length of %d is invalid", len(data)))
	}

	limits := []byte{255, 12, 31, 23, 59, 60}
	for i := 1; i < min(len(data), len(limits)); i++ {
		if data[i] > limits[i] {
			return Date{}, curated.Errorf(DateEncoding, fmt.Sprintf("field %d out of range", i))
		}
	}

	var ud int
	if len(data) > 6 {
		ud = int(int8(data[6]))
		if ud < -12 || ud > 12 {
			return Date{}, curated.Errorf(DateEncoding, "utc hour out of range")
		}
	}
	if len(data) > 7 && data[7] > 59 {
		return Date{}, curated.Errorf(DateEncoding, "utc minute out of range")
	}

	d := NewDate(int(data[0]) + 1900)
	if len(data) > 1 {
		d.Month = int(data[1])
	}
	if len(data) > 2 {
		d.Day = int(data[2])
	}
	if len(data) > 3 {
		d.Hour = int(data[3])
	}
	if len(data) > 4 {
		d.Min = int(data[4])
	}
	if len(data) > 5 {
		d.Sec = int(data[5])
	}
	if len(data) > 6 {
		d.UTCDelta = 60 * ud
		if len(data) > 7 {
			d.UTCDelta += int(data[7])
		}
	}

	return d, nil
}

// ParseDate parses a date in one of the following formats. Fields can be
// missing from the right.
//
//	YYYY/MM/DD HH:MM:SS +hh:mm
//	YYYY-MM-DD HH:MM:SS +hhmm
//
// Two digit years are in the twentieth century. Fields that are out of range
// cause that field and all fields to its right to be unknown. Returns false if
// the string does not begin with a usable year.
func ParseDate(s string) (Date, bool) {
	a := scanDate(s, '/')
	b := scanDate(s, '-')
	if a.n == 0 && b.n == 0 {
		return Date{}, false
	}
	f := b
	if a.n > b.n {
		f = a
	}

	y, m, d := f.v[0], f.v[1], f.v[2]
	hh, mm, ss := f.v[3], f.v[4], f.v[5]
	p, hhh, mmm := f.sign, f.tz[0], f.tz[1]

	if y > 0 && y < 100 {
		y += 1900
	}
	if y < 1901 || y > 1900+255 {
		y = 0
	}
	if y == 0 || m < 0 || m > 12 {
		m = 0
	}
	if m == 0 || d < 0 || d > 31 {
		d = 0
	}
	if d == 0 || hh < 0 || hh > 23 {
		hh = -1
	}
	if hh < 0 || mm < 0 || mm > 59 {
		mm = -1
	}
	if mm < 0 || ss < 0 || ss > 60 {
		ss = -1
	}
	if ss < 0 || (p != '-' && p != '+') {
		p = 0
	}

	if p != 0 && hhh >= 0 && mmm < 0 {
		mmm = hhh % 100
		hhh /= 100
	} else if p == 0 || hhh < 0 || hhh > 12 || mmm < 0 || mmm > 59 {
		p = 0
	}

	if y == 0 {
		return Date{}, false
	}

	date := Date{
		Year:     y,
		Month:    m,
		Day:      d,
		Hour:     hh,
		Min:      mm,
		Sec:      ss,
		UTCDelta: UTCUnknown,
	}

	if p != 0 {
		delta := 60*hhh + mmm
		if p == '-' {
			delta = -delta
		}
		if delta >= -720 && delta <= 720 {
			date.UTCDelta = delta
		}
	}

	return date, true
}

// the fields found by scanDate(). n is the number of fields found, with the
// sign counted as a field
type scannedDate struct {
	n    int
	v    [6]int
	sign byte
	tz   [2]int
}

// scanDate reads the fields of a date in the order they appear. scanning
// stops at the first field that cannot be read
func scanDate(s string, sep byte) scannedDate {
	f := scannedDate{
		v:  [6]int{0, 0, 0, -1, -1, -1},
		tz: [2]int{-1, -1},
	}

	i := 0

	space := func() {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
	}

	lit := func(c byte) bool {
		if i < len(s) && s[i] == c {
			i++
			return true
		}
		return false
	}

	num := func(v *int) bool {
		space()
		j := i
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k == j {
			return false
		}
		n, err := strconv.Atoi(s[i:k])
		if err != nil {
			return false
		}
		*v = n
		i = k
		f.n++
		return true
	}

	if !num(&f.v[0]) || !lit(sep) || !num(&f.v[1]) || !lit(sep) || !num(&f.v[2]) {
		return f
	}
	if !num(&f.v[3]) || !lit(':') || !num(&f.v[4]) || !lit(':') || !num(&f.v[5]) {
		return f
	}

	space()
	if i >= len(s) {
		return f
	}
	f.sign = s[i]
	i++
	f.n++

	if !num(&f.tz[0]) || !lit(':') {
		return f
	}
	num(&f.tz[1])

	return f
}
