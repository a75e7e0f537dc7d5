package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/buildstreak/internal/model"
)

const (
	// FileExt is the extension of daily counter files.
	FileExt = ".streak"
	// DayLayout formats the local date as DD-MM-YY.
	DayLayout    = "02-01-06"
	lockFileName = ".lock"
)

// DayFileName returns the counter file name for the local date of t.
func DayFileName(t time.Time) string {
	return t.Local().Format(DayLayout) + FileExt
}

func encode(counter model.Counter) []byte {
	return []byte(strconv.Itoa(counter.Success) + "\n" + strconv.Itoa(counter.Fail))
}

// decode parses "<success>\n<fail>". A payload with the wrong number of lines
// decodes as zero; a line that is not a non-negative integer decodes as zero
// for that field only. clean is false whenever anything was defaulted.
func decode(data []byte) (counter model.Counter, clean bool) {
	text := strings.TrimRight(string(data), "\r\n")
	fields := strings.Split(text, "\n")
	if len(fields) != 2 {
		return model.Counter{}, false
	}
	success, okSuccess := parseField(fields[0])
	fail, okFail := parseField(fields[1])
	return model.Counter{Success: success, Fail: fail}, okSuccess && okFail
}

func parseField(field string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
