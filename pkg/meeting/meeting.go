package meeting

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// DemoLinks are pre-baked sample URLs returned in demo mode so demos stay
// visually stable. None of them points at a live meeting.
var DemoLinks = []string{
	"https://zoom.us/j/93765482106?pwd=eWVhcmFyZ3BBMXF0aXJsUDc4VnVsQT09",
	"https://zoom.us/j/91234567890?pwd=aBcDeFgHiJkLmNoPqRsTuV",
	"https://zoom.us/j/98765432101?pwd=zYxWvUtsRqPoNmLkJ",
	"https://zoom.us/j/94567123890?pwd=Q1d2Z3N4a5B6c7D8e9F0",
	"https://zoom.us/j/99876543210?pwd=G1h2I3j4K5l6M7n8O9p0",
}

// Digits-only meeting id, optional alphanumeric pwd query, nothing else.
var linkPattern = regexp.MustCompile(`^https://([\w.-]+\.)?zoom\.us/j/\d+(\?pwd=\w+)?$`)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generator produces synthetic meeting URLs. It never contacts any service.
type Generator struct {
	demoMode bool
	rand     *rand.Rand
}

// NewGenerator builds a generator. A nil source falls back to a time-seeded
// one; tests inject a fixed seed for reproducible output.
func NewGenerator(demoMode bool, src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{demoMode: demoMode, rand: rand.New(src)}
}

// MeetingURL returns a fresh synthetic meeting link, or a random entry from
// the demo pool when running in demo mode.
func (g *Generator) MeetingURL() string {
	if g.demoMode {
		return DemoLinks[g.rand.Intn(len(DemoLinks))]
	}

	// 11-digit meeting id in [1e10, 1e11).
	meetingID := 10_000_000_000 + g.rand.Int63n(90_000_000_000)

	// 6-10 character alphanumeric password.
	length := 6 + g.rand.Intn(5)
	var pwd strings.Builder
	for i := 0; i < length; i++ {
		pwd.WriteByte(passwordAlphabet[g.rand.Intn(len(passwordAlphabet))])
	}

	return fmt.Sprintf("https://zoom.us/j/%d?pwd=%s", meetingID, pwd.String())
}

// IsValidMeetingLink reports whether the string matches the standard meeting
// URL shape.
func IsValidMeetingLink(link string) bool {
	return linkPattern.MatchString(link)
}
