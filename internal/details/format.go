package details

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/actuallystonmai/movie-details/internal/domain"
)

const (
	notAvailable     = "N/A"
	PlaceholderImage = "/no-movie.png"

	posterSize   = "w500"
	backdropSize = "w1280"

	releaseDateLayout = "2006-01-02"
	longDateLayout    = "January 2, 2006"
)

// Images builds CDN URLs from the path fragments in a record.
type Images struct {
	BaseURL     string
	Placeholder string
}

func (i Images) url(size, path string) string {
	return strings.TrimRight(i.BaseURL, "/") + "/" + size + path
}

// Poster always yields something renderable.
func (i Images) Poster(path string) string {
	if path == "" {
		if i.Placeholder != "" {
			return i.Placeholder
		}
		return PlaceholderImage
	}
	return i.url(posterSize, path)
}

// Backdrop is empty when the record has no backdrop; the section is omitted.
func (i Images) Backdrop(path string) string {
	if path == "" {
		return ""
	}
	return i.url(backdropSize, path)
}

// MovieView is the display form of a record.
type MovieView struct {
	ID          int64
	Title       string
	Tagline     string
	Overview    string
	PosterURL   string
	BackdropURL string
	Rating      string
	VoteCount   int64
	ReleaseDate string
	Runtime     string
	Status      string
	Language    string
	Homepage    string
	Genres      []string
	Budget      string
	Revenue     string
	Companies   []string
	Countries   []string
}

func NewMovieView(m *domain.Movie, img Images) MovieView {
	v := MovieView{
		ID:          m.ID,
		Title:       m.Title,
		Tagline:     m.Tagline,
		Overview:    m.Overview,
		PosterURL:   img.Poster(m.PosterPath),
		BackdropURL: img.Backdrop(m.BackdropPath),
		Rating:      FormatRating(m.VoteAverage),
		VoteCount:   m.VoteCount,
		ReleaseDate: FormatReleaseDate(m.ReleaseDate),
		Runtime:     FormatRuntime(m.Runtime),
		Status:      orNA(m.Status),
		Language:    FormatLanguage(m.OriginalLanguage),
		Homepage:    m.Homepage,
		Budget:      FormatCurrency(m.Budget),
		Revenue:     FormatCurrency(m.Revenue),
	}
	if v.Title == "" {
		v.Title = m.OriginalTitle
	}
	for _, g := range m.Genres {
		v.Genres = append(v.Genres, g.Name)
	}
	for _, c := range m.ProductionCompanies {
		v.Companies = append(v.Companies, c.Name)
	}
	for _, c := range m.ProductionCountries {
		v.Countries = append(v.Countries, c.Name)
	}
	return v
}

// FormatRating renders a 0-10 vote average to one decimal, rounding half
// up on the exact decimal value of avg (7.25 -> 7.3, 8.45 -> 8.4 because
// 8.45 is stored as 8.4499...). Zero counts as absent.
func FormatRating(avg float64) string {
	if avg == 0 || math.IsNaN(avg) || math.IsInf(avg, 0) {
		return notAvailable
	}
	sign := ""
	if avg < 0 {
		sign = "-"
		avg = -avg
	}
	// 20 places is far below a float64's ulp here, so the digits are exact
	whole, frac, _ := strings.Cut(strconv.FormatFloat(avg, 'f', 20, 64), ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return notAvailable
	}
	tenths := n*10 + int64(frac[0]-'0')
	if frac[1] >= '5' {
		tenths++
	}
	return fmt.Sprintf("%s%d.%d", sign, tenths/10, tenths%10)
}

// FormatReleaseDate turns "2014-11-05" into "November 5, 2014".
func FormatReleaseDate(date string) string {
	if date == "" {
		return notAvailable
	}
	t, err := time.Parse(releaseDateLayout, date)
	if err != nil {
		return notAvailable
	}
	return t.Format(longDateLayout)
}

func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return notAvailable
	}
	return strconv.Itoa(minutes) + " mins"
}

func FormatLanguage(code string) string {
	if code == "" {
		return notAvailable
	}
	// a Caser is stateful, so one per call
	return cases.Upper(language.Und).String(code)
}

// FormatCurrency returns "" for non-positive amounts so callers can omit the
// panel entirely.
func FormatCurrency(amount int64) string {
	if amount <= 0 {
		return ""
	}
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%d", amount)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
