//go:build unit || e2e

// Package backendtest serves an in-memory stand-in for the theater backend REST API.
package backendtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"theater-console/internal/pkg/wallclock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Duration    int      `json:"duration"`
	Experiences []string `json:"experience"`
	Languages   []string `json:"languages"`
}

type Screen struct {
	TheaterID    string   `json:"theaterId"`
	ScreenNumber int      `json:"screenNumber"`
	Experiences  []string `json:"experiences"`
}

type movieRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Show struct {
	ID           string             `json:"id"`
	Movie        movieRef           `json:"movie"`
	TheaterID    string             `json:"theaterId"`
	ScreenNumber int                `json:"screenNumber"`
	ShowTime     string             `json:"showTime"`
	EndTime      string             `json:"endTime"`
	Language     string             `json:"language"`
	Experience   string             `json:"experience"`
	IntervalTime int                `json:"intervalTime"`
	CleanupTime  int                `json:"cleanupTime"`
	Status       string             `json:"status"`
	Pricing      map[string]float64 `json:"pricing"`
}

type payload struct {
	MovieID      string             `json:"movieId"`
	TheaterID    string             `json:"theaterId"`
	ScreenNumber int                `json:"screenNumber"`
	ShowTime     string             `json:"showTime"`
	Language     string             `json:"language"`
	Experience   string             `json:"experience"`
	CleanupTime  int                `json:"cleanupTime"`
	IntervalTime int                `json:"intervalTime"`
	Pricing      map[string]float64 `json:"pricing"`
}

// Server keeps movies, screens and shows in memory. It does not check overlaps itself.
type Server struct {
	URL string

	mu      sync.Mutex
	loc     *time.Location
	movies  map[string]Movie
	screens map[string]Screen
	shows   map[string]Show
	down    bool
	hexIDs  bool
	nextID  int
}

func New(t *testing.T, loc *time.Location) *Server {
	t.Helper()

	s := &Server{
		loc:     loc,
		movies:  map[string]Movie{},
		screens: map[string]Screen{},
		shows:   map[string]Show{},
	}
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	s.URL = ts.URL
	return s
}

func (s *Server) AddMovie(m Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies[m.ID] = m
}

func (s *Server) AddScreen(sc Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screens[screenKey(sc.TheaterID, sc.ScreenNumber)] = sc
}

// SetDown makes every endpoint answer 503 until reset.
func (s *Server) SetDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

// UseHexIDs makes new shows get 24-hex ids the way document-store backends issue them.
func (s *Server) UseHexIDs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hexIDs = true
}

func (s *Server) newID() string {
	if !s.hexIDs {
		return uuid.NewString()
	}
	s.nextID++
	return fmt.Sprintf("64f1a2b3c4d5%012x", s.nextID)
}

func (s *Server) Shows() []Show {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Show, 0, len(s.shows))
	for _, sh := range s.shows {
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShowTime < out[j].ShowTime })
	return out
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = map[string]Movie{}
	s.screens = map[string]Screen{}
	s.shows = map[string]Show{}
	s.down = false
	s.hexIDs = false
}

func (s *Server) routes() http.Handler {
	r := gin.New()
	r.Use(s.availability)
	r.GET("/movies/:id", s.getMovie)
	r.GET("/theaters/:theaterId/screens/:screenNumber", s.getScreen)
	r.GET("/shows/theater/:theaterId/screen/:screenNumber", s.listShows)
	r.GET("/shows/:id", s.getShow)
	r.POST("/shows", s.createShow)
	r.PUT("/shows/:id", s.updateShow)
	r.DELETE("/shows/:id", s.deleteShow)
	return r
}

func (s *Server) availability(c *gin.Context) {
	s.mu.Lock()
	down := s.down
	s.mu.Unlock()
	if down {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "maintenance"})
		return
	}
	c.Next()
}

func (s *Server) getMovie(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (s *Server) getScreen(c *gin.Context) {
	n, _ := strconv.Atoi(c.Param("screenNumber"))
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.screens[screenKey(c.Param("theaterId"), n)]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "screen not found"})
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (s *Server) listShows(c *gin.Context) {
	n, _ := strconv.Atoi(c.Param("screenNumber"))
	from, err1 := wallclock.ParseInstant(c.Query("startDate"), s.loc)
	to, err2 := wallclock.ParseInstant(c.Query("endDate"), s.loc)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid range"})
		return
	}

	out := []Show{}
	for _, sh := range s.Shows() {
		if sh.TheaterID != c.Param("theaterId") || sh.ScreenNumber != n {
			continue
		}
		start, _ := wallclock.ParseInstant(sh.ShowTime, s.loc)
		if start.Before(from) || start.After(to) {
			continue
		}
		out = append(out, sh)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getShow(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.shows[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "show not found"})
		return
	}
	c.JSON(http.StatusOK, sh)
}

func (s *Server) createShow(c *gin.Context) {
	var p payload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.materialize(s.newID(), p)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown movie or bad showTime"})
		return
	}
	s.shows[sh.ID] = sh
	c.JSON(http.StatusCreated, sh)
}

func (s *Server) updateShow(c *gin.Context) {
	var p payload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.shows[c.Param("id")]; !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "show not found"})
		return
	}
	sh, ok := s.materialize(c.Param("id"), p)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown movie or bad showTime"})
		return
	}
	s.shows[sh.ID] = sh
	c.JSON(http.StatusOK, sh)
}

func (s *Server) deleteShow(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shows[c.Param("id")]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "show not found"})
		return
	}
	delete(s.shows, c.Param("id"))
	c.Status(http.StatusNoContent)
}

// materialize derives endTime the way the backend does: movie + interval + cleanup.
func (s *Server) materialize(id string, p payload) (Show, bool) {
	m, ok := s.movies[p.MovieID]
	if !ok {
		return Show{}, false
	}
	start, err := wallclock.ParseInstant(p.ShowTime, s.loc)
	if err != nil {
		return Show{}, false
	}
	end := start.Add(time.Duration(m.Duration+p.IntervalTime+p.CleanupTime) * time.Minute)
	return Show{
		ID:           id,
		Movie:        movieRef{ID: m.ID, Title: m.Title},
		TheaterID:    p.TheaterID,
		ScreenNumber: p.ScreenNumber,
		ShowTime:     wallclock.FormatShowTime(start, s.loc),
		EndTime:      wallclock.FormatShowTime(end, s.loc),
		Language:     p.Language,
		Experience:   p.Experience,
		IntervalTime: p.IntervalTime,
		CleanupTime:  p.CleanupTime,
		Status:       "OPEN",
		Pricing:      p.Pricing,
	}, true
}

func screenKey(theaterID string, n int) string {
	return theaterID + "#" + strconv.Itoa(n)
}
