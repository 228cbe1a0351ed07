// Package server renders the portfolio as HTML over gin.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/particles"
)

//go:embed templates/*.html
var templateFS embed.FS

// page is the data every template receives.
type page struct {
	Dark    bool
	Compact bool

	Name, Role, Headline, Status, Initials string
	HeaderText                             string
	Photo                                  string
	Code                                   template.HTML
	About                                  []template.HTML
	ContactBlurb                           template.HTML
	Footer                                 string

	Languages    []string
	Availability []string
	Stats        []content.Stat
	Sections     []content.SectionInfo
	Skills       content.SkillSet
	Jobs         []content.Job
	Schools      []content.School
	Projects     []content.Project
	Links        []link
}

// link is a contact link whose href content.Validate has already checked, so
// schemes html/template does not know (tel:) survive escaping.
type link struct {
	Kind  content.LinkKind
	Label string
	Value string
	Href  template.URL
}

func links() []link {
	out := make([]link, len(content.ContactLinks))
	for i, l := range content.ContactLinks {
		out[i] = link{Kind: l.Kind, Label: l.Label, Value: l.Value, Href: template.URL(l.Href)}
	}
	return out
}

// prose holds the Markdown output for one theme.
type prose struct {
	code    template.HTML
	about   []template.HTML
	contact template.HTML
}

type Server struct {
	cfg    *config.Config
	router *gin.Engine
	photo  string
	links  []link
	dark   prose
	light  prose
}

func New(cfg *config.Config) (*Server, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	gin.SetMode(cfg.Mode)

	s := &Server{cfg: cfg, links: links()}

	var err error
	if s.dark, err = renderProse(newMarkdown("dracula")); err != nil {
		return nil, err
	}
	if s.light, err = renderProse(newMarkdown("github")); err != nil {
		return nil, err
	}

	photo := filepath.Join(cfg.ImagesDir, cfg.ProfileImage)
	if _, err := os.Stat(photo); err == nil {
		s.photo = "/images/" + cfg.ProfileImage
	} else {
		log.Printf("Profile image %s unavailable, using placeholder", photo)
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	if dirExists(cfg.ImagesDir) {
		r.Static("/images", cfg.ImagesDir)
	}
	if dirExists(cfg.StaticDir) {
		r.Static("/static", cfg.StaticDir)
	}
	s.routes(r)
	s.router = r
	return s, nil
}

func renderProse(md markdown) (prose, error) {
	var p prose
	var err error
	if p.code, err = md.code("js", content.CodeSnippets); err != nil {
		return p, err
	}
	for _, para := range content.AboutMe {
		html, err := md.render(para)
		if err != nil {
			return p, err
		}
		p.about = append(p.about, html)
	}
	if p.contact, err = md.render(content.ContactBlurb); err != nil {
		return p, err
	}
	return p, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (s *Server) routes(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", s.page(c))
	})

	// Single section fragment
	r.GET("/section/:id", func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := content.Section(id); !ok {
			c.String(http.StatusNotFound, "unknown section %q", id)
			return
		}
		c.HTML(http.StatusOK, id, s.page(c))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *Server) page(c *gin.Context) page {
	dark := s.cfg.Dark()
	switch c.Query("theme") {
	case string(config.ThemeLight):
		dark = false
	case string(config.ThemeDark):
		dark = true
	}
	p := s.light
	if dark {
		p = s.dark
	}

	compact := false
	switch s.cfg.Device {
	case config.DeviceMobile:
		compact = true
	case config.DeviceAuto:
		// Without a viewport width only the user agent can tell.
		compact = particles.Detect(particles.MobileWidth, c.GetHeader("User-Agent")) == particles.Mobile
	}

	return page{
		Dark:         dark,
		Compact:      compact,
		Name:         content.Name,
		Role:         content.Role,
		Headline:     content.Headline,
		Status:       content.Status,
		Initials:     content.Initials,
		HeaderText:   content.HeaderTexts[0],
		Photo:        s.photo,
		Code:         p.code,
		About:        p.about,
		ContactBlurb: p.contact,
		Footer:       content.Footer,
		Languages:    content.Languages,
		Availability: content.Availability,
		Stats:        content.QuickStats,
		Sections:     content.Sections,
		Skills:       content.SkillsData,
		Jobs:         content.ExperienceData,
		Schools:      content.EducationData,
		Projects:     content.ProjectsData,
		Links:        s.links,
	}
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Portfolio listening on :%s", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	log.Println("Portfolio server stopped")
	return nil
}
