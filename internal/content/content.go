// Package content holds the static biographical records shown by both hosts.
package content

import (
	"fmt"
	"regexp"
)

// Section ids in navigation order.
const (
	Home       = "home"
	About      = "about"
	Experience = "experience"
	Skills     = "skills"
	Projects   = "projects"
	Education  = "education"
	Contact    = "contact"
)

// SectionInfo is a navigable page section.
type SectionInfo struct {
	ID    string
	Title string
}

// Sections is the registration order used by navigation and the trackers.
var Sections = []SectionInfo{
	{ID: Home, Title: "Home"},
	{ID: About, Title: "About"},
	{ID: Experience, Title: "Experience"},
	{ID: Skills, Title: "Skills"},
	{ID: Projects, Title: "Projects"},
	{ID: Education, Title: "Education"},
	{ID: Contact, Title: "Contact"},
}

// SectionIDs returns the ids of Sections in order.
func SectionIDs() []string {
	ids := make([]string, len(Sections))
	for i, s := range Sections {
		ids[i] = s.ID
	}
	return ids
}

// Section looks up a section by id.
func Section(id string) (SectionInfo, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionInfo{}, false
}

type Skill struct {
	Name       string
	Level      string
	Percentage int
}

type Tool struct {
	Name string
}

type SkillSet struct {
	Programming []Skill
	Frameworks  []Tool
	Tools       []Tool
}

type Job struct {
	Title       string
	Company     string
	Duration    string
	Description []string
}

type School struct {
	Title       string
	Institution string
	Year        string
	Summary     string
}

type ProjectStatus string

const (
	StatusLive       ProjectStatus = "live"
	StatusInProgress ProjectStatus = "in-progress"
)

type Project struct {
	Title        string
	Summary      string
	Category     string
	Status       ProjectStatus
	Year         string
	Technologies []string
	Features     []string
	LiveURL      string
	RepoURL      string
	PrivateRepo  bool
}

// HasLiveURL reports whether the project has a deployed preview.
func (p Project) HasLiveURL() bool {
	return p.LiveURL != "" && p.LiveURL != "#"
}

type LinkKind string

const (
	LinkEmail    LinkKind = "email"
	LinkPhone    LinkKind = "phone"
	LinkGitHub   LinkKind = "github"
	LinkLinkedIn LinkKind = "linkedin"
)

type Link struct {
	Kind  LinkKind
	Label string
	Value string
	Href  string
}

type Stat struct {
	Label string
	Value string
}

var SkillsData = SkillSet{
	Programming: []Skill{
		{Name: "C#", Level: "Advanced", Percentage: 90},
		{Name: "C++", Level: "Intermediate", Percentage: 70},
		{Name: "Python", Level: "Intermediate", Percentage: 60},
		{Name: "JavaScript", Level: "Advanced", Percentage: 85},
		{Name: "TypeScript", Level: "Intermediate", Percentage: 55},
		{Name: "HTML5/CSS3", Level: "Advanced", Percentage: 90},
		{Name: "SQL", Level: "Intermediate", Percentage: 75},
	},
	Frameworks: []Tool{
		{Name: "ASP.NET"},
		{Name: "React"},
		{Name: "REST APIs"},
		{Name: "Firebase"},
		{Name: "SQL Server"},
		{Name: "Tailwind CSS"},
	},
	Tools: []Tool{
		{Name: "Visual Studio Code"},
		{Name: "Git & GitHub"},
		{Name: "SSMS"},
		{Name: "Canva"},
		{Name: "Adobe Photoshop"},
		{Name: "Microsoft Office"},
	},
}

var ExperienceData = []Job{
	{
		Title:    "Technical Project Evaluator & Corrector",
		Company:  "Online Training Company",
		Duration: "1 year (Remote)",
		Description: []string{
			"Conducted technical correction and evaluation of database projects",
			"Performed expert code reviews in C# and C++",
			"Provided technical mentoring and constructive feedback to students",
			"Identified and resolved complex technical problems",
			"Remote project correction and quality assurance",
		},
	},
	{
		Title:    "Development Intern",
		Company:  "CINEL Lisbon",
		Duration: "400+ hours (Remote)",
		Description: []string{
			"Complete web application development with ASP.NET",
			"Creating and integrating custom REST APIs",
			"Database management and optimization with SQL Server",
			"Implementation of business logic and data validation",
		},
	},
}

var EducationData = []School{
	{
		Title:       "Information Systems Management Technician",
		Institution: "Pedro Alexandrino Secondary School",
		Year:        "2025",
		Summary:     "Graduating in 2025 with practical experience in full-stack development and AI solutions integration.",
	},
	{
		Title:       "Basic Education",
		Institution: "9th Grade Completed",
		Year:        "2022",
	},
}

var ProjectsData = []Project{
	{
		Title:        "GastroAI",
		Summary:      "Artificial intelligence specialized in gastronomy to assist amateur and professional cooks.",
		Category:     "AI & Web Development",
		Status:       StatusLive,
		Year:         "2025",
		Technologies: []string{"HTML", "CSS", "JavaScript", "Node.js", "Gemini API"},
		Features: []string{
			"AI-powered personalized recipes",
			"Professional cooking tips",
			"Intelligent meal planning",
			"Interactive cooking techniques",
			"Responsive and intuitive interface",
		},
		LiveURL:     "https://gastro-ai-pap.vercel.app/",
		RepoURL:     "https://github.com/kennedysilva8907/gastro-ai",
		PrivateRepo: true,
	},
	{
		Title:        "Project in Development",
		Summary:      "New innovative project in development that will be revealed soon.",
		Category:     "Web Development",
		Status:       StatusInProgress,
		Year:         "2025",
		Technologies: []string{"React", "Node.js", "MongoDB", "Express"},
		Features: []string{
			"In development",
			"Innovative features",
			"Modern design",
			"Cutting-edge technologies",
		},
		LiveURL: "#",
	},
}

var ContactLinks = []Link{
	{Kind: LinkEmail, Label: "Email", Value: "kennedysilva2k22@gmail.com", Href: "mailto:kennedysilva2k22@gmail.com"},
	{Kind: LinkPhone, Label: "Phone", Value: "+351 964 619 289", Href: "tel:+351964619289"},
	{Kind: LinkLinkedIn, Label: "LinkedIn", Value: "kennedy-silva", Href: "https://www.linkedin.com/in/kennedy-silva-3b627b369"},
	{Kind: LinkGitHub, Label: "GitHub", Value: "kennedysilva8907", Href: "https://github.com/kennedysilva8907"},
}

var QuickStats = []Stat{
	{Label: "Experience", Value: "1+ Year"},
	{Label: "Internship Hours", Value: "400+"},
	{Label: "Projects Completed", Value: "Multiple"},
	{Label: "Specialization", Value: "Full-Stack"},
}

// LinkOf looks up a contact link by kind.
func LinkOf(kind LinkKind) (Link, bool) {
	for _, l := range ContactLinks {
		if l.Kind == kind {
			return l, true
		}
	}
	return Link{}, false
}

var hrefPattern = regexp.MustCompile(`^(mailto:|tel:\+?[0-9]+$|https://)`)

// Validate checks the static tables for values the renderers cannot display.
func Validate() error {
	for _, s := range SkillsData.Programming {
		if s.Percentage < 0 || s.Percentage > 100 {
			return fmt.Errorf("skill %q: percentage %d out of range", s.Name, s.Percentage)
		}
	}
	for _, l := range ContactLinks {
		if !hrefPattern.MatchString(l.Href) {
			return fmt.Errorf("contact link %q: unsupported href %q", l.Label, l.Href)
		}
	}
	seen := make(map[string]bool, len(Sections))
	for _, s := range Sections {
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
