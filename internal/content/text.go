package content

// Prose blocks are Markdown; the web host renders them with goldmark and the
// terminal host strips the emphasis markers.
var (
	Name     = "Kennedy Silva"
	Role     = "Full-Stack Developer"
	Headline = "Information Systems Management Technician"
	Status   = "Available for work"
	Initials = "KS"

	AboutMe = []string{
		`Dedicated and versatile professional with a strong ability to adapt to both
in-person and remote work environments. During my internship at **CINEL Lisbon**,
I developed solid skills in self-employment and remote project management,
demonstrating discipline and organization.`,
		`I am always available for new challenges, whether in a face-to-face, remote,
or hybrid environment, adapting easily to the needs of the team and the company.`,
	}

	Languages    = []string{"Portuguese (Native)", "English (B1)"}
	Availability = []string{"Remote", "Hybrid", "On-site"}

	ContactBlurb = `I'm always open to discussing new projects, creative ideas or
opportunities to be part of your vision.`

	Footer = "Built with Go. Decorations are purely cosmetic."
)

// HeaderTexts rotate in the navigation bar.
var HeaderTexts = []string{
	"Building Tomorrow",
	"Coding Dreams",
	"Creating Solutions",
	"Full-Stack Magic",
}

// CodeSnippets rotate in the hero terminal card.
var CodeSnippets = []string{
	`const developer = "Kennedy Silva";`,
	"function createAwesome() {",
	"  return innovation + creativity;",
	"}",
	"class FullStackDev {",
	"  constructor() {",
	`    this.skills = ["C#", "JavaScript", "Python"];`,
	`    this.passion = "coding";`,
	"  }",
	"}",
	"if (challenge.isComplex()) {",
	"  solution = findCreativeWay();",
	"}",
	"const future = await buildTomorrow();",
}
