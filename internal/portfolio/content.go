// Package portfolio holds the static site content: bio, projects, skills,
// and experience. It is data, not behavior; every front end renders from the
// same source.
package portfolio

// Project is one portfolio entry.
type Project struct {
	ID          string
	Title       string
	Description string
	Image       string
	Tags        []string
	Link        string
	GitHub      string
}

// IconKind distinguishes the two ways a skill badge can be drawn.
type IconKind int

const (
	// IconImage references a hosted image by URL.
	IconImage IconKind = iota
	// IconGlyph names a capability glyph resolved from the glyph table.
	IconGlyph
)

// Icon is a tagged variant: either an image reference or a named glyph. The
// zero value is a glyph with no name, which resolves to the default mark.
type Icon struct {
	Kind IconKind
	Ref  string
}

// glyphs maps capability names to their terminal marks.
var glyphs = map[string]string{
	"frontend": "◧",
	"backend":  "◨",
	"database": "▤",
	"tooling":  "⚒",
	"design":   "◬",
}

// Glyph resolves the icon to a renderable rune. Image icons render as a
// generic mark in the terminal; the URL is still carried for web front ends.
func (i Icon) Glyph() string {
	if i.Kind == IconImage {
		return "▣"
	}
	if g, ok := glyphs[i.Ref]; ok {
		return g
	}
	return "•"
}

// Skill is one badge on the skills grid. Level is a self-assessed 0-100.
type Skill struct {
	Name     string
	Level    int
	Category string
	Icon     Icon
}

// Experience is one entry of the work history.
type Experience struct {
	Company     string
	Role        string
	Period      string
	Description []string
}

// GitHubUser is the default profile the activity heat map tracks.
const GitHubUser = "raghavdwd"

// GitHubProfileURL is the fallback link shown when the activity feed is down.
const GitHubProfileURL = "https://github.com/" + GitHubUser

// BioInfo grounds the chat assistant's system instruction.
const BioInfo = `
I am Raghav, a computer science student obsessed with building and shipping. Debian is home base, terminals stay open, and I learn by wiring ideas into running code.
I mix React, Next.js (App Router), Tailwind, and shadcn/ui on the front, with Node.js + Express APIs guarded by middleware, JWT, and clean error handling.
Databases are split-brain by design: MongoDB + Mongoose for speed, PostgreSQL/MySQL with Prisma or Sequelize for structure. Cron jobs keep backups, alerts, and syncs healthy.
Security-curious, automation-heavy, full-stack by necessity, always iterating on small, real projects like Packet Patrol, CronCraft, and Secure Forms Kit.
`

// Projects in display order.
var Projects = []Project{
	{
		ID:          "1",
		Title:       "Private Chat",
		Description: "A secure, real-time private chat application. Create anonymous chat rooms with end-to-end privacy and instant messaging.",
		Image:       "/private-chat.png",
		Tags:        []string{"Next.js", "Elysia (API)", "Prisma", "PostgreSQL", "Tailwind", "Redis"},
		Link:        "https://private-chat-v0.vercel.app/",
	},
	{
		ID:          "2",
		Title:       "SpeakEz",
		Description: "A language learning platform where you have conversations with AI characters. Talking to imaginary AI friends, but educational.",
		Image:       "/speak-ez.png",
		Tags:        []string{"React", "Node.js", "Express", "Generative AI", "Prisma", "PostgreSQL", "Tailwind"},
		Link:        "https://speak-ez-team-web.vercel.app/",
	},
	{
		ID:          "3",
		Title:       "Repo of the Day",
		Description: "A bot that finds and shares awesome public GitHub repositories: a daily dose of the best repos via AI and good old human curation.",
		Image:       "https://picsum.photos/1200/800?random=13",
		Tags:        []string{"Express", "Cronjobs", "JWT", "Nodemailer", "Generative AI"},
		Link:        "#",
	},
}

// Skills in display order.
var Skills = []Skill{
	{Name: "React", Level: 94, Category: "Frontend", Icon: Icon{Kind: IconGlyph, Ref: "frontend"}},
	{Name: "Next.js (App Router)", Level: 91, Category: "Frontend", Icon: Icon{Kind: IconGlyph, Ref: "frontend"}},
	{Name: "Tailwind CSS", Level: 95, Category: "Frontend", Icon: Icon{Kind: IconImage, Ref: "https://cdn.simpleicons.org/tailwindcss"}},
	{Name: "shadcn/ui", Level: 86, Category: "Frontend", Icon: Icon{Kind: IconGlyph, Ref: "frontend"}},
	{Name: "Node.js", Level: 92, Category: "Backend", Icon: Icon{Kind: IconImage, Ref: "https://cdn.simpleicons.org/nodedotjs"}},
	{Name: "Express (middleware/auth)", Level: 90, Category: "Backend", Icon: Icon{Kind: IconGlyph, Ref: "backend"}},
	{Name: "REST API design", Level: 89, Category: "Backend", Icon: Icon{Kind: IconGlyph, Ref: "backend"}},
	{Name: "Cron jobs & workers", Level: 88, Category: "Backend", Icon: Icon{Kind: IconGlyph, Ref: "tooling"}},
	{Name: "MongoDB + Mongoose", Level: 90, Category: "Tools", Icon: Icon{Kind: IconGlyph, Ref: "database"}},
	{Name: "PostgreSQL/MySQL", Level: 88, Category: "Tools", Icon: Icon{Kind: IconGlyph, Ref: "database"}},
	{Name: "Prisma ORM", Level: 91, Category: "Tools", Icon: Icon{Kind: IconGlyph, Ref: "database"}},
	{Name: "Sequelize", Level: 82, Category: "Tools", Icon: Icon{Kind: IconGlyph, Ref: "database"}},
	{Name: "Docker on Debian", Level: 80, Category: "Tools", Icon: Icon{Kind: IconImage, Ref: "https://cdn.simpleicons.org/docker"}},
	{Name: "Git + CI", Level: 94, Category: "Tools", Icon: Icon{Kind: IconGlyph, Ref: "tooling"}},
	{Name: "Clean UI systems", Level: 84, Category: "Design", Icon: Icon{Kind: IconGlyph, Ref: "design"}},
}

// Experiences, most recent first.
var Experiences = []Experience{
	{
		Company: "CANGRA TALENTS",
		Role:    "AI Engineer & MERN Developer",
		Period:  "Apr 2025 - Present",
		Description: []string{
			"Building automation systems and internal tools to streamline HR workflows.",
			"Developing bots and dashboards that reduce manual tasks and provide insights from hiring data.",
		},
	},
	{
		Company: "CANGRA TALENTS",
		Role:    "Technical Blogger",
		Period:  "Aug 2024 - Apr 2025",
		Description: []string{
			"Writing engineering and security-focused blog posts for the company.",
			"Contributing technical content to build brand authority and share knowledge.",
		},
	},
	{
		Company: "Independent Builder",
		Role:    "Full-Stack Developer",
		Period:  "2023 - Present",
		Description: []string{
			"Ship MVPs fast with React, Next.js (App Router), and Tailwind + shadcn/ui.",
			"Design secure REST APIs with Express middleware, JWT auth guards, and structured error handling.",
			"Automate cron-driven workflows: backups, alerting, and data syncs across MongoDB/MySQL.",
		},
	},
}
