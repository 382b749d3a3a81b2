package service

import (
	"context"
	"fmt"

	"termfolio/internal/portfolio"
)

// Seed wipes projects, education, tech stack and experience and loads the
// demo fixture. The resume record is left alone. Destructive but
// idempotent in effect: every run yields the same data.
func (s *Store) Seed(ctx context.Context) error {
	if err := s.Projects.deleteAll(ctx); err != nil {
		return fmt.Errorf("seed: clear projects: %w", err)
	}
	if err := s.Education.deleteAll(ctx); err != nil {
		return fmt.Errorf("seed: clear education: %w", err)
	}
	if err := s.TechStack.deleteAll(ctx); err != nil {
		return fmt.Errorf("seed: clear techstack: %w", err)
	}
	if err := s.Experience.deleteAll(ctx); err != nil {
		return fmt.Errorf("seed: clear experience: %w", err)
	}

	projects := []*portfolio.Project{
		{
			Title:       "Terminal Portfolio",
			Description: "A highly interactive, Mac-terminal styled portfolio website. Features command-line navigation and rich UI animations.",
			TechBucket:  []string{"Go", "Gin", "MongoDB", "Bubble Tea"},
			Link:        "#",
		},
		{
			Title:       "E-Commerce Platform",
			Description: "Full-featured shopping platform with cart, payment gateway integration, and admin dashboard.",
			TechBucket:  []string{"Next.js", "Stripe", "PostgreSQL", "Prisma"},
			Link:        "#",
		},
		{
			Title:       "Task Management App",
			Description: "Real-time task collaboration tool with drag-and-drop kanban boards and team chat.",
			TechBucket:  []string{"Vue.js", "Firebase", "Vuex"},
			Link:        "#",
		},
	}

	education := []*portfolio.Education{
		{
			Institution: "Stanford University",
			Degree:      "Master of Science in Computer Science",
			Year:        "2022-2024",
			Details:     "Specialized in Artificial Intelligence. Research paper on Neural Networks published.",
		},
		{
			Institution: "University of Technology",
			Degree:      "Bachelor of Engineering in Software",
			Year:        "2018-2022",
			Details:     "Graduated with Honors. Sentinel Project Lead.",
		},
	}

	techStack := []*portfolio.TechStack{
		{Category: "Frontend", Items: []string{"React", "Next.js", "Vue", "Tailwind", "Framer Motion"}},
		{Category: "Backend", Items: []string{"Go", "Gin", "Node.js", "Python", "GraphQL"}},
		{Category: "Database", Items: []string{"MongoDB", "PostgreSQL", "Redis"}},
		{Category: "DevOps", Items: []string{"Docker", "AWS", "CI/CD", "Git"}},
	}

	experience := []*portfolio.Experience{
		{
			Role:        "Senior Software Engineer",
			Company:     "Tech Corp Inc.",
			Duration:    "2024 - Present",
			Description: "Leading a team of 5 developers building scalable cloud solutions. Reduced server costs by 30%.",
		},
		{
			Role:        "Full Stack Developer",
			Company:     "Creative Startups LLC",
			Duration:    "2022 - 2024",
			Description: "Developed and launched 3 major web applications. Implemented real-time features using WebSockets.",
		},
	}

	for _, p := range projects {
		if _, err := s.Projects.insert(ctx, p); err != nil {
			return fmt.Errorf("seed: insert project: %w", err)
		}
	}
	for _, e := range education {
		if _, err := s.Education.insert(ctx, e); err != nil {
			return fmt.Errorf("seed: insert education: %w", err)
		}
	}
	for _, ts := range techStack {
		if _, err := s.TechStack.insert(ctx, ts); err != nil {
			return fmt.Errorf("seed: insert techstack: %w", err)
		}
	}
	for _, e := range experience {
		if _, err := s.Experience.insert(ctx, e); err != nil {
			return fmt.Errorf("seed: insert experience: %w", err)
		}
	}
	return nil
}
