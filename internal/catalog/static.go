package catalog

import (
	"context"

	"github.com/nextlearn/catalog/internal/models"
)

var staticCourses = []models.Course{
	{
		ID:          1,
		Title:       "Modern Web Development",
		Description: "Master React, Next.js, and modern web tools in this comprehensive course.",
		Instructor:  "Jane Doe",
		Category:    "Web Development",
		Level:       "Beginner",
		Duration:    "8 weeks",
		Image:       "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          2,
		Title:       "UI/UX Design Essentials",
		Description: "Learn the fundamentals of user interface and user experience design.",
		Instructor:  "Alex Kim",
		Category:    "Design",
		Level:       "Beginner",
		Duration:    "6 weeks",
		Image:       "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          3,
		Title:       "Data Science Bootcamp",
		Description: "A hands-on introduction to data analysis, visualization, and machine learning.",
		Instructor:  "Priya Natarajan",
		Category:    "Data Science",
		Level:       "Intermediate",
		Duration:    "12 weeks",
		Image:       "https://images.unsplash.com/photo-1519389950473-47ba0277781c?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          4,
		Title:       "Digital Marketing Mastery",
		Description: "Grow your business and career with digital marketing strategies that work.",
		Instructor:  "Marco Rossi",
		Category:    "Marketing",
		Level:       "Intermediate",
		Duration:    "5 weeks",
		Image:       "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          5,
		Title:       "TypeScript for React Developers",
		Description: "Add static types to your React components, hooks, and state management.",
		Instructor:  "Jane Doe",
		Category:    "Web Development",
		Level:       "Intermediate",
		Duration:    "4 weeks",
		Image:       "https://images.unsplash.com/photo-1516116216624-53e697fedbea?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          6,
		Title:       "Design Systems at Scale",
		Description: "Build, document, and govern a component library shared by many product teams.",
		Instructor:  "Alex Kim",
		Category:    "Design",
		Level:       "Advanced",
		Duration:    "6 weeks",
		Image:       "https://images.unsplash.com/photo-1558655146-9f40138edfeb?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          7,
		Title:       "Machine Learning with Python",
		Description: "Train, evaluate, and deploy regression and classification models with scikit-learn.",
		Instructor:  "Priya Natarajan",
		Category:    "Data Science",
		Level:       "Advanced",
		Duration:    "10 weeks",
		Image:       "https://images.unsplash.com/photo-1555949963-aa79dcee981c?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          8,
		Title:       "SQL for Analysts",
		Description: "Query relational databases confidently, from joins to window functions.",
		Instructor:  "Tom Becker",
		Category:    "Data Science",
		Level:       "Beginner",
		Duration:    "3 weeks",
		Image:       "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          9,
		Title:       "Content Marketing & SEO",
		Description: "Plan content that ranks, converts, and keeps readers coming back.",
		Instructor:  "Marco Rossi",
		Category:    "Marketing",
		Level:       "Beginner",
		Duration:    "4 weeks",
		Image:       "https://images.unsplash.com/photo-1432888622747-4eb9a8efeb07?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          10,
		Title:       "Startup Finance Fundamentals",
		Description: "Read financial statements, model runway, and prepare for your first funding round.",
		Instructor:  "Lena Hoffmann",
		Category:    "Business",
		Level:       "Beginner",
		Duration:    "5 weeks",
		Image:       "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          11,
		Title:       "Product Management Essentials",
		Description: "Discover user needs, prioritize a roadmap, and ship features that matter.",
		Instructor:  "Lena Hoffmann",
		Category:    "Business",
		Level:       "Intermediate",
		Duration:    "6 weeks",
		Image:       "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:          12,
		Title:       "Advanced Node.js APIs",
		Description: "Design resilient REST and streaming APIs with Node.js, testing, and observability.",
		Instructor:  "Tom Becker",
		Category:    "Web Development",
		Level:       "Advanced",
		Duration:    "8 weeks",
		Image:       "https://images.unsplash.com/photo-1627398242454-45a1465c2479?auto=format&fit=crop&w=400&q=80",
	},
}

var features = []models.Feature{
	{
		Title:       "Expert Instructors",
		Description: "Learn from industry leaders and experienced educators.",
		Icon:        "academic-cap",
	},
	{
		Title:       "Flexible Learning",
		Description: "Access courses anytime, anywhere, on any device.",
		Icon:        "device-phone-mobile",
	},
	{
		Title:       "Certification",
		Description: "Earn certificates to showcase your achievements.",
		Icon:        "check-badge",
	},
	{
		Title:       "Community Support",
		Description: "Join a vibrant community of learners and mentors.",
		Icon:        "user-group",
	},
}

type staticProvider struct{}

// NewStaticProvider returns a provider serving the built-in course list
func NewStaticProvider() *staticProvider {
	return &staticProvider{}
}

// GetAll returns a copy of the built-in course list
func (p *staticProvider) GetAll(ctx context.Context) ([]models.Course, error) {
	return append([]models.Course(nil), staticCourses...), nil
}

// Features returns the feature tiles shown on the home page
func Features() []models.Feature {
	return append([]models.Feature(nil), features...)
}
