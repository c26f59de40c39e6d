package roadmap

import "skillgap-analyzer/internal/models"

const (
	durationShort = "1–2 months"
	durationCore  = "2 months"
)

func phases(first, second, third []string) []models.RoadmapPhase {
	return []models.RoadmapPhase{
		{Phase: "Phase 1", Duration: durationShort, Items: first},
		{Phase: "Phase 2", Duration: durationCore, Items: second},
		{Phase: "Phase 3", Duration: durationShort, Items: third},
	}
}

// roleCurricula is keyed by the folded role name.
var roleCurricula = map[string][]models.RoadmapPhase{
	"frontend developer": phases(
		[]string{"HTML", "CSS", "JavaScript Basics", "Git", "Responsive Design"},
		[]string{"React", "Component Architecture", "State Management", "APIs Integration", "Build Tools"},
		[]string{"Portfolio Projects", "Deployment (Vercel/Netlify)", "Performance Optimization", "Testing Basics"},
	),
	"backend developer": phases(
		[]string{"Java", "OOP", "Git", "Basic Algorithms", "SQL Fundamentals"},
		[]string{"Spring Boot", "SQL", "APIs", "Database Design", "Authentication"},
		[]string{"Deployment", "Projects", "System Design Basics", "Docker", "Cloud Basics"},
	),
	"data analyst": phases(
		[]string{"Excel", "SQL Basics", "Statistics Fundamentals", "Data Cleaning", "Git"},
		[]string{"Python", "Pandas", "Data Visualization", "Dashboards", "Advanced SQL"},
		[]string{"Real Projects", "Tableau/Power BI", "Reporting", "Portfolio Building", "Business Metrics"},
	),
}

var genericCurriculum = phases(
	[]string{"Basics", "Fundamentals", "Core Concepts", "Version Control", "Problem Solving"},
	[]string{"Tools & Technologies", "Frameworks", "Best Practices", "Advanced Concepts", "APIs"},
	[]string{"Projects & Portfolio", "Deployment", "Testing", "System Design", "Interview Prep"},
)

type skillResources struct {
	beginner     []string
	intermediate []string
	duration     string
}

// skillResourceTable is keyed by the folded skill name.
var skillResourceTable = map[string]skillResources{
	"javascript": {
		beginner:     []string{"freeCodeCamp", "MDN Web Docs", "JavaScript.info"},
		intermediate: []string{"You Don't Know JS", "Eloquent JavaScript"},
		duration:     "4-6 weeks",
	},
	"react": {
		beginner:     []string{"React Official Docs", "React for Beginners"},
		intermediate: []string{"Advanced React Patterns", "React Performance"},
		duration:     "3-4 weeks",
	},
	"node.js": {
		beginner:     []string{"Node.js Official Docs", "The Net Ninja Node.js"},
		intermediate: []string{"Node.js Design Patterns", "Advanced Node.js"},
		duration:     "4-5 weeks",
	},
	"python": {
		beginner:     []string{"Python.org Tutorial", "Automate the Boring Stuff"},
		intermediate: []string{"Fluent Python", "Effective Python"},
		duration:     "3-4 weeks",
	},
}

var genericResources = skillResources{
	beginner:     []string{"Online courses", "Official documentation"},
	intermediate: []string{"Advanced tutorials", "Practice projects"},
	duration:     "3-4 weeks",
}

const weeksPerSkill = 4

var studyTips = []string{
	"Practice daily for at least 1-2 hours",
	"Build projects to reinforce learning",
	"Join online communities for support",
	"Document your learning journey",
}

var templates = []models.RoadmapTemplate{
	{
		Role:     "Full Stack Developer",
		Duration: "6-12 months",
		Phases: []models.TemplatePhase{
			{Name: "Frontend Basics", Skills: []string{"HTML", "CSS", "JavaScript"}},
			{Name: "Frontend Framework", Skills: []string{"React", "Redux"}},
			{Name: "Backend Development", Skills: []string{"Node.js", "Express", "MongoDB"}},
			{Name: "DevOps & Deployment", Skills: []string{"Git", "Docker", "AWS"}},
		},
	},
	{
		Role:     "Data Scientist",
		Duration: "8-12 months",
		Phases: []models.TemplatePhase{
			{Name: "Programming Foundation", Skills: []string{"Python", "SQL"}},
			{Name: "Data Analysis", Skills: []string{"Pandas", "NumPy", "Matplotlib"}},
			{Name: "Machine Learning", Skills: []string{"Scikit-learn", "TensorFlow"}},
			{Name: "Advanced Topics", Skills: []string{"Deep Learning", "NLP", "Computer Vision"}},
		},
	},
}
