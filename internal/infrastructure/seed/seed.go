// Package seed loads the bundled course catalog and demo data.
// The catalog is always built from here; the demo account and job
// board entries are only written to an empty store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/course"
	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// Demo account credentials.
const (
	DemoUserID       = "user-1"
	DemoUserEmail    = "test@skillconnect.io"
	DemoUserPassword = "password"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE CATALOG
// ══════════════════════════════════════════════════════════════════════════════

// Courses returns the bundled course catalog entries in display order.
func Courses() ([]*course.Course, error) {
	raw := []course.Course{
		{
			ID:          "course-1",
			Title:       "Modern Web Development Bootcamp",
			Description: "Master frontend and backend development with the MERN stack. Build real-world projects and launch your career as a full-stack developer.",
			Instructor:  "Sarah Mitchell",
			Duration:    "12 Weeks",
			Level:       course.LevelBeginner,
			Tags:        []string{"React", "Node.js", "MongoDB", "Express"},
			Curriculum: []course.CurriculumItem{
				{ID: "c1-1", Topic: "Introduction to HTML, CSS, & JavaScript", Details: "Covering the fundamentals of web development."},
				{ID: "c1-2", Topic: "React & Modern Frontend", Details: "Deep dive into component-based architecture with React."},
				{ID: "c1-3", Topic: "Node.js & Express for Backend", Details: "Building robust APIs and server-side logic."},
				{ID: "c1-4", Topic: "MongoDB & Data Management", Details: "Understanding NoSQL databases and data modeling."},
				{ID: "c1-5", Topic: "Full-Stack Project Deployment", Details: "Deploying your application to the cloud."},
			},
		},
		{
			ID:          "course-2",
			Title:       "Advanced Machine Learning",
			Description: "Dive deep into neural networks, deep learning, and reinforcement learning. This course is for those with a foundational knowledge of ML.",
			Instructor:  "Dr. James Park",
			Duration:    "8 Weeks",
			Level:       course.LevelAdvanced,
			Tags:        []string{"Python", "TensorFlow", "AI", "Deep Learning"},
			Curriculum: []course.CurriculumItem{
				{ID: "c2-1", Topic: "Neural Networks Foundations", Details: "Understanding the building blocks of deep learning."},
				{ID: "c2-2", Topic: "Convolutional Neural Networks (CNNs)", Details: "Mastering image recognition and analysis."},
				{ID: "c2-3", Topic: "Recurrent Neural Networks (RNNs)", Details: "Working with sequential data and natural language."},
				{ID: "c2-4", Topic: "Reinforcement Learning", Details: "Training agents to make optimal decisions."},
			},
		},
		{
			ID:          "course-3",
			Title:       "Data Science with Python",
			Description: "Learn to analyze data, create beautiful visualizations, and use powerful machine learning libraries like pandas, NumPy, and scikit-learn.",
			Instructor:  "Elena Rodriguez",
			Duration:    "10 Weeks",
			Level:       course.LevelIntermediate,
			Tags:        []string{"Python", "Data Analysis", "Pandas", "NumPy"},
			Curriculum: []course.CurriculumItem{
				{ID: "c3-1", Topic: "Data Wrangling with Pandas", Details: "Cleaning, transforming, and manipulating datasets."},
				{ID: "c3-2", Topic: "Data Visualization with Matplotlib & Seaborn", Details: "Creating insightful charts and plots."},
				{ID: "c3-3", Topic: "Statistical Analysis", Details: "Applying statistical methods to extract meaning from data."},
				{ID: "c3-4", Topic: "Introduction to Scikit-Learn", Details: "Building your first machine learning models."},
			},
		},
		{
			ID:          "course-4",
			Title:       "UI/UX Design Fundamentals",
			Description: "From wireframing to prototyping, learn the principles of user-centered design to create intuitive and beautiful digital products.",
			Instructor:  "Maya Chen",
			Duration:    "6 Weeks",
			Level:       course.LevelBeginner,
			Tags:        []string{"UI Design", "UX Research", "Figma", "Prototyping"},
			Curriculum: []course.CurriculumItem{
				{ID: "c4-1", Topic: "The Design Thinking Process", Details: "Empathizing with users and defining problems."},
				{ID: "c4-2", Topic: "Wireframing & Low-Fidelity Prototyping", Details: "Structuring your application layout."},
				{ID: "c4-3", Topic: "Visual Design Principles", Details: "Typography, color theory, and layout."},
				{ID: "c4-4", Topic: "High-Fidelity Prototyping in Figma", Details: "Creating interactive and testable prototypes."},
			},
		},
		{
			ID:          "course-5",
			Title:       "Cloud Computing with AWS",
			Description: "Learn to deploy, manage, and scale applications using Amazon Web Services. Covers core services like EC2, S3, and Lambda.",
			Instructor:  "David Osei",
			Duration:    "8 Weeks",
			Level:       course.LevelIntermediate,
			Tags:        []string{"AWS", "Cloud", "DevOps", "EC2", "S3"},
			Curriculum: []course.CurriculumItem{
				{ID: "c5-1", Topic: "Introduction to Cloud Computing", Details: "Understanding the benefits and models of cloud."},
				{ID: "c5-2", Topic: "Core AWS Services", Details: "Hands-on with EC2, S3, RDS, and VPC."},
				{ID: "c5-3", Topic: "Serverless Architecture with Lambda", Details: "Building event-driven applications."},
				{ID: "c5-4", Topic: "Infrastructure as Code with CloudFormation", Details: "Automating your cloud infrastructure."},
			},
		},
		{
			ID:          "course-6",
			Title:       "Cybersecurity Essentials",
			Description: "Learn the fundamentals of cybersecurity, including threat analysis, network security, and ethical hacking principles to protect digital assets.",
			Instructor:  "Marcus Webb",
			Duration:    "10 Weeks",
			Level:       course.LevelIntermediate,
			Tags:        []string{"Cybersecurity", "Network Security", "Ethical Hacking", "InfoSec"},
			Curriculum: []course.CurriculumItem{
				{ID: "c6-1", Topic: "Introduction to Cybersecurity", Details: "Understanding the landscape of digital threats and vulnerabilities."},
				{ID: "c6-2", Topic: "Network & Infrastructure Security", Details: "Securing networks with firewalls, VPNs, and intrusion detection systems."},
				{ID: "c6-3", Topic: "Ethical Hacking & Penetration Testing", Details: "Learning to think like a hacker to find and fix security flaws."},
				{ID: "c6-4", Topic: "Cryptography and Data Protection", Details: "Implementing encryption to protect sensitive information."},
				{ID: "c6-5", Topic: "Security Policies and Compliance", Details: "Understanding standards like GDPR, HIPAA, and ISO 27001."},
			},
		},
		{
			ID:          "course-7",
			Title:       "Agile Project Management with Scrum",
			Description: "Master the principles of Agile and the Scrum framework to deliver projects on time and on budget. Learn to lead teams, manage backlogs, and run effective sprints.",
			Instructor:  "Priya Sharma",
			Duration:    "4 Weeks",
			Level:       course.LevelBeginner,
			Tags:        []string{"Agile", "Scrum", "Project Management", "Jira"},
			Curriculum: []course.CurriculumItem{
				{ID: "c7-1", Topic: "The Agile Manifesto and Principles", Details: "Understanding the core values of Agile development."},
				{ID: "c7-2", Topic: "The Scrum Framework", Details: "Roles (Product Owner, Scrum Master), Events (Sprints, Stand-ups), and Artifacts (Backlog)."},
				{ID: "c7-3", Topic: "User Stories and Backlog Management", Details: "Writing effective user stories and prioritizing features."},
				{ID: "c7-4", Topic: "Sprint Planning and Execution", Details: "Running successful sprints from planning to retrospective."},
			},
		},
		{
			ID:          "course-8",
			Title:       "Digital Marketing Fundamentals",
			Description: "Get a comprehensive overview of digital marketing, including SEO, content marketing, social media strategy, and email campaigns to grow an online presence.",
			Instructor:  "Tom Bradley",
			Duration:    "6 Weeks",
			Level:       course.LevelBeginner,
			Tags:        []string{"Digital Marketing", "SEO", "Content Marketing", "Social Media"},
			Curriculum: []course.CurriculumItem{
				{ID: "c8-1", Topic: "Introduction to Digital Marketing", Details: "Understanding the digital marketing ecosystem."},
				{ID: "c8-2", Topic: "Search Engine Optimization (SEO)", Details: "Improving website visibility on search engines."},
				{ID: "c8-3", Topic: "Content & Social Media Marketing", Details: "Creating engaging content and building a community."},
				{ID: "c8-4", Topic: "Email Marketing and Automation", Details: "Building and nurturing an email list for conversions."},
			},
		},
		{
			ID:          "course-9",
			Title:       "Blockchain & Cryptocurrency Explained",
			Description: "Understand the core concepts behind blockchain technology, how cryptocurrencies like Bitcoin work, and the future of decentralized applications.",
			Instructor:  "Alistair Kwon",
			Duration:    "5 Weeks",
			Level:       course.LevelBeginner,
			Tags:        []string{"Blockchain", "Crypto", "Web3", "Decentralization"},
			Curriculum: []course.CurriculumItem{
				{ID: "c9-1", Topic: "What is Blockchain?", Details: "Learn about distributed ledgers, blocks, and cryptographic hashing."},
				{ID: "c9-2", Topic: "How Bitcoin Works", Details: "A deep dive into mining, transactions, and the Bitcoin network."},
				{ID: "c9-3", Topic: "Smart Contracts & Ethereum", Details: "Exploring programmable money and decentralized applications (dApps)."},
				{ID: "c9-4", Topic: "The Web3 Ecosystem", Details: "An overview of NFTs, DAOs, and the future of the internet."},
			},
		},
		{
			ID:          "course-10",
			Title:       "Mobile App Development with React Native",
			Description: "Build cross-platform mobile apps for iOS and Android using a single JavaScript codebase with React Native. Go from setup to app store deployment.",
			Instructor:  "Nina Kowalski",
			Duration:    "10 Weeks",
			Level:       course.LevelIntermediate,
			Tags:        []string{"React Native", "Mobile Dev", "iOS", "Android", "JavaScript"},
			Curriculum: []course.CurriculumItem{
				{ID: "c10-1", Topic: "Setting up the Development Environment", Details: "Configuring your machine for iOS and Android development."},
				{ID: "c10-2", Topic: "Core Components and Styling", Details: "Mastering the fundamental building blocks of a React Native app."},
				{ID: "c10-3", Topic: "Navigation and State Management", Details: "Creating multi-screen apps with complex data flows."},
				{ID: "c10-4", Topic: "Accessing Native Device Features", Details: "Using the camera, GPS, and other native APIs."},
				{ID: "c10-5", Topic: "Building, Testing, and Deploying", Details: "Preparing your app for the Apple App Store and Google Play Store."},
			},
		},
	}

	courses := make([]*course.Course, 0, len(raw))
	for _, c := range raw {
		built, err := course.NewCourse(c)
		if err != nil {
			return nil, fmt.Errorf("seed course %s: %w", c.ID, err)
		}
		courses = append(courses, built)
	}

	return courses, nil
}

// Catalog builds the catalog from the bundled courses.
func Catalog() (*course.Catalog, error) {
	courses, err := Courses()
	if err != nil {
		return nil, err
	}
	return course.NewCatalog(courses)
}

// ══════════════════════════════════════════════════════════════════════════════
// DEMO ACCOUNT
// ══════════════════════════════════════════════════════════════════════════════

// DemoUser builds the bundled demo account. The password hash is
// produced at seed time so stored credentials are never plaintext.
func DemoUser() (*user.User, error) {
	email, err := shared.NewEmailAddress(DemoUserEmail)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	u, err := user.NewUser(user.NewUserParams{
		ID:           DemoUserID,
		Name:         "Alex Doe",
		Email:        email,
		PasswordHash: string(hash),
		Bio:          "Full-stack developer with a passion for creating intuitive user experiences. Specializing in React, Node.js, and cloud technologies. Lifelong learner and tech enthusiast.",
	})
	if err != nil {
		return nil, err
	}

	u.Skills = []string{"React", "TypeScript", "Node.js", "MongoDB", "UI/UX Design", "Project Management"}
	u.Education = []user.EducationRecord{
		{Institution: "State University", Degree: "B.S. in Computer Science", Year: "2020"},
	}
	u.Experience = []user.ExperienceRecord{
		{Company: "Tech Solutions Inc.", Role: "Senior Frontend Developer", Years: "2022-Present"},
		{Company: "Innovate Co.", Role: "Junior Web Developer", Years: "2020-2022"},
	}

	if _, err := u.Enroll("course-2"); err != nil {
		return nil, err
	}

	return u, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// JOB BOARD
// ══════════════════════════════════════════════════════════════════════════════

// Jobs returns the bundled job board entries, freshest first.
// Timestamps are staggered so date ordering matches display order.
func Jobs() ([]*job.Job, error) {
	raw := []job.NewJobParams{
		{
			ID:             "job-1",
			Title:          "Senior React Developer",
			Company:        "Tech Solutions Inc.",
			Location:       "Remote",
			Description:    "We are looking for an experienced React developer to join our team and lead the development of our next-generation user interfaces.",
			RequiredSkills: []string{"React", "TypeScript", "Redux"},
			ContactInfo:    "careers@techsolutions.com",
			PostedBy:       "user-2",
		},
		{
			ID:             "job-2",
			Title:          "UX/UI Designer for Mobile App",
			Company:        "Innovate Co.",
			Location:       "San Francisco, CA",
			Description:    "Seeking a creative designer to craft a seamless and engaging user experience for our new mobile application.",
			RequiredSkills: []string{"UI/UX Design", "Figma", "Mobile Design"},
			ContactInfo:    "apply@innovateco.com",
			PostedBy:       "user-3",
		},
		{
			ID:             "job-3",
			Title:          "Backend Node.js Engineer",
			Company:        "Backend Pros",
			Location:       "New York, NY",
			Description:    "Join our backend team to build and maintain scalable APIs and services that power our platform.",
			RequiredSkills: []string{"Node.js", "Express", "MongoDB"},
			ContactInfo:    "jobs@backendpros.io",
			PostedBy:       "user-1",
		},
		{
			ID:             "job-4",
			Title:          "DevOps Engineer",
			Company:        "CloudUp",
			Location:       "Austin, TX (Hybrid)",
			Description:    "We are seeking a DevOps engineer to automate our deployment pipelines, manage our AWS infrastructure, and improve system reliability.",
			RequiredSkills: []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
			ContactInfo:    "devops-jobs@cloudup.com",
			PostedBy:       "user-4",
		},
		{
			ID:             "job-5",
			Title:          "Data Analyst",
			Company:        "Data Insights LLC",
			Location:       "Remote",
			Description:    "Analyze large datasets to identify trends, create reports, and provide actionable insights for our business development team.",
			RequiredSkills: []string{"SQL", "Python", "Pandas", "Tableau"},
			ContactInfo:    "apply@datainsights.com",
			PostedBy:       "user-2",
		},
		{
			ID:             "job-6",
			Title:          "Junior Frontend Developer",
			Company:        "Web Wizards",
			Location:       "Boston, MA",
			Description:    "Exciting opportunity for a junior developer to learn and grow. You will work on building and maintaining our marketing websites.",
			RequiredSkills: []string{"HTML", "CSS", "JavaScript", "jQuery"},
			ContactInfo:    "careers@webwizards.net",
			PostedBy:       "user-1",
		},
		{
			ID:             "job-7",
			Title:          "Product Manager",
			Company:        "Innovate Co.",
			Location:       "San Francisco, CA",
			Description:    "Lead the product roadmap for our flagship mobile app. Work with design and engineering to define, build, and launch new features.",
			RequiredSkills: []string{"Product Management", "Agile", "Jira", "User Research"},
			ContactInfo:    "pm@innovateco.com",
			PostedBy:       "user-3",
		},
		{
			ID:             "job-8",
			Title:          "Cybersecurity Analyst",
			Company:        "SecureNet",
			Location:       "Washington, D.C.",
			Description:    "Monitor our networks for security threats, investigate incidents, and help develop and implement security policies.",
			RequiredSkills: []string{"Cybersecurity", "SIEM", "Network Security", "InfoSec"},
			ContactInfo:    "security-careers@securenet.com",
			PostedBy:       "user-4",
		},
		{
			ID:             "job-9",
			Title:          "Lead Mobile Developer (React Native)",
			Company:        "Appify",
			Location:       "Remote",
			Description:    "Lead a team of mobile developers in building a high-performance cross-platform application using React Native.",
			RequiredSkills: []string{"React Native", "TypeScript", "iOS", "Android", "Team Leadership"},
			ContactInfo:    "mobile-lead@appify.com",
			PostedBy:       "user-2",
		},
	}

	base := time.Now().UTC()
	jobs := make([]*job.Job, 0, len(raw))
	for i, params := range raw {
		j, err := job.NewJob(params)
		if err != nil {
			return nil, fmt.Errorf("seed job %s: %w", params.ID, err)
		}
		j.PostedAt = base.Add(-time.Duration(i) * time.Minute)
		jobs = append(jobs, j)
	}

	return jobs, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// SEEDER
// ══════════════════════════════════════════════════════════════════════════════

// Seeder writes demo data into empty stores.
type Seeder struct {
	users user.Repository
	board job.Board
	log   *logger.Logger
}

// NewSeeder creates a seeder for the given stores.
func NewSeeder(users user.Repository, board job.Board, log *logger.Logger) *Seeder {
	return &Seeder{users: users, board: board, log: log}
}

// Run seeds the demo account and job board entries. Existing data is
// never overwritten; each section is skipped when already present.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedDemoUser(ctx); err != nil {
		return err
	}
	return s.seedJobs(ctx)
}

func (s *Seeder) seedDemoUser(ctx context.Context) error {
	email, err := shared.NewEmailAddress(DemoUserEmail)
	if err != nil {
		return err
	}

	_, err = s.users.GetByEmail(ctx, email)
	if err == nil {
		s.log.Debug("demo account already present, skipping seed")
		return nil
	}
	if !errors.Is(err, shared.ErrAccountNotFound) {
		return fmt.Errorf("check demo account: %w", err)
	}

	demo, err := DemoUser()
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, demo); err != nil {
		return fmt.Errorf("create demo account: %w", err)
	}

	s.log.Info("demo account seeded", logger.Email(DemoUserEmail))
	return nil
}

func (s *Seeder) seedJobs(ctx context.Context) error {
	existing, err := s.board.List(ctx)
	if err != nil {
		return fmt.Errorf("check job board: %w", err)
	}
	if len(existing) > 0 {
		s.log.Debug("job board already populated, skipping seed")
		return nil
	}

	jobs, err := Jobs()
	if err != nil {
		return err
	}

	// Add oldest first so a prepend-ordered board lists job-1 on top.
	for i := len(jobs) - 1; i >= 0; i-- {
		if err := s.board.Add(ctx, jobs[i]); err != nil {
			return fmt.Errorf("seed job %s: %w", jobs[i].ID, err)
		}
	}

	s.log.Info("job board seeded", logger.Int("jobs", len(jobs)))
	return nil
}
