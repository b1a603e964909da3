package repository

import (
	"time"

	"github.com/noah-isme/skillswap-api/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedCategories is the fixed category taxonomy.
var seedCategories = []models.Category{
	{ID: "1", Name: "Web Development", Icon: "code-2", Type: "technical"},
	{ID: "2", Name: "Mobile Development", Icon: "smartphone", Type: "technical"},
	{ID: "3", Name: "Data Science", Icon: "bar-chart", Type: "technical"},
	{ID: "4", Name: "Cloud Computing", Icon: "cloud", Type: "technical"},
	{ID: "5", Name: "Artificial Intelligence", Icon: "cpu", Type: "technical"},
	{ID: "6", Name: "Cybersecurity", Icon: "shield", Type: "technical"},
	{ID: "7", Name: "Language Learning", Icon: "languages", Type: "cultural"},
	{ID: "8", Name: "Cultural History", Icon: "landmark", Type: "cultural"},
	{ID: "9", Name: "Traditional Arts", Icon: "palette", Type: "cultural"},
	{ID: "10", Name: "Cooking", Icon: "utensils", Type: "cultural"},
	{ID: "11", Name: "Digital Art", Icon: "pen-tool", Type: "creative"},
	{ID: "12", Name: "Music Production", Icon: "music", Type: "creative"},
	{ID: "13", Name: "Photography", Icon: "camera", Type: "creative"},
	{ID: "14", Name: "Creative Writing", Icon: "pen", Type: "creative"},
	{ID: "15", Name: "Digital Marketing", Icon: "trending-up", Type: "business"},
	{ID: "16", Name: "Project Management", Icon: "clipboard-list", Type: "business"},
	{ID: "17", Name: "Entrepreneurship", Icon: "briefcase", Type: "business"},
	{ID: "18", Name: "Fitness Training", Icon: "activity", Type: "lifestyle"},
	{ID: "19", Name: "Mindfulness", Icon: "heart", Type: "lifestyle"},
	{ID: "20", Name: "Personal Finance", Icon: "dollar-sign", Type: "lifestyle"},
}

// seedProviders is the static teacher roster. Order and creation dates matter:
// the resolver's roster tier picks the earliest CreatedAt among matches.
var seedProviders = []models.Provider{
	{
		ID: "1", Name: "Alex Morgan", Email: "alex@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=1",
		Bio:      "UI/UX designer with 5+ years of experience",
		Location: "San Francisco, CA",
		Skills:   []string{"UI Design", "UX Design", "Figma"},
		CreatedAt: date(2023, time.January, 15),
	},
	{
		ID: "2", Name: "Sam Wilson", Email: "sam@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=2",
		Bio:      "Full-stack developer focused on React and Node.js",
		Location: "New York, NY",
		Skills:   []string{"React", "Node.js", "JavaScript", "C++", "Python"},
		CreatedAt: date(2023, time.February, 20),
	},
	{
		ID: "3", Name: "Jordan Lee", Email: "jordan@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=3",
		Bio:      "Marketing specialist with expertise in social media campaigns",
		Location: "Chicago, IL",
		Skills:   []string{"Social Media Marketing", "Content Strategy", "SEO"},
		CreatedAt: date(2023, time.March, 10),
	},
	{
		ID: "4", Name: "Taylor Swift", Email: "taylor@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=4",
		Bio:      "Professional photographer specializing in portraits and events",
		Location: "Austin, TX",
		Skills:   []string{"Photography", "Photo Editing", "Lightroom"},
		CreatedAt: date(2023, time.April, 5),
	},
	{
		ID: "5", Name: "Deepanshu Kumar", Email: "deepanshu@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=5",
		Bio:      "Programming instructor with 8+ years of experience teaching C++ and algorithms",
		Location: "Bangalore, India",
		Skills:   []string{"C++", "Data Structures", "Algorithms", "Programming Fundamentals"},
		CreatedAt: date(2023, time.May, 15),
	},
	{
		ID: "6", Name: "Prachi Rai", Email: "prachi@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=6",
		Bio:      "AI specialist with expertise in machine learning and neural networks",
		Location: "Mumbai, India",
		Skills:   []string{"Artificial Intelligence", "Machine Learning", "Neural Networks", "Python", "TensorFlow"},
		CreatedAt: date(2023, time.September, 20),
	},
	{
		ID: "7", Name: "Ankit Sharma", Email: "ankit@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=7",
		Bio:      "Data Scientist with focus on predictive analytics and data visualization",
		Location: "Patna, India",
		Skills:   []string{"Data Science", "Python", "R", "Machine Learning", "Data Visualization"},
		CreatedAt: date(2023, time.October, 15),
	},
	{
		ID: "8", Name: "Raman Verma", Email: "raman@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=8",
		Bio:      "Cloud computing expert specializing in AWS, Azure and Google Cloud",
		Location: "Rohtak, India",
		Skills:   []string{"Cloud Computing", "AWS", "Azure", "Google Cloud", "DevOps"},
		CreatedAt: date(2023, time.November, 10),
	},
	{
		ID: "9", Name: "Abhiraj Singh", Email: "abhiraj@example.com",
		Avatar:   "https://i.pravatar.cc/150?img=9",
		Bio:      "Full-stack developer with expertise in MERN and MEAN stacks",
		Location: "Dubai, UAE",
		Skills:   []string{"Full-Stack Development", "React", "Node.js", "MongoDB", "Express", "Angular"},
		CreatedAt: date(2023, time.December, 5),
	},
}

func listing(id, title, description, category, image string, ownerIdx int, rating float64, created time.Time) models.SkillListing {
	return models.SkillListing{
		ID: id, Title: title, Description: description, Category: category,
		Image: image, Owner: seedProviders[ownerIdx], Rating: rating, CreatedAt: created,
	}
}

// seedListings is the static skill catalog. Catalog order matters: the
// resolver's exact tier returns the first match in this order.
var seedListings = []models.SkillListing{
	listing("1", "Website Design & Development",
		"I can design and develop responsive websites using modern technologies like React, Tailwind CSS, and more.",
		"Development", "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800", 1, 4.8, date(2023, time.May, 10)),
	listing("2", "Logo & Brand Identity Design",
		"I create memorable logos and comprehensive brand identity systems that help businesses stand out.",
		"Design", "https://images.unsplash.com/photo-1560157368-946d9c8f7cb6?w=800", 0, 4.9, date(2023, time.May, 15)),
	listing("3", "Social Media Marketing Strategy",
		"I can help develop and implement effective social media marketing strategies to grow your audience and engagement.",
		"Marketing", "https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7?w=800", 2, 4.7, date(2023, time.June, 1)),
	listing("4", "Portrait & Event Photography",
		"Professional photography services for portraits, events, and product photography with quick turnaround times.",
		"Photography", "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=800", 3, 4.9, date(2023, time.June, 15)),
	listing("5", "Mobile App UI/UX Design",
		"I design intuitive and engaging user interfaces for mobile applications with a focus on user experience.",
		"Design", "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=800", 0, 4.8, date(2023, time.July, 1)),
	listing("6", "Content Writing & Copywriting",
		"I create compelling content and copy for websites, blogs, social media, and marketing materials.",
		"Writing", "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=800", 2, 4.6, date(2023, time.July, 15)),
	listing("7", "C++ Programming & Data Structures",
		"Learn C++ programming from basic syntax to advanced concepts like OOP, STL, and data structures.",
		"Programming", "https://images.unsplash.com/photo-1542831371-29b0f74f9713?w=800", 4, 4.9, date(2023, time.August, 1)),
	listing("8", "Algorithms in C++",
		"Master algorithmic problem solving in C++ for competitive programming and technical interviews.",
		"Programming", "https://images.unsplash.com/photo-1555949963-ff9fe0c870eb?w=800", 4, 4.8, date(2023, time.August, 15)),
	listing("9", "Artificial Intelligence Fundamentals",
		"Learn the basics of AI including machine learning algorithms, neural networks, and practical applications",
		"Artificial Intelligence", "https://images.unsplash.com/photo-1677442135136-760c813a886d?w=800", 5, 4.9, date(2023, time.September, 25)),
	listing("10", "Data Science with Python",
		"Master data science techniques using Python, pandas, numpy, and scikit-learn for data analysis and visualization",
		"Data Science", "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800", 6, 4.8, date(2023, time.October, 20)),
	listing("11", "Cloud Computing Architecture",
		"Learn to design, implement and manage cloud infrastructure using AWS, Azure and Google Cloud services",
		"Cloud Computing", "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?w=800", 7, 4.7, date(2023, time.November, 15)),
	listing("12", "Full-Stack Web Development",
		"Comprehensive course covering both frontend and backend development using modern JavaScript frameworks and tools",
		"Development", "https://images.unsplash.com/photo-1571171637578-41bc2dd41cd2?w=800", 8, 4.9, date(2023, time.December, 10)),
	listing("13", "Traditional Indian Cooking",
		"Learn authentic Indian cuisine and cooking techniques from different regions.",
		"Cooking", "https://images.unsplash.com/photo-1596797038530-2c107dc1c2c0?w=800", 5, 4.9, date(2024, time.January, 15)),
	listing("14", "Digital Art Fundamentals",
		"Master digital art creation using industry-standard tools and techniques.",
		"Digital Art", "https://images.unsplash.com/photo-1595844724771-e5fe7d3126af?w=800", 0, 4.7, date(2024, time.January, 20)),
	listing("15", "Spanish for Beginners",
		"Learn conversational Spanish with a focus on practical everyday situations.",
		"Language Learning", "https://images.unsplash.com/photo-1610484826967-09c5720778c7?w=800", 2, 4.8, date(2024, time.February, 1)),
	listing("16", "Mindfulness Meditation",
		"Develop mindfulness practices for stress reduction and mental well-being.",
		"Mindfulness", "https://images.unsplash.com/photo-1593811167562-9cef47bfc4d7?w=800", 3, 4.9, date(2024, time.February, 15)),
}

// SeedLearningRequests is the default collection returned when no snapshot
// exists or the stored one cannot be decoded.
func SeedLearningRequests() []models.LearningRequest {
	return []models.LearningRequest{
		{
			ID:            "1",
			SkillName:     "Mobile App Development",
			Category:      "Mobile Development",
			Provider:      "Sam Wilson",
			MatchStatus:   models.MatchScheduled,
			ScheduledDate: "Apr 15, 2025, 3:00 PM",
			CreatedAt:     date(2025, time.March, 1),
		},
		{
			ID:          "2",
			SkillName:   "Data Analysis",
			Category:    "Data Science",
			Provider:    "Ankit Sharma",
			MatchStatus: models.MatchMatched,
			CreatedAt:   date(2025, time.March, 5),
		},
	}
}
