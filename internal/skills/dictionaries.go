package skills

// Curated skill reference data. Loaded once at package init and treated as
// immutable for the process lifetime; safe for concurrent readers.

var hardSkills = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "C", "Ruby", "PHP", "Swift",
	"Kotlin", "Go", "Rust", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash", "PowerShell",

	// Web technologies
	"HTML", "CSS", "SASS", "SCSS", "LESS", "Bootstrap", "Tailwind CSS", "jQuery",
	"React", "Angular", "Vue.js", "Svelte", "Next.js", "Nuxt.js", "Ember.js",
	"Node.js", "Express.js", "FastAPI", "Django", "Flask", "Spring Boot", "Laravel",

	// Databases
	"SQL", "MySQL", "PostgreSQL", "SQLite", "MongoDB", "Redis", "Elasticsearch",
	"Cassandra", "Neo4j", "DynamoDB", "Oracle", "SQL Server", "MariaDB",

	// Cloud and devops
	"AWS", "Azure", "Google Cloud Platform", "GCP", "Docker", "Kubernetes", "Jenkins",
	"GitLab CI", "GitHub Actions", "Terraform", "Ansible", "Chef", "Puppet",
	"CloudFormation", "Serverless", "Lambda", "EC2", "S3", "RDS",

	// Data science and ML
	"Machine Learning", "Deep Learning", "Neural Networks", "TensorFlow", "PyTorch",
	"Scikit-learn", "Pandas", "NumPy", "Matplotlib", "Seaborn", "Jupyter",
	"Data Analysis", "Data Visualization", "Statistics", "Big Data", "Hadoop", "Spark",

	// Mobile development
	"iOS Development", "Android Development", "React Native", "Flutter", "Xamarin",
	"SwiftUI", "UIKit", "Android Studio", "Xcode",

	// Version control and tools
	"Git", "GitHub", "GitLab", "Bitbucket", "SVN", "Mercurial",
	"JIRA", "Confluence", "Slack", "Trello", "Asana",

	// Testing
	"Unit Testing", "Integration Testing", "Test-Driven Development", "TDD",
	"Jest", "pytest", "JUnit", "Selenium", "Cypress", "Postman",

	// Design and graphics
	"Adobe Photoshop", "Adobe Illustrator", "Adobe InDesign", "Figma", "Sketch",
	"Adobe XD", "Canva", "GIMP", "Blender", "3D Modeling",

	// Operating systems
	"Linux", "Unix", "Windows", "macOS", "Ubuntu", "CentOS", "Red Hat",

	// Network and security
	"Network Security", "Cybersecurity", "Firewall", "VPN", "SSL/TLS",
	"Penetration Testing", "Vulnerability Assessment", "CISSP", "CISA",

	// Business and analytics
	"Microsoft Excel", "Google Sheets", "Power BI", "Tableau", "Looker",
	"Google Analytics", "SQL Analytics", "Business Intelligence",

	// Project management tools
	"Microsoft Project", "Smartsheet", "Monday.com", "Notion",

	// Specific technologies
	"REST API", "GraphQL", "Microservices", "Blockchain", "IoT",
	"Artificial Intelligence", "Computer Vision", "Natural Language Processing",
	"Agile", "Scrum", "Kanban", "DevOps", "CI/CD",
}

var softSkills = []string{
	// Communication
	"Communication", "Verbal Communication", "Written Communication",
	"Public Speaking", "Presentation Skills", "Active Listening",
	"Interpersonal Skills", "Cross-functional Communication",

	// Leadership
	"Leadership", "Team Leadership", "Project Leadership", "Mentoring",
	"Coaching", "Delegation", "Decision Making", "Strategic Thinking",
	"Vision Setting", "Change Management",

	// Teamwork and collaboration
	"Teamwork", "Collaboration", "Team Player", "Cross-functional Collaboration",
	"Stakeholder Management", "Relationship Building", "Networking",

	// Problem solving and analytical
	"Problem Solving", "Analytical Thinking", "Critical Thinking",
	"Creative Problem Solving", "Troubleshooting", "Root Cause Analysis",
	"Systems Thinking", "Innovation", "Creativity",

	// Adaptability and learning
	"Adaptability", "Flexibility", "Learning Agility", "Continuous Learning",
	"Growth Mindset", "Resilience", "Change Adaptation",

	// Time and project management
	"Time Management", "Project Management", "Organization",
	"Prioritization", "Planning", "Multitasking", "Attention to Detail",

	// Customer service
	"Customer Service", "Customer Focus", "Client Relations",
	"Customer Success", "Account Management",

	// Work ethic and personal qualities
	"Work Ethic", "Self-motivated", "Initiative", "Reliability",
	"Integrity", "Professionalism", "Accountability", "Honesty",

	// Emotional intelligence
	"Emotional Intelligence", "Empathy", "Self-awareness",
	"Social Awareness", "Conflict Resolution",

	// Business skills
	"Business Acumen", "Strategic Planning", "Financial Acumen",
	"Market Research", "Competitive Analysis", "Process Improvement",

	// Sales and marketing
	"Sales", "Marketing", "Negotiation", "Persuasion",
	"Relationship Selling", "Lead Generation",
}

var hardSkillPatterns = []string{
	`\b(?:programming|coding|development)\b`,
	`\b(?:database|sql|nosql)\b`,
	`\b(?:framework|library|api)\b`,
	`\b(?:software|hardware|technical)\b`,
	`\b(?:cloud|devops|deployment)\b`,
	`\b(?:testing|debugging|qa)\b`,
	`\b(?:mobile|web|frontend|backend)\b`,
	`\b(?:machine learning|ai|data science)\b`,
	`\b(?:security|network|infrastructure)\b`,
	`\b(?:version control|git)\b`,
}

var softSkillPatterns = []string{
	`\b(?:communication|verbal|written)\s+(?:skills?)\b`,
	`\b(?:leadership|management)\s+(?:experience|skills?)\b`,
	`\b(?:team|collaboration|teamwork)\s+(?:skills?|experience)\b`,
	`\b(?:problem|analytical)\s+(?:solving|thinking)\b`,
	`\b(?:time|project)\s+(?:management)\b`,
	`\b(?:customer|client)\s+(?:service|relations|focus)\b`,
	`\b(?:interpersonal|social)\s+(?:skills?)\b`,
	`\b(?:presentation|public)\s+(?:skills?|speaking)\b`,
	`\b(?:creative|innovation|creativity)\b`,
	`\b(?:adaptability|flexibility|resilience)\b`,
}

var hardIndicators = []string{
	"programming", "development", "technical", "software", "database", "framework", "language",
}

var softIndicators = []string{
	"communication", "leadership", "teamwork", "management", "collaboration", "problem solving",
}
