package skills

// languageSkills maps a language to the paradigm and domain skills it
// demonstrates. Languages missing here add no skills.
var languageSkills = map[string][]string{
	"R":            {"Statistical Analysis", "Data Visualization"},
	"Julia":        {"Scientific Computing", "Statistical Analysis"},
	"Python":       {"Scripting"},
	"Rust":         {"Systems Programming", "Memory Safety"},
	"C":            {"Systems Programming", "Low-Level Programming"},
	"C++":          {"Systems Programming", "Object-Oriented Programming"},
	"Zig":          {"Systems Programming"},
	"Assembly":     {"Low-Level Programming"},
	"Go":           {"Concurrent Programming"},
	"Java":         {"Object-Oriented Programming"},
	"C#":           {"Object-Oriented Programming"},
	"Kotlin":       {"Object-Oriented Programming"},
	"Scala":        {"Functional Programming"},
	"Haskell":      {"Functional Programming"},
	"Elixir":       {"Functional Programming", "Concurrent Programming"},
	"Erlang":       {"Functional Programming", "Concurrent Programming"},
	"Clojure":      {"Functional Programming"},
	"F#":           {"Functional Programming"},
	"OCaml":        {"Functional Programming"},
	"Elm":          {"Functional Programming"},
	"Shell":        {"Shell Scripting", "Automation"},
	"PowerShell":   {"Shell Scripting", "Automation"},
	"Batch":        {"Automation"},
	"SQL":          {"Database Design", "Data Querying"},
	"Solidity":     {"Smart Contracts", "Blockchain Development"},
	"Verilog":      {"Hardware Design"},
	"VHDL":         {"Hardware Design"},
	"GLSL":         {"Graphics Programming"},
	"HLSL":         {"Graphics Programming"},
	"GDScript":     {"Game Development"},
	"Fortran":      {"Scientific Computing"},
	"Lua":          {"Scripting"},
	"Perl":         {"Scripting", "Text Processing"},
	"TypeScript":   {"Static Typing"},
	"Objective-C":  {"Object-Oriented Programming"},
	"Visual Basic": {"Automation"},
}

// frameworkSkills maps a framework to the concept skills it demonstrates.
// Broad area labels such as Backend Development come from cross-signal
// inference instead.
var frameworkSkills = map[string][]string{
	// web backends
	"Django":         {"RESTful APIs", "MVC Architecture", "ORM"},
	"Flask":          {"RESTful APIs", "Microservices"},
	"FastAPI":        {"RESTful APIs", "API Documentation", "Asynchronous Programming"},
	"aiohttp":        {"Asynchronous Programming"},
	"Tornado":        {"Asynchronous Programming"},
	"Pyramid":        {"RESTful APIs"},
	"Express":        {"RESTful APIs", "Middleware Design"},
	"Fastify":        {"RESTful APIs"},
	"Koa":            {"RESTful APIs", "Middleware Design"},
	"Hapi":           {"RESTful APIs"},
	"NestJS":         {"RESTful APIs", "Dependency Injection"},
	"Spring":         {"Dependency Injection"},
	"Spring Boot":    {"RESTful APIs", "Microservices", "Dependency Injection"},
	"Quarkus":        {"Microservices"},
	"Micronaut":      {"Microservices"},
	"Ktor":           {"RESTful APIs", "Asynchronous Programming"},
	"Play Framework": {"RESTful APIs"},
	"Akka":           {"Actor Model", "Concurrent Programming"},
	"ASP.NET Core":   {"RESTful APIs", "MVC Architecture"},
	"Ruby on Rails":  {"RESTful APIs", "MVC Architecture", "ORM"},
	"Sinatra":        {"RESTful APIs"},
	"Hanami":         {"MVC Architecture"},
	"Laravel":        {"RESTful APIs", "MVC Architecture", "ORM"},
	"Symfony":        {"MVC Architecture", "Dependency Injection"},
	"CodeIgniter":    {"MVC Architecture"},
	"CakePHP":        {"MVC Architecture"},
	"Slim":           {"RESTful APIs"},
	"Gin":            {"RESTful APIs", "Middleware Design"},
	"Echo":           {"RESTful APIs", "Middleware Design"},
	"Fiber":          {"RESTful APIs"},
	"Chi":            {"RESTful APIs"},
	"Gorilla Mux":    {"RESTful APIs"},
	"Actix Web":      {"RESTful APIs", "Asynchronous Programming"},
	"Axum":           {"RESTful APIs", "Asynchronous Programming"},
	"Rocket":         {"RESTful APIs"},
	"Warp":           {"RESTful APIs"},
	"Vapor":          {"RESTful APIs"},
	"Tokio":          {"Asynchronous Programming"},
	"gRPC":           {"RPC Services", "Protocol Buffers"},
	"GraphQL":        {"GraphQL APIs"},
	"Apollo":         {"GraphQL APIs"},
	"Socket.IO":      {"Real-Time Communication"},
	"WebSockets":     {"Real-Time Communication"},
	"Celery":         {"Distributed Task Queues"},
	"Sidekiq":        {"Background Jobs"},

	// frontend
	"React":             {"Component-Based UI", "State Management"},
	"Preact":            {"Component-Based UI"},
	"Vue.js":            {"Component-Based UI", "Reactive Programming"},
	"Angular":           {"Component-Based UI", "Dependency Injection", "Reactive Programming"},
	"Svelte":            {"Component-Based UI", "Reactive Programming"},
	"SvelteKit":         {"Server-Side Rendering"},
	"SolidJS":           {"Reactive Programming"},
	"Lit":               {"Web Components"},
	"Next.js":           {"Server-Side Rendering", "Static Site Generation"},
	"Nuxt.js":           {"Server-Side Rendering"},
	"Remix":             {"Server-Side Rendering"},
	"Gatsby":            {"Static Site Generation"},
	"Astro":             {"Static Site Generation"},
	"Hugo":              {"Static Site Generation"},
	"Jekyll":            {"Static Site Generation"},
	"Redux":             {"State Management"},
	"MobX":              {"State Management"},
	"Zustand":           {"State Management"},
	"Vuex":              {"State Management"},
	"Pinia":             {"State Management"},
	"Tailwind CSS":      {"Responsive Design", "Utility-First CSS"},
	"Bootstrap":         {"Responsive Design"},
	"Material-UI":       {"UI Design Systems"},
	"Chakra UI":         {"UI Design Systems"},
	"Ant Design":        {"UI Design Systems"},
	"Styled Components": {"CSS-in-JS"},
	"Sass":              {"CSS Preprocessing"},
	"Storybook":         {"UI Design Systems", "Component Documentation"},
	"jQuery":            {"DOM Manipulation"},
	"D3.js":             {"Data Visualization"},
	"Chart.js":          {"Data Visualization"},
	"Three.js":          {"3D Graphics"},
	"Webpack":           {"Build Tooling"},
	"Vite":              {"Build Tooling"},
	"Rollup":            {"Build Tooling"},
	"Parcel":            {"Build Tooling"},
	"esbuild":           {"Build Tooling"},
	"Babel":             {"Build Tooling"},
	"WebAssembly":       {"WebAssembly Development"},
	"Electron":          {"Desktop Applications", "Cross-Platform Development"},
	"Tauri":             {"Desktop Applications", "Cross-Platform Development"},

	// mobile
	"React Native":            {"Cross-Platform Development"},
	"Expo":                    {"Cross-Platform Development"},
	"Flutter":                 {"Cross-Platform Development", "Declarative UI"},
	"Ionic":                   {"Hybrid Mobile Apps"},
	"Xamarin":                 {"Cross-Platform Development"},
	"MAUI":                    {"Cross-Platform Development"},
	"SwiftUI":                 {"Declarative UI"},
	"Jetpack Compose":         {"Declarative UI"},
	"UIKit":                   {"iOS Development"},
	"Android":                 {"Android Development"},
	"ARKit":                   {"Augmented Reality"},
	"RealityKit":              {"Augmented Reality"},
	"Core ML":                 {"On-Device Machine Learning"},
	"Riverpod":                {"State Management"},
	"Provider":                {"State Management"},
	"BLoC":                    {"State Management"},
	"GetX":                    {"State Management"},
	"Composable Architecture": {"State Management"},
	"RxSwift":                 {"Reactive Programming"},
	"Kotlin Coroutines":       {"Asynchronous Programming"},
	"Firebase":                {"Backend as a Service"},

	// machine learning
	"TensorFlow":                {"Deep Learning", "Neural Networks"},
	"TensorFlow.js":             {"Deep Learning"},
	"PyTorch":                   {"Deep Learning", "Neural Networks"},
	"Keras":                     {"Deep Learning", "Neural Networks"},
	"scikit-learn":              {"Predictive Modeling"},
	"XGBoost":                   {"Gradient Boosting", "Predictive Modeling"},
	"LightGBM":                  {"Gradient Boosting", "Predictive Modeling"},
	"Hugging Face Transformers": {"Natural Language Processing", "Deep Learning"},
	"LangChain":                 {"LLM Applications"},
	"NLTK":                      {"Natural Language Processing"},
	"spaCy":                     {"Natural Language Processing"},
	"OpenCV":                    {"Computer Vision"},
	"CUDA":                      {"GPU Programming"},

	// data
	"Pandas":         {"Data Analysis", "Data Wrangling"},
	"Polars":         {"Data Analysis", "Data Wrangling"},
	"NumPy":          {"Numerical Computing"},
	"SciPy":          {"Scientific Computing"},
	"Dask":           {"Distributed Computing"},
	"Apache Spark":   {"Big Data Processing", "Distributed Computing"},
	"Apache Airflow": {"Workflow Orchestration", "ETL Pipelines"},
	"Apache Kafka":   {"Event Streaming"},
	"Matplotlib":     {"Data Visualization"},
	"Seaborn":        {"Data Visualization"},
	"Plotly":         {"Data Visualization"},
	"Streamlit":      {"Data Apps"},
	"Dash":           {"Data Apps"},
	"Jupyter":        {"Exploratory Data Analysis"},
	"Scrapy":         {"Web Scraping"},
	"BeautifulSoup":  {"Web Scraping"},

	// databases and persistence
	"SQLAlchemy":       {"ORM", "Database Design"},
	"GORM":             {"ORM"},
	"Hibernate":        {"ORM"},
	"Entity Framework": {"ORM"},
	"Prisma":           {"ORM", "Database Design"},
	"Sequelize":        {"ORM"},
	"TypeORM":          {"ORM"},
	"Mongoose":         {"NoSQL Databases"},
	"Doctrine":         {"ORM"},
	"Diesel":           {"ORM"},
	"SQLx":             {"Database Design"},
	"sqlx":             {"Database Design"},
	"PostgreSQL":       {"Relational Databases"},
	"MySQL":            {"Relational Databases"},
	"MongoDB":          {"NoSQL Databases"},
	"Redis":            {"Caching"},
	"Elasticsearch":    {"Search Engines"},
	"RabbitMQ":         {"Message Queues"},

	// testing
	"pytest":          {"Unit Testing"},
	"Hypothesis":      {"Property-Based Testing"},
	"Jest":            {"Unit Testing"},
	"Vitest":          {"Unit Testing"},
	"Mocha":           {"Unit Testing"},
	"Karma":           {"Unit Testing"},
	"Testing Library": {"Component Testing"},
	"Cypress":         {"End-to-End Testing"},
	"Playwright":      {"End-to-End Testing"},
	"Selenium":        {"End-to-End Testing", "Browser Automation"},
	"Puppeteer":       {"Browser Automation"},
	"Capybara":        {"End-to-End Testing"},
	"JUnit":           {"Unit Testing"},
	"TestNG":          {"Unit Testing"},
	"Mockito":         {"Mocking"},
	"ScalaTest":       {"Unit Testing"},
	"RSpec":           {"Behavior-Driven Development"},
	"Minitest":        {"Unit Testing"},
	"PHPUnit":         {"Unit Testing"},
	"xUnit":           {"Unit Testing"},
	"NUnit":           {"Unit Testing"},
	"MSTest":          {"Unit Testing"},
	"Testify":         {"Unit Testing"},
	"Ginkgo":          {"Behavior-Driven Development"},
	"XCTest":          {"Unit Testing"},
	"Flutter Test":    {"Widget Testing"},
	"Google Test":     {"Unit Testing"},
	"Catch2":          {"Unit Testing"},

	// infrastructure
	"Docker":               {"Containerization"},
	"Docker Compose":       {"Containerization", "Service Orchestration"},
	"Kubernetes":           {"Container Orchestration"},
	"Helm":                 {"Container Orchestration", "Package Management"},
	"Terraform":            {"Infrastructure as Code"},
	"Ansible":              {"Configuration Management", "Infrastructure as Code"},
	"Vagrant":              {"Virtualization"},
	"Serverless Framework": {"Serverless Architecture"},
	"AWS":                  {"Cloud Computing"},
	"Azure":                {"Cloud Computing"},
	"Google Cloud":         {"Cloud Computing"},
	"GitHub Actions":       {"CI/CD"},
	"GitLab CI":            {"CI/CD"},
	"Jenkins":              {"CI/CD"},
	"Nginx":                {"Web Servers"},
	"Prometheus":           {"Monitoring"},
	"Grafana":              {"Monitoring"},

	// games and graphics
	"Unity":         {"Game Development", "3D Graphics"},
	"Unreal Engine": {"Game Development", "3D Graphics"},
	"Godot":         {"Game Development"},
	"Pygame":        {"Game Development"},
	"Phaser":        {"Game Development"},
	"libGDX":        {"Game Development"},
	"MonoGame":      {"Game Development"},
	"Bevy":          {"Game Development", "Entity Component System"},
	"Flame":         {"Game Development"},
	"raylib":        {"Game Development"},
	"SDL":           {"Game Development"},
	"OpenGL":        {"Graphics Programming"},
	"Vulkan":        {"Graphics Programming"},
	"SpriteKit":     {"Game Development"},
	"SceneKit":      {"3D Graphics"},

	// desktop and misc
	"Qt":         {"Desktop Applications"},
	"PyQt":       {"Desktop Applications"},
	"Tkinter":    {"Desktop Applications"},
	"Kivy":       {"Cross-Platform Development"},
	"JavaFX":     {"Desktop Applications"},
	"WPF":        {"Desktop Applications"},
	"Blazor":     {"Component-Based UI"},
	"Cobra":      {"Command-Line Tools"},
	"Clap":       {"Command-Line Tools"},
	"Bubble Tea": {"Terminal User Interfaces"},
	"Serde":      {"Serialization"},

	// documentation
	"Sphinx":     {"Code Documentation", "Technical Writing"},
	"MkDocs":     {"Technical Writing"},
	"Docusaurus": {"Technical Writing"},
	"WordPress":  {"Content Management"},
}

// Framework sub-tables used by combination rules and cross-signal
// inference.
var (
	frontendFrameworks = set(
		"React", "Preact", "Vue.js", "Angular", "Svelte", "SvelteKit", "SolidJS", "Lit",
		"Next.js", "Nuxt.js", "Remix", "Gatsby", "Astro", "jQuery", "Blazor",
	)
	backendFrameworks = set(
		"Django", "Flask", "FastAPI", "aiohttp", "Tornado", "Pyramid", "Express", "Fastify",
		"Koa", "Hapi", "NestJS", "Spring", "Spring Boot", "Quarkus", "Micronaut", "Ktor",
		"Play Framework", "ASP.NET Core", "Ruby on Rails", "Sinatra", "Hanami", "Laravel",
		"Symfony", "CodeIgniter", "CakePHP", "Slim", "Gin", "Echo", "Fiber", "Chi",
		"Gorilla Mux", "Actix Web", "Axum", "Rocket", "Warp", "Vapor",
	)
	mobileFrameworks = set(
		"React Native", "Expo", "Flutter", "Ionic", "Xamarin", "MAUI", "SwiftUI",
		"Jetpack Compose", "UIKit", "Android",
	)
	mlFrameworks = set(
		"TensorFlow", "TensorFlow.js", "PyTorch", "Keras", "scikit-learn", "XGBoost",
		"LightGBM", "Hugging Face Transformers", "LangChain", "NLTK", "spaCy", "OpenCV",
		"Core ML",
	)
	dataFrameworks = set(
		"Pandas", "Polars", "NumPy", "SciPy", "Dask", "Apache Spark", "Apache Airflow",
		"Matplotlib", "Seaborn", "Plotly", "Streamlit", "Dash", "Jupyter",
	)
	testingFrameworks = set(
		"pytest", "Hypothesis", "Jest", "Vitest", "Mocha", "Karma", "Testing Library",
		"Cypress", "Playwright", "Selenium", "Puppeteer", "Capybara", "JUnit", "TestNG",
		"Mockito", "ScalaTest", "RSpec", "Minitest", "PHPUnit", "xUnit", "NUnit", "MSTest",
		"Testify", "Ginkgo", "XCTest", "Flutter Test", "Google Test", "Catch2",
	)
	infraFrameworks = set(
		"Docker", "Docker Compose", "Kubernetes", "Helm", "Terraform", "Ansible", "Vagrant",
		"Serverless Framework", "GitHub Actions", "GitLab CI", "Jenkins", "Prometheus",
		"Grafana",
	)
	containerFrameworks = set("Docker", "Docker Compose", "Kubernetes", "Helm")
)

// combinations add a skill when at least two frameworks of one sub-table
// are present.
var combinations = []struct {
	frameworks map[string]bool
	skill      string
}{
	{mlFrameworks, "Machine Learning Engineering"},
	{testingFrameworks, "Test Automation"},
	{dataFrameworks, "Data Engineering"},
	{infraFrameworks, "Infrastructure Automation"},
	{frontendFrameworks, "Component-Based Architecture"},
}

// Language groups for cross-signal inference.
var (
	backendLanguages = set(
		"Python", "Java", "Go", "Ruby", "PHP", "C#", "Rust", "Scala", "Elixir", "Erlang",
		"Clojure",
	)
	scriptingLanguages = set("JavaScript", "TypeScript")
	markupLanguages    = set("HTML", "CSS", "SCSS", "Sass", "Less", "Vue", "Svelte")
	mobileLanguages    = set("Swift", "Objective-C", "Kotlin", "Dart")
	dataLanguages      = set("R", "Julia")
	shellLanguages     = set("Shell", "PowerShell")
)

// fileRule adds skills once at least min files with one of the extensions
// are present.
type fileRule struct {
	extensions []string
	min        int
	skills     []string
}

var fileRules = []fileRule{
	{[]string{".raw", ".cr2", ".cr3", ".nef", ".arw", ".dng", ".orf", ".rw2"}, 3, []string{"Photography", "Photo Editing"}},
	{[]string{".jpg", ".jpeg"}, 10, []string{"Photography"}},
	{[]string{".heic", ".tif", ".tiff"}, 5, []string{"Photography"}},
	{[]string{".mp4", ".mov", ".avi", ".mkv", ".webm"}, 2, []string{"Video Production", "Video Editing"}},
	{[]string{".wav", ".flac", ".aiff"}, 3, []string{"Audio Production"}},
	{[]string{".mp3", ".ogg"}, 5, []string{"Audio Production"}},
	{[]string{".mid", ".midi"}, 1, []string{"Music Composition"}},
	{[]string{".svg"}, 3, []string{"Vector Graphics"}},
	{[]string{".psd", ".xcf"}, 1, []string{"Graphic Design", "Photo Editing"}},
	{[]string{".ai"}, 1, []string{"Graphic Design", "Vector Graphics"}},
	{[]string{".sketch", ".fig", ".xd"}, 1, []string{"UI/UX Design", "Prototyping"}},
	{[]string{".blend", ".fbx", ".obj", ".stl", ".gltf", ".glb", ".max", ".ma", ".mb"}, 1, []string{"3D Modeling"}},
	{[]string{".ttf", ".otf", ".woff", ".woff2"}, 2, []string{"Typography"}},
	{[]string{".md", ".markdown", ".rst"}, 5, []string{"Documentation"}},
	{[]string{".ipynb"}, 1, []string{"Exploratory Data Analysis"}},
	{[]string{".tex", ".bib"}, 1, []string{"LaTeX", "Academic Writing"}},
	{[]string{".tf"}, 1, []string{"Infrastructure as Code"}},
	{[]string{".proto"}, 1, []string{"Protocol Buffers"}},
	{[]string{".graphql", ".gql"}, 1, []string{"GraphQL APIs"}},
	{[]string{".sql"}, 3, []string{"Database Design"}},
	{[]string{".kicad_pcb", ".kicad_sch", ".sch", ".brd"}, 1, []string{"PCB Design", "Electronics"}},
	{[]string{".unity", ".prefab"}, 1, []string{"Game Development"}},
}

// topicSkills maps a content topic to the skill it demonstrates.
var topicSkills = map[string]string{
	"Business":  "Business Writing",
	"Science":   "Scientific Writing",
	"Health":    "Health Communication",
	"Education": "Educational Content",
	"Finance":   "Financial Analysis",
	"Politics":  "Policy Analysis",
}

// technicalTopics count as technical signals for blog posts.
var technicalTopics = set(
	"Machine Learning", "Data Science", "Web Development", "Software Engineering",
	"Cybersecurity", "Cloud Computing", "Mobile Development", "Databases", "DevOps",
	"Blockchain",
)

// domainSkills maps a domain indicator to the writing skill it implies once
// it reaches domainIndicatorMin occurrences.
var domainSkills = map[string]string{
	"academic_writing":  "Academic Writing",
	"technical_writing": "Technical Writing",
	"creative_writing":  "Creative Writing",
	"business_writing":  "Business Writing",
}

const domainIndicatorMin = 5

// specificDocumentation replaces the generic Technical Writing label.
var specificDocumentation = []string{"Code Documentation", "API Documentation", "UX Writing"}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}
