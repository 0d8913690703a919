package resume

// template emits its sentences when any detected language, framework or
// skill contains one of its keywords as a whole term.
type template struct {
	keywords  []string
	sentences []string
}

// contextualTemplates is evaluated in order; every matching template fires.
// Keywords are lowercase.
var contextualTemplates = []template{
	// machine learning and data
	{[]string{"tensorflow", "pytorch", "keras"}, []string{
		"Designed and trained deep learning models using TensorFlow, PyTorch or Keras",
	}},
	{[]string{"scikit-learn", "xgboost", "lightgbm", "predictive modeling"}, []string{
		"Built predictive models with scikit-learn style pipelines for feature engineering and evaluation",
	}},
	{[]string{"hugging face", "langchain", "natural language processing", "nltk", "spacy"}, []string{
		"Applied natural language processing techniques to extract meaning from unstructured text",
	}},
	{[]string{"opencv", "computer vision"}, []string{
		"Implemented computer vision workflows for image processing and analysis with OpenCV",
	}},
	{[]string{"pandas", "polars", "numpy", "data wrangling"}, []string{
		"Cleaned and transformed datasets with Pandas and NumPy to prepare data for analysis",
	}},
	{[]string{"matplotlib", "seaborn", "plotly", "d3.js", "data visualization"}, []string{
		"Communicated findings through data visualizations and interactive charts",
	}},
	{[]string{"apache spark", "dask", "big data"}, []string{
		"Processed large-scale datasets with distributed computing frameworks",
	}},
	{[]string{"apache airflow", "etl pipelines", "data engineering"}, []string{
		"Orchestrated ETL pipelines to move and transform data between systems",
	}},
	{[]string{"jupyter", "exploratory data analysis"}, []string{
		"Documented exploratory data analysis in reproducible Jupyter notebooks",
	}},

	// frontend
	{[]string{"react", "vue.js", "angular", "svelte", "component-based ui"}, []string{
		"Developed responsive user interfaces with a component-based frontend architecture",
	}},
	{[]string{"next.js", "nuxt.js", "remix", "server-side rendering"}, []string{
		"Implemented server-side rendering to improve page load performance and SEO",
	}},
	{[]string{"redux", "mobx", "zustand", "vuex", "pinia", "state management"}, []string{
		"Managed complex application state with predictable state management patterns",
	}},
	{[]string{"tailwind css", "bootstrap", "responsive design"}, []string{
		"Styled accessible, mobile-first layouts with a utility-first CSS workflow",
	}},
	{[]string{"typescript", "static typing"}, []string{
		"Improved code reliability with TypeScript's static type system",
	}},

	// backend
	{[]string{"django", "flask", "fastapi", "express", "spring boot", "gin", "ruby on rails", "laravel", "restful apis"}, []string{
		"Built RESTful API endpoints with structured request validation and error handling",
	}},
	{[]string{"microservices"}, []string{
		"Decomposed functionality into independently deployable microservices",
	}},
	{[]string{"graphql"}, []string{
		"Designed a GraphQL schema and resolvers for flexible client data fetching",
	}},
	{[]string{"socket.io", "websockets", "real-time communication"}, []string{
		"Implemented real-time features over WebSockets for instant client updates",
	}},
	{[]string{"grpc", "protocol buffers"}, []string{
		"Defined service contracts with Protocol Buffers and gRPC",
	}},
	{[]string{"celery", "sidekiq", "background jobs", "distributed task queues"}, []string{
		"Offloaded long-running work to background job queues",
	}},
	{[]string{"asynchronous programming", "tokio", "concurrent programming"}, []string{
		"Wrote concurrent, non-blocking code to handle many simultaneous operations",
	}},

	// databases
	{[]string{"postgresql", "mysql", "relational databases", "database design", "sql"}, []string{
		"Designed relational database schemas and optimized SQL queries",
	}},
	{[]string{"mongodb", "nosql databases"}, []string{
		"Modeled document-oriented data in a NoSQL database",
	}},
	{[]string{"sqlalchemy", "gorm", "hibernate", "entity framework", "prisma", "sequelize", "typeorm", "orm"}, []string{
		"Mapped domain models to persistent storage through an ORM layer",
	}},
	{[]string{"redis", "caching"}, []string{
		"Reduced response latency with a caching layer",
	}},

	// mobile
	{[]string{"react native", "flutter", "cross-platform development"}, []string{
		"Shipped cross-platform mobile features from a single shared codebase",
	}},
	{[]string{"swiftui", "uikit", "ios development", "swift"}, []string{
		"Built native iOS screens following Apple's Human Interface Guidelines",
	}},
	{[]string{"jetpack compose", "android development", "kotlin"}, []string{
		"Developed native Android features with modern Kotlin tooling",
	}},

	// testing
	{[]string{"pytest", "jest", "junit", "vitest", "mocha", "rspec", "testify", "unit testing"}, []string{
		"Wrote automated unit tests to protect behavior and catch regressions early",
	}},
	{[]string{"cypress", "playwright", "selenium", "end-to-end testing"}, []string{
		"Automated end-to-end browser tests covering critical user journeys",
	}},
	{[]string{"test automation"}, []string{
		"Established a layered test automation strategy across multiple frameworks",
	}},

	// devops and infrastructure
	{[]string{"docker", "containerization"}, []string{
		"Containerized services with Docker for consistent development and deployment environments",
	}},
	{[]string{"kubernetes", "helm", "container orchestration"}, []string{
		"Deployed and scaled workloads on Kubernetes",
	}},
	{[]string{"terraform", "ansible", "infrastructure as code"}, []string{
		"Provisioned cloud infrastructure declaratively as code",
	}},
	{[]string{"github actions", "gitlab ci", "jenkins", "ci/cd"}, []string{
		"Automated builds, tests and releases through a CI/CD pipeline",
	}},
	{[]string{"aws", "azure", "google cloud", "cloud computing"}, []string{
		"Integrated managed cloud services into the application architecture",
	}},
	{[]string{"devops"}, []string{
		"Bridged development and operations with scripted, repeatable deployments",
	}},

	// games and graphics
	{[]string{"unity", "unreal engine", "godot", "game development"}, []string{
		"Implemented gameplay systems and interactive mechanics in a game engine",
	}},
	{[]string{"opengl", "vulkan", "graphics programming", "3d graphics"}, []string{
		"Programmed real-time rendering and graphics pipelines",
	}},

	// languages and general engineering
	{[]string{"rust", "systems programming", "memory safety"}, []string{
		"Wrote performance-critical systems code with careful control over memory",
	}},
	{[]string{"go", "concurrent programming"}, []string{
		"Built efficient services in Go using goroutines and channels",
	}},
	{[]string{"functional programming"}, []string{
		"Applied functional programming techniques such as immutability and composition",
	}},
	{[]string{"shell scripting"}, []string{
		"Automated repetitive workflows with shell scripts",
	}},
	{[]string{"smart contracts", "blockchain"}, []string{
		"Developed and tested smart contracts for decentralized applications",
	}},
	{[]string{"security", "authentication", "encryption"}, []string{
		"Hardened the application with authentication and secure data handling",
	}},
	{[]string{"performance", "optimization"}, []string{
		"Profiled and optimized hot paths to improve performance",
	}},
	{[]string{"algorithm"}, []string{
		"Designed and implemented efficient algorithms and data structures",
	}},

	// writing, design and research
	{[]string{"technical writing", "code documentation", "api documentation", "documentation"}, []string{
		"Produced clear technical documentation for developers and end users",
	}},
	{[]string{"academic writing", "academic research", "research methodology", "research portfolio"}, []string{
		"Conducted research and presented findings in rigorous academic prose",
	}},
	{[]string{"creative writing"}, []string{
		"Crafted original creative writing with attention to voice and narrative",
	}},
	{[]string{"content creation"}, []string{
		"Created engaging long-form content for an online audience",
	}},
	{[]string{"ui/ux design", "prototyping", "graphic design"}, []string{
		"Designed user-centered interfaces and visual assets in professional design tools",
	}},
	{[]string{"photography", "photo editing"}, []string{
		"Captured and edited a portfolio of photographs",
	}},
	{[]string{"video production", "audio production"}, []string{
		"Produced and edited multimedia content",
	}},
	{[]string{"3d modeling"}, []string{
		"Modeled and textured 3D assets",
	}},
}
